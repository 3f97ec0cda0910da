package upstream

import (
	"context"
	"fmt"
	"net/http"

	"docuport/internal/access"
)

// Folder lives inside a category (or inside another folder via parent_id)
// and groups files. Details carry access lists and the contained files.
type Folder struct {
	access.Lists
	ID                 int     `json:"id"`
	Title              string  `json:"title,omitempty"`
	TitleAr            string  `json:"title_ar,omitempty"`
	TitleEn            string  `json:"title_en,omitempty"`
	CategoryID         int     `json:"category_id"`
	CategoryTitle      string  `json:"category_title,omitempty"`
	ParentID           *int    `json:"parent_id"`
	FolderTitle        *string `json:"folder_title"`
	FileCount          int     `json:"file_count"`
	CreatedAt          string  `json:"created_at,omitempty"`
	DeletedAt          *string `json:"deleted_at"`
	RestoredByChildren bool    `json:"restored_by_children,omitempty"`
	Files              []File  `json:"files,omitempty"`
}

type FolderPayload struct {
	En         Localized `json:"en"`
	Ar         Localized `json:"ar"`
	CategoryID int       `json:"category_id"`
	AdminIDs   []int     `json:"admin_ids,omitempty"`
	RoleIDs    []int     `json:"role_ids,omitempty"`
}

func (c *Client) GetFolder(ctx context.Context, id int) (*Folder, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/folders/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	folder := &Folder{}
	if err := env.Decode(folder); err != nil {
		return nil, err
	}
	return folder, nil
}

func (c *Client) CreateFolder(ctx context.Context, payload FolderPayload) (*Folder, error) {
	env, err := c.do(ctx, http.MethodPost, "/folders", nil, payload)
	if err != nil {
		return nil, err
	}
	created := &Folder{}
	if err := env.Decode(created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateFolder(ctx context.Context, id int, payload FolderPayload) (*Folder, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/folders/%d", id), nil, payload)
	if err != nil {
		return nil, err
	}
	updated := &Folder{}
	if err := env.Decode(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteFolder(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/folders/%d", id), nil, nil)
	return err
}
