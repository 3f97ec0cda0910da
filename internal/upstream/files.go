package upstream

import (
	"context"
	"fmt"
	"net/http"

	"docuport/internal/access"
)

// File is a document record. Attachments carry their own access lists in
// addition to the file's.
type File struct {
	access.Lists
	ID                 int          `json:"id"`
	Title              string       `json:"title"`
	TitleAr            string       `json:"title_ar,omitempty"`
	TitleEn            string       `json:"title_en,omitempty"`
	Description        string       `json:"description,omitempty"`
	DescriptionAr      string       `json:"description_ar,omitempty"`
	DescriptionEn      string       `json:"description_en,omitempty"`
	FolderID           int          `json:"folder_id"`
	FolderTitle        string       `json:"folder_title,omitempty"`
	CategoryID         *int         `json:"category_id"`
	DocsCount          int          `json:"docs_count,omitempty"`
	CreatedAt          string       `json:"created_at,omitempty"`
	DeletedAt          *string      `json:"deleted_at"`
	RestoredByChildren bool         `json:"restored_by_children,omitempty"`
	Attachments        []Attachment `json:"attachments,omitempty"`
}

type FilePayload struct {
	En          Localized `json:"en"`
	Ar          Localized `json:"ar"`
	ParentID    int       `json:"parent_id"`
	Attachments []int     `json:"attachments,omitempty"`
	AdminIDs    []int     `json:"admin_ids,omitempty"`
	RoleIDs     []int     `json:"role_ids,omitempty"`
}

func (c *Client) GetFile(ctx context.Context, id int) (*File, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/files/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	file := &File{}
	if err := env.Decode(file); err != nil {
		return nil, err
	}
	return file, nil
}

func (c *Client) CreateFile(ctx context.Context, payload FilePayload) (*File, error) {
	env, err := c.do(ctx, http.MethodPost, "/files", nil, payload)
	if err != nil {
		return nil, err
	}
	created := &File{}
	if err := env.Decode(created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateFile(ctx context.Context, id int, payload FilePayload) (*File, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/files/%d", id), nil, payload)
	if err != nil {
		return nil, err
	}
	updated := &File{}
	if err := env.Decode(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteFile(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/files/%d", id), nil, nil)
	return err
}
