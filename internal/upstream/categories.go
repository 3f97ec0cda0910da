package upstream

import (
	"context"
	"fmt"
	"net/http"

	"docuport/internal/access"
)

// Category is a top-level bucket of folders.
type Category struct {
	ID          int    `json:"id"`
	Title       string `json:"title,omitempty"`
	TitleAr     string `json:"title_ar,omitempty"`
	TitleEn     string `json:"title_en,omitempty"`
	FolderCount int    `json:"folder_count"`
}

// CategoryDetail is a single category with its folders and access lists.
type CategoryDetail struct {
	access.Lists
	ID      int      `json:"id"`
	Title   string   `json:"title,omitempty"`
	TitleAr string   `json:"title_ar,omitempty"`
	TitleEn string   `json:"title_en,omitempty"`
	Folders []Folder `json:"folders"`
}

// CategoryPayload creates or updates a category. Admin and role ids translate
// into the category's access lists upstream.
type CategoryPayload struct {
	En       Localized `json:"en"`
	Ar       Localized `json:"ar"`
	AdminIDs []int     `json:"admin_ids,omitempty"`
	RoleIDs  []int     `json:"role_ids,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, *Meta, error) {
	env, err := c.do(ctx, http.MethodGet, "/categories", nil, nil)
	if err != nil {
		return nil, nil, err
	}
	var out []Category
	if err := env.Decode(&out); err != nil {
		return nil, nil, err
	}
	return out, env.Meta, nil
}

func (c *Client) GetCategory(ctx context.Context, id int) (*CategoryDetail, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	detail := &CategoryDetail{}
	if err := env.Decode(detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (c *Client) CreateCategory(ctx context.Context, payload CategoryPayload) (*Category, error) {
	env, err := c.do(ctx, http.MethodPost, "/categories", nil, payload)
	if err != nil {
		return nil, err
	}
	created := &Category{}
	if err := env.Decode(created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, payload CategoryPayload) (*Category, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), nil, payload)
	if err != nil {
		return nil, err
	}
	updated := &Category{}
	if err := env.Decode(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
	return err
}
