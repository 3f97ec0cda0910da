package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// RecycleItem is a soft-deleted record awaiting restore or purge.
type RecycleItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// RecycleModel enumerates the collections the recycle bin tracks.
type RecycleModel string

const (
	RecycleCategory RecycleModel = "category"
	RecycleFolder   RecycleModel = "folder"
	RecycleFile     RecycleModel = "file"
	RecycleDocument RecycleModel = "document"
)

func (c *Client) listRecycle(ctx context.Context, path string, page int) ([]RecycleItem, *Meta, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	env, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, nil, err
	}
	var out []RecycleItem
	if err := env.Decode(&out); err != nil {
		return nil, nil, err
	}
	return out, env.Meta, nil
}

func (c *Client) RecycledCategories(ctx context.Context, page int) ([]RecycleItem, *Meta, error) {
	return c.listRecycle(ctx, "/recycle-bin/categories", page)
}

func (c *Client) RecycledFolders(ctx context.Context, page int) ([]RecycleItem, *Meta, error) {
	return c.listRecycle(ctx, "/recycle-bin/folders", page)
}

func (c *Client) RecycledFiles(ctx context.Context, page int) ([]RecycleItem, *Meta, error) {
	return c.listRecycle(ctx, "/recycle-bin/files", page)
}

func (c *Client) RecycledDocuments(ctx context.Context, page int) ([]RecycleItem, *Meta, error) {
	return c.listRecycle(ctx, "/recycle-bin/documents", page)
}

type restoreChildRequest struct {
	ModelName RecycleModel `json:"model_name"`
	ModelID   int          `json:"model_id"`
}

// RestoreChild restores a soft-deleted record together with its parents.
func (c *Client) RestoreChild(ctx context.Context, model RecycleModel, id int) error {
	_, err := c.do(ctx, http.MethodPost, "/recycle-bin/restore-child", nil, restoreChildRequest{
		ModelName: model,
		ModelID:   id,
	})
	return err
}

// PurgeRecycled permanently deletes a soft-deleted record.
func (c *Client) PurgeRecycled(ctx context.Context, model RecycleModel, id int) error {
	q := url.Values{}
	q.Set("model_name", string(model))
	q.Set("model_id", strconv.Itoa(id))
	_, err := c.do(ctx, http.MethodDelete, "/recycle-bin/delete", q, nil)
	return err
}
