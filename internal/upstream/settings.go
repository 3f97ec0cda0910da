package upstream

import (
	"context"
	"net/http"
)

// StatusChange toggles an admin account between Active and Inactive.
type StatusChange struct {
	AdminID int    `json:"admin_id"`
	Status  string `json:"status"`
}

// MultiDelete removes several records of one model in a single call.
type MultiDelete struct {
	ModelName string `json:"model_name"`
	IDs       []int  `json:"ids"`
}

func (c *Client) ChangeStatus(ctx context.Context, change StatusChange) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/status-change", nil, change)
}

func (c *Client) DeleteMany(ctx context.Context, del MultiDelete) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/multi-delete", nil, del)
}
