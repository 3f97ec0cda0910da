package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Admin is a staff account as the admins listing returns it.
type Admin struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role,omitempty"`
	RoleID      int    `json:"role_id,omitempty"`
	Status      string `json:"status"`
	AccessToken string `json:"access_token,omitempty"`
}

type AdminCreate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type AdminUpdate struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Status string `json:"status,omitempty"`
	Role   string `json:"role,omitempty"`
	RoleID int    `json:"role_id,omitempty"`
}

func (c *Client) ListAdmins(ctx context.Context, opts ListOptions) ([]Admin, *Meta, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	if opts.Query != "" {
		q.Set("search", opts.Query)
	}

	env, err := c.do(ctx, http.MethodGet, "/admins", q, nil)
	if err != nil {
		return nil, nil, err
	}
	var out []Admin
	if err := env.Decode(&out); err != nil {
		return nil, nil, err
	}
	return out, env.Meta, nil
}

func (c *Client) CreateAdmin(ctx context.Context, payload AdminCreate) (*Admin, error) {
	env, err := c.do(ctx, http.MethodPost, "/admins", nil, payload)
	if err != nil {
		return nil, err
	}
	created := &Admin{}
	if err := env.Decode(created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateAdmin(ctx context.Context, id int, payload AdminUpdate) (*Admin, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admins/%d", id), nil, payload)
	if err != nil {
		return nil, err
	}
	updated := &Admin{}
	if err := env.Decode(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteAdmin(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admins/%d", id), nil, nil)
	return err
}
