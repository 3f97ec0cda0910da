package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// Note is a private scratch note belonging to the signed-in admin.
type Note struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type NotePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	env, err := c.do(ctx, http.MethodGet, "/notes", nil, nil)
	if err != nil {
		return nil, err
	}
	var out []Note
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateNote(ctx context.Context, payload NotePayload) (*Note, error) {
	env, err := c.do(ctx, http.MethodPost, "/notes", nil, payload)
	if err != nil {
		return nil, err
	}
	created := &Note{}
	if err := env.Decode(created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateNote(ctx context.Context, id int, payload NotePayload) (*Note, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/notes/%d", id), nil, payload)
	if err != nil {
		return nil, err
	}
	updated := &Note{}
	if err := env.Decode(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteNote(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil, nil)
	return err
}
