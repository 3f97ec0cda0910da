package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// News is a bilingual announcement with optional attachments.
type News struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	TitleAr       string       `json:"title_ar"`
	TitleEn       string       `json:"title_en"`
	Description   string       `json:"description"`
	DescriptionAr string       `json:"description_ar"`
	DescriptionEn string       `json:"description_en"`
	Attachments   []Attachment `json:"attachments,omitempty"`
	CreatedAt     string       `json:"created_at"`
}

type NewsPayload struct {
	En          Localized `json:"en"`
	Ar          Localized `json:"ar"`
	Attachments []int     `json:"attachments,omitempty"`
}

func (c *Client) ListNews(ctx context.Context) ([]News, error) {
	env, err := c.do(ctx, http.MethodGet, "/news", nil, nil)
	if err != nil {
		return nil, err
	}
	var out []News
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetNews(ctx context.Context, id int) (*News, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/news/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	item := &News{}
	if err := env.Decode(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (c *Client) CreateNews(ctx context.Context, payload NewsPayload) (*News, error) {
	env, err := c.do(ctx, http.MethodPost, "/news", nil, payload)
	if err != nil {
		return nil, err
	}
	created := &News{}
	if err := env.Decode(created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateNews(ctx context.Context, id int, payload NewsPayload) (*News, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/news/%d", id), nil, payload)
	if err != nil {
		return nil, err
	}
	updated := &News{}
	if err := env.Decode(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteNews(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/news/%d", id), nil, nil)
	return err
}
