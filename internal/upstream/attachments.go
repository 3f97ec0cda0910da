package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"docuport/internal/access"
)

// Attachment is an uploaded document blob attached to a file or news post.
type Attachment struct {
	access.Lists
	ID    int    `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Size  int64  `json:"size"`
	File  string `json:"file"`
}

// AttachmentUpdate renames or retitles an attachment.
type AttachmentUpdate struct {
	Title string `json:"title,omitempty"`
	Name  string `json:"name,omitempty"`
}

// AccessibilityUpdate rewrites an attachment's access lists.
type AccessibilityUpdate struct {
	AdminIDs []int `json:"admin_ids"`
	RoleIDs  []int `json:"role_ids"`
}

// Upload streams a new attachment to the upstream and returns its record.
func (c *Client) Upload(ctx context.Context, title, filename string, file io.Reader) (*Attachment, error) {
	env, err := c.doMultipart(ctx, "/upload", map[string]string{"title": title}, "file", filename, file)
	if err != nil {
		return nil, err
	}
	att := &Attachment{}
	if err := env.Decode(att); err != nil {
		return nil, err
	}
	return att, nil
}

// ShowAttachment fetches one attachment record, access lists and file URL
// included. The upstream serves the bytes itself; the gateway only hands
// out the location.
func (c *Client) ShowAttachment(ctx context.Context, id int) (*Attachment, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/show/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	att := &Attachment{}
	if err := env.Decode(att); err != nil {
		return nil, err
	}
	return att, nil
}

func (c *Client) UpdateAttachment(ctx context.Context, id int, update AttachmentUpdate) (*Attachment, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/attachments/%d", id), nil, update)
	if err != nil {
		return nil, err
	}
	att := &Attachment{}
	if err := env.Decode(att); err != nil {
		return nil, err
	}
	return att, nil
}

// UpdateAttachmentAccess rewrites who may see the attachment.
func (c *Client) UpdateAttachmentAccess(ctx context.Context, id int, update AccessibilityUpdate) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/attachments/%d/accessibility/update", id), nil, update)
	return err
}

func (c *Client) DeleteAttachment(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/delete/%d", id), nil, nil)
	return err
}
