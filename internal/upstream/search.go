package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// SearchItem is a lightweight hit in one of the searchable collections.
type SearchItem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	TitleAr string `json:"title_ar,omitempty"`
	TitleEn string `json:"title_en,omitempty"`
}

// SearchAttachment is an attachment hit, which carries extra file metadata.
type SearchAttachment struct {
	ID        int    `json:"id"`
	FileID    *int   `json:"file_id"`
	Title     string `json:"title"`
	File      string `json:"file"`
	Size      int64  `json:"size"`
	CreatedAt string `json:"created_at"`
}

type searchBucket[T any] struct {
	Data []T `json:"data"`
}

// SearchResults groups hits per collection, as the upstream returns them.
type SearchResults struct {
	SearchQuery  string `json:"search_query"`
	TotalResults int    `json:"total_results"`
	Results      struct {
		Categories  searchBucket[SearchItem]       `json:"categories"`
		Folders     searchBucket[SearchItem]       `json:"folders"`
		Files       searchBucket[SearchItem]       `json:"files"`
		Attachments searchBucket[SearchAttachment] `json:"attachments"`
	} `json:"results"`
}

// Search runs a global query across categories, folders, files and
// attachments.
func (c *Client) Search(ctx context.Context, query string) (*SearchResults, error) {
	q := url.Values{}
	q.Set("query", query)

	env, err := c.do(ctx, http.MethodGet, "/search", q, nil)
	if err != nil {
		return nil, err
	}
	results := &SearchResults{}
	if err := env.Decode(results); err != nil {
		return nil, err
	}
	return results, nil
}
