package upstream

// Localized carries the bilingual half of a create/update payload. The
// upstream expects separate en and ar blocks on every writable resource.
type Localized struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ListOptions is the common pagination/query knob set for list endpoints.
type ListOptions struct {
	Page    int
	PerPage int
	Query   string
}
