package session

import "strings"

// Permission is a single capability granted to an identity. Title is the
// upstream interchange form "<resource>-<action>", e.g. "files-read".
type Permission struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Identity is the authenticated admin record held by the session. Field names
// follow the upstream wire form so the record round-trips through the user
// cookie unchanged.
type Identity struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Status      string       `json:"status"`
	AccessToken string       `json:"access_token"`
	Avatar      string       `json:"avatar,omitempty"`
	RoleID      int          `json:"role_id"`
	RoleName    string       `json:"role_name"`
	Permissions []Permission `json:"permissions"`
}

// PermissionTitles returns the identity's permission titles. Nil-safe.
func (i *Identity) PermissionTitles() []string {
	if i == nil {
		return nil
	}
	titles := make([]string, 0, len(i.Permissions))
	for _, p := range i.Permissions {
		titles = append(titles, p.Title)
	}
	return titles
}

// Initials derives a two-letter display badge from the identity name.
// Rune-aware, since admin names may be Arabic.
func (i *Identity) Initials() string {
	const fallback = "US"
	if i == nil || i.Name == "" {
		return fallback
	}
	var words [][]rune
	for _, w := range strings.Fields(i.Name) {
		words = append(words, []rune(w))
	}
	if len(words) >= 2 {
		return strings.ToUpper(string(words[0][:1]) + string(words[1][:1]))
	}
	if len(words) == 1 && len(words[0]) >= 2 {
		return strings.ToUpper(string(words[0][:2]))
	}
	return fallback
}
