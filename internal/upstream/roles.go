package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Role groups permissions and is assignable to admins.
type Role struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Permissions []RolePermission `json:"permissions,omitempty"`
	UsersCount  int              `json:"count_users,omitempty"`
	CreatedAt   string           `json:"created_at,omitempty"`
	UpdatedAt   string           `json:"updated_at,omitempty"`
	DeletedAt   *string          `json:"deleted_at,omitempty"`
}

// RolePermission is a permission as the roles endpoints shape it.
type RolePermission struct {
	ID      int    `json:"id"`
	Name    string `json:"name,omitempty"`
	Title   string `json:"title,omitempty"`
	Checked bool   `json:"checked,omitempty"`
}

type RolePayload struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// RoleAssignment attaches a role to a set of admins.
type RoleAssignment struct {
	RoleID   int   `json:"role_id"`
	AdminIDs []int `json:"admin_ids"`
}

// RolesAndAdmins is the combined picker payload the access-list editor
// loads: every role and every admin in one call.
type RolesAndAdmins struct {
	Roles  []Role  `json:"roles"`
	Admins []Admin `json:"admins"`
}

// EntityRef is a role or admin reference scoped to an entity (category,
// folder, file) as returned by the *-entity endpoints.
type EntityRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CatalogSection is one named group of grantable permissions from the
// actions / admin-sections catalogs.
type CatalogSection struct {
	Name        string           `json:"name"`
	Permissions []RolePermission `json:"permissions"`
}

func (c *Client) ListRoles(ctx context.Context, opts ListOptions) ([]Role, *Meta, error) {
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

	env, err := c.do(ctx, http.MethodGet, "/roles", q, nil)
	if err != nil {
		return nil, nil, err
	}
	var out []Role
	if err := env.Decode(&out); err != nil {
		return nil, nil, err
	}
	return out, env.Meta, nil
}

func (c *Client) GetRole(ctx context.Context, id int) (*Role, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/roles/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	role := &Role{}
	if err := env.Decode(role); err != nil {
		return nil, err
	}
	return role, nil
}

func (c *Client) CreateRole(ctx context.Context, payload RolePayload) (*Role, error) {
	env, err := c.do(ctx, http.MethodPost, "/roles", nil, payload)
	if err != nil {
		return nil, err
	}
	created := &Role{}
	if err := env.Decode(created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateRole(ctx context.Context, id int, payload RolePayload) (*Role, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/roles/%d", id), nil, payload)
	if err != nil {
		return nil, err
	}
	updated := &Role{}
	if err := env.Decode(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteRole(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/roles/%d", id), nil, nil)
	return err
}

// AssignRole attaches a role to the given admins. The upstream path spells
// "pulk"; that is the server contract, not a local typo.
func (c *Client) AssignRole(ctx context.Context, assignment RoleAssignment) error {
	_, err := c.do(ctx, http.MethodPost, "/role-pulk-actions", nil, assignment)
	return err
}

// ListRolesAndAdmins fetches the combined role and admin pickers.
func (c *Client) ListRolesAndAdmins(ctx context.Context) (*RolesAndAdmins, error) {
	env, err := c.do(ctx, http.MethodGet, "/roles-to-categories", nil, nil)
	if err != nil {
		return nil, err
	}
	out := &RolesAndAdmins{}
	if err := env.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

// RolesByEntity lists the roles granted access to a given entity.
func (c *Client) RolesByEntity(ctx context.Context, entity string, entityID int) ([]EntityRef, error) {
	q := url.Values{}
	q.Set("entity", entity)
	q.Set("entity_id", strconv.Itoa(entityID))

	env, err := c.do(ctx, http.MethodGet, "/roles-entity", q, nil)
	if err != nil {
		return nil, err
	}
	var out []EntityRef
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminsByEntity lists the admins granted access to a given entity.
func (c *Client) AdminsByEntity(ctx context.Context, entity string, entityID int) ([]EntityRef, error) {
	q := url.Values{}
	q.Set("entity", entity)
	q.Set("entity_id", strconv.Itoa(entityID))

	env, err := c.do(ctx, http.MethodGet, "/admins-entity", q, nil)
	if err != nil {
		return nil, err
	}
	var out []EntityRef
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Actions fetches the grantable-actions catalog.
func (c *Client) Actions(ctx context.Context) ([]CatalogSection, error) {
	env, err := c.do(ctx, http.MethodGet, "/actions", nil, nil)
	if err != nil {
		return nil, err
	}
	var out []CatalogSection
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminSections fetches the portal-sections catalog used by the role editor.
func (c *Client) AdminSections(ctx context.Context) ([]CatalogSection, error) {
	env, err := c.do(ctx, http.MethodGet, "/admin-sections", nil, nil)
	if err != nil {
		return nil, err
	}
	var out []CatalogSection
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
