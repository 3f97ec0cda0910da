package handlers

import (
	"net/http"
	"strconv"

	"docuport/internal/upstream"
	"docuport/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

type RolesHandler struct {
	Base
	up      *upstream.Client
	catalog *upstream.Catalog
	log     *logger.Logger
}

func NewRolesHandler(base Base, up *upstream.Client, catalog *upstream.Catalog) *RolesHandler {
	return &RolesHandler{Base: base, up: up, catalog: catalog, log: logger.New("RolesHandler")}
}

type RoleRequest struct {
	Name        string   `json:"name" validate:"required"`
	Permissions []string `json:"permissions" validate:"required,min=1,dive,permission_title"`
}

type AssignRoleRequest struct {
	RoleID   int   `json:"role_id" validate:"required,gt=0"`
	AdminIDs []int `json:"admin_ids" validate:"required,min=1"`
}

func (h *RolesHandler) List(c echo.Context) error {
	opts := upstream.ListOptions{Query: c.QueryParam("search")}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		opts.Page = page
	}
	if perPage, err := strconv.Atoi(c.QueryParam("per_page")); err == nil {
		opts.PerPage = perPage
	}

	roles, meta, err := h.up.ListRoles(c.Request().Context(), opts)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respondList(c, "Roles", roles, meta)
}

func (h *RolesHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	role, err := h.up.GetRole(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Role", role)
}

func (h *RolesHandler) Create(c echo.Context) error {
	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	created, err := h.up.CreateRole(c.Request().Context(), upstream.RolePayload(req))
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("created role %d (%s)", created.ID, created.Name)
	return h.respond(c, http.StatusCreated, "Role created", created)
}

func (h *RolesHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	updated, err := h.up.UpdateRole(c.Request().Context(), id, upstream.RolePayload(req))
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Role updated", updated)
}

func (h *RolesHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.up.DeleteRole(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Role deleted", nil)
}

func (h *RolesHandler) Assign(c echo.Context) error {
	var req AssignRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.up.AssignRole(c.Request().Context(), upstream.RoleAssignment(req)); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Role assigned", nil)
}

// RolesAndAdmins serves the combined pickers the access-list editor loads.
func (h *RolesHandler) RolesAndAdmins(c echo.Context) error {
	out, err := h.up.ListRolesAndAdmins(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Roles and admins", out)
}

// ByEntity lists roles and admins granted access to one entity, for the
// access-list editor.
func (h *RolesHandler) ByEntity(c echo.Context) error {
	entity := c.QueryParam("entity")
	entityID, err := strconv.Atoi(c.QueryParam("entity_id"))
	if err != nil || entity == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "entity and entity_id are required")
	}

	roles, err := h.up.RolesByEntity(c.Request().Context(), entity, entityID)
	if err != nil {
		return h.fail(c, err)
	}
	admins, err := h.up.AdminsByEntity(c.Request().Context(), entity, entityID)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Entity access", echo.Map{
		"roles":  roles,
		"admins": admins,
	})
}

// Actions serves the cached grantable-actions catalog.
func (h *RolesHandler) Actions(c echo.Context) error {
	sections, err := h.catalog.Actions(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Actions", sections)
}

// AdminSections serves the cached portal-sections catalog.
func (h *RolesHandler) AdminSections(c echo.Context) error {
	sections, err := h.catalog.AdminSections(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Admin sections", sections)
}
