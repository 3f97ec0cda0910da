package handlers

import (
	"net/http"
	"strconv"

	"docuport/internal/upstream"
	"docuport/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

type AdminsHandler struct {
	Base
	up  *upstream.Client
	log *logger.Logger
}

func NewAdminsHandler(base Base, up *upstream.Client) *AdminsHandler {
	return &AdminsHandler{Base: base, up: up, log: logger.New("AdminsHandler")}
}

type AdminCreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

type AdminUpdateRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" validate:"omitempty,email"`
	Status string `json:"status" validate:"omitempty,admin_status"`
	Role   string `json:"role"`
	RoleID int    `json:"role_id"`
}

func (h *AdminsHandler) List(c echo.Context) error {
	opts := upstream.ListOptions{Query: c.QueryParam("search")}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		opts.Page = page
	}
	if perPage, err := strconv.Atoi(c.QueryParam("per_page")); err == nil {
		opts.PerPage = perPage
	}

	admins, meta, err := h.up.ListAdmins(c.Request().Context(), opts)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respondList(c, "Admins", admins, meta)
}

func (h *AdminsHandler) Create(c echo.Context) error {
	var req AdminCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	created, err := h.up.CreateAdmin(c.Request().Context(), upstream.AdminCreate{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("created admin %d (%s)", created.ID, created.Email)
	return h.respond(c, http.StatusCreated, "Admin created", created)
}

func (h *AdminsHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req AdminUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	updated, err := h.up.UpdateAdmin(c.Request().Context(), id, upstream.AdminUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Status: req.Status,
		Role:   req.Role,
		RoleID: req.RoleID,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Admin updated", updated)
}

func (h *AdminsHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.up.DeleteAdmin(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Admin deleted", nil)
}
