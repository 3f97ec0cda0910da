package handlers

import (
	"net/http"

	"docuport/internal/upstream"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	Base
	up *upstream.Client
}

func NewSettingsHandler(base Base, up *upstream.Client) *SettingsHandler {
	return &SettingsHandler{Base: base, up: up}
}

type StatusChangeRequest struct {
	AdminID int    `json:"admin_id" validate:"required,gt=0"`
	Status  string `json:"status" validate:"required,admin_status"`
}

type MultiDeleteRequest struct {
	ModelName string `json:"model_name" validate:"required"`
	IDs       []int  `json:"ids" validate:"required,min=1"`
}

func (h *SettingsHandler) ChangeStatus(c echo.Context) error {
	var req StatusChangeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	env, err := h.up.ChangeStatus(c.Request().Context(), upstream.StatusChange(req))
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, env.Message, nil)
}

func (h *SettingsHandler) MultiDelete(c echo.Context) error {
	var req MultiDeleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	env, err := h.up.DeleteMany(c.Request().Context(), upstream.MultiDelete(req))
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, env.Message, nil)
}
