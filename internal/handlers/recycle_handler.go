package handlers

import (
	"net/http"
	"strconv"

	"docuport/internal/upstream"

	"github.com/labstack/echo/v4"
)

type RecycleHandler struct {
	Base
	up *upstream.Client
}

func NewRecycleHandler(base Base, up *upstream.Client) *RecycleHandler {
	return &RecycleHandler{Base: base, up: up}
}

type RecycleTarget struct {
	ModelName string `json:"model_name" validate:"required,recycle_model"`
	ModelID   int    `json:"model_id" validate:"required,gt=0"`
}

func pageParam(c echo.Context) int {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	return page
}

func (h *RecycleHandler) Categories(c echo.Context) error {
	items, meta, err := h.up.RecycledCategories(c.Request().Context(), pageParam(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.respondList(c, "Recycled categories", items, meta)
}

func (h *RecycleHandler) Folders(c echo.Context) error {
	items, meta, err := h.up.RecycledFolders(c.Request().Context(), pageParam(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.respondList(c, "Recycled folders", items, meta)
}

func (h *RecycleHandler) Files(c echo.Context) error {
	items, meta, err := h.up.RecycledFiles(c.Request().Context(), pageParam(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.respondList(c, "Recycled files", items, meta)
}

func (h *RecycleHandler) Documents(c echo.Context) error {
	items, meta, err := h.up.RecycledDocuments(c.Request().Context(), pageParam(c))
	if err != nil {
		return h.fail(c, err)
	}
	return h.respondList(c, "Recycled documents", items, meta)
}

func (h *RecycleHandler) Restore(c echo.Context) error {
	var req RecycleTarget
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.up.RestoreChild(c.Request().Context(), upstream.RecycleModel(req.ModelName), req.ModelID); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Restored", nil)
}

func (h *RecycleHandler) Purge(c echo.Context) error {
	model := c.QueryParam("model_name")
	id, err := strconv.Atoi(c.QueryParam("model_id"))
	if err != nil || model == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "model_name and model_id are required")
	}
	if err := h.up.PurgeRecycled(c.Request().Context(), upstream.RecycleModel(model), id); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Deleted permanently", nil)
}
