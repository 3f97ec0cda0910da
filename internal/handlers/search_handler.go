package handlers

import (
	"net/http"

	"docuport/internal/upstream"

	"github.com/labstack/echo/v4"
)

type SearchHandler struct {
	Base
	up *upstream.Client
}

func NewSearchHandler(base Base, up *upstream.Client) *SearchHandler {
	return &SearchHandler{Base: base, up: up}
}

func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	results, err := h.up.Search(c.Request().Context(), query)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Search results", results)
}
