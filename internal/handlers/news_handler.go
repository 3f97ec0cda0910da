package handlers

import (
	"net/http"

	"docuport/internal/upstream"
	"docuport/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

type NewsHandler struct {
	Base
	up  *upstream.Client
	log *logger.Logger
}

func NewNewsHandler(base Base, up *upstream.Client) *NewsHandler {
	return &NewsHandler{Base: base, up: up, log: logger.New("NewsHandler")}
}

func (h *NewsHandler) List(c echo.Context) error {
	news, err := h.up.ListNews(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	for i := range news {
		news[i].Attachments = visibleAttachments(c, news[i].Attachments)
	}
	return h.respond(c, http.StatusOK, "News", news)
}

func (h *NewsHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	item, err := h.up.GetNews(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	item.Attachments = visibleAttachments(c, item.Attachments)
	return h.respond(c, http.StatusOK, "News item", item)
}

func (h *NewsHandler) Create(c echo.Context) error {
	var payload upstream.NewsPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	created, err := h.up.CreateNews(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusCreated, "News created", created)
}

func (h *NewsHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var payload upstream.NewsPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	updated, err := h.up.UpdateNews(c.Request().Context(), id, payload)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "News updated", updated)
}

func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.up.DeleteNews(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "News deleted", nil)
}
