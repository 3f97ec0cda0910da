package handlers

import (
	"net/http"

	"docuport/internal/upstream"

	"github.com/labstack/echo/v4"
)

type NotesHandler struct {
	Base
	up *upstream.Client
}

func NewNotesHandler(base Base, up *upstream.Client) *NotesHandler {
	return &NotesHandler{Base: base, up: up}
}

type NoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (h *NotesHandler) List(c echo.Context) error {
	notes, err := h.up.ListNotes(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Notes", notes)
}

func (h *NotesHandler) Create(c echo.Context) error {
	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	created, err := h.up.CreateNote(c.Request().Context(), upstream.NotePayload{Title: req.Title, Content: req.Content})
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusCreated, "Note created", created)
}

func (h *NotesHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	updated, err := h.up.UpdateNote(c.Request().Context(), id, upstream.NotePayload{Title: req.Title, Content: req.Content})
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Note updated", updated)
}

func (h *NotesHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.up.DeleteNote(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Note deleted", nil)
}
