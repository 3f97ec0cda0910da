package handlers

import (
	"net/http"

	"docuport/internal/upstream"

	"github.com/labstack/echo/v4"
)

type RemindersHandler struct {
	Base
	up *upstream.Client
}

func NewRemindersHandler(base Base, up *upstream.Client) *RemindersHandler {
	return &RemindersHandler{Base: base, up: up}
}

type ReminderRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required"`
}

// List returns reminders regrouped per date, the shape the calendar wants.
func (h *RemindersHandler) List(c echo.Context) error {
	reminders, err := h.up.ListReminders(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Reminders", upstream.RemindersByDate(reminders))
}

func (h *RemindersHandler) Create(c echo.Context) error {
	var req ReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	env, err := h.up.CreateReminder(c.Request().Context(), req.Date, req.Description)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusCreated, env.Message, nil)
}
