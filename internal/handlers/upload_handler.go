package handlers

import (
	"net/http"

	"docuport/internal/access"
	"docuport/internal/api/middleware"
	"docuport/internal/upstream"
	"docuport/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	Base
	up  *upstream.Client
	log *logger.Logger
}

func NewUploadHandler(base Base, up *upstream.Client) *UploadHandler {
	return &UploadHandler{Base: base, up: up, log: logger.New("UploadHandler")}
}

// Upload relays a multipart upload to the upstream and returns the created
// attachment record.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}
	title := c.FormValue("title")
	if title == "" {
		title = fileHeader.Filename
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	defer src.Close()

	att, err := h.up.Upload(c.Request().Context(), title, fileHeader.Filename, src)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("uploaded attachment %d (%s)", att.ID, att.Name)
	return h.respond(c, http.StatusCreated, "Uploaded", att)
}

// Download resolves an attachment to its file URL, re-checking visibility
// first: the record is fetched fresh and its access lists evaluated against
// the caller. Restricted attachments look like missing ones.
func (h *UploadHandler) Download(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	att, err := h.up.ShowAttachment(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if !access.HasAccess(middleware.CurrentSession(c).Identity, att) {
		return echo.NewHTTPError(http.StatusNotFound, "attachment not found")
	}

	filename := att.Title
	if filename == "" {
		filename = att.Name
	}
	return h.respond(c, http.StatusOK, "Download ready", echo.Map{
		"url":      att.File,
		"filename": filename,
	})
}

func (h *UploadHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var update upstream.AttachmentUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	att, err := h.up.UpdateAttachment(c.Request().Context(), id, update)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Attachment updated", att)
}

// UpdateAccess rewrites an attachment's access lists. Only admins holding
// files-manage may reach this route; the permission gate enforces that.
func (h *UploadHandler) UpdateAccess(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var update upstream.AccessibilityUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.up.UpdateAttachmentAccess(c.Request().Context(), id, update); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Accessibility updated", nil)
}

func (h *UploadHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.up.DeleteAttachment(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Attachment deleted", nil)
}

// visibleAttachments filters a slice down to what the current caller may
// see. Shared with the news handler.
func visibleAttachments(c echo.Context, atts []upstream.Attachment) []upstream.Attachment {
	identity := middleware.CurrentSession(c).Identity
	out := atts[:0]
	for _, att := range atts {
		if access.HasAccess(identity, att) {
			out = append(out, att)
		}
	}
	return out
}
