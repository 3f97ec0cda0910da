package handlers

import (
	"net/http"

	"docuport/internal/access"
	"docuport/internal/api/middleware"
	"docuport/internal/upstream"
	"docuport/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

// LibraryHandler fronts the document tree: categories, folders and files.
// ACL-bearing items are checked against the caller's identity before they
// leave the gateway.
type LibraryHandler struct {
	Base
	up  *upstream.Client
	log *logger.Logger
}

func NewLibraryHandler(base Base, up *upstream.Client) *LibraryHandler {
	return &LibraryHandler{Base: base, up: up, log: logger.New("LibraryHandler")}
}

// --- categories ---

func (h *LibraryHandler) ListCategories(c echo.Context) error {
	categories, meta, err := h.up.ListCategories(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return h.respondList(c, "Categories", categories, meta)
}

func (h *LibraryHandler) GetCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	detail, err := h.up.GetCategory(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	identity := middleware.CurrentSession(c).Identity
	if !access.HasAccess(identity, detail) {
		return echo.NewHTTPError(http.StatusNotFound, "category not found")
	}
	return h.respond(c, http.StatusOK, "Category", detail)
}

func (h *LibraryHandler) CreateCategory(c echo.Context) error {
	var payload upstream.CategoryPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	created, err := h.up.CreateCategory(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusCreated, "Category created", created)
}

func (h *LibraryHandler) UpdateCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var payload upstream.CategoryPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	updated, err := h.up.UpdateCategory(c.Request().Context(), id, payload)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Category updated", updated)
}

func (h *LibraryHandler) DeleteCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.up.DeleteCategory(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Category deleted", nil)
}

// --- folders ---

// GetFolder returns a folder with its contained files filtered down to what
// the caller may see. The folder itself is hidden entirely when its own
// lists exclude the caller.
func (h *LibraryHandler) GetFolder(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	folder, err := h.up.GetFolder(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	identity := middleware.CurrentSession(c).Identity
	if !access.HasAccess(identity, folder) {
		return echo.NewHTTPError(http.StatusNotFound, "folder not found")
	}

	visible := folder.Files[:0]
	for _, f := range folder.Files {
		if access.HasAccess(identity, f) {
			visible = append(visible, f)
		}
	}
	folder.Files = visible

	return h.respond(c, http.StatusOK, "Folder", folder)
}

func (h *LibraryHandler) CreateFolder(c echo.Context) error {
	var payload upstream.FolderPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	created, err := h.up.CreateFolder(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusCreated, "Folder created", created)
}

func (h *LibraryHandler) UpdateFolder(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var payload upstream.FolderPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	updated, err := h.up.UpdateFolder(c.Request().Context(), id, payload)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Folder updated", updated)
}

func (h *LibraryHandler) DeleteFolder(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.up.DeleteFolder(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "Folder deleted", nil)
}

// --- files ---

// GetFile returns a file with its attachments filtered down to what the
// caller may see. The file itself is hidden entirely when its own lists
// exclude the caller.
func (h *LibraryHandler) GetFile(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	file, err := h.up.GetFile(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	identity := middleware.CurrentSession(c).Identity
	if !access.HasAccess(identity, file) {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}

	visible := file.Attachments[:0]
	for _, att := range file.Attachments {
		if access.HasAccess(identity, att) {
			visible = append(visible, att)
		}
	}
	file.Attachments = visible

	return h.respond(c, http.StatusOK, "File", file)
}

func (h *LibraryHandler) CreateFile(c echo.Context) error {
	var payload upstream.FilePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	created, err := h.up.CreateFile(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusCreated, "File created", created)
}

func (h *LibraryHandler) UpdateFile(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var payload upstream.FilePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	updated, err := h.up.UpdateFile(c.Request().Context(), id, payload)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "File updated", updated)
}

func (h *LibraryHandler) DeleteFile(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.up.DeleteFile(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, "File deleted", nil)
}
