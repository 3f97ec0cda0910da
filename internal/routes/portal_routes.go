package routes

import (
	"docuport/internal/api/middleware"
	"docuport/internal/handlers"
	"docuport/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

// PortalHandlers bundles the resource handlers the portal mounts.
type PortalHandlers struct {
	Library   *handlers.LibraryHandler
	Uploads   *handlers.UploadHandler
	News      *handlers.NewsHandler
	Notes     *handlers.NotesHandler
	Reminders *handlers.RemindersHandler
	Admins    *handlers.AdminsHandler
	Roles     *handlers.RolesHandler
	Search    *handlers.SearchHandler
	Recycle   *handlers.RecycleHandler
	Settings  *handlers.SettingsHandler
}

// SetupPortalRoutes registers every resource route behind the global auth
// and permission gates. Mutations that the section gate cannot express get
// per-route permission requirements.
func SetupPortalRoutes(e *echo.Echo, guard *middleware.Guard, h PortalHandlers) {
	log := logger.New("portal_routes")

	// Document tree
	e.GET("/categories", h.Library.ListCategories)
	e.POST("/categories", h.Library.CreateCategory, guard.RequirePermission("categories-create"))
	e.GET("/categories/:id", h.Library.GetCategory)
	e.PUT("/categories/:id", h.Library.UpdateCategory, guard.RequirePermission("categories-update"))
	e.DELETE("/categories/:id", h.Library.DeleteCategory, guard.RequirePermission("categories-delete"))

	e.POST("/folders", h.Library.CreateFolder, guard.RequirePermission("folders-create"))
	e.GET("/folders/:id", h.Library.GetFolder)
	e.PUT("/folders/:id", h.Library.UpdateFolder, guard.RequirePermission("folders-update"))
	e.DELETE("/folders/:id", h.Library.DeleteFolder, guard.RequirePermission("folders-delete"))

	e.POST("/files", h.Library.CreateFile, guard.RequirePermission("files-create"))
	e.GET("/files/:id", h.Library.GetFile)
	e.PUT("/files/:id", h.Library.UpdateFile, guard.RequirePermission("files-update"))
	e.DELETE("/files/:id", h.Library.DeleteFile, guard.RequirePermission("files-delete"))

	// Attachments
	e.POST("/upload", h.Uploads.Upload, guard.RequirePermission("files-create"))
	e.GET("/attachments/:id", h.Uploads.Download)
	e.PUT("/attachments/:id", h.Uploads.Update, guard.RequirePermission("files-update"))
	e.POST("/attachments/:id/accessibility", h.Uploads.UpdateAccess, guard.RequirePermission("files-manage"))
	e.DELETE("/attachments/:id", h.Uploads.Delete, guard.RequirePermission("files-delete"))

	// News
	e.GET("/news", h.News.List)
	e.GET("/news/:id", h.News.Get)
	e.POST("/news", h.News.Create, guard.RequirePermission("news-create"))
	e.PUT("/news/:id", h.News.Update, guard.RequirePermission("news-update"))
	e.DELETE("/news/:id", h.News.Delete, guard.RequirePermission("news-delete"))

	// Personal widgets
	e.GET("/notes", h.Notes.List)
	e.POST("/notes", h.Notes.Create)
	e.PUT("/notes/:id", h.Notes.Update)
	e.DELETE("/notes/:id", h.Notes.Delete)

	e.GET("/reminders", h.Reminders.List)
	e.POST("/reminders", h.Reminders.Create)

	// Staff management
	e.GET("/admins", h.Admins.List)
	e.POST("/admins", h.Admins.Create, guard.RequirePermission("admins-create"))
	e.PUT("/admins/:id", h.Admins.Update, guard.RequirePermission("admins-update"))
	e.DELETE("/admins/:id", h.Admins.Delete, guard.RequirePermission("admins-delete"))

	e.GET("/permissions/roles", h.Roles.List)
	e.GET("/permissions/roles/:id", h.Roles.Get)
	e.POST("/permissions/roles", h.Roles.Create, guard.RequirePermission("roles-create"))
	e.PUT("/permissions/roles/:id", h.Roles.Update, guard.RequirePermission("roles-update"))
	e.DELETE("/permissions/roles/:id", h.Roles.Delete, guard.RequirePermission("roles-delete"))
	e.POST("/permissions/assign", h.Roles.Assign, guard.RequirePermission("roles-update"))
	e.GET("/permissions/roles-and-admins", h.Roles.RolesAndAdmins)
	e.GET("/permissions/entity-access", h.Roles.ByEntity)
	e.GET("/permissions/actions", h.Roles.Actions)
	e.GET("/permissions/admin-sections", h.Roles.AdminSections)

	// Search
	e.GET("/search", h.Search.Search)

	// Recycle bin
	e.GET("/recycle-bin/categories", h.Recycle.Categories)
	e.GET("/recycle-bin/folders", h.Recycle.Folders)
	e.GET("/recycle-bin/files", h.Recycle.Files)
	e.GET("/recycle-bin/documents", h.Recycle.Documents)
	e.POST("/recycle-bin/restore", h.Recycle.Restore, guard.RequirePermission("recycleBin-manage"))
	e.DELETE("/recycle-bin/delete", h.Recycle.Purge, guard.RequirePermission("recycleBin-manage"))

	// Settings
	e.POST("/settings/status-change", h.Settings.ChangeStatus, guard.RequirePermission("admins-update"))
	e.POST("/settings/multi-delete", h.Settings.MultiDelete, guard.RequirePermission("admins-manage"))

	log.Success("Portal routes initialized successfully")
}
