package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docuport/internal/api"
	"docuport/internal/api/middleware"
	"docuport/internal/config"
	"docuport/internal/handlers"
	"docuport/internal/routes"
	"docuport/internal/session"
	"docuport/internal/tasks"
	"docuport/internal/upstream"
	"docuport/internal/utils/logger"

	"github.com/joho/godotenv"
)

func main() {

	logger := logger.New("docuport")

	// check if .env file exists
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		logger.Info("No .env file found, skipping environment variable loading")
	} else {
		logger.Info("Loading environment variables from .env file")
		if err := godotenv.Load(); err != nil {
			log.Fatalf("Failed to load environment variables: %v", err)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Session manager and upstream client
	sessions := session.NewManager(cfg.Session.CookieDomain, cfg.Session.RememberTTL)
	client := upstream.NewClient(cfg.Upstream)
	catalog := upstream.NewCatalog(client, cfg.Cache.CatalogTTL, cfg.Cache.ResendCooldown)

	// Initialize catalog refresh scheduler
	scheduler := tasks.NewScheduler(catalog, cfg.Cache.RefreshSchedule, cfg.Upstream.ServiceToken, logger)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Navigation guard and handlers
	guard := middleware.NewGuard(sessions, cfg.Guard)
	base := handlers.NewBase(sessions, cfg.Guard.LoginPath)

	authHandler := handlers.NewAuthHandler(base, client, catalog, cfg.Guard.HomePath)
	portal := routes.PortalHandlers{
		Library:   handlers.NewLibraryHandler(base, client),
		Uploads:   handlers.NewUploadHandler(base, client),
		News:      handlers.NewNewsHandler(base, client),
		Notes:     handlers.NewNotesHandler(base, client),
		Reminders: handlers.NewRemindersHandler(base, client),
		Admins:    handlers.NewAdminsHandler(base, client),
		Roles:     handlers.NewRolesHandler(base, client, catalog),
		Search:    handlers.NewSearchHandler(base, client),
		Recycle:   handlers.NewRecycleHandler(base, client),
		Settings:  handlers.NewSettingsHandler(base, client),
	}

	// Initialize API server
	apiServer := api.NewServer(cfg, guard, authHandler, portal)
	go func() {
		logger.Success("API server started")
		if err := apiServer.Start(); err != nil {
			logger.Error("API server error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the servers
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Create a deadline for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop catalog refresh scheduler
	scheduler.Stop()

	// Shutdown API server
	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown API server", err)
	}

	logger.Info("Servers shutdown gracefully")
}
