package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"docuport/internal/api/middleware"
	"docuport/internal/api/validator"
	"docuport/internal/config"
	"docuport/internal/handlers"
	"docuport/internal/metrics"
	"docuport/internal/routes"

	console "docuport/internal/utils/logger"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config
	guard  *middleware.Guard
}

var log = console.New("API-Server")

func NewServer(cfg *config.Config, guard *middleware.Guard, auth *handlers.AuthHandler, portal routes.PortalHandlers) *Server {
	e := echo.New()
	e.HideBanner = true

	// Create custom validator
	e.Validator = validator.NewValidator()

	// Configure middleware
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	e.Use(echomw.Secure())
	e.Use(echomw.TimeoutWithConfig(echomw.TimeoutConfig{
		Timeout: 30 * time.Second,
	}))
	e.Use(echomw.GzipWithConfig(echomw.GzipConfig{
		Level: 5,
	}))
	e.Use(echomw.BodyLimit("10M"))
	e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(rate.Limit(20))))

	// Navigation gates: authentication first, then the section permission
	// table. Order matters.
	e.Use(guard.Middleware())
	e.Use(guard.RequireRoutePermission(middleware.DefaultRules()))

	// Custom error handler
	e.HTTPErrorHandler = customHTTPErrorHandler

	if err := metrics.Register(nil); err != nil {
		log.Warn("Warning: failed to register metrics: %v", err)
	}

	s := &Server{
		echo:   e,
		config: cfg,
		guard:  guard,
	}

	routes.SetupAuthRoutes(e, auth)
	routes.SetupPortalRoutes(e, guard, portal)

	// Register infra routes
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Health check endpoint
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Custom HTTP error handler
func customHTTPErrorHandler(err error, c echo.Context) {
	var (
		code    = http.StatusInternalServerError
		message interface{}
	)

	switch e := err.(type) {
	case *echo.HTTPError:
		code = e.Code
		message = e.Message
	case validator.ValidationErrors:
		code = http.StatusBadRequest
		message = formatValidationErrors(e)
	default:
		message = http.StatusText(code)
	}

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, map[string]interface{}{
				"error": message,
				"code":  code,
				"time":  time.Now().Format(time.RFC3339),
			})
		}
		if err != nil {
			c.Echo().Logger.Error(err)
		}
	}
}

// formatValidationErrors formats validation errors into a map
func formatValidationErrors(errors validator.ValidationErrors) map[string]string {
	errMap := make(map[string]string)
	for _, err := range errors {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			errMap[field] = fmt.Sprintf("%s is required", field)
		case "email":
			errMap[field] = fmt.Sprintf("%s must be a valid email", field)
		case "min":
			errMap[field] = fmt.Sprintf("%s must be at least %s", field, param)
		case "max":
			errMap[field] = fmt.Sprintf("%s must be at most %s", field, param)
		case "gt":
			errMap[field] = fmt.Sprintf("%s must be greater than %s", field, param)
		case "oneof":
			errMap[field] = fmt.Sprintf("%s must be one of [%s]", field, param)
		case "eqfield":
			errMap[field] = fmt.Sprintf("%s must match %s", field, param)
		case "datetime":
			errMap[field] = fmt.Sprintf("%s must be a date in the form %s", field, param)
		case "admin_status":
			errMap[field] = fmt.Sprintf("%s must be either 'Active' or 'Inactive'", field)
		case "permission_title":
			errMap[field] = fmt.Sprintf("%s must look like '<resource>-<action>'", field)
		case "recycle_model":
			errMap[field] = fmt.Sprintf("%s must be one of: category, folder, file, document", field)
		default:
			errMap[field] = fmt.Sprintf("%s failed validation: %s", field, tag)
		}
	}
	return errMap
}
