package routes

import (
	"docuport/internal/handlers"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// SetupAuthRoutes registers the authentication surface. The global guard
// already classifies these paths; login and the reset flow are public,
// everything else here requires a session.
func SetupAuthRoutes(e *echo.Echo, authHandler *handlers.AuthHandler) {
	auth := e.Group("/auth")

	// Credential endpoints get a tighter limiter than the rest of the
	// portal to slow down guessing.
	loginLimiter := echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(rate.Limit(5)))

	auth.POST("/login", authHandler.Login, loginLimiter)
	auth.POST("/forgot-password", authHandler.ForgotPassword, loginLimiter)
	auth.POST("/resend-password", authHandler.ResendPassword, loginLimiter)
	auth.POST("/confirm", authHandler.VerifyPassword, loginLimiter)

	auth.POST("/logout", authHandler.Logout)
	auth.POST("/change-password", authHandler.ChangePassword)
	auth.GET("/me", authHandler.Profile)
}
