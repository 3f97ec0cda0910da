package handlers

import (
	"net/http"

	"docuport/internal/api/middleware"
	"docuport/internal/metrics"
	"docuport/internal/upstream"
	"docuport/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Base
	up       *upstream.Client
	catalog  *upstream.Catalog
	homePath string
	log      *logger.Logger
}

func NewAuthHandler(base Base, up *upstream.Client, catalog *upstream.Catalog, homePath string) *AuthHandler {
	return &AuthHandler{
		Base:     base,
		up:       up,
		catalog:  catalog,
		homePath: homePath,
		log:      logger.New("AuthHandler"),
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

type ChangePasswordRequest struct {
	OldPassword          string `json:"old_password" validate:"required"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyPasswordRequest struct {
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// Login exchanges credentials upstream and, on success, issues the session
// cookies. The token is applied before the identity propagates anywhere else.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	identity, err := h.up.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("denied").Inc()
		return h.fail(c, err)
	}
	if identity.AccessToken == "" {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		h.log.Warn("login response for %s carried no access token", req.Email)
		return echo.NewHTTPError(http.StatusBadGateway, "login response carried no access token")
	}

	if err := h.sessions.Issue(c.Response(), c.Request(), identity, identity.AccessToken, req.Remember); err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to establish session")
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	h.log.Info("admin %d signed in", identity.ID)
	return h.respond(c, http.StatusOK, "Logged in", identity)
}

// Logout tears the session down locally no matter what the upstream says.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.up.Logout(c.Request().Context()); err != nil {
		h.log.Warn("upstream logout failed, clearing local session anyway: %v", err)
	}
	h.sessions.Clear(c.Response(), c.Request())
	return c.Redirect(http.StatusFound, h.loginPath)
}

// Profile re-fetches the admin record and replaces the session identity
// wholesale, keeping the current bearer token.
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, err := h.up.Profile(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	s := middleware.CurrentSession(c)
	if err := h.sessions.Issue(c.Response(), c.Request(), identity, s.Token, false); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to refresh session")
	}
	return h.respond(c, http.StatusOK, "Profile", echo.Map{
		"user":              identity,
		"initials":          identity.Initials(),
		"permission_titles": identity.PermissionTitles(),
	})
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	env, err := h.up.ChangePassword(c.Request().Context(), req.OldPassword, req.Password, req.PasswordConfirmation)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, env.Message, nil)
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	env, err := h.up.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return h.fail(c, err)
	}
	h.catalog.MarkResend(req.Email)
	return h.respond(c, http.StatusOK, env.Message, nil)
}

// ResendPassword re-sends the reset email, throttled per address so a stuck
// user cannot hammer the mail queue.
func (h *AuthHandler) ResendPassword(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if !h.catalog.ResendAllowed(req.Email) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{
			"status_code": http.StatusTooManyRequests,
			"message":     "A reset email was sent recently, try again later",
		})
	}

	env, err := h.up.ResendPassword(c.Request().Context(), req.Email)
	if err != nil {
		return h.fail(c, err)
	}
	h.catalog.MarkResend(req.Email)
	return h.respond(c, http.StatusOK, env.Message, nil)
}

func (h *AuthHandler) VerifyPassword(c echo.Context) error {
	var req VerifyPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	env, err := h.up.VerifyPassword(c.Request().Context(), req.Email, req.Password, req.PasswordConfirmation)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, http.StatusOK, env.Message, nil)
}
