package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"docuport/internal/metrics"
	"docuport/internal/session"
	"docuport/internal/upstream"

	"github.com/labstack/echo/v4"
)

// Base carries what every handler needs: the session manager for the one
// sanctioned outside mutation (clearing on upstream 401) and the login path
// to bounce to afterwards.
type Base struct {
	sessions  *session.Manager
	loginPath string
}

func NewBase(sessions *session.Manager, loginPath string) Base {
	return Base{sessions: sessions, loginPath: loginPath}
}

func (b *Base) respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, echo.Map{
		"status_code": status,
		"message":     message,
		"data":        data,
	})
}

func (b *Base) respondList(c echo.Context, message string, data interface{}, meta *upstream.Meta) error {
	body := echo.Map{
		"status_code": http.StatusOK,
		"message":     message,
		"data":        data,
	}
	if meta != nil {
		body["meta"] = meta
	}
	return c.JSON(http.StatusOK, body)
}

// fail translates an upstream error for the browser. A 401 means the bearer
// token died server-side: the session cookies are cleared and the user is
// sent back to login.
func (b *Base) fail(c echo.Context, err error) error {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		if ue.StatusCode == http.StatusUnauthorized {
			metrics.SessionClears.Inc()
			b.sessions.Clear(c.Response(), c.Request())
			return c.Redirect(http.StatusFound, b.loginPath)
		}
		return c.JSON(ue.StatusCode, echo.Map{
			"status_code": ue.StatusCode,
			"message":     ue.Message,
		})
	}
	return echo.NewHTTPError(http.StatusBadGateway, "upstream request failed")
}

func idParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
