package middleware

import (
	"net/http"
	"regexp"

	"docuport/internal/metrics"

	"github.com/labstack/echo/v4"
)

// PermissionRule maps a route pattern to the permission it needs. Redirect
// decides what a denial does: bounce home, or let the view render its own
// empty state.
type PermissionRule struct {
	Pattern    *regexp.Regexp
	Permission string
	Redirect   bool
}

// DefaultRules mirrors the portal's section permissions. Order matters:
// the first matching pattern wins and later rules are never consulted.
func DefaultRules() []PermissionRule {
	return []PermissionRule{
		{Pattern: regexp.MustCompile(`/categories(?:/|$)`), Permission: "categories-read", Redirect: false},
		{Pattern: regexp.MustCompile(`/folders(?:/|$)`), Permission: "folders-read", Redirect: false},
		{Pattern: regexp.MustCompile(`/files(?:/|$)`), Permission: "files-read", Redirect: false},
		{Pattern: regexp.MustCompile(`/permissions(?:/|$)`), Permission: "roles-read", Redirect: true},
		{Pattern: regexp.MustCompile(`/recycle-bin(?:/|$)`), Permission: "recycleBin-read", Redirect: true},
	}
}

// RequirePermission guards a single route with a hard 403 instead of a
// redirect. Used for mutation endpoints where a silent bounce would hide
// the denial from the calling page.
func (g *Guard) RequirePermission(title string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !CurrentSession(c).HasPermission(title) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}

// RequireRoutePermission is the authorization gate, run after the
// authentication gate. Routes matching no rule bypass it entirely.
func (g *Guard) RequireRoutePermission(rules []PermissionRule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := g.StripLocale(c.Request().URL.Path)

			for _, rule := range rules {
				if !rule.Pattern.MatchString(path) {
					continue
				}
				if !CurrentSession(c).HasPermission(rule.Permission) && rule.Redirect {
					metrics.GuardRedirects.WithLabelValues("permission").Inc()
					log.Debug("navigation to %s denied, missing %s", path, rule.Permission)
					return c.Redirect(http.StatusFound, g.homePath)
				}
				// First match wins; a denial without redirect is the
				// view's problem to present.
				break
			}
			return next(c)
		}
	}
}
