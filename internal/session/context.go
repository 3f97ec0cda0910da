package session

import "context"

type sessionContextKey struct{}
type localeContextKey struct{}

// ContextWithSession attaches the loaded session to the request context so
// the upstream client can pick up the bearer token without reaching back
// into cookies.
func ContextWithSession(ctx context.Context, s *Session) context.Context {
	if s == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// FromContext extracts the session previously attached by the guard. The
// second return is false when no session was attached.
func FromContext(ctx context.Context) (*Session, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(sessionContextKey{}).(*Session)
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}

// TokenFromContext returns the bearer token of the attached session, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	s, ok := FromContext(ctx)
	if !ok || s.Token == "" {
		return "", false
	}
	return s.Token, true
}

// ContextWithLocale records the caller's display locale for upstream
// Accept-Language propagation.
func ContextWithLocale(ctx context.Context, locale string) context.Context {
	if locale == "" {
		return ctx
	}
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the recorded locale, defaulting to "en".
func LocaleFromContext(ctx context.Context) string {
	if ctx == nil {
		return "en"
	}
	if l, ok := ctx.Value(localeContextKey{}).(string); ok && l != "" {
		return l
	}
	return "en"
}
