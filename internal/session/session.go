package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"docuport/internal/utils/logger"

	"github.com/golang-jwt/jwt/v4"
)

const (
	tokenCookie = "token"
	userCookie  = "user"
)

var log = logger.New("session")

// Session is the process-wide answer to "who is the current actor". The
// token is the upstream bearer credential; Identity is the cached admin
// record. Both live only in the browser cookies the Manager owns.
type Session struct {
	Identity *Identity
	Token    string
}

// IsAuthenticated reports whether a bearer token is present.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// Manager owns the two session cookies. Nothing else in the gateway may
// write them; reads go through Load on every request.
type Manager struct {
	cookieDomain string
	rememberTTL  time.Duration
}

func NewManager(cookieDomain string, rememberTTL time.Duration) *Manager {
	return &Manager{cookieDomain: cookieDomain, rememberTTL: rememberTTL}
}

// Load rebuilds the session from the request cookies. A missing token, a
// malformed user cookie, or an expired bearer JWT all yield an empty
// session rather than an error; permission checks downstream fail closed.
func (m *Manager) Load(r *http.Request) *Session {
	s := &Session{}

	tc, err := r.Cookie(tokenCookie)
	if err != nil || tc.Value == "" {
		return s
	}
	if tokenExpired(tc.Value) {
		log.Debug("bearer token expired, treating session as unauthenticated")
		return s
	}
	s.Token = tc.Value

	uc, err := r.Cookie(userCookie)
	if err != nil || uc.Value == "" {
		return s
	}
	raw, err := url.QueryUnescape(uc.Value)
	if err != nil {
		log.Warn("user cookie is not URL-encoded: %v", err)
		return s
	}
	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		log.Warn("user cookie holds malformed JSON: %v", err)
		return s
	}
	s.Identity = &identity
	return s
}

// Issue overwrites the session cookies with the given identity and token.
// remember extends the cookie lifetime to the configured TTL; otherwise the
// cookies are scoped to the browser session.
func (m *Manager) Issue(w http.ResponseWriter, r *http.Request, identity *Identity, token string, remember bool) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return log.Error("failed to encode identity for cookie", err)
	}

	maxAge := 0
	if remember {
		maxAge = int(m.rememberTTL.Seconds())
	}
	secure := requestIsSecure(r)

	http.SetCookie(w, m.cookie(tokenCookie, token, maxAge, secure))
	http.SetCookie(w, m.cookie(userCookie, url.QueryEscape(string(payload)), maxAge, secure))
	return nil
}

// Clear deletes both session cookies. Safe to call on an already empty
// session.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) {
	secure := requestIsSecure(r)
	http.SetCookie(w, m.cookie(tokenCookie, "", -1, secure))
	http.SetCookie(w, m.cookie(userCookie, "", -1, secure))
}

func (m *Manager) cookie(name, value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   m.cookieDomain,
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: false,
		SameSite: http.SameSiteStrictMode,
	}
}

func requestIsSecure(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return r.Header.Get("X-Forwarded-Proto") == "https"
}

// tokenExpired best-effort checks the exp claim of a bearer token. Tokens
// that are not JWTs are opaque to the gateway and never count as expired.
func tokenExpired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
