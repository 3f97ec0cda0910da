package session

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func requestWithCookies(cookies ...*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/files", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestIssueAndLoad_RoundTrip(t *testing.T) {
	m := NewManager("", 30*24*time.Hour)
	identity := &Identity{
		ID:    7,
		Name:  "Test Admin",
		Email: "admin@example.com",
		Permissions: []Permission{
			{ID: 1, Title: "files-read"},
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	require.NoError(t, m.Issue(rec, req, identity, "opaque-token", false))

	loaded := m.Load(requestWithCookies(rec.Result().Cookies()...))
	assert.True(t, loaded.IsAuthenticated())
	assert.Equal(t, "opaque-token", loaded.Token)
	require.NotNil(t, loaded.Identity)
	assert.Equal(t, 7, loaded.Identity.ID)
	assert.Equal(t, "admin@example.com", loaded.Identity.Email)
	assert.True(t, loaded.HasPermission("files-read"))
}

func TestIssue_CookieAttributes(t *testing.T) {
	m := NewManager("", 30*24*time.Hour)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	require.NoError(t, m.Issue(rec, req, &Identity{ID: 1}, "tok", false))

	for _, name := range []string{"token", "user"} {
		c := findCookie(t, rec, name)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
		// Session-scoped: no Max-Age, no Expires.
		assert.Equal(t, 0, c.MaxAge)
		assert.False(t, c.Secure, "plain HTTP request must not set Secure")
	}
}

func TestIssue_RememberExtendsLifetime(t *testing.T) {
	m := NewManager("", 30*24*time.Hour)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	require.NoError(t, m.Issue(rec, req, &Identity{ID: 1}, "tok", true))

	c := findCookie(t, rec, "token")
	assert.Equal(t, int((30 * 24 * time.Hour).Seconds()), c.MaxAge)
}

func TestIssue_SecureBehindProxy(t *testing.T) {
	m := NewManager("", time.Hour)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	require.NoError(t, m.Issue(rec, req, &Identity{ID: 1}, "tok", false))

	assert.True(t, findCookie(t, rec, "token").Secure)
	assert.True(t, findCookie(t, rec, "user").Secure)
}

func TestClear_ExpiresBothCookies(t *testing.T) {
	m := NewManager("", time.Hour)
	rec := httptest.NewRecorder()
	m.Clear(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	for _, name := range []string{"token", "user"} {
		c := findCookie(t, rec, name)
		assert.Equal(t, "", c.Value)
		assert.Less(t, c.MaxAge, 0)
	}
}

func TestClear_IdempotentOnEmptySession(t *testing.T) {
	m := NewManager("", time.Hour)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		m.Clear(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
		assert.Len(t, rec.Result().Cookies(), 2)
	}
}

func TestLoad_NoCookies(t *testing.T) {
	m := NewManager("", time.Hour)
	s := m.Load(httptest.NewRequest(http.MethodGet, "/files", nil))
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Identity)
}

func TestLoad_MalformedUserCookie(t *testing.T) {
	m := NewManager("", time.Hour)
	s := m.Load(requestWithCookies(
		&http.Cookie{Name: "token", Value: "tok"},
		&http.Cookie{Name: "user", Value: url.QueryEscape("{not json")},
	))

	// Token survives, identity does not; permission checks fail closed.
	assert.True(t, s.IsAuthenticated())
	assert.Nil(t, s.Identity)
	assert.False(t, s.HasPermission("files-read"))
}

func TestLoad_ExpiredJWT(t *testing.T) {
	m := NewManager("", time.Hour)
	s := m.Load(requestWithCookies(
		&http.Cookie{Name: "token", Value: signedToken(t, time.Now().Add(-time.Minute))},
	))
	assert.False(t, s.IsAuthenticated())
}

func TestLoad_ValidJWT(t *testing.T) {
	m := NewManager("", time.Hour)
	s := m.Load(requestWithCookies(
		&http.Cookie{Name: "token", Value: signedToken(t, time.Now().Add(time.Hour))},
	))
	assert.True(t, s.IsAuthenticated())
}

func TestLoad_OpaqueTokenNeverExpires(t *testing.T) {
	m := NewManager("", time.Hour)
	s := m.Load(requestWithCookies(
		&http.Cookie{Name: "token", Value: "not-a-jwt"},
	))
	assert.True(t, s.IsAuthenticated())
}

func TestIdentityInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Jane Doe", "JD"},
		{"jane doe", "JD"},
		{"Madonna", "MA"},
		{"X", "US"},
		{"", "US"},
		// Multibyte names must slice runes, not bytes.
		{"محمد علي", "مع"},
		{"émile zola", "ÉZ"},
		{"محمد", "مح"},
	}
	for _, tc := range cases {
		i := &Identity{Name: tc.name}
		assert.Equal(t, tc.want, i.Initials(), "name %q", tc.name)
	}

	var nilIdentity *Identity
	assert.Equal(t, "US", nilIdentity.Initials())
	assert.Nil(t, nilIdentity.PermissionTitles())
}
