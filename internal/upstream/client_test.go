package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"docuport/internal/config"
	"docuport/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Retries: 1,
	})
}

func authedContext(token string) context.Context {
	ctx := session.ContextWithSession(context.Background(), &session.Session{Token: token})
	return session.ContextWithLocale(ctx, "ar")
}

func TestClient_HeaderInjection(t *testing.T) {
	var got http.Header
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"status_code":200,"message":"ok","data":[]}`))
	})

	_, err := c.ListNotes(authedContext("secret-token"))
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "ar", got.Get("Accept-Language"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	var got http.Header
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"status_code":200,"message":"ok","data":[]}`))
	})

	_, err := c.ListNotes(context.Background())
	require.NoError(t, err)

	assert.Empty(t, got.Get("Authorization"))
	// Locale falls back to the default.
	assert.Equal(t, "en", got.Get("Accept-Language"))
}

func TestClient_EnvelopeDecoding(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		w.Write([]byte(`{
			"status_code": 200,
			"message": "welcome",
			"data": {
				"id": 7,
				"name": "Jane Doe",
				"access_token": "abc123",
				"permissions": [{"id": 1, "title": "files-read"}]
			}
		}`))
	})

	identity, err := c.Login(context.Background(), "jane@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, 7, identity.ID)
	assert.Equal(t, "abc123", identity.AccessToken)
	require.Len(t, identity.Permissions, 1)
	assert.Equal(t, "files-read", identity.Permissions[0].Title)
}

func TestClient_UnauthorizedError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code":401,"message":"Unauthenticated."}`))
	})

	_, err := c.Profile(authedContext("stale"))
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	var ue *Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "Unauthenticated.", ue.Message)
}

func TestClient_ErrorWithoutEnvelope(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.ListNotes(context.Background())
	var ue *Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusBadGateway, ue.StatusCode)
	assert.False(t, IsUnauthorized(err))
}

func TestClient_NoRetryOnHTTPError(t *testing.T) {
	var calls int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status_code":500,"message":"boom"}`))
	})

	_, err := c.ListNotes(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "HTTP errors must not be retried")
}

func TestClient_RetriesTransportErrors(t *testing.T) {
	// Hijack and drop every connection before a response is written, so each
	// attempt dies at the transport level and must be retried.
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		conn.Close()
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: time.Second,
		Retries: 2,
	})
	_, err := c.ListNotes(context.Background())
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts), "initial attempt plus two retries")
}

func TestEnvelope_Decode(t *testing.T) {
	env := &Envelope{Data: []byte(`{"id": 3}`)}
	var out struct {
		ID int `json:"id"`
	}
	require.NoError(t, env.Decode(&out))
	assert.Equal(t, 3, out.ID)

	// Empty data block decodes to nothing, not an error.
	empty := &Envelope{}
	require.NoError(t, empty.Decode(&out))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(204))
	assert.Equal(t, "4xx", statusClass(404))
	assert.Equal(t, "5xx", statusClass(502))
}
