package upstream

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sectionsBody = `{"status_code":200,"message":"ok","data":[{"name":"files","permissions":[{"id":1,"title":"files-read"}]}]}`

func TestCatalog_ActionsCached(t *testing.T) {
	var calls int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(sectionsBody))
	})
	cat := NewCatalog(c, time.Minute, time.Minute)

	for i := 0; i < 3; i++ {
		sections, err := cat.Actions(context.Background())
		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, "files", sections[0].Name)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "second hit must come from the cache")
}

func TestCatalog_ErrorNotCached(t *testing.T) {
	var calls int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"status_code":500,"message":"boom"}`))
			return
		}
		w.Write([]byte(sectionsBody))
	})
	cat := NewCatalog(c, time.Minute, time.Minute)

	_, err := cat.AdminSections(context.Background())
	require.Error(t, err)

	sections, err := cat.AdminSections(context.Background())
	require.NoError(t, err)
	assert.Len(t, sections, 1)
}

func TestCatalog_Refresh(t *testing.T) {
	var calls int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(sectionsBody))
	})
	cat := NewCatalog(c, time.Minute, time.Minute)

	require.NoError(t, cat.Refresh(context.Background()))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	// Both catalogs are now warm.
	_, err := cat.Actions(context.Background())
	require.NoError(t, err)
	_, err = cat.AdminSections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCatalog_ResendCooldown(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {})
	cat := NewCatalog(c, time.Minute, 50*time.Millisecond)

	assert.True(t, cat.ResendAllowed("a@example.com"))
	cat.MarkResend("a@example.com")
	assert.False(t, cat.ResendAllowed("a@example.com"))
	// Other addresses are unaffected.
	assert.True(t, cat.ResendAllowed("b@example.com"))

	time.Sleep(80 * time.Millisecond)
	assert.True(t, cat.ResendAllowed("a@example.com"))
}
