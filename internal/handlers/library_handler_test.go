package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docuport/internal/config"
	"docuport/internal/session"
	"docuport/internal/upstream"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLibraryHandler(t *testing.T, upstreamHandler http.HandlerFunc) *LibraryHandler {
	t.Helper()
	srv := httptest.NewServer(upstreamHandler)
	t.Cleanup(srv.Close)

	client := upstream.NewClient(config.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
	return NewLibraryHandler(NewBase(session.NewManager("", time.Hour), "/auth/login"), client)
}

// getAs builds a GET context carrying a session with the given identity and
// an :id route param.
func getAs(path, id string, identity *session.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s := &session.Session{Token: "tok", Identity: identity}
	req = req.WithContext(session.ContextWithSession(req.Context(), s))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

const restrictedFileBody = `{
	"status_code": 200,
	"message": "ok",
	"data": {
		"id": 10,
		"title": "Quarterly Report",
		"folder_id": 2,
		"roles_has_access": [{"id": 5, "name": "Finance"}],
		"attachments": [
			{"id": 100, "title": "open.pdf"},
			{"id": 101, "title": "restricted.pdf", "admins_has_access": [{"id": 99}]}
		]
	}
}`

func TestGetFile_AccessGranted_FiltersAttachments(t *testing.T) {
	h := testLibraryHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/10", r.URL.Path)
		w.Write([]byte(restrictedFileBody))
	})

	// Role 5 may see the file; only the unrestricted attachment survives.
	c, rec := getAs("/files/10", "10", &session.Identity{ID: 1, RoleID: 5})
	require.NoError(t, h.GetFile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "open.pdf")
	assert.NotContains(t, rec.Body.String(), "restricted.pdf")
}

func TestGetFile_AccessDeniedLooksLikeMissing(t *testing.T) {
	h := testLibraryHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(restrictedFileBody))
	})

	c, _ := getAs("/files/10", "10", &session.Identity{ID: 1, RoleID: 9})
	err := h.GetFile(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

const restrictedFolderBody = `{
	"status_code": 200,
	"message": "ok",
	"data": {
		"id": 4,
		"title": "Payroll",
		"category_id": 1,
		"roles_has_access": [{"id": 5, "name": "Finance"}],
		"files": [
			{"id": 20, "title": "open.docx", "folder_id": 4},
			{"id": 21, "title": "restricted.docx", "folder_id": 4, "admins_has_access": [{"id": 99}]}
		]
	}
}`

func TestGetFolder_AccessGranted_FiltersFiles(t *testing.T) {
	h := testLibraryHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/folders/4", r.URL.Path)
		w.Write([]byte(restrictedFolderBody))
	})

	c, rec := getAs("/folders/4", "4", &session.Identity{ID: 1, RoleID: 5})
	require.NoError(t, h.GetFolder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// Access lists survive the round trip for the access-list editor.
	assert.Contains(t, rec.Body.String(), "roles_has_access")
	assert.Contains(t, rec.Body.String(), "open.docx")
	assert.NotContains(t, rec.Body.String(), "restricted.docx")
}

func TestGetFolder_AccessDeniedLooksLikeMissing(t *testing.T) {
	h := testLibraryHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(restrictedFolderBody))
	})

	c, _ := getAs("/folders/4", "4", &session.Identity{ID: 1, RoleID: 9})
	err := h.GetFolder(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetFolder_UnrestrictedVisibleToAll(t *testing.T) {
	h := testLibraryHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status_code": 200,
			"message": "ok",
			"data": {"id": 4, "title": "Shared", "category_id": 1}
		}`))
	})

	c, rec := getAs("/folders/4", "4", &session.Identity{ID: 1, RoleID: 9})
	require.NoError(t, h.GetFolder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCategory_AccessDenied(t *testing.T) {
	h := testLibraryHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status_code": 200,
			"message": "ok",
			"data": {"id": 3, "title": "HR", "admins_has_access": [{"id": 50}]}
		}`))
	})

	c, _ := getAs("/categories/3", "3", &session.Identity{ID: 1, RoleID: 1})
	err := h.GetCategory(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetCategory_UnrestrictedVisibleToAll(t *testing.T) {
	h := testLibraryHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status_code": 200,
			"message": "ok",
			"data": {"id": 3, "title": "Public Docs"}
		}`))
	})

	c, rec := getAs("/categories/3", "3", &session.Identity{ID: 1, RoleID: 1})
	require.NoError(t, h.GetCategory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Public Docs")
}

func TestGetFile_BadIDParam(t *testing.T) {
	h := testLibraryHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called")
	})

	c, _ := getAs("/files/abc", "abc", &session.Identity{ID: 1})
	err := h.GetFile(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
