package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRole_PostsToPulkActions(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]interface{}
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"status_code":200,"message":"ok"}`))
	})

	err := c.AssignRole(context.Background(), RoleAssignment{RoleID: 3, AdminIDs: []int{7, 9}})
	require.NoError(t, err)

	assert.Equal(t, "/role-pulk-actions", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, float64(3), gotBody["role_id"])
	assert.Equal(t, []interface{}{float64(7), float64(9)}, gotBody["admin_ids"])
}

func TestListRolesAndAdmins(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/roles-to-categories", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{
			"status_code": 200,
			"message": "ok",
			"data": {
				"roles": [{"id": 3, "name": "Editors"}],
				"admins": [{"id": 7, "name": "Jane Doe", "role_id": 3, "status": "Active"}]
			}
		}`))
	})

	out, err := c.ListRolesAndAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Roles, 1)
	assert.Equal(t, "Editors", out.Roles[0].Name)
	require.Len(t, out.Admins, 1)
	assert.Equal(t, 3, out.Admins[0].RoleID)
}
