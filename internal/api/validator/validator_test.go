package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleForm struct {
	Name        string   `json:"name" validate:"required"`
	Status      string   `json:"status" validate:"required,admin_status"`
	Permissions []string `json:"permissions" validate:"dive,permission_title"`
	Model       string   `json:"model_name" validate:"omitempty,recycle_model"`
}

func TestValidate_Passes(t *testing.T) {
	v := NewValidator()
	require.NotNil(t, v)

	err := v.Validate(roleForm{
		Name:        "Editors",
		Status:      "Active",
		Permissions: []string{"files-read", "recycleBin-manage"},
		Model:       "folder",
	})
	assert.NoError(t, err)
}

func TestValidate_AdminStatus(t *testing.T) {
	v := NewValidator()

	err := v.Validate(roleForm{Name: "Editors", Status: "Suspended"})
	require.Error(t, err)

	var ve ValidationErrors
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve, 1)
	assert.Equal(t, "status", ve[0].Field())
	assert.Equal(t, "admin_status", ve[0].Tag())
}

func TestValidate_PermissionTitle(t *testing.T) {
	v := NewValidator()

	valid := []string{"files-read", "recycleBin-manage", "news-send"}
	assert.NoError(t, v.Validate(roleForm{Name: "x", Status: "Active", Permissions: valid}))

	invalid := []string{"files", "files-", "-read", "files-Read", "files read"}
	for _, title := range invalid {
		err := v.Validate(roleForm{Name: "x", Status: "Active", Permissions: []string{title}})
		assert.Error(t, err, "title %q", title)
	}
}

func TestValidate_RecycleModel(t *testing.T) {
	v := NewValidator()

	for _, model := range []string{"category", "folder", "file", "document"} {
		assert.NoError(t, v.Validate(roleForm{Name: "x", Status: "Active", Model: model}))
	}
	assert.Error(t, v.Validate(roleForm{Name: "x", Status: "Active", Model: "attachment"}))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(roleForm{Status: "Active"})
	var ve ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve[0].Field())
	assert.Contains(t, ve.Error(), "name")
}
