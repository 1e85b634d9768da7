package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
	assert.False(t, data.Skip)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
		wantRole []string
	}{
		{name: "login is public", path: "/v1/auth/login", method: http.MethodPost, wantSkip: true},
		{name: "gallery listing is public", path: "/v1/gallery/", method: http.MethodGet, wantSkip: true},
		{name: "gallery upload is admin only", path: "/v1/gallery/", method: http.MethodPost, wantRole: []string{"admin"}},
		{name: "users are admin only", path: "/v1/users/{id}", method: http.MethodGet, wantRole: []string{"admin"}},
		{name: "check-in is open to reception", path: "/v1/bookings/{id}/checkin", method: http.MethodPut, wantRole: []string{"admin", "reception"}},
		{name: "register is admin only", path: "/v1/auth/register", method: http.MethodPost, wantRole: []string{"admin"}},
		{name: "active offers are public", path: "/v1/offers/", method: http.MethodGet, wantSkip: true},
		{name: "offer creation is admin only", path: "/v1/offers/", method: http.MethodPost, wantRole: []string{"admin"}},
		{name: "room images are public", path: "/v1/rooms/{id}/images/", method: http.MethodGet, wantSkip: true},
		{name: "room image removal is admin only", path: "/v1/rooms/{id}/images/{imageID}", method: http.MethodDelete, wantRole: []string{"admin"}},
		{name: "unknown route", path: "/v1/unknown", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRole, permission.Permissions)
		})
	}
}

func TestPermission_Allows(t *testing.T) {
	tests := []struct {
		name       string
		permission permissions.Permission
		role       string
		want       bool
	}{
		{name: "listed role", permission: permissions.Permission{Permissions: []string{"admin"}}, role: "admin", want: true},
		{name: "unlisted role", permission: permissions.Permission{Permissions: []string{"admin"}}, role: "reception", want: false},
		{name: "no roles listed", permission: permissions.Permission{}, role: "reception", want: true},
		{name: "public route", permission: permissions.Permission{Skip: true, Permissions: []string{"admin"}}, role: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.permission.Allows(tt.role))
		})
	}
}

func TestPermissionData_FindPermissions_FirstEntryWins(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/rooms/{id}", Method: http.MethodDelete, Permissions: []string{"admin"}},
			{Path: "/v1/rooms/{id}/", Method: http.MethodDelete, Permissions: []string{"reception"}},
		},
	}

	assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/rooms/{id}", http.MethodDelete).Permissions)
}
