package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{
			name: "complete admin record",
			user: User{ID: "u1", Email: "a@x.com", Role: RoleAdmin, IsActive: true},
		},
		{
			name: "complete user record",
			user: User{ID: "u2", Email: "b@x.com", Role: RoleUser},
		},
		{
			name:    "missing id",
			user:    User{Email: "a@x.com", Role: RoleUser},
			wantErr: true,
		},
		{
			name:    "missing email",
			user:    User{ID: "u1", Role: RoleUser},
			wantErr: true,
		},
		{
			name:    "unknown role",
			user:    User{ID: "u1", Email: "a@x.com", Role: Role("root")},
			wantErr: true,
		},
		{
			name:    "empty role",
			user:    User{ID: "u1", Email: "a@x.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_JSONContract(t *testing.T) {
	raw := `{
		"id": "66f0",
		"firstName": "Ann",
		"lastName": "Lee",
		"email": "ann@x.com",
		"mobileNumber": "+15551234567",
		"address": {"location": "12 Main St", "coordinates": {"lat": 6.9, "lng": 79.8}},
		"role": "admin",
		"isActive": true
	}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))

	assert.Equal(t, "66f0", u.ID)
	assert.Equal(t, "Ann Lee", u.FullName())
	assert.True(t, u.IsAdmin())
	assert.True(t, u.IsActive)
	require.NotNil(t, u.Address)
	assert.Equal(t, 79.8, u.Address.Coordinates.Lng)
	require.NoError(t, u.Validate())
}

func TestUser_FullName_PartialNames(t *testing.T) {
	u := User{FirstName: "Ann"}
	assert.Equal(t, "Ann", u.FullName())

	u = User{LastName: "Lee"}
	assert.Equal(t, "Lee", u.FullName())
}
