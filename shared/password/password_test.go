package password_test

import (
	"frontdesk/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		cost     int
		wantErr  error
		wantCost int
	}{
		{name: "configured cost", password: "frontdesk-2026", cost: bcrypt.MinCost, wantCost: bcrypt.MinCost},
		{name: "out of range cost falls back", password: "frontdesk-2026", cost: 1, wantCost: bcrypt.DefaultCost},
		{name: "empty password", password: "", cost: bcrypt.MinCost, wantErr: password.ErrEmptyPassword},
		{name: "longer than bcrypt accepts", password: strings.Repeat("a", password.MaxLength+1), cost: bcrypt.MinCost, wantErr: password.ErrPasswordTooLong},
		{name: "exactly at the limit", password: strings.Repeat("a", password.MaxLength), cost: bcrypt.MinCost, wantCost: bcrypt.MinCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password, tt.cost)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cost)
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("reception-desk", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "match", password: "reception-desk", hash: hash},
		{name: "mismatch", password: "Reception-desk", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "reception-desk", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "truncated hash", password: "reception-desk", hash: "$2a$04$abc", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
