package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/infras/jwt"
	"frontdesk/internal/domains/auth/model/dto"
	userModel "frontdesk/internal/domains/user/model"
)

func TestRegisterRequest_Normalize(t *testing.T) {
	req := dto.RegisterRequest{Username: "  frontdesk ", Password: "secret123", Role: " Reception"}

	req.Normalize()

	assert.Equal(t, "frontdesk", req.Username)
	assert.Equal(t, "reception", req.Role)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{Username: "frontdesk", Password: "secret123", Role: "reception"}

	user := req.ToUserModel(userModel.RoleReception, "hashed", "system")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "frontdesk", user.Username)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, userModel.RoleReception, user.Role)
	assert.Equal(t, "system", user.CreatedBy)
	assert.Nil(t, user.LastLogin)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair, userModel.User{Username: "admin", Role: userModel.RoleAdmin})

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(900), response.ExpiresIn)
	assert.Equal(t, "admin", response.Role)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}
