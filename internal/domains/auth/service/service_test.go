package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	jwtMocks "frontdesk/infras/jwt/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/auth/service"
	userMocks "frontdesk/internal/domains/user/mocks"
	userModel "frontdesk/internal/domains/user/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/password"
)

type fixture struct {
	svc       service.Auth
	userRepo  *userMocks.MockUser
	jwt       *jwtMocks.MockJWT
	mockCache *cacheMocks.MockRedisCache
	writes    *cacheMocks.Writes
}

func setup(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		userRepo:  userMocks.NewMockUser(ctrl),
		jwt:       jwtMocks.NewMockJWT(ctrl),
		mockCache: cacheMocks.NewMockRedisCache(ctrl),
		writes:    cacheMocks.NewWrites(),
	}

	f.writes.Record(f.mockCache)

	cfg := &config.Config{}
	cfg.App.PasswordCost = bcrypt.MinCost

	f.svc = service.New(f.userRepo, cfg, f.mockCache, mocks.NewOtel(), f.jwt)

	return f
}

func TestAuthService_Register(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name       string
		req        dto.RegisterRequest
		setupMock  func()
		wantWrites []string
		wantKind   string
	}{
		{
			name: "successful registration",
			req:  dto.RegisterRequest{Username: "desk", Password: "secret123", Role: "Reception"},
			setupMock: func() {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, userModel.RoleReception, user.Role)
						assert.NotEqual(t, "secret123", user.Password)
						assert.NoError(t, password.Verify("secret123", user.Password))

						return nil
					})
			},
			wantWrites: []string{userModel.CachePrefix},
		},
		{
			name:      "unknown role",
			req:       dto.RegisterRequest{Username: "desk", Password: "secret123", Role: "manager"},
			setupMock: func() {},
			wantKind:  failure.KindInvalidInput,
		},
		{
			name: "duplicate username",
			req:  dto.RegisterRequest{Username: "desk", Password: "secret123", Role: "admin"},
			setupMock: func() {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantKind: failure.KindConflict,
		},
		{
			name: "unique violation on insert",
			req:  dto.RegisterRequest{Username: "desk", Password: "secret123", Role: "admin"},
			setupMock: func() {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantKind: failure.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Register(context.Background(), tt.req)

			f.writes.Wait(t, tt.wantWrites...)

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "desk", res.Username)
			assert.Equal(t, "reception", res.Role)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	f := setup(t)

	hashed, err := password.Hash("password", bcrypt.MinCost)
	require.NoError(t, err)

	validUser := userModel.User{
		ID:       "user-id-123",
		Username: "admin",
		Password: hashed,
		Role:     userModel.RoleAdmin,
	}

	tests := []struct {
		name       string
		req        dto.LoginRequest
		setupMock  func()
		wantWrites []string
		wantKind   string
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Username: "admin", Password: "password"},
			setupMock: func() {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				f.jwt.EXPECT().
					GenerateTokenPair(gomock.Any(), validUser.ID, validUser.Username, "admin").
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", ExpiresIn: 900}, nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantWrites: []string{userModel.CachePrefix},
		},
		{
			name: "last login update failure does not block login",
			req:  dto.LoginRequest{Username: "admin", Password: "password"},
			setupMock: func() {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", ExpiresIn: 900}, nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
		},
		{
			name: "unknown user",
			req:  dto.LoginRequest{Username: "ghost", Password: "password"},
			setupMock: func() {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "admin", Password: "wrongpassword"},
			setupMock: func() {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Username: "admin", Password: "password"},
			setupMock: func() {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("db down"))
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Login(context.Background(), tt.req)

			f.writes.Wait(t, tt.wantWrites...)

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
			assert.Equal(t, int64(900), res.ExpiresIn)
			assert.Equal(t, "admin", res.Role)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	f := setup(t)

	t.Run("valid refresh token", func(t *testing.T) {
		f.jwt.EXPECT().RefreshTokens(gomock.Any(), "refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		f.jwt.EXPECT().RefreshTokens(gomock.Any(), "bogus").Return(nil, jwt.ErrInvalidToken)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bogus"})

		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})
}
