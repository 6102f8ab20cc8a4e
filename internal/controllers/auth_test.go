package controllers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/adamanr/budget_planner/internal/config"
	"github.com/adamanr/budget_planner/internal/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func withUser(t *testing.T, deps *Dependens, username, password string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	deps.Config.Auth.Users = append(deps.Config.Auth.Users, config.User{
		Username: username, PasswordHash: string(hash), Role: "admin",
	})
}

func isKey(prefix string) interface{} {
	return mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, prefix) })
}

func TestAuthController_AuthLogin(t *testing.T) {
	tests := []struct {
		name        string
		loginReq    *entity.LoginRequest
		setupMocks  func(*MockRedis)
		expectError error
	}{
		{
			name:     "success",
			loginReq: &entity.LoginRequest{Username: "admin", Password: "password123"},
			setupMocks: func(mockRedis *MockRedis) {
				mockRedis.On("Set", mock.Anything, isKey("access_token:"), "valid", time.Hour).Return(nil)
				mockRedis.On("Set", mock.Anything, isKey("refresh_token:"), "valid", 24*time.Hour).Return(nil)
			},
		},
		{
			name:        "user not found",
			loginReq:    &entity.LoginRequest{Username: "nobody", Password: "password123"},
			setupMocks:  func(*MockRedis) {},
			expectError: ErrInvalidCredentials,
		},
		{
			name:        "invalid password",
			loginReq:    &entity.LoginRequest{Username: "admin", Password: "wrongpassword"},
			setupMocks:  func(*MockRedis) {},
			expectError: ErrInvalidCredentials,
		},
		{
			name:     "redis error on access token",
			loginReq: &entity.LoginRequest{Username: "admin", Password: "password123"},
			setupMocks: func(mockRedis *MockRedis) {
				mockRedis.On("Set", mock.Anything, isKey("access_token:"), "valid", time.Hour).Return(errors.New("redis error"))
			},
			expectError: errors.New("redis error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRedis := new(MockRedis)
			tt.setupMocks(mockRedis)

			deps := CreateTestDependencies(t, nil, mockRedis)
			withUser(t, deps, "admin", "password123")
			controller := NewAuthController(deps)

			access, refresh, err := controller.AuthLogin(context.Background(), tt.loginReq)

			if tt.expectError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectError.Error(), err.Error())
				assert.Empty(t, access)
				assert.Empty(t, refresh)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, access)
				assert.NotEmpty(t, refresh)
				assert.NotEqual(t, access, refresh)
			}

			mockRedis.AssertExpectations(t)
		})
	}
}

func TestAuthController_CheckUserToken(t *testing.T) {
	deps := CreateTestDependencies(t, nil, nil)
	controller := NewAuthController(deps)

	valid, err := controller.createToken(entity.Claims{Username: "admin", Role: "admin"}, time.Hour)
	require.NoError(t, err)

	expired, err := controller.createToken(entity.Claims{Username: "admin"}, -time.Minute)
	require.NoError(t, err)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, entity.Claims{Username: "admin"}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		setupMocks  func(*MockRedis)
		expectError error
	}{
		{
			name:   "valid token",
			header: "Bearer " + valid,
			setupMocks: func(mockRedis *MockRedis) {
				mockRedis.On("Get", mock.Anything, "access_token:"+valid).Return(nil)
			},
		},
		{
			name:        "missing bearer prefix",
			header:      valid,
			setupMocks:  func(*MockRedis) {},
			expectError: ErrInvalidToken,
		},
		{
			name:   "revoked token",
			header: "Bearer " + valid,
			setupMocks: func(mockRedis *MockRedis) {
				mockRedis.On("Get", mock.Anything, "access_token:"+valid).Return(redis.Nil)
			},
			expectError: ErrTokenRevoked,
		},
		{
			name:   "expired token",
			header: "Bearer " + expired,
			setupMocks: func(mockRedis *MockRedis) {
				mockRedis.On("Get", mock.Anything, "access_token:"+expired).Return(nil)
			},
			expectError: ErrInvalidToken,
		},
		{
			name:   "signed with another secret",
			header: "Bearer " + foreign,
			setupMocks: func(mockRedis *MockRedis) {
				mockRedis.On("Get", mock.Anything, "access_token:"+foreign).Return(nil)
			},
			expectError: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRedis := new(MockRedis)
			tt.setupMocks(mockRedis)
			deps.Redis = mockRedis

			claims, err := controller.CheckUserToken(context.Background(), tt.header)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "admin", claims.Username)
				assert.Equal(t, "admin", claims.Role)
				assert.Len(t, claims.TokenID, TokenSize*2)
			}

			mockRedis.AssertExpectations(t)
		})
	}
}

func TestAuthController_AuthLogout(t *testing.T) {
	mockRedis := new(MockRedis)
	mockRedis.On("Del", mock.Anything, []string{"access_token:abc", "refresh_token:def"}).Return(nil)

	controller := NewAuthController(CreateTestDependencies(t, nil, mockRedis))

	assert.NoError(t, controller.AuthLogout(context.Background(), "Bearer abc", "def"))
	mockRedis.AssertExpectations(t)
}

func TestGenerateTokenID(t *testing.T) {
	deps := CreateTestDependencies(t, nil, nil)

	first, err := generateTokenID(deps.Logger)
	require.NoError(t, err)
	second, err := generateTokenID(deps.Logger)
	require.NoError(t, err)

	assert.Len(t, first, TokenSize*2)
	assert.NotEqual(t, first, second)
}
