package services

import (
	"testing"

	"inklink_backend/internal/auth"
	"inklink_backend/internal/config"
	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories/memory"
	"inklink_backend/internal/services/dto"
	"inklink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	return NewAuthService(memory.NewUserRepository(memory.NewStore()))
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:    "ink@example.com",
		Username: "inkmaster",
		Password: "correct-horse9",
		Role:     models.UserRoleArtist,
		Name:     "Ink Master",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(registerRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, models.UserRoleArtist, resp.User.Role)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, models.UserRoleArtist, claims.Role)

	login, err := svc.Login(&dto.LoginRequest{Email: "ink@example.com", Password: "correct-horse9"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc := newAuthService(t)

	req := registerRequest()
	req.Role = models.UserRoleAdmin
	_, err := svc.Register(req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Username = "different"
	_, err = svc.Register(dup)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "ink@example.com", Password: "wrong"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(&dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
}
