package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
	"github.com/petmily/petmily-api/internal/pkg/auth"
)

func newTestAuthService() (AuthService, *fakeUserStore, *fakeTokenStore) {
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "petmily.test",
	})
	svc := NewAuthService(users, tokens, jwtService, zerolog.Nop())
	return svc, users, tokens
}

func TestSignupOpensSession(t *testing.T) {
	svc, users, tokens := newTestAuthService()

	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username:        "alice",
		Password:        "1234",
		PasswordConfirm: "1234",
		Nickname:        "Alice",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int(time.Hour.Seconds()), resp.ExpiresIn)
	require.NotNil(t, resp.User)
	assert.Equal(t, "alice", resp.User.Username)
	assert.True(t, strings.HasPrefix(resp.User.ProfileImageURL, "https://api.dicebear.com/"),
		"new accounts get a generated avatar")

	stored, err := users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "1234", stored.Password)

	_, err = tokens.GetByValue(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
}

func TestSignupPasswordRules(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username:        "alice",
		Password:        "1234",
		PasswordConfirm: "5678",
		Nickname:        "Alice",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)

	_, err = svc.Signup(context.Background(), &dto.SignupRequest{
		Username:        "alice",
		Password:        "123",
		PasswordConfirm: "123",
		Nickname:        "Alice",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordTooShort)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, _, _ := newTestAuthService()

	req := &dto.SignupRequest{
		Username:        "alice",
		Password:        "1234",
		PasswordConfirm: "1234",
		Nickname:        "Alice",
	}

	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username:        "alice",
		Password:        "1234",
		PasswordConfirm: "1234",
		Nickname:        "Alice",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "1234"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "1234"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _, tokens := newTestAuthService()

	signup, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username:        "alice",
		Password:        "1234",
		PasswordConfirm: "1234",
		Nickname:        "Alice",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), signup.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, signup.RefreshToken, refreshed.RefreshToken)

	// The presented token was revoked during rotation
	old, err := tokens.GetByValue(context.Background(), signup.RefreshToken)
	require.NoError(t, err)
	assert.True(t, old.Revoked)

	_, err = svc.RefreshToken(context.Background(), signup.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshTokenUnknown(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.RefreshToken(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestLogout(t *testing.T) {
	svc, _, tokens := newTestAuthService()

	signup, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username:        "alice",
		Password:        "1234",
		PasswordConfirm: "1234",
		Nickname:        "Alice",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), signup.RefreshToken))

	stored, err := tokens.GetByValue(context.Background(), signup.RefreshToken)
	require.NoError(t, err)
	assert.True(t, stored.Revoked)

	// Logging out an unknown session is a no-op
	assert.NoError(t, svc.Logout(context.Background(), "unknown"))
}
