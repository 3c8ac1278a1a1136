package auth

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mediblues/directory-api/internal/config"
	"github.com/mediblues/directory-api/internal/model"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

func newTestService(adminPassword string) *Service {
	return NewService(
		config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		config.AdminConfig{Email: "admin@example.com", Password: adminPassword, Name: "Admin"},
		zerolog.Nop(),
	)
}

func TestLoginSucceeds(t *testing.T) {
	svc := newTestService("s3cret")
	resp, err := svc.Login(&model.LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@example.com", resp.Admin.Email)
	assert.Equal(t, "admin", resp.Admin.Role)
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	svc := newTestService("s3cret")
	_, err := svc.Login(&model.LoginRequest{Email: "ADMIN@Example.COM", Password: "s3cret"})
	assert.NoError(t, err)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestService("s3cret")
	_, err := svc.Login(&model.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestLoginRejectsWrongEmail(t *testing.T) {
	svc := newTestService("s3cret")
	_, err := svc.Login(&model.LoginRequest{Email: "other@example.com", Password: "s3cret"})
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := newTestService(string(hash))
	_, err = svc.Login(&model.LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	assert.NoError(t, err)

	_, err = svc.Login(&model.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestValidateTokenRoundTrip(t *testing.T) {
	svc := newTestService("s3cret")
	resp, err := svc.Login(&model.LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken("Bearer " + resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenWithoutBearerPrefix(t *testing.T) {
	svc := newTestService("s3cret")
	resp, err := svc.Login(&model.LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.Token)
	assert.NoError(t, err)
}

func TestValidateTokenRejectsEmptyHeader(t *testing.T) {
	svc := newTestService("s3cret")
	_, err := svc.ValidateToken("")
	assert.True(t, apperrors.IsMissingToken(err))

	_, err = svc.ValidateToken("Bearer ")
	assert.True(t, apperrors.IsMissingToken(err))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService("s3cret")
	_, err := svc.ValidateToken("Bearer not.a.token")
	assert.True(t, apperrors.IsInvalidToken(err))
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	other := NewService(
		config.JWTConfig{Secret: "other-secret", ExpiryHours: 1},
		config.AdminConfig{Email: "admin@example.com", Password: "s3cret", Name: "Admin"},
		zerolog.Nop(),
	)
	resp, err := other.Login(&model.LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	require.NoError(t, err)

	svc := newTestService("s3cret")
	_, err = svc.ValidateToken("Bearer " + resp.Token)
	assert.True(t, apperrors.IsInvalidToken(err))
}
