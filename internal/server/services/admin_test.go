package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/brandstack/cardlink/internal/common"
	"github.com/brandstack/cardlink/internal/server/config"
)

func newAdminService(t *testing.T, password string) *AdminService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		cfg.AdminPasswordHash = string(hash)
	}
	return NewAdminService(cfg)
}

func TestLogin_Success(t *testing.T) {
	svc := newAdminService(t, "hunter2")

	token, err := svc.Login(context.Background(), "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.VerifyToken(token))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAdminService(t, "hunter2")

	_, err := svc.Login(context.Background(), "guess")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_DisabledWhenNoHashConfigured(t *testing.T) {
	svc := newAdminService(t, "")

	_, err := svc.Login(context.Background(), "anything")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestVerifyToken_Invalid(t *testing.T) {
	svc := newAdminService(t, "hunter2")

	assert.ErrorIs(t, svc.VerifyToken("garbage"), common.ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	a := newAdminService(t, "hunter2")
	b := NewAdminService(&config.Config{
		SecretKey:                   "other-secret",
		AccessTokenValidityDuration: time.Hour,
	})

	token, err := a.Login(context.Background(), "hunter2")
	require.NoError(t, err)

	assert.ErrorIs(t, b.VerifyToken(token), common.ErrInvalidToken)
}
