package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T, password string) *AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(AuthServiceConfig{
		Secret:             "test-secret",
		EditorPasswordHash: string(hash),
		TTL:                time.Hour,
	}, nil)
}

func TestAuthServiceLoginAndVerify(t *testing.T) {
	svc := newAuthService(t, "newsroom-pass")

	token, expiresAt, err := svc.Login("newsroom-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "editor", claims.Subject)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t, "newsroom-pass")

	_, _, err := svc.Login("wrong")
	assert.Error(t, err)

	_, _, err = svc.Login("")
	assert.Error(t, err)
}

func TestAuthServiceVerifyRejectsGarbage(t *testing.T) {
	svc := newAuthService(t, "newsroom-pass")

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)

	_, err = svc.Verify("")
	assert.Error(t, err)
}

func TestAuthServiceVerifyRejectsForeignSignature(t *testing.T) {
	svc := newAuthService(t, "newsroom-pass")
	other := NewAuthService(AuthServiceConfig{
		Secret:             "other-secret",
		EditorPasswordHash: svc.cfg.EditorPasswordHash,
		TTL:                time.Hour,
	}, nil)

	token, _, err := other.Login("newsroom-pass")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}
