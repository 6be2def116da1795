package token_adapter

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realnest-backend/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Email: "aigerim@example.com",
		Role:  domain.RoleUser,
	}
}

func TestNewTokenService_EmptyKey(t *testing.T) {
	svc, err := NewTokenService("")
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	user := testUser()
	token, err := svc.GenerateToken(context.Background(), user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), testUser(), -time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer, err := NewTokenService("key-one")
	require.NoError(t, err)
	verifier, err := NewTokenService("key-two")
	require.NoError(t, err)

	token, err := issuer.GenerateToken(context.Background(), testUser(), time.Hour)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(context.Background(), token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_RejectsWrongAlgorithm(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	// Токен без подписи должен отклоняться проверкой метода подписи.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"email":   "aigerim@example.com",
		"role":    domain.RoleUser,
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_GarbageToken(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), "not-a-jwt")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
