package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/infrastructure/config"
)

func newTestJWTService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-that-is-long-enough",
		TokenExpiration: expiration,
		Issuer:          "etsyali-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Run("round-trips the identity claims", func(t *testing.T) {
		svc := newTestJWTService(time.Hour)
		userID := uuid.New()

		token, expiresAt, err := svc.GenerateToken(userID, "admin", RoleAdmin)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, RoleAdmin, claims.Role)

		parsed, err := claims.GetUserUUID()
		require.NoError(t, err)
		assert.Equal(t, userID, parsed)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		svc := newTestJWTService(-time.Minute)

		token, _, err := svc.GenerateToken(uuid.New(), "admin", RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		svc := newTestJWTService(time.Hour)
		other := NewJWTService(config.JWTConfig{
			Secret:          "a-completely-different-signing-secret",
			TokenExpiration: time.Hour,
			Issuer:          "etsyali-test",
		})

		token, _, err := other.GenerateToken(uuid.New(), "admin", RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		svc := newTestJWTService(time.Hour)

		claims, err := svc.ValidateToken("not.a.token")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHashPassword(t *testing.T) {
	t.Run("verifies the original password only", func(t *testing.T) {
		hash, err := HashPassword("motdepasse")
		require.NoError(t, err)

		user := &Utilisateur{PasswordHash: hash}
		assert.True(t, user.CheckPassword("motdepasse"))
		assert.False(t, user.CheckPassword("autre"))
	})
}
