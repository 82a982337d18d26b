package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueToken(t *testing.T, issuer, subject string, ttl time.Duration, key string) string {
	t.Helper()

	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}).SignedString([]byte(key))
	require.NoError(t, err)

	return signed
}

func TestAuthService_ParseToken(t *testing.T) {
	cfg := config.App{TokenSignKey: "secret", TokenIssuer: "food-keeper-auth"}
	svc := NewAuthService(cfg, logger.Nop())

	valid := issueToken(t, cfg.TokenIssuer, "user-42", time.Hour, cfg.TokenSignKey)
	wrongKey := issueToken(t, cfg.TokenIssuer, "user-42", time.Hour, "other-secret")
	wrongIssuer := issueToken(t, "someone-else", "user-42", time.Hour, cfg.TokenSignKey)
	expired := issueToken(t, cfg.TokenIssuer, "user-42", -time.Minute, cfg.TokenSignKey)

	token, err := svc.ParseToken(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, "user-42", token.UserID)

	for name, raw := range map[string]string{
		"wrong key":    wrongKey,
		"wrong issuer": wrongIssuer,
		"expired":      expired,
		"garbage":      "not.a.token",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
