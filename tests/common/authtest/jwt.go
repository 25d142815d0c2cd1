//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"storefront/internal/domain/user"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/jwt"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs a token the way the identity provider would, using the
// shared HMAC secret.
func (h *JWTHelper) GenerateToken(t *testing.T, customerID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret)
	now := time.Now()
	token, err := service.SignToken(customerID, role, jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Hour)),
	})
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, customerID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret)
	now := time.Now()
	token, err := service.SignToken(customerID, role, jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(-time.Hour)),
	})
	require.NoError(t, err)
	return token
}
