//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"lionrewards/internal/domain/user"
	"lionrewards/internal/pkg/config"
	"lionrewards/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role.String())
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role.String())
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// Member and Admin are shorthands for the two roles the gate knows about.
func (h *JWTHelper) Member(t *testing.T, userID int64) string {
	t.Helper()
	return h.GenerateToken(t, userID, user.RoleMember)
}

func (h *JWTHelper) Admin(t *testing.T, userID int64) string {
	t.Helper()
	return h.GenerateToken(t, userID, user.RoleAdmin)
}
