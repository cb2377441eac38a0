package services

import (
	"context"
	"crypto/subtle"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/platform/config"
	"github.com/finbooks/finbooks_backend/internal/utils"
)

// authService implements the AuthSvcFacade for the single admin user.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passwordMatch := utils.VerifyPassword(password, s.cfg.AdminPasswordHash)
	if !usernameMatch || !passwordMatch {
		s.LogInfo(ctx, "Login rejected", "username", username)
		return "", apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token")
		return "", err
	}

	s.LogInfo(ctx, "Login successful", "username", username)
	return token, nil
}
