package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zetaenergy/zeta_books/internal/apperrors"
	portssvc "github.com/zetaenergy/zeta_books/internal/core/ports/services"
	"github.com/zetaenergy/zeta_books/internal/dto"
	"github.com/zetaenergy/zeta_books/internal/platform/config"
	"github.com/zetaenergy/zeta_books/internal/utils"
)

// tokenSubject is the fixed JWT subject: there are no user accounts behind
// the gate.
const tokenSubject = "bookkeeper"

// authService implements the single-password access gate. It is not a
// security boundary beyond gating UI visibility; the token only saves
// re-sending the shared password on every request.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates the access gate service.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login implements portssvc.AuthSvcFacade. When APP_PASSWORD_HASH is set it
// takes precedence and the bcrypt hash is compared; otherwise the plaintext
// APP_PASSWORD is compared in constant time.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if !s.passwordMatches(req.Password) {
		s.LogWarn(ctx, "Rejected login attempt")
		return nil, apperrors.ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(tokenSubject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token")
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.LogInfo(ctx, "Access gate unlocked")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *authService) passwordMatches(candidate string) bool {
	if s.cfg.AppPasswordHash != "" {
		return utils.CheckPasswordHash(candidate, s.cfg.AppPasswordHash)
	}
	return utils.ConstantTimeEquals(candidate, s.cfg.AppPassword)
}
