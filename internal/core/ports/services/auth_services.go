package services

import (
	"context"

	"github.com/zetaenergy/zeta_books/internal/dto"
)

// AuthSvcFacade is the single-password access gate. It carries no
// per-user identity: one shared secret unlocks the application, and a
// short-lived session token is issued so subsequent requests can skip the
// password check.
type AuthSvcFacade interface {
	// Login verifies the shared password and returns a signed session
	// token. Returns apperrors.ErrUnauthorized on a mismatch.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
