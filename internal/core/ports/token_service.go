package ports

import "github.com/comisarias/novedades-api/internal/core/domain"

// TokenService issues and verifies the bearer tokens carried on every
// protected request.
type TokenService interface {
	// Issue produces a signed, self-contained token for the user.
	Issue(user *domain.User) (string, error)
	// Verify validates the signature and expiry of a presented token and
	// returns the embedded claim. Errors: domain.ErrMissingToken,
	// domain.ErrInvalidToken, domain.ErrExpiredToken.
	Verify(raw string) (*domain.Claim, error)
}
