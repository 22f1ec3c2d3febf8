package domain

import "errors"

var ErrMissingToken = errors.New("missing token")
var ErrInvalidToken = errors.New("invalid token")
var ErrExpiredToken = errors.New("expired token")
var ErrInsufficientRole = errors.New("insufficient role")

// Claim is the trusted payload of a verified session token. Claims are
// embedded at login and never re-fetched, so a role change in the store only
// takes effect once the token expires.
type Claim struct {
	ID       string
	Username string
	Role     string
}
