package identity

import (
	"context"
	"errors"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Service is the external identity provider the handlers depend on. The
// verified identity is the only source of the acting user's id; handlers never
// trust a client-supplied id.
type Service interface {
	// VerifyToken exchanges a bearer token for the verified user id.
	// Returns ErrInvalidToken when verification fails.
	VerifyToken(ctx context.Context, token string) (string, error)
	// DeleteUser removes the identity record for the given user id.
	DeleteUser(ctx context.Context, uid string) error
}
