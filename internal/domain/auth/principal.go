package auth

import (
	"context"

	"github.com/google/uuid"
)

// Principal is the identity proven by a bearer token.
type Principal struct {
	ID    uuid.UUID
	Email string
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}
