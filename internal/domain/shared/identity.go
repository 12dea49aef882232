package shared

import (
	"context"

	"github.com/google/uuid"
)

type NewIdentity struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// IdentityProvider provisions principals in the hosted auth service.
type IdentityProvider interface {
	CreateUser(ctx context.Context, identity NewIdentity) (uuid.UUID, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
