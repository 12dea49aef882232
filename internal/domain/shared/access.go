package shared

import (
	"context"

	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"

	"github.com/google/uuid"
)

type AccessLevel string

const (
	AccessViewOnly AccessLevel = "view_only"
	AccessFull     AccessLevel = "full_access"
)

func (a AccessLevel) IsValid() bool {
	switch a {
	case AccessViewOnly, AccessFull:
		return true
	}
	return false
}

// Directory resolves delegated access for an authenticated principal.
type Directory interface {
	ResolveEffectiveOwner(ctx context.Context, principal uuid.UUID) (uuid.UUID, error)
	AccessLevel(ctx context.Context, principal uuid.UUID) (AccessLevel, error)
}

// Actor is the resolved caller of a domain operation. OwnerID scopes every
// store call; PrincipalID is only used for auditing and link management.
type Actor struct {
	PrincipalID uuid.UUID
	OwnerID     uuid.UUID
	Access      AccessLevel
	Email       string
}

func (a Actor) IsDelegated() bool {
	return a.PrincipalID != a.OwnerID
}

func (a Actor) RequireFullAccess() error {
	if a.Access != AccessFull {
		return appErrors.ErrViewOnly
	}
	return nil
}

func (a Actor) RequireMainUser() error {
	if a.IsDelegated() {
		return appErrors.ErrForbidden.WithDetails(map[string]interface{}{
			"reason": "usuários vinculados não podem gerenciar vínculos",
		})
	}
	return nil
}

func ResolveActor(ctx context.Context, dir Directory, principal uuid.UUID, email string) (Actor, error) {
	owner, err := dir.ResolveEffectiveOwner(ctx, principal)
	if err != nil {
		return Actor{}, err
	}
	access, err := dir.AccessLevel(ctx, principal)
	if err != nil {
		return Actor{}, err
	}
	return Actor{
		PrincipalID: principal,
		OwnerID:     owner,
		Access:      access,
		Email:       email,
	}, nil
}
