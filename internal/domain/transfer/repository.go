package transfer

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, t *Transfer) error
	Update(ctx context.Context, t *Transfer) error
	Delete(ctx context.Context, transferID ulid.ULID, userID uuid.UUID) error
	GetByID(ctx context.Context, transferID ulid.ULID, userID uuid.UUID) (*Transfer, error)
	// List returns transfers newest first with FromAccount and ToAccount filled.
	List(ctx context.Context, userID uuid.UUID) ([]*Transfer, error)
}

type AccountChecker interface {
	EnsureOwnedAccounts(ctx context.Context, ownerID uuid.UUID, accountIDs ...ulid.ULID) error
}
