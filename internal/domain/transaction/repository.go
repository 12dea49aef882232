package transaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, transactionID ulid.ULID, userID uuid.UUID) error
	GetByID(ctx context.Context, transactionID ulid.ULID, userID uuid.UUID) (*Transaction, error)
}
