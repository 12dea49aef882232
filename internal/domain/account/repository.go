package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, account *BankAccount) error
	Update(ctx context.Context, account *BankAccount) error
	Deactivate(ctx context.Context, accountID ulid.ULID, userID uuid.UUID) error
	GetActiveByID(ctx context.Context, accountID ulid.ULID, userID uuid.UUID) (*BankAccount, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]*BankAccount, error)
	GetDefault(ctx context.Context, userID uuid.UUID) (*BankAccount, error)
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}
