package creditcard

import (
	"context"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/account"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/category"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transaction"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type AccountGetter interface {
	GetOwnedAccount(ctx context.Context, ownerID uuid.UUID, accountID ulid.ULID) (*account.BankAccount, error)
}

type CategoryGetter interface {
	GetOwnedCategory(ctx context.Context, ownerID uuid.UUID, categoryID ulid.ULID) (*category.Category, error)
}

type TransactionLedger interface {
	Record(ctx context.Context, tx *transaction.Transaction) error
	Remove(ctx context.Context, transactionID ulid.ULID, ownerID uuid.UUID) error
}
