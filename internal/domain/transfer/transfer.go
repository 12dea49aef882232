package transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type AccountRef struct {
	Id   ulid.ULID `json:"id"`
	Name string    `json:"name"`
}

type Transfer struct {
	Id            ulid.ULID       `json:"id"`
	UserId        uuid.UUID       `json:"user_id"`
	FromAccountId ulid.ULID       `json:"from_account_id"`
	ToAccountId   ulid.ULID       `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	TransferDate  time.Time       `json:"transfer_date"`
	Description   string          `json:"description,omitempty"`
	FromAccount   *AccountRef     `json:"from_account,omitempty"`
	ToAccount     *AccountRef     `json:"to_account,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CreateTransferRequest struct {
	FromAccountId ulid.ULID
	ToAccountId   ulid.ULID
	Amount        decimal.Decimal
	TransferDate  time.Time
	Description   string
}

type UpdateTransferRequest struct {
	FromAccountId *ulid.ULID
	ToAccountId   *ulid.ULID
	Amount        *decimal.Decimal
	TransferDate  *time.Time
	Description   *string
}

type ActiveAccount struct {
	Id    ulid.ULID `json:"id"`
	Name  string    `json:"name"`
	Count int       `json:"count"`
}

type Stats struct {
	TotalTransfers    int             `json:"total_transfers"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	MonthlyTransfers  int             `json:"monthly_transfers"`
	MonthlyAmount     decimal.Decimal `json:"monthly_amount"`
	MostActiveAccount *ActiveAccount  `json:"most_active_account"`
}
