package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Types string

const (
	Expense Types = "expense"
	Income  Types = "income"
)

func (t Types) IsValid() bool {
	switch t {
	case Expense, Income:
		return true
	}
	return false
}

type Transaction struct {
	Id            ulid.ULID       `json:"id"`
	UserId        uuid.UUID       `json:"user_id"`
	BankAccountId ulid.ULID       `json:"bank_account_id"`
	CategoryId    ulid.ULID       `json:"category_id"`
	Type          Types           `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"transaction_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
