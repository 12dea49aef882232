package creditcard

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type CreateCreditCardRequest struct {
	Name       string
	Brand      string
	CardLimit  decimal.Decimal
	ClosingDay int
	DueDay     int
	IsDefault  bool
}

type UpdateCreditCardRequest struct {
	Name       *string
	Brand      *string
	CardLimit  *decimal.Decimal
	ClosingDay *int
	DueDay     *int
	IsDefault  *bool
}

type CreateInvoiceRequest struct {
	CreditCardId ulid.ULID
	Month        int
	Year         int
	DueDate      *time.Time
	Note         string
}

type UpdateExpenseRequest struct {
	Name         *string
	Amount       *decimal.Decimal
	PurchaseDate *time.Time
	CategoryId   *ulid.ULID
	Note         *string
}

type PaymentRequest struct {
	InvoiceId     ulid.ULID
	BankAccountId ulid.ULID
	CategoryId    ulid.ULID
	PaymentDate   time.Time
}
