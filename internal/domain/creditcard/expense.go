package creditcard

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Expense struct {
	Id               ulid.ULID       `json:"id"`
	InvoiceId        ulid.ULID       `json:"invoice_id"`
	CategoryId       ulid.ULID       `json:"category_id"`
	Name             string          `json:"name"`
	Amount           decimal.Decimal `json:"amount"`
	PurchaseDate     time.Time       `json:"purchase_date"`
	Note             string          `json:"note,omitempty"`
	InstallmentLabel *string         `json:"installment_label,omitempty"`
	InstallmentCount *int            `json:"installment_count,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (e *Expense) IsInstallment() bool {
	return e.InstallmentLabel != nil
}
