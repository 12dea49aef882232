package creditcard

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceOpen    InvoiceStatus = "open"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceOpen, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// ParseInvoiceStatus accepts the canonical values and the legacy
// aberta/paga/vencida spellings still sent by older clients.
func ParseInvoiceStatus(raw string) (InvoiceStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "open", "aberta":
		return InvoiceOpen, true
	case "paid", "paga":
		return InvoicePaid, true
	case "overdue", "vencida":
		return InvoiceOverdue, true
	}
	return "", false
}

type CardSummary struct {
	Id    ulid.ULID `json:"id"`
	Name  string    `json:"name"`
	Brand string    `json:"brand,omitempty"`
}

// Invoice is unique per (CreditCardId, Month, Year). TotalAmount is derived
// from Expenses and never persisted.
type Invoice struct {
	Id           ulid.ULID       `json:"id"`
	CreditCardId ulid.ULID       `json:"credit_card_id"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	DueDate      time.Time       `json:"due_date"`
	Status       InvoiceStatus   `json:"status"`
	Note         string          `json:"note,omitempty"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Card         *CardSummary    `json:"credit_card,omitempty"`
	Expenses     []*Expense      `json:"expenses"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (i *Invoice) Cycle() Cycle {
	return Cycle{Month: i.Month, Year: i.Year}
}

func (i *Invoice) RecomputeTotal() {
	i.TotalAmount = lo.Reduce(i.Expenses, func(acc decimal.Decimal, e *Expense, _ int) decimal.Decimal {
		return acc.Add(e.Amount)
	}, decimal.Zero)
}

func (i *Invoice) CardName() string {
	if i.Card == nil {
		return ""
	}
	return i.Card.Name
}

type InvoiceFilter struct {
	CreditCardId *ulid.ULID
	Status       *InvoiceStatus
	Month        *int
	Year         *int
}
