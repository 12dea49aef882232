package creditcard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Repository scopes every read by the effective owner. Lookups that match no
// row return shared.ErrRecordNotFound; inserts that hit the invoice natural key
// return an error satisfying shared.IsUniqueConstraintError.
type Repository interface {
	CreateCreditCard(ctx context.Context, card *CreditCard) error
	UpdateCreditCard(ctx context.Context, card *CreditCard) error
	DeleteCreditCard(ctx context.Context, cardID ulid.ULID, userID uuid.UUID) error
	GetCreditCardById(ctx context.Context, cardID ulid.ULID, userID uuid.UUID) (*CreditCard, error)
	ListCreditCards(ctx context.Context, userID uuid.UUID) ([]*CreditCard, error)
	ClearDefaultCreditCard(ctx context.Context, userID uuid.UUID) error

	CreateInvoice(ctx context.Context, invoice *Invoice) error
	UpdateInvoiceStatus(ctx context.Context, invoiceID ulid.ULID, status InvoiceStatus, updatedAt time.Time) error
	// MarkInvoicePaid flips a not yet paid invoice to paid and returns
	// shared.ErrRecordNotFound when no row changed.
	MarkInvoicePaid(ctx context.Context, invoiceID ulid.ULID, updatedAt time.Time) error
	DeleteInvoice(ctx context.Context, invoiceID ulid.ULID) error
	GetInvoiceById(ctx context.Context, invoiceID ulid.ULID, userID uuid.UUID) (*Invoice, error)
	GetInvoiceByCycle(ctx context.Context, cardID ulid.ULID, month, year int) (*Invoice, error)
	ListInvoices(ctx context.Context, userID uuid.UUID, filter InvoiceFilter) ([]*Invoice, error)

	CreateExpense(ctx context.Context, expense *Expense) error
	UpdateExpense(ctx context.Context, expense *Expense) error
	DeleteExpense(ctx context.Context, expenseID ulid.ULID) error
	DeleteExpenses(ctx context.Context, expenseIDs []ulid.ULID) error
	GetExpenseById(ctx context.Context, expenseID ulid.ULID, userID uuid.UUID) (*Expense, error)
}
