package creditcard

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Purchase is either a SinglePurchase or an InstallmentPurchase.
type Purchase interface {
	purchase()
}

type PurchaseDetails struct {
	Name       string
	Amount     decimal.Decimal
	CategoryId ulid.ULID
	Note       string
}

// SinglePurchase lands on the invoice of its billing cycle, or on InvoiceId
// when the caller already knows it.
type SinglePurchase struct {
	PurchaseDetails
	PurchaseDate time.Time
	CreditCardId *ulid.ULID
	InvoiceId    *ulid.ULID
}

type InstallmentPurchase struct {
	PurchaseDetails
	CreditCardId         ulid.ULID
	Count                int
	FirstInstallmentDate time.Time
}

func (SinglePurchase) purchase()      {}
func (InstallmentPurchase) purchase() {}

type InstallmentPlan struct {
	InstallmentSplit
	Expenses []*Expense `json:"expenses"`
}

// ExpenseResult carries exactly one of Expense or Plan.
type ExpenseResult struct {
	Expense *Expense         `json:"expense,omitempty"`
	Plan    *InstallmentPlan `json:"installments,omitempty"`
}
