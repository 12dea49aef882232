package contracts

import (
	"github.com/dmogiovanni/teugestor-backend/internal/domain/creditcard"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transaction"

	"github.com/shopspring/decimal"
)

type CreditCardCreateRequest struct {
	Name       string          `json:"name" binding:"required,max=100"`
	Brand      string          `json:"brand" binding:"omitempty,max=30"`
	CardLimit  decimal.Decimal `json:"card_limit"`
	ClosingDay int             `json:"closing_day" binding:"required,min=1,max=31"`
	DueDay     int             `json:"due_day" binding:"required,min=1,max=31"`
	IsDefault  bool            `json:"is_default"`
}

type CreditCardUpdateRequest struct {
	Name       *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Brand      *string          `json:"brand" binding:"omitempty,max=30"`
	CardLimit  *decimal.Decimal `json:"card_limit"`
	ClosingDay *int             `json:"closing_day" binding:"omitempty,min=1,max=31"`
	DueDay     *int             `json:"due_day" binding:"omitempty,min=1,max=31"`
	IsDefault  *bool            `json:"is_default"`
}

type CreditCardResponse struct {
	Message    string                 `json:"message,omitempty"`
	CreditCard *creditcard.CreditCard `json:"credit_card"`
}

type CreditCardListResponse struct {
	CreditCards []*creditcard.CreditCard `json:"credit_cards"`
	Total       int                      `json:"total"`
}

type InvoiceCreateRequest struct {
	CreditCardID string `json:"credit_card_id" binding:"required"`
	Month        int    `json:"month" binding:"required,min=1,max=12"`
	Year         int    `json:"year" binding:"required,min=2000,max=2100"`
	DueDate      string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Note         string `json:"note" binding:"omitempty,max=500"`
}

type InvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type InvoiceResponse struct {
	Message string              `json:"message,omitempty"`
	Invoice *creditcard.Invoice `json:"invoice"`
}

type InvoiceListResponse struct {
	Invoices []*creditcard.Invoice `json:"invoices"`
	Total    int                   `json:"total"`
}

// ExpenseCreateRequest covers both single and installment purchases.
// Installment purchases set IsInstallment, InstallmentCount,
// FirstInstallmentDate and CreditCardID; single purchases set PurchaseDate
// and either InvoiceID or CreditCardID.
type ExpenseCreateRequest struct {
	InvoiceID            string          `json:"invoice_id"`
	CreditCardID         string          `json:"credit_card_id"`
	CategoryID           string          `json:"category_id" binding:"required"`
	Name                 string          `json:"name" binding:"required,max=255"`
	Amount               decimal.Decimal `json:"amount"`
	PurchaseDate         string          `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	Note                 string          `json:"note" binding:"omitempty,max=500"`
	IsInstallment        bool            `json:"is_installment"`
	InstallmentCount     int             `json:"installment_count"`
	FirstInstallmentDate string          `json:"first_installment_date" binding:"omitempty,datetime=2006-01-02"`
}

type ExpenseUpdateRequest struct {
	CategoryID   *string          `json:"category_id"`
	Name         *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Amount       *decimal.Decimal `json:"amount"`
	PurchaseDate *string          `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	Note         *string          `json:"note" binding:"omitempty,max=500"`
}

type ExpenseResponse struct {
	Message string              `json:"message,omitempty"`
	Expense *creditcard.Expense `json:"expense"`
}

type InstallmentPlanResponse struct {
	Message          string                `json:"message"`
	InstallmentCount int                   `json:"installment_count"`
	TotalAmount      decimal.Decimal       `json:"total_amount"`
	BaseAmount       decimal.Decimal       `json:"base_amount"`
	Remainder        decimal.Decimal       `json:"remainder"`
	Expenses         []*creditcard.Expense `json:"expenses"`
}

type InvoicePaymentRequest struct {
	InvoiceID     string `json:"invoice_id" binding:"required"`
	BankAccountID string `json:"bank_account_id" binding:"required"`
	CategoryID    string `json:"category_id" binding:"required"`
	PaymentDate   string `json:"payment_date" binding:"required,datetime=2006-01-02"`
}

type InvoicePaymentResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
	Invoice     *creditcard.Invoice      `json:"invoice"`
}
