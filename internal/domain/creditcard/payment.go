package creditcard

import (
	"context"
	"fmt"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/category"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transaction"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"
)

type PaymentResult struct {
	Transaction *transaction.Transaction `json:"transaction"`
	Invoice     *Invoice                 `json:"invoice"`
}

// PayInvoice records the payment in the ledger and then marks the invoice
// paid. If the status update fails the ledger row is deleted again so the two
// never disagree.
func (s *Service) PayInvoice(ctx context.Context, actor shared.Actor, req *PaymentRequest) (*PaymentResult, error) {
	if err := actor.RequireFullAccess(); err != nil {
		return nil, err
	}
	if req.PaymentDate.IsZero() {
		return nil, appErrors.NewValidationError("payment_date", "Data de pagamento é obrigatória")
	}

	invoice, err := s.GetInvoice(ctx, actor, req.InvoiceId)
	if err != nil {
		return nil, err
	}
	if invoice.Status == InvoicePaid {
		return nil, appErrors.ErrAlreadyPaid
	}

	if _, err := s.Accounts.GetOwnedAccount(ctx, actor.OwnerID, req.BankAccountId); err != nil {
		return nil, err
	}

	cat, err := s.Categories.GetOwnedCategory(ctx, actor.OwnerID, req.CategoryId)
	if err != nil {
		return nil, err
	}
	if cat.Kind != category.KindExpense {
		return nil, appErrors.ErrInvalidCategory
	}

	tx := &transaction.Transaction{
		Id:            pkg.GenerateULIDObject(),
		UserId:        actor.OwnerID,
		BankAccountId: req.BankAccountId,
		CategoryId:    req.CategoryId,
		Type:          transaction.Expense,
		Amount:        invoice.TotalAmount,
		Description:   paymentDescription(invoice),
		Date:          req.PaymentDate,
	}

	if err := s.Ledger.Record(ctx, tx); err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.Repository.MarkInvoicePaid(ctx, invoice.Id, now); err != nil {
		s.undoPayment(ctx, tx, invoice)
		if shared.IsNotFound(err) {
			return nil, appErrors.ErrAlreadyPaid
		}
		return nil, appErrors.NewStoreError(err)
	}

	invoice.Status = InvoicePaid
	invoice.UpdatedAt = now

	logger.Info().
		Str("invoice_id", invoice.Id.String()).
		Str("transaction_id", tx.Id.String()).
		Str("amount", tx.Amount.StringFixed(2)).
		Msg("Fatura paga")

	return &PaymentResult{Transaction: tx, Invoice: invoice}, nil
}

func (s *Service) undoPayment(ctx context.Context, tx *transaction.Transaction, invoice *Invoice) {
	if err := s.Ledger.Remove(context.WithoutCancel(ctx), tx.Id, tx.UserId); err != nil {
		logger.Error().
			Err(err).
			Str("transaction_id", tx.Id.String()).
			Str("invoice_id", invoice.Id.String()).
			Msg("Falha ao desfazer transação de pagamento")
	}
}

func paymentDescription(invoice *Invoice) string {
	return fmt.Sprintf("Pagamento da fatura %s - %02d/%d", invoice.CardName(), invoice.Month, invoice.Year)
}
