package creditcard

import (
	"context"
	"errors"
	"strings"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
)

const (
	minInvoiceYear = 2000
	maxInvoiceYear = 2100
)

// invoiceFor returns the invoice of the card for the cycle, creating it when
// missing. The store's unique index on (card, month, year) arbitrates
// concurrent creators: the loser re-reads the winner's row.
func (s *Service) invoiceFor(ctx context.Context, card *CreditCard, cycle Cycle) (*Invoice, error) {
	invoice, err := s.Repository.GetInvoiceByCycle(ctx, card.Id, cycle.Month, cycle.Year)
	if err == nil {
		return invoice, nil
	}
	if !shared.IsNotFound(err) {
		return nil, appErrors.NewStoreError(err)
	}

	now := s.now()
	invoice = &Invoice{
		Id:           pkg.GenerateULIDObject(),
		CreditCardId: card.Id,
		Month:        cycle.Month,
		Year:         cycle.Year,
		DueDate:      ComputeDueDate(cycle, card.DueDay, s.Options.DueDatePolicy),
		Status:       InvoiceOpen,
		Card:         &CardSummary{Id: card.Id, Name: card.Name, Brand: card.Brand},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Repository.CreateInvoice(ctx, invoice)
	if err == nil {
		logger.Debug().
			Str("invoice_id", invoice.Id.String()).
			Str("card_id", card.Id.String()).
			Int("month", cycle.Month).
			Int("year", cycle.Year).
			Msg("Fatura criada automaticamente")
		return invoice, nil
	}
	if !shared.IsUniqueConstraintError(err) {
		return nil, appErrors.NewStoreError(err)
	}

	logger.Debug().
		Str("card_id", card.Id.String()).
		Int("month", cycle.Month).
		Int("year", cycle.Year).
		Msg("Fatura criada concorrentemente, relendo")

	return s.rereadInvoice(ctx, card, cycle)
}

func (s *Service) rereadInvoice(ctx context.Context, card *CreditCard, cycle Cycle) (*Invoice, error) {
	var found *Invoice
	operation := func() error {
		invoice, err := s.Repository.GetInvoiceByCycle(ctx, card.Id, cycle.Month, cycle.Year)
		if err != nil {
			if shared.IsNotFound(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		found = invoice
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(s.Options.NewBackOff(), ctx)); err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return found, nil
}

func (s *Service) CreateInvoice(ctx context.Context, actor shared.Actor, req *CreateInvoiceRequest) (*Invoice, error) {
	if err := actor.RequireFullAccess(); err != nil {
		return nil, err
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, appErrors.NewValidationError("month", "Mês deve estar entre 1 e 12")
	}
	if req.Year < minInvoiceYear || req.Year > maxInvoiceYear {
		return nil, appErrors.NewValidationError("year", "Ano inválido")
	}

	card, err := s.getOwnedCard(ctx, actor.OwnerID, req.CreditCardId)
	if err != nil {
		return nil, err
	}

	cycle := Cycle{Month: req.Month, Year: req.Year}
	if _, err := s.Repository.GetInvoiceByCycle(ctx, card.Id, cycle.Month, cycle.Year); err == nil {
		return nil, appErrors.ErrDuplicateInvoice
	} else if !shared.IsNotFound(err) {
		return nil, appErrors.NewStoreError(err)
	}

	dueDate := ComputeDueDate(cycle, card.DueDay, s.Options.DueDatePolicy)
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	now := s.now()
	invoice := &Invoice{
		Id:           pkg.GenerateULIDObject(),
		CreditCardId: card.Id,
		Month:        cycle.Month,
		Year:         cycle.Year,
		DueDate:      dueDate,
		Status:       InvoiceOpen,
		Note:         strings.TrimSpace(req.Note),
		Card:         &CardSummary{Id: card.Id, Name: card.Name, Brand: card.Brand},
		Expenses:     []*Expense{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repository.CreateInvoice(ctx, invoice); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return nil, appErrors.ErrDuplicateInvoice
		}
		return nil, appErrors.NewStoreError(err)
	}
	invoice.RecomputeTotal()
	return invoice, nil
}

func (s *Service) ListInvoices(ctx context.Context, actor shared.Actor, filter InvoiceFilter) ([]*Invoice, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, appErrors.NewValidationError("status", "Status deve ser open, paid ou overdue")
	}
	if filter.Month != nil && (*filter.Month < 1 || *filter.Month > 12) {
		return nil, appErrors.NewValidationError("month", "Mês deve estar entre 1 e 12")
	}

	invoices, err := s.Repository.ListInvoices(ctx, actor.OwnerID, filter)
	if err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	for _, inv := range invoices {
		inv.RecomputeTotal()
	}
	return invoices, nil
}

func (s *Service) GetInvoice(ctx context.Context, actor shared.Actor, invoiceID ulid.ULID) (*Invoice, error) {
	invoice, err := s.Repository.GetInvoiceById(ctx, invoiceID, actor.OwnerID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, appErrors.ErrInvoiceNotFound
		}
		return nil, appErrors.NewStoreError(err)
	}
	invoice.RecomputeTotal()
	return invoice, nil
}

// DeleteInvoice removes the invoice and every expense placed on it.
func (s *Service) DeleteInvoice(ctx context.Context, actor shared.Actor, invoiceID ulid.ULID) error {
	if err := actor.RequireFullAccess(); err != nil {
		return err
	}
	if _, err := s.GetInvoice(ctx, actor, invoiceID); err != nil {
		return err
	}
	if err := s.Repository.DeleteInvoice(ctx, invoiceID); err != nil {
		return appErrors.NewStoreError(err)
	}
	return nil
}

func (s *Service) SetInvoiceStatus(ctx context.Context, actor shared.Actor, invoiceID ulid.ULID, status InvoiceStatus) (*Invoice, error) {
	if err := actor.RequireFullAccess(); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, appErrors.NewValidationError("status", "Status deve ser open, paid ou overdue")
	}

	invoice, err := s.GetInvoice(ctx, actor, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == InvoicePaid && status == InvoicePaid {
		return nil, appErrors.ErrAlreadyPaid
	}

	now := s.now()
	if err := s.Repository.UpdateInvoiceStatus(ctx, invoice.Id, status, now); err != nil {
		if errors.Is(err, shared.ErrRecordNotFound) {
			return nil, appErrors.ErrInvoiceNotFound
		}
		return nil, appErrors.NewStoreError(err)
	}

	invoice.Status = status
	invoice.UpdatedAt = now
	return invoice, nil
}
