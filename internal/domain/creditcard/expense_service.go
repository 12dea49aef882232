package creditcard

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
)

func (s *Service) CreateExpense(ctx context.Context, actor shared.Actor, purchase Purchase) (*ExpenseResult, error) {
	if err := actor.RequireFullAccess(); err != nil {
		return nil, err
	}

	switch p := purchase.(type) {
	case SinglePurchase:
		expense, err := s.placeSinglePurchase(ctx, actor, p)
		if err != nil {
			return nil, err
		}
		return &ExpenseResult{Expense: expense}, nil
	case InstallmentPurchase:
		plan, err := s.splitInstallmentPurchase(ctx, actor, p)
		if err != nil {
			return nil, err
		}
		return &ExpenseResult{Plan: plan}, nil
	default:
		return nil, appErrors.ErrBadRequest.WithDetails(map[string]interface{}{
			"purchase": fmt.Sprintf("%T", purchase),
		})
	}
}

func (s *Service) placeSinglePurchase(ctx context.Context, actor shared.Actor, p SinglePurchase) (*Expense, error) {
	name, err := validateDetails(p.PurchaseDetails)
	if err != nil {
		return nil, err
	}
	if p.InvoiceId == nil && p.CreditCardId == nil {
		return nil, appErrors.NewValidationError("credit_card_id", "Cartão de crédito é obrigatório quando não há fatura específica")
	}
	if p.PurchaseDate.IsZero() {
		return nil, appErrors.NewValidationError("purchase_date", "Data da compra é obrigatória")
	}

	if _, err := s.Categories.GetOwnedCategory(ctx, actor.OwnerID, p.CategoryId); err != nil {
		return nil, err
	}

	var invoice *Invoice
	if p.InvoiceId != nil {
		invoice, err = s.GetInvoice(ctx, actor, *p.InvoiceId)
		if err != nil {
			return nil, err
		}
	} else {
		card, err := s.getOwnedCard(ctx, actor.OwnerID, *p.CreditCardId)
		if err != nil {
			return nil, err
		}
		invoice, err = s.invoiceFor(ctx, card, ResolveCycle(p.PurchaseDate, card.ClosingDay))
		if err != nil {
			return nil, err
		}
	}

	now := s.now()
	expense := &Expense{
		Id:           pkg.GenerateULIDObject(),
		InvoiceId:    invoice.Id,
		CategoryId:   p.CategoryId,
		Name:         name,
		Amount:       p.Amount,
		PurchaseDate: p.PurchaseDate,
		Note:         strings.TrimSpace(p.Note),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repository.CreateExpense(ctx, expense); err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return expense, nil
}

func (s *Service) splitInstallmentPurchase(ctx context.Context, actor shared.Actor, p InstallmentPurchase) (*InstallmentPlan, error) {
	name, err := validateDetails(p.PurchaseDetails)
	if err != nil {
		return nil, err
	}
	split, err := SplitInstallments(p.Amount, p.Count)
	if err != nil {
		return nil, err
	}
	if p.FirstInstallmentDate.IsZero() {
		return nil, appErrors.NewValidationError("first_installment_date", "Data da primeira parcela é obrigatória")
	}

	if _, err := s.Categories.GetOwnedCategory(ctx, actor.OwnerID, p.CategoryId); err != nil {
		return nil, err
	}
	card, err := s.getOwnedCard(ctx, actor.OwnerID, p.CreditCardId)
	if err != nil {
		return nil, err
	}

	note := strings.TrimSpace(p.Note)
	count := split.Count
	created := make([]*Expense, 0, count)

	for i := 0; i < count; i++ {
		date := AddMonths(p.FirstInstallmentDate, i)

		invoice, err := s.invoiceFor(ctx, card, ResolveCycle(date, card.ClosingDay))
		if err != nil {
			return nil, s.abortInstallments(ctx, created, i, err)
		}

		label := installmentLabel(i, count)
		now := s.now()
		expense := &Expense{
			Id:               pkg.GenerateULIDObject(),
			InvoiceId:        invoice.Id,
			CategoryId:       p.CategoryId,
			Name:             installmentName(name, i, count),
			Amount:           split.Amount(i),
			PurchaseDate:     date,
			Note:             installmentNote(note, i, count),
			InstallmentLabel: &label,
			InstallmentCount: lo.ToPtr(count),
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		if err := s.Repository.CreateExpense(ctx, expense); err != nil {
			return nil, s.abortInstallments(ctx, created, i, appErrors.NewStoreError(err))
		}
		created = append(created, expense)
	}

	logger.Info().
		Str("card_id", card.Id.String()).
		Int("installments", count).
		Str("total", split.Total.String()).
		Msg("Compra parcelada registrada")

	return &InstallmentPlan{InstallmentSplit: split, Expenses: created}, nil
}

// abortInstallments handles a failure at installment index failedAt. With
// rollback enabled the expenses already written are removed; invoices stay,
// they are shared slots. Otherwise the ids of the partial plan are reported.
func (s *Service) abortInstallments(ctx context.Context, created []*Expense, failedAt int, cause error) error {
	appErr := appErrors.FromError(cause)
	if len(created) == 0 {
		return appErr
	}

	ids := lo.Map(created, func(e *Expense, _ int) ulid.ULID { return e.Id })
	details := map[string]interface{}{
		"failed_installment": failedAt + 1,
	}

	if !s.Options.RollbackInstallments {
		details["created_expense_ids"] = lo.Map(ids, func(id ulid.ULID, _ int) string { return id.String() })
		return appErr.WithDetails(mergeDetails(appErr.Details, details))
	}

	if err := s.Repository.DeleteExpenses(context.WithoutCancel(ctx), ids); err != nil {
		logger.Error().
			Err(err).
			Int("expenses", len(ids)).
			Msg("Falha ao desfazer parcelas criadas")
		details["created_expense_ids"] = lo.Map(ids, func(id ulid.ULID, _ int) string { return id.String() })
		details["rollback_failed"] = true
		return appErr.WithDetails(mergeDetails(appErr.Details, details))
	}

	details["rolled_back"] = len(ids)
	return appErr.WithDetails(mergeDetails(appErr.Details, details))
}

func (s *Service) UpdateExpense(ctx context.Context, actor shared.Actor, expenseID ulid.ULID, req *UpdateExpenseRequest) (*Expense, error) {
	if err := actor.RequireFullAccess(); err != nil {
		return nil, err
	}

	expense, err := s.getOwnedExpense(ctx, actor, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "Nome da despesa não pode ser vazio")
		}
		expense.Name = name
	}

	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return nil, err
		}
		expense.Amount = *req.Amount
	}

	if req.PurchaseDate != nil {
		expense.PurchaseDate = *req.PurchaseDate
	}

	if req.CategoryId != nil {
		if _, err := s.Categories.GetOwnedCategory(ctx, actor.OwnerID, *req.CategoryId); err != nil {
			return nil, err
		}
		expense.CategoryId = *req.CategoryId
	}

	if req.Note != nil {
		expense.Note = strings.TrimSpace(*req.Note)
	}

	expense.UpdatedAt = s.now()

	if err := s.Repository.UpdateExpense(ctx, expense); err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return expense, nil
}

func (s *Service) DeleteExpense(ctx context.Context, actor shared.Actor, expenseID ulid.ULID) error {
	if err := actor.RequireFullAccess(); err != nil {
		return err
	}
	if _, err := s.getOwnedExpense(ctx, actor, expenseID); err != nil {
		return err
	}
	if err := s.Repository.DeleteExpense(ctx, expenseID); err != nil {
		return appErrors.NewStoreError(err)
	}
	return nil
}

func (s *Service) getOwnedExpense(ctx context.Context, actor shared.Actor, expenseID ulid.ULID) (*Expense, error) {
	expense, err := s.Repository.GetExpenseById(ctx, expenseID, actor.OwnerID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, appErrors.ErrExpenseNotFound
		}
		return nil, appErrors.NewStoreError(err)
	}
	return expense, nil
}

func validateDetails(d PurchaseDetails) (string, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return "", appErrors.NewValidationError("name", "Nome da despesa é obrigatório")
	}
	if err := validateAmount(d.Amount); err != nil {
		return "", err
	}
	if pkg.IsEmptyULID(d.CategoryId) {
		return "", appErrors.NewValidationError("category_id", "Categoria é obrigatória")
	}
	return name, nil
}

func mergeDetails(base, extra map[string]interface{}) map[string]interface{} {
	return lo.Assign(base, extra)
}
