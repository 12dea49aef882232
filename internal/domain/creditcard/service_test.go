package creditcard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/category"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/creditcard"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transaction"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc        *creditcard.Service
	repo       *memRepository
	ledger     *fakeLedger
	categories *fakeCategories
	actor      shared.Actor
	card       *creditcard.CreditCard
}

func newFixture(t *testing.T, opts creditcard.Options) *fixture {
	t.Helper()

	repo := newMemRepository()
	ledger := &fakeLedger{}
	categories := &fakeCategories{}
	if opts.NewBackOff == nil {
		opts.NewBackOff = func() backoff.BackOff {
			return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 5)
		}
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return date(2025, time.March, 1) }
	}
	svc := creditcard.NewService(repo, &fakeAccounts{}, categories, ledger, opts)

	owner := uuid.New()
	actor := shared.Actor{PrincipalID: owner, OwnerID: owner, Access: shared.AccessFull}

	card, err := svc.CreateCreditCard(context.Background(), actor, &creditcard.CreateCreditCardRequest{
		Name:       "Nubank",
		Brand:      "mastercard",
		CardLimit:  decimal.NewFromInt(5000),
		ClosingDay: 10,
		DueDay:     15,
		IsDefault:  true,
	})
	require.NoError(t, err)

	return &fixture{svc: svc, repo: repo, ledger: ledger, categories: categories, actor: actor, card: card}
}

func requireCode(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
	return appErr
}

func single(f *fixture, amount string, on time.Time) creditcard.SinglePurchase {
	return creditcard.SinglePurchase{
		PurchaseDetails: creditcard.PurchaseDetails{
			Name:       "Mercado",
			Amount:     decimal.RequireFromString(amount),
			CategoryId: pkg.GenerateULIDObject(),
		},
		PurchaseDate: on,
		CreditCardId: &f.card.Id,
	}
}

func TestService_CreateExpense_SinglePurchase(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	first, err := f.svc.CreateExpense(ctx, f.actor, single(f, "50.00", date(2025, time.March, 12)))
	require.NoError(t, err)
	require.NotNil(t, first.Expense)
	assert.Nil(t, first.Plan)

	second, err := f.svc.CreateExpense(ctx, f.actor, single(f, "25.50", date(2025, time.April, 2)))
	require.NoError(t, err)

	assert.Equal(t, first.Expense.InvoiceId, second.Expense.InvoiceId)
	assert.Equal(t, 1, f.repo.invoiceCreates)

	invoice, err := f.svc.GetInvoice(ctx, f.actor, first.Expense.InvoiceId)
	require.NoError(t, err)
	assert.Equal(t, 4, invoice.Month)
	assert.Equal(t, 2025, invoice.Year)
	assert.Equal(t, date(2025, time.April, 15), invoice.DueDate)
	assert.Equal(t, creditcard.InvoiceOpen, invoice.Status)
	assert.Equal(t, "75.50", invoice.TotalAmount.StringFixed(2))
	assert.Len(t, invoice.Expenses, 2)
}

func TestService_CreateExpense_ExplicitInvoice(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	inv, err := f.svc.CreateInvoice(ctx, f.actor, &creditcard.CreateInvoiceRequest{CreditCardId: f.card.Id, Month: 1, Year: 2025})
	require.NoError(t, err)

	p := single(f, "10.00", date(2025, time.March, 20))
	p.CreditCardId = nil
	p.InvoiceId = &inv.Id

	res, err := f.svc.CreateExpense(ctx, f.actor, p)
	require.NoError(t, err)
	assert.Equal(t, inv.Id, res.Expense.InvoiceId)

	other := shared.Actor{PrincipalID: uuid.New(), OwnerID: uuid.New(), Access: shared.AccessFull}
	_, err = f.svc.CreateExpense(ctx, other, p)
	requireCode(t, err, "INVOICE_NOT_FOUND")
}

func TestService_CreateExpense_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	t.Run("missing card and invoice", func(t *testing.T) {
		p := single(f, "10.00", date(2025, time.March, 20))
		p.CreditCardId = nil
		_, err := f.svc.CreateExpense(ctx, f.actor, p)
		requireCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("non positive amount", func(t *testing.T) {
		_, err := f.svc.CreateExpense(ctx, f.actor, single(f, "0", date(2025, time.March, 20)))
		requireCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("card of another owner", func(t *testing.T) {
		other := shared.Actor{PrincipalID: uuid.New(), OwnerID: uuid.New(), Access: shared.AccessFull}
		_, err := f.svc.CreateExpense(ctx, other, single(f, "10.00", date(2025, time.March, 20)))
		requireCode(t, err, "CARD_NOT_FOUND")
	})

	t.Run("view only", func(t *testing.T) {
		viewer := f.actor
		viewer.Access = shared.AccessViewOnly
		_, err := f.svc.CreateExpense(ctx, viewer, single(f, "10.00", date(2025, time.March, 20)))
		assert.True(t, errors.Is(err, appErrors.ErrViewOnly))
	})

	assert.Equal(t, 0, f.repo.expenseCount())
	assert.Equal(t, 0, f.repo.invoiceCreates)
}

func TestService_CreateExpense_Installments(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	res, err := f.svc.CreateExpense(ctx, f.actor, creditcard.InstallmentPurchase{
		PurchaseDetails: creditcard.PurchaseDetails{
			Name:       "TV",
			Amount:     decimal.RequireFromString("100.00"),
			CategoryId: pkg.GenerateULIDObject(),
		},
		CreditCardId:         f.card.Id,
		Count:                3,
		FirstInstallmentDate: date(2025, time.March, 12),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Plan)

	plan := res.Plan
	assert.Equal(t, "33.33", plan.Base.StringFixed(2))
	assert.Equal(t, "0.01", plan.Remainder.StringFixed(2))
	require.Len(t, plan.Expenses, 3)

	wantMonths := []int{4, 5, 6}
	wantAmounts := []string{"33.33", "33.33", "33.34"}
	for i, e := range plan.Expenses {
		inv, err := f.svc.GetInvoice(ctx, f.actor, e.InvoiceId)
		require.NoError(t, err)
		assert.Equal(t, wantMonths[i], inv.Month)
		assert.Equal(t, date(2025, time.Month(wantMonths[i]), 15), inv.DueDate)
		assert.Equal(t, wantAmounts[i], e.Amount.StringFixed(2))
		assert.Equal(t, date(2025, time.Month(3+i), 12), e.PurchaseDate)
		require.NotNil(t, e.InstallmentLabel)
		require.NotNil(t, e.InstallmentCount)
		assert.Equal(t, 3, *e.InstallmentCount)
	}
	assert.Equal(t, "TV (1/3)", plan.Expenses[0].Name)
	assert.Equal(t, "2/3", *plan.Expenses[1].InstallmentLabel)
	assert.Equal(t, "Parcela 3/3", plan.Expenses[2].Note)
	assert.Equal(t, 3, f.repo.invoiceCreates)
}

func TestService_CreateExpense_InstallmentNote(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	res, err := f.svc.CreateExpense(context.Background(), f.actor, creditcard.InstallmentPurchase{
		PurchaseDetails: creditcard.PurchaseDetails{
			Name:       "Curso",
			Amount:     decimal.RequireFromString("10.00"),
			CategoryId: pkg.GenerateULIDObject(),
			Note:       "Black friday",
		},
		CreditCardId:         f.card.Id,
		Count:                4,
		FirstInstallmentDate: date(2025, time.November, 30),
	})
	require.NoError(t, err)

	for _, e := range res.Plan.Expenses {
		assert.Equal(t, "2.50", e.Amount.StringFixed(2))
	}
	assert.Equal(t, "Black friday - Parcela 1/4", res.Plan.Expenses[0].Note)
	assert.Equal(t, date(2026, time.February, 28), res.Plan.Expenses[3].PurchaseDate)
}

func TestService_CreateExpense_InvalidInstallmentCount(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	for _, count := range []int{1, 25} {
		_, err := f.svc.CreateExpense(context.Background(), f.actor, creditcard.InstallmentPurchase{
			PurchaseDetails: creditcard.PurchaseDetails{
				Name:       "TV",
				Amount:     decimal.RequireFromString("100.00"),
				CategoryId: pkg.GenerateULIDObject(),
			},
			CreditCardId:         f.card.Id,
			Count:                count,
			FirstInstallmentDate: date(2025, time.March, 12),
		})
		requireCode(t, err, "INVALID_INSTALLMENT_COUNT")
	}
	assert.Equal(t, 0, f.repo.expenseCount())
}

func installmentPurchase(f *fixture) creditcard.InstallmentPurchase {
	return creditcard.InstallmentPurchase{
		PurchaseDetails: creditcard.PurchaseDetails{
			Name:       "Notebook",
			Amount:     decimal.RequireFromString("3000.00"),
			CategoryId: pkg.GenerateULIDObject(),
		},
		CreditCardId:         f.card.Id,
		Count:                5,
		FirstInstallmentDate: date(2025, time.March, 1),
	}
}

func TestService_CreateExpense_InstallmentFailureRollsBack(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{RollbackInstallments: true})
	calls := 0
	f.repo.createExpenseFn = func(e *creditcard.Expense) error {
		calls++
		if calls == 3 {
			return errors.New("connection reset")
		}
		return nil
	}

	_, err := f.svc.CreateExpense(context.Background(), f.actor, installmentPurchase(f))
	appErr := requireCode(t, err, "STORE_FAILURE")
	assert.Equal(t, 3, appErr.Details["failed_installment"])
	assert.Equal(t, 2, appErr.Details["rolled_back"])

	require.Len(t, f.repo.deletedMany, 1)
	assert.Len(t, f.repo.deletedMany[0], 2)
	assert.Equal(t, 0, f.repo.expenseCount())
}

func TestService_CreateExpense_InstallmentFailureWithoutRollback(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{RollbackInstallments: false})
	calls := 0
	f.repo.createExpenseFn = func(e *creditcard.Expense) error {
		calls++
		if calls == 4 {
			return errors.New("connection reset")
		}
		return nil
	}

	_, err := f.svc.CreateExpense(context.Background(), f.actor, installmentPurchase(f))
	appErr := requireCode(t, err, "STORE_FAILURE")
	ids, ok := appErr.Details["created_expense_ids"].([]string)
	require.True(t, ok)
	assert.Len(t, ids, 3)
	assert.Empty(t, f.repo.deletedMany)
	assert.Equal(t, 3, f.repo.expenseCount())
}

func TestService_InvoiceFor_LostRaceRereads(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	winner := pkg.GenerateULIDObject()
	raced := false

	f.repo.createInvoiceFn = func(inv *creditcard.Invoice) error {
		if raced {
			return nil
		}
		raced = true
		rival := *inv
		rival.Id = winner
		f.repo.createInvoiceFn = nil
		require.NoError(t, f.repo.CreateInvoice(context.Background(), &rival))
		f.repo.mu.Lock()
		f.repo.cycleMisses = 2
		f.repo.mu.Unlock()
		return shared.ErrUniqueViolation
	}

	res, err := f.svc.CreateExpense(context.Background(), f.actor, single(f, "10.00", date(2025, time.March, 20)))
	require.NoError(t, err)
	assert.Equal(t, winner, res.Expense.InvoiceId)
	assert.Equal(t, 1, f.repo.invoiceCreates)
}

func TestService_InvoiceFor_RereadGivesUp(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	f.repo.createInvoiceFn = func(inv *creditcard.Invoice) error {
		f.repo.mu.Lock()
		f.repo.cycleMisses = 100
		f.repo.mu.Unlock()
		return shared.ErrUniqueViolation
	}

	_, err := f.svc.CreateExpense(context.Background(), f.actor, single(f, "10.00", date(2025, time.March, 20)))
	requireCode(t, err, "STORE_FAILURE")
	assert.Equal(t, 0, f.repo.expenseCount())
}

func TestService_DueDatePolicy(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		policy creditcard.DueDatePolicy
		want   time.Time
	}{
		{creditcard.DueDateClamp, date(2025, time.February, 28)},
		{creditcard.DueDateRollover, date(2025, time.March, 3)},
	} {
		f := newFixture(t, creditcard.Options{DueDatePolicy: tc.policy})
		card, err := f.svc.CreateCreditCard(context.Background(), f.actor, &creditcard.CreateCreditCardRequest{
			Name: "Inter", CardLimit: decimal.NewFromInt(1000), ClosingDay: 20, DueDay: 31,
		})
		require.NoError(t, err)

		p := single(f, "10.00", date(2025, time.February, 5))
		p.CreditCardId = &card.Id
		res, err := f.svc.CreateExpense(context.Background(), f.actor, p)
		require.NoError(t, err)

		inv, err := f.svc.GetInvoice(context.Background(), f.actor, res.Expense.InvoiceId)
		require.NoError(t, err)
		assert.Equal(t, tc.want, inv.DueDate, string(tc.policy))
	}
}

func TestService_CreateInvoice(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	inv, err := f.svc.CreateInvoice(ctx, f.actor, &creditcard.CreateInvoiceRequest{CreditCardId: f.card.Id, Month: 2, Year: 2025, Note: " manual "})
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.February, 15), inv.DueDate)
	assert.Equal(t, "manual", inv.Note)
	assert.True(t, inv.TotalAmount.IsZero())

	_, err = f.svc.CreateInvoice(ctx, f.actor, &creditcard.CreateInvoiceRequest{CreditCardId: f.card.Id, Month: 2, Year: 2025})
	requireCode(t, err, "CONFLICT")

	_, err = f.svc.CreateInvoice(ctx, f.actor, &creditcard.CreateInvoiceRequest{CreditCardId: f.card.Id, Month: 13, Year: 2025})
	requireCode(t, err, "VALIDATION_ERROR")
}

func TestService_ListInvoices_Ordering(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	for _, c := range []creditcard.Cycle{{Month: 3, Year: 2024}, {Month: 1, Year: 2025}, {Month: 11, Year: 2024}} {
		_, err := f.svc.CreateInvoice(ctx, f.actor, &creditcard.CreateInvoiceRequest{CreditCardId: f.card.Id, Month: c.Month, Year: c.Year})
		require.NoError(t, err)
	}

	invoices, err := f.svc.ListInvoices(ctx, f.actor, creditcard.InvoiceFilter{})
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, creditcard.Cycle{Month: 1, Year: 2025}, invoices[0].Cycle())
	assert.Equal(t, creditcard.Cycle{Month: 11, Year: 2024}, invoices[1].Cycle())
	assert.Equal(t, creditcard.Cycle{Month: 3, Year: 2024}, invoices[2].Cycle())

	year := 2024
	filtered, err := f.svc.ListInvoices(ctx, f.actor, creditcard.InvoiceFilter{Year: &year})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	bad := creditcard.InvoiceStatus("closed")
	_, err = f.svc.ListInvoices(ctx, f.actor, creditcard.InvoiceFilter{Status: &bad})
	requireCode(t, err, "VALIDATION_ERROR")
}

func TestService_DeleteInvoice_CascadesExpenses(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	res, err := f.svc.CreateExpense(ctx, f.actor, single(f, "10.00", date(2025, time.March, 20)))
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteInvoice(ctx, f.actor, res.Expense.InvoiceId))
	assert.Equal(t, 0, f.repo.expenseCount())

	_, err = f.svc.GetInvoice(ctx, f.actor, res.Expense.InvoiceId)
	requireCode(t, err, "INVOICE_NOT_FOUND")
}

func TestService_SetInvoiceStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	inv, err := f.svc.CreateInvoice(ctx, f.actor, &creditcard.CreateInvoiceRequest{CreditCardId: f.card.Id, Month: 2, Year: 2025})
	require.NoError(t, err)

	updated, err := f.svc.SetInvoiceStatus(ctx, f.actor, inv.Id, creditcard.InvoiceOverdue)
	require.NoError(t, err)
	assert.Equal(t, creditcard.InvoiceOverdue, updated.Status)

	_, err = f.svc.SetInvoiceStatus(ctx, f.actor, inv.Id, creditcard.InvoicePaid)
	require.NoError(t, err)

	_, err = f.svc.SetInvoiceStatus(ctx, f.actor, inv.Id, creditcard.InvoicePaid)
	requireCode(t, err, "ALREADY_PAID")

	reopened, err := f.svc.SetInvoiceStatus(ctx, f.actor, inv.Id, creditcard.InvoiceOpen)
	require.NoError(t, err)
	assert.Equal(t, creditcard.InvoiceOpen, reopened.Status)
}

func TestService_UpdateAndDeleteExpense(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	res, err := f.svc.CreateExpense(ctx, f.actor, single(f, "10.00", date(2025, time.March, 20)))
	require.NoError(t, err)

	name := "Feira"
	amount := decimal.RequireFromString("12.34")
	updated, err := f.svc.UpdateExpense(ctx, f.actor, res.Expense.Id, &creditcard.UpdateExpenseRequest{Name: &name, Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, "Feira", updated.Name)
	assert.Equal(t, "12.34", updated.Amount.StringFixed(2))
	assert.Equal(t, res.Expense.InvoiceId, updated.InvoiceId)

	zero := decimal.Zero
	_, err = f.svc.UpdateExpense(ctx, f.actor, res.Expense.Id, &creditcard.UpdateExpenseRequest{Amount: &zero})
	requireCode(t, err, "VALIDATION_ERROR")

	require.NoError(t, f.svc.DeleteExpense(ctx, f.actor, res.Expense.Id))
	err = f.svc.DeleteExpense(ctx, f.actor, res.Expense.Id)
	requireCode(t, err, "EXPENSE_NOT_FOUND")
}

func paymentFor(invoiceID ulid.ULID) *creditcard.PaymentRequest {
	return &creditcard.PaymentRequest{
		InvoiceId:     invoiceID,
		BankAccountId: pkg.GenerateULIDObject(),
		CategoryId:    pkg.GenerateULIDObject(),
		PaymentDate:   date(2025, time.April, 15),
	}
}

func TestService_PayInvoice(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	res, err := f.svc.CreateExpense(ctx, f.actor, single(f, "100.00", date(2025, time.March, 20)))
	require.NoError(t, err)
	_, err = f.svc.CreateExpense(ctx, f.actor, single(f, "23.45", date(2025, time.March, 25)))
	require.NoError(t, err)

	paid, err := f.svc.PayInvoice(ctx, f.actor, paymentFor(res.Expense.InvoiceId))
	require.NoError(t, err)
	assert.Equal(t, creditcard.InvoicePaid, paid.Invoice.Status)
	assert.Equal(t, "123.45", paid.Transaction.Amount.StringFixed(2))
	assert.Equal(t, "Pagamento da fatura Nubank - 04/2025", paid.Transaction.Description)
	assert.Equal(t, f.actor.OwnerID, paid.Transaction.UserId)
	require.Len(t, f.ledger.recorded, 1)

	_, err = f.svc.PayInvoice(ctx, f.actor, paymentFor(res.Expense.InvoiceId))
	requireCode(t, err, "ALREADY_PAID")
	assert.Len(t, f.ledger.recorded, 1)
}

func TestService_PayInvoice_Preconditions(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	inv, err := f.svc.CreateInvoice(ctx, f.actor, &creditcard.CreateInvoiceRequest{CreditCardId: f.card.Id, Month: 2, Year: 2025})
	require.NoError(t, err)

	t.Run("income category", func(t *testing.T) {
		f.categories.getFn = func(ctx context.Context, ownerID uuid.UUID, categoryID ulid.ULID) (*category.Category, error) {
			return &category.Category{Id: categoryID, Kind: category.KindIncome}, nil
		}
		defer func() { f.categories.getFn = nil }()

		_, err := f.svc.PayInvoice(ctx, f.actor, paymentFor(inv.Id))
		requireCode(t, err, "INVALID_CATEGORY")
	})

	t.Run("unknown invoice", func(t *testing.T) {
		_, err := f.svc.PayInvoice(ctx, f.actor, paymentFor(pkg.GenerateULIDObject()))
		requireCode(t, err, "INVOICE_NOT_FOUND")
	})

	t.Run("view only", func(t *testing.T) {
		viewer := f.actor
		viewer.Access = shared.AccessViewOnly
		_, err := f.svc.PayInvoice(ctx, viewer, paymentFor(inv.Id))
		requireCode(t, err, "FORBIDDEN")
	})

	assert.Empty(t, f.ledger.recorded)
}

func TestService_PayInvoice_CompensatesOnStatusFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	res, err := f.svc.CreateExpense(ctx, f.actor, single(f, "80.00", date(2025, time.March, 20)))
	require.NoError(t, err)

	f.repo.updateStatusFn = func(id ulid.ULID, status creditcard.InvoiceStatus) error {
		return errors.New("deadlock detected")
	}

	_, err = f.svc.PayInvoice(ctx, f.actor, paymentFor(res.Expense.InvoiceId))
	requireCode(t, err, "STORE_FAILURE")

	require.Len(t, f.ledger.recorded, 1)
	require.Len(t, f.ledger.removed, 1)
	assert.Equal(t, f.ledger.recorded[0].Id, f.ledger.removed[0])

	inv, err := f.svc.GetInvoice(ctx, f.actor, res.Expense.InvoiceId)
	require.NoError(t, err)
	assert.Equal(t, creditcard.InvoiceOpen, inv.Status)
}

func TestService_PayInvoice_ConcurrentPaymentRecordsOnce(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	res, err := f.svc.CreateExpense(ctx, f.actor, single(f, "80.00", date(2025, time.March, 20)))
	require.NoError(t, err)
	invoiceID := res.Expense.InvoiceId

	var innerErr error
	calls := 0
	f.ledger.recordFn = func(ctx context.Context, tx *transaction.Transaction) error {
		calls++
		if calls == 1 {
			_, innerErr = f.svc.PayInvoice(ctx, f.actor, paymentFor(invoiceID))
		}
		return nil
	}

	_, err = f.svc.PayInvoice(ctx, f.actor, paymentFor(invoiceID))
	require.NoError(t, innerErr)
	requireCode(t, err, "ALREADY_PAID")

	require.Len(t, f.ledger.recorded, 2)
	require.Len(t, f.ledger.removed, 1)
	outer := f.ledger.recorded[1]
	assert.Equal(t, outer.Id, f.ledger.removed[0])

	inv, err := f.svc.GetInvoice(ctx, f.actor, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, creditcard.InvoicePaid, inv.Status)
}

func TestService_CreditCardStats(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	ctx := context.Background()

	_, err := f.svc.CreateCreditCard(ctx, f.actor, &creditcard.CreateCreditCardRequest{
		Name: "Inter", CardLimit: decimal.RequireFromString("1500.50"), ClosingDay: 5, DueDay: 12, IsDefault: true,
	})
	require.NoError(t, err)

	stats, err := f.svc.GetCreditCardStats(ctx, f.actor)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCards)
	assert.Equal(t, "6500.50", stats.TotalLimit.StringFixed(2))
	assert.True(t, stats.HasDefaultCard)
	assert.Equal(t, "1500.50", stats.DefaultCardLimit.StringFixed(2))
}

func TestService_CreateCreditCard_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t, creditcard.Options{})
	cases := []struct {
		name string
		req  creditcard.CreateCreditCardRequest
	}{
		{"blank name", creditcard.CreateCreditCardRequest{Name: " ", CardLimit: decimal.NewFromInt(1), ClosingDay: 1, DueDay: 1}},
		{"zero limit", creditcard.CreateCreditCardRequest{Name: "A", CardLimit: decimal.Zero, ClosingDay: 1, DueDay: 1}},
		{"closing day 0", creditcard.CreateCreditCardRequest{Name: "A", CardLimit: decimal.NewFromInt(1), ClosingDay: 0, DueDay: 1}},
		{"due day 32", creditcard.CreateCreditCardRequest{Name: "A", CardLimit: decimal.NewFromInt(1), ClosingDay: 1, DueDay: 32}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateCreditCard(context.Background(), f.actor, &tc.req)
			requireCode(t, err, "VALIDATION_ERROR")
		})
	}
}
