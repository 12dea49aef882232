package creditcard_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/account"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/category"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/creditcard"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transaction"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// memRepository keeps rows in maps and enforces the invoice natural key like
// the real store. The *Fn hooks run before the default behavior and
// short-circuit it when they return an error.
type memRepository struct {
	mu           sync.Mutex
	cards        map[ulid.ULID]creditcard.CreditCard
	invoices     map[ulid.ULID]creditcard.Invoice
	expenses     map[ulid.ULID]creditcard.Expense
	expenseOrder []ulid.ULID

	cycleMisses     int
	createInvoiceFn func(inv *creditcard.Invoice) error
	createExpenseFn func(e *creditcard.Expense) error
	updateStatusFn  func(id ulid.ULID, status creditcard.InvoiceStatus) error
	deleteManyFn    func(ids []ulid.ULID) error

	invoiceCreates int
	deletedMany    [][]ulid.ULID
}

var _ creditcard.Repository = (*memRepository)(nil)

func newMemRepository() *memRepository {
	return &memRepository{
		cards:    map[ulid.ULID]creditcard.CreditCard{},
		invoices: map[ulid.ULID]creditcard.Invoice{},
		expenses: map[ulid.ULID]creditcard.Expense{},
	}
}

func (r *memRepository) CreateCreditCard(ctx context.Context, card *creditcard.CreditCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards[card.Id] = *card
	return nil
}

func (r *memRepository) UpdateCreditCard(ctx context.Context, card *creditcard.CreditCard) error {
	return r.CreateCreditCard(ctx, card)
}

func (r *memRepository) DeleteCreditCard(ctx context.Context, cardID ulid.ULID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cards, cardID)
	return nil
}

func (r *memRepository) GetCreditCardById(ctx context.Context, cardID ulid.ULID, userID uuid.UUID) (*creditcard.CreditCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[cardID]
	if !ok || card.UserId != userID {
		return nil, shared.ErrRecordNotFound
	}
	return &card, nil
}

func (r *memRepository) ListCreditCards(ctx context.Context, userID uuid.UUID) ([]*creditcard.CreditCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*creditcard.CreditCard
	for _, c := range r.cards {
		if c.UserId == userID {
			c := c
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memRepository) ClearDefaultCreditCard(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.cards {
		if c.UserId == userID {
			c.IsDefault = false
			r.cards[id] = c
		}
	}
	return nil
}

func (r *memRepository) CreateInvoice(ctx context.Context, invoice *creditcard.Invoice) error {
	if r.createInvoiceFn != nil {
		if err := r.createInvoiceFn(invoice); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.invoices {
		if existing.CreditCardId == invoice.CreditCardId && existing.Month == invoice.Month && existing.Year == invoice.Year {
			return shared.ErrUniqueViolation
		}
	}
	stored := *invoice
	stored.Expenses = nil
	stored.Card = nil
	r.invoices[invoice.Id] = stored
	r.invoiceCreates++
	return nil
}

func (r *memRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID ulid.ULID, status creditcard.InvoiceStatus, updatedAt time.Time) error {
	if r.updateStatusFn != nil {
		if err := r.updateStatusFn(invoiceID, status); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[invoiceID]
	if !ok {
		return shared.ErrRecordNotFound
	}
	inv.Status = status
	inv.UpdatedAt = updatedAt
	r.invoices[invoiceID] = inv
	return nil
}

func (r *memRepository) MarkInvoicePaid(ctx context.Context, invoiceID ulid.ULID, updatedAt time.Time) error {
	if r.updateStatusFn != nil {
		if err := r.updateStatusFn(invoiceID, creditcard.InvoicePaid); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[invoiceID]
	if !ok || inv.Status == creditcard.InvoicePaid {
		return shared.ErrRecordNotFound
	}
	inv.Status = creditcard.InvoicePaid
	inv.UpdatedAt = updatedAt
	r.invoices[invoiceID] = inv
	return nil
}

func (r *memRepository) DeleteInvoice(ctx context.Context, invoiceID ulid.ULID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.expenses {
		if e.InvoiceId == invoiceID {
			delete(r.expenses, id)
		}
	}
	delete(r.invoices, invoiceID)
	return nil
}

func (r *memRepository) hydrate(inv creditcard.Invoice) *creditcard.Invoice {
	card := r.cards[inv.CreditCardId]
	inv.Card = &creditcard.CardSummary{Id: card.Id, Name: card.Name, Brand: card.Brand}
	inv.Expenses = []*creditcard.Expense{}
	for _, id := range r.expenseOrder {
		if e, ok := r.expenses[id]; ok && e.InvoiceId == inv.Id {
			e := e
			inv.Expenses = append(inv.Expenses, &e)
		}
	}
	return &inv
}

func (r *memRepository) GetInvoiceById(ctx context.Context, invoiceID ulid.ULID, userID uuid.UUID) (*creditcard.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[invoiceID]
	if !ok || r.cards[inv.CreditCardId].UserId != userID {
		return nil, shared.ErrRecordNotFound
	}
	return r.hydrate(inv), nil
}

func (r *memRepository) GetInvoiceByCycle(ctx context.Context, cardID ulid.ULID, month, year int) (*creditcard.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cycleMisses > 0 {
		r.cycleMisses--
		return nil, shared.ErrRecordNotFound
	}
	for _, inv := range r.invoices {
		if inv.CreditCardId == cardID && inv.Month == month && inv.Year == year {
			return r.hydrate(inv), nil
		}
	}
	return nil, shared.ErrRecordNotFound
}

func (r *memRepository) ListInvoices(ctx context.Context, userID uuid.UUID, filter creditcard.InvoiceFilter) ([]*creditcard.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*creditcard.Invoice
	for _, inv := range r.invoices {
		if r.cards[inv.CreditCardId].UserId != userID {
			continue
		}
		if filter.CreditCardId != nil && inv.CreditCardId != *filter.CreditCardId {
			continue
		}
		if filter.Status != nil && inv.Status != *filter.Status {
			continue
		}
		if filter.Month != nil && inv.Month != *filter.Month {
			continue
		}
		if filter.Year != nil && inv.Year != *filter.Year {
			continue
		}
		out = append(out, r.hydrate(inv))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, nil
}

func (r *memRepository) CreateExpense(ctx context.Context, expense *creditcard.Expense) error {
	if r.createExpenseFn != nil {
		if err := r.createExpenseFn(expense); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses[expense.Id] = *expense
	r.expenseOrder = append(r.expenseOrder, expense.Id)
	return nil
}

func (r *memRepository) UpdateExpense(ctx context.Context, expense *creditcard.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses[expense.Id] = *expense
	return nil
}

func (r *memRepository) DeleteExpense(ctx context.Context, expenseID ulid.ULID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.expenses, expenseID)
	return nil
}

func (r *memRepository) DeleteExpenses(ctx context.Context, expenseIDs []ulid.ULID) error {
	if r.deleteManyFn != nil {
		if err := r.deleteManyFn(expenseIDs); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range expenseIDs {
		delete(r.expenses, id)
	}
	r.deletedMany = append(r.deletedMany, expenseIDs)
	return nil
}

func (r *memRepository) GetExpenseById(ctx context.Context, expenseID ulid.ULID, userID uuid.UUID) (*creditcard.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[expenseID]
	if !ok {
		return nil, shared.ErrRecordNotFound
	}
	inv := r.invoices[e.InvoiceId]
	if r.cards[inv.CreditCardId].UserId != userID {
		return nil, shared.ErrRecordNotFound
	}
	return &e, nil
}

func (r *memRepository) expenseCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.expenses)
}

type fakeAccounts struct {
	getFn func(ctx context.Context, ownerID uuid.UUID, accountID ulid.ULID) (*account.BankAccount, error)
}

func (f *fakeAccounts) GetOwnedAccount(ctx context.Context, ownerID uuid.UUID, accountID ulid.ULID) (*account.BankAccount, error) {
	if f.getFn != nil {
		return f.getFn(ctx, ownerID, accountID)
	}
	return &account.BankAccount{Id: accountID, UserId: ownerID, IsActive: true}, nil
}

type fakeCategories struct {
	getFn func(ctx context.Context, ownerID uuid.UUID, categoryID ulid.ULID) (*category.Category, error)
}

func (f *fakeCategories) GetOwnedCategory(ctx context.Context, ownerID uuid.UUID, categoryID ulid.ULID) (*category.Category, error) {
	if f.getFn != nil {
		return f.getFn(ctx, ownerID, categoryID)
	}
	return &category.Category{Id: categoryID, UserId: ownerID, Kind: category.KindExpense}, nil
}

type fakeLedger struct {
	mu       sync.Mutex
	recordFn func(ctx context.Context, tx *transaction.Transaction) error
	recorded []*transaction.Transaction
	removed  []ulid.ULID
}

func (f *fakeLedger) Record(ctx context.Context, tx *transaction.Transaction) error {
	if f.recordFn != nil {
		if err := f.recordFn(ctx, tx); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded = append(f.recorded, tx)
	return nil
}

func (f *fakeLedger) Remove(ctx context.Context, transactionID ulid.ULID, ownerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, transactionID)
	return nil
}
