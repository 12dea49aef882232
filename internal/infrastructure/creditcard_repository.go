package infrastructure

import (
	"context"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/creditcard"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreditCardRepository struct {
	DB *gorm.DB
}

var _ creditcard.Repository = (*CreditCardRepository)(nil)

type creditCardDB struct {
	Id         string          `gorm:"type:varchar(26);primaryKey"`
	UserId     string          `gorm:"type:varchar(36);index:idx_credit_cards_user_id;not null"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Brand      string          `gorm:"type:varchar(30)"`
	CardLimit  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ClosingDay int             `gorm:"not null"`
	DueDay     int             `gorm:"not null"`
	IsDefault  bool            `gorm:"not null;default:false"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

func (creditCardDB) TableName() string {
	return "credit_cards"
}

type invoiceDB struct {
	Id           string        `gorm:"type:varchar(26);primaryKey"`
	CreditCardId string        `gorm:"type:varchar(26);not null;uniqueIndex:idx_invoices_card_month_year,priority:1"`
	Month        int           `gorm:"not null;uniqueIndex:idx_invoices_card_month_year,priority:2"`
	Year         int           `gorm:"not null;uniqueIndex:idx_invoices_card_month_year,priority:3"`
	DueDate      time.Time     `gorm:"type:date;not null"`
	Status       string        `gorm:"type:varchar(20);not null;default:'open';index:idx_invoices_status"`
	Note         string        `gorm:"type:text"`
	Card         *creditCardDB `gorm:"foreignKey:CreditCardId"`
	Expenses     []expenseDB   `gorm:"foreignKey:InvoiceId"`
	CreatedAt    time.Time     `gorm:"not null"`
	UpdatedAt    time.Time     `gorm:"not null"`
}

func (invoiceDB) TableName() string {
	return "credit_card_invoices"
}

type expenseDB struct {
	Id               string          `gorm:"type:varchar(26);primaryKey;column:id"`
	InvoiceId        string          `gorm:"type:varchar(26);index:idx_expenses_invoice_id;not null;column:invoice_id"`
	CategoryId       string          `gorm:"type:varchar(26);index;not null;column:category_id"`
	Name             string          `gorm:"type:varchar(255);not null;column:name"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount"`
	PurchaseDate     time.Time       `gorm:"type:date;not null;column:purchase_date"`
	Note             string          `gorm:"type:text;column:note"`
	InstallmentLabel *string         `gorm:"type:varchar(10);column:installment_label"`
	InstallmentCount *int            `gorm:"column:installment_count"`
	CreatedAt        time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt        time.Time       `gorm:"not null;column:updated_at"`
}

func (expenseDB) TableName() string {
	return "credit_card_expenses"
}

func toDomainCreditCard(ccdb *creditCardDB) (*creditcard.CreditCard, error) {
	id, err := pkg.ParseULID(ccdb.Id)
	if err != nil {
		return nil, err
	}
	uid, err := parseOwner(ccdb.UserId)
	if err != nil {
		return nil, err
	}

	return &creditcard.CreditCard{
		Id:         id,
		UserId:     uid,
		Name:       ccdb.Name,
		Brand:      ccdb.Brand,
		CardLimit:  ccdb.CardLimit,
		ClosingDay: ccdb.ClosingDay,
		DueDay:     ccdb.DueDay,
		IsDefault:  ccdb.IsDefault,
		CreatedAt:  ccdb.CreatedAt,
		UpdatedAt:  ccdb.UpdatedAt,
	}, nil
}

func toDBCreditCard(cc *creditcard.CreditCard) *creditCardDB {
	return &creditCardDB{
		Id:         cc.Id.String(),
		UserId:     cc.UserId.String(),
		Name:       cc.Name,
		Brand:      cc.Brand,
		CardLimit:  cc.CardLimit,
		ClosingDay: cc.ClosingDay,
		DueDay:     cc.DueDay,
		IsDefault:  cc.IsDefault,
		CreatedAt:  cc.CreatedAt,
		UpdatedAt:  cc.UpdatedAt,
	}
}

func toDomainInvoice(idb *invoiceDB) (*creditcard.Invoice, error) {
	ids, err := parseIDs([]string{idb.Id, idb.CreditCardId})
	if err != nil {
		return nil, err
	}

	inv := &creditcard.Invoice{
		Id:           ids[0],
		CreditCardId: ids[1],
		Month:        idb.Month,
		Year:         idb.Year,
		DueDate:      idb.DueDate,
		Status:       creditcard.InvoiceStatus(idb.Status),
		Note:         idb.Note,
		Expenses:     make([]*creditcard.Expense, 0, len(idb.Expenses)),
		CreatedAt:    idb.CreatedAt,
		UpdatedAt:    idb.UpdatedAt,
	}
	if idb.Card != nil {
		inv.Card = &creditcard.CardSummary{Id: ids[1], Name: idb.Card.Name, Brand: idb.Card.Brand}
	}
	for i := range idb.Expenses {
		e, err := toDomainExpense(&idb.Expenses[i])
		if err != nil {
			return nil, err
		}
		inv.Expenses = append(inv.Expenses, e)
	}
	inv.RecomputeTotal()
	return inv, nil
}

func toDBInvoice(inv *creditcard.Invoice) *invoiceDB {
	return &invoiceDB{
		Id:           inv.Id.String(),
		CreditCardId: inv.CreditCardId.String(),
		Month:        inv.Month,
		Year:         inv.Year,
		DueDate:      inv.DueDate,
		Status:       string(inv.Status),
		Note:         inv.Note,
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
}

func toDomainExpense(edb *expenseDB) (*creditcard.Expense, error) {
	ids, err := parseIDs([]string{edb.Id, edb.InvoiceId, edb.CategoryId})
	if err != nil {
		return nil, err
	}
	return &creditcard.Expense{
		Id:               ids[0],
		InvoiceId:        ids[1],
		CategoryId:       ids[2],
		Name:             edb.Name,
		Amount:           edb.Amount,
		PurchaseDate:     edb.PurchaseDate,
		Note:             edb.Note,
		InstallmentLabel: edb.InstallmentLabel,
		InstallmentCount: edb.InstallmentCount,
		CreatedAt:        edb.CreatedAt,
		UpdatedAt:        edb.UpdatedAt,
	}, nil
}

func toDBExpense(e *creditcard.Expense) *expenseDB {
	return &expenseDB{
		Id:               e.Id.String(),
		InvoiceId:        e.InvoiceId.String(),
		CategoryId:       e.CategoryId.String(),
		Name:             e.Name,
		Amount:           e.Amount,
		PurchaseDate:     e.PurchaseDate,
		Note:             e.Note,
		InstallmentLabel: e.InstallmentLabel,
		InstallmentCount: e.InstallmentCount,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// ownedCards selects the ids of the cards belonging to userID.
func ownedCards(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&creditCardDB{}).Select("id").Where("user_id = ?", userID.String())
}

func ownedInvoices(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&invoiceDB{}).Select("id").Where("credit_card_id IN (?)", ownedCards(db, userID))
}

func orderedExpenses(db *gorm.DB) *gorm.DB {
	return db.Order("purchase_date ASC, id ASC")
}

// ========== Credit Cards ==========

func (r *CreditCardRepository) CreateCreditCard(ctx context.Context, card *creditcard.CreditCard) error {
	return translateError(r.DB.WithContext(ctx).Create(toDBCreditCard(card)).Error)
}

func (r *CreditCardRepository) UpdateCreditCard(ctx context.Context, card *creditcard.CreditCard) error {
	ccdb := toDBCreditCard(card)
	res := r.DB.WithContext(ctx).Model(&creditCardDB{}).
		Where("id = ? AND user_id = ?", ccdb.Id, ccdb.UserId).
		Updates(map[string]interface{}{
			"name":        ccdb.Name,
			"brand":       ccdb.Brand,
			"card_limit":  ccdb.CardLimit,
			"closing_day": ccdb.ClosingDay,
			"due_day":     ccdb.DueDay,
			"is_default":  ccdb.IsDefault,
			"updated_at":  ccdb.UpdatedAt,
		})
	return requireAffected(res)
}

// DeleteCreditCard removes the card together with its invoices and their
// expenses.
func (r *CreditCardRepository) DeleteCreditCard(ctx context.Context, cardID ulid.ULID, userID uuid.UUID) error {
	return translateError(r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoices := tx.Model(&invoiceDB{}).Select("id").Where("credit_card_id = ?", cardID.String())
		if err := tx.Where("invoice_id IN (?)", invoices).Delete(&expenseDB{}).Error; err != nil {
			return err
		}
		if err := tx.Where("credit_card_id = ?", cardID.String()).Delete(&invoiceDB{}).Error; err != nil {
			return err
		}
		return requireAffected(tx.Where("id = ? AND user_id = ?", cardID.String(), userID.String()).Delete(&creditCardDB{}))
	}))
}

func (r *CreditCardRepository) GetCreditCardById(ctx context.Context, cardID ulid.ULID, userID uuid.UUID) (*creditcard.CreditCard, error) {
	var ccdb creditCardDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", cardID.String(), userID.String()).
		First(&ccdb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainCreditCard(&ccdb)
}

func (r *CreditCardRepository) ListCreditCards(ctx context.Context, userID uuid.UUID) ([]*creditcard.CreditCard, error) {
	var rows []creditCardDB
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("is_default DESC, name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	cards := make([]*creditcard.CreditCard, 0, len(rows))
	for i := range rows {
		card, err := toDomainCreditCard(&rows[i])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (r *CreditCardRepository) ClearDefaultCreditCard(ctx context.Context, userID uuid.UUID) error {
	err := r.DB.WithContext(ctx).Model(&creditCardDB{}).
		Where("user_id = ? AND is_default = ?", userID.String(), true).
		Update("is_default", false).Error
	return translateError(err)
}

// ========== Invoices ==========

func (r *CreditCardRepository) CreateInvoice(ctx context.Context, invoice *creditcard.Invoice) error {
	return translateError(r.DB.WithContext(ctx).Omit(clause.Associations).Create(toDBInvoice(invoice)).Error)
}

func (r *CreditCardRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID ulid.ULID, status creditcard.InvoiceStatus, updatedAt time.Time) error {
	res := r.DB.WithContext(ctx).Model(&invoiceDB{}).
		Where("id = ?", invoiceID.String()).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": updatedAt,
		})
	return requireAffected(res)
}

func (r *CreditCardRepository) MarkInvoicePaid(ctx context.Context, invoiceID ulid.ULID, updatedAt time.Time) error {
	res := r.DB.WithContext(ctx).Model(&invoiceDB{}).
		Where("id = ? AND status <> ?", invoiceID.String(), string(creditcard.InvoicePaid)).
		Updates(map[string]interface{}{
			"status":     string(creditcard.InvoicePaid),
			"updated_at": updatedAt,
		})
	return requireAffected(res)
}

func (r *CreditCardRepository) DeleteInvoice(ctx context.Context, invoiceID ulid.ULID) error {
	return translateError(r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", invoiceID.String()).Delete(&expenseDB{}).Error; err != nil {
			return err
		}
		return requireAffected(tx.Where("id = ?", invoiceID.String()).Delete(&invoiceDB{}))
	}))
}

func (r *CreditCardRepository) GetInvoiceById(ctx context.Context, invoiceID ulid.ULID, userID uuid.UUID) (*creditcard.Invoice, error) {
	db := r.DB.WithContext(ctx)
	var idb invoiceDB
	err := db.
		Preload("Card").
		Preload("Expenses", orderedExpenses).
		Where("id = ? AND credit_card_id IN (?)", invoiceID.String(), ownedCards(db, userID)).
		First(&idb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainInvoice(&idb)
}

func (r *CreditCardRepository) GetInvoiceByCycle(ctx context.Context, cardID ulid.ULID, month, year int) (*creditcard.Invoice, error) {
	var idb invoiceDB
	err := r.DB.WithContext(ctx).
		Preload("Card").
		Where("credit_card_id = ? AND month = ? AND year = ?", cardID.String(), month, year).
		First(&idb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainInvoice(&idb)
}

func (r *CreditCardRepository) ListInvoices(ctx context.Context, userID uuid.UUID, filter creditcard.InvoiceFilter) ([]*creditcard.Invoice, error) {
	db := r.DB.WithContext(ctx)
	q := db.
		Preload("Card").
		Preload("Expenses", orderedExpenses).
		Where("credit_card_id IN (?)", ownedCards(db, userID))

	if filter.CreditCardId != nil {
		q = q.Where("credit_card_id = ?", filter.CreditCardId.String())
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.Month != nil {
		q = q.Where("month = ?", *filter.Month)
	}
	if filter.Year != nil {
		q = q.Where("year = ?", *filter.Year)
	}

	var rows []invoiceDB
	if err := q.Order("year DESC, month DESC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}

	invoices := make([]*creditcard.Invoice, 0, len(rows))
	for i := range rows {
		inv, err := toDomainInvoice(&rows[i])
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

// ========== Expenses ==========

func (r *CreditCardRepository) CreateExpense(ctx context.Context, expense *creditcard.Expense) error {
	return translateError(r.DB.WithContext(ctx).Create(toDBExpense(expense)).Error)
}

func (r *CreditCardRepository) UpdateExpense(ctx context.Context, expense *creditcard.Expense) error {
	edb := toDBExpense(expense)
	res := r.DB.WithContext(ctx).Model(&expenseDB{}).
		Where("id = ?", edb.Id).
		Updates(map[string]interface{}{
			"name":          edb.Name,
			"amount":        edb.Amount,
			"purchase_date": edb.PurchaseDate,
			"category_id":   edb.CategoryId,
			"note":          edb.Note,
			"updated_at":    edb.UpdatedAt,
		})
	return requireAffected(res)
}

func (r *CreditCardRepository) DeleteExpense(ctx context.Context, expenseID ulid.ULID) error {
	return requireAffected(r.DB.WithContext(ctx).Where("id = ?", expenseID.String()).Delete(&expenseDB{}))
}

func (r *CreditCardRepository) DeleteExpenses(ctx context.Context, expenseIDs []ulid.ULID) error {
	if len(expenseIDs) == 0 {
		return nil
	}
	err := r.DB.WithContext(ctx).
		Where("id IN ?", idStrings(lo.Uniq(expenseIDs))).
		Delete(&expenseDB{}).Error
	return translateError(err)
}

func (r *CreditCardRepository) GetExpenseById(ctx context.Context, expenseID ulid.ULID, userID uuid.UUID) (*creditcard.Expense, error) {
	db := r.DB.WithContext(ctx)
	var edb expenseDB
	err := db.
		Where("id = ? AND invoice_id IN (?)", expenseID.String(), ownedInvoices(db, userID)).
		First(&edb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainExpense(&edb)
}
