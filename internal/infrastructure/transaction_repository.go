package infrastructure

import (
	"context"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/transaction"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

type transactionDB struct {
	Id            string          `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId        string          `gorm:"type:varchar(36);index:idx_transactions_user_date,priority:1;not null;column:user_id"`
	BankAccountId string          `gorm:"type:varchar(26);index;not null;column:bank_account_id"`
	CategoryId    string          `gorm:"type:varchar(26);index;not null;column:category_id"`
	Type          string          `gorm:"type:varchar(10);not null;column:type"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount"`
	Description   string          `gorm:"size:255;column:description"`
	Date          time.Time       `gorm:"type:date;not null;index:idx_transactions_user_date,priority:2;column:transaction_date"`
	CreatedAt     time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt     time.Time       `gorm:"not null;column:updated_at"`
}

func (transactionDB) TableName() string {
	return "transactions"
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	ids, err := parseIDs([]string{tdb.Id, tdb.BankAccountId, tdb.CategoryId})
	if err != nil {
		return nil, err
	}
	uid, err := parseOwner(tdb.UserId)
	if err != nil {
		return nil, err
	}
	return &transaction.Transaction{
		Id:            ids[0],
		UserId:        uid,
		BankAccountId: ids[1],
		CategoryId:    ids[2],
		Type:          transaction.Types(tdb.Type),
		Amount:        tdb.Amount,
		Description:   tdb.Description,
		Date:          tdb.Date,
		CreatedAt:     tdb.CreatedAt,
		UpdatedAt:     tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	return &transactionDB{
		Id:            t.Id.String(),
		UserId:        t.UserId.String(),
		BankAccountId: t.BankAccountId.String(),
		CategoryId:    t.CategoryId.String(),
		Type:          string(t.Type),
		Amount:        t.Amount,
		Description:   t.Description,
		Date:          t.Date,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	return translateError(r.DB.WithContext(ctx).Create(toDBTransaction(t)).Error)
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID, userID uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID.String(), userID.String()).
		Delete(&transactionDB{})
	return requireAffected(res)
}

func (r *TransactionRepository) GetByID(ctx context.Context, transactionID ulid.ULID, userID uuid.UUID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID.String(), userID.String()).
		First(&tdb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainTransaction(&tdb)
}
