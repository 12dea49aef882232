package infrastructure

import (
	"context"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/transfer"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransferRepository struct {
	DB *gorm.DB
}

var _ transfer.Repository = (*TransferRepository)(nil)

type transferDB struct {
	Id            string          `gorm:"type:varchar(26);primaryKey"`
	UserId        string          `gorm:"type:varchar(36);index:idx_transfers_user_id;not null"`
	FromAccountId string          `gorm:"type:varchar(26);index;not null"`
	ToAccountId   string          `gorm:"type:varchar(26);index;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TransferDate  time.Time       `gorm:"type:date;not null"`
	Description   string          `gorm:"type:varchar(255)"`
	FromAccount   *bankAccountDB  `gorm:"foreignKey:FromAccountId"`
	ToAccount     *bankAccountDB  `gorm:"foreignKey:ToAccountId"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

func (transferDB) TableName() string {
	return "transfers"
}

func toAccountRef(adb *bankAccountDB, id ulid.ULID) *transfer.AccountRef {
	if adb == nil {
		return nil
	}
	return &transfer.AccountRef{Id: id, Name: adb.Name}
}

func toDomainTransfer(tdb *transferDB) (*transfer.Transfer, error) {
	ids, err := parseIDs([]string{tdb.Id, tdb.FromAccountId, tdb.ToAccountId})
	if err != nil {
		return nil, err
	}
	uid, err := parseOwner(tdb.UserId)
	if err != nil {
		return nil, err
	}
	return &transfer.Transfer{
		Id:            ids[0],
		UserId:        uid,
		FromAccountId: ids[1],
		ToAccountId:   ids[2],
		Amount:        tdb.Amount,
		TransferDate:  tdb.TransferDate,
		Description:   tdb.Description,
		FromAccount:   toAccountRef(tdb.FromAccount, ids[1]),
		ToAccount:     toAccountRef(tdb.ToAccount, ids[2]),
		CreatedAt:     tdb.CreatedAt,
		UpdatedAt:     tdb.UpdatedAt,
	}, nil
}

func toDBTransfer(t *transfer.Transfer) *transferDB {
	return &transferDB{
		Id:            t.Id.String(),
		UserId:        t.UserId.String(),
		FromAccountId: t.FromAccountId.String(),
		ToAccountId:   t.ToAccountId.String(),
		Amount:        t.Amount,
		TransferDate:  t.TransferDate,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (r *TransferRepository) Create(ctx context.Context, t *transfer.Transfer) error {
	return translateError(r.DB.WithContext(ctx).Omit(clause.Associations).Create(toDBTransfer(t)).Error)
}

func (r *TransferRepository) Update(ctx context.Context, t *transfer.Transfer) error {
	tdb := toDBTransfer(t)
	res := r.DB.WithContext(ctx).Model(&transferDB{}).
		Where("id = ? AND user_id = ?", tdb.Id, tdb.UserId).
		Updates(map[string]interface{}{
			"from_account_id": tdb.FromAccountId,
			"to_account_id":   tdb.ToAccountId,
			"amount":          tdb.Amount,
			"transfer_date":   tdb.TransferDate,
			"description":     tdb.Description,
			"updated_at":      tdb.UpdatedAt,
		})
	return requireAffected(res)
}

func (r *TransferRepository) Delete(ctx context.Context, transferID ulid.ULID, userID uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", transferID.String(), userID.String()).
		Delete(&transferDB{})
	return requireAffected(res)
}

func (r *TransferRepository) GetByID(ctx context.Context, transferID ulid.ULID, userID uuid.UUID) (*transfer.Transfer, error) {
	var tdb transferDB
	err := r.DB.WithContext(ctx).
		Preload("FromAccount").
		Preload("ToAccount").
		Where("id = ? AND user_id = ?", transferID.String(), userID.String()).
		First(&tdb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainTransfer(&tdb)
}

func (r *TransferRepository) List(ctx context.Context, userID uuid.UUID) ([]*transfer.Transfer, error) {
	var rows []transferDB
	err := r.DB.WithContext(ctx).
		Preload("FromAccount").
		Preload("ToAccount").
		Where("user_id = ?", userID.String()).
		Order("transfer_date DESC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	transfers := make([]*transfer.Transfer, 0, len(rows))
	for i := range rows {
		t, err := toDomainTransfer(&rows[i])
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, nil
}
