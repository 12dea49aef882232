package infrastructure

import (
	"context"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/account"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type BankAccountRepository struct {
	DB *gorm.DB
}

var _ account.Repository = (*BankAccountRepository)(nil)

type bankAccountDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	UserId    string    `gorm:"type:varchar(36);index:idx_bank_accounts_user_id;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	IsDefault bool      `gorm:"not null;default:false"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_bank_accounts_active"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (bankAccountDB) TableName() string {
	return "bank_accounts"
}

func toDomainBankAccount(adb *bankAccountDB) (*account.BankAccount, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, err
	}
	uid, err := parseOwner(adb.UserId)
	if err != nil {
		return nil, err
	}
	return &account.BankAccount{
		Id:        id,
		UserId:    uid,
		Name:      adb.Name,
		IsDefault: adb.IsDefault,
		IsActive:  adb.IsActive,
		CreatedAt: adb.CreatedAt,
		UpdatedAt: adb.UpdatedAt,
	}, nil
}

func toDBBankAccount(a *account.BankAccount) *bankAccountDB {
	return &bankAccountDB{
		Id:        a.Id.String(),
		UserId:    a.UserId.String(),
		Name:      a.Name,
		IsDefault: a.IsDefault,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *BankAccountRepository) Create(ctx context.Context, a *account.BankAccount) error {
	return translateError(r.DB.WithContext(ctx).Create(toDBBankAccount(a)).Error)
}

func (r *BankAccountRepository) Update(ctx context.Context, a *account.BankAccount) error {
	adb := toDBBankAccount(a)
	res := r.DB.WithContext(ctx).Model(&bankAccountDB{}).
		Where("id = ? AND user_id = ?", adb.Id, adb.UserId).
		Updates(map[string]interface{}{
			"name":       adb.Name,
			"is_default": adb.IsDefault,
			"updated_at": adb.UpdatedAt,
		})
	return requireAffected(res)
}

func (r *BankAccountRepository) Deactivate(ctx context.Context, accountID ulid.ULID, userID uuid.UUID) error {
	res := r.DB.WithContext(ctx).Model(&bankAccountDB{}).
		Where("id = ? AND user_id = ?", accountID.String(), userID.String()).
		Updates(map[string]interface{}{
			"is_active":  false,
			"is_default": false,
			"updated_at": time.Now(),
		})
	return requireAffected(res)
}

func (r *BankAccountRepository) GetActiveByID(ctx context.Context, accountID ulid.ULID, userID uuid.UUID) (*account.BankAccount, error) {
	var adb bankAccountDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_active = ?", accountID.String(), userID.String(), true).
		First(&adb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainBankAccount(&adb)
}

func (r *BankAccountRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*account.BankAccount, error) {
	var rows []bankAccountDB
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID.String(), true).
		Order("is_default DESC, name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	accounts := make([]*account.BankAccount, 0, len(rows))
	for i := range rows {
		a, err := toDomainBankAccount(&rows[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (r *BankAccountRepository) GetDefault(ctx context.Context, userID uuid.UUID) (*account.BankAccount, error) {
	var adb bankAccountDB
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND is_default = ? AND is_active = ?", userID.String(), true, true).
		First(&adb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainBankAccount(&adb)
}

func (r *BankAccountRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	err := r.DB.WithContext(ctx).Model(&bankAccountDB{}).
		Where("user_id = ? AND is_default = ?", userID.String(), true).
		Update("is_default", false).Error
	return translateError(err)
}
