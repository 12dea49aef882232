package infrastructure

import (
	"context"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/linkeduser"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type LinkedUserRepository struct {
	DB *gorm.DB
}

var _ linkeduser.Repository = (*LinkedUserRepository)(nil)

type linkedUserDB struct {
	Id             string    `gorm:"type:varchar(26);primaryKey"`
	MainUserId     string    `gorm:"type:varchar(36);index:idx_linked_users_main_user_id;not null"`
	LinkedUserId   string    `gorm:"type:varchar(36);index:idx_linked_users_linked_user_id;not null"`
	PermissionType string    `gorm:"type:varchar(20);not null;default:'view_only'"`
	IsActive       bool      `gorm:"not null;default:true"`
	UserName       string    `gorm:"type:varchar(100)"`
	UserEmail      string    `gorm:"type:varchar(100);not null"`
	UserPhone      string    `gorm:"type:varchar(20)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (linkedUserDB) TableName() string {
	return "linked_users"
}

func toDomainLinkedUser(ldb *linkedUserDB) (*linkeduser.LinkedUser, error) {
	id, err := pkg.ParseULID(ldb.Id)
	if err != nil {
		return nil, err
	}
	mainID, err := parseOwner(ldb.MainUserId)
	if err != nil {
		return nil, err
	}
	linkedID, err := parseOwner(ldb.LinkedUserId)
	if err != nil {
		return nil, err
	}
	return &linkeduser.LinkedUser{
		Id:             id,
		MainUserId:     mainID,
		LinkedUserId:   linkedID,
		PermissionType: shared.AccessLevel(ldb.PermissionType),
		IsActive:       ldb.IsActive,
		UserInfo: linkeduser.UserInfo{
			Id:    linkedID,
			Email: ldb.UserEmail,
			Name:  ldb.UserName,
			Phone: ldb.UserPhone,
		},
		CreatedAt: ldb.CreatedAt,
		UpdatedAt: ldb.UpdatedAt,
	}, nil
}

func toDBLinkedUser(l *linkeduser.LinkedUser) *linkedUserDB {
	return &linkedUserDB{
		Id:             l.Id.String(),
		MainUserId:     l.MainUserId.String(),
		LinkedUserId:   l.LinkedUserId.String(),
		PermissionType: string(l.PermissionType),
		IsActive:       l.IsActive,
		UserName:       l.UserInfo.Name,
		UserEmail:      l.UserInfo.Email,
		UserPhone:      l.UserInfo.Phone,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func (r *LinkedUserRepository) Create(ctx context.Context, link *linkeduser.LinkedUser) error {
	return translateError(r.DB.WithContext(ctx).Create(toDBLinkedUser(link)).Error)
}

func (r *LinkedUserRepository) Update(ctx context.Context, link *linkeduser.LinkedUser) error {
	ldb := toDBLinkedUser(link)
	res := r.DB.WithContext(ctx).Model(&linkedUserDB{}).
		Where("id = ? AND main_user_id = ?", ldb.Id, ldb.MainUserId).
		Updates(map[string]interface{}{
			"permission_type": ldb.PermissionType,
			"is_active":       ldb.IsActive,
			"user_name":       ldb.UserName,
			"user_email":      ldb.UserEmail,
			"user_phone":      ldb.UserPhone,
			"updated_at":      ldb.UpdatedAt,
		})
	return requireAffected(res)
}

func (r *LinkedUserRepository) GetByID(ctx context.Context, linkID ulid.ULID, mainUserID uuid.UUID) (*linkeduser.LinkedUser, error) {
	var ldb linkedUserDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND main_user_id = ?", linkID.String(), mainUserID.String()).
		First(&ldb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainLinkedUser(&ldb)
}

func (r *LinkedUserRepository) ListActive(ctx context.Context, mainUserID uuid.UUID) ([]*linkeduser.LinkedUser, error) {
	var rows []linkedUserDB
	err := r.DB.WithContext(ctx).
		Where("main_user_id = ? AND is_active = ?", mainUserID.String(), true).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	links := make([]*linkeduser.LinkedUser, 0, len(rows))
	for i := range rows {
		l, err := toDomainLinkedUser(&rows[i])
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, nil
}

func (r *LinkedUserRepository) FindActiveByLinkedUser(ctx context.Context, linkedUserID uuid.UUID) (*linkeduser.LinkedUser, error) {
	var ldb linkedUserDB
	err := r.DB.WithContext(ctx).
		Where("linked_user_id = ? AND is_active = ?", linkedUserID.String(), true).
		Order("created_at DESC").
		First(&ldb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainLinkedUser(&ldb)
}
