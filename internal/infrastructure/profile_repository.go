package infrastructure

import (
	"context"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/admin"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

var _ admin.Repository = (*ProfileRepository)(nil)

type profileDB struct {
	Id              string    `gorm:"type:varchar(36);primaryKey"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Email           string    `gorm:"type:varchar(100);uniqueIndex:idx_user_profiles_email;not null"`
	Whatsapp        string    `gorm:"type:varchar(20)"`
	AccessExpiresAt time.Time `gorm:"not null;index:idx_user_profiles_access_expires_at"`
	CreatedBy       string    `gorm:"type:varchar(36);not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime;not null"`
}

func (profileDB) TableName() string {
	return "user_profiles"
}

func toDomainProfile(pdb *profileDB) (*admin.Profile, error) {
	id, err := parseOwner(pdb.Id)
	if err != nil {
		return nil, err
	}
	createdBy, err := parseOwner(pdb.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &admin.Profile{
		Id:              id,
		Name:            pdb.Name,
		Email:           pdb.Email,
		Phone:           pdb.Whatsapp,
		AccessExpiresAt: pdb.AccessExpiresAt,
		CreatedBy:       createdBy,
		CreatedAt:       pdb.CreatedAt,
	}, nil
}

func toDBProfile(p *admin.Profile) *profileDB {
	return &profileDB{
		Id:              p.Id.String(),
		Name:            p.Name,
		Email:           p.Email,
		Whatsapp:        p.Phone,
		AccessExpiresAt: p.AccessExpiresAt,
		CreatedBy:       p.CreatedBy.String(),
		CreatedAt:       p.CreatedAt,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *admin.Profile) error {
	return translateError(r.DB.WithContext(ctx).Create(toDBProfile(p)).Error)
}

func (r *ProfileRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*admin.Profile, int64, error) {
	query := r.DB.WithContext(ctx).Model(&profileDB{}).Session(&gorm.Session{})
	profiles, total, err := pkg.Paginate(query, pagination, "created_at DESC", toDomainProfile)
	if err != nil {
		return nil, 0, translateError(err)
	}
	return profiles, total, nil
}
