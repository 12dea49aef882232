package infrastructure

import (
	"context"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/category"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

var _ category.Repository = (*CategoryRepository)(nil)

type categoryDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	UserId    string    `gorm:"type:varchar(36);index:idx_categories_user_id;not null"`
	Name      string    `gorm:"size:100;not null"`
	Type      string    `gorm:"type:varchar(10);not null;index:idx_categories_type"`
	Color     string    `gorm:"size:20"`
	Icon      string    `gorm:"size:50"`
	CreatedAt time.Time `gorm:"not null"`
}

func (categoryDB) TableName() string {
	return "categories"
}

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}
	uid, err := parseOwner(cdb.UserId)
	if err != nil {
		return nil, err
	}
	return &category.Category{
		Id:        id,
		UserId:    uid,
		Name:      cdb.Name,
		Kind:      category.Kind(cdb.Type),
		Color:     cdb.Color,
		Icon:      cdb.Icon,
		CreatedAt: cdb.CreatedAt,
	}, nil
}

func toDBCategory(c *category.Category) *categoryDB {
	return &categoryDB{
		Id:        c.Id.String(),
		UserId:    c.UserId.String(),
		Name:      c.Name,
		Type:      string(c.Kind),
		Color:     c.Color,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt,
	}
}

// Create is used by seeding and tests; categories are otherwise managed by
// the client application.
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	return translateError(r.DB.WithContext(ctx).Create(toDBCategory(c)).Error)
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID ulid.ULID, userID uuid.UUID) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", categoryID.String(), userID.String()).
		First(&cdb).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) List(ctx context.Context, userID uuid.UUID, kind *category.Kind) ([]*category.Category, error) {
	q := r.DB.WithContext(ctx).Where("user_id = ?", userID.String())
	if kind != nil {
		q = q.Where("type = ?", string(*kind))
	}

	var rows []categoryDB
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}

	out := make([]*category.Category, 0, len(rows))
	for i := range rows {
		c, err := toDomainCategory(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
