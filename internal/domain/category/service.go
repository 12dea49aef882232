package category

import (
	"context"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) ListCategories(ctx context.Context, actor shared.Actor, kind *Kind) ([]*Category, error) {
	if kind != nil && !kind.IsValid() {
		return nil, appErrors.NewValidationError("type", "Tipo deve ser expense ou income")
	}
	categories, err := s.Repository.List(ctx, actor.OwnerID, kind)
	if err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return categories, nil
}

func (s *Service) GetOwnedCategory(ctx context.Context, ownerID uuid.UUID, categoryID ulid.ULID) (*Category, error) {
	cat, err := s.Repository.GetByID(ctx, categoryID, ownerID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, appErrors.ErrCategoryNotFound
		}
		return nil, appErrors.NewStoreError(err)
	}
	return cat, nil
}
