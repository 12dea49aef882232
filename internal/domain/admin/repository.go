package admin

import (
	"context"

	"github.com/dmogiovanni/teugestor-backend/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Profile, int64, error)
}
