package category

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Repository interface {
	GetByID(ctx context.Context, categoryID ulid.ULID, userID uuid.UUID) (*Category, error)
	List(ctx context.Context, userID uuid.UUID, kind *Kind) ([]*Category, error)
}
