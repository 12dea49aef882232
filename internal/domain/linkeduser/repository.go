package linkeduser

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, link *LinkedUser) error
	Update(ctx context.Context, link *LinkedUser) error
	GetByID(ctx context.Context, linkID ulid.ULID, mainUserID uuid.UUID) (*LinkedUser, error)
	ListActive(ctx context.Context, mainUserID uuid.UUID) ([]*LinkedUser, error)
	FindActiveByLinkedUser(ctx context.Context, linkedUserID uuid.UUID) (*LinkedUser, error)
}
