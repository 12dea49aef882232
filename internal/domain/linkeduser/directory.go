package linkeduser

import (
	"context"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type resolution struct {
	owner  uuid.UUID
	access shared.AccessLevel
}

// Directory resolves principals through the linked_users table. Results are
// cached per principal for a short TTL; link writes invalidate eagerly.
type Directory struct {
	Repository Repository
	cache      *cache.Cache
}

var _ shared.Directory = (*Directory)(nil)

func NewDirectory(repo Repository, ttl time.Duration) *Directory {
	return &Directory{
		Repository: repo,
		cache:      cache.New(ttl, 2*ttl),
	}
}

func (d *Directory) ResolveEffectiveOwner(ctx context.Context, principal uuid.UUID) (uuid.UUID, error) {
	res, err := d.resolve(ctx, principal)
	if err != nil {
		return uuid.Nil, err
	}
	return res.owner, nil
}

func (d *Directory) AccessLevel(ctx context.Context, principal uuid.UUID) (shared.AccessLevel, error) {
	res, err := d.resolve(ctx, principal)
	if err != nil {
		return "", err
	}
	return res.access, nil
}

func (d *Directory) Invalidate(principal uuid.UUID) {
	d.cache.Delete(principal.String())
}

func (d *Directory) resolve(ctx context.Context, principal uuid.UUID) (resolution, error) {
	key := principal.String()
	if cached, ok := d.cache.Get(key); ok {
		return cached.(resolution), nil
	}

	res := resolution{owner: principal, access: shared.AccessFull}
	link, err := d.Repository.FindActiveByLinkedUser(ctx, principal)
	switch {
	case err == nil:
		res = resolution{owner: link.MainUserId, access: link.PermissionType}
		if !res.access.IsValid() {
			res.access = shared.AccessViewOnly
		}
	case shared.IsNotFound(err):
	default:
		return resolution{}, appErrors.NewStoreError(err)
	}

	d.cache.SetDefault(key, res)
	return res, nil
}
