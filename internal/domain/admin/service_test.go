package admin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/admin"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepository struct {
	createFn func(ctx context.Context, p *admin.Profile) error
	listFn   func(ctx context.Context, pagination *pkg.PaginationParams) ([]*admin.Profile, int64, error)
}

func (f *fakeProfileRepository) Create(ctx context.Context, p *admin.Profile) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakeProfileRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*admin.Profile, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, pagination)
	}
	return nil, 0, nil
}

type fakeIdentity struct {
	id      uuid.UUID
	deleted []uuid.UUID
}

func (f *fakeIdentity) CreateUser(ctx context.Context, identity shared.NewIdentity) (uuid.UUID, error) {
	return f.id, nil
}

func (f *fakeIdentity) DeleteUser(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func adminActor() shared.Actor {
	id := uuid.New()
	return shared.Actor{PrincipalID: id, OwnerID: id, Access: shared.AccessFull, Email: "Root@TeuGestor.com.br"}
}

func TestService_IsAdmin(t *testing.T) {
	t.Parallel()

	svc := admin.NewService(&fakeProfileRepository{}, &fakeIdentity{}, []string{" root@teugestor.com.br "})
	assert.True(t, svc.IsAdmin(adminActor()))
	assert.False(t, svc.IsAdmin(shared.Actor{Email: "user@teugestor.com.br"}))
	assert.False(t, svc.IsAdmin(shared.Actor{}))
}

func TestService_CreateUser(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
	req := func() *admin.CreateUserRequest {
		return &admin.CreateUserRequest{Name: "Joao", Email: "joao@example.com", Phone: "11999990000", Password: "senha123", AccessPeriodDays: 30}
	}

	t.Run("creates profile with access window", func(t *testing.T) {
		t.Parallel()

		identity := &fakeIdentity{id: uuid.New()}
		svc := admin.NewService(&fakeProfileRepository{}, identity, []string{"root@teugestor.com.br"})
		svc.Now = func() time.Time { return now }

		profile, err := svc.CreateUser(context.Background(), adminActor(), req())
		require.NoError(t, err)
		assert.Equal(t, identity.id, profile.Id)
		assert.Equal(t, now.AddDate(0, 0, 30), profile.AccessExpiresAt)
		assert.True(t, profile.HasAccess(now))
		assert.False(t, profile.HasAccess(now.AddDate(0, 0, 31)))
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		t.Parallel()

		svc := admin.NewService(&fakeProfileRepository{}, &fakeIdentity{}, []string{"root@teugestor.com.br"})
		_, err := svc.CreateUser(context.Background(), shared.Actor{Email: "x@y.com"}, req())
		appErr, ok := appErrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})

	t.Run("invalid access period", func(t *testing.T) {
		t.Parallel()

		svc := admin.NewService(&fakeProfileRepository{}, &fakeIdentity{}, []string{"root@teugestor.com.br"})
		r := req()
		r.AccessPeriodDays = 0
		_, err := svc.CreateUser(context.Background(), adminActor(), r)
		appErr, ok := appErrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("profile failure deletes identity", func(t *testing.T) {
		t.Parallel()

		identity := &fakeIdentity{id: uuid.New()}
		svc := admin.NewService(&fakeProfileRepository{
			createFn: func(ctx context.Context, p *admin.Profile) error { return errors.New("insert failed") },
		}, identity, []string{"root@teugestor.com.br"})

		_, err := svc.CreateUser(context.Background(), adminActor(), req())
		require.Error(t, err)
		assert.Equal(t, []uuid.UUID{identity.id}, identity.deleted)
	})
}
