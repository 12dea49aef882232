package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/auth"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	principal *auth.Principal
	err       error
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (*auth.Principal, error) {
	return f.principal, f.err
}

type staticDirectory struct {
	owner  uuid.UUID
	access shared.AccessLevel
}

func (d *staticDirectory) ResolveEffectiveOwner(ctx context.Context, principal uuid.UUID) (uuid.UUID, error) {
	return d.owner, nil
}

func (d *staticDirectory) AccessLevel(ctx context.Context, principal uuid.UUID) (shared.AccessLevel, error) {
	return d.access, nil
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()

	principal := &auth.Principal{ID: uuid.New(), Email: "ana@example.com"}
	owner := uuid.New()

	svc := auth.NewService(&fakeVerifier{principal: principal}, &staticDirectory{owner: owner, access: shared.AccessViewOnly})
	actor, err := svc.Authenticate(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, principal.ID, actor.PrincipalID)
	assert.Equal(t, owner, actor.OwnerID)
	assert.Equal(t, "ana@example.com", actor.Email)
	assert.Equal(t, shared.AccessViewOnly, actor.Access)

	_, err = svc.Authenticate(context.Background(), "  ")
	assert.True(t, errors.Is(err, appErrors.ErrNotAuthenticated))

	failing := auth.NewService(&fakeVerifier{err: errors.New("signature is invalid")}, &staticDirectory{})
	_, err = failing.Authenticate(context.Background(), "token")
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "NOT_AUTHENTICATED", appErr.Code)
	assert.Equal(t, 401, appErr.StatusCode)
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"bearer   xyz ", "xyz", true},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		token, ok := auth.BearerToken(tc.header)
		assert.Equal(t, tc.ok, ok, tc.header)
		assert.Equal(t, tc.token, token, tc.header)
	}
}
