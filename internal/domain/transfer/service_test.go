package transfer_test

import (
	"context"
	"testing"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transfer"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransferRepository struct {
	createFn func(ctx context.Context, t *transfer.Transfer) error
	updateFn func(ctx context.Context, t *transfer.Transfer) error
	deleteFn func(ctx context.Context, id ulid.ULID, userID uuid.UUID) error
	getFn    func(ctx context.Context, id ulid.ULID, userID uuid.UUID) (*transfer.Transfer, error)
	listFn   func(ctx context.Context, userID uuid.UUID) ([]*transfer.Transfer, error)
}

func (f *fakeTransferRepository) Create(ctx context.Context, t *transfer.Transfer) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTransferRepository) Update(ctx context.Context, t *transfer.Transfer) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func (f *fakeTransferRepository) Delete(ctx context.Context, id ulid.ULID, userID uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

func (f *fakeTransferRepository) GetByID(ctx context.Context, id ulid.ULID, userID uuid.UUID) (*transfer.Transfer, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id, userID)
	}
	return nil, shared.ErrRecordNotFound
}

func (f *fakeTransferRepository) List(ctx context.Context, userID uuid.UUID) ([]*transfer.Transfer, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID)
	}
	return nil, nil
}

type fakeAccountChecker struct {
	ensureFn func(ctx context.Context, ownerID uuid.UUID, ids ...ulid.ULID) error
}

func (f *fakeAccountChecker) EnsureOwnedAccounts(ctx context.Context, ownerID uuid.UUID, ids ...ulid.ULID) error {
	if f.ensureFn != nil {
		return f.ensureFn(ctx, ownerID, ids...)
	}
	return nil
}

func actor() shared.Actor {
	id := uuid.New()
	return shared.Actor{PrincipalID: id, OwnerID: id, Access: shared.AccessFull}
}

func TestService_CreateTransfer(t *testing.T) {
	t.Parallel()

	from := pkg.GenerateULIDObject()
	to := pkg.GenerateULIDObject()

	tests := []struct {
		name     string
		req      transfer.CreateTransferRequest
		accounts *fakeAccountChecker
		wantCode string
	}{
		{
			name: "valid transfer",
			req:  transfer.CreateTransferRequest{FromAccountId: from, ToAccountId: to, Amount: decimal.NewFromInt(100)},
		},
		{
			name:     "same account",
			req:      transfer.CreateTransferRequest{FromAccountId: from, ToAccountId: from, Amount: decimal.NewFromInt(100)},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "zero amount",
			req:      transfer.CreateTransferRequest{FromAccountId: from, ToAccountId: to, Amount: decimal.Zero},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name: "account of another owner",
			req:  transfer.CreateTransferRequest{FromAccountId: from, ToAccountId: to, Amount: decimal.NewFromInt(1)},
			accounts: &fakeAccountChecker{ensureFn: func(ctx context.Context, ownerID uuid.UUID, ids ...ulid.ULID) error {
				return appErrors.ErrAccountNotFound
			}},
			wantCode: "ACCOUNT_NOT_FOUND",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			accounts := tc.accounts
			if accounts == nil {
				accounts = &fakeAccountChecker{}
			}
			created := false
			svc := transfer.NewService(&fakeTransferRepository{
				createFn: func(ctx context.Context, tr *transfer.Transfer) error {
					created = true
					return nil
				},
			}, accounts)

			got, err := svc.CreateTransfer(context.Background(), actor(), &tc.req)
			if tc.wantCode == "" {
				require.NoError(t, err)
				assert.True(t, created)
				assert.False(t, got.TransferDate.IsZero())
				return
			}
			appErr, ok := appErrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantCode, appErr.Code)
			assert.False(t, created)
		})
	}
}

func TestService_UpdateTransfer_RevalidatesMergedState(t *testing.T) {
	t.Parallel()

	from := pkg.GenerateULIDObject()
	to := pkg.GenerateULIDObject()
	a := actor()

	svc := transfer.NewService(&fakeTransferRepository{
		getFn: func(ctx context.Context, id ulid.ULID, userID uuid.UUID) (*transfer.Transfer, error) {
			return &transfer.Transfer{Id: id, UserId: userID, FromAccountId: from, ToAccountId: to, Amount: decimal.NewFromInt(10)}, nil
		},
	}, &fakeAccountChecker{})

	_, err := svc.UpdateTransfer(context.Background(), a, pkg.GenerateULIDObject(), &transfer.UpdateTransferRequest{ToAccountId: &from})
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	amount := decimal.RequireFromString("55.10")
	updated, err := svc.UpdateTransfer(context.Background(), a, pkg.GenerateULIDObject(), &transfer.UpdateTransferRequest{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, "55.10", updated.Amount.StringFixed(2))
}

func TestService_DeleteTransfer_NotFound(t *testing.T) {
	t.Parallel()

	svc := transfer.NewService(&fakeTransferRepository{}, &fakeAccountChecker{})
	err := svc.DeleteTransfer(context.Background(), actor(), pkg.GenerateULIDObject())
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "TRANSFER_NOT_FOUND", appErr.Code)
}

func TestService_GetStats(t *testing.T) {
	t.Parallel()

	checking := pkg.GenerateULIDObject()
	savings := pkg.GenerateULIDObject()
	wallet := pkg.GenerateULIDObject()

	ref := func(id ulid.ULID, name string) *transfer.AccountRef { return &transfer.AccountRef{Id: id, Name: name} }
	day := func(m time.Month, d int) time.Time { return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC) }

	transfers := []*transfer.Transfer{
		{FromAccountId: checking, ToAccountId: savings, Amount: decimal.RequireFromString("100.00"), TransferDate: day(time.May, 3), FromAccount: ref(checking, "Corrente"), ToAccount: ref(savings, "Poupança")},
		{FromAccountId: savings, ToAccountId: wallet, Amount: decimal.RequireFromString("20.50"), TransferDate: day(time.May, 1), FromAccount: ref(savings, "Poupança"), ToAccount: ref(wallet, "Carteira")},
		{FromAccountId: checking, ToAccountId: wallet, Amount: decimal.RequireFromString("5.00"), TransferDate: day(time.April, 30), FromAccount: ref(checking, "Corrente"), ToAccount: ref(wallet, "Carteira")},
	}

	svc := transfer.NewService(&fakeTransferRepository{
		listFn: func(ctx context.Context, userID uuid.UUID) ([]*transfer.Transfer, error) { return transfers, nil },
	}, &fakeAccountChecker{})
	svc.Now = func() time.Time { return day(time.May, 20) }

	stats, err := svc.GetStats(context.Background(), actor())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalTransfers)
	assert.Equal(t, "125.50", stats.TotalAmount.StringFixed(2))
	assert.Equal(t, 2, stats.MonthlyTransfers)
	assert.Equal(t, "120.50", stats.MonthlyAmount.StringFixed(2))
	require.NotNil(t, stats.MostActiveAccount)
	assert.Equal(t, checking, stats.MostActiveAccount.Id)
	assert.Equal(t, "Corrente", stats.MostActiveAccount.Name)
	assert.Equal(t, 2, stats.MostActiveAccount.Count)

	empty := transfer.NewService(&fakeTransferRepository{}, &fakeAccountChecker{})
	stats, err = empty.GetStats(context.Background(), actor())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalTransfers)
	assert.Nil(t, stats.MostActiveAccount)
}
