package transfer

import (
	"context"
	"strings"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Service struct {
	Repository Repository
	Accounts   AccountChecker
	Now        func() time.Time
}

func NewService(repo Repository, accounts AccountChecker) *Service {
	return &Service{Repository: repo, Accounts: accounts, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) ListTransfers(ctx context.Context, actor shared.Actor) ([]*Transfer, error) {
	transfers, err := s.Repository.List(ctx, actor.OwnerID)
	if err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return transfers, nil
}

func (s *Service) CreateTransfer(ctx context.Context, actor shared.Actor, req *CreateTransferRequest) (*Transfer, error) {
	if err := actor.RequireFullAccess(); err != nil {
		return nil, err
	}

	t := &Transfer{
		Id:            pkg.GenerateULIDObject(),
		UserId:        actor.OwnerID,
		FromAccountId: req.FromAccountId,
		ToAccountId:   req.ToAccountId,
		Amount:        req.Amount,
		TransferDate:  req.TransferDate,
		Description:   strings.TrimSpace(req.Description),
	}
	if t.TransferDate.IsZero() {
		t.TransferDate = s.now()
	}

	if err := validateTransfer(t); err != nil {
		return nil, err
	}
	if err := s.Accounts.EnsureOwnedAccounts(ctx, actor.OwnerID, t.FromAccountId, t.ToAccountId); err != nil {
		return nil, err
	}

	now := s.now()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.Repository.Create(ctx, t); err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return t, nil
}

func (s *Service) UpdateTransfer(ctx context.Context, actor shared.Actor, transferID ulid.ULID, req *UpdateTransferRequest) (*Transfer, error) {
	if err := actor.RequireFullAccess(); err != nil {
		return nil, err
	}

	t, err := s.getOwned(ctx, actor, transferID)
	if err != nil {
		return nil, err
	}

	var touched []ulid.ULID
	if req.FromAccountId != nil {
		t.FromAccountId = *req.FromAccountId
		touched = append(touched, t.FromAccountId)
	}
	if req.ToAccountId != nil {
		t.ToAccountId = *req.ToAccountId
		touched = append(touched, t.ToAccountId)
	}
	if req.Amount != nil {
		t.Amount = *req.Amount
	}
	if req.TransferDate != nil {
		t.TransferDate = *req.TransferDate
	}
	if req.Description != nil {
		t.Description = strings.TrimSpace(*req.Description)
	}

	if err := validateTransfer(t); err != nil {
		return nil, err
	}
	if len(touched) > 0 {
		if err := s.Accounts.EnsureOwnedAccounts(ctx, actor.OwnerID, touched...); err != nil {
			return nil, err
		}
		t.FromAccount, t.ToAccount = nil, nil
	}

	t.UpdatedAt = s.now()
	if err := s.Repository.Update(ctx, t); err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return t, nil
}

func (s *Service) DeleteTransfer(ctx context.Context, actor shared.Actor, transferID ulid.ULID) error {
	if err := actor.RequireFullAccess(); err != nil {
		return err
	}
	if _, err := s.getOwned(ctx, actor, transferID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, transferID, actor.OwnerID); err != nil {
		return appErrors.NewStoreError(err)
	}
	return nil
}

// GetStats aggregates all transfers of the owner. The monthly figures use the
// calendar month of the service clock.
func (s *Service) GetStats(ctx context.Context, actor shared.Actor) (*Stats, error) {
	transfers, err := s.ListTransfers(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := s.now()
	monthly := lo.Filter(transfers, func(t *Transfer, _ int) bool {
		return t.TransferDate.Year() == now.Year() && t.TransferDate.Month() == now.Month()
	})

	stats := &Stats{
		TotalTransfers:    len(transfers),
		TotalAmount:       sumAmounts(transfers),
		MonthlyTransfers:  len(monthly),
		MonthlyAmount:     sumAmounts(monthly),
		MostActiveAccount: mostActiveAccount(transfers),
	}
	return stats, nil
}

func (s *Service) getOwned(ctx context.Context, actor shared.Actor, transferID ulid.ULID) (*Transfer, error) {
	t, err := s.Repository.GetByID(ctx, transferID, actor.OwnerID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, appErrors.ErrTransferNotFound
		}
		return nil, appErrors.NewStoreError(err)
	}
	return t, nil
}

func validateTransfer(t *Transfer) error {
	if pkg.IsEmptyULID(t.FromAccountId) || pkg.IsEmptyULID(t.ToAccountId) {
		return appErrors.NewValidationError("from_account_id", "Contas de origem e destino são obrigatórias")
	}
	if t.FromAccountId == t.ToAccountId {
		return appErrors.NewValidationError("to_account_id", "Conta de origem e destino devem ser diferentes")
	}
	if !t.Amount.IsPositive() {
		return appErrors.NewValidationError("amount", "Valor deve ser maior que zero")
	}
	return nil
}

func sumAmounts(transfers []*Transfer) decimal.Decimal {
	return lo.Reduce(transfers, func(acc decimal.Decimal, t *Transfer, _ int) decimal.Decimal {
		return acc.Add(t.Amount)
	}, decimal.Zero)
}

// mostActiveAccount counts each transfer once for its source and once for its
// destination. Ties go to the account seen first in list order.
func mostActiveAccount(transfers []*Transfer) *ActiveAccount {
	counts := map[ulid.ULID]*ActiveAccount{}
	var order []ulid.ULID

	bump := func(id ulid.ULID, ref *AccountRef) {
		entry, ok := counts[id]
		if !ok {
			entry = &ActiveAccount{Id: id}
			counts[id] = entry
			order = append(order, id)
		}
		if entry.Name == "" && ref != nil {
			entry.Name = ref.Name
		}
		entry.Count++
	}

	for _, t := range transfers {
		bump(t.FromAccountId, t.FromAccount)
		bump(t.ToAccountId, t.ToAccount)
	}

	var best *ActiveAccount
	for _, id := range order {
		if best == nil || counts[id].Count > best.Count {
			best = counts[id]
		}
	}
	return best
}
