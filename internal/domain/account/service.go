package account

import (
	"context"
	"strings"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) ListAccounts(ctx context.Context, actor shared.Actor) ([]*BankAccount, error) {
	accounts, err := s.Repository.ListActive(ctx, actor.OwnerID)
	if err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return accounts, nil
}

func (s *Service) CreateAccount(ctx context.Context, actor shared.Actor, req *CreateAccountRequest) (*BankAccount, error) {
	if err := actor.RequireFullAccess(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "Nome da conta é obrigatório")
	}

	if req.IsDefault {
		if err := s.Repository.ClearDefault(ctx, actor.OwnerID); err != nil {
			return nil, appErrors.NewStoreError(err)
		}
	}

	now := time.Now()
	account := &BankAccount{
		Id:        pkg.GenerateULIDObject(),
		UserId:    actor.OwnerID,
		Name:      name,
		IsDefault: req.IsDefault,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, account); err != nil {
		return nil, appErrors.NewStoreError(err)
	}

	logger.Info().
		Str("account_id", account.Id.String()).
		Str("owner_id", actor.OwnerID.String()).
		Msg("Conta bancária criada")

	return account, nil
}

func (s *Service) UpdateAccount(ctx context.Context, actor shared.Actor, accountID ulid.ULID, req *UpdateAccountRequest) (*BankAccount, error) {
	if err := actor.RequireFullAccess(); err != nil {
		return nil, err
	}

	account, err := s.GetOwnedAccount(ctx, actor.OwnerID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "Nome da conta não pode ser vazio")
		}
		account.Name = name
	}

	if req.IsDefault != nil {
		if *req.IsDefault && !account.IsDefault {
			if err := s.Repository.ClearDefault(ctx, actor.OwnerID); err != nil {
				return nil, appErrors.NewStoreError(err)
			}
		}
		account.IsDefault = *req.IsDefault
	}

	account.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, account); err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return account, nil
}

// DeleteAccount soft-deletes; transactions keep pointing at the row.
func (s *Service) DeleteAccount(ctx context.Context, actor shared.Actor, accountID ulid.ULID) error {
	if err := actor.RequireFullAccess(); err != nil {
		return err
	}

	if _, err := s.GetOwnedAccount(ctx, actor.OwnerID, accountID); err != nil {
		return err
	}

	if err := s.Repository.Deactivate(ctx, accountID, actor.OwnerID); err != nil {
		return appErrors.NewStoreError(err)
	}
	return nil
}

// GetDefaultAccount returns nil without error when the owner has no default account.
func (s *Service) GetDefaultAccount(ctx context.Context, actor shared.Actor) (*BankAccount, error) {
	account, err := s.Repository.GetDefault(ctx, actor.OwnerID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, nil
		}
		return nil, appErrors.NewStoreError(err)
	}
	return account, nil
}

func (s *Service) GetOwnedAccount(ctx context.Context, ownerID uuid.UUID, accountID ulid.ULID) (*BankAccount, error) {
	account, err := s.Repository.GetActiveByID(ctx, accountID, ownerID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, appErrors.ErrAccountNotFound
		}
		return nil, appErrors.NewStoreError(err)
	}
	return account, nil
}

// EnsureOwnedAccounts fails with ACCOUNT_NOT_FOUND on the first id that is not an
// active account of the owner.
func (s *Service) EnsureOwnedAccounts(ctx context.Context, ownerID uuid.UUID, accountIDs ...ulid.ULID) error {
	for _, id := range accountIDs {
		if _, err := s.GetOwnedAccount(ctx, ownerID, id); err != nil {
			return err
		}
	}
	return nil
}
