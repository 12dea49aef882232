package transaction

import (
	"context"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Service is the ledger side of the credit card flow: rows written here are
// the money movements that settle invoices.
type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Record(ctx context.Context, tx *Transaction) error {
	if !tx.Type.IsValid() {
		return appErrors.NewValidationError("type", "Tipo de transação inválido")
	}
	if tx.Amount.IsNegative() {
		return appErrors.NewValidationError("amount", "Valor não pode ser negativo")
	}
	if pkg.IsEmptyULID(tx.Id) {
		tx.Id = pkg.GenerateULIDObject()
	}

	now := time.Now()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now

	if err := s.Repository.Create(ctx, tx); err != nil {
		return appErrors.NewStoreError(err)
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, transactionID ulid.ULID, ownerID uuid.UUID) error {
	if err := s.Repository.Delete(ctx, transactionID, ownerID); err != nil {
		return appErrors.NewStoreError(err)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, transactionID ulid.ULID, ownerID uuid.UUID) (*Transaction, error) {
	tx, err := s.Repository.GetByID(ctx, transactionID, ownerID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, appErrors.ErrNotFound
		}
		return nil, appErrors.NewStoreError(err)
	}
	return tx, nil
}
