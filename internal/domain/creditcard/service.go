package creditcard

import (
	"context"
	"strings"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Options struct {
	DueDatePolicy        DueDatePolicy
	RollbackInstallments bool
	// NewBackOff builds the retry schedule for the invoice re-read that follows
	// a lost insert race.
	NewBackOff func() backoff.BackOff
	Now        func() time.Time
}

type Service struct {
	Repository Repository
	Accounts   AccountGetter
	Categories CategoryGetter
	Ledger     TransactionLedger
	Options    Options
}

func NewService(repo Repository, accounts AccountGetter, categories CategoryGetter, ledger TransactionLedger, opts Options) *Service {
	if !opts.DueDatePolicy.IsValid() {
		opts.DueDatePolicy = DueDateClamp
	}
	if opts.NewBackOff == nil {
		opts.NewBackOff = defaultBackOff
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		Repository: repo,
		Accounts:   accounts,
		Categories: categories,
		Ledger:     ledger,
		Options:    opts,
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 25 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond
	b.MaxElapsedTime = 2 * time.Second
	return backoff.WithMaxRetries(b, 5)
}

func (s *Service) now() time.Time {
	if s.Options.Now != nil {
		return s.Options.Now()
	}
	return time.Now()
}

func (s *Service) CreateCreditCard(ctx context.Context, actor shared.Actor, req *CreateCreditCardRequest) (*CreditCard, error) {
	if err := actor.RequireFullAccess(); err != nil {
		return nil, err
	}
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	if req.IsDefault {
		if err := s.Repository.ClearDefaultCreditCard(ctx, actor.OwnerID); err != nil {
			return nil, appErrors.NewStoreError(err)
		}
	}

	now := s.now()
	card := &CreditCard{
		Id:         pkg.GenerateULIDObject(),
		UserId:     actor.OwnerID,
		Name:       strings.TrimSpace(req.Name),
		Brand:      strings.TrimSpace(req.Brand),
		CardLimit:  req.CardLimit,
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
		IsDefault:  req.IsDefault,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Repository.CreateCreditCard(ctx, card); err != nil {
		return nil, appErrors.NewStoreError(err)
	}

	logger.Info().
		Str("card_id", card.Id.String()).
		Str("owner_id", actor.OwnerID.String()).
		Msg("Cartão de crédito criado")

	return card, nil
}

func (s *Service) UpdateCreditCard(ctx context.Context, actor shared.Actor, cardID ulid.ULID, req *UpdateCreditCardRequest) (*CreditCard, error) {
	if err := actor.RequireFullAccess(); err != nil {
		return nil, err
	}

	card, err := s.GetCreditCard(ctx, actor, cardID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "Nome do cartão não pode ser vazio")
		}
		card.Name = name
	}

	if req.Brand != nil {
		card.Brand = strings.TrimSpace(*req.Brand)
	}

	if req.CardLimit != nil {
		if !req.CardLimit.IsPositive() {
			return nil, appErrors.NewValidationError("card_limit", "Limite deve ser maior que zero")
		}
		card.CardLimit = *req.CardLimit
	}

	if req.ClosingDay != nil {
		if !validBillingDay(*req.ClosingDay) {
			return nil, appErrors.NewValidationError("closing_day", "Dia de fechamento deve estar entre 1 e 31")
		}
		card.ClosingDay = *req.ClosingDay
	}

	if req.DueDay != nil {
		if !validBillingDay(*req.DueDay) {
			return nil, appErrors.NewValidationError("due_day", "Dia de vencimento deve estar entre 1 e 31")
		}
		card.DueDay = *req.DueDay
	}

	if req.IsDefault != nil {
		if *req.IsDefault && !card.IsDefault {
			if err := s.Repository.ClearDefaultCreditCard(ctx, actor.OwnerID); err != nil {
				return nil, appErrors.NewStoreError(err)
			}
		}
		card.IsDefault = *req.IsDefault
	}

	card.UpdatedAt = s.now()

	if err := s.Repository.UpdateCreditCard(ctx, card); err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return card, nil
}

// DeleteCreditCard removes the card together with its invoices and expenses.
func (s *Service) DeleteCreditCard(ctx context.Context, actor shared.Actor, cardID ulid.ULID) error {
	if err := actor.RequireFullAccess(); err != nil {
		return err
	}

	if _, err := s.GetCreditCard(ctx, actor, cardID); err != nil {
		return err
	}

	if err := s.Repository.DeleteCreditCard(ctx, cardID, actor.OwnerID); err != nil {
		return appErrors.NewStoreError(err)
	}
	return nil
}

func (s *Service) GetCreditCard(ctx context.Context, actor shared.Actor, cardID ulid.ULID) (*CreditCard, error) {
	return s.getOwnedCard(ctx, actor.OwnerID, cardID)
}

func (s *Service) ListCreditCards(ctx context.Context, actor shared.Actor) ([]*CreditCard, error) {
	cards, err := s.Repository.ListCreditCards(ctx, actor.OwnerID)
	if err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return cards, nil
}

func (s *Service) GetCreditCardStats(ctx context.Context, actor shared.Actor) (*CardStats, error) {
	cards, err := s.ListCreditCards(ctx, actor)
	if err != nil {
		return nil, err
	}

	stats := &CardStats{
		TotalCards: len(cards),
		TotalLimit: lo.Reduce(cards, func(acc decimal.Decimal, c *CreditCard, _ int) decimal.Decimal {
			return acc.Add(c.CardLimit)
		}, decimal.Zero),
		DefaultCardLimit: decimal.Zero,
	}

	if def, ok := lo.Find(cards, func(c *CreditCard) bool { return c.IsDefault }); ok {
		stats.HasDefaultCard = true
		stats.DefaultCardLimit = def.CardLimit
	}

	return stats, nil
}

func (s *Service) getOwnedCard(ctx context.Context, ownerID uuid.UUID, cardID ulid.ULID) (*CreditCard, error) {
	card, err := s.Repository.GetCreditCardById(ctx, cardID, ownerID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, appErrors.ErrCardNotFound
		}
		return nil, appErrors.NewStoreError(err)
	}
	return card, nil
}

func validateCreateRequest(req *CreateCreditCardRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return appErrors.NewValidationError("name", "Nome do cartão é obrigatório")
	}
	if !req.CardLimit.IsPositive() {
		return appErrors.NewValidationError("card_limit", "Limite deve ser maior que zero")
	}
	if !validBillingDay(req.ClosingDay) {
		return appErrors.NewValidationError("closing_day", "Dia de fechamento deve estar entre 1 e 31")
	}
	if !validBillingDay(req.DueDay) {
		return appErrors.NewValidationError("due_day", "Dia de vencimento deve estar entre 1 e 31")
	}
	return nil
}
