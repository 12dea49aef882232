package admin

import (
	"context"
	"strings"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	MinAccessPeriodDays = 1
	MaxAccessPeriodDays = 3650
	minPasswordLength   = 6
)

var validate = validator.New()

type Service struct {
	Repository  Repository
	Identity    shared.IdentityProvider
	AdminEmails []string
	Now         func() time.Time
}

func NewService(repo Repository, identity shared.IdentityProvider, adminEmails []string) *Service {
	return &Service{
		Repository: repo,
		Identity:   identity,
		AdminEmails: lo.Map(adminEmails, func(e string, _ int) string {
			return strings.ToLower(strings.TrimSpace(e))
		}),
		Now: time.Now,
	}
}

func (s *Service) IsAdmin(actor shared.Actor) bool {
	email := strings.ToLower(strings.TrimSpace(actor.Email))
	return email != "" && lo.Contains(s.AdminEmails, email)
}

func (s *Service) RequireAdmin(actor shared.Actor) error {
	if !s.IsAdmin(actor) {
		return appErrors.ErrForbidden.WithDetails(map[string]interface{}{
			"reason": "acesso restrito a administradores",
		})
	}
	return nil
}

func (s *Service) ListUsers(ctx context.Context, actor shared.Actor, pagination *pkg.PaginationParams) ([]*Profile, int64, error) {
	if err := s.RequireAdmin(actor); err != nil {
		return nil, 0, err
	}
	pagination = pkg.NormalizePagination(pagination)

	profiles, total, err := s.Repository.List(ctx, pagination)
	if err != nil {
		return nil, 0, appErrors.NewStoreError(err)
	}
	return profiles, total, nil
}

// CreateUser provisions a confirmed auth identity and its profile. The
// identity is deleted again if the profile cannot be stored.
func (s *Service) CreateUser(ctx context.Context, actor shared.Actor, req *CreateUserRequest) (*Profile, error) {
	if err := s.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	identity := shared.NewIdentity{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
	}

	userID, err := s.Identity.CreateUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	profile := &Profile{
		Id:              userID,
		Name:            identity.Name,
		Email:           identity.Email,
		Phone:           identity.Phone,
		AccessExpiresAt: now.AddDate(0, 0, req.AccessPeriodDays),
		CreatedBy:       actor.PrincipalID,
		CreatedAt:       now,
	}

	if err := s.Repository.Create(ctx, profile); err != nil {
		if delErr := s.Identity.DeleteUser(context.WithoutCancel(ctx), userID); delErr != nil {
			logger.Error().
				Err(delErr).
				Str("user_id", userID.String()).
				Msg("Falha ao remover usuário de autenticação após erro no perfil")
		}
		return nil, appErrors.NewStoreError(err)
	}

	logger.Info().
		Str("admin_id", actor.PrincipalID.String()).
		Str("user_id", userID.String()).
		Int("access_period_days", req.AccessPeriodDays).
		Msg("Usuário criado pelo administrador")

	return profile, nil
}

func validateCreate(req *CreateUserRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return appErrors.NewValidationError("name", "Nome é obrigatório")
	}
	if err := validate.Var(strings.TrimSpace(req.Email), "required,email"); err != nil {
		return appErrors.NewValidationError("email", "Email inválido")
	}
	if len(req.Password) < minPasswordLength {
		return appErrors.NewValidationError("password", "Senha deve ter no mínimo 6 caracteres")
	}
	if req.AccessPeriodDays < MinAccessPeriodDays || req.AccessPeriodDays > MaxAccessPeriodDays {
		return appErrors.NewValidationError("accessPeriodDays", "Período de acesso deve estar entre 1 e 3650 dias")
	}
	return nil
}
