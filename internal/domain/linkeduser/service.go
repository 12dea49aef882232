package linkeduser

import (
	"context"
	"strings"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
)

const minPasswordLength = 6

var validate = validator.New()

type Service struct {
	Repository Repository
	Identity   shared.IdentityProvider
	Directory  *Directory
}

func NewService(repo Repository, identity shared.IdentityProvider, directory *Directory) *Service {
	return &Service{Repository: repo, Identity: identity, Directory: directory}
}

func (s *Service) ListLinkedUsers(ctx context.Context, actor shared.Actor) ([]*LinkedUser, error) {
	if err := actor.RequireMainUser(); err != nil {
		return nil, err
	}
	links, err := s.Repository.ListActive(ctx, actor.PrincipalID)
	if err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	return links, nil
}

// CreateLinkedUser provisions the auth identity first and then the link row.
// A failed insert deletes the identity again.
func (s *Service) CreateLinkedUser(ctx context.Context, actor shared.Actor, req *CreateLinkedUserRequest) (*LinkedUser, error) {
	if err := actor.RequireMainUser(); err != nil {
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

	now := time.Now()
	link := &LinkedUser{
		Id:             pkg.GenerateULIDObject(),
		MainUserId:     actor.PrincipalID,
		LinkedUserId:   userID,
		PermissionType: req.PermissionType,
		IsActive:       true,
		UserInfo: UserInfo{
			Id:    userID,
			Email: identity.Email,
			Name:  identity.Name,
			Phone: identity.Phone,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, link); err != nil {
		if delErr := s.Identity.DeleteUser(context.WithoutCancel(ctx), userID); delErr != nil {
			logger.Error().
				Err(delErr).
				Str("user_id", userID.String()).
				Msg("Falha ao remover usuário de autenticação após erro no vínculo")
		}
		return nil, appErrors.NewStoreError(err)
	}

	s.Directory.Invalidate(userID)

	logger.Info().
		Str("main_user_id", actor.PrincipalID.String()).
		Str("linked_user_id", userID.String()).
		Str("permission_type", string(link.PermissionType)).
		Msg("Usuário vinculado criado")

	return link, nil
}

func (s *Service) UpdateLinkedUser(ctx context.Context, actor shared.Actor, linkID ulid.ULID, req *UpdateLinkedUserRequest) (*LinkedUser, error) {
	if err := actor.RequireMainUser(); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, appErrors.NewValidationError("body", "Nenhum campo válido fornecido para atualização")
	}

	link, err := s.getOwned(ctx, actor, linkID)
	if err != nil {
		return nil, err
	}

	if req.PermissionType != nil {
		if !req.PermissionType.IsValid() {
			return nil, appErrors.NewValidationError("permission_type", "Tipo de permissão deve ser view_only ou full_access")
		}
		link.PermissionType = *req.PermissionType
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}
	if req.Name != nil {
		link.UserInfo.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		link.UserInfo.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		link.UserInfo.Phone = strings.TrimSpace(*req.Phone)
	}
	link.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, link); err != nil {
		return nil, appErrors.NewStoreError(err)
	}
	s.Directory.Invalidate(link.LinkedUserId)
	return link, nil
}

// DeactivateLinkedUser revokes access; the auth identity is kept.
func (s *Service) DeactivateLinkedUser(ctx context.Context, actor shared.Actor, linkID ulid.ULID) error {
	inactive := false
	_, err := s.UpdateLinkedUser(ctx, actor, linkID, &UpdateLinkedUserRequest{IsActive: &inactive})
	return err
}

func (s *Service) getOwned(ctx context.Context, actor shared.Actor, linkID ulid.ULID) (*LinkedUser, error) {
	link, err := s.Repository.GetByID(ctx, linkID, actor.PrincipalID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, appErrors.ErrLinkedUserNotFound
		}
		return nil, appErrors.NewStoreError(err)
	}
	return link, nil
}

func validateCreate(req *CreateLinkedUserRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return appErrors.NewValidationError("name", "Nome é obrigatório")
	}
	if err := validate.Var(strings.TrimSpace(req.Email), "required,email"); err != nil {
		return appErrors.NewValidationError("email", "Email inválido")
	}
	if len(req.Password) < minPasswordLength {
		return appErrors.NewValidationError("password", "Senha deve ter no mínimo 6 caracteres")
	}
	if !req.PermissionType.IsValid() {
		return appErrors.NewValidationError("permission_type", "Tipo de permissão deve ser view_only ou full_access")
	}
	return nil
}
