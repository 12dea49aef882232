package infrastructure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmogiovanni/teugestor-backend/config"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/auth"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/nedpals/supabase-go"
	"github.com/samber/lo"
)

// SupabaseClient provisions principals through the Supabase admin API and
// verifies tokens against the auth endpoint.
type SupabaseClient struct {
	client     *supabase.Client
	http       *retryablehttp.Client
	baseURL    string
	serviceKey string
}

var (
	_ shared.IdentityProvider = (*SupabaseClient)(nil)
	_ auth.TokenVerifier      = (*SupabaseClient)(nil)
)

func NewSupabaseClient(cfg *config.Config) (*SupabaseClient, error) {
	client := supabase.CreateClient(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey)
	if client == nil {
		return nil, fmt.Errorf("falha ao criar cliente supabase")
	}

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = cfg.Supabase.RetryMax
	httpClient.HTTPClient.Timeout = cfg.Supabase.RequestTimeout
	httpClient.Logger = nil

	return &SupabaseClient{
		client:     client,
		http:       httpClient,
		baseURL:    strings.TrimRight(cfg.Supabase.URL, "/"),
		serviceKey: cfg.Supabase.ServiceRoleKey,
	}, nil
}

func (s *SupabaseClient) CreateUser(ctx context.Context, identity shared.NewIdentity) (uuid.UUID, error) {
	created, err := s.client.Admin.CreateUser(ctx, supabase.AdminUserParams{
		Email:        identity.Email,
		Password:     lo.ToPtr(identity.Password),
		EmailConfirm: true,
		UserMetadata: map[string]interface{}{
			"full_name": identity.Name,
			"phone":     identity.Phone,
		},
	})
	if err != nil {
		logger.Error().Err(err).Str("email", identity.Email).Msg("Erro ao criar usuário no Supabase")
		return uuid.Nil, fmt.Errorf("criar usuário supabase: %w", err)
	}

	id, err := pkg.ParseUserID(created.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("id de usuário supabase inválido: %w", err)
	}

	logger.Info().Str("user_id", id.String()).Str("email", identity.Email).Msg("Usuário criado no Supabase")
	return id, nil
}

// DeleteUser calls the admin endpoint directly; the client library has no
// delete operation.
func (s *SupabaseClient) DeleteUser(ctx context.Context, id uuid.UUID) error {
	url := fmt.Sprintf("%s/auth/v1/admin/users/%s", s.baseURL, id.String())
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.http.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("user_id", id.String()).Msg("Erro ao remover usuário do Supabase")
		return fmt.Errorf("remover usuário supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger.Error().
			Int("status", resp.StatusCode).
			Str("user_id", id.String()).
			Str("body", string(body)).
			Msg("Supabase recusou remoção de usuário")
		return fmt.Errorf("remover usuário supabase: status %d", resp.StatusCode)
	}
	return nil
}

func (s *SupabaseClient) Verify(ctx context.Context, token string) (*auth.Principal, error) {
	user, err := s.client.Auth.User(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("validar token supabase: %w", err)
	}
	id, err := pkg.ParseUserID(user.ID)
	if err != nil {
		return nil, err
	}
	return &auth.Principal{ID: id, Email: user.Email}, nil
}
