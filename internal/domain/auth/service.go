package auth

import (
	"context"
	"strings"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
)

type Service struct {
	Verifier  TokenVerifier
	Directory shared.Directory
}

func NewService(verifier TokenVerifier, directory shared.Directory) *Service {
	return &Service{Verifier: verifier, Directory: directory}
}

// Authenticate verifies the token and resolves the actor the request runs as.
func (s *Service) Authenticate(ctx context.Context, token string) (shared.Actor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return shared.Actor{}, appErrors.ErrNotAuthenticated
	}

	principal, err := s.Verifier.Verify(ctx, token)
	if err != nil {
		if appErrors.IsAppError(err) {
			return shared.Actor{}, err
		}
		return shared.Actor{}, appErrors.ErrInvalidToken.WithError(err)
	}

	return shared.ResolveActor(ctx, s.Directory, principal.ID, principal.Email)
}

// BearerToken extracts the token of an Authorization header value.
func BearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
