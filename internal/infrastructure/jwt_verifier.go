package infrastructure

import (
	"context"
	"fmt"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/auth"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier checks Supabase access tokens locally with the project secret.
type JWTVerifier struct {
	secret []byte
}

var _ auth.TokenVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (*auth.Principal, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("claims inválidas")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}
	id, err := pkg.ParseUserID(sub)
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)
	return &auth.Principal{ID: id, Email: email}, nil
}
