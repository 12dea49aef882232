package middleware

import (
	"context"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/auth"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// Authenticator resolves the actor behind a bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (shared.Actor, error)
}

// AdminChecker reports whether an actor may use the admin routes.
type AdminChecker interface {
	RequireAdmin(actor shared.Actor) error
}

func AuthMiddleware(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, appErrors.ErrNotAuthenticated)
			return
		}

		actor, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(actorKey, actor)
		c.Set("user_id", actor.PrincipalID.String())
		c.Next()
	}
}

func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			abortWithError(c, appErrors.ErrNotAuthenticated)
			return
		}
		if err := checker.RequireAdmin(actor); err != nil {
			abortWithError(c, err)
			return
		}
		c.Next()
	}
}

// CurrentActor returns the actor stored by AuthMiddleware.
func CurrentActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

// SetActor is used by handlers under test to skip token verification.
func SetActor(c *gin.Context, actor shared.Actor) {
	c.Set(actorKey, actor)
	c.Set("user_id", actor.PrincipalID.String())
}
