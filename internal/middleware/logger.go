package middleware

import (
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		} else if status >= 400 {
			event = logger.Warn()
		}

		if actor, ok := CurrentActor(c); ok {
			event = event.Str("user_id", actor.PrincipalID.String())
			if actor.IsDelegated() {
				event = event.Str("owner_id", actor.OwnerID.String())
			}
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
