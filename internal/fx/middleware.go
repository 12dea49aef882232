package fx

import (
	"context"
	"time"

	"github.com/dmogiovanni/teugestor-backend/config"
	"github.com/dmogiovanni/teugestor-backend/internal/middleware"

	"go.uber.org/fx"
)

const rateLimitSweepInterval = 5 * time.Minute

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newRateLimiter,
	),
)

func newRateLimiter(lc fx.Lifecycle, cfg *config.Config) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)

	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go limiter.RunSweeper(rateLimitSweepInterval, stop)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			return nil
		},
	})
	return limiter
}
