package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/landing/core/handler"
	"github.com/dmitrymomot/landing/core/logger"
	"github.com/dmitrymomot/landing/core/response"
)

// Readiness verifies all service dependencies are functioning.
// Returns "READY" if all checks pass, 503 Service Unavailable if any fail.
//
// Example:
//
//	readinessHandler := health.Readiness[*app.Context](
//		log,
//		redis.Healthcheck(redisConn),
//	)
//	r.Get("/readyz", readinessHandler)
func Readiness[C handler.Context](log *slog.Logger, fn ...func(context.Context) error) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		for _, f := range fn {
			if err := f(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}

		return response.String("READY")
	}
}
