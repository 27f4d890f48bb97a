package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ForestKatsch/phosphor/core/handler"
	"github.com/ForestKatsch/phosphor/core/logger"
	"github.com/ForestKatsch/phosphor/core/response"
)

// Readiness verifies all dependencies. The first failing check produces a
// 503; its error is logged, not sent.
func Readiness(log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx context.Context, _ *handler.Request) (any, error) {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				return nil, response.New(http.StatusServiceUnavailable, "")
			}
		}
		return Status{Status: StatusReady}, nil
	}
}
