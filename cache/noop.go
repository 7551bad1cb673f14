package cache

import (
	"context"

	"github.com/5urf/carrot-challenge/telemetry"
)

type noopNotifier struct {
	logger telemetry.Logger
}

// NewNoopNotifier drops every signal. Used when no cache backend is
// configured, so handlers never have to branch on invalidation being off.
func NewNoopNotifier(logger telemetry.Logger) Notifier {
	return &noopNotifier{logger: logger}
}

// Tag implements Notifier.
func (n *noopNotifier) Tag(_ context.Context, tags ...string) {
	n.logger.Debug().Strs("tags", tags).Msg("cache invalidation disabled, dropping signal")
}

// Path implements Notifier.
func (n *noopNotifier) Path(_ context.Context, paths ...string) {
	n.logger.Debug().Strs("paths", paths).Msg("cache invalidation disabled, dropping signal")
}
