package engine

import (
	"context"

	"cantstop/experiments/metrics"
)

type Engine interface {
	// Run alternates turns until a player wins
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, turnMetrics []metrics.TurnMetric, err error)
}
