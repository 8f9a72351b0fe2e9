// Package jobs contains the scheduled background jobs of the order service.
package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs a snapshot of order counts per status.
// The snapshot gives operators a cheap pulse of the system without a metrics
// stack: one log line per minute with the totals.
type OrderStatsJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatsJob creates the stats job around the stats query handler.
func NewOrderStatsJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_stats_job"),
	}
}

// Start begins the stats job, running once a minute.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		stats, statsErr := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if statsErr != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", statsErr)
			return
		}

		args := make([]any, 0, 2+2*len(stats.ByStatus))
		args = append(args, "total", stats.Total)
		for status, count := range stats.ByStatus {
			args = append(args, status, count)
		}
		j.logger.InfoContext(ctx, "Order stats snapshot", args...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
