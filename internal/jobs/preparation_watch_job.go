package jobs

import (
	"context"
	"log/slog"

	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// preparationWatchPageSize bounds the number of in-preparation orders
// inspected per run.
const preparationWatchPageSize = 100

// PreparationOrderSource lists orders currently being prepared.
type PreparationOrderSource interface {
	GetAllByStatus(ctx context.Context, statuses []order.Status, page, size int) ([]*order.Order, int64, error)
}

// PreparationWatchJob periodically scans orders in preparation and raises a
// log alert for every order whose preparation window has expired. The job is
// observational only, it never changes order state.
type PreparationWatchJob struct {
	orders PreparationOrderSource
	clock  kernel.Clock
	cron   *cron.Cron
	logger *slog.Logger
}

// NewPreparationWatchJob creates the kitchen watchdog job.
func NewPreparationWatchJob(orders PreparationOrderSource, clock kernel.Clock, logger *slog.Logger) *PreparationWatchJob {
	return &PreparationWatchJob{
		orders: orders,
		clock:  clock,
		cron:   cron.New(),
		logger: logger.With("component", "preparation_watch_job"),
	}
}

// Start begins the watchdog, running once a minute.
func (j *PreparationWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Preparation watch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Preparation watch job started (running every minute)")
	return nil
}

// Stop stops the watchdog.
func (j *PreparationWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Preparation watch job stopped")
}

func (j *PreparationWatchJob) run(ctx context.Context) error {
	now := j.clock.Now()

	for page := 0; ; page++ {
		orders, total, err := j.orders.GetAllByStatus(
			ctx, []order.Status{order.InPreparation}, page, preparationWatchPageSize,
		)
		if err != nil {
			return err
		}

		for _, o := range orders {
			message, ok := order.RemainingTimeMessage(o.ReceivedAt(), o.Status(), now)
			if !ok || message != order.MessageWindowExpired {
				continue
			}
			j.logger.WarnContext(ctx, message,
				"orderID", o.ID().String(),
				"receivedAt", o.ReceivedAt(),
			)
		}

		if int64((page+1)*preparationWatchPageSize) >= total || len(orders) == 0 {
			return nil
		}
	}
}
