package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueSchedule runs the check every five minutes.
const DefaultOverdueSchedule = "0 */5 * * * *"

// OverdueHandler finds live orders past their deadline.
type OverdueHandler interface {
	Handle(ctx context.Context, query queries.GetOverdueOrdersQuery) ([]queries.OrderHeader, error)
}

// OverdueGauge receives the number of overdue orders after each check.
type OverdueGauge interface {
	SetOverdue(n int)
}

// OverdueOrdersJob reports live orders whose deadline has passed. It only
// reads; failures are logged and the next tick tries again.
type OverdueOrdersJob struct {
	handler  OverdueHandler
	gauge    OverdueGauge
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueOrdersJob creates the job. An empty schedule means
// DefaultOverdueSchedule.
func NewOverdueOrdersJob(handler OverdueHandler, gauge OverdueGauge, schedule string, logger *slog.Logger) *OverdueOrdersJob {
	if schedule == "" {
		schedule = DefaultOverdueSchedule
	}
	return &OverdueOrdersJob{
		handler:  handler,
		gauge:    gauge,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_orders_job"),
	}
}

// Start schedules the check. A malformed schedule is returned as an error.
func (j *OverdueOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started", "schedule", j.schedule)
	return nil
}

// Run performs a single check.
func (j *OverdueOrdersJob) Run(ctx context.Context) {
	overdue, err := j.handler.Handle(ctx, queries.NewGetOverdueOrdersQuery(j.now().UTC()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders check failed", "error", err)
		return
	}

	for _, o := range overdue {
		j.logger.WarnContext(ctx, "Order is overdue",
			"order_id", o.ID,
			"status", o.Status,
			"vendor_id", o.VendorID,
			"due_at", o.DueAt,
		)
	}
	j.gauge.SetOverdue(len(overdue))
}

// Stop stops the scheduler and waits for a running check to finish.
func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
