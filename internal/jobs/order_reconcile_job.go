package jobs

import (
	"context"
	"log/slog"

	"spktrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderReconcileJob periodically recomputes order statuses from their
// bundles. Scans normally keep orders in sync; the job repairs drift after
// crashes or manual database fixes.
type OrderReconcileJob struct {
	handler commands.ReconcileOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderReconcileJob creates a new job for order status reconciliation.
// Uses ReconcileOrdersCommandHandler to process all unfinished orders once
// a minute.
func NewOrderReconcileJob(handler commands.ReconcileOrdersCommandHandler, logger *slog.Logger) *OrderReconcileJob {
	return &OrderReconcileJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_reconcile_job"),
	}
}

// Start begins the order reconciliation job to run every minute.
func (j *OrderReconcileJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileOrdersCommand()

		changed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order reconciliation job failed", "error", err)
			return
		}

		if changed > 0 {
			j.logger.InfoContext(ctx, "Order statuses reconciled", "changed", changed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order reconciliation job started (running every minute)")
	return nil
}

// Stop stops the order reconciliation job.
func (j *OrderReconcileJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order reconciliation job stopped")
}
