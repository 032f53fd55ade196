package jobs

import (
	"context"
	"log/slog"

	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SapSyncJob periodically pulls open sales orders from the SAP gateway and
// reconciles them into the local order set.
type SapSyncJob struct {
	source       ports.SapOrderSource
	handler      commands.SyncExternalOrdersCommandHandler
	sharedSecret string
	schedule     string
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewSapSyncJob creates the reconciliation poller. The schedule is a cron
// expression with a seconds field; the shared secret must match the one the
// sync handler was configured with.
func NewSapSyncJob(
	source ports.SapOrderSource,
	handler commands.SyncExternalOrdersCommandHandler,
	sharedSecret string,
	schedule string,
	logger *slog.Logger,
) *SapSyncJob {
	return &SapSyncJob{
		source:       source,
		handler:      handler,
		sharedSecret: sharedSecret,
		schedule:     schedule,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "sap_sync_job"),
	}
}

// Start schedules the poller.
func (j *SapSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "SAP sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the poller.
func (j *SapSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "SAP sync job stopped")
}

func (j *SapSyncJob) run() {
	ctx := context.Background()

	orders, err := j.source.FetchOpenOrders(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "SAP sync fetch failed", "error", err)
		return
	}
	if len(orders) == 0 {
		return
	}

	cmd, err := commands.NewSyncExternalOrdersCommand(j.sharedSecret, orders)
	if err != nil {
		j.logger.ErrorContext(ctx, "SAP sync command rejected", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "SAP sync failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "SAP sync completed",
		"fetched", len(orders),
		"created", result.Created,
		"updated", result.Updated,
	)
}
