package jobs

import (
	"fmt"
	"log/slog"

	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	sapSyncJob *SapSyncJob
}

// NewJobManager creates a manager wiring the reconciliation poller.
func NewJobManager(
	source ports.SapOrderSource,
	syncHandler commands.SyncExternalOrdersCommandHandler,
	sharedSecret string,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sapSyncJob: NewSapSyncJob(source, syncHandler, sharedSecret, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.sapSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start sap sync job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sapSyncJob.Stop()
}
