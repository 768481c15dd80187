// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is the stranded driver
// audit, which reports drivers left unavailable with no active shipment
// (a crashed assignment, an administratively deleted shipment). Jobs are
// managed through JobManager.
package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	strandedDriverAuditJob *StrandedDriverAuditJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	strandedDriversHandler queries.GetStrandedDriversQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		strandedDriverAuditJob: NewStrandedDriverAuditJob(strandedDriversHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.strandedDriverAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start stranded driver audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.strandedDriverAuditJob.Stop()
}
