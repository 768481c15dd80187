package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// strandedAuditSchedule runs the audit every five minutes. Stranded drivers
// are an operational anomaly, not a steady-state condition, so a tighter
// schedule would only repeat the same warnings.
const strandedAuditSchedule = "0 */5 * * * *"

// StrandedDriverAuditJob periodically reports drivers that are unavailable
// without any active shipment holding them. The job only surfaces the
// anomaly; releasing a driver is an operator decision, never an automatic
// repair.
type StrandedDriverAuditJob struct {
	handler queries.GetStrandedDriversQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStrandedDriverAuditJob creates the audit job.
func NewStrandedDriverAuditJob(handler queries.GetStrandedDriversQueryHandler, logger *slog.Logger) *StrandedDriverAuditJob {
	return &StrandedDriverAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stranded_driver_audit_job"),
	}
}

// Start schedules the audit.
func (j *StrandedDriverAuditJob) Start() error {
	_, err := j.cron.AddFunc(strandedAuditSchedule, j.runAudit)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stranded driver audit job started (running every five minutes)")
	return nil
}

// Stop stops the audit job.
func (j *StrandedDriverAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stranded driver audit job stopped")
}

func (j *StrandedDriverAuditJob) runAudit() {
	ctx := context.Background()

	stranded, err := j.handler.Handle(ctx, queries.NewGetStrandedDriversQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stranded driver audit failed", "error", err)
		return
	}

	if len(stranded) == 0 {
		return
	}

	for _, d := range stranded {
		j.logger.WarnContext(ctx, "Driver is unavailable with no active shipment",
			"driverID", d.ID.String(),
			"driverName", d.Name,
		)
	}
	j.logger.WarnContext(ctx, "Stranded driver audit found anomalies", "count", len(stranded))
}
