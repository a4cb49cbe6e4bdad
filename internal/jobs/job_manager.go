package jobs

import (
	"fmt"
	"log/slog"

	"rentmoto/internal/core/application/usecases/queries"
	"rentmoto/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueRentalJob *OverdueRentalJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueHandler queries.ListOverdueRentalsQueryHandler,
	clock kernel.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueRentalJob: NewOverdueRentalJob(overdueHandler, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueRentalJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue rental job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueRentalJob.Stop()
}
