package jobs

import (
	"fmt"
	"log/slog"

	"food/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	preparationWatchJob *PreparationWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(orders PreparationOrderSource, clock kernel.Clock, logger *slog.Logger) *JobManager {
	return &JobManager{
		preparationWatchJob: NewPreparationWatchJob(orders, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.preparationWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start preparation watch job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.preparationWatchJob.Stop()
}
