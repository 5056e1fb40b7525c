package jobs

import (
	"fmt"

	"marketplace-core/config"
	"marketplace-core/internal/core/ports"

	"github.com/rs/zerolog"
)

// JobManager coordinates the application's scheduled jobs.
type JobManager struct {
	driverAssignmentJob *DriverAssignmentJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	deliveryRepo ports.DeliveryRepository,
	deliveries ports.DeliveryService,
	cfg config.JobsConfig,
	log zerolog.Logger,
) *JobManager {
	return &JobManager{
		driverAssignmentJob: NewDriverAssignmentJob(deliveryRepo, deliveries, cfg.DriverAssignmentSpec, log),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.driverAssignmentJob.Start(); err != nil {
		return fmt.Errorf("starting driver assignment job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverAssignmentJob.Stop()
}
