package jobs

import (
	"context"

	"marketplace-core/internal/core/ports"
	"marketplace-core/pkg/apperror"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// assignmentBatchSize caps how many waiting deliveries one run picks up.
const assignmentBatchSize = 20

// DriverAssignmentJob periodically assigns the nearest available driver
// to deliveries that are ready for pickup but still unassigned.
type DriverAssignmentJob struct {
	deliveryRepo ports.DeliveryRepository
	deliveries   ports.DeliveryService
	cron         *cron.Cron
	spec         string
	log          zerolog.Logger
}

// NewDriverAssignmentJob creates the assignment job. spec is a cron
// expression, e.g. "@every 30s".
func NewDriverAssignmentJob(
	deliveryRepo ports.DeliveryRepository,
	deliveries ports.DeliveryService,
	spec string,
	log zerolog.Logger,
) *DriverAssignmentJob {
	return &DriverAssignmentJob{
		deliveryRepo: deliveryRepo,
		deliveries:   deliveries,
		cron:         cron.New(),
		spec:         spec,
		log:          log.With().Str("component", "driver_assignment_job").Logger(),
	}
}

// Start schedules the job.
func (j *DriverAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info().Str("spec", j.spec).Msg("driver assignment job started")
	return nil
}

// Stop stops the job.
func (j *DriverAssignmentJob) Stop() {
	j.cron.Stop()
	j.log.Info().Msg("driver assignment job stopped")
}

func (j *DriverAssignmentJob) run() {
	ctx := context.Background()

	waiting, err := j.deliveryRepo.ListUnassignedReady(ctx, assignmentBatchSize)
	if err != nil {
		j.log.Error().Err(err).Msg("listing unassigned deliveries failed")
		return
	}

	for _, delivery := range waiting {
		if _, err := j.deliveries.AssignDriver(ctx, delivery.ID, nil); err != nil {
			// No available driver is an expected condition; retried next run.
			if apperror.IsCode(err, apperror.CodeNotFound) {
				continue
			}
			j.log.Error().Err(err).
				Str("delivery_id", delivery.ID.String()).
				Msg("driver assignment failed")
		}
	}
}
