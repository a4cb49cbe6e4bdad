package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"rentmoto/internal/core/application/usecases/queries"
	"rentmoto/internal/core/domain/model/kernel"
)

// OverdueRentalJob watches for open rentals past their expected end date.
// Runs every minute and logs each overdue contract; returns stay a rider
// decision, so the job never mutates state.
type OverdueRentalJob struct {
	handler queries.ListOverdueRentalsQueryHandler
	clock   kernel.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueRentalJob creates a new job for overdue rental detection.
func NewOverdueRentalJob(
	handler queries.ListOverdueRentalsQueryHandler,
	clock kernel.Clock,
	logger *slog.Logger,
) *OverdueRentalJob {
	return &OverdueRentalJob{
		handler: handler,
		clock:   clock,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_rental_job"),
	}
}

// Start begins the overdue rental job to run every minute.
func (j *OverdueRentalJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, qErr := queries.NewListOverdueRentalsQuery(j.clock.Now())
		if qErr != nil {
			j.logger.ErrorContext(ctx, "Overdue rental job failed to build query", "error", qErr)
			return
		}

		overdue, hErr := j.handler.Handle(ctx, query)
		if hErr != nil {
			j.logger.ErrorContext(ctx, "Overdue rental job failed", "error", hErr)
			return
		}

		for _, rt := range overdue {
			j.logger.WarnContext(ctx, "Rental is past its expected end date",
				"rental", rt.Identifier,
				"rider", rt.RiderID,
				"motorcycle", rt.MotorcycleID,
				"expectedEndDate", rt.ExpectedEndDate)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue rental job started (running every minute)")
	return nil
}

// Stop stops the overdue rental job.
func (j *OverdueRentalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue rental job stopped")
}
