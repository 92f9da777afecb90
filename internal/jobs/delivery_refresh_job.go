package jobs

import (
	"context"
	"time"

	"hvacops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type deliveryRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshDeliveryStatusesCommand) (int, error)
}

// DeliveryRefreshJob recomputes the cached delivery status of tracked orders
// on a schedule.
type DeliveryRefreshJob struct {
	schedule string
	handler  deliveryRefresher
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewDeliveryRefreshJob(
	schedule string,
	handler deliveryRefresher,
	location *time.Location,
	logger *zap.Logger,
) *DeliveryRefreshJob {
	return &DeliveryRefreshJob{
		schedule: schedule,
		handler:  handler,
		cron:     newCron(location),
		logger:   logger.With(zap.String("component", "delivery_refresh_job")),
	}
}

func (j *DeliveryRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Delivery refresh job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs one refresh pass.
func (j *DeliveryRefreshJob) Run(ctx context.Context) {
	changed, err := j.handler.Handle(ctx, commands.NewRefreshDeliveryStatusesCommand())
	if err != nil {
		j.logger.Error("Delivery refresh failed", zap.Error(err))
		return
	}

	j.logger.Info("Delivery statuses refreshed", zap.Int("changed", changed))
}

// Stop waits for a running pass to finish.
func (j *DeliveryRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Delivery refresh job stopped")
}
