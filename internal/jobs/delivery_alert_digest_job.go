package jobs

import (
	"context"
	"time"

	"hvacops/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type deliveryAlertReader interface {
	Handle(ctx context.Context, query queries.GetDeliveryAlertsQuery) (*queries.GetDeliveryAlertsQueryResponse, error)
}

// DeliveryAlertDigestJob logs the morning delivery alert counts. Delayed
// deliveries are logged at warn level.
type DeliveryAlertDigestJob struct {
	schedule string
	handler  deliveryAlertReader
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewDeliveryAlertDigestJob(
	schedule string,
	handler deliveryAlertReader,
	location *time.Location,
	logger *zap.Logger,
) *DeliveryAlertDigestJob {
	return &DeliveryAlertDigestJob{
		schedule: schedule,
		handler:  handler,
		cron:     newCron(location),
		logger:   logger.With(zap.String("component", "delivery_alert_digest_job")),
	}
}

func (j *DeliveryAlertDigestJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Delivery alert digest job started", zap.String("schedule", j.schedule))
	return nil
}

// Run reads the alert board once and logs its summary.
func (j *DeliveryAlertDigestJob) Run(ctx context.Context) {
	alerts, err := j.handler.Handle(ctx, queries.NewGetDeliveryAlertsQuery())
	if err != nil {
		j.logger.Error("Delivery alert digest failed", zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.Stringer("today", alerts.Today),
		zap.Int("delayed", alerts.Summary.Delayed),
		zap.Int("today_due", alerts.Summary.Today),
		zap.Int("tomorrow_due", alerts.Summary.Tomorrow),
		zap.Int("tracked", alerts.Summary.Total()),
	}
	if alerts.Summary.Delayed > 0 {
		j.logger.Warn("Delayed deliveries on the board", fields...)
		return
	}
	j.logger.Info("Delivery alert digest", fields...)
}

func (j *DeliveryAlertDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Delivery alert digest job stopped")
}
