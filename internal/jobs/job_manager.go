package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Schedules holds the cron specs of the jobs, seconds field first.
type Schedules struct {
	DeliveryRefresh     string
	DeliveryAlertDigest string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	deliveryRefreshJob     *DeliveryRefreshJob
	deliveryAlertDigestJob *DeliveryAlertDigestJob
}

func NewJobManager(
	schedules Schedules,
	refreshHandler deliveryRefresher,
	alertsHandler deliveryAlertReader,
	location *time.Location,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		deliveryRefreshJob:     NewDeliveryRefreshJob(schedules.DeliveryRefresh, refreshHandler, location, logger),
		deliveryAlertDigestJob: NewDeliveryAlertDigestJob(schedules.DeliveryAlertDigest, alertsHandler, location, logger),
	}
}

// StartAll starts all scheduled jobs. A failed start stops the jobs that
// already run.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery refresh job: %w", err)
	}

	if err := jm.deliveryAlertDigestJob.Start(); err != nil {
		jm.deliveryRefreshJob.Stop()
		return fmt.Errorf("failed to start delivery alert digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryAlertDigestJob.Stop()
	jm.deliveryRefreshJob.Stop()
}

func newCron(location *time.Location) *cron.Cron {
	if location == nil {
		location = time.UTC
	}
	return cron.New(cron.WithSeconds(), cron.WithLocation(location))
}
