// Package jobs provides scheduled background tasks for the order backend.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field, so a schedule such as
// "0 5 0 * * *" runs at 00:05:00 every day in the scheduler's time zone.
//
// # Available Jobs
//
// 1. DeliveryRefreshJob - rewrites cached delivery statuses that went stale
// overnight (items become delivered by the passage of time)
// 2. DeliveryAlertDigestJob - logs the count of delayed, due-today and
// due-tomorrow deliveries
//
// # Usage
//
//	jobManager := jobs.NewJobManager(cfg, refreshHandler, alertsHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
package jobs
