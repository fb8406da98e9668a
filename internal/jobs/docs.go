// Package jobs provides scheduled background tasks for the warehouse service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which offers a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(lowStockHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// LowStockAlertJob runs at the top of every minute and logs a warning for
// each product whose on-hand quantity has fallen to or below its minimum
// stock level, giving operators a signal to reorder before orders start
// failing stock commitment.
package jobs
