// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules take six fields, the first one being seconds.
//
// # Available Jobs
//
// OverdueOrdersJob - lists live orders whose deadline has passed, logs each
// one at WARN and publishes the count to the overdue_orders gauge. Runs on
// OVERDUE_CHECK_SCHEDULE, every five minutes by default.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(overdueHandler, metrics, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs never mutate orders. A failed check is logged and the next tick runs
// as usual; a malformed schedule fails StartAll.
package jobs
