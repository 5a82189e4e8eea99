// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the kitchen workflow.
//
// # Available Jobs
//
// 1. PreparationWatchJob - Runs every minute and logs a warning for every
// order that is still in preparation after its 30-minute window has expired.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderRepository, clock, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The watch job is observational only: it never mutates order state, and a
// failed scan is logged and retried on the next tick.
package jobs
