// Package jobs provides scheduled background tasks for the order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// for periodic work that does not originate from an HTTP request.
//
// # Available Jobs
//
// 1. SapSyncJob - Periodically pulls the open sales orders from the SAP
// gateway and reconciles them into the local order set through the
// sync command handler.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(source, syncHandler, secret, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sync job's cadence comes from configuration as a cron expression with
// a seconds field, e.g. "0 */5 * * * *" for every five minutes.
//
// # Error Handling
//
// Fetch, validation and handler errors are logged and the tick is skipped;
// the next tick retries from scratch. Reconciliation is idempotent, so a
// skipped tick only delays convergence.
package jobs
