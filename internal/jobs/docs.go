// Package jobs provides scheduled background tasks for the warehouse service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// only translate a tick into a command; all business rules live in the
// command handlers.
//
// # Available Jobs
//
// 1. OrderCleanupJob - soft deletes Open orders idle for longer than the threshold
// 2. ArchiveExportJob - hands pending archived order snapshots to the exporter
//
// # Usage
//
//	jobManager := jobs.NewJobManager(cleanupJob, exportJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Overlap
//
// A tick is skipped while the previous run of the same job is still going,
// and StopAll cancels the running command and waits for it to return.
package jobs
