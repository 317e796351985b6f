// Package retention prunes old audit records.
//
// The Pruner enforces two independent limits: an age limit
// (RetentionDays) and a total record count limit (MaxRecords). The
// Scheduler runs the pruner on a standard cron schedule and stops
// cleanly when its context is cancelled.
package retention
