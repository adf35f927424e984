package cmd

import (
	"context"
	"time"

	"redelex-panel/core/export"
	"redelex-panel/core/redelex"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// job is a scheduled background task.
type job struct {
	name     string
	schedule string
	run      func()
}

// maintenanceJobs returns the housekeeping tasks for the configured services.
// archive and api may be nil or uncached; their jobs are then skipped.
func maintenanceJobs(archive *export.Archive, retentionDays int, api redelex.API, logg *zap.Logger) []job {
	var jobs []job

	if archive != nil && retentionDays > 0 {
		jobs = append(jobs, job{
			name:     "prune-reports",
			schedule: "@daily",
			run: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
				defer cancel()
				cutoff := time.Now().AddDate(0, 0, -retentionDays)
				n, err := archive.Prune(ctx, cutoff)
				if err != nil {
					logg.Error("Report pruning failed", zap.Int("removed", n), zap.Error(err))
					return
				}
				logg.Info("Pruned archived reports", zap.Int("removed", n), zap.Time("cutoff", cutoff))
			},
		})
	}

	if cached, ok := api.(*redelex.CachedClient); ok {
		jobs = append(jobs, job{
			name:     "purge-redelex-cache",
			schedule: "@every 10m",
			run: func() {
				if n := cached.Purge(); n > 0 {
					logg.Debug("Purged Redelex cache", zap.Int("entries", n))
				}
			},
		})
	}
	return jobs
}

// startJobs registers jobs on a new scheduler and starts it.
func startJobs(jobs []job, logg *zap.Logger) (*cron.Cron, error) {
	c := cron.New()
	for _, j := range jobs {
		if _, err := c.AddFunc(j.schedule, j.run); err != nil {
			return nil, err
		}
		logg.Info("Scheduled job", zap.String("job", j.name), zap.String("schedule", j.schedule))
	}
	c.Start()
	return c, nil
}
