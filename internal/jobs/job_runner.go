package jobs

import (
	"github.com/rubentalstra/BAK/internal/config"
	"github.com/rubentalstra/BAK/internal/logger"
	"github.com/rubentalstra/BAK/internal/repository/postgres"
	"github.com/rubentalstra/BAK/internal/storage"
)

// JobRunner coordinates all scheduled maintenance jobs
type JobRunner struct {
	store      *postgres.Store
	storageSvc storage.StorageInterface
	config     *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, storageSvc storage.StorageInterface, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:      store,
		storageSvc: storageSvc,
		config:     cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllMaintenanceJobs runs every maintenance job (for manual execution)
func (jr *JobRunner) RunAllMaintenanceJobs() {
	jr.PurgeReadNotifications()
	jr.SweepOrphanProfileImages()
}
