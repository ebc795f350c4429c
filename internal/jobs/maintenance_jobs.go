package jobs

import (
	"context"

	"github.com/rubentalstra/BAK/internal/logger"
)

// PurgeReadNotifications deletes read notifications older than the configured
// retention window.
func (jr *JobRunner) PurgeReadNotifications() {
	jr.runWithRecovery("PurgeReadNotifications", func() {
		ctx := context.Background()
		retention := jr.config.Scheduler.NotificationRetentionDays

		purged, err := jr.store.NotificationRepository.PurgeRead(ctx, retention)
		if err != nil {
			logger.Error("Failed to purge read notifications", "error", err)
			return
		}
		logger.Info("Purged read notifications", "count", purged, "retention_days", retention)
	})
}

// SweepOrphanProfileImages removes stored profile image files whose owning
// user row no longer exists. Account deletion removes images best effort, so
// a storage failure there can leave a file behind; this job is the
// forward-recovery path.
func (jr *JobRunner) SweepOrphanProfileImages() {
	jr.runWithRecovery("SweepOrphanProfileImages", func() {
		ctx := context.Background()

		stored, err := jr.storageSvc.ListKeys(ctx)
		if err != nil {
			logger.Error("Failed to list stored profile images", "error", err)
			return
		}

		referenced, err := jr.store.UserRepository.ListProfileImageKeys(ctx)
		if err != nil {
			logger.Error("Failed to list referenced profile images", "error", err)
			return
		}

		inUse := make(map[string]struct{}, len(referenced))
		for _, key := range referenced {
			inUse[key] = struct{}{}
		}

		var removed int
		for _, key := range stored {
			if _, ok := inUse[key]; ok {
				continue
			}
			if err := jr.storageSvc.DeleteFile(ctx, key); err != nil {
				logger.Error("Failed to delete orphaned profile image", "key", key, "error", err)
				continue
			}
			removed++
		}
		logger.Info("Swept orphaned profile images", "stored", len(stored), "removed", removed)
	})
}
