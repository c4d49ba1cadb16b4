package utils

import (
	"log"
	"time"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/models"

	"github.com/robfig/cron/v3"
)

// InitializeUsageScheduler sets up the nightly daily-usage maintenance job
func InitializeUsageScheduler() *cron.Cron {
	log.Println("[USAGE-SCHEDULER] Initializing daily usage scheduler...")

	c := cron.New()

	// Shortly after midnight: prune old usage rows. Rows are keyed by date,
	// so a new day starts at zero automatically; old rows are only history.
	c.AddFunc("10 0 * * *", func() {
		log.Println("[USAGE-SCHEDULER] Running daily usage cleanup...")
		PruneOldUsageRecords(90)
	})

	c.Start()
	log.Println("[USAGE-SCHEDULER] Usage scheduler started - runs daily at 00:10")
	return c
}

// PruneOldUsageRecords deletes usage rows older than keepDays days
func PruneOldUsageRecords(keepDays int) {
	cutoff := time.Now().AddDate(0, 0, -keepDays)

	result := database.Database.Db.
		Where("usage_date < ?", cutoff).
		Delete(&models.UserDailyUsage{})
	if result.Error != nil {
		log.Printf("[USAGE-SCHEDULER] Error pruning usage records: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[USAGE-SCHEDULER] Pruned %d usage records older than %d days", result.RowsAffected, keepDays)
	}
}
