// workers/streak_audit_worker.go
package workers

import (
	"context"
	"log"
	"time"

	"focus-quest-system/models"

	"gorm.io/gorm"
)

// StreakAuditor zeroes out current_streak on rows whose last completion
// predates yesterday. The reconciliation engine already resets lazily on the
// next completion — the audit only corrects the displayed value for users
// who stopped checking in. longest_streak is never touched.
type StreakAuditor struct {
	DB *gorm.DB
}

func NewStreakAuditor(db *gorm.DB) *StreakAuditor {
	return &StreakAuditor{DB: db}
}

// AuditOnce performs a single pass over all streak rows
func (a *StreakAuditor) AuditOnce(ctx context.Context) error {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	result := a.DB.WithContext(ctx).
		Model(&models.HabitStreak{}).
		Where("current_streak > 0 AND (last_completed_at IS NULL OR last_completed_at < ?)", yesterday).
		Update("current_streak", 0)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("🔥 [StreakAudit] Broke %d stale streak(s)", result.RowsAffected)
	}
	return nil
}

// RunStreakAudit loops AuditOnce on the given interval until ctx is done.
// Runs once immediately so a restart never leaves stale values up for a day.
func RunStreakAudit(ctx context.Context, auditor *StreakAuditor, interval time.Duration) {
	log.Printf("🕐 Starting streak audit (every %s)", interval)

	if err := auditor.AuditOnce(ctx); err != nil {
		log.Printf("[StreakAudit] initial pass failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[StreakAudit] stopping")
			return
		case <-ticker.C:
			if err := auditor.AuditOnce(ctx); err != nil {
				log.Printf("[StreakAudit] pass failed: %v", err)
			}
		}
	}
}
