// services/scheduler.go
package services

import (
	"log"
	"time"

	"focus-quest-system/models"

	"github.com/go-co-op/gocron/v2"
)

func (s *QuestService) StartDueDateScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every minute: fail pending quests past their due date
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			var quests []models.Quest
			now := time.Now()
			err := s.DB.Where("status = ? AND due_at IS NOT NULL AND due_at <= ?", models.QuestStatusPending, now).
				Find(&quests).Error
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}

			for _, q := range quests {
				q.Status = models.QuestStatusFailed
				if err := s.DB.Save(&q).Error; err != nil {
					log.Printf("[Scheduler] Failed to expire quest %s: %v", q.ID, err)
				} else {
					log.Printf("⌛ Quest past due, marked failed: %s", q.Title)
				}
			}
		}),
	)
}
