package models

import "time"

// QuestStatus lifecycle: pending → active → completed | failed
type QuestStatus string

const (
	QuestStatusPending   QuestStatus = "pending"
	QuestStatusActive    QuestStatus = "active"
	QuestStatusCompleted QuestStatus = "completed"
	QuestStatusFailed    QuestStatus = "failed"
)

// QuestPriority tiers
type QuestPriority string

const (
	QuestPriorityBoss   QuestPriority = "boss"
	QuestPrioritySide   QuestPriority = "side"
	QuestPriorityDaily  QuestPriority = "daily"
	QuestPriorityWeekly QuestPriority = "weekly"
)

// Quest is a task with a configured reward, granted once on completion.
// Un-completing a quest does NOT claw the reward back.
type Quest struct {
	ID             string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID string  `gorm:"index;not null" json:"external_user_id"`
	GoogleEventID  *string `json:"google_event_id,omitempty"` // set by the calendar-sync collaborator

	Title       string        `gorm:"not null" json:"title"`
	Description string        `gorm:"type:text" json:"description,omitempty"`
	Status      QuestStatus   `gorm:"type:varchar(16);default:'pending'" json:"status"`
	Priority    QuestPriority `gorm:"type:varchar(16);default:'side'" json:"priority"`
	Category    string        `json:"category,omitempty"`

	DurationMinutes int   `json:"duration_minutes" gorm:"default:0"`
	RewardCoins     int64 `json:"reward_coins" gorm:"default:1"`
	RewardXP        int64 `json:"reward_xp" gorm:"default:10"`

	DueAt       *time.Time `json:"due_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Timestamps
}
