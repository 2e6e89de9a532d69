package models

import "time"

// SessionStatus values
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
	SessionStatusBacklog   SessionStatus = "backlog"
)

// FocusSession records one finished (or fizzled) timer run
type FocusSession struct {
	ID             string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID string  `gorm:"index;not null" json:"external_user_id"`
	QuestID        *string `json:"quest_id,omitempty"`

	DurationMinutes int           `json:"duration_minutes"`
	Status          SessionStatus `gorm:"type:varchar(16);default:'active'" json:"status"`
	XPEarned        int64         `json:"xp_earned" gorm:"default:0"`
	CoinsEarned     int64         `json:"coins_earned" gorm:"default:0"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Label    *string `json:"label,omitempty"`
	Category *string `json:"category,omitempty"`

	Timestamps
}
