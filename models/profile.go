package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile tracks gamified progression for each user (denormalized for performance)
type Profile struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID string `gorm:"uniqueIndex;not null" json:"external_user_id"` // links to gateway identity

	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name"`
	ClassName   string `json:"class_name,omitempty"`

	// Core progression
	Coins int64 `json:"coins" gorm:"default:0"`
	XP    int64 `json:"xp" gorm:"default:0"`
	Level int   `json:"level" gorm:"default:1"` // derived: xp/100 + 1, stored for cheap reads

	// Aggregate streak fields (legacy display values — per-habit streaks live in HabitStreak)
	CurrentStreak int `json:"current_streak" gorm:"default:0"`
	LongestStreak int `json:"longest_streak" gorm:"default:0"`

	TotalFocusMinutes int64 `json:"total_focus_minutes" gorm:"default:0"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
