package models

// Companion is the user's buddy — a second entity that levels independently
// of the trainer profile on a linear curve (level * 50 XP per level).
// Exactly one may be active per user; its XP invariant is always
// XP < Level * 50, maintained by the reward ledger's level-up loop.
type Companion struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID string `gorm:"index;not null" json:"external_user_id"`

	SpeciesID int    `json:"species_id"`
	Nickname  string `json:"nickname"`

	Level     int   `json:"level" gorm:"default:1"`
	XP        int64 `json:"xp" gorm:"default:0"`
	Happiness int   `json:"happiness" gorm:"default:100"` // clamped [0,100]
	IsActive  bool  `json:"is_active" gorm:"default:true"`

	Timestamps
}
