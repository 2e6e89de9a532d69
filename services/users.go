// services/users.go
package services

import (
	"errors"
	"fmt"
	"time"

	"focus-quest-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileService manages the trainer profile row
type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// newProfileRow builds a fresh profile with an app-assigned row ID
func newProfileRow(userID string) models.Profile {
	return models.Profile{
		ID:             uuid.NewString(),
		ExternalUserID: userID,
		Coins:          0,
		XP:             0,
		Level:          1,
	}
}

// EnsureProfile ensures a Profile row exists for the user (idempotent)
func (s *ProfileService) EnsureProfile(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.DB.Where("external_user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = newProfileRow(userID)
		if err := s.DB.Create(&profile).Error; err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies whitelisted field updates — identity fields are
// never client-settable.
func (s *ProfileService) UpdateProfile(userID string, updates map[string]interface{}) (*models.Profile, error) {
	allowed := map[string]bool{
		"display_name":        true,
		"class_name":          true,
		"coins":               true,
		"xp":                  true,
		"level":               true,
		"current_streak":      true,
		"longest_streak":      true,
		"total_focus_minutes": true,
	}
	filtered := map[string]interface{}{}
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	filtered["updated_at"] = time.Now()

	profile, err := s.EnsureProfile(userID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(profile).Updates(filtered).Error; err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}
