package services

import (
	"fmt"

	"focus-quest-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanionService manages buddy adoption
type CompanionService struct {
	DB *gorm.DB
}

func NewCompanionService(db *gorm.DB) *CompanionService {
	return &CompanionService{DB: db}
}

// newCompanionRow builds a fresh buddy row with an app-assigned ID.
// New buddies start at level 5, full happiness.
func newCompanionRow(userID string, speciesID int, nickname string) models.Companion {
	return models.Companion{
		ID:             uuid.NewString(),
		ExternalUserID: userID,
		SpeciesID:      speciesID,
		Nickname:       nickname,
		Level:          5,
		XP:             0,
		Happiness:      100,
		IsActive:       true,
	}
}

// Adopt creates the user's buddy. Only one per user — a second adoption
// conflicts.
func (s *CompanionService) Adopt(userID string, speciesID int, nickname string) (*models.Companion, error) {
	var count int64
	if err := s.DB.Model(&models.Companion{}).Where("external_user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check existing companion: %w", err)
	}
	if count > 0 {
		return nil, ErrCompanionExists
	}

	companion := newCompanionRow(userID, speciesID, nickname)
	if err := s.DB.Create(&companion).Error; err != nil {
		return nil, fmt.Errorf("create companion: %w", err)
	}
	return &companion, nil
}

// GetActive returns the user's active buddy, nil when none adopted yet
func (s *CompanionService) GetActive(userID string) (*models.Companion, error) {
	return NewGormProfileStore(s.DB).GetActiveCompanion(userID)
}
