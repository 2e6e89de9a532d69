package services

import (
	"errors"
	"fmt"
	"time"

	"focus-quest-system/models"

	"gorm.io/gorm"
)

// QuestService manages tasks and their one-time completion rewards
type QuestService struct {
	DB      *gorm.DB
	Rewards *RewardService
}

func NewQuestService(db *gorm.DB, rewards *RewardService) *QuestService {
	return &QuestService{DB: db, Rewards: rewards}
}

// QuestInput carries client-settable quest fields
type QuestInput struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Priority        string     `json:"priority"`
	DurationMinutes int        `json:"duration_minutes"`
	RewardCoins     *int64     `json:"reward_coins"`
	RewardXP        *int64     `json:"reward_xp"`
	DueAt           *time.Time `json:"due_at"`
}

// CreateQuest inserts a pending quest with the original defaults
func (s *QuestService) CreateQuest(userID string, input QuestInput) (*models.Quest, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	quest := models.Quest{
		ExternalUserID:  userID,
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		Status:          models.QuestStatusPending,
		Priority:        models.QuestPrioritySide,
		DurationMinutes: input.DurationMinutes,
		RewardCoins:     1,
		RewardXP:        10,
		DueAt:           input.DueAt,
	}
	if input.Priority != "" {
		quest.Priority = models.QuestPriority(input.Priority)
	}
	if input.RewardCoins != nil {
		quest.RewardCoins = *input.RewardCoins
	}
	if input.RewardXP != nil {
		quest.RewardXP = *input.RewardXP
	}

	if err := s.DB.Create(&quest).Error; err != nil {
		return nil, fmt.Errorf("create quest: %w", err)
	}
	return &quest, nil
}

// ListQuests returns the user's quests ordered by due date
func (s *QuestService) ListQuests(userID string) ([]models.Quest, error) {
	var quests []models.Quest
	err := s.DB.Where("external_user_id = ?", userID).
		Order("due_at ASC NULLS LAST").
		Find(&quests).Error
	return quests, err
}

func (s *QuestService) getOwned(userID, questID string) (*models.Quest, error) {
	var quest models.Quest
	err := s.DB.Where("id = ? AND external_user_id = ?", questID, userID).First(&quest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestNotFound
		}
		return nil, err
	}
	return &quest, nil
}

// UpdateQuest applies partial updates. A status flip to completed stamps
// completed_at but grants nothing — rewards only come from CompleteQuest —
// and flipping back to pending never reverses a grant.
func (s *QuestService) UpdateQuest(userID, questID string, updates map[string]interface{}) (*models.Quest, error) {
	quest, err := s.getOwned(userID, questID)
	if err != nil {
		return nil, err
	}

	allowed := map[string]bool{"title": true, "description": true, "category": true, "priority": true, "status": true, "due_at": true}
	filtered := map[string]interface{}{}
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if filtered["status"] == string(models.QuestStatusCompleted) {
		filtered["completed_at"] = time.Now()
	}

	if err := s.DB.Model(quest).Updates(filtered).Error; err != nil {
		return nil, fmt.Errorf("update quest: %w", err)
	}
	return quest, nil
}

// DeleteQuest removes a quest (ownership enforced)
func (s *QuestService) DeleteQuest(userID, questID string) error {
	result := s.DB.Where("id = ? AND external_user_id = ?", questID, userID).Delete(&models.Quest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestNotFound
	}
	return nil
}

// CompleteQuest transitions pending → completed and grants the configured
// reward exactly once. Completing an already-completed quest conflicts.
func (s *QuestService) CompleteQuest(userID, questID string) (*models.Quest, *RewardOutcome, error) {
	quest, err := s.getOwned(userID, questID)
	if err != nil {
		return nil, nil, err
	}
	if quest.Status == models.QuestStatusCompleted {
		return nil, nil, ErrAlreadyCompleted
	}

	now := time.Now()
	quest.Status = models.QuestStatusCompleted
	quest.CompletedAt = &now
	if err := s.DB.Save(quest).Error; err != nil {
		return nil, nil, fmt.Errorf("save quest: %w", err)
	}

	outcome, err := s.Rewards.AwardRewards(userID, quest.RewardXP, quest.RewardCoins)
	if err != nil {
		return nil, nil, err
	}
	return quest, outcome, nil
}
