package services

import (
	"fmt"
	"log"

	"focus-quest-system/models"
)

// Leveling curves (original game tuning)
const (
	TrainerXPPerLevel   = 100 // trainer level = xp/100 + 1
	CompanionXPPerLevel = 50  // companion needs level * 50 XP to clear its current level
)

// TrainerLevel derives the profile level from total XP
func TrainerLevel(xp int64) int {
	return int(xp/TrainerXPPerLevel) + 1
}

// RewardOutcome reports post-grant totals for UI feedback
type RewardOutcome struct {
	Coins     int64             `json:"coins"`
	TrainerXP int64             `json:"trainer_xp"`
	Level     int               `json:"level"`
	Companion *models.Companion `json:"companion,omitempty"`
	LeveledUp bool              `json:"leveled_up"`
}

// RewardService is the ledger for XP/coin grants and penalties
type RewardService struct {
	Store ProfileStore
}

func NewRewardService(store ProfileStore) *RewardService {
	return &RewardService{Store: store}
}

// AwardRewards applies an XP/coin grant to the trainer profile, then feeds
// the same XP to the active companion and runs its level-up loop. The loop
// may fire more than once when a single grant crosses several thresholds.
// No active companion is not an error — companion updates are skipped.
//
// Plain read-then-write, no version check: last write wins under concurrent
// grants for the same user. Accepted under the single-writer-per-user model.
func (s *RewardService) AwardRewards(userID string, xpAmount, coinsAmount int64) (*RewardOutcome, error) {
	if xpAmount < 0 || coinsAmount < 0 {
		return nil, ErrInvalidAmount
	}

	profile, err := s.Store.GetProfile(userID)
	if err != nil {
		return nil, fmt.Errorf("fetch profile for rewards: %w", err)
	}

	profile.XP += xpAmount
	profile.Coins += coinsAmount
	profile.Level = TrainerLevel(profile.XP)
	if err := s.Store.SaveProfile(profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	outcome := &RewardOutcome{
		Coins:     profile.Coins,
		TrainerXP: profile.XP,
		Level:     profile.Level,
	}

	companion, err := s.Store.GetActiveCompanion(userID)
	if err != nil {
		log.Printf("⚠️  Failed to load companion for %s, skipping buddy XP: %v", userID, err)
		return outcome, nil
	}
	if companion == nil {
		return outcome, nil
	}

	companion.XP += xpAmount
	for companion.XP >= int64(companion.Level)*CompanionXPPerLevel {
		companion.XP -= int64(companion.Level) * CompanionXPPerLevel
		companion.Level++
		outcome.LeveledUp = true
		companion.Happiness += 5
		if companion.Happiness > 100 {
			companion.Happiness = 100
		}
	}
	if err := s.Store.SaveCompanion(companion); err != nil {
		return nil, fmt.Errorf("save companion: %w", err)
	}
	outcome.Companion = companion

	return outcome, nil
}

// ApplyCoinPenalty debits coins from the profile, clamped at zero.
// Returns the new balance.
func (s *RewardService) ApplyCoinPenalty(userID string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, ErrInvalidAmount
	}

	profile, err := s.Store.GetProfile(userID)
	if err != nil {
		return 0, fmt.Errorf("fetch profile for penalty: %w", err)
	}

	profile.Coins -= amount
	if profile.Coins < 0 {
		profile.Coins = 0
	}
	if err := s.Store.SaveProfile(profile); err != nil {
		return 0, fmt.Errorf("save profile: %w", err)
	}
	return profile.Coins, nil
}

// AddFocusMinutes bumps the lifetime focus counter
func (s *RewardService) AddFocusMinutes(userID string, minutes int) error {
	profile, err := s.Store.GetProfile(userID)
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}
	profile.TotalFocusMinutes += int64(minutes)
	return s.Store.SaveProfile(profile)
}
