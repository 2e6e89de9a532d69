package services

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"focus-quest-system/models"

	"gorm.io/gorm"
)

// Session balance (original game tuning)
const (
	XPPerMinute        = 1
	XPBonusCompletion  = 25
	CoinsPerSession    = 2
	CritMultiplier     = 2
	FizzleGraceSeconds = 120
)

// SessionOutcome is returned to the client after a completed session
type SessionOutcome struct {
	SessionID   string           `json:"session_id"`
	XPEarned    int64            `json:"xp_earned"`
	CoinsEarned int64            `json:"coins_earned"`
	IsCrit      bool             `json:"is_crit"`
	Loot        *models.LootItem `json:"loot,omitempty"`
	Rewards     *RewardOutcome   `json:"rewards"`
}

// FizzleOutcome reports an early cancellation
type FizzleOutcome struct {
	PenaltyApplied bool  `json:"penalty_applied"`
	PenaltyCoins   int64 `json:"penalty_coins,omitempty"`
	Coins          int64 `json:"coins"`
}

// SessionService handles focus-timer completion and cancellation
type SessionService struct {
	DB            *gorm.DB
	Rewards       *RewardService
	Rng           *rand.Rand
	FizzlePenalty int64

	rngMu sync.Mutex // *rand.Rand is not safe for concurrent use
}

func NewSessionService(db *gorm.DB, rewards *RewardService, rng *rand.Rand, fizzlePenalty int64) *SessionService {
	return &SessionService{DB: db, Rewards: rewards, Rng: rng, FizzlePenalty: fizzlePenalty}
}

// roll draws crit/loot for a session. Completion requests arrive
// concurrently and share one rng, so the draw is serialized.
func (s *SessionService) roll(minutes int) SessionRoll {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return RollSessionRewards(s.Rng, minutes, models.DefaultLootItems)
}

// sessionGrant computes the XP/coin grant for a completed session given its
// roll. Crit doubles the session XP; loot is auto-redeemed into the grant.
func sessionGrant(minutes int, roll SessionRoll) (xp, coins int64) {
	xp = int64(minutes)*XPPerMinute + XPBonusCompletion
	if roll.IsCrit {
		xp *= CritMultiplier
	}
	coins = CoinsPerSession
	if roll.Loot != nil {
		xp += roll.Loot.RewardXP
		coins += roll.Loot.RewardCoins
	}
	return xp, coins
}

// CompleteSession records a finished timer run, rolls crit/loot, and applies
// the resulting grant through the reward ledger.
func (s *SessionService) CompleteSession(userID string, minutes int, category, label string, questID *string) (*SessionOutcome, error) {
	if minutes <= 0 {
		return nil, ErrInvalidDuration
	}

	roll := s.roll(minutes)
	xp, coins := sessionGrant(minutes, roll)

	now := time.Now()
	session := models.FocusSession{
		ExternalUserID:  userID,
		QuestID:         questID,
		DurationMinutes: minutes,
		Status:          models.SessionStatusCompleted,
		XPEarned:        xp,
		CoinsEarned:     coins,
		StartedAt:       now.Add(-time.Duration(minutes) * time.Minute),
		CompletedAt:     &now,
	}
	if label != "" {
		session.Label = &label
	}
	if category != "" {
		session.Category = &category
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}

	if err := s.Rewards.AddFocusMinutes(userID, minutes); err != nil {
		return nil, err
	}
	outcome, err := s.Rewards.AwardRewards(userID, xp, coins)
	if err != nil {
		return nil, err
	}

	return &SessionOutcome{
		SessionID:   session.ID,
		XPEarned:    xp,
		CoinsEarned: coins,
		IsCrit:      roll.IsCrit,
		Loot:        roll.Loot,
		Rewards:     outcome,
	}, nil
}

// FizzleSession handles an early cancellation. Past the grace window the
// configured coin penalty applies, clamped at a zero balance; inside it the
// session is just recorded as cancelled.
func (s *SessionService) FizzleSession(userID string, elapsedSeconds int) (*FizzleOutcome, error) {
	if elapsedSeconds < 0 {
		return nil, ErrInvalidDuration
	}

	now := time.Now()
	session := models.FocusSession{
		ExternalUserID:  userID,
		DurationMinutes: elapsedSeconds / 60,
		Status:          models.SessionStatusCancelled,
		StartedAt:       now.Add(-time.Duration(elapsedSeconds) * time.Second),
		CompletedAt:     &now,
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}

	if elapsedSeconds <= FizzleGraceSeconds {
		profile, err := s.Rewards.Store.GetProfile(userID)
		if err != nil {
			return nil, err
		}
		return &FizzleOutcome{PenaltyApplied: false, Coins: profile.Coins}, nil
	}

	balance, err := s.Rewards.ApplyCoinPenalty(userID, s.FizzlePenalty)
	if err != nil {
		return nil, err
	}
	return &FizzleOutcome{PenaltyApplied: true, PenaltyCoins: s.FizzlePenalty, Coins: balance}, nil
}

// ListSessions returns the user's session history, newest first
func (s *SessionService) ListSessions(userID string, limit int) ([]models.FocusSession, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var sessions []models.FocusSession
	err := s.DB.Where("external_user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
