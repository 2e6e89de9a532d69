package services

import (
	"fmt"
	"log"
	"sync"

	"focus-quest-system/models"

	"github.com/gosimple/slug"
)

// HabitService owns habit completion, the recap back-fill flow and the
// streak repair operation.
type HabitService struct {
	Store   HabitStore
	Rewards *RewardService
}

func NewHabitService(store HabitStore, rewards *RewardService) *HabitService {
	return &HabitService{Store: store, Rewards: rewards}
}

// CompleteHabitToday marks a habit done for the current day, reconciles the
// streak and grants the habit's coin reward. Duplicate submissions for the
// same day return ErrAlreadyCompleted — callers should treat that as
// success-with-no-change, not a failure.
func (s *HabitService) CompleteHabitToday(userID, habitID string) (*models.HabitStreak, error) {
	if habitID == "" {
		return nil, ErrHabitRequired
	}

	habit, err := s.Store.GetHabit(habitID)
	if err != nil {
		return nil, fmt.Errorf("fetch habit: %w", err)
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	date := today()

	existing, err := s.Store.GetEntry(userID, habitID, date)
	if err != nil {
		return nil, fmt.Errorf("fetch entry: %w", err)
	}
	if existing != nil && existing.Completed {
		return nil, ErrAlreadyCompleted
	}

	record, err := s.completeOn(userID, habitID, date)
	if err != nil {
		return nil, err
	}

	// The completion stands even if the grant fails — the entry ledger is
	// the source of truth, rewards are derived.
	if habit.RewardCoins > 0 {
		if _, err := s.Rewards.AwardRewards(userID, 0, habit.RewardCoins); err != nil {
			log.Printf("⚠️  Habit reward grant failed for %s/%s: %v", userID, habitID, err)
		}
	}

	return record, nil
}

// completeOn writes the ledger entry for (user, habit, date) and runs the
// streak reconciliation under the persist guard.
func (s *HabitService) completeOn(userID, habitID, date string) (*models.HabitStreak, error) {
	entry := &models.HabitEntry{
		ExternalUserID: userID,
		HabitID:        habitID,
		Date:           date,
		Completed:      true,
	}
	if err := s.Store.UpsertEntry(entry); err != nil {
		return nil, fmt.Errorf("upsert entry: %w", err)
	}

	streak, err := s.Store.GetStreak(userID, habitID)
	if err != nil {
		return nil, fmt.Errorf("fetch streak: %w", err)
	}

	result := ReconcileStreak(streak, date)
	if !result.ShouldPersist {
		// Newer completion already on file — it stays authoritative.
		return streak, nil
	}

	record := result.Record
	record.ExternalUserID = userID
	record.HabitID = habitID
	if err := s.Store.SaveStreak(&record); err != nil {
		return nil, fmt.Errorf("save streak: %w", err)
	}
	return &record, nil
}

// RecapResult is one habit's outcome in a recap batch
type RecapResult struct {
	HabitID string `json:"habit_id"`
	Status  string `json:"status"` // "success" | "error"
	Error   string `json:"error,omitempty"`
}

// RecapHabits back-fills completions for a past date across several habits.
// Each habit is processed independently and concurrently; one failure never
// blocks or rolls back the others. The batch itself always succeeds — the
// caller reports per-item outcomes.
func (s *HabitService) RecapHabits(userID string, habitIDs []string, date string) ([]RecapResult, error) {
	if !validDate(date) {
		return nil, ErrInvalidDate
	}

	results := make([]RecapResult, len(habitIDs))
	var wg sync.WaitGroup
	for i, habitID := range habitIDs {
		wg.Add(1)
		go func(i int, habitID string) {
			defer wg.Done()
			if habitID == "" {
				results[i] = RecapResult{HabitID: habitID, Status: "error", Error: ErrHabitRequired.Error()}
				return
			}
			if _, err := s.completeOn(userID, habitID, date); err != nil {
				results[i] = RecapResult{HabitID: habitID, Status: "error", Error: err.Error()}
				return
			}
			results[i] = RecapResult{HabitID: habitID, Status: "success"}
		}(i, habitID)
	}
	wg.Wait()

	return results, nil
}

// RebuildStreak recomputes a habit's streak row from the full entry ledger.
// This is the explicit repair for back-fills the persist guard could not
// bridge; it is never run automatically on write.
func (s *HabitService) RebuildStreak(userID, habitID string) (*models.HabitStreak, error) {
	if habitID == "" {
		return nil, ErrHabitRequired
	}

	dates, err := s.Store.ListEntryDates(userID, habitID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	current, longest, last := RebuildStreakCounters(dates)

	record, err := s.Store.GetStreak(userID, habitID)
	if err != nil {
		return nil, fmt.Errorf("fetch streak: %w", err)
	}
	if record == nil {
		record = &models.HabitStreak{ExternalUserID: userID, HabitID: habitID}
	}

	record.CurrentStreak = current
	record.LongestStreak = longest
	if last == "" {
		record.LastCompletedAt = nil
	} else {
		record.LastCompletedAt = &last
	}
	if err := s.Store.SaveStreak(record); err != nil {
		return nil, fmt.Errorf("save streak: %w", err)
	}
	return record, nil
}

// TodayEntries returns the user's habit entries for the current day
func (s *HabitService) TodayEntries(userID string) ([]models.HabitEntry, error) {
	return s.Store.ListEntriesForDate(userID, today())
}

// ListStreaks returns all streak rows for the user
func (s *HabitService) ListStreaks(userID string) ([]models.HabitStreak, error) {
	return s.Store.ListStreaks(userID)
}

// ListHabits returns the habit catalog
func (s *HabitService) ListHabits() ([]models.Habit, error) {
	return s.Store.ListHabits()
}

// CreateHabit adds a custom habit to the catalog, slugging the name into its ID
func (s *HabitService) CreateHabit(name, description, icon, cadence string, rewardCoins int64, target int) (*models.Habit, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if cadence != models.CadenceWeekly {
		cadence = models.CadenceDaily
	}
	if rewardCoins <= 0 {
		rewardCoins = 1
	}
	if target <= 0 {
		target = 1
	}

	habit := &models.Habit{
		ID:          slug.Make(name),
		Name:        name,
		Description: description,
		Icon:        icon,
		Cadence:     cadence,
		RewardCoins: rewardCoins,
		Target:      target,
	}

	existing, err := s.Store.GetHabit(habit.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("habit %q already exists", habit.ID)
	}

	if err := s.Store.CreateHabit(habit); err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}
	return habit, nil
}
