package services

import "focus-quest-system/models"

// The streak and reward logic never touches *gorm.DB directly — it goes
// through these narrow contracts so tests can swap in in-memory fakes.
// Lookup methods return (nil, nil) when the row does not exist, except
// GetProfile: a missing profile is an error the caller must report.

// HabitStore is the persistence contract for habit entries and streak rows
type HabitStore interface {
	GetHabit(habitID string) (*models.Habit, error)
	CreateHabit(habit *models.Habit) error
	ListHabits() ([]models.Habit, error)

	GetEntry(userID, habitID, date string) (*models.HabitEntry, error)
	UpsertEntry(entry *models.HabitEntry) error
	ListEntryDates(userID, habitID string) ([]string, error)
	ListEntriesForDate(userID, date string) ([]models.HabitEntry, error)

	GetStreak(userID, habitID string) (*models.HabitStreak, error)
	SaveStreak(streak *models.HabitStreak) error
	ListStreaks(userID string) ([]models.HabitStreak, error)
}

// ProfileStore is the persistence contract for reward grants
type ProfileStore interface {
	GetProfile(userID string) (*models.Profile, error)
	SaveProfile(profile *models.Profile) error
	GetActiveCompanion(userID string) (*models.Companion, error)
	SaveCompanion(companion *models.Companion) error
}
