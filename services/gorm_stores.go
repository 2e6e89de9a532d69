package services

import (
	"errors"
	"fmt"

	"focus-quest-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHabitStore backs HabitStore with Postgres
type GormHabitStore struct {
	DB *gorm.DB
}

func NewGormHabitStore(db *gorm.DB) *GormHabitStore {
	return &GormHabitStore{DB: db}
}

func (s *GormHabitStore) GetHabit(habitID string) (*models.Habit, error) {
	var habit models.Habit
	if err := s.DB.Where("id = ?", habitID).First(&habit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &habit, nil
}

func (s *GormHabitStore) CreateHabit(habit *models.Habit) error {
	return s.DB.Create(habit).Error
}

func (s *GormHabitStore) ListHabits() ([]models.Habit, error) {
	var habits []models.Habit
	err := s.DB.Order("created_at ASC").Find(&habits).Error
	return habits, err
}

func (s *GormHabitStore) GetEntry(userID, habitID, date string) (*models.HabitEntry, error) {
	var entry models.HabitEntry
	err := s.DB.Where("external_user_id = ? AND habit_id = ? AND date = ?", userID, habitID, date).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (s *GormHabitStore) UpsertEntry(entry *models.HabitEntry) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_user_id"}, {Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(entry).Error
}

func (s *GormHabitStore) ListEntryDates(userID, habitID string) ([]string, error) {
	var dates []string
	err := s.DB.Model(&models.HabitEntry{}).
		Where("external_user_id = ? AND habit_id = ? AND completed = true", userID, habitID).
		Order("date ASC").
		Pluck("date", &dates).Error
	return dates, err
}

func (s *GormHabitStore) ListEntriesForDate(userID, date string) ([]models.HabitEntry, error) {
	var entries []models.HabitEntry
	err := s.DB.Where("external_user_id = ? AND date = ?", userID, date).Find(&entries).Error
	return entries, err
}

func (s *GormHabitStore) GetStreak(userID, habitID string) (*models.HabitStreak, error) {
	var streak models.HabitStreak
	err := s.DB.Where("external_user_id = ? AND habit_id = ?", userID, habitID).First(&streak).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &streak, nil
}

func (s *GormHabitStore) SaveStreak(streak *models.HabitStreak) error {
	return s.DB.Save(streak).Error
}

func (s *GormHabitStore) ListStreaks(userID string) ([]models.HabitStreak, error) {
	var streaks []models.HabitStreak
	err := s.DB.Where("external_user_id = ?", userID).Find(&streaks).Error
	return streaks, err
}

// GormProfileStore backs ProfileStore with Postgres
type GormProfileStore struct {
	DB *gorm.DB
}

func NewGormProfileStore(db *gorm.DB) *GormProfileStore {
	return &GormProfileStore{DB: db}
}

func (s *GormProfileStore) GetProfile(userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.DB.Where("external_user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, fmt.Errorf("profile not found for %s: %w", userID, err)
	}
	return &profile, nil
}

func (s *GormProfileStore) SaveProfile(profile *models.Profile) error {
	return s.DB.Save(profile).Error
}

func (s *GormProfileStore) GetActiveCompanion(userID string) (*models.Companion, error) {
	var companion models.Companion
	err := s.DB.Where("external_user_id = ? AND is_active = true", userID).First(&companion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &companion, nil
}

func (s *GormProfileStore) SaveCompanion(companion *models.Companion) error {
	return s.DB.Save(companion).Error
}
