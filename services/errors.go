package services

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP statuses:
// conflicts → 409, validation → 400, not-found → 404.
var (
	ErrAlreadyCompleted  = errors.New("already_completed")
	ErrHabitRequired     = errors.New("habit_id is required")
	ErrHabitNotFound     = errors.New("habit not found")
	ErrQuestNotFound     = errors.New("quest not found")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrInvalidAmount     = errors.New("reward amounts must be non-negative")
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD")
	ErrCompanionExists   = errors.New("user already has a companion")
	ErrItemNotFound      = errors.New("shop item not found")
	ErrInsufficientCoins = errors.New("not enough coins")
)
