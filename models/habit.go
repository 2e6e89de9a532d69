package models

// Habit cadence
const (
	CadenceDaily  = "daily"
	CadenceWeekly = "weekly"
)

// Habit is a catalog definition. The defaults below are seeded at startup;
// user-created habits get their ID slugged from the name.
type Habit struct {
	ID          string `gorm:"primaryKey" json:"id"` // slug, e.g. "steps"
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Icon        string `gorm:"size:10" json:"icon"`
	Cadence     string `gorm:"type:varchar(16);default:'daily'" json:"cadence"`
	RewardCoins int64  `json:"reward_coins" gorm:"default:1"`
	Target      int    `json:"target" gorm:"default:1"` // weekly habits: completions needed per week

	Timestamps
}

// HabitEntry is the per-day completion ledger the streak row is derived from.
// One row per (user, habit, date); re-marking a completed entry is a no-op.
type HabitEntry struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID string `gorm:"uniqueIndex:idx_entry_user_habit_date;not null" json:"external_user_id"`
	HabitID        string `gorm:"uniqueIndex:idx_entry_user_habit_date;not null" json:"habit_id"`
	Date           string `gorm:"uniqueIndex:idx_entry_user_habit_date;type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Completed      bool   `json:"completed" gorm:"default:false"`

	Timestamps
}

// HabitStreak is the derived streak cache, one per (user, habit).
// Invariant at rest: LongestStreak >= CurrentStreak.
type HabitStreak struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID string `gorm:"uniqueIndex:idx_streak_user_habit;not null" json:"external_user_id"`
	HabitID        string `gorm:"uniqueIndex:idx_streak_user_habit;not null" json:"habit_id"`
	CurrentStreak  int    `json:"current_streak" gorm:"default:0"`
	LongestStreak  int    `json:"longest_streak" gorm:"default:0"`

	// Calendar date by design, never a timestamp: streak comparisons must
	// ignore time-of-day so midnight/timezone drift can't shift a day.
	LastCompletedAt *string `gorm:"type:varchar(10)" json:"last_completed_at"`

	Timestamps
}

// DefaultHabits seeds the catalog on startup
var DefaultHabits = []Habit{
	{ID: "steps", Name: "Walk the Path", Description: "10,000 Steps", Icon: "🚶", Cadence: CadenceDaily, RewardCoins: 1},
	{ID: "fiber", Name: "Eat Clean", Description: ">15g Fiber", Icon: "🥦", Cadence: CadenceDaily, RewardCoins: 1},
	{ID: "protein", Name: "Eat Strong", Description: ">120g Protein", Icon: "💪", Cadence: CadenceDaily, RewardCoins: 1},
	{ID: "exercise", Name: "Train Body", Description: "Any Exercise", Icon: "🏋️", Cadence: CadenceDaily, RewardCoins: 1},
	{ID: "focus", Name: "Deep Focus", Description: "45m+ Work/Study", Icon: "🎯", Cadence: CadenceDaily, RewardCoins: 2},
	{ID: "enrichment", Name: "Mind Expansion", Description: "Leetcode/Piano/Japanese/Reading", Icon: "🧠", Cadence: CadenceDaily, RewardCoins: 1},
	{ID: "heavy_volume", Name: "Heavy Volume", Description: "Exercise 5 Times", Icon: "🔥", Cadence: CadenceWeekly, RewardCoins: 5, Target: 5},
	{ID: "self_reflection", Name: "Self Reflection", Description: "Take Progress Picture", Icon: "📸", Cadence: CadenceWeekly, RewardCoins: 2, Target: 1},
}
