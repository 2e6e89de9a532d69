package services

import (
	"sort"
	"time"

	"focus-quest-system/models"
)

const dateLayout = "2006-01-02"

// StreakResult is the outcome of reconciling one completion against the
// stored streak row.
type StreakResult struct {
	Record        models.HabitStreak
	ShouldPersist bool
}

// today returns the current calendar date (UTC) as YYYY-MM-DD
func today() string {
	return time.Now().UTC().Format(dateLayout)
}

// dayBefore returns the calendar date immediately preceding date.
// Empty string on a malformed date; that never matches a stored value.
func dayBefore(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(dateLayout)
}

// validDate reports whether date parses as YYYY-MM-DD
func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// ReconcileStreak computes the new streak counters for a completion on
// completionDate. Comparisons are calendar-date strings on purpose:
// timestamp math invites timezone off-by-one errors around midnight.
//
//   - no prior record              → current = longest = 1
//   - last completed == day before → streak extends
//   - last completed == same day   → duplicate submission, counters unchanged
//   - anything else (gap, future)  → streak resets to 1
//
// ShouldPersist guards the write: it is true only when there is no prior
// record or the stored last_completed_at is strictly older than
// completionDate. A back-dated recap arriving after a later day was already
// recorded must not overwrite the newer state. The flip side: back-filling
// a past day does not retroactively bridge the gap in the later day's count.
// That repair is RebuildStreakCounters against the entry ledger, run
// explicitly — never silently on write.
func ReconcileStreak(existing *models.HabitStreak, completionDate string) StreakResult {
	if existing == nil || existing.LastCompletedAt == nil {
		record := models.HabitStreak{
			CurrentStreak:   1,
			LongestStreak:   1,
			LastCompletedAt: &completionDate,
		}
		if existing != nil {
			record.ID = existing.ID
			record.ExternalUserID = existing.ExternalUserID
			record.HabitID = existing.HabitID
			if existing.LongestStreak > record.LongestStreak {
				record.LongestStreak = existing.LongestStreak
			}
		}
		return StreakResult{Record: record, ShouldPersist: true}
	}

	last := *existing.LastCompletedAt
	current := 1
	switch last {
	case dayBefore(completionDate):
		current = existing.CurrentStreak + 1
	case completionDate:
		current = existing.CurrentStreak
	}

	longest := existing.LongestStreak
	if current > longest {
		longest = current
	}

	record := *existing
	record.CurrentStreak = current
	record.LongestStreak = longest
	record.LastCompletedAt = &completionDate

	// Lexicographic compare is date order for zero-padded ISO dates.
	return StreakResult{Record: record, ShouldPersist: last < completionDate}
}

// RebuildStreakCounters recomputes current/longest from the raw completion
// ledger. This is the repair tool for the persist-guard's known gap: a
// back-filled day that should have bridged two runs.
func RebuildStreakCounters(dates []string) (current, longest int, last string) {
	if len(dates) == 0 {
		return 0, 0, ""
	}

	uniq := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		uniq[d] = struct{}{}
	}
	sorted := make([]string, 0, len(uniq))
	for d := range uniq {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	run := 1
	longest = 1
	for i := 1; i < len(sorted); i++ {
		if dayBefore(sorted[i]) == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return run, longest, sorted[len(sorted)-1]
}
