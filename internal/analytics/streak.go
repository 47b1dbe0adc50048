package analytics

import "time"

// ComputeStreak counts consecutive calendar days, ending at now's day,
// with at least one completed session. Days are local calendar days of
// the supplied start timestamps. A day with no session ends the walk,
// so a quiet today means a streak of zero regardless of history.
func ComputeStreak(completedStarts []time.Time, now time.Time) int {
	if len(completedStarts) == 0 {
		return 0
	}

	active := make(map[string]bool, len(completedStarts))
	for _, start := range completedStarts {
		active[start.Format(dayFormat)] = true
	}

	streak := 0
	day := now
	for active[day.Format(dayFormat)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
