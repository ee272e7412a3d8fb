// Package dashboard contains dashboard-related use cases.
package dashboard

import "time"

// day is the granularity streaks are counted at.
const day = 24 * time.Hour

// StreakResult holds the outcome of a streak calculation.
type StreakResult struct {
	CurrentStreak int
	LongestStreak int
}

// CalculateStreaks computes the current and longest streaks from the distinct
// dates a user filed notes on. Dates may arrive in any order and are
// normalized to UTC midnight. The current streak is the run of consecutive
// days ending today or yesterday relative to now; a last note from the day
// before yesterday or earlier means the streak is broken.
func CalculateStreaks(noteDates []time.Time, now time.Time) StreakResult {
	if len(noteDates) == 0 {
		return StreakResult{}
	}

	// Deduplicate onto UTC midnights
	seen := make(map[time.Time]bool, len(noteDates))
	days := make([]time.Time, 0, len(noteDates))
	for _, d := range noteDates {
		midnight := d.UTC().Truncate(day)
		if !seen[midnight] {
			seen[midnight] = true
			days = append(days, midnight)
		}
	}
	sortDaysDescending(days)

	today := now.UTC().Truncate(day)
	yesterday := today.Add(-day)

	current := 0
	if days[0].Equal(today) || days[0].Equal(yesterday) {
		current = 1
		for i := 1; i < len(days); i++ {
			if days[i-1].Sub(days[i]) != day {
				break
			}
			current++
		}
	}

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == day {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return StreakResult{
		CurrentStreak: current,
		LongestStreak: longest,
	}
}

// sortDaysDescending sorts midnights newest first (insertion sort; the
// distinct-date list is small).
func sortDaysDescending(days []time.Time) {
	for i := 1; i < len(days); i++ {
		for j := i; j > 0 && days[j].After(days[j-1]); j-- {
			days[j], days[j-1] = days[j-1], days[j]
		}
	}
}
