package metrics

import (
	"sort"

	"github.com/julianstephens/habitus/internal/models"
)

// DaysDescending returns the distinct, well-formed days of logs sorted newest
// first. Several completions on the same day collapse into one entry.
func DaysDescending(logs []models.CompletionLog) []Day {
	seen := make(map[Day]struct{}, len(logs))
	days := make([]Day, 0, len(logs))
	for _, l := range logs {
		d := Day(l.Day)
		if _, ok := seen[d]; ok {
			continue
		}
		if !d.Valid() {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })
	return days
}

// CurrentStreak counts consecutive active days ending today or yesterday.
// daysDesc must be strictly descending and deduplicated (see DaysDescending).
//
// A streak whose latest day is yesterday is still live: the user has until the
// end of today to extend it. Anything older is broken and yields 0.
func CurrentStreak(cal Calendar, daysDesc []Day) int {
	if len(daysDesc) == 0 {
		return 0
	}
	if daysDesc[0] != cal.Today() && daysDesc[0] != cal.DaysAgo(1) {
		return 0
	}
	streak := 1
	for i := 1; i < len(daysDesc); i++ {
		if !AreAdjacent(daysDesc[i], daysDesc[i-1]) {
			break
		}
		streak++
	}
	return streak
}

// BestStreak returns the longest run of consecutive days anywhere in daysDesc,
// without regard to how recent the run is.
func BestStreak(daysDesc []Day) int {
	if len(daysDesc) == 0 {
		return 0
	}
	best, run := 1, 1
	for i := 1; i < len(daysDesc); i++ {
		if AreAdjacent(daysDesc[i], daysDesc[i-1]) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}

// StreakMap returns the current streak of every habit keyed by habit ID.
// Habits without logs map to 0; logs for unknown habits are ignored.
func StreakMap(cal Calendar, habits []models.Habit, logs []models.CompletionLog) map[string]int {
	grouped := make(map[string][]models.CompletionLog)
	for _, l := range logs {
		grouped[l.HabitID] = append(grouped[l.HabitID], l)
	}
	streaks := make(map[string]int, len(habits))
	for _, h := range habits {
		streaks[h.ID] = CurrentStreak(cal, DaysDescending(grouped[h.ID]))
	}
	return streaks
}
