package metrics

import (
	"github.com/julianstephens/habitus/internal/models"
)

// Heatmap intensity levels. LevelNone is reserved for days without completions.
const (
	LevelNone = 0
	LevelMax  = 4
)

// DaySet is a set of calendar days.
type DaySet map[Day]struct{}

// Has reports whether d is in the set.
func (s DaySet) Has(d Day) bool {
	_, ok := s[d]
	return ok
}

// HeatmapCell is one day of a heatmap.
type HeatmapCell struct {
	Day   Day
	Count int
	Level int
}

// HistoryDot is one day of a per-habit mini history.
type HistoryDot struct {
	Day  Day
	Done bool
}

// Aggregate counts completions per day for days in [start, end].
// Malformed days are skipped.
func Aggregate(logs []models.CompletionLog, start, end Day) map[Day]int {
	counts := make(map[Day]int)
	for _, l := range logs {
		d := Day(l.Day)
		if d < start || d > end || !d.Valid() {
			continue
		}
		counts[d]++
	}
	return counts
}

// PerHabitDaySet groups the days of logs by habit ID.
func PerHabitDaySet(logs []models.CompletionLog) map[string]DaySet {
	sets := make(map[string]DaySet)
	for _, l := range logs {
		d := Day(l.Day)
		if !d.Valid() {
			continue
		}
		set, ok := sets[l.HabitID]
		if !ok {
			set = make(DaySet)
			sets[l.HabitID] = set
		}
		set[d] = struct{}{}
	}
	return sets
}

// MaxCount returns the largest count in counts, never less than 1.
func MaxCount(counts map[Day]int) int {
	peak := 1
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}
	return peak
}

// HeatmapLevel quantizes count relative to maxCount into 0..4.
// Levels are relative: the busiest day in the window is always LevelMax.
func HeatmapLevel(count, maxCount int) int {
	if count <= 0 {
		return LevelNone
	}
	if maxCount < 1 {
		maxCount = 1
	}
	ratio := float64(count) / float64(maxCount)
	switch {
	case ratio <= 0.25:
		return 1
	case ratio <= 0.5:
		return 2
	case ratio <= 0.75:
		return 3
	default:
		return LevelMax
	}
}

// Heatmap returns one cell per day for the trailing window of the given length
// ending today, oldest first.
func Heatmap(cal Calendar, logs []models.CompletionLog, days int) []HeatmapCell {
	if days <= 0 {
		return nil
	}
	start, end := cal.DaysAgo(days-1), cal.Today()
	counts := Aggregate(logs, start, end)
	peak := MaxCount(counts)

	cells := make([]HeatmapCell, 0, days)
	for d := start; d <= end; d = AddDays(d, 1) {
		c := counts[d]
		cells = append(cells, HeatmapCell{Day: d, Count: c, Level: HeatmapLevel(c, peak)})
	}
	return cells
}

// MiniHistory returns whether each of the last days days (ending today) is in set,
// oldest first.
func MiniHistory(cal Calendar, set DaySet, days int) []HistoryDot {
	if days <= 0 {
		return nil
	}
	dots := make([]HistoryDot, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := cal.DaysAgo(i)
		dots = append(dots, HistoryDot{Day: d, Done: set.Has(d)})
	}
	return dots
}
