package metrics

import (
	"github.com/julianstephens/habitus/internal/models"
)

// CategoryCount is the number of habits in a category.
type CategoryCount struct {
	Category models.Category
	Count    int
}

// Snapshot summarizes habits and a window of completion logs.
type Snapshot struct {
	TotalHabits      int
	TotalCompletions int
	ActiveDays       int
	BestStreak       int
	HadPerfectDay    bool
	// TopHabit is the habit with the most completions, nil when none has any.
	TopHabit       *models.Habit
	TopHabitCount  int
	CategoryCounts []CategoryCount
}

// ComputeSnapshot aggregates habits and logs. logs is expected to already be
// limited to the statistics window; it is counted as given.
func ComputeSnapshot(habits []models.Habit, logs []models.CompletionLog, idx CategoryIndex) Snapshot {
	s := Snapshot{
		TotalHabits:      len(habits),
		TotalCompletions: len(logs),
	}

	perDay := make(map[Day]int)
	perHabit := make(map[string]int)
	for _, l := range logs {
		perHabit[l.HabitID]++
		d := Day(l.Day)
		if d.Valid() {
			perDay[d]++
		}
	}
	s.ActiveDays = len(perDay)
	s.BestStreak = BestStreak(DaysDescending(logs))

	if len(habits) > 0 {
		for _, c := range perDay {
			if c >= len(habits) {
				s.HadPerfectDay = true
				break
			}
		}
	}

	for _, h := range habits {
		if c := perHabit[h.ID]; c > s.TopHabitCount {
			top := h
			s.TopHabitCount = c
			s.TopHabit = &top
		}
	}

	pos := make(map[models.Category]int)
	for _, h := range habits {
		c := idx.CategoryOf(h.ID)
		i, ok := pos[c]
		if !ok {
			i = len(s.CategoryCounts)
			pos[c] = i
			s.CategoryCounts = append(s.CategoryCounts, CategoryCount{Category: c})
		}
		s.CategoryCounts[i].Count++
	}

	return s
}
