package metrics

import (
	"math"

	"github.com/julianstephens/habitus/internal/models"
)

// Progress is today's completion ratio.
type Progress struct {
	Done    int
	Total   int
	Percent int
}

// Complete reports whether every habit is done. It is false when there are no habits.
func (p Progress) Complete() bool {
	return p.Total > 0 && p.Done >= p.Total
}

// DoneSet returns the IDs of habits with at least one log in todayLogs.
func DoneSet(todayLogs []models.CompletionLog) map[string]bool {
	done := make(map[string]bool, len(todayLogs))
	for _, l := range todayLogs {
		done[l.HabitID] = true
	}
	return done
}

// TodayProgress counts how many of habits have a log in todayLogs.
// Logs for habits not in habits are ignored.
func TodayProgress(habits []models.Habit, todayLogs []models.CompletionLog) Progress {
	done := DoneSet(todayLogs)
	p := Progress{Total: len(habits)}
	for _, h := range habits {
		if done[h.ID] {
			p.Done++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Done) / float64(p.Total) * 100))
	}
	return p
}
