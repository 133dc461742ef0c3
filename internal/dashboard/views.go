package dashboard

import (
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/models"
)

// Filter narrows the habit list. The zero value shows everything.
type Filter struct {
	Category models.Category
	Query    string
}

// HabitRow is one line of the Today list.
type HabitRow struct {
	Habit    models.Habit
	Category metrics.CategoryInfo
	Done     bool
	Streak   int
	History  []metrics.HistoryDot
}

// Home is the Today view.
type Home struct {
	Today    metrics.Day
	Filter   Filter
	Rows     []HabitRow
	Progress metrics.Progress

	// Counters cover every current habit regardless of Filter.
	TotalHabits int
	DoneToday   int
	ActiveDays  int
	BestStreak  int

	Heatmap  []metrics.HeatmapCell
	Quote    metrics.Quote
	Warnings []string
}

// CategoryShare is one line of the Profile category breakdown.
type CategoryShare struct {
	Info  metrics.CategoryInfo
	Count int
}

// Profile is the stats and badges view.
type Profile struct {
	Snapshot   metrics.Snapshot
	Earned     []metrics.Badge
	Locked     []metrics.Badge
	Categories []CategoryShare
	Warnings   []string
}

// BuildHome composes the Today view from one Load.
func BuildHome(cal metrics.Calendar, win Windows, data Data, f Filter) Home {
	idx := metrics.IndexCategories(data.Habits)
	done := metrics.DoneSet(data.TodayLogs)
	streaks := metrics.StreakMap(cal, data.Habits, data.StatsLogs)
	history := metrics.PerHabitDaySet(data.HistoryLogs)

	visible := metrics.Filter(data.Habits, idx, f.Category, f.Query)
	rows := make([]HabitRow, 0, len(visible))
	for _, h := range visible {
		rows = append(rows, HabitRow{
			Habit:    h,
			Category: metrics.LookupCategory(idx.CategoryOf(h.ID)),
			Done:     done[h.ID],
			Streak:   streaks[h.ID],
			History:  metrics.MiniHistory(cal, history[h.ID], win.History),
		})
	}

	days := metrics.DaysDescending(data.StatsLogs)
	progress := metrics.TodayProgress(data.Habits, data.TodayLogs)

	return Home{
		Today:       data.Today,
		Filter:      f,
		Rows:        rows,
		Progress:    progress,
		TotalHabits: len(data.Habits),
		DoneToday:   progress.Done,
		ActiveDays:  len(days),
		BestStreak:  metrics.BestStreak(days),
		Heatmap:     metrics.Heatmap(cal, data.HeatmapLogs, win.Heatmap),
		Quote:       metrics.DailyQuote(cal),
		Warnings:    data.Warnings,
	}
}

// BuildProfile composes the Profile view from one Load.
func BuildProfile(data Data) Profile {
	snap := metrics.ComputeSnapshot(data.Habits, data.StatsLogs, metrics.IndexCategories(data.Habits))
	earned, locked := metrics.EvaluateBadges(snap, metrics.DefaultBadges())

	shares := make([]CategoryShare, 0, len(snap.CategoryCounts))
	for _, cc := range snap.CategoryCounts {
		shares = append(shares, CategoryShare{Info: metrics.LookupCategory(cc.Category), Count: cc.Count})
	}

	return Profile{
		Snapshot:   snap,
		Earned:     earned,
		Locked:     locked,
		Categories: shares,
		Warnings:   data.Warnings,
	}
}
