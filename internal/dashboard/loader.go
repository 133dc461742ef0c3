// Package dashboard fetches the collections a view needs and hands them to
// the metrics package.
package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/habitus/internal/logger"
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/models"
)

// Store is the read side of storage.Provider the loader depends on.
type Store interface {
	GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error)
	GetCompletionsForDay(day string) ([]models.CompletionLog, error)
	GetCompletionsSince(day string) ([]models.CompletionLog, error)
}

// Windows sizes the three trailing log windows.
type Windows struct {
	Heatmap int
	History int
	Stats   int
}

// WindowsFromSettings reads the configured windows, falling back to defaults.
func WindowsFromSettings(s models.Settings) Windows {
	models.ApplyDefaultSettings(&s)
	return Windows{Heatmap: s.HeatmapDays, History: s.HistoryDays, Stats: s.StatsDays}
}

// Data is one consistent fetch. Any collection may be empty when its fetch failed;
// Warnings says which.
type Data struct {
	Today       metrics.Day
	Habits      []models.Habit
	TodayLogs   []models.CompletionLog
	StatsLogs   []models.CompletionLog
	HistoryLogs []models.CompletionLog
	HeatmapLogs []models.CompletionLog
	Warnings    []string
}

type Loader struct {
	store Store
	cal   metrics.Calendar
	win   Windows
}

func NewLoader(store Store, cal metrics.Calendar, win Windows) *Loader {
	return &Loader{store: store, cal: cal, win: win}
}

func (l *Loader) Calendar() metrics.Calendar { return l.cal }

func (l *Loader) Windows() Windows { return l.win }

// Load runs all fetches concurrently. A failed fetch is logged and leaves its
// collection empty; only cancellation of ctx fails the whole load.
func (l *Loader) Load(ctx context.Context) (Data, error) {
	data := Data{Today: l.cal.Today()}

	type fetch struct {
		name string
		dst  *[]models.CompletionLog
		run  func() ([]models.CompletionLog, error)
	}
	fetches := []fetch{
		{"today's logs", &data.TodayLogs, func() ([]models.CompletionLog, error) {
			return l.store.GetCompletionsForDay(data.Today.String())
		}},
		{"stats logs", &data.StatsLogs, l.since(l.win.Stats)},
		{"history logs", &data.HistoryLogs, l.since(l.win.History)},
		{"heatmap logs", &data.HeatmapLogs, l.since(l.win.Heatmap)},
	}

	warnings := make([]string, len(fetches)+1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		habits, err := l.store.GetAllHabits(false, false)
		if err != nil {
			logger.Warn("Failed to fetch habits", "error", err)
			warnings[0] = fmt.Sprintf("habits: %v", err)
			habits = nil
		}
		data.Habits = habits
		return nil
	})

	for i, f := range fetches {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			logs, err := f.run()
			if err != nil {
				logger.Warn("Failed to fetch completions", "fetch", f.name, "error", err)
				warnings[i+1] = fmt.Sprintf("%s: %v", f.name, err)
				logs = nil
			}
			*f.dst = logs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Data{}, err
	}

	for _, w := range warnings {
		if w != "" {
			data.Warnings = append(data.Warnings, w)
		}
	}
	return data, nil
}

// since fetches logs on or after the day n days before today.
func (l *Loader) since(n int) func() ([]models.CompletionLog, error) {
	return func() ([]models.CompletionLog, error) {
		if n < 1 {
			return nil, nil
		}
		return l.store.GetCompletionsSince(l.cal.DaysAgo(n).String())
	}
}
