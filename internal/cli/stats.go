package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/dashboard"
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/render"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	loader, data, err := ctx.Load()
	if err != nil {
		return err
	}
	home := dashboard.BuildHome(loader.Calendar(), loader.Windows(), data, dashboard.Filter{})
	snap := dashboard.BuildProfile(data).Snapshot

	fmt.Printf("Statistics (last %d days)\n\n", loader.Windows().Stats)
	fmt.Println(render.Cards([]render.Card{
		{Label: "Habits", Value: fmt.Sprint(home.TotalHabits)},
		{Label: "Done today", Value: fmt.Sprint(home.DoneToday)},
		{Label: "Active days", Value: fmt.Sprint(home.ActiveDays)},
		{Label: "Best streak", Value: fmt.Sprint(home.BestStreak)},
	}))
	fmt.Println(render.ProgressLabel(home.Progress))
	fmt.Printf("Completions: %d\n", snap.TotalCompletions)
	if snap.TopHabit != nil {
		fmt.Printf("Top habit:   %s %s (%d)\n", snap.TopHabit.Emoji, snap.TopHabit.Name, snap.TopHabitCount)
	}
	fmt.Print(render.Warnings(data.Warnings))
	return nil
}

type CalendarCmd struct {
	Days    int `help:"Number of days in the heatmap (default: heatmap_days setting)."`
	Columns int `help:"Cells per row." default:"7"`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	if c.Days < 0 || c.Days > constants.MaxWindowDays {
		return fmt.Errorf("--days must be between 1 and %d", constants.MaxWindowDays)
	}
	loader, err := ctx.Loader()
	if err != nil {
		return err
	}
	days := c.Days
	if days == 0 {
		days = loader.Windows().Heatmap
	}

	logs, err := ctx.Store.GetCompletionsSince(loader.Calendar().DaysAgo(days).String())
	if err != nil {
		return fmt.Errorf("failed to load completions: %w", err)
	}

	fmt.Printf("Activity (last %d days)\n\n", days)
	fmt.Println(render.Heatmap(metrics.Heatmap(loader.Calendar(), logs, days), c.Columns))
	return nil
}

// badgeJSON is the serialisable form of a badge.
type badgeJSON struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

func badgesJSON(earned, locked []metrics.Badge) []badgeJSON {
	out := make([]badgeJSON, 0, len(earned)+len(locked))
	for _, b := range earned {
		out = append(out, badgeJSON{ID: b.ID, Icon: b.Icon, Label: b.Label, Description: b.Description, Earned: true})
	}
	for _, b := range locked {
		out = append(out, badgeJSON{ID: b.ID, Icon: metrics.LockedBadgeIcon, Label: b.Label, Description: b.Description})
	}
	return out
}

type categoryJSON struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

type profileJSON struct {
	TotalHabits      int            `json:"total_habits"`
	TotalCompletions int            `json:"total_completions"`
	ActiveDays       int            `json:"active_days"`
	BestStreak       int            `json:"best_streak"`
	HadPerfectDay    bool           `json:"had_perfect_day"`
	TopHabit         string         `json:"top_habit,omitempty"`
	TopHabitCount    int            `json:"top_habit_count"`
	Categories       []categoryJSON `json:"categories"`
	Badges           []badgeJSON    `json:"badges"`
	Warnings         []string       `json:"warnings,omitempty"`
}

func toProfileJSON(p dashboard.Profile) profileJSON {
	s := p.Snapshot
	out := profileJSON{
		TotalHabits:      s.TotalHabits,
		TotalCompletions: s.TotalCompletions,
		ActiveDays:       s.ActiveDays,
		BestStreak:       s.BestStreak,
		HadPerfectDay:    s.HadPerfectDay,
		TopHabitCount:    s.TopHabitCount,
		Categories:       make([]categoryJSON, 0, len(p.Categories)),
		Badges:           badgesJSON(p.Earned, p.Locked),
		Warnings:         p.Warnings,
	}
	if s.TopHabit != nil {
		out.TopHabit = s.TopHabit.Name
	}
	for _, share := range p.Categories {
		out.Categories = append(out.Categories, categoryJSON{
			Category: string(share.Info.ID),
			Label:    share.Info.Label,
			Count:    share.Count,
		})
	}
	return out
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type ProfileCmd struct {
	JSON bool `help:"Print as JSON."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	_, data, err := ctx.Load()
	if err != nil {
		return err
	}
	profile := dashboard.BuildProfile(data)
	if c.JSON {
		return printJSON(toProfileJSON(profile))
	}
	fmt.Println(render.Profile(profile))
	return nil
}

type BadgesCmd struct {
	JSON bool `help:"Print as JSON."`
}

func (c *BadgesCmd) Run(ctx *Context) error {
	_, data, err := ctx.Load()
	if err != nil {
		return err
	}
	profile := dashboard.BuildProfile(data)
	if c.JSON {
		return printJSON(badgesJSON(profile.Earned, profile.Locked))
	}
	fmt.Print(render.Badges(profile.Earned, profile.Locked))
	fmt.Print(render.Warnings(profile.Warnings))
	return nil
}
