// Package render turns dashboard views into styled terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/dashboard"
	"github.com/julianstephens/habitus/internal/metrics"
)

const (
	heatmapGlyph = "■"
	dotDone      = "●"
	dotMissed    = "○"
)

// Heatmap lays cells out oldest first, columns per row, followed by a legend.
func Heatmap(cells []metrics.HeatmapCell, columns int) string {
	if len(cells) == 0 {
		return mutedStyle.Render("No days to show.")
	}
	if columns < 1 {
		columns = constants.DefaultHeatmapColumns
	}

	var b strings.Builder
	for i, c := range cells {
		b.WriteString(levelStyle(c.Level).Render(heatmapGlyph))
		if (i+1)%columns == 0 || i == len(cells)-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}

	b.WriteString(mutedStyle.Render("Less "))
	for level := metrics.LevelNone; level <= metrics.LevelMax; level++ {
		b.WriteString(levelStyle(level).Render(heatmapGlyph))
		b.WriteByte(' ')
	}
	b.WriteString(mutedStyle.Render("More"))
	return b.String()
}

func levelStyle(level int) lipgloss.Style {
	if level < 0 {
		level = 0
	}
	if level >= len(heatmapRamp) {
		level = len(heatmapRamp) - 1
	}
	return lipgloss.NewStyle().Foreground(heatmapRamp[level])
}

// Dots renders a mini history, oldest first.
func Dots(history []metrics.HistoryDot) string {
	var b strings.Builder
	for _, d := range history {
		if d.Done {
			b.WriteString(doneStyle.Render(dotDone))
		} else {
			b.WriteString(mutedStyle.Render(dotMissed))
		}
	}
	return b.String()
}

// ProgressBar renders today's progress with its label.
func ProgressBar(p metrics.Progress, width int) string {
	if width < 10 {
		width = constants.DefaultProgressBarSize
	}
	opts := []progress.Option{progress.WithWidth(width), progress.WithoutPercentage()}
	if p.Complete() {
		opts = append(opts, progress.WithSolidFill(string(success)))
	} else {
		opts = append(opts, progress.WithGradient("#6C63FF", "#8B5CF6"))
	}
	bar := progress.New(opts...)
	return bar.ViewAs(float64(p.Percent)/100) + " " + ProgressLabel(p)
}

// ProgressLabel is the text shown next to the progress bar.
func ProgressLabel(p metrics.Progress) string {
	if p.Total == 0 {
		return "No habits yet"
	}
	return fmt.Sprintf("%d / %d completed today", p.Done, p.Total)
}

// Streak describes a current streak.
func Streak(n int) string {
	if n <= 0 {
		return mutedStyle.Render("Start your streak today!")
	}
	unit := "day"
	if n != 1 {
		unit = "days"
	}
	return fmt.Sprintf("🔥 %d %s streak", n, unit)
}

// Card is one stat tile.
type Card struct {
	Label string
	Value string
}

// Cards lays stat tiles out side by side.
func Cards(cards []Card) string {
	tiles := make([]string, 0, len(cards))
	for _, c := range cards {
		tiles = append(tiles, cardStyle.Render(cardValueStyle.Render(c.Value)+"\n"+mutedStyle.Render(c.Label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// HabitLine renders one row of the Today list.
func HabitLine(row dashboard.HabitRow) string {
	check := mutedStyle.Render("○")
	if row.Done {
		check = doneStyle.Render("✓")
	}
	emoji := row.Habit.Emoji
	if emoji == "" {
		emoji = constants.DefaultEmoji
	}
	name := row.Habit.Name
	if row.Habit.Color != "" {
		name = lipgloss.NewStyle().Foreground(lipgloss.Color(row.Habit.Color)).Render(name)
	}
	return fmt.Sprintf("%s %s %s  %s  %s  %s",
		check, emoji, name, mutedStyle.Render(row.Category.Icon+" "+row.Category.Label), Dots(row.History), Streak(row.Streak))
}

// Home renders the Today view for the CLI.
func Home(h dashboard.Home) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Today · "+h.Today.String()) + "\n\n")
	b.WriteString(ProgressBar(h.Progress, constants.DefaultProgressBarSize) + "\n\n")

	if len(h.Rows) == 0 {
		if h.TotalHabits == 0 {
			b.WriteString(mutedStyle.Render("No habits yet. Add one with 'habitus habit add'.") + "\n")
		} else {
			b.WriteString(mutedStyle.Render("No habits match the current filter.") + "\n")
		}
	}
	for _, row := range h.Rows {
		b.WriteString(HabitLine(row) + "\n")
	}

	b.WriteString("\n" + Cards([]Card{
		{Label: "Habits", Value: fmt.Sprint(h.TotalHabits)},
		{Label: "Done today", Value: fmt.Sprint(h.DoneToday)},
		{Label: "Active days", Value: fmt.Sprint(h.ActiveDays)},
		{Label: "Best streak", Value: fmt.Sprint(h.BestStreak)},
	}) + "\n\n")
	b.WriteString(Quote(h.Quote) + "\n")
	b.WriteString(Warnings(h.Warnings))
	return b.String()
}

// Quote renders the daily quote.
func Quote(q metrics.Quote) string {
	return quoteStyle.Render(fmt.Sprintf("“%s” — %s", q.Text, q.Author))
}

// Badges renders earned badges first, then locked ones.
func Badges(earned, locked []metrics.Badge) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Badges (%d/%d)", len(earned), len(earned)+len(locked))) + "\n")
	for _, badge := range earned {
		fmt.Fprintf(&b, "%s %s  %s\n", badge.Icon, badge.Label, mutedStyle.Render(badge.Description))
	}
	for _, badge := range locked {
		b.WriteString(lockedStyle.Render(fmt.Sprintf("%s %s  %s", metrics.LockedBadgeIcon, badge.Label, badge.Description)) + "\n")
	}
	return b.String()
}

// Categories renders the per-category habit counts as bars.
func Categories(shares []dashboard.CategoryShare) string {
	if len(shares) == 0 {
		return mutedStyle.Render("No habits yet.")
	}
	peak := 1
	for _, s := range shares {
		if s.Count > peak {
			peak = s.Count
		}
	}
	const barWidth = 20
	var b strings.Builder
	for _, s := range shares {
		n := s.Count * barWidth / peak
		if n == 0 && s.Count > 0 {
			n = 1
		}
		bar := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("█", n))
		fmt.Fprintf(&b, "%s %-9s %s %d\n", s.Info.Icon, s.Info.Label, bar, s.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Profile renders the stats and badges view for the CLI.
func Profile(p dashboard.Profile) string {
	s := p.Snapshot
	var b strings.Builder

	b.WriteString(titleStyle.Render("Profile") + "\n\n")
	b.WriteString(Cards([]Card{
		{Label: "Total Habits", Value: fmt.Sprint(s.TotalHabits)},
		{Label: "Total Completions", Value: fmt.Sprint(s.TotalCompletions)},
		{Label: "Active Days", Value: fmt.Sprint(s.ActiveDays)},
		{Label: "Best Streak", Value: fmt.Sprintf("%d days", s.BestStreak)},
	}) + "\n\n")

	if s.TopHabit != nil {
		fmt.Fprintf(&b, "Top habit: %s %s (%d completions)\n\n", s.TopHabit.Emoji, s.TopHabit.Name, s.TopHabitCount)
	}

	b.WriteString(titleStyle.Render("Categories") + "\n")
	b.WriteString(Categories(p.Categories) + "\n\n")
	b.WriteString(Badges(p.Earned, p.Locked))
	b.WriteString(Warnings(p.Warnings))
	return b.String()
}

// Warnings lists fetch problems, or nothing when there are none.
func Warnings(ws []string) string {
	if len(ws) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range ws {
		b.WriteString(warningStyle.Render("⚠ could not load "+w) + "\n")
	}
	return b.String()
}
