package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/render"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateHabits, constants.StateSearch:
		content = m.viewToday()
	case constants.StateCalendar:
		content = m.viewCalendar()
	case constants.StateProfile:
		content = docStyle.Render(render.Profile(m.profile))
	case constants.StateAddHabit, constants.StateConfirmation:
		content = docStyle.Render(m.form.View())
	}

	if !m.loaded && m.err == nil {
		content = docStyle.Render("Loading…")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "Calendar", "Profile"}
	active := m.state
	if active > constants.StateProfile {
		active = m.previousState
	}
	for i, title := range tabTitles {
		if active == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder
	b.WriteString(render.ProgressBar(m.home.Progress, constants.DefaultProgressBarSize) + "\n")
	b.WriteString(m.viewFilter() + "\n")
	b.WriteString(m.habitsModel.View() + "\n\n")
	b.WriteString(render.Quote(m.home.Quote))
	return docStyle.Render(b.String())
}

func (m Model) viewFilter() string {
	info := metrics.LookupCategory(m.filter.Category)
	parts := []string{info.Icon + " " + info.Label}
	if m.state == constants.StateSearch {
		parts = append(parts, m.search.View())
	} else if m.filter.Query != "" {
		parts = append(parts, fmt.Sprintf("/ %s", m.filter.Query))
	}
	return filterStyle.Render(strings.Join(parts, "  "))
}

func (m Model) viewCalendar() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Activity (last %d days)\n\n", m.loader.Windows().Heatmap)
	b.WriteString(render.Heatmap(m.home.Heatmap, constants.DefaultHeatmapColumns) + "\n\n")
	b.WriteString(render.Cards([]render.Card{
		{Label: "Habits", Value: fmt.Sprint(m.home.TotalHabits)},
		{Label: "Done today", Value: fmt.Sprint(m.home.DoneToday)},
		{Label: "Active days", Value: fmt.Sprint(m.home.ActiveDays)},
		{Label: "Best streak", Value: fmt.Sprint(m.home.BestStreak)},
	}))
	return docStyle.Render(b.String())
}

func (m Model) viewStatus() string {
	var lines []string
	if m.err != nil {
		lines = append(lines, dangerStyle.Render("Error: "+m.err.Error()))
	}
	for _, w := range m.data.Warnings {
		lines = append(lines, warningStyle.Render("⚠ could not load "+w))
	}
	if m.status != "" {
		if m.home.Progress.Complete() && strings.HasPrefix(m.status, "🎉") {
			lines = append(lines, celebrateStyle.Render(m.status))
		} else {
			lines = append(lines, m.status)
		}
	}
	return strings.Join(lines, "\n")
}
