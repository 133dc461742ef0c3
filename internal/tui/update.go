package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/dashboard"
	"github.com/julianstephens/habitus/internal/logger"
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/models"
	"github.com/julianstephens/habitus/internal/tui/components/habits"
)

// chromeHeight is the space taken by tabs, progress, filter bar, quote and help.
const chromeHeight = 12

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.habitsModel.SetSize(msg.Width-4, max(msg.Height-chromeHeight, 3))
		return m, nil

	case dataLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.data, m.loaded = msg.data, true
		m.refresh()
		if m.celebrate && m.home.Progress.Complete() {
			m.status = "🎉 All habits done for today!"
		}
		m.celebrate = false
		return m, nil

	case actionDoneMsg:
		m.err = msg.err
		m.status = msg.status
		m.celebrate = msg.checkPerfect
		return m, m.load()

	case constants.ConfirmationMsg:
		return m, m.confirm(msg.Message, msg.Action)
	}

	switch m.state {
	case constants.StateAddHabit:
		return m, m.handleAddHabitState(msg)
	case constants.StateConfirmation:
		return m, m.handleConfirmationState(msg)
	case constants.StateSearch:
		return m, m.handleSearchState(msg)
	}

	if handled, cmd := m.handleHabitMessages(msg); handled {
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	if m.state == constants.StateHabits {
		var cmd tea.Cmd
		m.habitsModel, cmd = m.habitsModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % (constants.StateProfile + 1)
		return true, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state + constants.StateProfile) % (constants.StateProfile + 1)
		return true, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return true, m.load()
	}

	if m.state != constants.StateHabits {
		return false, nil
	}
	switch {
	case key.Matches(msg, m.keys.Category):
		m.filter.Category = nextCategory(m.filter.Category)
		m.refresh()
		return true, nil
	case key.Matches(msg, m.keys.Search):
		m.previousState = m.state
		m.state = constants.StateSearch
		m.search.SetValue(m.filter.Query)
		m.search.CursorEnd()
		return true, m.search.Focus()
	case key.Matches(msg, m.keys.Clear):
		if m.filterActive() {
			m.filter = dashboard.Filter{Category: models.CategoryAll}
			m.refresh()
			return true, nil
		}
	}
	return false, nil
}

// nextCategory cycles through the catalogue, "all" first.
func nextCategory(current models.Category) models.Category {
	cats := metrics.Categories()
	for i, c := range cats {
		if c.ID == current {
			return cats[(i+1)%len(cats)].ID
		}
	}
	return cats[0].ID
}

func (m *Model) handleSearchState(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.search.Blur()
			m.state = m.previousState
			return nil
		case tea.KeyEsc:
			m.search.Blur()
			m.search.SetValue("")
			m.filter.Query = ""
			m.refresh()
			m.state = m.previousState
			return nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.filter.Query {
		m.filter.Query = m.search.Value()
		m.refresh()
	}
	return cmd
}

func (m *Model) handleAddHabitState(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateHabits
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		fm := *m.habitForm
		habit := dashboard.NewHabit(m.settings, fm.Name, fm.Emoji, fm.Color, fm.Category)
		if err := dashboard.AddHabit(m.store, habit); err != nil {
			logger.Warn("Failed to add habit", "name", fm.Name, "error", err)
			m.err = err
		} else {
			cmds = append(cmds, done(fmt.Sprintf("Added %s %s", habit.Emoji, habit.Name), nil, false))
		}
		m.state = constants.StateHabits
	case huh.StateAborted:
		m.state = constants.StateHabits
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleConfirmationState(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.pendingAction = nil
		m.state = m.previousState
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.confirmForm.Confirmed && m.pendingAction != nil {
			cmds = append(cmds, m.pendingAction())
		}
		m.pendingAction = nil
		m.state = m.previousState
	case huh.StateAborted:
		m.pendingAction = nil
		m.state = m.previousState
	}
	return tea.Batch(cmds...)
}

func (m *Model) confirm(question string, action func() tea.Cmd) tea.Cmd {
	m.confirmForm = &ConfirmationFormModel{}
	m.form = NewConfirmationForm(m.confirmForm, question)
	m.pendingAction = action
	if m.state != constants.StateConfirmation {
		m.previousState = m.state
	}
	m.state = constants.StateConfirmation
	return m.form.Init()
}

// handleHabitMessages handles messages from the habits component
func (m *Model) handleHabitMessages(msg tea.Msg) (bool, tea.Cmd) {
	store := m.store
	switch msg := msg.(type) {
	case habits.AddHabitMsg:
		m.habitForm = &HabitFormModel{
			Emoji:    m.settings.DefaultEmoji,
			Color:    m.settings.DefaultColor,
			Category: m.settings.DefaultCategory,
		}
		if m.filter.Category != "" && m.filter.Category != models.CategoryAll {
			m.habitForm.Category = m.filter.Category
		}
		m.form = NewHabitForm(m.habitForm)
		m.state = constants.StateAddHabit
		return true, m.form.Init()

	case habits.ToggleHabitMsg:
		day := m.loader.Calendar().Today()
		return true, func() tea.Msg {
			habit, err := store.GetHabit(msg.ID)
			if err != nil {
				return actionDoneMsg{err: err}
			}
			isDone, err := dashboard.Toggle(store, habit, day, "")
			if err != nil {
				return actionDoneMsg{err: err}
			}
			if isDone {
				return actionDoneMsg{status: "✓ " + habit.Name, checkPerfect: true}
			}
			return actionDoneMsg{status: "○ " + habit.Name}
		}

	case habits.ArchiveHabitMsg:
		return true, m.confirm(fmt.Sprintf("Archive %q?", msg.Name), func() tea.Cmd {
			return func() tea.Msg {
				return actionDoneMsg{status: "Archived " + msg.Name, err: store.ArchiveHabit(msg.ID)}
			}
		})

	case habits.DeleteHabitMsg:
		return true, m.confirm(fmt.Sprintf("Delete %q? Its history stays restorable.", msg.Name), func() tea.Cmd {
			return func() tea.Msg {
				return actionDoneMsg{status: "Deleted " + msg.Name, err: store.DeleteHabit(msg.ID)}
			}
		})

	case habits.MoveHabitMsg:
		return true, func() tea.Msg {
			return actionDoneMsg{err: dashboard.Move(store, msg.ID, msg.Delta)}
		}
	}
	return false, nil
}

func done(status string, err error, checkPerfect bool) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{status: status, err: err, checkPerfect: checkPerfect}
	}
}
