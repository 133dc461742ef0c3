package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/dashboard"
	"github.com/julianstephens/habitus/internal/models"
	"github.com/julianstephens/habitus/internal/tui/components/habits"
)

// Store is the part of storage.Provider the TUI mutates through.
type Store interface {
	dashboard.Writer
	GetHabit(id string) (models.Habit, error)
	ArchiveHabit(id string) error
	DeleteHabit(id string) error
}

// dataLoadedMsg carries the result of one dashboard load.
type dataLoadedMsg struct {
	data dashboard.Data
	err  error
}

// actionDoneMsg reports a finished mutation. The dashboard reloads after it.
type actionDoneMsg struct {
	status       string
	err          error
	checkPerfect bool
}

type Model struct {
	store    Store
	loader   *dashboard.Loader
	settings models.Settings

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	habitsModel   habits.Model
	search        textinput.Model

	filter  dashboard.Filter
	data    dashboard.Data
	home    dashboard.Home
	profile dashboard.Profile
	loaded  bool

	form          *huh.Form
	habitForm     *HabitFormModel
	confirmForm   *ConfirmationFormModel
	pendingAction func() tea.Cmd

	celebrate bool
	status    string
	err       error
	quitting  bool
	width     int
	height    int
}

func NewModel(store Store, loader *dashboard.Loader, settings models.Settings) Model {
	models.ApplyDefaultSettings(&settings)

	search := textinput.New()
	search.Placeholder = "search habits"
	search.Prompt = "/ "
	search.CharLimit = constants.MaxHabitNameLength

	return Model{
		store:       store,
		loader:      loader,
		settings:    settings,
		state:       constants.StateHabits,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitsModel: habits.New(0, 0),
		search:      search,
		filter:      dashboard.Filter{Category: models.CategoryAll},
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		data, err := loader.Load(context.Background())
		return dataLoadedMsg{data: data, err: err}
	}
}

// refresh rebuilds the views from the last load and the current filter.
func (m *Model) refresh() {
	cal := m.loader.Calendar()
	m.home = dashboard.BuildHome(cal, m.loader.Windows(), m.data, m.filter)
	m.profile = dashboard.BuildProfile(m.data)
	m.habitsModel.SetRows(m.home.Rows, m.filterActive())
}

func (m Model) filterActive() bool {
	return (m.filter.Category != "" && m.filter.Category != models.CategoryAll) || m.filter.Query != ""
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == constants.StateHabits {
		hk := m.habitsModel.Keys()
		keys = append(keys, hk.Add, hk.Toggle, m.keys.Category, m.keys.Search)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
	if m.state != constants.StateHabits {
		return [][]key.Binding{global}
	}
	filters := []key.Binding{m.keys.Category, m.keys.Search, m.keys.Clear}
	return [][]key.Binding{global, m.habitsModel.Keys().Bindings(), filters}
}
