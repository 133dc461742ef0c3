package habits

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/dashboard"
	"github.com/julianstephens/habitus/internal/render"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

type ArchiveHabitMsg struct {
	ID   string
	Name string
}

type DeleteHabitMsg struct {
	ID   string
	Name string
}

type MoveHabitMsg struct {
	ID    string
	Delta int
}

type Item struct {
	Row dashboard.HabitRow
}

func (i Item) Title() string {
	check := "○"
	if i.Row.Done {
		check = "✓"
	}
	emoji := i.Row.Habit.Emoji
	if emoji == "" {
		emoji = constants.DefaultEmoji
	}
	return fmt.Sprintf("%s %s %s", check, emoji, i.Row.Habit.Name)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s %s  %s  %s",
		i.Row.Category.Icon, i.Row.Category.Label, render.Dots(i.Row.History), render.Streak(i.Row.Streak))
}

func (i Item) FilterValue() string { return i.Row.Habit.Name }

type KeyMap struct {
	Add      key.Binding
	Toggle   key.Binding
	Archive  key.Binding
	Delete   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "m"),
			key.WithHelp("space/m", "toggle"),
		),
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "move down"),
		),
	}
}

func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Archive, k.Delete, k.MoveUp, k.MoveDown}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	empty string
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)

	return Model{
		list:  l,
		keys:  DefaultKeyMap(),
		empty: "No habits yet.\n  Press 'a' to add one.",
	}
}

// SetRows replaces the list contents, keeping the cursor on the same habit
// when it is still visible.
func (m *Model) SetRows(rows []dashboard.HabitRow, filtered bool) {
	selected := m.SelectedID()

	items := make([]list.Item, len(rows))
	cursor := 0
	for i, r := range rows {
		items[i] = Item{Row: r}
		if r.Habit.ID == selected {
			cursor = i
		}
	}
	m.list.SetItems(items)
	m.list.Select(cursor)

	m.empty = "No habits yet.\n  Press 'a' to add one."
	if filtered {
		m.empty = "No habits match the current filter."
	}
}

// SelectedID returns the highlighted habit's ID, or "" when the list is empty.
func (m Model) SelectedID() string {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Row.Habit.ID
	}
	return ""
}

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Add) {
			return m, func() tea.Msg { return AddHabitMsg{} }
		}
		if i, ok := m.list.SelectedItem().(Item); ok {
			h := i.Row.Habit
			switch {
			case key.Matches(msg, m.keys.Toggle):
				return m, func() tea.Msg { return ToggleHabitMsg{ID: h.ID} }
			case key.Matches(msg, m.keys.Archive):
				return m, func() tea.Msg { return ArchiveHabitMsg{ID: h.ID, Name: h.Name} }
			case key.Matches(msg, m.keys.Delete):
				return m, func() tea.Msg { return DeleteHabitMsg{ID: h.ID, Name: h.Name} }
			case key.Matches(msg, m.keys.MoveUp):
				return m, func() tea.Msg { return MoveHabitMsg{ID: h.ID, Delta: -1} }
			case key.Matches(msg, m.keys.MoveDown):
				return m, func() tea.Msg { return MoveHabitMsg{ID: h.ID, Delta: 1} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  " + m.empty
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
