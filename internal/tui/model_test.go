package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/dashboard"
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/models"
	"github.com/julianstephens/habitus/internal/storage/sqlite"
	"github.com/julianstephens/habitus/internal/tui/components/habits"
)

func setupTestModel(t *testing.T, names ...string) (Model, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	categories := []models.Category{models.CategoryHealth, models.CategoryLearn, models.CategoryMind}
	for i, name := range names {
		h := dashboard.NewHabit(settings, name, "", "", categories[i%len(categories)])
		if err := dashboard.AddHabit(store, h); err != nil {
			t.Fatalf("AddHabit(%s) failed: %v", name, err)
		}
	}

	loader := dashboard.NewLoader(store, metrics.NewCalendar(time.UTC), dashboard.WindowsFromSettings(settings))
	m := NewModel(store, loader, settings)
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = run(t, m, m.Init())
	return m, store
}

// drive feeds msg to the model and keeps executing the returned commands
// until the model settles.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 50 {
			t.Fatal("model did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		updated, cmd := m.Update(next)
		m = updated.(Model)
		queue = append(queue, collect(cmd)...)
	}
	return m
}

func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		m = drive(t, m, msg)
	}
	return m
}

// collect runs cmd and returns the messages that belong to this package or
// the habits component, dropping unrelated ones such as cursor blinks.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case dataLoadedMsg, actionDoneMsg,
		habits.AddHabitMsg, habits.ToggleHabitMsg, habits.ArchiveHabitMsg,
		habits.DeleteHabitMsg, habits.MoveHabitMsg:
		return []tea.Msg{msg}
	}
	return nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func rowNames(m Model) []string {
	names := make([]string, len(m.home.Rows))
	for i, r := range m.home.Rows {
		names[i] = r.Habit.Name
	}
	return names
}

func TestInitLoadsDashboard(t *testing.T) {
	m, _ := setupTestModel(t, "Run", "Read")

	if !m.loaded {
		t.Fatal("model not loaded after Init")
	}
	if m.home.TotalHabits != 2 || len(m.home.Rows) != 2 {
		t.Errorf("home = %d habits, %d rows; want 2, 2", m.home.TotalHabits, len(m.home.Rows))
	}
	if m.View() == "" {
		t.Error("View() is empty")
	}
}

func TestToggleCelebratesPerfectDay(t *testing.T) {
	m, store := setupTestModel(t, "Run", "Read")

	m = run(t, m, func() tea.Msg { return habits.ToggleHabitMsg{ID: m.home.Rows[0].Habit.ID} })
	if m.home.DoneToday != 1 {
		t.Fatalf("DoneToday = %d, want 1", m.home.DoneToday)
	}
	if m.status == "🎉 All habits done for today!" {
		t.Error("celebrated with one habit left")
	}

	m = run(t, m, func() tea.Msg { return habits.ToggleHabitMsg{ID: m.home.Rows[1].Habit.ID} })
	if !m.home.Progress.Complete() {
		t.Fatalf("progress = %+v, want complete", m.home.Progress)
	}
	if m.status != "🎉 All habits done for today!" {
		t.Errorf("status = %q, want celebration", m.status)
	}

	m = run(t, m, func() tea.Msg { return habits.ToggleHabitMsg{ID: m.home.Rows[1].Habit.ID} })
	if m.home.DoneToday != 1 {
		t.Errorf("DoneToday after untoggle = %d, want 1", m.home.DoneToday)
	}
	logs, err := store.GetCompletionsForDay(m.home.Today.String())
	if err != nil || len(logs) != 1 {
		t.Errorf("stored logs = %d (%v), want 1", len(logs), err)
	}
}

func TestSpaceTogglesSelectedHabit(t *testing.T) {
	m, _ := setupTestModel(t, "Run", "Read")

	m = drive(t, m, keyMsg(" "))
	if !m.home.Rows[0].Done {
		t.Errorf("first row not done after space: %+v", m.home.Rows[0])
	}
}

func TestCategoryCycle(t *testing.T) {
	m, _ := setupTestModel(t, "Run", "Read", "Meditate")

	m = drive(t, m, keyMsg("c"))
	if m.filter.Category != models.CategoryHealth {
		t.Fatalf("category = %q, want health", m.filter.Category)
	}
	if got := rowNames(m); len(got) != 1 || got[0] != "Run" {
		t.Errorf("rows = %v, want [Run]", got)
	}
	if m.home.TotalHabits != 3 {
		t.Errorf("TotalHabits = %d, counters should ignore the filter", m.home.TotalHabits)
	}

	for range metrics.Categories()[1:] {
		m = drive(t, m, keyMsg("c"))
	}
	if m.filter.Category != models.CategoryAll || len(m.home.Rows) != 3 {
		t.Errorf("after full cycle category = %q rows = %d", m.filter.Category, len(m.home.Rows))
	}
}

func TestSearch(t *testing.T) {
	m, _ := setupTestModel(t, "Run", "Read", "Meditate")

	updated, _ := m.Update(keyMsg("/"))
	m = updated.(Model)
	if m.state != constants.StateSearch {
		t.Fatalf("state = %v, want search", m.state)
	}
	for _, r := range "RE" {
		updated, _ = m.Update(keyMsg(string(r)))
		m = updated.(Model)
	}
	if got := rowNames(m); len(got) != 1 || got[0] != "Read" {
		t.Errorf("rows = %v, want [Read]", got)
	}

	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(Model)
	if m.state != constants.StateHabits || m.filter.Query != "RE" {
		t.Errorf("after enter state = %v query = %q", m.state, m.filter.Query)
	}

	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(Model)
	if m.filter.Query != "" || len(m.home.Rows) != 3 {
		t.Errorf("esc did not clear filter: %+v rows=%d", m.filter, len(m.home.Rows))
	}
}

func TestTabCyclesViews(t *testing.T) {
	m, _ := setupTestModel(t, "Run")

	want := []constants.SessionState{constants.StateCalendar, constants.StateProfile, constants.StateHabits}
	for _, w := range want {
		m = drive(t, m, keyMsg("tab"))
		if m.state != w {
			t.Fatalf("state = %v, want %v", m.state, w)
		}
	}
	m = drive(t, m, keyMsg("shift+tab"))
	if m.state != constants.StateProfile {
		t.Errorf("shift+tab state = %v, want profile", m.state)
	}
}

func TestArchiveAsksForConfirmation(t *testing.T) {
	m, store := setupTestModel(t, "Run", "Read")
	id := m.home.Rows[0].Habit.ID

	updated, _ := m.Update(habits.ArchiveHabitMsg{ID: id, Name: "Run"})
	m = updated.(Model)
	if m.state != constants.StateConfirmation || m.pendingAction == nil {
		t.Fatalf("state = %v pending = %v, want confirmation", m.state, m.pendingAction != nil)
	}
	if _, err := store.GetHabit(id); err != nil {
		t.Fatalf("habit changed before confirmation: %v", err)
	}

	m = run(t, m, m.pendingAction())
	h, err := store.GetHabit(id)
	if err != nil || h.ArchivedAt == nil {
		t.Errorf("habit not archived: %+v, %v", h, err)
	}
	if got := rowNames(m); len(got) != 1 || got[0] != "Read" {
		t.Errorf("rows = %v, want [Read]", got)
	}
}

func TestMoveHabit(t *testing.T) {
	m, _ := setupTestModel(t, "A", "B", "C")

	m = drive(t, m, keyMsg("J"))
	if got := rowNames(m); got[0] != "B" || got[1] != "A" {
		t.Errorf("rows after J = %v, want [B A C]", got)
	}
	if m.habitsModel.SelectedID() != m.home.Rows[1].Habit.ID {
		t.Error("cursor did not follow the moved habit")
	}
}
