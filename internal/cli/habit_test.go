package cli

import (
	"encoding/json"
	"io"
	"os"
	"testing"

	apperr "github.com/julianstephens/habitus/internal/errors"
	"github.com/julianstephens/habitus/internal/models"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	runErr := fn()
	os.Stdout = orig
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	return string(out), runErr
}

func addHabit(t *testing.T, ctx *Context, name, category string) models.Habit {
	t.Helper()
	if err := (&HabitAddCmd{Name: name, Category: category}).Run(ctx); err != nil {
		t.Fatalf("habit add %s failed: %v", name, err)
	}
	h, err := ctx.Store.GetHabitByName(name)
	if err != nil {
		t.Fatalf("GetHabitByName(%s) failed: %v", name, err)
	}
	return h
}

func TestHabitAdd(t *testing.T) {
	ctx := setupTestContext(t)

	h := addHabit(t, ctx, "Morning run", "health")
	if h.Category != models.CategoryHealth || h.Emoji == "" || h.Color == "" {
		t.Errorf("added habit = %+v", h)
	}

	err := (&HabitAddCmd{Name: "morning RUN"}).Run(ctx)
	if !apperr.Is(err, apperr.ErrConflict) {
		t.Errorf("duplicate add error = %v, want conflict", err)
	}

	if err := (&HabitAddCmd{Name: "Yoga", Category: "sports"}).Run(ctx); err == nil {
		t.Error("expected error for unknown category")
	}
	if err := (&HabitAddCmd{Name: "Yoga", Color: "blue"}).Run(ctx); !apperr.Is(err, apperr.ErrValidation) {
		t.Errorf("bad colour error = %v, want validation", err)
	}
}

func TestHabitMarkToggles(t *testing.T) {
	ctx := setupTestContext(t)
	h := addHabit(t, ctx, "Read", "learn")

	cal, err := ctx.Calendar()
	if err != nil {
		t.Fatalf("Calendar() failed: %v", err)
	}

	mark := &HabitMarkCmd{Name: "read", Note: "ch. 2"}
	if err := mark.Run(ctx); err != nil {
		t.Fatalf("first mark failed: %v", err)
	}
	if _, err := ctx.Store.GetCompletion(h.ID, cal.Today().String()); err != nil {
		t.Fatalf("completion missing after mark: %v", err)
	}

	if err := mark.Run(ctx); err != nil {
		t.Fatalf("second mark failed: %v", err)
	}
	if _, err := ctx.Store.GetCompletion(h.ID, cal.Today().String()); !apperr.Is(err, apperr.ErrNotFound) {
		t.Errorf("completion still present after unmark: %v", err)
	}

	if err := (&HabitMarkCmd{Name: "Read", Date: "yesterday"}).Run(ctx); err != nil {
		t.Fatalf("mark yesterday failed: %v", err)
	}
	if _, err := ctx.Store.GetCompletion(h.ID, cal.DaysAgo(1).String()); err != nil {
		t.Errorf("yesterday's completion missing: %v", err)
	}

	if err := (&HabitMarkCmd{Name: "Read", Date: "15/03/2024"}).Run(ctx); err == nil {
		t.Error("expected error for malformed date")
	}
	if err := (&HabitMarkCmd{Name: "Nope"}).Run(ctx); !apperr.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown habit error = %v, want not found", err)
	}
}

func TestHabitMarkArchivedRefused(t *testing.T) {
	ctx := setupTestContext(t)
	addHabit(t, ctx, "Read", "")

	if err := (&HabitArchiveCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("archive failed: %v", err)
	}
	if err := (&HabitMarkCmd{Name: "Read"}).Run(ctx); err == nil {
		t.Error("expected error marking an archived habit")
	}
	if err := (&HabitArchiveCmd{Name: "Read", Unarchive: true}).Run(ctx); err != nil {
		t.Fatalf("unarchive failed: %v", err)
	}
	if err := (&HabitMarkCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Errorf("mark after unarchive failed: %v", err)
	}
}

func TestHabitDeleteRestore(t *testing.T) {
	ctx := setupTestContext(t)
	addHabit(t, ctx, "Journal", "mind")

	if err := (&HabitDeleteCmd{Name: "Journal"}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := ctx.Store.GetHabitByName("Journal"); !apperr.Is(err, apperr.ErrNotFound) {
		t.Fatalf("deleted habit still live: %v", err)
	}
	if err := (&HabitRestoreCmd{Name: "journal"}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if _, err := ctx.Store.GetHabitByName("Journal"); err != nil {
		t.Errorf("restored habit missing: %v", err)
	}
	if err := (&HabitRestoreCmd{Name: "Journal"}).Run(ctx); err == nil {
		t.Error("expected error restoring a habit that is not deleted")
	}
}

func TestHabitMoveAndCategory(t *testing.T) {
	ctx := setupTestContext(t)
	for _, name := range []string{"A", "B", "C"} {
		addHabit(t, ctx, name, "")
	}

	tests := []struct {
		cmd  HabitMoveCmd
		want string
	}{
		{cmd: HabitMoveCmd{Name: "C", Up: true}, want: "ACB"},
		{cmd: HabitMoveCmd{Name: "A", Down: true}, want: "CAB"},
		{cmd: HabitMoveCmd{Name: "B", To: 1}, want: "BCA"},
		{cmd: HabitMoveCmd{Name: "B", To: 99}, want: "CAB"},
	}
	for _, tt := range tests {
		if err := tt.cmd.Run(ctx); err != nil {
			t.Fatalf("move %+v failed: %v", tt.cmd, err)
		}
		habits, _ := ctx.Store.GetAllHabits(false, false)
		got := ""
		for _, h := range habits {
			got += h.Name
		}
		if got != tt.want {
			t.Errorf("after %+v order = %s, want %s", tt.cmd, got, tt.want)
		}
	}
	if err := (&HabitMoveCmd{Name: "A"}).Run(ctx); err == nil {
		t.Error("expected error without a direction")
	}

	if err := (&HabitCategoryCmd{Name: "A", Category: "work"}).Run(ctx); err != nil {
		t.Fatalf("category failed: %v", err)
	}
	h, _ := ctx.Store.GetHabitByName("A")
	if h.Category != models.CategoryWork {
		t.Errorf("category = %q, want work", h.Category)
	}
	if err := (&HabitCategoryCmd{Name: "A", Category: "all"}).Run(ctx); err == nil {
		t.Error("expected error assigning the all filter")
	}
}

func TestHabitViewsRun(t *testing.T) {
	ctx := setupTestContext(t)
	addHabit(t, ctx, "Run", "health")
	addHabit(t, ctx, "Read", "learn")
	if err := (&HabitMarkCmd{Name: "Run"}).Run(ctx); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	cmds := map[string]interface{ Run(*Context) error }{
		"list":         &HabitListCmd{Archived: true, Deleted: true},
		"today":        &HabitTodayCmd{Category: "all"},
		"today health": &HabitTodayCmd{Category: "health", Search: "ru"},
		"log":          &HabitLogCmd{Days: 7},
		"log habit":    &HabitLogCmd{Days: 7, Habit: "Read"},
		"stats":        &StatsCmd{},
		"calendar":     &CalendarCmd{Days: 30, Columns: 7},
		"profile":      &ProfileCmd{},
		"badges":       &BadgesCmd{},
	}
	for name, cmd := range cmds {
		t.Run(name, func(t *testing.T) {
			if _, err := captureStdout(t, func() error { return cmd.Run(ctx) }); err != nil {
				t.Errorf("%s failed: %v", name, err)
			}
		})
	}

	if err := (&HabitTodayCmd{Category: "sports"}).Run(ctx); err == nil {
		t.Error("expected error for unknown category filter")
	}
	if err := (&HabitLogCmd{Days: 0}).Run(ctx); err == nil {
		t.Error("expected error for zero days")
	}
	if err := (&CalendarCmd{Days: 1000}).Run(ctx); err == nil {
		t.Error("expected error for oversized window")
	}
}

func TestProfileJSON(t *testing.T) {
	ctx := setupTestContext(t)
	addHabit(t, ctx, "Run", "health")
	if err := (&HabitMarkCmd{Name: "Run"}).Run(ctx); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	out, err := captureStdout(t, func() error { return (&ProfileCmd{JSON: true}).Run(ctx) })
	if err != nil {
		t.Fatalf("profile --json failed: %v", err)
	}

	var got profileJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.TotalHabits != 1 || got.TotalCompletions != 1 || got.BestStreak != 1 || !got.HadPerfectDay {
		t.Errorf("profile = %+v", got)
	}
	if got.TopHabit != "Run" {
		t.Errorf("TopHabit = %q, want Run", got.TopHabit)
	}

	earned := map[string]bool{}
	for _, b := range got.Badges {
		earned[b.ID] = b.Earned
	}
	if !earned["first"] || !earned["perfect"] || earned["week"] {
		t.Errorf("badges = %+v", got.Badges)
	}
}
