package metrics

import (
	"testing"

	"github.com/julianstephens/habitus/internal/models"
)

func TestComputeSnapshotEmpty(t *testing.T) {
	s := ComputeSnapshot(nil, nil, nil)
	if s.TotalHabits != 0 || s.TotalCompletions != 0 || s.ActiveDays != 0 || s.BestStreak != 0 {
		t.Errorf("ComputeSnapshot(nil) = %+v, want zeros", s)
	}
	if s.HadPerfectDay {
		t.Error("HadPerfectDay should be false without habits")
	}
	if s.TopHabit != nil {
		t.Errorf("TopHabit = %+v, want nil", s.TopHabit)
	}
}

func TestComputeSnapshotNoHabitsIsNeverPerfect(t *testing.T) {
	s := ComputeSnapshot(nil, logsOn("ghost", "2024-03-01"), nil)
	if s.HadPerfectDay {
		t.Error("HadPerfectDay should require at least one habit")
	}
}

func TestComputeSnapshotTopHabitTie(t *testing.T) {
	habits := []models.Habit{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	var logs []models.CompletionLog
	days := []Day{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05"}
	logs = append(logs, logsOn("b", days...)...)
	logs = append(logs, logsOn("a", days...)...)

	s := ComputeSnapshot(habits, logs, nil)
	if s.TopHabit == nil || s.TopHabit.ID != "a" {
		t.Fatalf("TopHabit = %+v, want first-listed habit a", s.TopHabit)
	}
	if s.TopHabitCount != 5 {
		t.Errorf("TopHabitCount = %d, want 5", s.TopHabitCount)
	}
}

func TestComputeSnapshot(t *testing.T) {
	habits := []models.Habit{
		{ID: "1", Name: "Run", Category: models.CategoryHealth},
		{ID: "2", Name: "Read", Category: models.CategoryLearn},
		{ID: "3", Name: "Walk", Category: models.CategoryHealth},
		{ID: "4", Name: "Misc"},
	}
	idx := IndexCategories(habits)

	var logs []models.CompletionLog
	logs = append(logs, logsOn("1", "2024-03-01", "2024-03-02", "2024-03-03", "2024-03-10")...)
	logs = append(logs, logsOn("2", "2024-03-02", "2024-03-10")...)
	logs = append(logs, logsOn("3", "2024-03-02")...)

	s := ComputeSnapshot(habits, logs, idx)

	if s.TotalHabits != 4 {
		t.Errorf("TotalHabits = %d, want 4", s.TotalHabits)
	}
	if s.TotalCompletions != 7 {
		t.Errorf("TotalCompletions = %d, want 7", s.TotalCompletions)
	}
	if s.ActiveDays != 4 {
		t.Errorf("ActiveDays = %d, want 4", s.ActiveDays)
	}
	if s.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3", s.BestStreak)
	}
	if s.HadPerfectDay {
		t.Error("HadPerfectDay = true, want false (max 3 of 4 habits in a day)")
	}
	if s.TopHabit == nil || s.TopHabit.ID != "1" || s.TopHabitCount != 4 {
		t.Errorf("TopHabit = %+v (%d), want habit 1 with 4", s.TopHabit, s.TopHabitCount)
	}

	want := []CategoryCount{
		{Category: models.CategoryHealth, Count: 2},
		{Category: models.CategoryLearn, Count: 1},
		{Category: models.CategoryOther, Count: 1},
	}
	if len(s.CategoryCounts) != len(want) {
		t.Fatalf("CategoryCounts = %+v, want %+v", s.CategoryCounts, want)
	}
	for i := range want {
		if s.CategoryCounts[i] != want[i] {
			t.Errorf("CategoryCounts[%d] = %+v, want %+v", i, s.CategoryCounts[i], want[i])
		}
	}
}

func TestEndToEndPerfectToday(t *testing.T) {
	cal := testCalendar(t)
	habits := []models.Habit{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}
	logs := append(logsOn("1", cal.Today()), logsOn("2", cal.Today())...)

	s := ComputeSnapshot(habits, logs, IndexCategories(habits))
	if !s.HadPerfectDay {
		t.Error("HadPerfectDay = false, want true")
	}
	if s.TotalHabits != 2 {
		t.Errorf("TotalHabits = %d, want 2", s.TotalHabits)
	}

	p := TodayProgress(habits, logs)
	if p.Done != 2 || p.Percent != 100 || !p.Complete() {
		t.Errorf("TodayProgress() = %+v, want 2 done at 100%%", p)
	}

	earned, _ := EvaluateBadges(s, DefaultBadges())
	var gotPerfect bool
	for _, b := range earned {
		if b.ID == "perfect" {
			gotPerfect = true
		}
	}
	if !gotPerfect {
		t.Error("perfect badge not earned")
	}
}
