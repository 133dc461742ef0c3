package storage

import (
	"errors"
	"testing"

	"github.com/julianstephens/habitus/internal/constants"
	apperr "github.com/julianstephens/habitus/internal/errors"
	"github.com/julianstephens/habitus/internal/models"
)

func validSettings() models.Settings {
	s := models.Settings{}
	models.ApplyDefaultSettings(&s)
	return s
}

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Settings)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*models.Settings) {}, wantErr: false},
		{name: "named zone", mutate: func(s *models.Settings) { s.Timezone = "Europe/Berlin" }, wantErr: false},
		{name: "unknown zone", mutate: func(s *models.Settings) { s.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "zero heatmap", mutate: func(s *models.Settings) { s.HeatmapDays = 0 }, wantErr: true},
		{name: "max window", mutate: func(s *models.Settings) { s.StatsDays = constants.MaxWindowDays }, wantErr: false},
		{name: "window too large", mutate: func(s *models.Settings) { s.HistoryDays = constants.MaxWindowDays + 1 }, wantErr: true},
		{name: "all is not a default category", mutate: func(s *models.Settings) { s.DefaultCategory = models.CategoryAll }, wantErr: true},
		{name: "short hex", mutate: func(s *models.Settings) { s.DefaultColor = "#abc" }, wantErr: false},
		{name: "bad hex", mutate: func(s *models.Settings) { s.DefaultColor = "#abcd" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)
			err := ValidateSettings(s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("error %v is not a validation error", err)
			}
		})
	}
}

func TestValidateHabitNameLength(t *testing.T) {
	name := ""
	for i := 0; i < constants.MaxHabitNameLength; i++ {
		name += "é"
	}
	if err := ValidateHabit(models.Habit{ID: "a", Name: name}); err != nil {
		t.Errorf("name of %d runes rejected: %v", constants.MaxHabitNameLength, err)
	}
	if err := ValidateHabit(models.Habit{ID: "a", Name: name + "x"}); err == nil {
		t.Error("overlong name accepted")
	}
}

func TestValidateCompletion(t *testing.T) {
	tests := []struct {
		name    string
		log     models.CompletionLog
		wantErr bool
	}{
		{name: "valid", log: models.CompletionLog{ID: "l", HabitID: "h", Day: "2024-02-29"}, wantErr: false},
		{name: "no habit", log: models.CompletionLog{ID: "l", Day: "2024-02-29"}, wantErr: true},
		{name: "impossible day", log: models.CompletionLog{ID: "l", HabitID: "h", Day: "2023-02-29"}, wantErr: true},
		{name: "unpadded day", log: models.CompletionLog{ID: "l", HabitID: "h", Day: "2024-3-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateCompletion(tt.log); (err != nil) != tt.wantErr {
				t.Errorf("ValidateCompletion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory(""); got != models.CategoryOther {
		t.Errorf("NormalizeCategory(\"\") = %q, want other", got)
	}
	if got := NormalizeCategory(models.CategoryWork); got != models.CategoryWork {
		t.Errorf("NormalizeCategory(work) = %q", got)
	}
}
