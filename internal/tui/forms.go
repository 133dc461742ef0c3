package tui

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/models"
)

type HabitFormModel struct {
	Name     string
	Emoji    string
	Color    string
	Category models.Category
}

type ConfirmationFormModel struct {
	Confirmed bool
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func categoryOptions() []huh.Option[models.Category] {
	opts := make([]huh.Option[models.Category], 0, len(models.AssignableCategories))
	for _, c := range models.AssignableCategories {
		info := metrics.LookupCategory(c)
		opts = append(opts, huh.NewOption(info.Icon+" "+info.Label, c))
	}
	return opts
}

// NewHabitForm creates the add-habit form. fm carries the defaults.
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					if utf8.RuneCountInString(s) > constants.MaxHabitNameLength {
						return fmt.Errorf("habit name must be at most %d characters", constants.MaxHabitNameLength)
					}
					return nil
				}),
			huh.NewInput().
				Title("Emoji").
				Value(&fm.Emoji),
			huh.NewInput().
				Title("Colour").
				Description("#RGB or #RRGGBB").
				Value(&fm.Color).
				Validate(func(s string) error {
					if s != "" && !hexColor.MatchString(s) {
						return fmt.Errorf("colour must look like #6C63FF")
					}
					return nil
				}),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&fm.Category),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewConfirmationForm asks a yes/no question, defaulting to no.
func NewConfirmationForm(fm *ConfirmationFormModel, question string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
