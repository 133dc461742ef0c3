package settings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/habitus/internal/cli"
	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/models"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" default:"1" help:"Show current settings."`
	Set  SettingsSetCmd  `cmd:"" help:"Change a setting."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	fmt.Println("Current Settings:")
	fmt.Printf("  Timezone:          %s\n", settings.Timezone)
	fmt.Printf("  Default Category:  %s\n", settings.DefaultCategory)
	fmt.Printf("  Default Emoji:     %s\n", settings.DefaultEmoji)
	fmt.Printf("  Default Color:     %s\n", settings.DefaultColor)
	fmt.Println("\nWindows:")
	fmt.Printf("  Heatmap Days:      %d\n", settings.HeatmapDays)
	fmt.Printf("  History Days:      %d\n", settings.HistoryDays)
	fmt.Printf("  Stats Days:        %d\n", settings.StatsDays)
	return nil
}

// settableKeys excludes user_id, which is assigned at init.
var settableKeys = map[string]bool{
	constants.SettingTimezone:        true,
	constants.SettingDefaultCategory: true,
	constants.SettingDefaultEmoji:    true,
	constants.SettingDefaultColor:    true,
	constants.SettingHeatmapDays:     true,
	constants.SettingHistoryDays:     true,
	constants.SettingStatsDays:       true,
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key (timezone, default_category, default_emoji, default_color, heatmap_days, history_days, stats_days)."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	key := strings.ToLower(strings.TrimSpace(c.Key))
	if !settableKeys[key] {
		keys := make([]string, 0, len(settableKeys))
		for k := range settableKeys {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown setting %q (valid: %s)", c.Key, strings.Join(keys, ", "))
	}

	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	value := strings.TrimSpace(c.Value)
	if key == constants.SettingDefaultCategory {
		category, err := models.ParseCategory(value)
		if err != nil {
			return err
		}
		value = string(category)
	}

	data := models.SettingsToMap(settings)
	data[key] = value
	updated, err := models.MapToSettings(data)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := ctx.Store.SaveSettings(updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
