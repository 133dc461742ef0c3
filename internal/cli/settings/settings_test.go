package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitus/internal/cli"
	"github.com/julianstephens/habitus/internal/models"
	"github.com/julianstephens/habitus/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store}
}

func TestSettingsShow(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&SettingsShowCmd{}).Run(ctx); err != nil {
		t.Errorf("show failed: %v", err)
	}
}

func TestSettingsSet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
		check   func(models.Settings) bool
	}{
		{key: "timezone", value: "Europe/Berlin", check: func(s models.Settings) bool { return s.Timezone == "Europe/Berlin" }},
		{key: "default_category", value: " Mind ", check: func(s models.Settings) bool { return s.DefaultCategory == models.CategoryMind }},
		{key: "default_color", value: "#ff8800", check: func(s models.Settings) bool { return s.DefaultColor == "#ff8800" }},
		{key: "HEATMAP_DAYS", value: "120", check: func(s models.Settings) bool { return s.HeatmapDays == 120 }},
		{key: "stats_days", value: "30", check: func(s models.Settings) bool { return s.StatsDays == 30 }},
		{key: "timezone", value: "Mars/Olympus", wantErr: true},
		{key: "default_category", value: "all", wantErr: true},
		{key: "default_category", value: "sports", wantErr: true},
		{key: "default_color", value: "orange", wantErr: true},
		{key: "history_days", value: "seven", wantErr: true},
		{key: "history_days", value: "0", wantErr: true},
		{key: "stats_days", value: "400", wantErr: true},
		{key: "user_id", value: "someone", wantErr: true},
		{key: "theme", value: "dark", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			ctx := setupTestDB(t)
			before, _ := ctx.Store.GetSettings()

			err := (&SettingsSetCmd{Key: tt.key, Value: tt.value}).Run(ctx)
			after, getErr := ctx.Store.GetSettings()
			if getErr != nil {
				t.Fatalf("GetSettings failed: %v", getErr)
			}

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if after != before {
					t.Errorf("settings changed on error: %+v", after)
				}
				return
			}
			if err != nil {
				t.Fatalf("set failed: %v", err)
			}
			if !tt.check(after) {
				t.Errorf("settings after set = %+v", after)
			}
			if after.UserID != before.UserID {
				t.Errorf("UserID changed from %q to %q", before.UserID, after.UserID)
			}
		})
	}
}
