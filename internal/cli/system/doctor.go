package system

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitus/internal/backup"
	"github.com/julianstephens/habitus/internal/cli"
	"github.com/julianstephens/habitus/internal/keyring"
	"github.com/julianstephens/habitus/internal/storage"
	"github.com/julianstephens/habitus/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(*cli.Context) error
	needsDB  bool
	warnOnly bool
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Settings", run: checkSettings, needsDB: true},
	{name: "Habit integrity", run: checkHabitsIntegrity, needsDB: true},
	{name: "Completion integrity", run: checkCompletionsIntegrity, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "OS keyring", run: checkKeyring, warnOnly: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := true

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
			if c.name == checks[0].name {
				dbReachable = false
			}
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	st, err := ctx.Store.SchemaStatus()
	if err != nil {
		return err
	}
	if st.Current > st.Latest {
		return fmt.Errorf("database is at version %d but this build supports %d; upgrade habitus", st.Current, st.Latest)
	}
	if st.Pending() {
		return fmt.Errorf("database is at version %d, latest is %d; run 'habitus migrate'", st.Current, st.Latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if err := storage.ValidateSettings(settings); err != nil {
		return err
	}
	_, err = utils.CalendarFromSettings(settings)
	return err
}

func checkHabitsIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true, false)
	if err != nil {
		return err
	}

	var problems []string
	seen := make(map[string]string, len(habits))
	for _, h := range habits {
		if err := storage.ValidateHabit(h); err != nil {
			problems = append(problems, fmt.Sprintf("habit %s: %v", h.ID, err))
		}
		key := strings.ToLower(strings.TrimSpace(h.Name))
		if other, ok := seen[key]; ok {
			problems = append(problems, fmt.Sprintf("habits %s and %s share the name %q", other, h.ID, h.Name))
		}
		seen[key] = h.ID
	}
	return joinProblems(problems)
}

func checkCompletionsIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(habits))
	for _, h := range habits {
		known[h.ID] = true
	}

	logs, err := ctx.Store.GetAllCompletions()
	if err != nil {
		return err
	}

	var problems []string
	live := make(map[string]bool, len(logs))
	for _, l := range logs {
		if err := storage.ValidateCompletion(l); err != nil {
			problems = append(problems, fmt.Sprintf("log %s: %v", l.ID, err))
		}
		if !known[l.HabitID] {
			problems = append(problems, fmt.Sprintf("log %s references unknown habit %s", l.ID, l.HabitID))
		}
		if l.DeletedAt != nil {
			continue
		}
		key := l.HabitID + "/" + l.Day
		if live[key] {
			problems = append(problems, fmt.Sprintf("habit %s has more than one log on %s", l.HabitID, l.Day))
		}
		live[key] = true
	}
	return joinProblems(problems)
}

func checkBackupsPresent(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s; run 'habitus backup create'", mgr.Dir())
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if ctx.IsSQLite() {
		return nil
	}
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}

func joinProblems(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	const limit = 5
	more := ""
	if len(problems) > limit {
		more = fmt.Sprintf("\n   ... and %d more", len(problems)-limit)
		problems = problems[:limit]
	}
	return fmt.Errorf("%s%s", strings.Join(problems, "\n   "), more)
}
