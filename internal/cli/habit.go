package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitus/internal/dashboard"
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/models"
	"github.com/julianstephens/habitus/internal/render"
	"github.com/julianstephens/habitus/internal/utils"
)

type HabitCmd struct {
	Add      HabitAddCmd      `cmd:"" help:"Add a new habit."`
	List     HabitListCmd     `cmd:"" help:"List habits."`
	Mark     HabitMarkCmd     `cmd:"" help:"Toggle a habit's completion for a day."`
	Today    HabitTodayCmd    `cmd:"" help:"Show today's habits and progress."`
	Log      HabitLogCmd      `cmd:"" help:"Show recent completion history."`
	Archive  HabitArchiveCmd  `cmd:"" help:"Archive a habit."`
	Delete   HabitDeleteCmd   `cmd:"" help:"Delete a habit (soft delete)."`
	Restore  HabitRestoreCmd  `cmd:"" help:"Restore a deleted habit."`
	Move     HabitMoveCmd     `cmd:"" help:"Change a habit's position in the list."`
	Category HabitCategoryCmd `cmd:"" help:"Set a habit's category."`
}

type HabitAddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Emoji    string `help:"Emoji shown next to the habit."`
	Color    string `help:"Colour as #RRGGBB."`
	Category string `short:"c" help:"Category (health, mind, learn, work, other)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	var category models.Category
	if c.Category != "" {
		if category, err = models.ParseCategory(c.Category); err != nil {
			return err
		}
	}

	habit := dashboard.NewHabit(settings, c.Name, c.Emoji, c.Color, category)
	if err := dashboard.AddHabit(ctx.Store, habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (%s)\n", habit.Emoji, habit.Name, metrics.LookupCategory(habit.Category).Label)
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
	Deleted  bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Archived, c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for i, habit := range habits {
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		} else if habit.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}
		info := metrics.LookupCategory(habit.Category)
		fmt.Printf("%2d. %s %s  %s %s%s\n", i+1, habit.Emoji, habit.Name, info.Icon, info.Label, status)
	}

	return nil
}

type HabitMarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Day as YYYY-MM-DD, 'today' or 'yesterday' (default: today)." default:""`
	Note string `help:"Optional note for this entry." default:""`
}

func (c *HabitMarkCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}
	if habit.ArchivedAt != nil {
		return fmt.Errorf("habit %q is archived", habit.Name)
	}

	cal, err := ctx.Calendar()
	if err != nil {
		return err
	}
	day, err := utils.ResolveDay(cal, c.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}

	done, err := dashboard.Toggle(ctx.Store, habit, day, c.Note)
	if err != nil {
		return err
	}
	if !done {
		fmt.Printf("Unmarked habit %q for %s\n", habit.Name, day)
		return nil
	}
	fmt.Printf("Marked habit %q for %s\n", habit.Name, day)

	if day != cal.Today() {
		return nil
	}
	habits, err := ctx.Store.GetAllHabits(false, false)
	if err != nil {
		return err
	}
	todayLogs, err := ctx.Store.GetCompletionsForDay(day.String())
	if err != nil {
		return err
	}
	if metrics.TodayProgress(habits, todayLogs).Complete() {
		fmt.Println("🎉 All habits done for today!")
	}
	return nil
}

type HabitTodayCmd struct {
	Category string `short:"c" help:"Only show habits in this category." default:"all"`
	Search   string `short:"s" help:"Only show habits whose name contains this text."`
}

func (c *HabitTodayCmd) Run(ctx *Context) error {
	category, err := models.ParseCategory(c.Category)
	if err != nil {
		return err
	}

	loader, data, err := ctx.Load()
	if err != nil {
		return err
	}
	if len(data.Habits) == 0 && len(data.Warnings) == 0 {
		fmt.Println("No habits yet. Add one with 'habitus habit add <name>'.")
		return nil
	}

	home := dashboard.BuildHome(loader.Calendar(), loader.Windows(), data, dashboard.Filter{Category: category, Query: c.Search})
	fmt.Println(render.Home(home))
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}
	cal, err := ctx.Calendar()
	if err != nil {
		return err
	}

	var habits []models.Habit
	if c.Habit != "" {
		habit, err := ctx.ResolveHabit(c.Habit)
		if err != nil {
			return err
		}
		habits = []models.Habit{habit}
	} else if habits, err = ctx.Store.GetAllHabits(false, false); err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	start, end := cal.DaysAgo(c.Days-1), cal.Today()
	fmt.Printf("Habit log (%s to %s):\n\n", start, end)

	width := 0
	for _, h := range habits {
		width = max(width, len([]rune(h.Name)))
	}

	for _, habit := range habits {
		logs, err := ctx.Store.GetCompletionsForHabit(habit.ID, start.String(), end.String())
		if err != nil {
			return err
		}
		set := metrics.PerHabitDaySet(logs)[habit.ID]
		history := metrics.MiniHistory(cal, set, c.Days)
		pad := strings.Repeat(" ", width-len([]rune(habit.Name)))
		fmt.Printf("%s %s%s  %s  %d/%d\n", habit.Emoji, habit.Name, pad, render.Dots(history), len(set), c.Days)
	}

	return nil
}

type HabitArchiveCmd struct {
	Name      string `arg:"" help:"Habit name to archive."`
	Unarchive bool   `help:"Unarchive the habit instead."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	if c.Unarchive {
		if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
			return err
		}
		fmt.Printf("Unarchived habit: %s\n", habit.Name)
	} else {
		if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
			return err
		}
		fmt.Printf("Archived habit: %s\n", habit.Name)
	}

	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	fmt.Println("(This is a soft delete. Use 'habitus habit restore' to undo)")
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return err
	}

	var habit *models.Habit
	for i := range habits {
		if strings.EqualFold(habits[i].Name, c.Name) && habits[i].DeletedAt != nil {
			habit = &habits[i]
			break
		}
	}

	if habit == nil {
		return fmt.Errorf("deleted habit %q not found", c.Name)
	}
	if _, err := ctx.Store.GetHabitByName(habit.Name); err == nil {
		return fmt.Errorf("a habit named %q already exists; rename it before restoring", habit.Name)
	}

	if err := ctx.Store.RestoreHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", habit.Name)
	return nil
}

type HabitMoveCmd struct {
	Name string `arg:"" help:"Habit name to move."`
	Up   bool   `help:"Move one place up." xor:"direction"`
	Down bool   `help:"Move one place down." xor:"direction"`
	To   int    `help:"Move to this 1-based position." xor:"direction"`
}

func (c *HabitMoveCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	switch {
	case c.Up:
		err = dashboard.Move(ctx.Store, habit.ID, -1)
	case c.Down:
		err = dashboard.Move(ctx.Store, habit.ID, 1)
	case c.To > 0:
		err = dashboard.MoveTo(ctx.Store, habit.ID, c.To-1)
	default:
		return fmt.Errorf("specify --up, --down or --to")
	}
	if err != nil {
		return err
	}

	fmt.Printf("Moved habit: %s\n", habit.Name)
	return nil
}

type HabitCategoryCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Category string `arg:"" help:"New category (health, mind, learn, work, other)."`
}

func (c *HabitCategoryCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}
	category, err := models.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	if category == models.CategoryAll {
		return fmt.Errorf("%q is a filter, not a category", c.Category)
	}

	habit.Category = category
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	info := metrics.LookupCategory(category)
	fmt.Printf("Set category of %s to %s %s\n", habit.Name, info.Icon, info.Label)
	return nil
}
