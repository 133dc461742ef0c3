package metrics

// Badge is an achievement earned when its predicate holds for a Snapshot.
type Badge struct {
	ID          string
	Icon        string
	Label       string
	Description string
	Earned      func(Snapshot) bool
}

// LockedBadgeIcon replaces the icon of badges not yet earned.
const LockedBadgeIcon = "🔒"

// DefaultBadges returns the built-in badge rules in display order.
func DefaultBadges() []Badge {
	return []Badge{
		{ID: "first", Icon: "🌱", Label: "First Step", Description: "Complete your first habit",
			Earned: func(s Snapshot) bool { return s.TotalCompletions >= 1 }},
		{ID: "week", Icon: "🔥", Label: "Week Warrior", Description: "7-day streak",
			Earned: func(s Snapshot) bool { return s.BestStreak >= 7 }},
		{ID: "month", Icon: "🏆", Label: "Month Master", Description: "30-day streak",
			Earned: func(s Snapshot) bool { return s.BestStreak >= 30 }},
		{ID: "perfect", Icon: "⭐", Label: "Perfect Day", Description: "Complete all habits in one day",
			Earned: func(s Snapshot) bool { return s.HadPerfectDay }},
		{ID: "five", Icon: "🎯", Label: "Five Habits", Description: "Track 5 or more habits",
			Earned: func(s Snapshot) bool { return s.TotalHabits >= 5 }},
		{ID: "active30", Icon: "📅", Label: "Active Month", Description: "30 active days total",
			Earned: func(s Snapshot) bool { return s.ActiveDays >= 30 }},
		{ID: "hundred", Icon: "💯", Label: "Century", Description: "100 total completions",
			Earned: func(s Snapshot) bool { return s.TotalCompletions >= 100 }},
		{ID: "streak3", Icon: "✨", Label: "On Fire", Description: "3-day streak",
			Earned: func(s Snapshot) bool { return s.BestStreak >= 3 }},
	}
}

// EvaluateBadges partitions rules into earned and locked, each in rule order.
// Nothing is remembered between calls, so a badge is locked again if the data
// that earned it is deleted.
func EvaluateBadges(s Snapshot, rules []Badge) (earned, locked []Badge) {
	earned = make([]Badge, 0, len(rules))
	locked = make([]Badge, 0, len(rules))
	for _, b := range rules {
		if b.Earned != nil && b.Earned(s) {
			earned = append(earned, b)
		} else {
			locked = append(locked, b)
		}
	}
	return earned, locked
}
