package metrics

// Quote is a motivational line shown on the home view.
type Quote struct {
	Text   string
	Author string
}

var quotes = []Quote{
	{"Small steps every day lead to big results.", "Unknown"},
	{"A habit is a cable; we weave a thread each day.", "H. Mann"},
	{"You don't rise to the level of your goals, you fall to the level of your systems.", "J. Clear"},
	{"Success is the sum of small efforts, repeated day in and day out.", "R. Collier"},
	{"We are what we repeatedly do. Excellence is not an act, but a habit.", "Aristotle"},
	{"The secret of your future is hidden in your daily routine.", "M. Murdock"},
	{"Motivation gets you going. Habit keeps you going.", "J. Rohn"},
	{"Don't watch the clock; do what it does. Keep going.", "S. Levenson"},
	{"Discipline is choosing between what you want now and what you want most.", "A. Lincoln"},
	{"The chains of habit are too light to be felt until they are too heavy to be broken.", "W. James"},
	{"It's not what we do once in a while that shapes our lives, but what we do consistently.", "T. Robbins"},
	{"Your habits will determine your future.", "J. Canfield"},
}

// DailyQuote picks a quote by day of year, so it changes once per day.
func DailyQuote(cal Calendar) Quote {
	return quotes[cal.Now().YearDay()%len(quotes)]
}
