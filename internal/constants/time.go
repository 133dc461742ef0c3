package constants

const (
	// DateFormat is the day identifier layout used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MillisPerDay is the length of a calendar day between two midnight instants
	MillisPerDay = 86_400_000
)
