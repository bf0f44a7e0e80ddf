package domain

// Fixed category orders used by the monthly and weekday groupings. Grouping
// and sorting code receives these explicitly rather than relying on locale or
// first-seen order.
var (
	MonthNames = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}

	WeekdayNames = []string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	}
)

var monthPositions = buildPositions(MonthNames)
var weekdayPositions = buildPositions(WeekdayNames)

func buildPositions(names []string) map[string]int {
	positions := make(map[string]int, len(names))
	for i, name := range names {
		positions[name] = i
	}
	return positions
}

// MonthPosition returns the 0-based calendar position of an English month name.
func MonthPosition(name string) (int, bool) {
	pos, ok := monthPositions[name]
	return pos, ok
}

// WeekdayPosition returns the 0-based Monday-first position of an English
// weekday name.
func WeekdayPosition(name string) (int, bool) {
	pos, ok := weekdayPositions[name]
	return pos, ok
}
