package tempus

// Weekday is a day of the week. The zero value is Monday, matching the ISO
// 8601 ordering used throughout the package.
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var weekdayNamesShort = [7]string{
	"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
}

// Next returns the weekday after d.
func (d Weekday) Next() Weekday {
	return (d + 1) % 7
}

// Previous returns the weekday before d.
func (d Weekday) Previous() Weekday {
	return (d + 6) % 7
}

// NumberFromMonday returns the 1-indexed Monday-based number: Monday is 1,
// Sunday is 7.
func (d Weekday) NumberFromMonday() int {
	return int(d) + 1
}

// NumberFromSunday returns the 1-indexed Sunday-based number: Sunday is 1,
// Saturday is 7.
func (d Weekday) NumberFromSunday() int {
	return int(d+1)%7 + 1
}

// NumberDaysFromMonday returns the 0-indexed Monday-based number: Monday is 0.
func (d Weekday) NumberDaysFromMonday() int {
	return int(d)
}

// NumberDaysFromSunday returns the 0-indexed Sunday-based number: Sunday is 0.
func (d Weekday) NumberDaysFromSunday() int {
	return int(d+1) % 7
}

func (d Weekday) String() string {
	if d > Sunday {
		return "Weekday(invalid)"
	}
	return weekdayNames[d]
}

// ShortName returns the three-letter English abbreviation.
func (d Weekday) ShortName() string {
	return weekdayNamesShort[d]
}
