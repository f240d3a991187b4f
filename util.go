package tempus

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar: divisible by 4, except century years not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// WeeksInYear returns the number of ISO 8601 weeks in year: 52 or 53.
// A year has 53 weeks exactly when January 1 is a Thursday, or a Wednesday
// in a leap year.
func WeeksInYear(year int) int {
	switch dateFromOrdinalUnchecked(year, 1).Weekday() {
	case Thursday:
		return 53
	case Wednesday:
		if IsLeapYear(year) {
			return 53
		}
		return 52
	default:
		return 52
	}
}

// daysCumulative[leap][m-1] is the number of days before month m begins.
var daysCumulative = [2][12]int{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
}

// divFloor is floor division: the quotient is rounded toward negative
// infinity rather than toward zero, which matters for negative years.
func divFloor(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
