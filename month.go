package tempus

// Month is a month of the year, January being 1.
type Month uint8

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthNamesShort = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthLengths = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthFromNumber converts a 1-based month number into a Month.
func MonthFromNumber(n int) (Month, error) {
	if n < 1 || n > 12 {
		return 0, componentRange("month", 1, 12, int64(n), "")
	}
	return Month(n), nil
}

// Length returns the number of days in the month for the given year.
func (m Month) Length(year int) int {
	if m == February && IsLeapYear(year) {
		return 29
	}
	return int(monthLengths[m-1])
}

// Next returns the month after m, wrapping December to January.
func (m Month) Next() Month {
	if m == December {
		return January
	}
	return m + 1
}

// Previous returns the month before m, wrapping January to December.
func (m Month) Previous() Month {
	if m == January {
		return December
	}
	return m - 1
}

func (m Month) String() string {
	if m < January || m > December {
		return "Month(invalid)"
	}
	return monthNames[m-1]
}

// ShortName returns the three-letter English abbreviation.
func (m Month) ShortName() string {
	return monthNamesShort[m-1]
}
