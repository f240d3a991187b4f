package tempus

import (
	"fmt"

	"fortio.org/safecast"
)

// Year limits of the supported proleptic Gregorian range.
const (
	MinYear = -9999
	MaxYear = 9999
)

// Date is a date in the proleptic Gregorian calendar.
//
// The year, the day of the year and a cached leap-year flag are bit-packed
// into a single int32:
//
//	|  21 bits |    1 bit     |  9 bits  |
//	|   year   | is leap year |  ordinal |
//
// The ordinal is never zero, so the packed value is never zero either and the
// zero Date is deliberately not a valid value; all Dates must come from a
// constructor. Packing is order-preserving: comparing packed values compares
// dates chronologically, which is what Compare does. Date is comparable and
// usable as a map key.
type Date struct {
	v int32
}

var (
	// DateMin is the earliest representable Date, January 1 of MinYear.
	DateMin = dateFromOrdinalUnchecked(MinYear, 1)
	// DateMax is the latest representable Date, December 31 of MaxYear.
	DateMax = dateFromOrdinalUnchecked(MaxYear, DaysInYear(MaxYear))
	// UnixEpochDate is 1970-01-01.
	UnixEpochDate = dateFromOrdinalUnchecked(1970, 1)
)

var (
	minJulianDay = DateMin.JulianDay()
	maxJulianDay = DateMax.JulianDay()
)

// dateFromParts packs the fields without validation. Callers must guarantee
// that ordinal is non-zero, at most DaysInYear(year), and that leap matches
// IsLeapYear(year).
func dateFromParts(year int, leap bool, ordinal int) Date {
	return Date{v: int32(year)<<10 | int32(boolToInt(leap))<<9 | int32(ordinal)}
}

// dateFromOrdinalUnchecked is the trusted fast path shared by constructors
// that have already validated their inputs.
func dateFromOrdinalUnchecked(year, ordinal int) Date {
	return dateFromParts(year, IsLeapYear(year), ordinal)
}

// NewDate builds a Date from a calendar year, month and day.
func NewDate(year int, month Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, yearRange(year)
	}
	if month < January || month > December {
		return Date{}, componentRange("month", 1, 12, int64(month), "")
	}
	if day < 1 || day > month.Length(year) {
		return Date{}, componentRange("day", 1, int64(month.Length(year)), int64(day),
			"for the given month and year")
	}
	leap := IsLeapYear(year)
	ordinal := daysCumulative[boolToInt(leap)][month-1] + day
	return dateFromParts(year, leap, ordinal), nil
}

// DateFromOrdinalDate builds a Date from a year and a 1-based day of year.
func DateFromOrdinalDate(year, ordinal int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, yearRange(year)
	}
	if ordinal < 1 || ordinal > DaysInYear(year) {
		return Date{}, componentRange("ordinal", 1, int64(DaysInYear(year)), int64(ordinal),
			"for the given year")
	}
	return dateFromOrdinalUnchecked(year, ordinal), nil
}

// DateFromISOWeekDate builds a Date from an ISO 8601 year, week and weekday.
// Note that the ISO year may differ from the calendar year of the result for
// dates near January 1.
func DateFromISOWeekDate(year, week int, weekday Weekday) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, yearRange(year)
	}
	if week < 1 || week > WeeksInYear(year) {
		return Date{}, componentRange("week", 1, int64(WeeksInYear(year)), int64(week),
			"for the given year")
	}

	// Day-of-week offset of January 4, derived from the day count since the
	// epoch. Floor division keeps the formula exact for negative years.
	adjYear := year - 1
	raw := 365*adjYear + divFloor(adjYear, 4) - divFloor(adjYear, 100) + divFloor(adjYear, 400)
	var jan4 int
	switch raw % 7 {
	case -6, 1:
		jan4 = 8
	case -5, 2:
		jan4 = 9
	case -4, 3:
		jan4 = 10
	case -3, 4:
		jan4 = 4
	case -2, 5:
		jan4 = 5
	case -1, 6:
		jan4 = 6
	default:
		jan4 = 7
	}

	ordinal := week*7 + weekday.NumberFromMonday() - jan4
	switch {
	case ordinal <= 0:
		// Week 1 can start in the previous calendar year.
		return dateFromOrdinalUnchecked(year-1, ordinal+DaysInYear(year-1)), nil
	case ordinal > DaysInYear(year):
		// The last week can spill into the next calendar year.
		return dateFromOrdinalUnchecked(year+1, ordinal-DaysInYear(year)), nil
	default:
		return dateFromOrdinalUnchecked(year, ordinal), nil
	}
}

// DateFromJulianDay builds a Date from a Julian day number.
func DateFromJulianDay(julianDay int) (Date, error) {
	if julianDay < minJulianDay || julianDay > maxJulianDay {
		return Date{}, componentRange("julian_day", int64(minJulianDay), int64(maxJulianDay),
			int64(julianDay), "")
	}
	return dateFromJulianDayUnchecked(julianDay), nil
}

// dateFromJulianDayUnchecked recovers year and ordinal from a Julian day
// number using Peter Baum's closed-form algorithm: shift to a non-negative
// epoch, strip whole 400-year (146097-day) cycles, then recover the year via
// a fixed-point multiply instead of a division loop.
func dateFromJulianDayUnchecked(julianDay int) Date {
	const (
		s = 2_500
		k = 719_468 + 146_097*s
		l = 400 * s
	)

	n := uint32(julianDay - 2_440_588 + k)

	n1 := 4*n + 3
	c := n1 / 146_097
	nc := n1 % 146_097 / 4

	n2 := 4*nc + 3
	p2 := 2_939_745 * uint64(n2)
	z := uint32(p2 >> 32)
	ny := uint32(p2) / 2_939_745 / 4
	y := 100*c + z

	marchBased := ny >= 306
	year := int(int32(y)) - l + boolToInt(marchBased)

	leap := IsLeapYear(year)
	var ordinal int
	if marchBased {
		ordinal = int(ny) - 305
	} else {
		ordinal = int(ny) + 60 + boolToInt(leap)
	}

	return dateFromParts(year, leap, ordinal)
}

// isInLeapYear reads the cached leap flag.
func (d Date) isInLeapYear() bool {
	return (d.v>>9)&1 == 1
}

// Year returns the calendar year.
func (d Date) Year() int {
	return int(d.v >> 10)
}

// Ordinal returns the 1-based day of the year.
func (d Date) Ordinal() int {
	return int(d.v & 0x1FF)
}

// Month returns the month of the year.
func (d Date) Month() Month {
	month, _ := d.monthDay()
	return month
}

// Day returns the day of the month, in 1..=31.
func (d Date) Day() int {
	_, day := d.monthDay()
	return day
}

// monthDay decomposes the leap-adjusted ordinal with a fixed-point
// multiply-shift approximation of division by the average month length,
// exact for all twelve months.
func (d Date) monthDay() (Month, int) {
	ordinal := d.Ordinal()
	janFebLen := 59 + boolToInt(d.isInLeapYear())

	monthAdj, ordinalAdj := 0, 0
	if ordinal > janFebLen {
		monthAdj, ordinalAdj = 2, janFebLen
	}

	ordinal -= ordinalAdj
	month := (ordinal*268 + 8031) >> 13
	daysInPrecedingMonths := (month*3917 - 3866) >> 7
	return Month(month + monthAdj), ordinal - daysInPrecedingMonths
}

// CalendarDate returns the year, month and day.
func (d Date) CalendarDate() (year int, month Month, day int) {
	month, day = d.monthDay()
	return d.Year(), month, day
}

// OrdinalDate returns the year and the 1-based day of the year.
func (d Date) OrdinalDate() (year, ordinal int) {
	return d.Year(), d.Ordinal()
}

// ISOWeekDate returns the ISO 8601 year, week number and weekday.
func (d Date) ISOWeekDate() (year, week int, weekday Weekday) {
	year, ordinal := d.OrdinalDate()
	weekday = d.Weekday()

	switch week = (ordinal + 10 - weekday.NumberFromMonday()) / 7; {
	case week == 0:
		return year - 1, WeeksInYear(year - 1), weekday
	case week == 53 && WeeksInYear(year) == 52:
		return year + 1, 1, weekday
	default:
		return year, week, weekday
	}
}

// ISOWeek returns the ISO 8601 week number, in 1..=53.
func (d Date) ISOWeek() int {
	_, week, _ := d.ISOWeekDate()
	return week
}

// SundayBasedWeek returns the week number where week 1 begins on the year's
// first Sunday, in 0..=53.
func (d Date) SundayBasedWeek() int {
	return (d.Ordinal() - d.Weekday().NumberDaysFromSunday() + 6) / 7
}

// MondayBasedWeek returns the week number where week 1 begins on the year's
// first Monday, in 0..=53.
func (d Date) MondayBasedWeek() int {
	return (d.Ordinal() - d.Weekday().NumberDaysFromMonday() + 6) / 7
}

// Weekday returns the day of the week.
func (d Date) Weekday() Weekday {
	switch d.JulianDay() % 7 {
	case -6, 1:
		return Tuesday
	case -5, 2:
		return Wednesday
	case -4, 3:
		return Thursday
	case -3, 4:
		return Friday
	case -2, 5:
		return Saturday
	case -1, 6:
		return Sunday
	default:
		return Monday
	}
}

// JulianDay returns the Julian day number of the date.
func (d Date) JulianDay() int {
	year, ordinal := d.OrdinalDate()

	// The closed form needs a non-negative year; shift up and compensate in
	// the final constant.
	adjYear := year + 999_999
	century := adjYear / 100

	daysBeforeYear := int(1461*int64(adjYear)/4) - century + century/4
	return daysBeforeYear + ordinal - 363_521_075
}

// NextDay returns the following date, or ok=false at DateMax.
func (d Date) NextDay() (Date, bool) {
	if d.Ordinal() == 366 || (d.Ordinal() == 365 && !d.isInLeapYear()) {
		if d == DateMax {
			return Date{}, false
		}
		return dateFromOrdinalUnchecked(d.Year()+1, 1), true
	}
	// Incrementing the packed value increments the ordinal in place.
	return Date{v: d.v + 1}, true
}

// PreviousDay returns the preceding date, or ok=false at DateMin.
func (d Date) PreviousDay() (Date, bool) {
	if d.Ordinal() != 1 {
		return Date{v: d.v - 1}, true
	}
	if d == DateMin {
		return Date{}, false
	}
	return dateFromOrdinalUnchecked(d.Year()-1, DaysInYear(d.Year()-1)), true
}

// CheckedAdd returns d shifted by the whole days of dur, or ok=false on
// overflow. Sub-day components of dur are ignored.
func (d Date) CheckedAdd(dur Duration) (Date, bool) {
	wholeDays, err := safecast.Conv[int32](dur.WholeDays())
	if err != nil {
		return Date{}, false
	}
	julianDay := int64(d.JulianDay()) + int64(wholeDays)
	if julianDay < int64(minJulianDay) || julianDay > int64(maxJulianDay) {
		return Date{}, false
	}
	return dateFromJulianDayUnchecked(int(julianDay)), true
}

// CheckedSub returns d shifted back by the whole days of dur, or ok=false on
// overflow. Sub-day components of dur are ignored.
func (d Date) CheckedSub(dur Duration) (Date, bool) {
	wholeDays, err := safecast.Conv[int32](dur.WholeDays())
	if err != nil {
		return Date{}, false
	}
	julianDay := int64(d.JulianDay()) - int64(wholeDays)
	if julianDay < int64(minJulianDay) || julianDay > int64(maxJulianDay) {
		return Date{}, false
	}
	return dateFromJulianDayUnchecked(int(julianDay)), true
}

// SaturatingAdd is CheckedAdd clamping to DateMin/DateMax instead of failing.
func (d Date) SaturatingAdd(dur Duration) Date {
	if res, ok := d.CheckedAdd(dur); ok {
		return res
	}
	if dur.IsNegative() {
		return DateMin
	}
	return DateMax
}

// SaturatingSub is CheckedSub clamping to DateMin/DateMax instead of failing.
func (d Date) SaturatingSub(dur Duration) Date {
	if res, ok := d.CheckedSub(dur); ok {
		return res
	}
	if dur.IsNegative() {
		return DateMax
	}
	return DateMin
}

// Add returns d shifted by the whole days of dur. It panics on overflow;
// use CheckedAdd when the duration is not known to be in range.
func (d Date) Add(dur Duration) Date {
	res, ok := d.CheckedAdd(dur)
	if !ok {
		panic("tempus: overflow adding duration to date")
	}
	return res
}

// Sub returns d shifted back by the whole days of dur. It panics on
// overflow; use CheckedSub when the duration is not known to be in range.
func (d Date) Sub(dur Duration) Date {
	res, ok := d.CheckedSub(dur)
	if !ok {
		panic("tempus: overflow subtracting duration from date")
	}
	return res
}

// Since returns the duration elapsed from other to d, in whole days.
func (d Date) Since(other Date) Duration {
	return DurationDays(int64(d.JulianDay() - other.JulianDay()))
}

// Compare orders two dates chronologically, returning -1, 0 or 1.
func (d Date) Compare(other Date) int {
	switch {
	case d.v < other.v:
		return -1
	case d.v > other.v:
		return 1
	default:
		return 0
	}
}

// checkedNextOccurrence finds the first strictly later date falling on
// weekday, or ok=false on overflow.
func (d Date) checkedNextOccurrence(weekday Weekday) (Date, bool) {
	dayDiff := (int(weekday) - int(d.Weekday()) + 7) % 7
	if dayDiff == 0 {
		dayDiff = 7
	}
	return d.CheckedAdd(DurationDays(int64(dayDiff)))
}

// checkedPrevOccurrence finds the first strictly earlier date falling on
// weekday, or ok=false on overflow.
func (d Date) checkedPrevOccurrence(weekday Weekday) (Date, bool) {
	dayDiff := (int(d.Weekday()) - int(weekday) + 7) % 7
	if dayDiff == 0 {
		dayDiff = 7
	}
	return d.CheckedSub(DurationDays(int64(dayDiff)))
}

// NextOccurrence returns the first date strictly after d that falls on
// weekday. It panics on overflow.
func (d Date) NextOccurrence(weekday Weekday) Date {
	res, ok := d.checkedNextOccurrence(weekday)
	if !ok {
		panic("tempus: overflow calculating the next occurrence of a weekday")
	}
	return res
}

// PrevOccurrence returns the first date strictly before d that falls on
// weekday. It panics on overflow.
func (d Date) PrevOccurrence(weekday Weekday) Date {
	res, ok := d.checkedPrevOccurrence(weekday)
	if !ok {
		panic("tempus: overflow calculating the previous occurrence of a weekday")
	}
	return res
}

// NthNextOccurrence returns the nth date strictly after d that falls on
// weekday. It panics on overflow or when n is zero.
func (d Date) NthNextOccurrence(weekday Weekday, n int) Date {
	if n <= 0 {
		panic("tempus: occurrence count must be positive")
	}
	first, ok := d.checkedNextOccurrence(weekday)
	if !ok {
		panic("tempus: overflow calculating the next occurrence of a weekday")
	}
	res, ok := first.CheckedAdd(DurationWeeks(int64(n - 1)))
	if !ok {
		panic("tempus: overflow calculating the next occurrence of a weekday")
	}
	return res
}

// NthPrevOccurrence returns the nth date strictly before d that falls on
// weekday. It panics on overflow or when n is zero.
func (d Date) NthPrevOccurrence(weekday Weekday, n int) Date {
	if n <= 0 {
		panic("tempus: occurrence count must be positive")
	}
	first, ok := d.checkedPrevOccurrence(weekday)
	if !ok {
		panic("tempus: overflow calculating the previous occurrence of a weekday")
	}
	res, ok := first.CheckedSub(DurationWeeks(int64(n - 1)))
	if !ok {
		panic("tempus: overflow calculating the previous occurrence of a weekday")
	}
	return res
}

// ReplaceYear returns the date with the year replaced, keeping month and day.
// Replacing the year of February 29 with a common year fails.
func (d Date) ReplaceYear(year int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, yearRange(year)
	}

	ordinal := d.Ordinal()

	// January and February ordinals are unaffected by leap years.
	if ordinal <= 59 {
		return dateFromOrdinalUnchecked(year, ordinal), nil
	}

	fromLeap, toLeap := d.isInLeapYear(), IsLeapYear(year)
	switch {
	case fromLeap == toLeap:
		return dateFromOrdinalUnchecked(year, ordinal), nil
	case fromLeap && ordinal == 60:
		// February 29 does not exist in the target year.
		return Date{}, componentRange("day", 1, 28, 29, "for the given month and year")
	case toLeap:
		return dateFromOrdinalUnchecked(year, ordinal+1), nil
	default:
		return dateFromOrdinalUnchecked(year, ordinal-1), nil
	}
}

// ReplaceMonth returns the date with the month replaced, keeping year and day.
func (d Date) ReplaceMonth(month Month) (Date, error) {
	year, _, day := d.CalendarDate()
	return NewDate(year, month, day)
}

// ReplaceDay returns the date with the day of month replaced.
func (d Date) ReplaceDay(day int) (Date, error) {
	if day < 1 || day > d.Month().Length(d.Year()) {
		return Date{}, componentRange("day", 1, int64(d.Month().Length(d.Year())), int64(day),
			"for the given month and year")
	}
	return dateFromOrdinalUnchecked(d.Year(), d.Ordinal()-d.Day()+day), nil
}

// ReplaceOrdinal returns the date with the day of year replaced.
func (d Date) ReplaceOrdinal(ordinal int) (Date, error) {
	if ordinal < 1 || ordinal > DaysInYear(d.Year()) {
		return Date{}, componentRange("ordinal", 1, int64(DaysInYear(d.Year())), int64(ordinal),
			"for the given year")
	}
	return dateFromOrdinalUnchecked(d.Year(), ordinal), nil
}

// Midnight pairs the date with 00:00:00.
func (d Date) Midnight() PrimitiveDateTime {
	return PrimitiveDateTime{date: d, time: Midnight}
}

// WithTime pairs the date with the given clock time.
func (d Date) WithTime(t Time) PrimitiveDateTime {
	return PrimitiveDateTime{date: d, time: t}
}

// WithHMS pairs the date with the given clock time, validating it.
func (d Date) WithHMS(hour, minute, second int) (PrimitiveDateTime, error) {
	t, err := TimeFromHMS(hour, minute, second)
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	return PrimitiveDateTime{date: d, time: t}, nil
}

// WithHMSNano pairs the date with the given clock time, validating it.
func (d Date) WithHMSNano(hour, minute, second, nanosecond int) (PrimitiveDateTime, error) {
	t, err := TimeFromHMSNano(hour, minute, second, nanosecond)
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	return PrimitiveDateTime{date: d, time: t}, nil
}

// String renders the date as ±YYYY-MM-DD with a minimum four-digit year and
// the sign shown only for negative years.
func (d Date) String() string {
	year, month, day := d.CalendarDate()
	if year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -year, month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
