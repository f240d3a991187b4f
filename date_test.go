package tempus

import (
	"errors"
	"testing"
)

func mustDate(t *testing.T, year int, month Month, day int) Date {
	t.Helper()
	d, err := NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate(%d, %v, %d): %v", year, month, day, err)
	}
	return d
}

func TestNewDate(t *testing.T) {
	tests := []struct {
		year    int
		month   Month
		day     int
		wantErr bool
	}{
		{2019, January, 1, false},
		{2019, December, 31, false},
		{2020, February, 29, false},
		{2019, February, 29, true},
		{2019, February, 28, false},
		{1900, February, 29, true}, // century, not a leap year
		{2000, February, 29, false},
		{2019, April, 31, true},
		{2019, January, 0, true},
		{2019, Month(13), 1, true},
		{MinYear, January, 1, false},
		{MaxYear, December, 31, false},
		{MinYear - 1, January, 1, true},
		{MaxYear + 1, January, 1, true},
	}
	for _, tt := range tests {
		_, err := NewDate(tt.year, tt.month, tt.day)
		if gotErr := err != nil; gotErr != tt.wantErr {
			t.Errorf("NewDate(%d, %v, %d) error = %v, wantErr %v", tt.year, tt.month, tt.day, err, tt.wantErr)
		}
	}
}

func TestNewDateRangeError(t *testing.T) {
	_, err := NewDate(2019, February, 29)
	var cre *ComponentRangeError
	if !errors.As(err, &cre) {
		t.Fatalf("expected ComponentRangeError, got %T", err)
	}
	if cre.Name != "day" || cre.Maximum != 28 || cre.Value != 29 {
		t.Errorf("unexpected error contents: %+v", cre)
	}
}

func TestCalendarDateRoundTrip(t *testing.T) {
	tests := []struct {
		year  int
		month Month
		day   int
	}{
		{2019, January, 1},
		{2019, February, 28},
		{2020, February, 29},
		{2020, March, 1},
		{2019, December, 31},
		{1970, January, 1},
		{0, January, 1},
		{-4713, November, 24},
		{MinYear, January, 1},
		{MaxYear, December, 31},
	}
	for _, tt := range tests {
		d := mustDate(t, tt.year, tt.month, tt.day)
		year, month, day := d.CalendarDate()
		if year != tt.year || month != tt.month || day != tt.day {
			t.Errorf("CalendarDate() = (%d, %v, %d), want (%d, %v, %d)",
				year, month, day, tt.year, tt.month, tt.day)
		}
	}
}

func TestOrdinalDate(t *testing.T) {
	tests := []struct {
		year    int
		month   Month
		day     int
		ordinal int
	}{
		{2019, January, 1, 1},
		{2019, December, 31, 365},
		{2020, December, 31, 366},
		{2020, February, 29, 60},
		{2020, March, 1, 61},
		{2019, March, 1, 60},
	}
	for _, tt := range tests {
		d := mustDate(t, tt.year, tt.month, tt.day)
		if got := d.Ordinal(); got != tt.ordinal {
			t.Errorf("%v.Ordinal() = %d, want %d", d, got, tt.ordinal)
		}
		back, err := DateFromOrdinalDate(tt.year, tt.ordinal)
		if err != nil {
			t.Fatalf("DateFromOrdinalDate(%d, %d): %v", tt.year, tt.ordinal, err)
		}
		if back != d {
			t.Errorf("DateFromOrdinalDate(%d, %d) = %v, want %v", tt.year, tt.ordinal, back, d)
		}
	}

	if _, err := DateFromOrdinalDate(2019, 366); err == nil {
		t.Error("DateFromOrdinalDate(2019, 366) should fail")
	}
	if _, err := DateFromOrdinalDate(2020, 367); err == nil {
		t.Error("DateFromOrdinalDate(2020, 367) should fail")
	}
}

func TestJulianDay(t *testing.T) {
	tests := []struct {
		year   int
		month  Month
		day    int
		julian int
	}{
		{-4713, November, 24, 0},
		{1970, January, 1, 2_440_588},
		{2000, January, 1, 2_451_545},
		{2019, January, 1, 2_458_485},
		{2019, December, 31, 2_458_849},
	}
	for _, tt := range tests {
		d := mustDate(t, tt.year, tt.month, tt.day)
		if got := d.JulianDay(); got != tt.julian {
			t.Errorf("%v.JulianDay() = %d, want %d", d, got, tt.julian)
		}
		back, err := DateFromJulianDay(tt.julian)
		if err != nil {
			t.Fatalf("DateFromJulianDay(%d): %v", tt.julian, err)
		}
		if back != d {
			t.Errorf("DateFromJulianDay(%d) = %v, want %v", tt.julian, back, d)
		}
	}
}

// The Julian day conversion must be a bijection over a span that crosses
// leap years, century boundaries and the year zero.
func TestJulianDaySweep(t *testing.T) {
	start := mustDate(t, -405, January, 1).JulianDay()
	end := mustDate(t, 405, December, 31).JulianDay()

	prev, err := DateFromJulianDay(start)
	if err != nil {
		t.Fatal(err)
	}
	for jd := start + 1; jd <= end; jd++ {
		d, err := DateFromJulianDay(jd)
		if err != nil {
			t.Fatalf("DateFromJulianDay(%d): %v", jd, err)
		}
		if d.JulianDay() != jd {
			t.Fatalf("round trip failed at %d: got %d", jd, d.JulianDay())
		}
		next, ok := prev.NextDay()
		if !ok || next != d {
			t.Fatalf("NextDay mismatch at julian day %d: %v -> %v, want %v", jd, prev, next, d)
		}
		if prev.Compare(d) != -1 || d.Compare(prev) != 1 {
			t.Fatalf("ordering broken between %v and %v", prev, d)
		}
		prev = d
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		year    int
		month   Month
		day     int
		weekday Weekday
	}{
		{1970, January, 1, Thursday},
		{2000, January, 1, Saturday},
		{2019, January, 1, Tuesday},
		{2019, February, 1, Friday},
		{2019, March, 1, Friday},
		{2019, April, 1, Monday},
		{2019, May, 1, Wednesday},
		{2019, June, 1, Saturday},
		{2019, July, 1, Monday},
		{2019, August, 1, Thursday},
		{2019, September, 1, Sunday},
		{2019, October, 1, Tuesday},
		{2019, November, 1, Friday},
		{2019, December, 1, Sunday},
		{0, January, 1, Saturday},
		{-100, January, 1, Monday},
	}
	for _, tt := range tests {
		d := mustDate(t, tt.year, tt.month, tt.day)
		if got := d.Weekday(); got != tt.weekday {
			t.Errorf("%v.Weekday() = %v, want %v", d, got, tt.weekday)
		}
	}
}

func TestISOWeekDate(t *testing.T) {
	tests := []struct {
		year    int
		month   Month
		day     int
		isoYear int
		week    int
		weekday Weekday
	}{
		{2019, January, 1, 2019, 1, Tuesday},
		{2019, October, 4, 2019, 40, Friday},
		{2020, January, 1, 2020, 1, Wednesday},
		// Week 53 spilling into the next calendar year.
		{2021, January, 1, 2020, 53, Friday},
		// Start of the year belonging to the previous ISO year.
		{2023, January, 1, 2022, 52, Sunday},
		{2016, December, 31, 2016, 52, Saturday},
		// The classic 53-week year.
		{2015, December, 31, 2015, 53, Thursday},
	}
	for _, tt := range tests {
		d := mustDate(t, tt.year, tt.month, tt.day)
		isoYear, week, weekday := d.ISOWeekDate()
		if isoYear != tt.isoYear || week != tt.week || weekday != tt.weekday {
			t.Errorf("%v.ISOWeekDate() = (%d, %d, %v), want (%d, %d, %v)",
				d, isoYear, week, weekday, tt.isoYear, tt.week, tt.weekday)
		}
		back, err := DateFromISOWeekDate(tt.isoYear, tt.week, tt.weekday)
		if err != nil {
			t.Fatalf("DateFromISOWeekDate(%d, %d, %v): %v", tt.isoYear, tt.week, tt.weekday, err)
		}
		if back != d {
			t.Errorf("DateFromISOWeekDate(%d, %d, %v) = %v, want %v",
				tt.isoYear, tt.week, tt.weekday, back, d)
		}
	}

	if _, err := DateFromISOWeekDate(2019, 53, Monday); err == nil {
		t.Error("2019 has 52 weeks; week 53 should fail")
	}
}

func TestWeekNumbers(t *testing.T) {
	// 2023-01-01 is a Sunday, so it opens Sunday-based week 1 but is still
	// in Monday-based week 0.
	d := mustDate(t, 2023, January, 1)
	if got := d.SundayBasedWeek(); got != 1 {
		t.Errorf("SundayBasedWeek() = %d, want 1", got)
	}
	if got := d.MondayBasedWeek(); got != 0 {
		t.Errorf("MondayBasedWeek() = %d, want 0", got)
	}

	// 2024-01-01 is a Monday.
	d = mustDate(t, 2024, January, 1)
	if got := d.SundayBasedWeek(); got != 0 {
		t.Errorf("SundayBasedWeek() = %d, want 0", got)
	}
	if got := d.MondayBasedWeek(); got != 1 {
		t.Errorf("MondayBasedWeek() = %d, want 1", got)
	}
}

func TestNextPreviousDayLimits(t *testing.T) {
	if _, ok := DateMax.NextDay(); ok {
		t.Error("DateMax.NextDay() should report ok=false")
	}
	if _, ok := DateMin.PreviousDay(); ok {
		t.Error("DateMin.PreviousDay() should report ok=false")
	}

	d, ok := mustDate(t, 2019, December, 31).NextDay()
	if !ok || d != mustDate(t, 2020, January, 1) {
		t.Errorf("year rollover NextDay() = %v, %v", d, ok)
	}
	d, ok = mustDate(t, 2020, January, 1).PreviousDay()
	if !ok || d != mustDate(t, 2019, December, 31) {
		t.Errorf("year rollover PreviousDay() = %v, %v", d, ok)
	}
}

func TestDateLimitValues(t *testing.T) {
	// 9999 is a common year, so the last ordinal is 365.
	if DateMax != mustDate(t, MaxYear, December, 31) {
		t.Errorf("DateMax = %v, want %d-12-31", DateMax, MaxYear)
	}
	if got := DateMax.Month(); got != December {
		t.Errorf("DateMax.Month() = %v, want December", got)
	}
	if got := DateMax.Ordinal(); got != 365 {
		t.Errorf("DateMax.Ordinal() = %d, want 365", got)
	}
	if _, ok := mustDate(t, MaxYear, December, 31).NextDay(); ok {
		t.Error("NextDay() past the last representable date should report ok=false")
	}

	if DateMin != mustDate(t, MinYear, January, 1) {
		t.Errorf("DateMin = %v, want %d-01-01", DateMin, MinYear)
	}

	got, err := DateFromJulianDay(DateMax.JulianDay())
	if err != nil || got != DateMax {
		t.Errorf("DateFromJulianDay(DateMax.JulianDay()) = %v, %v", got, err)
	}
	got, err = DateFromJulianDay(DateMin.JulianDay())
	if err != nil || got != DateMin {
		t.Errorf("DateFromJulianDay(DateMin.JulianDay()) = %v, %v", got, err)
	}
	if _, err := DateFromJulianDay(DateMax.JulianDay() + 1); err == nil {
		t.Error("DateFromJulianDay past the last representable date should fail")
	}
}

func TestCheckedArithmetic(t *testing.T) {
	d := mustDate(t, 2020, February, 28)

	got, ok := d.CheckedAdd(DurationDays(1))
	if !ok || got != mustDate(t, 2020, February, 29) {
		t.Errorf("CheckedAdd(1 day) = %v, %v", got, ok)
	}
	got, ok = d.CheckedAdd(DurationDays(2))
	if !ok || got != mustDate(t, 2020, March, 1) {
		t.Errorf("CheckedAdd(2 days) = %v, %v", got, ok)
	}
	got, ok = d.CheckedSub(DurationWeeks(1))
	if !ok || got != mustDate(t, 2020, February, 21) {
		t.Errorf("CheckedSub(1 week) = %v, %v", got, ok)
	}

	if _, ok := DateMax.CheckedAdd(DurationDays(1)); ok {
		t.Error("CheckedAdd over DateMax should fail")
	}
	if _, ok := DateMin.CheckedSub(DurationDays(1)); ok {
		t.Error("CheckedSub under DateMin should fail")
	}

	// Sub-day components are ignored.
	got, ok = d.CheckedAdd(DurationSeconds(59))
	if !ok || got != d {
		t.Errorf("CheckedAdd(59s) = %v, want %v", got, d)
	}
}

func TestSaturatingArithmetic(t *testing.T) {
	if got := DateMax.SaturatingAdd(DurationDays(5)); got != DateMax {
		t.Errorf("SaturatingAdd clamped to %v, want DateMax", got)
	}
	if got := DateMin.SaturatingSub(DurationDays(5)); got != DateMin {
		t.Errorf("SaturatingSub clamped to %v, want DateMin", got)
	}
	d := mustDate(t, 2020, January, 1)
	if got := d.SaturatingAdd(DurationDays(31)); got != mustDate(t, 2020, February, 1) {
		t.Errorf("SaturatingAdd in range = %v", got)
	}
}

func TestSince(t *testing.T) {
	a := mustDate(t, 2020, March, 1)
	b := mustDate(t, 2020, February, 28)
	if got := a.Since(b).WholeDays(); got != 2 {
		t.Errorf("Since() = %d days, want 2", got)
	}
	if got := b.Since(a).WholeDays(); got != -2 {
		t.Errorf("reverse Since() = %d days, want -2", got)
	}
}

func TestOccurrences(t *testing.T) {
	// 2023-06-28 is a Wednesday.
	d := mustDate(t, 2023, June, 28)

	if got := d.NextOccurrence(Monday); got != mustDate(t, 2023, July, 3) {
		t.Errorf("NextOccurrence(Monday) = %v", got)
	}
	// Same weekday never returns the starting date.
	if got := d.NextOccurrence(Wednesday); got != mustDate(t, 2023, July, 5) {
		t.Errorf("NextOccurrence(Wednesday) = %v", got)
	}
	if got := d.PrevOccurrence(Wednesday); got != mustDate(t, 2023, June, 21) {
		t.Errorf("PrevOccurrence(Wednesday) = %v", got)
	}
	if got := d.PrevOccurrence(Thursday); got != mustDate(t, 2023, June, 22) {
		t.Errorf("PrevOccurrence(Thursday) = %v", got)
	}
	if got := d.NthNextOccurrence(Monday, 3); got != mustDate(t, 2023, July, 17) {
		t.Errorf("NthNextOccurrence(Monday, 3) = %v", got)
	}
	if got := d.NthPrevOccurrence(Friday, 2); got != mustDate(t, 2023, June, 16) {
		t.Errorf("NthPrevOccurrence(Friday, 2) = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("NthNextOccurrence with n=0 should panic")
		}
	}()
	d.NthNextOccurrence(Monday, 0)
}

func TestReplaceYear(t *testing.T) {
	d := mustDate(t, 2020, February, 29)

	if _, err := d.ReplaceYear(2019); err == nil {
		t.Error("moving February 29 to a common year should fail")
	}
	got, err := d.ReplaceYear(2024)
	if err != nil || got != mustDate(t, 2024, February, 29) {
		t.Errorf("ReplaceYear(2024) = %v, %v", got, err)
	}

	// The month and day must survive a change in leapness.
	d = mustDate(t, 2020, March, 1)
	got, err = d.ReplaceYear(2019)
	if err != nil || got != mustDate(t, 2019, March, 1) {
		t.Errorf("ReplaceYear(2019) = %v, %v", got, err)
	}
	d = mustDate(t, 2019, December, 31)
	got, err = d.ReplaceYear(2020)
	if err != nil || got != mustDate(t, 2020, December, 31) {
		t.Errorf("ReplaceYear(2020) = %v, %v", got, err)
	}
	d = mustDate(t, 2019, January, 15)
	got, err = d.ReplaceYear(2020)
	if err != nil || got != mustDate(t, 2020, January, 15) {
		t.Errorf("ReplaceYear(2020) = %v, %v", got, err)
	}
}

func TestReplaceComponents(t *testing.T) {
	d := mustDate(t, 2019, January, 31)

	if _, err := d.ReplaceMonth(February); err == nil {
		t.Error("ReplaceMonth producing February 31 should fail")
	}
	got, err := d.ReplaceMonth(March)
	if err != nil || got != mustDate(t, 2019, March, 31) {
		t.Errorf("ReplaceMonth(March) = %v, %v", got, err)
	}

	got, err = d.ReplaceDay(1)
	if err != nil || got != mustDate(t, 2019, January, 1) {
		t.Errorf("ReplaceDay(1) = %v, %v", got, err)
	}
	if _, err := d.ReplaceDay(32); err == nil {
		t.Error("ReplaceDay(32) should fail")
	}

	got, err = d.ReplaceOrdinal(365)
	if err != nil || got != mustDate(t, 2019, December, 31) {
		t.Errorf("ReplaceOrdinal(365) = %v, %v", got, err)
	}
	if _, err := d.ReplaceOrdinal(366); err == nil {
		t.Error("ReplaceOrdinal(366) in a common year should fail")
	}
}

func TestDateString(t *testing.T) {
	tests := []struct {
		year  int
		month Month
		day   int
		want  string
	}{
		{2019, January, 1, "2019-01-01"},
		{19, November, 30, "0019-11-30"},
		{-4, May, 6, "-0004-05-06"},
		{MaxYear, December, 31, "9999-12-31"},
		{MinYear, January, 1, "-9999-01-01"},
	}
	for _, tt := range tests {
		d := mustDate(t, tt.year, tt.month, tt.day)
		if got := d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMidnightAndWithTime(t *testing.T) {
	d := mustDate(t, 1970, January, 1)
	if got := d.Midnight().AssumeUTC().UnixTimestamp(); got != 0 {
		t.Errorf("epoch midnight timestamp = %d, want 0", got)
	}

	dt, err := d.WithHMS(12, 30, 45)
	if err != nil {
		t.Fatal(err)
	}
	if got := dt.AssumeUTC().UnixTimestamp(); got != 45045 {
		t.Errorf("timestamp = %d, want 45045", got)
	}
	if _, err := d.WithHMS(24, 0, 0); err == nil {
		t.Error("hour 24 should fail")
	}
}
