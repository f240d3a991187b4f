package format

// Component is one datum of a formatted value, together with the modifiers
// that control its textual shape. The concrete types below are the full set;
// callers dispatch with a type switch.
type Component interface {
	component()
}

// Day is the day of the month, 1 to 31.
type Day struct {
	Padding Padding
}

// Month is the month of the year.
type Month struct {
	Padding       Padding
	Repr          MonthRepr
	CaseSensitive bool
}

// Ordinal is the day of the year, 1 to 366.
type Ordinal struct {
	Padding Padding
}

// Weekday is the day of the week, as a name or a number.
type Weekday struct {
	Repr          WeekdayRepr
	OneIndexed    bool // numeric representations only
	CaseSensitive bool
}

// WeekNumber is the week of the year under one of three numbering schemes.
type WeekNumber struct {
	Padding Padding
	Repr    WeekNumberRepr
}

// Year is the calendar or ISO week-based year.
type Year struct {
	Padding       Padding
	Repr          YearRepr
	ISOWeekBased  bool
	SignMandatory bool
}

// Hour is the hour of the day on a 24- or 12-hour clock.
type Hour struct {
	Padding       Padding
	Is12HourClock bool
}

// Minute is the minute within the hour.
type Minute struct {
	Padding Padding
}

// Period is the AM/PM marker.
type Period struct {
	Uppercase     bool
	CaseSensitive bool
}

// Second is the second within the minute.
type Second struct {
	Padding Padding
}

// Subsecond is the fractional second.
type Subsecond struct {
	Digits SubsecondDigits
}

// OffsetHour is the hours component of a UTC offset.
type OffsetHour struct {
	Padding       Padding
	SignMandatory bool
}

// OffsetMinute is the minutes component of a UTC offset, 0 to 59.
type OffsetMinute struct {
	Padding Padding
}

// OffsetSecond is the seconds component of a UTC offset, 0 to 59.
type OffsetSecond struct {
	Padding Padding
}

// Ignore skips a fixed number of bytes when parsing and formats nothing.
type Ignore struct {
	Count int // must be positive
}

// UnixTimestamp is the number of units since the unix epoch.
type UnixTimestamp struct {
	Precision     UnixTimestampPrecision
	SignMandatory bool
}

// End matches only the end of input and formats nothing.
type End struct{}

func (Day) component()           {}
func (Month) component()         {}
func (Ordinal) component()       {}
func (Weekday) component()       {}
func (WeekNumber) component()    {}
func (Year) component()          {}
func (Hour) component()          {}
func (Minute) component()        {}
func (Period) component()        {}
func (Second) component()        {}
func (Subsecond) component()     {}
func (OffsetHour) component()    {}
func (OffsetMinute) component()  {}
func (OffsetSecond) component()  {}
func (Ignore) component()        {}
func (UnixTimestamp) component() {}
func (End) component()           {}
