package tempus

import (
	"bytes"

	"tempus/format"
)

// parsedField tracks which components have been collected so far.
type parsedField uint32

const (
	fieldYear parsedField = 1 << iota
	fieldYearLastTwo
	fieldCentury
	fieldISOYear
	fieldISOYearLastTwo
	fieldMonth
	fieldSundayWeek
	fieldMondayWeek
	fieldISOWeek
	fieldWeekday
	fieldOrdinal
	fieldDay
	fieldHour24
	fieldHour12
	fieldHour12IsPM
	fieldMinute
	fieldSecond
	fieldSubsecond
	fieldOffsetHour
	fieldOffsetMinute
	fieldOffsetSecond
	fieldUnixTimestamp
)

// Parsed accumulates components as a format description is matched against
// input. Once a parse completes, the typed accessors assemble values from
// whatever combination of components was collected.
type Parsed struct {
	flags parsedField

	year           int
	yearLastTwo    int
	century        int
	isoYear        int
	isoYearLastTwo int
	month          Month
	sundayWeek     int
	mondayWeek     int
	isoWeek        int
	weekday        Weekday
	ordinal        int
	day            int
	hour24         int
	hour12         int
	hour12IsPM     bool
	minute         int
	second         int
	subsecondNanos int

	// Offset minute and second are magnitudes; offsetNegative carries the
	// sign of the whole offset so that -00:30 round-trips.
	offsetHour     int
	offsetMinute   int
	offsetSecond   int
	offsetNegative bool

	unixSeconds int64
	unixNanos   int32
}

func (p *Parsed) has(f parsedField) bool { return p.flags&f != 0 }

func (p *Parsed) set(f parsedField) { p.flags |= f }

// ParseItems matches the input against a compiled format description,
// requiring the whole input to be consumed.
func ParseItems(input string, items []format.Item) (*Parsed, error) {
	p := &Parsed{}
	rest, err := p.parseItems([]byte(input), len(input), items)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, &ParseError{
			Offset:  len(input) - len(rest),
			Message: "unexpected trailing input",
		}
	}
	return p, nil
}

func (p *Parsed) parseItems(input []byte, full int, items []format.Item) ([]byte, error) {
	var err error
	for _, it := range items {
		input, err = p.parseItem(input, full, it)
		if err != nil {
			return nil, err
		}
	}
	return input, nil
}

func (p *Parsed) parseItem(input []byte, full int, it format.Item) ([]byte, error) {
	switch it.Kind {
	case format.ItemLiteral:
		if !bytes.HasPrefix(input, it.Literal) {
			return nil, &ParseError{
				Offset:  full - len(input),
				Message: "expected literal",
			}
		}
		return input[len(it.Literal):], nil

	case format.ItemComponent:
		return p.parseComponent(input, full, it.Component)

	case format.ItemCompound:
		return p.parseItems(input, full, it.Items)

	case format.ItemOptional:
		saved := *p
		rest, err := p.parseItem(input, full, it.Items[0])
		if err != nil {
			*p = saved
			return input, nil
		}
		return rest, nil

	case format.ItemFirst:
		if len(it.Items) == 0 {
			return input, nil
		}
		var firstErr error
		for _, alt := range it.Items {
			saved := *p
			rest, err := p.parseItem(input, full, alt)
			if err == nil {
				return rest, nil
			}
			*p = saved
			if firstErr == nil {
				firstErr = err
			}
		}
		return nil, firstErr

	default:
		return nil, &ParseError{Offset: full - len(input), Message: "invalid format item"}
	}
}

// Year returns the full calendar year, combining the century and last-two
// components when the year was not parsed directly.
func (p *Parsed) Year() (int, bool) {
	if p.has(fieldYear) {
		return p.year, true
	}
	if p.has(fieldCentury) && p.has(fieldYearLastTwo) {
		return p.century*100 + p.yearLastTwo, true
	}
	return 0, false
}

func (p *Parsed) isoYearValue() (int, bool) {
	if p.has(fieldISOYear) {
		return p.isoYear, true
	}
	return 0, false
}

// Date assembles a date. Component combinations are tried in order:
// year and ordinal; year, month and day; ISO year, week and weekday;
// year, week number and weekday.
func (p *Parsed) Date() (Date, error) {
	year, haveYear := p.Year()

	switch {
	case haveYear && p.has(fieldOrdinal):
		return DateFromOrdinalDate(year, p.ordinal)

	case haveYear && p.has(fieldMonth) && p.has(fieldDay):
		return NewDate(year, p.month, p.day)

	case p.has(fieldISOWeek) && p.has(fieldWeekday):
		isoYear, ok := p.isoYearValue()
		if !ok {
			return Date{}, &InsufficientInfoError{Target: "Date"}
		}
		return DateFromISOWeekDate(isoYear, p.isoWeek, p.weekday)

	case haveYear && p.has(fieldSundayWeek) && p.has(fieldWeekday):
		return dateFromWeekNumber(year, p.sundayWeek, p.weekday.NumberDaysFromSunday(), Sunday)

	case haveYear && p.has(fieldMondayWeek) && p.has(fieldWeekday):
		return dateFromWeekNumber(year, p.mondayWeek, p.weekday.NumberDaysFromMonday(), Monday)

	default:
		return Date{}, &InsufficientInfoError{Target: "Date"}
	}
}

// dateFromWeekNumber resolves a (year, week, weekday) triple where week 1
// starts at the first firstDay of the year and days before it are week 0.
func dateFromWeekNumber(year, week, weekdayDays int, firstDay Weekday) (Date, error) {
	jan1, err := DateFromOrdinalDate(year, 1)
	if err != nil {
		return Date{}, err
	}
	var adjustment int
	if firstDay == Sunday {
		adjustment = jan1.Weekday().NumberDaysFromSunday()
	} else {
		adjustment = jan1.Weekday().NumberDaysFromMonday()
	}
	// A year opening on the week's first day starts week 1 immediately, so
	// the adjustment wraps to a full week.
	if adjustment == 0 {
		adjustment = 7
	}
	ordinal := week*7 + weekdayDays - adjustment + 1
	return DateFromOrdinalDate(year, ordinal)
}

// Time assembles a clock time. An hour and minute are required; the second
// and subsecond default to zero.
func (p *Parsed) Time() (Time, error) {
	var hour int
	switch {
	case p.has(fieldHour24):
		hour = p.hour24
	case p.has(fieldHour12) && p.has(fieldHour12IsPM):
		hour = p.hour12 % 12
		if p.hour12IsPM {
			hour += 12
		}
	default:
		return Time{}, &InsufficientInfoError{Target: "Time"}
	}
	if !p.has(fieldMinute) {
		return Time{}, &InsufficientInfoError{Target: "Time"}
	}
	return TimeFromHMSNano(hour, p.minute, p.second, p.subsecondNanos)
}

// Offset assembles a UTC offset. The hour is required; minute and second
// default to zero and inherit the hour's sign.
func (p *Parsed) Offset() (UTCOffset, error) {
	if !p.has(fieldOffsetHour) {
		return UTCOffset{}, &InsufficientInfoError{Target: "UTCOffset"}
	}
	seconds := p.offsetHour*3600 + p.offsetMinute*60 + p.offsetSecond
	if p.offsetNegative {
		seconds = -seconds
	}
	return OffsetFromWholeSeconds(seconds)
}

// DateTime assembles a date-time without an offset.
func (p *Parsed) DateTime() (PrimitiveDateTime, error) {
	date, err := p.Date()
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	t, err := p.Time()
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	return NewPrimitiveDateTime(date, t), nil
}

// OffsetDateTime assembles a date-time with an offset. A parsed unix
// timestamp takes precedence over individual components.
func (p *Parsed) OffsetDateTime() (OffsetDateTime, error) {
	if p.has(fieldUnixTimestamp) {
		odt, err := FromUnixTimestamp(p.unixSeconds)
		if err != nil {
			return OffsetDateTime{}, err
		}
		if p.unixNanos == 0 {
			return odt, nil
		}
		t, err := TimeFromHMSNano(odt.Time().Hour(), odt.Time().Minute(), odt.Time().Second(), int(p.unixNanos))
		if err != nil {
			return OffsetDateTime{}, err
		}
		return NewPrimitiveDateTime(odt.Date(), t).AssumeUTC(), nil
	}

	dt, err := p.DateTime()
	if err != nil {
		return OffsetDateTime{}, err
	}
	offset, err := p.Offset()
	if err != nil {
		return OffsetDateTime{}, err
	}
	return dt.AssumeOffset(offset), nil
}

// ParseDate parses a date from input using a compiled format description.
func ParseDate(input string, items []format.Item) (Date, error) {
	p, err := ParseItems(input, items)
	if err != nil {
		return Date{}, err
	}
	return p.Date()
}

// ParseTime parses a clock time from input.
func ParseTime(input string, items []format.Item) (Time, error) {
	p, err := ParseItems(input, items)
	if err != nil {
		return Time{}, err
	}
	return p.Time()
}

// ParseOffset parses a UTC offset from input.
func ParseOffset(input string, items []format.Item) (UTCOffset, error) {
	p, err := ParseItems(input, items)
	if err != nil {
		return UTCOffset{}, err
	}
	return p.Offset()
}

// ParsePrimitiveDateTime parses a date-time without an offset from input.
func ParsePrimitiveDateTime(input string, items []format.Item) (PrimitiveDateTime, error) {
	p, err := ParseItems(input, items)
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	return p.DateTime()
}

// ParseOffsetDateTime parses a date-time with an offset from input.
func ParseOffsetDateTime(input string, items []format.Item) (OffsetDateTime, error) {
	p, err := ParseItems(input, items)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return p.OffsetDateTime()
}
