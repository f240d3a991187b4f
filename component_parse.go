package tempus

import (
	"tempus/format"
	"tempus/internal/convert"
	"tempus/internal/parse"
)

// padByte maps a padding modifier to the pad byte the combinators expect.
func padByte(p format.Padding) byte {
	switch p {
	case format.PadSpace:
		return ' '
	case format.PadNone:
		return 0
	default:
		return '0'
	}
}

func componentErr(name string, input []byte, full int) *ParseError {
	return &ParseError{
		Component: name,
		Offset:    full - len(input),
	}
}

func (p *Parsed) parseComponent(input []byte, full int, c format.Component) ([]byte, error) {
	switch c := c.(type) {
	case format.Day:
		v, rest, ok := parse.ExactDigitsPadded(input, 2, padByte(c.Padding))
		if !ok || v < 1 || v > 31 {
			return nil, componentErr("day", input, full)
		}
		p.day = int(v)
		p.set(fieldDay)
		return rest, nil

	case format.Month:
		return p.parseMonth(input, full, c)

	case format.Ordinal:
		v, rest, ok := parse.ExactDigitsPadded(input, 3, padByte(c.Padding))
		if !ok || v < 1 || v > 366 {
			return nil, componentErr("ordinal", input, full)
		}
		p.ordinal = int(v)
		p.set(fieldOrdinal)
		return rest, nil

	case format.Weekday:
		return p.parseWeekday(input, full, c)

	case format.WeekNumber:
		v, rest, ok := parse.ExactDigitsPadded(input, 2, padByte(c.Padding))
		if !ok || v > 53 {
			return nil, componentErr("week number", input, full)
		}
		switch c.Repr {
		case format.WeekNumberSunday:
			p.sundayWeek = int(v)
			p.set(fieldSundayWeek)
		case format.WeekNumberMonday:
			p.mondayWeek = int(v)
			p.set(fieldMondayWeek)
		default:
			if v == 0 {
				return nil, componentErr("week number", input, full)
			}
			p.isoWeek = int(v)
			p.set(fieldISOWeek)
		}
		return rest, nil

	case format.Year:
		return p.parseYear(input, full, c)

	case format.Hour:
		v, rest, ok := parse.ExactDigitsPadded(input, 2, padByte(c.Padding))
		if !ok {
			return nil, componentErr("hour", input, full)
		}
		if c.Is12HourClock {
			if v < 1 || v > 12 {
				return nil, componentErr("hour", input, full)
			}
			p.hour12 = int(v)
			p.set(fieldHour12)
		} else {
			if v > 23 {
				return nil, componentErr("hour", input, full)
			}
			p.hour24 = int(v)
			p.set(fieldHour24)
		}
		return rest, nil

	case format.Minute:
		v, rest, ok := parse.ExactDigitsPadded(input, 2, padByte(c.Padding))
		if !ok || v > 59 {
			return nil, componentErr("minute", input, full)
		}
		p.minute = int(v)
		p.set(fieldMinute)
		return rest, nil

	case format.Period:
		options := [][]byte{[]byte("am"), []byte("pm")}
		if c.Uppercase {
			options = [][]byte{[]byte("AM"), []byte("PM")}
		}
		i, rest, ok := parse.FirstMatch(input, options, c.CaseSensitive)
		if !ok {
			return nil, componentErr("period", input, full)
		}
		p.hour12IsPM = i == 1
		p.set(fieldHour12IsPM)
		return rest, nil

	case format.Second:
		v, rest, ok := parse.ExactDigitsPadded(input, 2, padByte(c.Padding))
		if !ok || v > 59 {
			return nil, componentErr("second", input, full)
		}
		p.second = int(v)
		p.set(fieldSecond)
		return rest, nil

	case format.Subsecond:
		return p.parseSubsecond(input, full, c)

	case format.OffsetHour:
		sign, rest := parse.Sign(input)
		if sign == 0 && c.SignMandatory {
			return nil, componentErr("offset hour", input, full)
		}
		v, rest, ok := parse.ExactDigitsPadded(rest, 2, padByte(c.Padding))
		if !ok || v > maxOffsetHours {
			return nil, componentErr("offset hour", input, full)
		}
		p.offsetHour = int(v)
		p.offsetNegative = sign == '-'
		p.set(fieldOffsetHour)
		return rest, nil

	case format.OffsetMinute:
		v, rest, ok := parse.ExactDigitsPadded(input, 2, padByte(c.Padding))
		if !ok || v > 59 {
			return nil, componentErr("offset minute", input, full)
		}
		p.offsetMinute = int(v)
		p.set(fieldOffsetMinute)
		return rest, nil

	case format.OffsetSecond:
		v, rest, ok := parse.ExactDigitsPadded(input, 2, padByte(c.Padding))
		if !ok || v > 59 {
			return nil, componentErr("offset second", input, full)
		}
		p.offsetSecond = int(v)
		p.set(fieldOffsetSecond)
		return rest, nil

	case format.Ignore:
		if len(input) < c.Count {
			return nil, componentErr("ignored bytes", input, full)
		}
		return input[c.Count:], nil

	case format.UnixTimestamp:
		return p.parseUnixTimestamp(input, full, c)

	case format.End:
		if len(input) != 0 {
			return nil, &ParseError{
				Offset:  full - len(input),
				Message: "unexpected trailing input",
			}
		}
		return input, nil

	default:
		return nil, &ParseError{Offset: full - len(input), Message: "invalid format item"}
	}
}

func (p *Parsed) parseMonth(input []byte, full int, c format.Month) ([]byte, error) {
	switch c.Repr {
	case format.MonthLong, format.MonthShort:
		options := make([][]byte, 12)
		for i := range options {
			m := Month(i + 1)
			if c.Repr == format.MonthLong {
				options[i] = []byte(m.String())
			} else {
				options[i] = []byte(m.ShortName())
			}
		}
		i, rest, ok := parse.FirstMatch(input, options, c.CaseSensitive)
		if !ok {
			return nil, componentErr("month", input, full)
		}
		p.month = Month(i + 1)
		p.set(fieldMonth)
		return rest, nil

	default:
		v, rest, ok := parse.ExactDigitsPadded(input, 2, padByte(c.Padding))
		if !ok || v < 1 || v > 12 {
			return nil, componentErr("month", input, full)
		}
		p.month = Month(v)
		p.set(fieldMonth)
		return rest, nil
	}
}

func (p *Parsed) parseWeekday(input []byte, full int, c format.Weekday) ([]byte, error) {
	switch c.Repr {
	case format.WeekdayLong, format.WeekdayShort:
		options := make([][]byte, 7)
		for i := range options {
			wd := Weekday(i)
			if c.Repr == format.WeekdayLong {
				options[i] = []byte(wd.String())
			} else {
				options[i] = []byte(wd.ShortName())
			}
		}
		i, rest, ok := parse.FirstMatch(input, options, c.CaseSensitive)
		if !ok {
			return nil, componentErr("weekday", input, full)
		}
		p.weekday = Weekday(i)
		p.set(fieldWeekday)
		return rest, nil

	case format.WeekdaySunday, format.WeekdayMonday:
		d, rest, ok := parse.AnyDigit(input)
		if !ok {
			return nil, componentErr("weekday", input, full)
		}
		n := int(d - '0')
		if c.OneIndexed {
			n--
		}
		if n < 0 || n > 6 {
			return nil, componentErr("weekday", input, full)
		}
		if c.Repr == format.WeekdaySunday {
			// Days counted from Sunday; internally Monday is zero.
			p.weekday = Weekday((n + 6) % 7)
		} else {
			p.weekday = Weekday(n)
		}
		p.set(fieldWeekday)
		return rest, nil

	default:
		return nil, componentErr("weekday", input, full)
	}
}

func (p *Parsed) parseYear(input []byte, full int, c format.Year) ([]byte, error) {
	target := fieldYear
	if c.ISOWeekBased {
		target = fieldISOYear
	}

	switch c.Repr {
	case format.YearCentury:
		sign, rest := parse.Sign(input)
		if sign == 0 && c.SignMandatory {
			return nil, componentErr("year", input, full)
		}
		// A signed century is always two digits; an unsigned one may be a
		// single digit.
		var (
			v  uint64
			ok bool
		)
		if sign != 0 {
			v, rest, ok = parse.ExactDigitsPadded(rest, 2, padByte(c.Padding))
		} else {
			v, rest, ok = parse.NToMDigitsPadded(rest, 1, 2, padByte(c.Padding))
		}
		if !ok {
			return nil, componentErr("year", input, full)
		}
		value := int(v)
		if sign == '-' {
			value = -value
		}
		if c.ISOWeekBased {
			// A week-based century cannot be combined into an ISO year.
			return nil, componentErr("year", input, full)
		}
		p.century = value
		p.set(fieldCentury)
		return rest, nil

	case format.YearLastTwo:
		v, rest, ok := parse.ExactDigitsPadded(input, 2, padByte(c.Padding))
		if !ok {
			return nil, componentErr("year", input, full)
		}
		if c.ISOWeekBased {
			p.isoYearLastTwo = int(v)
			p.set(fieldISOYearLastTwo)
		} else {
			p.yearLastTwo = int(v)
			p.set(fieldYearLastTwo)
		}
		return rest, nil

	default:
		sign, rest := parse.Sign(input)
		if sign == 0 && c.SignMandatory {
			return nil, componentErr("year", input, full)
		}
		v, rest, ok := parse.ExactDigitsPadded(rest, 4, padByte(c.Padding))
		if !ok {
			return nil, componentErr("year", input, full)
		}
		value := int(v)
		if sign == '-' {
			value = -value
		}
		if value < MinYear || value > MaxYear {
			return nil, componentErr("year", input, full)
		}
		if target == fieldISOYear {
			p.isoYear = value
		} else {
			p.year = value
		}
		p.set(target)
		return rest, nil
	}
}

func (p *Parsed) parseSubsecond(input []byte, full int, c format.Subsecond) ([]byte, error) {
	if c.Digits == format.SubsecondOneOrMore {
		d, rest, ok := parse.AnyDigit(input)
		if !ok {
			return nil, componentErr("subsecond", input, full)
		}
		value := int(d-'0') * 100_000_000
		// Digits past the ninth still consume input but carry no weight.
		weight := 10_000_000
		for {
			d, r, ok := parse.AnyDigit(rest)
			if !ok {
				break
			}
			value += int(d-'0') * weight
			weight /= 10
			rest = r
		}
		p.subsecondNanos = value
		p.set(fieldSubsecond)
		return rest, nil
	}

	digits := int(c.Digits)
	value, rest := 0, input
	for i := 0; i < digits; i++ {
		d, r, ok := parse.AnyDigit(rest)
		if !ok {
			return nil, componentErr("subsecond", input, full)
		}
		value = value*10 + int(d-'0')
		rest = r
	}
	for i := digits; i < 9; i++ {
		value *= 10
	}
	p.subsecondNanos = value
	p.set(fieldSubsecond)
	return rest, nil
}

// Digit bounds per precision keep the value within int64 when scaled to
// nanoseconds.
var unixTimestampMaxDigits = map[format.UnixTimestampPrecision]int{
	format.UnixTimestampSecond:      12,
	format.UnixTimestampMillisecond: 15,
	format.UnixTimestampMicrosecond: 18,
	format.UnixTimestampNanosecond:  19,
}

func (p *Parsed) parseUnixTimestamp(input []byte, full int, c format.UnixTimestamp) ([]byte, error) {
	sign, rest := parse.Sign(input)
	if sign == 0 && c.SignMandatory {
		return nil, componentErr("unix timestamp", input, full)
	}
	v, rest, ok := parse.NToMDigits(rest, 1, unixTimestampMaxDigits[c.Precision])
	if !ok {
		return nil, componentErr("unix timestamp", input, full)
	}

	value := int64(v)
	if sign == '-' {
		value = -value
	}

	var seconds int64
	var nanos int64
	switch c.Precision {
	case format.UnixTimestampMillisecond:
		seconds = floorDiv64(value, convert.MillisecondsPerSecond)
		nanos = (value - seconds*convert.MillisecondsPerSecond) * convert.NanosecondsPerMillisecond
	case format.UnixTimestampMicrosecond:
		seconds = floorDiv64(value, convert.MicrosecondsPerSecond)
		nanos = (value - seconds*convert.MicrosecondsPerSecond) * convert.NanosecondsPerMicrosecond
	case format.UnixTimestampNanosecond:
		seconds = floorDiv64(value, convert.NanosecondsPerSecond)
		nanos = value - seconds*convert.NanosecondsPerSecond
	default:
		seconds = value
	}

	p.unixSeconds = seconds
	p.unixNanos = int32(nanos)
	p.set(fieldUnixTimestamp)
	return rest, nil
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
