package tempus

import (
	"strconv"

	"tempus/format"
	"tempus/internal/convert"
)

// formatValues carries whichever parts of a value are available to the
// formatting walker. A nil field means the corresponding components cannot
// be formatted.
type formatValues struct {
	date   *Date
	time   *Time
	offset *UTCOffset
}

// Format renders the date using a compiled format description.
func (d Date) Format(items []format.Item) (string, error) {
	return formatToString(items, formatValues{date: &d})
}

// Format renders the time using a compiled format description.
func (t Time) Format(items []format.Item) (string, error) {
	return formatToString(items, formatValues{time: &t})
}

// Format renders the offset using a compiled format description.
func (o UTCOffset) Format(items []format.Item) (string, error) {
	return formatToString(items, formatValues{offset: &o})
}

// Format renders the date-time using a compiled format description.
func (dt PrimitiveDateTime) Format(items []format.Item) (string, error) {
	return formatToString(items, formatValues{date: &dt.date, time: &dt.time})
}

// Format renders the date-time and offset using a compiled format
// description.
func (odt OffsetDateTime) Format(items []format.Item) (string, error) {
	return formatToString(items, formatValues{
		date:   &odt.datetime.date,
		time:   &odt.datetime.time,
		offset: &odt.offset,
	})
}

func formatToString(items []format.Item, v formatValues) (string, error) {
	buf, err := appendItems(nil, items, v)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func appendItems(buf []byte, items []format.Item, v formatValues) ([]byte, error) {
	var err error
	for _, it := range items {
		buf, err = appendItem(buf, it, v)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func appendItem(buf []byte, it format.Item, v formatValues) ([]byte, error) {
	switch it.Kind {
	case format.ItemLiteral:
		return append(buf, it.Literal...), nil
	case format.ItemComponent:
		return appendComponent(buf, it.Component, v)
	case format.ItemCompound:
		return appendItems(buf, it.Items, v)
	case format.ItemOptional:
		// Optional only matters when parsing; formatting always emits.
		return appendItem(buf, it.Items[0], v)
	case format.ItemFirst:
		if len(it.Items) == 0 {
			return buf, nil
		}
		return appendItem(buf, it.Items[0], v)
	default:
		return buf, nil
	}
}

func appendComponent(buf []byte, c format.Component, v formatValues) ([]byte, error) {
	switch c := c.(type) {
	case format.Day:
		if v.date == nil {
			return nil, &InsufficientInfoError{Target: "day"}
		}
		return appendPadded(buf, v.date.Day(), 2, c.Padding), nil

	case format.Month:
		if v.date == nil {
			return nil, &InsufficientInfoError{Target: "month"}
		}
		m := v.date.Month()
		switch c.Repr {
		case format.MonthLong:
			return append(buf, m.String()...), nil
		case format.MonthShort:
			return append(buf, m.ShortName()...), nil
		default:
			return appendPadded(buf, int(m), 2, c.Padding), nil
		}

	case format.Ordinal:
		if v.date == nil {
			return nil, &InsufficientInfoError{Target: "ordinal"}
		}
		return appendPadded(buf, v.date.Ordinal(), 3, c.Padding), nil

	case format.Weekday:
		if v.date == nil {
			return nil, &InsufficientInfoError{Target: "weekday"}
		}
		wd := v.date.Weekday()
		switch c.Repr {
		case format.WeekdayShort:
			return append(buf, wd.ShortName()...), nil
		case format.WeekdaySunday:
			n := wd.NumberDaysFromSunday()
			if c.OneIndexed {
				n = wd.NumberFromSunday()
			}
			return strconv.AppendInt(buf, int64(n), 10), nil
		case format.WeekdayMonday:
			n := wd.NumberDaysFromMonday()
			if c.OneIndexed {
				n = wd.NumberFromMonday()
			}
			return strconv.AppendInt(buf, int64(n), 10), nil
		default:
			return append(buf, wd.String()...), nil
		}

	case format.WeekNumber:
		if v.date == nil {
			return nil, &InsufficientInfoError{Target: "week number"}
		}
		var week int
		switch c.Repr {
		case format.WeekNumberSunday:
			week = v.date.SundayBasedWeek()
		case format.WeekNumberMonday:
			week = v.date.MondayBasedWeek()
		default:
			week = v.date.ISOWeek()
		}
		return appendPadded(buf, week, 2, c.Padding), nil

	case format.Year:
		if v.date == nil {
			return nil, &InsufficientInfoError{Target: "year"}
		}
		year := v.date.Year()
		if c.ISOWeekBased {
			year, _, _ = v.date.ISOWeekDate()
		}
		var value, width int
		switch c.Repr {
		case format.YearCentury:
			value, width = year/100, 2
		case format.YearLastTwo:
			// The last two digits carry no sign.
			value, width = year%100, 2
			if value < 0 {
				value = -value
			}
			return appendPadded(buf, value, width, c.Padding), nil
		default:
			value, width = year, 4
		}
		if value < 0 {
			buf = append(buf, '-')
			value = -value
		} else if c.SignMandatory {
			buf = append(buf, '+')
		}
		return appendPadded(buf, value, width, c.Padding), nil

	case format.Hour:
		if v.time == nil {
			return nil, &InsufficientInfoError{Target: "hour"}
		}
		hour := v.time.Hour()
		if c.Is12HourClock {
			hour, _ = v.time.Hour12()
		}
		return appendPadded(buf, hour, 2, c.Padding), nil

	case format.Minute:
		if v.time == nil {
			return nil, &InsufficientInfoError{Target: "minute"}
		}
		return appendPadded(buf, v.time.Minute(), 2, c.Padding), nil

	case format.Period:
		if v.time == nil {
			return nil, &InsufficientInfoError{Target: "period"}
		}
		_, pm := v.time.Hour12()
		s := periodString(pm, c.Uppercase)
		return append(buf, s...), nil

	case format.Second:
		if v.time == nil {
			return nil, &InsufficientInfoError{Target: "second"}
		}
		return appendPadded(buf, v.time.Second(), 2, c.Padding), nil

	case format.Subsecond:
		if v.time == nil {
			return nil, &InsufficientInfoError{Target: "subsecond"}
		}
		return appendSubsecond(buf, v.time.Nanosecond(), c.Digits), nil

	case format.OffsetHour:
		if v.offset == nil {
			return nil, &InsufficientInfoError{Target: "offset hour"}
		}
		hours := v.offset.WholeHours()
		if v.offset.IsNegative() {
			buf = append(buf, '-')
			hours = -hours
		} else if c.SignMandatory {
			buf = append(buf, '+')
		}
		return appendPadded(buf, hours, 2, c.Padding), nil

	case format.OffsetMinute:
		if v.offset == nil {
			return nil, &InsufficientInfoError{Target: "offset minute"}
		}
		minutes := v.offset.MinutesPastHour()
		if minutes < 0 {
			minutes = -minutes
		}
		return appendPadded(buf, minutes, 2, c.Padding), nil

	case format.OffsetSecond:
		if v.offset == nil {
			return nil, &InsufficientInfoError{Target: "offset second"}
		}
		seconds := v.offset.SecondsPastMinute()
		if seconds < 0 {
			seconds = -seconds
		}
		return appendPadded(buf, seconds, 2, c.Padding), nil

	case format.Ignore, format.End:
		return buf, nil

	case format.UnixTimestamp:
		if v.date == nil || v.time == nil || v.offset == nil {
			return nil, &InsufficientInfoError{Target: "unix timestamp"}
		}
		odt := NewPrimitiveDateTime(*v.date, *v.time).AssumeOffset(*v.offset)
		return appendUnixTimestamp(buf, odt, c)

	default:
		return nil, &InsufficientInfoError{Target: "component"}
	}
}

func appendPadded(buf []byte, value, width int, pad format.Padding) []byte {
	digits := strconv.AppendInt(nil, int64(value), 10)
	if pad != format.PadNone {
		fill := byte('0')
		if pad == format.PadSpace {
			fill = ' '
		}
		for n := width - len(digits); n > 0; n-- {
			buf = append(buf, fill)
		}
	}
	return append(buf, digits...)
}

func periodString(pm, uppercase bool) string {
	switch {
	case pm && uppercase:
		return "PM"
	case pm:
		return "pm"
	case uppercase:
		return "AM"
	default:
		return "am"
	}
}

func appendSubsecond(buf []byte, nanos int, digits format.SubsecondDigits) []byte {
	if digits != format.SubsecondOneOrMore {
		width := int(digits)
		value := nanos / pow10(9-width)
		return appendPadded(buf, value, width, format.PadZero)
	}
	// Minimal representation: strip trailing zeroes, keep at least one digit.
	value, width := nanos, 9
	for width > 1 && value%10 == 0 {
		value /= 10
		width--
	}
	return appendPadded(buf, value, width, format.PadZero)
}

func appendUnixTimestamp(buf []byte, odt OffsetDateTime, c format.UnixTimestamp) ([]byte, error) {
	seconds := odt.UnixTimestamp()
	nanos := int64(odt.Time().Nanosecond())

	var value int64
	switch c.Precision {
	case format.UnixTimestampMillisecond:
		value = seconds*convert.MillisecondsPerSecond + nanos/convert.NanosecondsPerMillisecond
	case format.UnixTimestampMicrosecond:
		value = seconds*convert.MicrosecondsPerSecond + nanos/convert.NanosecondsPerMicrosecond
	case format.UnixTimestampNanosecond:
		var err error
		value, err = odt.UnixTimestampNanos()
		if err != nil {
			return nil, err
		}
	default:
		value = seconds
	}

	if value < 0 {
		buf = append(buf, '-')
		value = -value
	} else if c.SignMandatory {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, value, 10), nil
}

func pow10(n int) int {
	out := 1
	for ; n > 0; n-- {
		out *= 10
	}
	return out
}
