package tempus

import (
	"errors"

	"tempus/internal/convert"
)

// OffsetDateTime is a PrimitiveDateTime with a UTC offset attached, making
// it an absolute point in time.
type OffsetDateTime struct {
	datetime PrimitiveDateTime
	offset   UTCOffset
}

// Julian day number of 1970-01-01.
const unixEpochJulianDay = 2_440_588

// ErrTimestampOverflow is returned when a Unix timestamp cannot be
// represented at the requested precision.
var ErrTimestampOverflow = errors.New("tempus: unix timestamp overflows int64 at this precision")

// Date returns the date component.
func (odt OffsetDateTime) Date() Date { return odt.datetime.date }

// Time returns the clock-time component.
func (odt OffsetDateTime) Time() Time { return odt.datetime.time }

// Offset returns the UTC offset.
func (odt OffsetDateTime) Offset() UTCOffset { return odt.offset }

// UnixTimestamp returns the whole seconds since 1970-01-01T00:00:00Z.
func (odt OffsetDateTime) UnixTimestamp() int64 {
	days := int64(odt.datetime.date.JulianDay() - unixEpochJulianDay)
	return days*convert.SecondsPerDay +
		int64(odt.datetime.time.SecondsFromMidnight()) -
		int64(odt.offset.WholeSeconds())
}

// UnixTimestampNanos returns the nanoseconds since 1970-01-01T00:00:00Z.
// Dates far from the epoch overflow int64 nanoseconds; in that case
// ErrTimestampOverflow is returned.
func (odt OffsetDateTime) UnixTimestampNanos() (int64, error) {
	secs := odt.UnixTimestamp()
	if secs > maxInt64/convert.NanosecondsPerSecond-1 ||
		secs < minInt64/convert.NanosecondsPerSecond+1 {
		return 0, ErrTimestampOverflow
	}
	return secs*convert.NanosecondsPerSecond + int64(odt.datetime.time.Nanosecond()), nil
}

// FromUnixTimestamp builds an OffsetDateTime in UTC from whole seconds since
// the epoch. It fails when the instant is outside the representable dates.
func FromUnixTimestamp(seconds int64) (OffsetDateTime, error) {
	days := seconds / convert.SecondsPerDay
	secondOfDay := seconds % convert.SecondsPerDay
	if secondOfDay < 0 {
		days--
		secondOfDay += convert.SecondsPerDay
	}

	date, err := DateFromJulianDay(unixEpochJulianDay + int(days))
	if err != nil {
		return OffsetDateTime{}, componentRange("timestamp",
			DateMin.Midnight().AssumeUTC().UnixTimestamp(),
			DateMax.Midnight().AssumeUTC().UnixTimestamp()+convert.SecondsPerDay-1,
			seconds, "")
	}

	t, err := TimeFromHMS(
		int(secondOfDay)/convert.SecondsPerHour,
		int(secondOfDay)%convert.SecondsPerHour/convert.SecondsPerMinute,
		int(secondOfDay)%convert.SecondsPerMinute,
	)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return date.WithTime(t).AssumeUTC(), nil
}

// FromUnixTimestampNanos builds an OffsetDateTime in UTC from nanoseconds
// since the epoch.
func FromUnixTimestampNanos(nanos int64) (OffsetDateTime, error) {
	secs := nanos / convert.NanosecondsPerSecond
	subsec := nanos % convert.NanosecondsPerSecond
	if subsec < 0 {
		secs--
		subsec += convert.NanosecondsPerSecond
	}

	odt, err := FromUnixTimestamp(secs)
	if err != nil {
		return OffsetDateTime{}, err
	}
	t, err := TimeFromHMSNano(odt.Time().Hour(), odt.Time().Minute(), odt.Time().Second(), int(subsec))
	if err != nil {
		return OffsetDateTime{}, err
	}
	return odt.Date().WithTime(t).AssumeUTC(), nil
}

func (odt OffsetDateTime) String() string {
	return odt.datetime.String() + " " + odt.offset.String()
}
