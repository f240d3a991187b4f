package tempus

import (
	"fmt"

	"tempus/internal/convert"
)

// Time is a clock time with nanosecond precision. It carries no date and no
// offset.
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

// Midnight is 00:00:00.0, the zero value of Time.
var Midnight = Time{}

// TimeFromHMS builds a Time from hour, minute and second.
func TimeFromHMS(hour, minute, second int) (Time, error) {
	return TimeFromHMSNano(hour, minute, second, 0)
}

// TimeFromHMSMilli builds a Time with millisecond precision.
func TimeFromHMSMilli(hour, minute, second, millisecond int) (Time, error) {
	if millisecond < 0 || millisecond >= convert.MillisecondsPerSecond {
		return Time{}, componentRange("millisecond", 0, convert.MillisecondsPerSecond-1, int64(millisecond), "")
	}
	return TimeFromHMSNano(hour, minute, second, millisecond*convert.NanosecondsPerMillisecond)
}

// TimeFromHMSMicro builds a Time with microsecond precision.
func TimeFromHMSMicro(hour, minute, second, microsecond int) (Time, error) {
	if microsecond < 0 || microsecond >= convert.MicrosecondsPerSecond {
		return Time{}, componentRange("microsecond", 0, convert.MicrosecondsPerSecond-1, int64(microsecond), "")
	}
	return TimeFromHMSNano(hour, minute, second, microsecond*convert.NanosecondsPerMicrosecond)
}

// TimeFromHMSNano builds a Time with nanosecond precision.
func TimeFromHMSNano(hour, minute, second, nanosecond int) (Time, error) {
	switch {
	case hour < 0 || hour >= convert.HoursPerDay:
		return Time{}, componentRange("hour", 0, convert.HoursPerDay-1, int64(hour), "")
	case minute < 0 || minute >= convert.MinutesPerHour:
		return Time{}, componentRange("minute", 0, convert.MinutesPerHour-1, int64(minute), "")
	case second < 0 || second >= convert.SecondsPerMinute:
		return Time{}, componentRange("second", 0, convert.SecondsPerMinute-1, int64(second), "")
	case nanosecond < 0 || nanosecond >= convert.NanosecondsPerSecond:
		return Time{}, componentRange("nanosecond", 0, convert.NanosecondsPerSecond-1, int64(nanosecond), "")
	}
	return Time{
		hour:       uint8(hour),
		minute:     uint8(minute),
		second:     uint8(second),
		nanosecond: uint32(nanosecond),
	}, nil
}

// Hour returns the hour in 0..=23.
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute in 0..=59.
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second in 0..=59.
func (t Time) Second() int { return int(t.second) }

// Nanosecond returns the sub-second part in nanoseconds.
func (t Time) Nanosecond() int { return int(t.nanosecond) }

// Hour12 returns the hour on a 12-hour clock and whether it is PM.
// Midnight and noon are both reported as 12.
func (t Time) Hour12() (hour int, pm bool) {
	pm = t.hour >= 12
	hour = int(t.hour % 12)
	if hour == 0 {
		hour = 12
	}
	return hour, pm
}

// SecondsFromMidnight returns the whole seconds elapsed since midnight.
func (t Time) SecondsFromMidnight() int {
	return int(t.hour)*convert.SecondsPerHour +
		int(t.minute)*convert.SecondsPerMinute +
		int(t.second)
}

func (t Time) String() string {
	if t.nanosecond == 0 {
		return fmt.Sprintf("%d:%02d:%02d.0", t.hour, t.minute, t.second)
	}
	s := fmt.Sprintf("%09d", t.nanosecond)
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return fmt.Sprintf("%d:%02d:%02d.%s", t.hour, t.minute, t.second, s)
}
