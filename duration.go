package tempus

import (
	"fmt"

	"tempus/internal/convert"
)

// Duration is a signed span of time with nanosecond precision. The seconds
// and nanoseconds fields always carry the same sign.
type Duration struct {
	seconds     int64
	nanoseconds int32
}

// DurationSeconds builds a Duration from a whole number of seconds.
func DurationSeconds(seconds int64) Duration {
	return Duration{seconds: seconds}
}

// DurationNew builds a Duration from seconds and additional nanoseconds.
// Nanoseconds outside ±1s are normalized into the seconds field.
func DurationNew(seconds int64, nanoseconds int32) Duration {
	seconds += int64(nanoseconds) / convert.NanosecondsPerSecond
	nanoseconds %= convert.NanosecondsPerSecond
	if seconds > 0 && nanoseconds < 0 {
		seconds--
		nanoseconds += convert.NanosecondsPerSecond
	} else if seconds < 0 && nanoseconds > 0 {
		seconds++
		nanoseconds -= convert.NanosecondsPerSecond
	}
	return Duration{seconds: seconds, nanoseconds: nanoseconds}
}

// DurationDays builds a Duration from a whole number of days.
// It panics if the result does not fit; use smaller units for spans anywhere
// near the representable limit.
func DurationDays(days int64) Duration {
	if days > maxInt64/convert.SecondsPerDay || days < minInt64/convert.SecondsPerDay {
		panic(fmt.Sprintf("tempus: duration of %d days overflows", days))
	}
	return Duration{seconds: days * convert.SecondsPerDay}
}

// DurationWeeks builds a Duration from a whole number of weeks.
func DurationWeeks(weeks int64) Duration {
	if weeks > maxInt64/convert.SecondsPerWeek || weeks < minInt64/convert.SecondsPerWeek {
		panic(fmt.Sprintf("tempus: duration of %d weeks overflows", weeks))
	}
	return Duration{seconds: weeks * convert.SecondsPerWeek}
}

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63
)

// WholeSeconds returns the number of whole seconds, truncated toward zero.
func (d Duration) WholeSeconds() int64 {
	return d.seconds
}

// WholeDays returns the number of whole days, truncated toward zero.
func (d Duration) WholeDays() int64 {
	return d.seconds / convert.SecondsPerDay
}

// SubsecNanoseconds returns the sub-second part in nanoseconds, carrying the
// sign of the duration.
func (d Duration) SubsecNanoseconds() int32 {
	return d.nanoseconds
}

// IsNegative reports whether the duration is strictly negative.
func (d Duration) IsNegative() bool {
	return d.seconds < 0 || d.nanoseconds < 0
}

// IsPositive reports whether the duration is strictly positive.
func (d Duration) IsPositive() bool {
	return d.seconds > 0 || d.nanoseconds > 0
}

// IsZero reports whether the duration is zero.
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.nanoseconds == 0
}

// Neg returns the negated duration.
func (d Duration) Neg() Duration {
	return Duration{seconds: -d.seconds, nanoseconds: -d.nanoseconds}
}

func (d Duration) String() string {
	if d.nanoseconds == 0 {
		return fmt.Sprintf("%ds", d.seconds)
	}
	ns := d.nanoseconds
	if ns < 0 {
		ns = -ns
	}
	sign := ""
	if d.IsNegative() && d.seconds == 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%09ds", sign, d.seconds, ns)
}
