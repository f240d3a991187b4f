package tempus

import (
	"fmt"

	"tempus/internal/convert"
)

// UTCOffset is a signed offset from UTC, stored as whole seconds. Offsets up
// to ±25:59:59 are accepted, mirroring what real-world timestamps use.
type UTCOffset struct {
	seconds int32
}

// UTC is the zero offset.
var UTC = UTCOffset{}

const maxOffsetHours = 25

// OffsetFromHMS builds an offset from hours, minutes and seconds. All three
// components must carry the same sign (or be zero).
func OffsetFromHMS(hours, minutes, seconds int) (UTCOffset, error) {
	switch {
	case hours < -maxOffsetHours || hours > maxOffsetHours:
		return UTCOffset{}, componentRange("hours", -maxOffsetHours, maxOffsetHours, int64(hours), "")
	case minutes <= -convert.MinutesPerHour || minutes >= convert.MinutesPerHour:
		return UTCOffset{}, componentRange("minutes", -(convert.MinutesPerHour - 1), convert.MinutesPerHour-1, int64(minutes), "")
	case seconds <= -convert.SecondsPerMinute || seconds >= convert.SecondsPerMinute:
		return UTCOffset{}, componentRange("seconds", -(convert.SecondsPerMinute - 1), convert.SecondsPerMinute-1, int64(seconds), "")
	}
	if (hours > 0 && (minutes < 0 || seconds < 0)) ||
		(hours < 0 && (minutes > 0 || seconds > 0)) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		return UTCOffset{}, componentRange("minutes", 0, 0, int64(minutes), "with mismatched sign")
	}
	return UTCOffset{seconds: int32(hours*convert.SecondsPerHour + minutes*convert.SecondsPerMinute + seconds)}, nil
}

// OffsetFromWholeSeconds builds an offset from a signed number of seconds.
func OffsetFromWholeSeconds(seconds int) (UTCOffset, error) {
	const limit = maxOffsetHours*convert.SecondsPerHour + convert.SecondsPerHour - 1
	if seconds < -limit || seconds > limit {
		return UTCOffset{}, componentRange("seconds", -limit, limit, int64(seconds), "")
	}
	return UTCOffset{seconds: int32(seconds)}, nil
}

// WholeHours returns the hours component, truncated toward zero.
func (o UTCOffset) WholeHours() int {
	return int(o.seconds) / convert.SecondsPerHour
}

// WholeSeconds returns the full offset in seconds.
func (o UTCOffset) WholeSeconds() int {
	return int(o.seconds)
}

// MinutesPastHour returns the minutes component, carrying the offset's sign.
func (o UTCOffset) MinutesPastHour() int {
	return int(o.seconds) % convert.SecondsPerHour / convert.SecondsPerMinute
}

// SecondsPastMinute returns the seconds component, carrying the offset's sign.
func (o UTCOffset) SecondsPastMinute() int {
	return int(o.seconds) % convert.SecondsPerMinute
}

// IsNegative reports whether the offset is west of UTC.
func (o UTCOffset) IsNegative() bool {
	return o.seconds < 0
}

func (o UTCOffset) String() string {
	sign := "+"
	s := o.seconds
	if s < 0 {
		sign = "-"
		s = -s
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign,
		s/convert.SecondsPerHour,
		s%convert.SecondsPerHour/convert.SecondsPerMinute,
		s%convert.SecondsPerMinute)
}
