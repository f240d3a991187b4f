// Package convert defines the fixed ratios between time units used by the
// date core and the format engine. All values are untyped constants so they
// can be used at any integer width without conversion noise.
package convert

const (
	// NanosecondsPerMicrosecond is the number of nanoseconds in a microsecond.
	NanosecondsPerMicrosecond = 1_000
	// NanosecondsPerMillisecond is the number of nanoseconds in a millisecond.
	NanosecondsPerMillisecond = 1_000_000
	// NanosecondsPerSecond is the number of nanoseconds in a second.
	NanosecondsPerSecond = 1_000_000_000

	// MicrosecondsPerSecond is the number of microseconds in a second.
	MicrosecondsPerSecond = 1_000_000
	// MillisecondsPerSecond is the number of milliseconds in a second.
	MillisecondsPerSecond = 1_000

	// SecondsPerMinute is the number of seconds in a minute.
	SecondsPerMinute = 60
	// MinutesPerHour is the number of minutes in an hour.
	MinutesPerHour = 60
	// HoursPerDay is the number of hours in a day.
	HoursPerDay = 24
	// DaysPerWeek is the number of days in a week.
	DaysPerWeek = 7

	// SecondsPerHour is the number of seconds in an hour.
	SecondsPerHour = SecondsPerMinute * MinutesPerHour
	// SecondsPerDay is the number of seconds in a day.
	SecondsPerDay = SecondsPerHour * HoursPerDay
	// SecondsPerWeek is the number of seconds in a week.
	SecondsPerWeek = SecondsPerDay * DaysPerWeek

	// NanosecondsPerDay is the number of nanoseconds in a day.
	NanosecondsPerDay = NanosecondsPerSecond * SecondsPerDay
)
