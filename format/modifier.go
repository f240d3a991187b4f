package format

// Padding controls how a numeric component is padded to its width.
type Padding uint8

const (
	// PadZero pads with leading zeroes.
	PadZero Padding = iota
	// PadSpace pads with leading spaces.
	PadSpace
	// PadNone disables padding.
	PadNone
)

// MonthRepr selects how a month is written.
type MonthRepr uint8

const (
	MonthNumerical MonthRepr = iota
	MonthLong
	MonthShort
)

// WeekdayRepr selects how a weekday is written.
type WeekdayRepr uint8

const (
	WeekdayLong WeekdayRepr = iota
	WeekdayShort
	// WeekdaySunday is the weekday number counted from Sunday.
	WeekdaySunday
	// WeekdayMonday is the weekday number counted from Monday.
	WeekdayMonday
)

// WeekNumberRepr selects which week numbering scheme a week number uses.
type WeekNumberRepr uint8

const (
	WeekNumberISO WeekNumberRepr = iota
	WeekNumberSunday
	WeekNumberMonday
)

// YearRepr selects how much of a year is written.
type YearRepr uint8

const (
	YearFull YearRepr = iota
	YearCentury
	YearLastTwo
)

// SubsecondDigits is the number of fractional-second digits. Zero means one
// or more digits, chosen to fit the value when formatting and consumed
// greedily when parsing.
type SubsecondDigits uint8

// SubsecondOneOrMore formats the minimal digit run and parses greedily.
const SubsecondOneOrMore SubsecondDigits = 0

// UnixTimestampPrecision is the unit a unix timestamp is expressed in.
type UnixTimestampPrecision uint8

const (
	UnixTimestampSecond UnixTimestampPrecision = iota
	UnixTimestampMillisecond
	UnixTimestampMicrosecond
	UnixTimestampNanosecond
)
