package format

// ISO8601Date is the compiled form of `[year]-[month]-[day]`, the extended
// calendar date of ISO 8601. It is the description used for text marshaling
// of dates.
var ISO8601Date = []Item{
	Comp(Year{}),
	LiteralString("-"),
	Comp(Month{Repr: MonthNumerical, CaseSensitive: true}),
	LiteralString("-"),
	Comp(Day{}),
}

// ISO8601Time is the compiled form of `[hour]:[minute]:[second]` with an
// optional fractional second.
var ISO8601Time = []Item{
	Comp(Hour{}),
	LiteralString(":"),
	Comp(Minute{}),
	LiteralString(":"),
	Comp(Second{}),
	Optional(Compound(
		LiteralString("."),
		Comp(Subsecond{}),
	)),
}

// ISO8601DateTime joins ISO8601Date and ISO8601Time with the `T` separator.
var ISO8601DateTime = joinItems(
	ISO8601Date,
	lit("T"),
	ISO8601Time,
)

// ISO8601DateTimeOffset additionally carries a UTC offset.
var ISO8601DateTimeOffset = joinItems(
	ISO8601DateTime,
	[]Item{
		Comp(OffsetHour{SignMandatory: true}),
		LiteralString(":"),
		Comp(OffsetMinute{}),
	},
)
