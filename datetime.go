package tempus

// PrimitiveDateTime is a Date paired with a Time, with no offset attached.
type PrimitiveDateTime struct {
	date Date
	time Time
}

// NewPrimitiveDateTime pairs a date with a clock time.
func NewPrimitiveDateTime(date Date, time Time) PrimitiveDateTime {
	return PrimitiveDateTime{date: date, time: time}
}

// Date returns the date component.
func (dt PrimitiveDateTime) Date() Date { return dt.date }

// Time returns the clock-time component.
func (dt PrimitiveDateTime) Time() Time { return dt.time }

// AssumeUTC interprets the date-time as being in UTC.
func (dt PrimitiveDateTime) AssumeUTC() OffsetDateTime {
	return OffsetDateTime{datetime: dt, offset: UTC}
}

// AssumeOffset interprets the date-time as being at the given offset.
func (dt PrimitiveDateTime) AssumeOffset(offset UTCOffset) OffsetDateTime {
	return OffsetDateTime{datetime: dt, offset: offset}
}

func (dt PrimitiveDateTime) String() string {
	return dt.date.String() + " " + dt.time.String()
}
