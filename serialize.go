package tempus

import "tempus/format"

// MarshalText renders the date as an ISO 8601 extended calendar date.
func (d Date) MarshalText() ([]byte, error) {
	s, err := d.Format(format.ISO8601Date)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses an ISO 8601 extended calendar date.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text), format.ISO8601Date)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText renders the time as hh:mm:ss with a fractional second.
func (t Time) MarshalText() ([]byte, error) {
	s, err := t.Format(format.ISO8601Time)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses an ISO 8601 clock time.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := ParseTime(string(text), format.ISO8601Time)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText renders the date-time in ISO 8601 form without an offset.
func (dt PrimitiveDateTime) MarshalText() ([]byte, error) {
	s, err := dt.Format(format.ISO8601DateTime)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses an ISO 8601 date-time without an offset.
func (dt *PrimitiveDateTime) UnmarshalText(text []byte) error {
	parsed, err := ParsePrimitiveDateTime(string(text), format.ISO8601DateTime)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
