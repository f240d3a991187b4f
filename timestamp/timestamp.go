// Package timestamp provides wrappers that serialize an OffsetDateTime as a
// bare unix timestamp, for JSON and msgpack payloads that carry integral
// timestamps instead of formatted text. Decoding always yields a UTC value.
package timestamp

import (
	"strconv"

	"github.com/vmihailenco/msgpack/v5"

	"tempus"
)

const (
	millisPerSecond = 1_000
	microsPerSecond = 1_000_000
	nanosPerSecond  = 1_000_000_000
)

// Seconds serializes as whole seconds since the unix epoch. Any fractional
// second is discarded when encoding.
type Seconds struct {
	tempus.OffsetDateTime
}

// Milliseconds serializes as milliseconds since the unix epoch.
type Milliseconds struct {
	tempus.OffsetDateTime
}

// Microseconds serializes as microseconds since the unix epoch.
type Microseconds struct {
	tempus.OffsetDateTime
}

// Nanoseconds serializes as nanoseconds since the unix epoch. Values outside
// the int64 nanosecond range cannot be encoded.
type Nanoseconds struct {
	tempus.OffsetDateTime
}

func encodeInt(v int64) ([]byte, error) {
	return strconv.AppendInt(nil, v, 10), nil
}

func decodeInt(data []byte) (int64, error) {
	return strconv.ParseInt(string(data), 10, 64)
}

// fromParts rebuilds a UTC date-time from floor seconds and a nanosecond
// remainder in 0..=999_999_999.
func fromParts(seconds int64, nanos int) (tempus.OffsetDateTime, error) {
	odt, err := tempus.FromUnixTimestamp(seconds)
	if err != nil {
		return tempus.OffsetDateTime{}, err
	}
	if nanos == 0 {
		return odt, nil
	}
	t, err := tempus.TimeFromHMSNano(odt.Time().Hour(), odt.Time().Minute(), odt.Time().Second(), nanos)
	if err != nil {
		return tempus.OffsetDateTime{}, err
	}
	return tempus.NewPrimitiveDateTime(odt.Date(), t).AssumeUTC(), nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (s Seconds) MarshalJSON() ([]byte, error) {
	return encodeInt(s.UnixTimestamp())
}

func (s *Seconds) UnmarshalJSON(data []byte) error {
	v, err := decodeInt(data)
	if err != nil {
		return err
	}
	odt, err := tempus.FromUnixTimestamp(v)
	if err != nil {
		return err
	}
	s.OffsetDateTime = odt
	return nil
}

func (s Seconds) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeInt64(s.UnixTimestamp())
}

func (s *Seconds) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	odt, err := tempus.FromUnixTimestamp(v)
	if err != nil {
		return err
	}
	s.OffsetDateTime = odt
	return nil
}

func (m Milliseconds) unixMillis() int64 {
	return m.UnixTimestamp()*millisPerSecond + int64(m.Time().Nanosecond())/(nanosPerSecond/millisPerSecond)
}

func (m Milliseconds) MarshalJSON() ([]byte, error) {
	return encodeInt(m.unixMillis())
}

func (m *Milliseconds) UnmarshalJSON(data []byte) error {
	v, err := decodeInt(data)
	if err != nil {
		return err
	}
	return m.setMillis(v)
}

func (m Milliseconds) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeInt64(m.unixMillis())
}

func (m *Milliseconds) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	return m.setMillis(v)
}

func (m *Milliseconds) setMillis(v int64) error {
	seconds := floorDiv(v, millisPerSecond)
	nanos := int(v-seconds*millisPerSecond) * (nanosPerSecond / millisPerSecond)
	odt, err := fromParts(seconds, nanos)
	if err != nil {
		return err
	}
	m.OffsetDateTime = odt
	return nil
}

func (m Microseconds) unixMicros() int64 {
	return m.UnixTimestamp()*microsPerSecond + int64(m.Time().Nanosecond())/(nanosPerSecond/microsPerSecond)
}

func (m Microseconds) MarshalJSON() ([]byte, error) {
	return encodeInt(m.unixMicros())
}

func (m *Microseconds) UnmarshalJSON(data []byte) error {
	v, err := decodeInt(data)
	if err != nil {
		return err
	}
	return m.setMicros(v)
}

func (m Microseconds) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeInt64(m.unixMicros())
}

func (m *Microseconds) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	return m.setMicros(v)
}

func (m *Microseconds) setMicros(v int64) error {
	seconds := floorDiv(v, microsPerSecond)
	nanos := int(v-seconds*microsPerSecond) * (nanosPerSecond / microsPerSecond)
	odt, err := fromParts(seconds, nanos)
	if err != nil {
		return err
	}
	m.OffsetDateTime = odt
	return nil
}

func (n Nanoseconds) MarshalJSON() ([]byte, error) {
	v, err := n.UnixTimestampNanos()
	if err != nil {
		return nil, err
	}
	return encodeInt(v)
}

func (n *Nanoseconds) UnmarshalJSON(data []byte) error {
	v, err := decodeInt(data)
	if err != nil {
		return err
	}
	odt, err := tempus.FromUnixTimestampNanos(v)
	if err != nil {
		return err
	}
	n.OffsetDateTime = odt
	return nil
}

func (n Nanoseconds) EncodeMsgpack(enc *msgpack.Encoder) error {
	v, err := n.UnixTimestampNanos()
	if err != nil {
		return err
	}
	return enc.EncodeInt64(v)
}

func (n *Nanoseconds) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	odt, err := tempus.FromUnixTimestampNanos(v)
	if err != nil {
		return err
	}
	n.OffsetDateTime = odt
	return nil
}

var (
	_ msgpack.CustomEncoder = Seconds{}
	_ msgpack.CustomDecoder = (*Seconds)(nil)
	_ msgpack.CustomEncoder = Nanoseconds{}
	_ msgpack.CustomDecoder = (*Nanoseconds)(nil)
)
