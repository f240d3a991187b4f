package timestamp

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"tempus"
)

func epochOffset(t *testing.T, seconds int64) tempus.OffsetDateTime {
	t.Helper()
	odt, err := tempus.FromUnixTimestamp(seconds)
	if err != nil {
		t.Fatal(err)
	}
	return odt
}

func TestSecondsJSON(t *testing.T) {
	out, err := json.Marshal(Seconds{epochOffset(t, 1_546_300_800)})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "1546300800" {
		t.Errorf("Marshal = %s", out)
	}

	var s Seconds
	if err := json.Unmarshal([]byte("-86400"), &s); err != nil {
		t.Fatal(err)
	}
	if s.Date() != mustCivil(t, 1969, tempus.December, 31) {
		t.Errorf("decoded date = %v", s.Date())
	}
	if s.Offset() != tempus.UTC {
		t.Errorf("decoded offset = %v", s.Offset())
	}
}

func TestMillisecondsJSON(t *testing.T) {
	var m Milliseconds
	if err := json.Unmarshal([]byte("-500"), &m); err != nil {
		t.Fatal(err)
	}
	if m.UnixTimestamp() != -1 || m.Time().Nanosecond() != 500_000_000 {
		t.Errorf("decoded %v", m.OffsetDateTime)
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "-500" {
		t.Errorf("round trip = %s", out)
	}
}

func TestMicrosecondsJSON(t *testing.T) {
	var m Microseconds
	if err := json.Unmarshal([]byte("1546300800000001"), &m); err != nil {
		t.Fatal(err)
	}
	if m.UnixTimestamp() != 1_546_300_800 || m.Time().Nanosecond() != 1_000 {
		t.Errorf("decoded %v", m.OffsetDateTime)
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "1546300800000001" {
		t.Errorf("round trip = %s", out)
	}
}

func TestNanosecondsJSON(t *testing.T) {
	var n Nanoseconds
	if err := json.Unmarshal([]byte("-500000000"), &n); err != nil {
		t.Fatal(err)
	}
	if n.UnixTimestamp() != -1 || n.Time().Nanosecond() != 500_000_000 {
		t.Errorf("decoded %v", n.OffsetDateTime)
	}

	out, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "-500000000" {
		t.Errorf("round trip = %s", out)
	}

	// Values outside the int64 nanosecond range cannot be encoded.
	far, err := tempus.NewDate(3000, tempus.January, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := json.Marshal(Nanoseconds{far.Midnight().AssumeUTC()}); err == nil {
		t.Error("far-future nanosecond encoding should fail")
	}
}

func TestSecondsMsgpack(t *testing.T) {
	want := Seconds{epochOffset(t, 1_546_300_800)}

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(want); err != nil {
		t.Fatal(err)
	}
	var got Seconds
	if err := msgpack.NewDecoder(&buf).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.OffsetDateTime != want.OffsetDateTime {
		t.Errorf("round trip gave %v, want %v", got.OffsetDateTime, want.OffsetDateTime)
	}
}

func TestMillisecondsMsgpack(t *testing.T) {
	var m Milliseconds
	if err := m.setMillis(-500); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(m); err != nil {
		t.Fatal(err)
	}
	var got Milliseconds
	if err := msgpack.NewDecoder(&buf).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.OffsetDateTime != m.OffsetDateTime {
		t.Errorf("round trip gave %v", got.OffsetDateTime)
	}
}

func TestStructFields(t *testing.T) {
	type event struct {
		At Milliseconds `json:"at"`
	}
	var e event
	if err := json.Unmarshal([]byte(`{"at":1546300800500}`), &e); err != nil {
		t.Fatal(err)
	}
	if e.At.UnixTimestamp() != 1_546_300_800 || e.At.Time().Nanosecond() != 500_000_000 {
		t.Errorf("decoded %v", e.At.OffsetDateTime)
	}
	out, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"at":1546300800500}` {
		t.Errorf("round trip = %s", out)
	}
}

func mustCivil(t *testing.T, year int, month tempus.Month, day int) tempus.Date {
	t.Helper()
	d, err := tempus.NewDate(year, month, day)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
