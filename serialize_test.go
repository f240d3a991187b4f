package tempus

import (
	"encoding/json"
	"testing"
)

func TestDateTextRoundTrip(t *testing.T) {
	tests := []struct {
		date Date
		text string
	}{
		{mustDate(t, 2020, January, 2), "2020-01-02"},
		{mustDate(t, 19, November, 30), "0019-11-30"},
		{mustDate(t, -4, May, 6), "-0004-05-06"},
	}
	for _, tt := range tests {
		text, err := tt.date.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(text) != tt.text {
			t.Errorf("MarshalText(%v) = %q, want %q", tt.date, text, tt.text)
		}
		var got Date
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != tt.date {
			t.Errorf("round trip of %v gave %v", tt.date, got)
		}
	}

	var d Date
	if err := d.UnmarshalText([]byte("2019-02-29")); err == nil {
		t.Error("UnmarshalText should reject an impossible date")
	}
}

func TestTimeTextRoundTrip(t *testing.T) {
	tests := []struct {
		time Time
		text string
	}{
		{mustTime(t, 13, 5, 9, 0), "13:05:09.0"},
		{mustTime(t, 0, 0, 0, 0), "00:00:00.0"},
		{mustTime(t, 23, 59, 59, 125_000_000), "23:59:59.125"},
	}
	for _, tt := range tests {
		text, err := tt.time.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(text) != tt.text {
			t.Errorf("MarshalText(%v) = %q, want %q", tt.time, text, tt.text)
		}
		var got Time
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != tt.time {
			t.Errorf("round trip of %v gave %v", tt.time, got)
		}
	}

	// The fractional second is optional on input.
	var tm Time
	if err := tm.UnmarshalText([]byte("13:05:09")); err != nil {
		t.Fatal(err)
	}
	if tm != mustTime(t, 13, 5, 9, 0) {
		t.Errorf("got %v", tm)
	}
}

func TestDateTimeTextRoundTrip(t *testing.T) {
	dt := NewPrimitiveDateTime(mustDate(t, 2020, February, 29), mustTime(t, 23, 59, 59, 500_000_000))
	text, err := dt.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "2020-02-29T23:59:59.5" {
		t.Errorf("MarshalText = %q", text)
	}
	var got PrimitiveDateTime
	if err := got.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if got != dt {
		t.Errorf("round trip gave %v", got)
	}
}

func TestDateJSON(t *testing.T) {
	// encoding/json picks up the text marshalers.
	type payload struct {
		Start Date `json:"start"`
	}
	out, err := json.Marshal(payload{Start: mustDate(t, 2020, January, 2)})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"start":"2020-01-02"}` {
		t.Errorf("Marshal = %s", out)
	}
	var in payload
	if err := json.Unmarshal(out, &in); err != nil {
		t.Fatal(err)
	}
	if in.Start != mustDate(t, 2020, January, 2) {
		t.Errorf("Unmarshal gave %v", in.Start)
	}
}
