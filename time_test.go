package tempus

import "testing"

func TestTimeFromHMS(t *testing.T) {
	tests := []struct {
		hour, minute, second int
		wantErr              bool
	}{
		{0, 0, 0, false},
		{23, 59, 59, false},
		{24, 0, 0, true},
		{0, 60, 0, true},
		{0, 0, 60, true},
		{-1, 0, 0, true},
	}
	for _, tt := range tests {
		_, err := TimeFromHMS(tt.hour, tt.minute, tt.second)
		if gotErr := err != nil; gotErr != tt.wantErr {
			t.Errorf("TimeFromHMS(%d, %d, %d) error = %v, wantErr %v",
				tt.hour, tt.minute, tt.second, err, tt.wantErr)
		}
	}
}

func TestTimeSubsecondConstructors(t *testing.T) {
	tm, err := TimeFromHMSMilli(1, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := tm.Nanosecond(); got != 4_000_000 {
		t.Errorf("Nanosecond() = %d", got)
	}
	tm, err = TimeFromHMSMicro(1, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := tm.Nanosecond(); got != 4_000 {
		t.Errorf("Nanosecond() = %d", got)
	}
	if _, err := TimeFromHMSMilli(1, 2, 3, 1000); err == nil {
		t.Error("millisecond 1000 should fail")
	}
	if _, err := TimeFromHMSNano(1, 2, 3, 1_000_000_000); err == nil {
		t.Error("nanosecond 1e9 should fail")
	}
}

func TestHour12(t *testing.T) {
	tests := []struct {
		hour24 int
		hour12 int
		pm     bool
	}{
		{0, 12, false},
		{1, 1, false},
		{11, 11, false},
		{12, 12, true},
		{13, 1, true},
		{23, 11, true},
	}
	for _, tt := range tests {
		tm, err := TimeFromHMS(tt.hour24, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		hour, pm := tm.Hour12()
		if hour != tt.hour12 || pm != tt.pm {
			t.Errorf("Hour12() for %d = (%d, %v), want (%d, %v)",
				tt.hour24, hour, pm, tt.hour12, tt.pm)
		}
	}
}

func TestTimeString(t *testing.T) {
	tm, _ := TimeFromHMS(1, 2, 3)
	if got := tm.String(); got != "1:02:03.0" {
		t.Errorf("String() = %q", got)
	}
	tm, _ = TimeFromHMSMilli(1, 2, 3, 40)
	if got := tm.String(); got != "1:02:03.04" {
		t.Errorf("String() = %q", got)
	}
}
