package tempus

import "testing"

func TestDurationNewNormalizes(t *testing.T) {
	tests := []struct {
		seconds int64
		nanos   int32
		wantSec int64
		wantNs  int32
	}{
		{1, 500_000_000, 1, 500_000_000},
		{1, 1_500_000_000, 2, 500_000_000},
		{1, -500_000_000, 0, 500_000_000},
		{-1, 500_000_000, 0, -500_000_000},
		{-1, -1_500_000_000, -2, -500_000_000},
		{0, -500_000_000, 0, -500_000_000},
	}
	for _, tt := range tests {
		d := DurationNew(tt.seconds, tt.nanos)
		if d.WholeSeconds() != tt.wantSec || d.SubsecNanoseconds() != tt.wantNs {
			t.Errorf("DurationNew(%d, %d) = (%d, %d), want (%d, %d)",
				tt.seconds, tt.nanos, d.WholeSeconds(), d.SubsecNanoseconds(), tt.wantSec, tt.wantNs)
		}
	}
}

func TestDurationUnits(t *testing.T) {
	if got := DurationDays(2).WholeSeconds(); got != 172_800 {
		t.Errorf("DurationDays(2) = %d seconds", got)
	}
	if got := DurationWeeks(1).WholeDays(); got != 7 {
		t.Errorf("DurationWeeks(1) = %d days", got)
	}
	if got := DurationSeconds(-90).WholeDays(); got != 0 {
		t.Errorf("WholeDays of -90s = %d", got)
	}
}

func TestDurationSigns(t *testing.T) {
	if !DurationSeconds(-1).IsNegative() {
		t.Error("negative duration not reported negative")
	}
	if !DurationSeconds(1).IsPositive() {
		t.Error("positive duration not reported positive")
	}
	if !DurationSeconds(0).IsZero() {
		t.Error("zero duration not reported zero")
	}
	if got := DurationSeconds(5).Neg(); got != DurationSeconds(-5) {
		t.Errorf("Neg() = %v", got)
	}
}

func TestDurationDaysOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	DurationDays(1 << 62)
}

func TestDurationString(t *testing.T) {
	if got := DurationSeconds(90).String(); got != "90s" {
		t.Errorf("String() = %q", got)
	}
	if got := DurationNew(1, 500_000_000).String(); got != "1.500000000s" {
		t.Errorf("String() = %q", got)
	}
	if got := DurationNew(0, -500_000_000).String(); got != "-0.500000000s" {
		t.Errorf("String() = %q", got)
	}
}
