package tempus

import "testing"

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2019, false},
		{2020, true},
		{1900, false},
		{2000, true},
		{2100, false},
		{0, true},
		{-4, true},
		{-100, false},
		{-400, true},
	}
	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	if got := DaysInYear(2019); got != 365 {
		t.Errorf("DaysInYear(2019) = %d", got)
	}
	if got := DaysInYear(2020); got != 366 {
		t.Errorf("DaysInYear(2020) = %d", got)
	}
}

func TestWeeksInYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2015, 53}, // January 1 is a Thursday
		{2020, 53}, // January 1 is a Wednesday in a leap year
		{2019, 52},
		{2021, 52},
		{2023, 52},
		{2026, 53},
	}
	for _, tt := range tests {
		if got := WeeksInYear(tt.year); got != tt.want {
			t.Errorf("WeeksInYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestDivFloor(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{6, 3, 2},
		{-6, 3, -2},
	}
	for _, tt := range tests {
		if got := divFloor(tt.a, tt.b); got != tt.want {
			t.Errorf("divFloor(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
