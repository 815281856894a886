package dates

import (
	"testing"
	"time"
)

var loc = time.FixedZone("TEST", 2*60*60)

func TestSameDay(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"midnight", time.Date(2024, 3, 10, 0, 0, 0, 0, loc), true},
		{"late evening", time.Date(2024, 3, 10, 23, 59, 0, 0, loc), true},
		{"tomorrow", time.Date(2024, 3, 11, 0, 1, 0, 0, loc), false},
		{"yesterday", time.Date(2024, 3, 9, 23, 59, 0, 0, loc), false},
		// 22:30 UTC on the 10th is 00:30 on the 11th in TEST
		{"other zone next day", time.Date(2024, 3, 10, 22, 30, 0, 0, time.UTC), false},
		{"other zone same day", time.Date(2024, 3, 10, 21, 30, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.t, now); got != tt.want {
				t.Errorf("SameDay(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestAfterToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, loc)

	if AfterToday(time.Date(2024, 3, 10, 23, 59, 59, 0, loc), now) {
		t.Error("Expected end of today not to be upcoming")
	}
	if !AfterToday(time.Date(2024, 3, 11, 0, 0, 0, 0, loc), now) {
		t.Error("Expected midnight tomorrow to be upcoming")
	}
	if AfterToday(time.Date(2024, 3, 1, 0, 0, 0, 0, loc), now) {
		t.Error("Expected past date not to be upcoming")
	}
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2024, 3, 10, 15, 4, 5, 6, loc))
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestStartOfTomorrow_MonthBoundary(t *testing.T) {
	got := StartOfTomorrow(time.Date(2024, 2, 29, 10, 0, 0, 0, loc))
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
