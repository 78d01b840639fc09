package entities

import (
	"testing"
	"time"
)

func TestNewHorizon_TruncatesStart(t *testing.T) {
	start := time.Date(2020, 3, 17, 14, 30, 0, 0, time.UTC)
	h, err := NewHorizon(start, 7)
	if err != nil {
		t.Fatalf("NewHorizon failed: %v", err)
	}

	if !h.Start.Equal(Date(2020, 3, 17)) {
		t.Errorf("Start = %v, want 2020-03-17", h.Start)
	}
	if !h.End().Equal(Date(2020, 3, 23)) {
		t.Errorf("End = %v, want 2020-03-23", h.End())
	}
}

func TestNewHorizon_Invalid(t *testing.T) {
	if _, err := NewHorizon(time.Time{}, 7); err == nil {
		t.Error("Expected error for zero start date, got none")
	}
	if _, err := NewHorizon(Date(2020, 3, 17), 0); err == nil {
		t.Error("Expected error for zero days, got none")
	}
}

func TestHorizon_Dates(t *testing.T) {
	h, _ := NewHorizon(Date(2020, 3, 17), 7)

	dates := h.Dates()
	if len(dates) != 7 {
		t.Fatalf("Expected 7 dates, got %d", len(dates))
	}
	for i, d := range dates {
		want := Date(2020, 3, 17+i)
		if !d.Equal(want) {
			t.Errorf("Dates()[%d] = %v, want %v", i, d, want)
		}
	}
}

func TestHorizon_Contains(t *testing.T) {
	h, _ := NewHorizon(Date(2020, 3, 17), 7)

	if !h.Contains(Date(2020, 3, 17)) {
		t.Error("Expected horizon to contain its start date")
	}
	if !h.Contains(Date(2020, 3, 23)) {
		t.Error("Expected horizon to contain its end date")
	}
	if h.Contains(Date(2020, 3, 16)) {
		t.Error("Expected horizon to exclude the day before start")
	}
	if h.Contains(Date(2020, 3, 24)) {
		t.Error("Expected horizon to exclude the day after end")
	}
}
