package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 3, 4, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
}

func TestBeginningOfMonth(t *testing.T) {
	in := time.Date(2024, 3, 17, 14, 5, 0, 0, time.UTC)
	got := BeginningOfMonth(in)
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMonthKey(t *testing.T) {
	in := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)
	if got := MonthKey(in); got != "2024-03" {
		t.Fatalf("expected 2024-03, got %s", got)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+15550100100", "555 010-0100", "(91) 98765-4321"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Fatalf("expected %q valid", p)
		}
	}
	invalid := []string{"", "abc", "0123456"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Fatalf("expected %q invalid", p)
		}
	}
}
