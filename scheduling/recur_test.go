package scheduling

import (
	"fmt"
	"testing"
	"time"
)

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func testClock() Clock {
	return FixedClock(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
}

func baseDraft() Appointment {
	return Appointment{
		Customer: "Dana Reyes",
		Phone:    "+15550100",
		Service:  "Wash & Fold",
		Resource: "Washer 1",
		Date:     "2024-01-01",
		Time:     "09:00",
		Duration: 60,
		Status:   StatusConfirmed,
	}
}

func TestExpandRecurring_Weekly(t *testing.T) {
	rule := Recurrence{Frequency: Weekly, EndDate: "2024-01-22"}
	got := ExpandRecurring(baseDraft(), rule, sequentialIDs(), testClock(), ExpandOptions{})

	wantDates := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"}
	if len(got) != len(wantDates) {
		t.Fatalf("expected %d instances, got %d", len(wantDates), len(got))
	}
	seen := map[string]bool{}
	for i, apt := range got {
		if apt.Date != wantDates[i] {
			t.Fatalf("instance %d: expected date %s, got %s", i, wantDates[i], apt.Date)
		}
		if apt.Recurring == nil || apt.Recurring.Instance != i+1 {
			t.Fatalf("instance %d: expected recurring.instance %d, got %+v", i, i+1, apt.Recurring)
		}
		if apt.Recurring.OriginalDate != "2024-01-01" {
			t.Fatalf("instance %d: expected originalDate 2024-01-01, got %s", i, apt.Recurring.OriginalDate)
		}
		if apt.ID == "" || seen[apt.ID] {
			t.Fatalf("instance %d: id %q is empty or reused", i, apt.ID)
		}
		seen[apt.ID] = true
	}
}

func TestExpandRecurring_DailyCappedAt50(t *testing.T) {
	rule := Recurrence{Frequency: Daily, EndDate: "2034-01-01"}
	got := ExpandRecurring(baseDraft(), rule, sequentialIDs(), testClock(), ExpandOptions{})

	if len(got) != DefaultMaxInstances {
		t.Fatalf("expected expansion capped at %d, got %d", DefaultMaxInstances, len(got))
	}
	if got[49].Date != "2024-02-19" {
		t.Fatalf("expected 50th daily instance on 2024-02-19, got %s", got[49].Date)
	}
}

func TestExpandRecurring_CustomCap(t *testing.T) {
	rule := Recurrence{Frequency: Daily, EndDate: "2034-01-01"}
	got := ExpandRecurring(baseDraft(), rule, sequentialIDs(), testClock(), ExpandOptions{MaxInstances: 3})
	if len(got) != 3 {
		t.Fatalf("expected 3 instances, got %d", len(got))
	}
}

func TestExpandRecurring_MonthlyRollsOverShortMonths(t *testing.T) {
	base := baseDraft()
	base.Date = "2024-01-31"
	rule := Recurrence{Frequency: Monthly, EndDate: "2024-04-30"}
	got := ExpandRecurring(base, rule, sequentialIDs(), testClock(), ExpandOptions{})

	// Jan 31 + 1 month lands on Mar 2 in a leap year, per calendar rollover.
	wantDates := []string{"2024-01-31", "2024-03-02", "2024-04-02"}
	if len(got) != len(wantDates) {
		t.Fatalf("expected %d instances, got %d", len(wantDates), len(got))
	}
	for i, apt := range got {
		if apt.Date != wantDates[i] {
			t.Fatalf("instance %d: expected %s, got %s", i, wantDates[i], apt.Date)
		}
	}
}

func TestExpandRecurring_EndBeforeStartStillEmitsBase(t *testing.T) {
	rule := Recurrence{Frequency: Weekly, EndDate: "2023-12-01"}
	got := ExpandRecurring(baseDraft(), rule, sequentialIDs(), testClock(), ExpandOptions{})

	if len(got) != 1 {
		t.Fatalf("expected the base occurrence alone, got %d instances", len(got))
	}
	if got[0].Date != "2024-01-01" || got[0].Recurring.Instance != 1 {
		t.Fatalf("unexpected base occurrence: %+v", got[0])
	}
}

func TestExpandRecurring_BadBaseDate(t *testing.T) {
	base := baseDraft()
	base.Date = "someday"
	rule := Recurrence{Frequency: Daily, EndDate: "2024-02-01"}
	if got := ExpandRecurring(base, rule, sequentialIDs(), testClock(), ExpandOptions{}); got != nil {
		t.Fatalf("expected nil for unparseable base date, got %d instances", len(got))
	}
}
