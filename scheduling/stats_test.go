package scheduling

import (
	"testing"
	"time"
)

func TestQuickStats(t *testing.T) {
	// Wednesday 2024-03-06; the containing week runs Sun 03-03 .. Sat 03-09.
	today := time.Date(2024, 3, 6, 14, 0, 0, 0, time.UTC)

	appointments := []Appointment{
		{ID: "1", Date: "2024-03-06", Time: "09:00", Status: StatusPending},
		{ID: "2", Date: "2024-03-06", Time: "11:00", Status: StatusConfirmed},
		{ID: "3", Date: "2024-03-03", Time: "10:00", Status: StatusCompleted}, // week start
		{ID: "4", Date: "2024-03-09", Time: "10:00", Status: StatusConfirmed}, // week end
		{ID: "5", Date: "2024-03-10", Time: "10:00", Status: StatusPending},   // next week
		{ID: "6", Date: "2024-02-28", Time: "10:00", Status: StatusCancelled,
			Recurring: &Recurrence{Frequency: Weekly, EndDate: "2024-03-20", Instance: 2}},
	}

	stats := QuickStats(appointments, today)

	if stats.Today != 2 {
		t.Fatalf("today: expected 2, got %d", stats.Today)
	}
	if stats.ThisWeek != 4 {
		t.Fatalf("thisWeek: expected 4, got %d", stats.ThisWeek)
	}
	if stats.Pending != 2 {
		t.Fatalf("pending: expected 2, got %d", stats.Pending)
	}
	if stats.Recurring != 1 {
		t.Fatalf("recurring: expected 1, got %d", stats.Recurring)
	}
}

func TestQuickStatsCountsEveryRecurringInstance(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rule := Recurrence{Frequency: Daily, EndDate: "2024-01-03"}
	batch := ExpandRecurring(baseDraft(), rule, sequentialIDs(), testClock(), ExpandOptions{})

	stats := QuickStats(batch, today)
	if stats.Recurring != len(batch) {
		t.Fatalf("expected every expanded instance counted, got %d of %d", stats.Recurring, len(batch))
	}
}

func TestQuickStatsEmpty(t *testing.T) {
	stats := QuickStats(nil, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC))
	if stats != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
