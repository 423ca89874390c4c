package scheduling

import (
	"testing"
	"time"
)

func TestIsOccupied_WithinWindow(t *testing.T) {
	apt := Appointment{
		ID:       "a1",
		Resource: "Dryer 1",
		Date:     "2024-03-01",
		Time:     "09:00",
		Duration: 60,
		Status:   StatusConfirmed,
	}
	appointments := []Appointment{apt}

	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	if !IsOccupied("Dryer 1", at, appointments) {
		t.Fatal("expected Dryer 1 occupied at 09:30")
	}

	at = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	if IsOccupied("Dryer 1", at, appointments) {
		t.Fatal("expected Dryer 1 free at 10:30")
	}
}

func TestIsOccupied_HalfOpenInterval(t *testing.T) {
	appointments := []Appointment{{
		ID: "a1", Resource: "Washer 2", Date: "2024-03-01", Time: "09:00",
		Duration: 60, Status: StatusPending,
	}}

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	if !IsOccupied("Washer 2", start, appointments) {
		t.Fatal("start instant belongs to the booking")
	}
	end := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	if IsOccupied("Washer 2", end, appointments) {
		t.Fatal("end instant is outside the half-open window")
	}
}

func TestIsOccupied_IgnoresInactiveStatuses(t *testing.T) {
	apt := Appointment{
		ID: "a1", Resource: "Washer 1", Date: "2024-03-01", Time: "09:00",
		Duration: 120, Status: StatusConfirmed,
	}
	at := time.Date(2024, 3, 1, 9, 45, 0, 0, time.UTC)

	for _, status := range []Status{StatusCompleted, StatusCancelled} {
		apt.Status = status
		if IsOccupied("Washer 1", at, []Appointment{apt}) {
			t.Fatalf("%s appointment should not occupy the machine", status)
		}
	}

	apt.Status = StatusConfirmed
	if !IsOccupied("Washer 1", at, []Appointment{apt}) {
		t.Fatal("confirmed appointment should occupy the machine")
	}
}

func TestIsOccupied_OtherResourceOrDay(t *testing.T) {
	appointments := []Appointment{{
		ID: "a1", Resource: "Washer 1", Date: "2024-03-01", Time: "09:00",
		Duration: 60, Status: StatusConfirmed,
	}}

	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	if IsOccupied("Washer 2", at, appointments) {
		t.Fatal("booking on Washer 1 must not occupy Washer 2")
	}

	nextDay := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	if IsOccupied("Washer 1", nextDay, appointments) {
		t.Fatal("booking must not occupy the machine on another day")
	}
}

func TestIsOccupied_DefaultDuration(t *testing.T) {
	// Records written before the duration field existed book one hour.
	appointments := []Appointment{{
		ID: "a1", Resource: "Folding Station", Date: "2024-03-01", Time: "09:00",
		Status: StatusConfirmed,
	}}

	at := time.Date(2024, 3, 1, 9, 59, 0, 0, time.UTC)
	if !IsOccupied("Folding Station", at, appointments) {
		t.Fatal("expected default 60-minute window")
	}
	at = time.Date(2024, 3, 1, 10, 1, 0, 0, time.UTC)
	if IsOccupied("Folding Station", at, appointments) {
		t.Fatal("expected machine free after default window")
	}
}
