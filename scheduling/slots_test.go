package scheduling

import (
	"testing"
	"time"
)

func TestGenerateSlots_DefaultHours(t *testing.T) {
	slots := GenerateSlots(DefaultServiceSettings())
	if len(slots) != 12 {
		t.Fatalf("expected 12 hourly slots between 08:00 and 20:00, got %d", len(slots))
	}
	if slots[0] != "08:00" {
		t.Fatalf("expected first slot 08:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "19:00" {
		t.Fatalf("expected last slot 19:00, got %s", slots[len(slots)-1])
	}
}

func TestGenerateSlots_WithinHoursAndIncreasing(t *testing.T) {
	settings := ServiceSettings{
		BusinessHours: BusinessHours{Start: "09:00", End: "17:30"},
		SlotDuration:  90,
	}
	slots := GenerateSlots(settings)
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}

	prev := time.Time{}
	end, _ := time.Parse(TimeLayout, settings.BusinessHours.End)
	for i, s := range slots {
		parsed, err := time.Parse(TimeLayout, s)
		if err != nil {
			t.Fatalf("slot %q does not parse: %v", s, err)
		}
		if !parsed.Before(end) {
			t.Fatalf("slot %s is not strictly before closing time", s)
		}
		if i > 0 && parsed.Sub(prev) != 90*time.Minute {
			t.Fatalf("slots %s and %s are not 90 minutes apart", slots[i-1], s)
		}
		prev = parsed
	}
}

func TestGenerateSlots_UnevenDivisionKeepsLastPartialStart(t *testing.T) {
	settings := ServiceSettings{
		BusinessHours: BusinessHours{Start: "08:00", End: "10:30"},
		SlotDuration:  60,
	}
	slots := GenerateSlots(settings)
	// 10:00 starts before closing, so it stays even though 60 minutes from it
	// would run past 10:30.
	want := []string{"08:00", "09:00", "10:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, slots)
		}
	}
}

func TestGenerateSlots_DegenerateHours(t *testing.T) {
	settings := ServiceSettings{
		BusinessHours: BusinessHours{Start: "20:00", End: "08:00"},
		SlotDuration:  60,
	}
	if slots := GenerateSlots(settings); len(slots) != 0 {
		t.Fatalf("expected no slots when start >= end, got %v", slots)
	}

	settings.BusinessHours = BusinessHours{Start: "08:00", End: "08:00"}
	if slots := GenerateSlots(settings); len(slots) != 0 {
		t.Fatalf("expected no slots for zero-length day, got %v", slots)
	}
}

func TestGenerateSlots_BadInput(t *testing.T) {
	settings := ServiceSettings{
		BusinessHours: BusinessHours{Start: "late", End: "20:00"},
		SlotDuration:  60,
	}
	if slots := GenerateSlots(settings); slots != nil {
		t.Fatalf("expected nil for unparseable start, got %v", slots)
	}

	settings = DefaultServiceSettings()
	settings.SlotDuration = 0
	if slots := GenerateSlots(settings); slots != nil {
		t.Fatalf("expected nil for zero slot duration, got %v", slots)
	}
}
