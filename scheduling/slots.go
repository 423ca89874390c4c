package scheduling

import "time"

// GenerateSlots produces the bookable start times for a day: business-hours
// start, then every SlotDuration minutes, stopping strictly before the end.
// A start at or past the end yields no slots. The final slot is simply the
// last one falling before the end; no partial-slot clipping is done.
func GenerateSlots(settings ServiceSettings) []string {
	start, err := time.Parse(TimeLayout, settings.BusinessHours.Start)
	if err != nil {
		return nil
	}
	end, err := time.Parse(TimeLayout, settings.BusinessHours.End)
	if err != nil {
		return nil
	}
	step := settings.SlotDuration
	if step <= 0 {
		return nil
	}

	var slots []string
	for t := start; t.Before(end); t = t.Add(time.Duration(step) * time.Minute) {
		slots = append(slots, t.Format(TimeLayout))
	}
	return slots
}
