package scheduling

import "time"

// IsOccupied reports whether resource is bound to an active appointment at
// the instant at. An appointment occupies the resource when it names it, its
// date matches at's calendar date, its status is neither completed nor
// cancelled, and at falls inside the half-open window
// [start, start+duration).
//
// Linear scan per query; fine for a handful of machines and a bounded
// booking history.
func IsOccupied(resource string, at time.Time, appointments []Appointment) bool {
	day := at.Format(DateLayout)
	for _, apt := range appointments {
		if apt.Resource != resource || apt.Date != day {
			continue
		}
		if apt.Status == StatusCompleted || apt.Status == StatusCancelled {
			continue
		}
		start, err := apt.StartsAt(at.Location())
		if err != nil {
			continue
		}
		end := start.Add(time.Duration(apt.DurationMinutes()) * time.Minute)
		if !at.Before(start) && at.Before(end) {
			return true
		}
	}
	return false
}
