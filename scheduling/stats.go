package scheduling

import "time"

// Stats are the dashboard quick counters over one appointment snapshot.
type Stats struct {
	Today     int `json:"today"`
	ThisWeek  int `json:"thisWeek"`
	Pending   int `json:"pending"`
	Recurring int `json:"recurring"`
}

// QuickStats counts appointments on today's date, within the current week
// (Sunday through Saturday containing today), with pending status, and
// carrying a recurrence record (every expanded instance counts, not just
// the first).
func QuickStats(appointments []Appointment, today time.Time) Stats {
	day := today.Format(DateLayout)

	weekStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()).
		AddDate(0, 0, -int(today.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	var stats Stats
	for _, apt := range appointments {
		if apt.Date == day {
			stats.Today++
		}
		if d, err := time.ParseInLocation(DateLayout, apt.Date, today.Location()); err == nil {
			if !d.Before(weekStart) && !d.After(weekEnd) {
				stats.ThisWeek++
			}
		}
		if apt.Status == StatusPending {
			stats.Pending++
		}
		if apt.Recurring != nil {
			stats.Recurring++
		}
	}
	return stats
}
