package scheduling

import "time"

// DefaultMaxInstances caps how many appointments a single recurrence rule may
// produce. A policy guard against unbounded date ranges, not a domain limit.
const DefaultMaxInstances = 50

// ExpandOptions tune recurrence expansion.
type ExpandOptions struct {
	// MaxInstances overrides DefaultMaxInstances when positive.
	MaxInstances int
}

// ExpandRecurring turns a base appointment and its recurrence rule into
// concrete instances: one per occurrence date, each with a fresh id, its
// 1-based position in Recurring.Instance, and CreatedAt from the clock.
//
// The cursor starts at base.Date and advances by one day, seven days, or one
// calendar month (with standard rollover for short months, per time.AddDate).
// The base occurrence is always emitted, even when the rule's end date lies
// before it; further occurrences require cursor <= endDate. A rule with an
// unknown frequency or unparseable end date yields just the base occurrence.
func ExpandRecurring(base Appointment, rule Recurrence, ids IDGenerator, clock Clock, opts ExpandOptions) []Appointment {
	maxInstances := opts.MaxInstances
	if maxInstances <= 0 {
		maxInstances = DefaultMaxInstances
	}

	cursor, err := time.Parse(DateLayout, base.Date)
	if err != nil {
		return nil
	}
	endDate, err := time.Parse(DateLayout, rule.EndDate)
	if err != nil || !rule.Frequency.Valid() {
		endDate = cursor
	}

	rule.OriginalDate = base.Date
	now := clock.Now()

	var out []Appointment
	for count := 0; count < maxInstances; count++ {
		instance := base
		instance.ID = ids()
		instance.Date = cursor.Format(DateLayout)
		instance.CreatedAt = now
		r := rule
		r.Instance = count + 1
		instance.Recurring = &r
		out = append(out, instance)

		switch rule.Frequency {
		case Daily:
			cursor = cursor.AddDate(0, 0, 1)
		case Weekly:
			cursor = cursor.AddDate(0, 0, 7)
		case Monthly:
			cursor = cursor.AddDate(0, 1, 0)
		default:
			return out
		}
		if cursor.After(endDate) {
			break
		}
	}
	return out
}
