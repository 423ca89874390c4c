// Package scheduling is the appointment engine behind the scheduling screen:
// time-slot generation from business hours, recurring-appointment expansion,
// resource-occupancy checks, the appointment store and its quick stats.
//
// The package owns no globals. A Store is built once per tenant from a blob
// storage backend, an id generator and a clock, and everything else is a pure
// function over appointment snapshots.
package scheduling

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Status is the appointment lifecycle state. There is no terminal state:
// ToggleStatus cycles pending → confirmed → completed → cancelled → pending.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var statusCycle = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Next returns the following status in the fixed cycle, wrapping around.
// Unknown statuses reset to pending.
func (s Status) Next() Status {
	for i, st := range statusCycle {
		if st == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return StatusPending
}

func (s Status) Valid() bool {
	for _, st := range statusCycle {
		if st == s {
			return true
		}
	}
	return false
}

// Frequency is how often a recurring appointment repeats.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	return f == Daily || f == Weekly || f == Monthly
}

// Recurrence marks an appointment as one instance of a recurring series.
// Instances are independent records: deleting one never touches its siblings.
type Recurrence struct {
	Frequency    Frequency `json:"frequency"`
	EndDate      string    `json:"endDate"`
	OriginalDate string    `json:"originalDate"`
	Instance     int       `json:"instance,omitempty"`
}

// Appointment is a single booking. Date and Time are kept as the naive
// calendar strings the rest of the system exchanges ("2006-01-02" / "15:04");
// no timezone is attached to a booking.
type Appointment struct {
	ID        string      `json:"id"`
	Customer  string      `json:"customer"`
	Phone     string      `json:"phone"`
	Service   string      `json:"service"`
	Resource  string      `json:"resource,omitempty"` // empty means any available
	Date      string      `json:"date"`
	Time      string      `json:"time"`
	Duration  int         `json:"duration"` // minutes
	Status    Status      `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	Recurring *Recurrence `json:"recurring,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt,omitempty"`
}

// StartsAt resolves the appointment's start instant in the given location.
func (a Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+"T"+TimeLayout, a.Date+"T"+a.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("appointment %s: bad date/time: %w", a.ID, err)
	}
	return t, nil
}

// DurationMinutes returns the booked length, defaulting to one hour when the
// stored record predates the duration field.
func (a Appointment) DurationMinutes() int {
	if a.Duration <= 0 {
		return 60
	}
	return a.Duration
}

// AllowedDurations are the bookable lengths offered by the appointment form.
var AllowedDurations = []int{60, 90, 120, 180}

func ValidDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// BusinessHours bound the bookable day. Start and End are "15:04" clock times.
type BusinessHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ServiceSettings is the per-tenant scheduling configuration singleton.
type ServiceSettings struct {
	BusinessHours BusinessHours `json:"businessHours"`
	SlotDuration  int           `json:"slotDuration"` // minutes between bookable slots
	BufferTime    int           `json:"bufferTime"`   // minutes reserved between jobs
}

func DefaultServiceSettings() ServiceSettings {
	return ServiceSettings{
		BusinessHours: BusinessHours{Start: "08:00", End: "20:00"},
		SlotDuration:  60,
		BufferTime:    15,
	}
}

// Clock supplies "now"; injected so date arithmetic is testable against
// fixed instants.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Test helper.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// IDGenerator mints a unique opaque id per call. Only uniqueness is required.
type IDGenerator func() string
