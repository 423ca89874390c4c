package scheduling

import (
	"encoding/json"
	"fmt"
	"sort"

	"freshwash-backend/storage"
)

const (
	appointmentsKey    = "appointments"
	serviceSettingsKey = "serviceSettings"
)

// Store owns a tenant's appointment collection. Each mutation reads the whole
// collection from the blob backend, transforms it in memory and writes it
// back, so a mutation is atomic within one process but nothing guards two
// processes racing on the same backend.
type Store struct {
	backend storage.Store
	ids     IDGenerator
	clock   Clock
}

func NewStore(backend storage.Store, ids IDGenerator, clock Clock) *Store {
	return &Store{backend: backend, ids: ids, clock: clock}
}

// Appointments loads the full collection. Malformed stored JSON is an error
// rather than a silent empty result.
func (s *Store) Appointments() ([]Appointment, error) {
	raw, ok := s.backend.Get(appointmentsKey)
	if !ok {
		return nil, nil
	}
	var appointments []Appointment
	if err := json.Unmarshal(raw, &appointments); err != nil {
		return nil, fmt.Errorf("stored appointments are corrupt: %w", err)
	}
	return appointments, nil
}

func (s *Store) save(appointments []Appointment) error {
	raw, err := json.Marshal(appointments)
	if err != nil {
		return err
	}
	return s.backend.Set(appointmentsKey, raw)
}

// Add appends one appointment, assigning an id and CreatedAt when absent.
// It never checks for conflicts with existing bookings.
func (s *Store) Add(a Appointment) (Appointment, error) {
	if a.ID == "" {
		a.ID = s.ids()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.clock.Now()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	appointments, err := s.Appointments()
	if err != nil {
		return Appointment{}, err
	}
	appointments = append(appointments, a)
	if err := s.save(appointments); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// AddAll appends a batch (a recurrence expansion) in one write.
func (s *Store) AddAll(batch []Appointment) error {
	if len(batch) == 0 {
		return nil
	}
	appointments, err := s.Appointments()
	if err != nil {
		return err
	}
	appointments = append(appointments, batch...)
	return s.save(appointments)
}

// Patch carries the fields an update may change; nil fields are left alone.
type Patch struct {
	Customer  *string
	Phone     *string
	Service   *string
	Resource  *string
	Date      *string
	Time      *string
	Duration  *int
	Status    *Status
	Notes     *string
	Recurring *Recurrence
}

// Update merges patch into the appointment with the given id and stamps
// UpdatedAt. A missing id is a no-op; the second return reports whether
// anything changed.
func (s *Store) Update(id string, patch Patch) (Appointment, bool, error) {
	appointments, err := s.Appointments()
	if err != nil {
		return Appointment{}, false, err
	}
	for i := range appointments {
		if appointments[i].ID != id {
			continue
		}
		apt := &appointments[i]
		if patch.Customer != nil {
			apt.Customer = *patch.Customer
		}
		if patch.Phone != nil {
			apt.Phone = *patch.Phone
		}
		if patch.Service != nil {
			apt.Service = *patch.Service
		}
		if patch.Resource != nil {
			apt.Resource = *patch.Resource
		}
		if patch.Date != nil {
			apt.Date = *patch.Date
		}
		if patch.Time != nil {
			apt.Time = *patch.Time
		}
		if patch.Duration != nil {
			apt.Duration = *patch.Duration
		}
		if patch.Status != nil {
			apt.Status = *patch.Status
		}
		if patch.Notes != nil {
			apt.Notes = *patch.Notes
		}
		if patch.Recurring != nil {
			apt.Recurring = patch.Recurring
		}
		apt.UpdatedAt = s.clock.Now()
		if err := s.save(appointments); err != nil {
			return Appointment{}, false, err
		}
		return *apt, true, nil
	}
	return Appointment{}, false, nil
}

// Remove filters the id out of the collection. Removing an unknown id leaves
// the collection untouched; the bool reports whether a record was dropped.
func (s *Store) Remove(id string) (bool, error) {
	appointments, err := s.Appointments()
	if err != nil {
		return false, err
	}
	kept := appointments[:0]
	removed := false
	for _, apt := range appointments {
		if apt.ID == id {
			removed = true
			continue
		}
		kept = append(kept, apt)
	}
	if !removed {
		return false, nil
	}
	return true, s.save(kept)
}

func (s *Store) FindByID(id string) (Appointment, bool, error) {
	appointments, err := s.Appointments()
	if err != nil {
		return Appointment{}, false, err
	}
	for _, apt := range appointments {
		if apt.ID == id {
			return apt, true, nil
		}
	}
	return Appointment{}, false, nil
}

func (s *Store) FindByDate(date string) ([]Appointment, error) {
	appointments, err := s.Appointments()
	if err != nil {
		return nil, err
	}
	var out []Appointment
	for _, apt := range appointments {
		if apt.Date == date {
			out = append(out, apt)
		}
	}
	return out, nil
}

func (s *Store) FindByStatus(status Status) ([]Appointment, error) {
	appointments, err := s.Appointments()
	if err != nil {
		return nil, err
	}
	var out []Appointment
	for _, apt := range appointments {
		if apt.Status == status {
			out = append(out, apt)
		}
	}
	return out, nil
}

// AllSortedByDateTime returns the collection ordered by (date, time)
// ascending. The sort is stable: equal date/time keeps insertion order.
// Zero-padded "2006-01-02" and "15:04" strings compare correctly as text.
func (s *Store) AllSortedByDateTime() ([]Appointment, error) {
	appointments, err := s.Appointments()
	if err != nil {
		return nil, err
	}
	sorted := make([]Appointment, len(appointments))
	copy(sorted, appointments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Time < sorted[j].Time
	})
	return sorted, nil
}

// ToggleStatus advances the appointment one step along the status cycle.
func (s *Store) ToggleStatus(id string) (Appointment, bool, error) {
	apt, ok, err := s.FindByID(id)
	if err != nil || !ok {
		return Appointment{}, false, err
	}
	next := apt.Status.Next()
	return s.Update(id, Patch{Status: &next})
}

// Settings loads the tenant's scheduling configuration, creating and
// persisting the defaults on first read.
func (s *Store) Settings() (ServiceSettings, error) {
	raw, ok := s.backend.Get(serviceSettingsKey)
	if !ok {
		settings := DefaultServiceSettings()
		encoded, err := json.Marshal(settings)
		if err != nil {
			return ServiceSettings{}, err
		}
		if err := s.backend.Set(serviceSettingsKey, encoded); err != nil {
			return ServiceSettings{}, err
		}
		return settings, nil
	}
	var settings ServiceSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return ServiceSettings{}, fmt.Errorf("stored service settings are corrupt: %w", err)
	}
	return settings, nil
}
