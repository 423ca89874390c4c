package scheduling

import (
	"testing"

	"freshwash-backend/storage"
)

func newTestStore() *Store {
	return NewStore(storage.NewMemory(), sequentialIDs(), testClock())
}

func TestStoreAddAssignsIDAndCreatedAt(t *testing.T) {
	s := newTestStore()

	added, err := s.Add(Appointment{Customer: "Lee", Date: "2024-01-05", Time: "10:00"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected assigned id")
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("expected createdAt stamp")
	}
	if added.Status != StatusPending {
		t.Fatalf("expected default status pending, got %s", added.Status)
	}

	found, ok, err := s.FindByID(added.ID)
	if err != nil || !ok {
		t.Fatalf("findById after add: ok=%v err=%v", ok, err)
	}
	if found.Customer != "Lee" {
		t.Fatalf("expected stored customer Lee, got %s", found.Customer)
	}
}

func TestStoreUpdateMergesPatch(t *testing.T) {
	s := newTestStore()
	added, _ := s.Add(baseDraft())

	notes := "gate code 4411"
	status := StatusCompleted
	updated, ok, err := s.Update(added.ID, Patch{Notes: &notes, Status: &status})
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}
	if updated.Notes != notes || updated.Status != StatusCompleted {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Customer != "Dana Reyes" {
		t.Fatalf("unpatched field changed: %s", updated.Customer)
	}
	if updated.UpdatedAt.IsZero() {
		t.Fatal("expected updatedAt stamp")
	}
}

func TestStoreUpdateMissingIDIsNoOp(t *testing.T) {
	s := newTestStore()
	s.Add(baseDraft())

	notes := "nope"
	_, ok, err := s.Update("ghost", Patch{Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ok {
		t.Fatal("expected missing id to report no change")
	}
	all, _ := s.Appointments()
	if len(all) != 1 || all[0].Notes != "" {
		t.Fatalf("collection changed by no-op update: %+v", all)
	}
}

func TestStoreRemove(t *testing.T) {
	s := newTestStore()
	a, _ := s.Add(baseDraft())
	b, _ := s.Add(baseDraft())

	removed, err := s.Remove(a.ID)
	if err != nil || !removed {
		t.Fatalf("remove: removed=%v err=%v", removed, err)
	}
	if _, ok, _ := s.FindByID(a.ID); ok {
		t.Fatal("expected removed id to be absent")
	}

	// Removing an unknown id is idempotent and leaves the rest alone.
	removed, err = s.Remove(a.ID)
	if err != nil || removed {
		t.Fatalf("second remove: removed=%v err=%v", removed, err)
	}
	all, _ := s.Appointments()
	if len(all) != 1 || all[0].ID != b.ID {
		t.Fatalf("collection damaged by idempotent remove: %+v", all)
	}
}

func TestStoreFindByDateAndStatus(t *testing.T) {
	s := newTestStore()
	first := baseDraft()
	first.Date = "2024-01-05"
	second := baseDraft()
	second.Date = "2024-01-06"
	second.Status = StatusPending
	s.Add(first)
	s.Add(second)

	byDate, err := s.FindByDate("2024-01-05")
	if err != nil {
		t.Fatalf("findByDate: %v", err)
	}
	if len(byDate) != 1 || byDate[0].Date != "2024-01-05" {
		t.Fatalf("unexpected byDate result: %+v", byDate)
	}

	pending, err := s.FindByStatus(StatusPending)
	if err != nil {
		t.Fatalf("findByStatus: %v", err)
	}
	if len(pending) != 1 || pending[0].Date != "2024-01-06" {
		t.Fatalf("unexpected pending result: %+v", pending)
	}
}

func TestStoreSortIsStable(t *testing.T) {
	s := newTestStore()

	early := baseDraft()
	early.Date, early.Time = "2024-01-10", "09:00"
	tieOne := baseDraft()
	tieOne.Customer = "First In"
	tieOne.Date, tieOne.Time = "2024-01-09", "11:00"
	tieTwo := baseDraft()
	tieTwo.Customer = "Second In"
	tieTwo.Date, tieTwo.Time = "2024-01-09", "11:00"

	s.Add(early)
	s.Add(tieOne)
	s.Add(tieTwo)

	sorted, err := s.AllSortedByDateTime()
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if sorted[0].Customer != "First In" || sorted[1].Customer != "Second In" {
		t.Fatalf("tie broke insertion order: %s then %s", sorted[0].Customer, sorted[1].Customer)
	}
	if sorted[2].Date != "2024-01-10" {
		t.Fatalf("expected later date last, got %s", sorted[2].Date)
	}
}

func TestToggleStatusCycleCloses(t *testing.T) {
	s := newTestStore()
	added, _ := s.Add(baseDraft()) // confirmed

	want := []Status{StatusCompleted, StatusCancelled, StatusPending, StatusConfirmed}
	for i, expect := range want {
		apt, ok, err := s.ToggleStatus(added.ID)
		if err != nil || !ok {
			t.Fatalf("toggle %d: ok=%v err=%v", i, ok, err)
		}
		if apt.Status != expect {
			t.Fatalf("toggle %d: expected %s, got %s", i, expect, apt.Status)
		}
	}
	// Four toggles returned the appointment to its original status.
	final, _, _ := s.FindByID(added.ID)
	if final.Status != StatusConfirmed {
		t.Fatalf("cycle did not close: %s", final.Status)
	}
}

func TestToggleStatusMissingID(t *testing.T) {
	s := newTestStore()
	_, ok, err := s.ToggleStatus("ghost")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if ok {
		t.Fatal("expected missing id to report no change")
	}
}

func TestStoreAddAllPersistsBatch(t *testing.T) {
	s := newTestStore()
	rule := Recurrence{Frequency: Weekly, EndDate: "2024-01-22"}
	batch := ExpandRecurring(baseDraft(), rule, sequentialIDs(), testClock(), ExpandOptions{})

	if err := s.AddAll(batch); err != nil {
		t.Fatalf("addAll: %v", err)
	}
	all, _ := s.Appointments()
	if len(all) != 4 {
		t.Fatalf("expected 4 stored instances, got %d", len(all))
	}
}

func TestStoreRejectsCorruptData(t *testing.T) {
	backend := storage.NewMemory()
	backend.Set("appointments", []byte(`{"not":"an array"`))
	s := NewStore(backend, sequentialIDs(), testClock())

	if _, err := s.Appointments(); err == nil {
		t.Fatal("expected corrupt stored data to fail fast")
	}
}

func TestSettingsDefaultsArePersisted(t *testing.T) {
	backend := storage.NewMemory()
	s := NewStore(backend, sequentialIDs(), testClock())

	settings, err := s.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.BusinessHours.Start != "08:00" || settings.BusinessHours.End != "20:00" {
		t.Fatalf("unexpected default hours: %+v", settings.BusinessHours)
	}
	if settings.SlotDuration != 60 || settings.BufferTime != 15 {
		t.Fatalf("unexpected defaults: %+v", settings)
	}

	if _, ok := backend.Get("serviceSettings"); !ok {
		t.Fatal("expected defaults written back on first read")
	}
}

func TestStatusNextCycle(t *testing.T) {
	order := []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
	for i, s := range order {
		next := s.Next()
		if next != order[(i+1)%len(order)] {
			t.Fatalf("%s.Next() = %s, want %s", s, next, order[(i+1)%len(order)])
		}
	}
	if Status("bogus").Next() != StatusPending {
		t.Fatal("unknown status should reset to pending")
	}
}
