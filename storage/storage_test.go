package storage

import (
	"bytes"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()

	if _, ok := s.Get("appointments"); ok {
		t.Fatal("expected absent key")
	}

	if err := s.Set("appointments", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok := s.Get("appointments")
	if !ok || !bytes.Equal(v, []byte(`[]`)) {
		t.Fatalf("expected [], got %q (ok=%v)", v, ok)
	}

	if err := s.Remove("appointments"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.Get("appointments"); ok {
		t.Fatal("expected key removed")
	}
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	s := NewMemory()
	s.Set("k", []byte(`{"a":1}`))

	v, _ := s.Get("k")
	v[0] = 'X'

	again, _ := s.Get("k")
	if !bytes.Equal(again, []byte(`{"a":1}`)) {
		t.Fatalf("stored value mutated through returned slice: %q", again)
	}
}

func TestPrefixedIsolation(t *testing.T) {
	backing := NewMemory()
	a := Prefixed(backing, "laundry-a")
	b := Prefixed(backing, "laundry-b")

	a.Set("appointments", []byte(`["a"]`))
	b.Set("appointments", []byte(`["b"]`))

	va, _ := a.Get("appointments")
	vb, _ := b.Get("appointments")
	if !bytes.Equal(va, []byte(`["a"]`)) || !bytes.Equal(vb, []byte(`["b"]`)) {
		t.Fatalf("tenants share state: a=%q b=%q", va, vb)
	}

	if err := a.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := a.Get("appointments"); ok {
		t.Fatal("expected a cleared")
	}
	if _, ok := b.Get("appointments"); !ok {
		t.Fatal("clear leaked into other prefix")
	}
}
