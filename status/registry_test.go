package status

import "testing"

func TestRegistryCounters(t *testing.T) {
	r := NewRegistry()
	if r.Count(BeamFired) != 0 {
		t.Error("Expected unwritten counter to read zero")
	}
	r.Inc(BeamFired, 1)
	r.Inc(BeamFired, 2)
	if got := r.Count(BeamFired); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

func TestGetReturnsStablePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(BeamCells)
	b := r.Ints.Get(BeamCells)
	if a != b {
		t.Error("Expected cached pointer")
	}
}

func TestSnapshotCoversAllTypes(t *testing.T) {
	r := NewRegistry()
	r.Inc(ExplosionCount, 1)
	r.Floats.Get(TracerFriendShare).Set(0.25)
	r.Strings.Get(LastZap).Store("fireball")

	snap := r.Snapshot()
	if snap[ExplosionCount] != int64(1) {
		t.Errorf("Expected explosion count 1, got %v", snap[ExplosionCount])
	}
	if snap[TracerFriendShare] != 0.25 {
		t.Errorf("Expected share 0.25, got %v", snap[TracerFriendShare])
	}
	if snap[LastZap] != "fireball" {
		t.Errorf("Expected fireball, got %v", snap[LastZap])
	}
	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", r.TotalCount())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	long := "0123456789012345678901234567890123456789"
	s.Store(long)
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("Expected %d chars, got %d", MaxStringLen, len(got))
	}
}

func TestKeysSorted(t *testing.T) {
	m := NewMetricMap[int]()
	m.Get("b")
	m.Get("a")
	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Expected [a b], got %v", keys)
	}
}
