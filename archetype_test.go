package silo

import "testing"

func TestArchetypeAddRemoveReuse(t *testing.T) {
	a := newArchetype(Tag{}, 4)
	s1 := a.add(10)
	s2 := a.add(20)
	if s1 != 0 || s2 != 1 {
		t.Fatalf("expected sequential slots 0,1, got %d,%d", s1, s2)
	}
	if a.AliveCount() != 2 || a.Len() != 2 {
		t.Fatalf("AliveCount/Len = %d/%d, want 2/2", a.AliveCount(), a.Len())
	}

	if !a.Remove(10) {
		t.Fatalf("Remove(10) should succeed")
	}
	if a.AliveCount() != 1 {
		t.Errorf("AliveCount after Remove = %d, want 1", a.AliveCount())
	}
	if a.Remove(10) {
		t.Errorf("removing an already-tombstoned id should report false")
	}

	s3 := a.add(30)
	if s3 != 0 {
		t.Errorf("add should reuse the freed slot 0, got %d", s3)
	}
	if a.Len() != 2 {
		t.Errorf("reusing a tombstoned slot should not grow Len, got %d", a.Len())
	}
}

func TestArchetypeRemoveAtIsO1AndTombstones(t *testing.T) {
	a := newArchetype(Tag{}, 4)
	a.add(1)
	a.add(2)
	a.add(3)
	a.removeAt(1)
	span := a.EntitySpan()
	if span[1] != -1 {
		t.Errorf("removeAt(1) should tombstone slot 1, got %d", span[1])
	}
	if span[0] != 1 || span[2] != 3 {
		t.Errorf("removeAt should not disturb other slots: %v", span)
	}
}

func TestArchetypeCompactToZeroLen(t *testing.T) {
	a := newArchetype(Tag{}, 4)
	a.add(1)
	a.add(2)
	a.Remove(1)
	a.Remove(2)
	if a.AliveCount() != 0 {
		t.Fatalf("AliveCount = %d, want 0", a.AliveCount())
	}
	a.Compact()
	if a.Len() != 0 {
		t.Errorf("Compact of an archetype with no live entities should yield Len 0, got %d", a.Len())
	}
	if len(a.freeSlots) != 0 {
		t.Errorf("Compact should clear freeSlots, got %v", a.freeSlots)
	}
	// Compact must not disturb a subsequent add.
	slot := a.add(5)
	if slot != 0 {
		t.Errorf("add after Compact-to-zero should start at slot 0, got %d", slot)
	}
}

func TestArchetypeCompactPreservesOrder(t *testing.T) {
	a := newArchetype(Tag{}, 8)
	for _, id := range []uint32{1, 2, 3, 4, 5} {
		a.add(id)
	}
	a.Remove(2)
	a.Remove(4)
	a.Compact()
	want := []int32{1, 3, 5}
	span := a.EntitySpan()
	if len(span) != len(want) {
		t.Fatalf("Compact result length = %d, want %d", len(span), len(want))
	}
	for i, id := range want {
		if span[i] != id {
			t.Errorf("Compact result[%d] = %d, want %d", i, span[i], id)
		}
	}
}

func TestArchetypeFragmentation(t *testing.T) {
	a := newArchetype(Tag{}, 4)
	if a.Fragmentation() != 0 {
		t.Errorf("empty archetype fragmentation = %v, want 0", a.Fragmentation())
	}
	a.add(1)
	a.add(2)
	a.Remove(1)
	if got, want := a.Fragmentation(), 0.5; got != want {
		t.Errorf("fragmentation = %v, want %v", got, want)
	}
}
