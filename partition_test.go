package silo

import "testing"

func TestPartitionGetOrCreate(t *testing.T) {
	p := newPartition()
	tagA := NewTag(1, 2)
	a1 := p.getOrCreate(tagA, 4)
	a2 := p.getOrCreate(tagA, 4)
	if a1 != a2 {
		t.Errorf("getOrCreate with the same Tag should return the same archetype")
	}
	tagB := NewTag(3)
	b := p.getOrCreate(tagB, 4)
	if b == a1 {
		t.Errorf("getOrCreate with a different Tag must return a distinct archetype")
	}
	if len(p.Archetypes()) != 2 {
		t.Errorf("Archetypes() length = %d, want 2", len(p.Archetypes()))
	}
}

func TestPartitionMatchingCacheMonotonic(t *testing.T) {
	p := newPartition()
	var lock fakeLocker

	query := NewTag(1)
	a1 := p.getOrCreate(NewTag(1, 2), 4)
	got := p.matching(query, &lock)
	if len(got) != 1 || got[0] != a1 {
		t.Fatalf("matching(query{1}) = %v, want [a1]", got)
	}

	// A second archetype satisfying the same query, created after the
	// cache entry above was populated, must be picked up incrementally —
	// the cache is monotonic, never returning fewer archetypes for the
	// same query as more matching archetypes appear.
	a2 := p.getOrCreate(NewTag(1, 3), 4)
	got2 := p.matching(query, &lock)
	if len(got2) != 2 {
		t.Fatalf("matching(query{1}) after a new matching archetype = %v, want 2 entries", got2)
	}
	found := false
	for _, a := range got2 {
		if a == a2 {
			found = true
		}
	}
	if !found {
		t.Errorf("matching(query{1}) must include the newly created matching archetype")
	}
}

func TestPartitionMatchingExcludesNonMatching(t *testing.T) {
	p := newPartition()
	var lock fakeLocker
	p.getOrCreate(NewTag(5), 4)
	got := p.matching(NewTag(1), &lock)
	if len(got) != 0 {
		t.Errorf("matching(query{1}) against an unrelated archetype should be empty, got %v", got)
	}
}

// fakeLocker satisfies Locker without any real synchronization, since
// these tests run single-threaded against one partition.
type fakeLocker struct{}

func (*fakeLocker) Lock()   {}
func (*fakeLocker) Unlock() {}
