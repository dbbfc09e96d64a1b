package silo

import "testing"

func TestTagSetHasClear(t *testing.T) {
	var tag Tag
	tag.Set(3)
	tag.Set(255) // last inline bit
	tag.Set(256) // first overflow bit
	tag.Set(512) // forces a second overflow lane

	for _, i := range []TypeIndex{3, 255, 256, 512} {
		if !tag.Has(i) {
			t.Errorf("Has(%d) = false, want true", i)
		}
	}
	if tag.Has(4) {
		t.Errorf("Has(4) = true, want false")
	}

	tag.Clear(256)
	if tag.Has(256) {
		t.Errorf("Has(256) after Clear = true, want false")
	}
	if !tag.Has(512) {
		t.Errorf("Clear(256) should not disturb bit 512")
	}
}

func TestTagInlineOverflowBoundary(t *testing.T) {
	var a, b Tag
	a.Set(255)
	b.Set(256)
	if a.Equal(b) {
		t.Errorf("bit 255 (last inline) and bit 256 (first overflow) must not compare equal")
	}
	if !a.ContainsNone(b) || !b.ContainsNone(a) {
		t.Errorf("disjoint tags across the inline/overflow boundary must contain none of each other")
	}
}

func TestTagEqualHashAgree(t *testing.T) {
	a := NewTag(1, 300, 9)
	b := NewTag(9, 1, 300)
	if !a.Equal(b) {
		t.Fatalf("tags built from the same indices in different order must be Equal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("Equal tags must share a Hash")
	}
	if a.key() != b.key() {
		t.Errorf("Equal tags must share a map key")
	}
}

func TestTagEqualIgnoresTrailingZeroOverflow(t *testing.T) {
	a := NewTag(1, 300)
	var b Tag
	b.Set(1)
	b.Set(300)
	b.growOverflow(10) // allocate extra all-zero overflow words
	if !a.Equal(b) {
		t.Errorf("trailing all-zero overflow words must not affect Equal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("trailing all-zero overflow words must not affect Hash")
	}
}

func TestTagCompareTotalOrder(t *testing.T) {
	a := NewTag(1)
	b := NewTag(2)
	if a.Compare(b) >= 0 {
		t.Errorf("Compare(tag{1}, tag{2}) should be negative")
	}
	if b.Compare(a) <= 0 {
		t.Errorf("Compare(tag{2}, tag{1}) should be positive")
	}
	if a.Compare(a) != 0 {
		t.Errorf("Compare(tag, tag) should be zero")
	}
}

func TestTagAndOrXorNot(t *testing.T) {
	a := NewTag(1, 2, 300)
	b := NewTag(2, 3, 300)

	and := a.And(b)
	if !and.Equal(NewTag(2, 300)) {
		t.Errorf("And mismatch")
	}

	or := a.Or(b)
	if !or.Equal(NewTag(1, 2, 3, 300)) {
		t.Errorf("Or mismatch")
	}

	xor := a.Xor(b)
	if !xor.Equal(NewTag(1, 3)) {
		t.Errorf("Xor mismatch")
	}

	not := and.Not()
	if not.Has(2) || not.Has(300) {
		t.Errorf("Not should clear every bit that was set")
	}
	if !not.Has(0) {
		t.Errorf("Not should set bits that were clear, within the tag's current width")
	}
}

func TestTagContainsAllAnyNone(t *testing.T) {
	full := NewTag(1, 2, 3)
	sub := NewTag(1, 3)
	other := NewTag(4, 5)

	if !full.ContainsAll(sub) {
		t.Errorf("ContainsAll: full should contain sub")
	}
	if full.ContainsAll(other) {
		t.Errorf("ContainsAll: full should not contain other")
	}
	if !full.ContainsAny(other.Or(sub)) {
		t.Errorf("ContainsAny: should be true when any bit overlaps")
	}
	if !full.ContainsNone(other) {
		t.Errorf("ContainsNone: full and other are disjoint")
	}
}

func TestTagIsEmpty(t *testing.T) {
	var tag Tag
	if !tag.IsEmpty() {
		t.Errorf("zero-value Tag should be empty")
	}
	tag.Set(400)
	if tag.IsEmpty() {
		t.Errorf("Tag with a set overflow bit should not be empty")
	}
	tag.Clear(400)
	if !tag.IsEmpty() {
		t.Errorf("clearing the only set bit should make the Tag empty again")
	}
}
