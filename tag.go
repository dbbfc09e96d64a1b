package silo

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/TheBitDrifter/mask"
)

// TypeIndex is the dense, process-lifetime-stable index the Type Registry
// assigns to a registered component type. See registry.go.
type TypeIndex uint16

// tagLaneBits is the width of one mask.Mask256 lane: the teacher's own
// bitset type, confirmed comparable and Mark/Unmark/ContainsAll/
// ContainsAny/ContainsNone-bearing by its use in warehouse's storage.go
// (storage.locks mask.Mask256, sto.locks.Mark/Unmark/IsEmpty) and
// query.go's compositeNode.Evaluate (archMask.ContainsAll/ContainsAny/
// ContainsNone). Tag's width isn't bounded to 256 components the way
// warehouse's is, so indices beyond the first lane spill into an
// overflow slice of further mask.Mask256 lanes rather than a second,
// wider type the mask package doesn't offer.
const tagLaneBits = 256

// Tag is a bitset over component-type indices: the component-set signature
// of an archetype or a query. The first 256 indices live in one
// mask.Mask256; indices beyond that spill into lazily-grown overflow
// lanes, each also a mask.Mask256. The containment tests (ContainsAll,
// ContainsAny, ContainsNone) delegate straight to mask.Mask256's own
// methods — the hot path spec.md's query matching actually exercises.
// mask's retrievable API never needs to decompose a mask back into its
// individual bits (every call site in warehouse either Marks/Unmarks one
// bit or tests ContainsAll/ContainsAny/ContainsNone against another whole
// mask), so order keeps the ascending list of set indices alongside the
// lanes; Has, Equal, IsEmpty, Compare, Hash, the map key and the
// And/Or/Xor/Not operations all read order rather than the lanes.
type Tag struct {
	inline   mask.Mask256
	overflow []mask.Mask256
	order    []TypeIndex
}

func laneOf(i TypeIndex) (lane int, bit uint32) {
	return int(i) / tagLaneBits, uint32(int(i) % tagLaneBits)
}

// growOverflow ensures overflow reaches at least lane entries (overflow[0]
// backs the second lane, index 1 overall), doubling the way column
// growth does.
func (t *Tag) growOverflow(lane int) {
	need := lane
	if need < len(t.overflow) {
		return
	}
	newLen := len(t.overflow) * 2
	if newLen <= need {
		newLen = need + 1
	}
	grown := make([]mask.Mask256, newLen)
	copy(grown, t.overflow)
	t.overflow = grown
}

func (t *Tag) laneForWrite(lane int) *mask.Mask256 {
	if lane == 0 {
		return &t.inline
	}
	t.growOverflow(lane)
	return &t.overflow[lane-1]
}

func (t Tag) laneForRead(lane int) mask.Mask256 {
	if lane == 0 {
		return t.inline
	}
	if lane-1 >= len(t.overflow) {
		return mask.Mask256{}
	}
	return t.overflow[lane-1]
}

func orderInsert(order []TypeIndex, i TypeIndex) []TypeIndex {
	lo, hi := 0, len(order)
	for lo < hi {
		mid := (lo + hi) / 2
		if order[mid] < i {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(order) && order[lo] == i {
		return order
	}
	order = append(order, 0)
	copy(order[lo+1:], order[lo:])
	order[lo] = i
	return order
}

func orderRemove(order []TypeIndex, i TypeIndex) []TypeIndex {
	lo, hi := 0, len(order)
	for lo < hi {
		mid := (lo + hi) / 2
		if order[mid] < i {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(order) || order[lo] != i {
		return order
	}
	return append(order[:lo], order[lo+1:]...)
}

func orderHas(order []TypeIndex, i TypeIndex) bool {
	lo, hi := 0, len(order)
	for lo < hi {
		mid := (lo + hi) / 2
		if order[mid] < i {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(order) && order[lo] == i
}

// Set marks type index i present in the tag, growing the overflow tail if
// needed. Mirrors warehouse's own construction idiom (storage.go:
// "var entityMask mask.Mask; ...; entityMask.Mark(bit)"). The overflow and
// order slices are copied before the write, so a Tag copied by assignment
// is never changed by a Set on the copy.
func (t *Tag) Set(i TypeIndex) {
	t.overflow = append([]mask.Mask256(nil), t.overflow...)
	t.order = append([]TypeIndex(nil), t.order...)
	lane, bit := laneOf(i)
	t.laneForWrite(lane).Mark(bit)
	t.order = orderInsert(t.order, i)
}

// Clear removes type index i from the tag. Clearing an index never set,
// or one beyond the current overflow length, is a no-op. Unlike
// warehouse's entity.go — which never Unmarks and instead rebuilds a
// fresh mask from the surviving component list on RemoveComponent —
// mask.Mask256 exposes Unmark directly (storage.go's
// RemoveLock/sto.locks.Unmark(bit)), so Clear uses it rather than
// reimplementing that rebuild. Like Set, Clear copies the overflow and
// order slices before writing.
func (t *Tag) Clear(i TypeIndex) {
	t.overflow = append([]mask.Mask256(nil), t.overflow...)
	t.order = append([]TypeIndex(nil), t.order...)
	lane, bit := laneOf(i)
	if lane == 0 {
		t.inline.Unmark(bit)
	} else if lane-1 < len(t.overflow) {
		t.overflow[lane-1].Unmark(bit)
	} else {
		return
	}
	t.order = orderRemove(t.order, i)
}

// Has reports whether type index i is present.
func (t Tag) Has(i TypeIndex) bool {
	return orderHas(t.order, i)
}

// laneCount returns how many mask.Mask256 lanes this tag currently spans
// (always at least 1, the inline lane).
func (t Tag) laneCount() int { return 1 + len(t.overflow) }

// And returns the set intersection.
func (t Tag) And(other Tag) Tag {
	var out Tag
	for _, i := range t.order {
		if orderHas(other.order, i) {
			out.Set(i)
		}
	}
	return out
}

// Or returns the set union.
func (t Tag) Or(other Tag) Tag {
	var out Tag
	for _, i := range t.order {
		out.Set(i)
	}
	for _, i := range other.order {
		out.Set(i)
	}
	return out
}

// Xor returns the symmetric difference.
func (t Tag) Xor(other Tag) Tag {
	var out Tag
	for _, i := range t.order {
		if !orderHas(other.order, i) {
			out.Set(i)
		}
	}
	for _, i := range other.order {
		if !orderHas(t.order, i) {
			out.Set(i)
		}
	}
	return out
}

// Not returns the complement within this tag's current width (inline plus
// whatever overflow is already allocated). Bits beyond that width are not
// represented and are not flipped — a Tag has no implicit infinite upper
// bound.
func (t Tag) Not() Tag {
	width := tagLaneBits * t.laneCount()
	var out Tag
	oi := 0
	for i := 0; i < width; i++ {
		ti := TypeIndex(i)
		if oi < len(t.order) && t.order[oi] == ti {
			oi++
			continue
		}
		out.Set(ti)
	}
	return out
}

// ContainsAll reports whether t has every bit set in other (other is a
// subset of t). This is the hot-path query match: matching_archetypes
// tests exactly this, lane by lane, against mask.Mask256.ContainsAll —
// the same method warehouse's own query.go compositeNode.Evaluate calls.
func (t Tag) ContainsAll(other Tag) bool {
	if !t.inline.ContainsAll(other.inline) {
		return false
	}
	for i, ov := range other.overflow {
		if ov == (mask.Mask256{}) {
			continue
		}
		if !t.laneForRead(i + 1).ContainsAll(ov) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether t and other share any set bit.
func (t Tag) ContainsAny(other Tag) bool {
	if t.inline.ContainsAny(other.inline) {
		return true
	}
	n := len(other.overflow)
	if len(t.overflow) < n {
		n = len(t.overflow)
	}
	for i := 0; i < n; i++ {
		if t.overflow[i].ContainsAny(other.overflow[i]) {
			return true
		}
	}
	return false
}

// ContainsNone reports whether t and other share no set bit.
func (t Tag) ContainsNone(other Tag) bool { return !t.ContainsAny(other) }

// IsEmpty reports whether no bit is set anywhere in the tag.
func (t Tag) IsEmpty() bool { return len(t.order) == 0 }

// Equal reports whether t and other represent the same set of type
// indices.
func (t Tag) Equal(other Tag) bool {
	if len(t.order) != len(other.order) {
		return false
	}
	for i, idx := range t.order {
		if other.order[i] != idx {
			return false
		}
	}
	return true
}

// Compare gives Tag a total order: the ascending set-index lists compared
// element by element, shorter-and-a-prefix sorting first. Returns -1, 0
// or 1.
func (t Tag) Compare(other Tag) int {
	n := len(t.order)
	if len(other.order) < n {
		n = len(other.order)
	}
	for i := 0; i < n; i++ {
		if t.order[i] < other.order[i] {
			return -1
		}
		if t.order[i] > other.order[i] {
			return 1
		}
	}
	if len(t.order) < len(other.order) {
		return -1
	}
	if len(t.order) > len(other.order) {
		return 1
	}
	return 0
}

// Hash returns a hash that agrees with Equal: equal tags always share a
// hash.
func (t Tag) Hash() uint64 {
	h := fnv.New64a()
	var buf [2]byte
	for _, idx := range t.order {
		binary.LittleEndian.PutUint16(buf[:], uint16(idx))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// tagKey is the comparable, hashable projection of a Tag suitable for use
// as a Go map key — Tag itself carries slices and so is not comparable.
// Built from order rather than the mask lanes, the same way mask.Mask
// itself is used as a map key in warehouse's storage.go
// (idsGroupedByMask map[mask.Mask]archetypeID) precisely because it is a
// small, comparable fixed-size value — Tag's width isn't fixed, so it
// needs its own comparable projection instead.
type tagKey string

func (t Tag) key() tagKey {
	buf := make([]byte, len(t.order)*2)
	for i, idx := range t.order {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(idx))
	}
	return tagKey(buf)
}

// NewTag builds a Tag with the given type indices set.
func NewTag(indices ...TypeIndex) Tag {
	var t Tag
	for _, i := range indices {
		t.Set(i)
	}
	return t
}
