package silo

// Archetype owns the append-only, tombstoned list of entity ids sharing one
// component-set Tag. Slots containing -1 are tombstones and their index is
// also pushed onto freeSlots for O(1) reuse — spec.md §3/§4.5.
//
// Auto-compaction is intentionally never triggered internally: Compact is
// an explicit, caller-invoked maintenance operation (spec.md §4.5 policy),
// because a mid-tick linear rewrite would cause latency spikes the
// scheduler's frequency-gated systems can't tolerate.
type Archetype struct {
	mask       Tag
	entityIDs  []int32
	aliveCount uint32
	freeSlots  []uint32
}

func newArchetype(mask Tag, capacity int) *Archetype {
	return &Archetype{
		mask:      mask,
		entityIDs: make([]int32, 0, capacity),
	}
}

// Mask returns the component-set Tag this archetype holds entities for.
func (a *Archetype) Mask() Tag { return a.mask }

// AliveCount returns the number of live (non-tombstoned) entities.
func (a *Archetype) AliveCount() uint32 { return a.aliveCount }

// Len returns the length of the backing slice, tombstones included.
func (a *Archetype) Len() int { return len(a.entityIDs) }

// add reuses a tombstoned slot if one is free, otherwise appends. Returns
// the slot index the id now occupies, so the caller (World) can record it
// in the entity directory for O(1) future removal.
func (a *Archetype) add(id uint32) int {
	if n := len(a.freeSlots); n > 0 {
		slot := int(a.freeSlots[n-1])
		a.freeSlots = a.freeSlots[:n-1]
		a.entityIDs[slot] = int32(id)
		a.aliveCount++
		return slot
	}
	slot := len(a.entityIDs)
	a.entityIDs = append(a.entityIDs, int32(id))
	a.aliveCount++
	return slot
}

// removeAt tombstones the given slot directly, in O(1). The World uses
// this once it already knows an entity's slot from the directory.
func (a *Archetype) removeAt(slot int) {
	if a.entityIDs[slot] == -1 {
		return
	}
	a.entityIDs[slot] = -1
	a.freeSlots = append(a.freeSlots, uint32(slot))
	a.aliveCount--
}

// Remove performs the linear scan spec.md §4.5 documents as the archetype's
// own by-id removal primitive, for callers that only have an id and not a
// cached slot index.
func (a *Archetype) Remove(id uint32) bool {
	for i, v := range a.entityIDs {
		if v == int32(id) {
			a.removeAt(i)
			return true
		}
	}
	return false
}

// Compact rewrites entity_ids in place, stably dropping every tombstone and
// clearing free_slots. Not safe to call during iteration.
func (a *Archetype) Compact() {
	write := 0
	for _, id := range a.entityIDs {
		if id != -1 {
			a.entityIDs[write] = id
			write++
		}
	}
	a.entityIDs = a.entityIDs[:write]
	a.freeSlots = a.freeSlots[:0]
}

// EntitySpan is a read-only view over entity_ids[0:len], tombstones
// included — iterators must skip -1 themselves.
func (a *Archetype) EntitySpan() []int32 { return a.entityIDs }

// Fragmentation returns 1 - alive/len, or 0 for an empty archetype.
func (a *Archetype) Fragmentation() float64 {
	if len(a.entityIDs) == 0 {
		return 0
	}
	return 1 - float64(a.aliveCount)/float64(len(a.entityIDs))
}
