package silo

import "math/bits"

// idQueue is a FIFO of freed entity ids, reused before the id counter is
// advanced further — spec.md §4.4's free_ids queue.
type idQueue struct {
	items []uint32
	head  int
}

func (q *idQueue) push(id uint32) { q.items = append(q.items, id) }

func (q *idQueue) pop() (uint32, bool) {
	if q.head >= len(q.items) {
		return 0, false
	}
	id := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return id, true
}

func (q *idQueue) len() int { return len(q.items) - q.head }

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// entityDirectory is the parallel-array entity table of spec.md §2.4 /
// §4.4: alive flag, generation counter and current Tag per entity id, plus
// the free-id queue and monotonic counter that supply fresh ids. slot
// additionally tracks the entity's current position inside its archetype's
// entity_ids list, an addition over the base spec that turns archetype
// removal from a linear scan into an O(1) lookup during ordinary
// destroy/transition traffic while leaving Archetype.Remove's documented
// by-id linear scan available for callers who only have an id.
type entityDirectory struct {
	alive      []bool
	generation []uint32
	tag        []Tag
	slot       []int32
	free       idQueue
	idCounter  uint32
}

// newEntityDirectory reserves id 0 (never handed to create_entity) and
// pre-sizes the parallel arrays to the requested initial capacity.
func newEntityDirectory(initialCapacity int) *entityDirectory {
	cap := nextPowerOfTwo(max(initialCapacity, 1))
	d := &entityDirectory{
		alive:      make([]bool, cap),
		generation: make([]uint32, cap),
		tag:        make([]Tag, cap),
		slot:       make([]int32, cap),
		idCounter:  1, // id 0 reserved
	}
	return d
}

// ensureCapacity grows every parallel array to at least n entries,
// returning true if a grow actually happened (callers use this to decide
// whether the column store also needs to grow).
func (d *entityDirectory) ensureCapacity(n int) bool {
	if len(d.alive) >= n {
		return false
	}
	newLen := nextPowerOfTwo(n)
	grow := func() {
		d.alive = append(d.alive, make([]bool, newLen-len(d.alive))...)
		d.generation = append(d.generation, make([]uint32, newLen-len(d.generation))...)
		d.tag = append(d.tag, make([]Tag, newLen-len(d.tag))...)
		d.slot = append(d.slot, make([]int32, newLen-len(d.slot))...)
	}
	grow()
	return true
}

// allocate returns a fresh or recycled entity id and its current
// generation, growing the directory if the free list is empty and the
// counter must advance past the current capacity.
func (d *entityDirectory) allocate() (id uint32, generation uint32) {
	if freed, ok := d.free.pop(); ok {
		d.alive[freed] = true
		return freed, d.generation[freed]
	}
	id = d.idCounter
	d.idCounter++
	d.ensureCapacity(int(id) + 1)
	d.alive[id] = true
	return id, d.generation[id]
}

// destroy marks id not-alive, bumps its generation (invalidating every
// outstanding handle for it) and returns it to the free queue.
func (d *entityDirectory) destroy(id uint32) {
	d.alive[id] = false
	d.generation[id]++
	d.tag[id] = Tag{}
	d.free.push(id)
}

// valid implements spec.md I5: a handle (id, gen) is valid iff
// alive[id] && generation[id] == gen.
func (d *entityDirectory) valid(id uint32, generation uint32) bool {
	return int(id) < len(d.alive) && d.alive[id] && d.generation[id] == generation
}

func (d *entityDirectory) count() uint32 {
	n := uint32(0)
	for i, a := range d.alive {
		if a && i != 0 {
			n++
		}
	}
	return n
}
