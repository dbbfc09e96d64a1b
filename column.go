package silo

// columnBase is the type-erased half of a Column[T], so a columnStore can
// hold columns of different component types behind one map and still grow
// them all together when the entity id space grows (spec.md §4.3: "when
// the entity id space grows, every existing column is extended to match").
type columnBase interface {
	ensureLen(n int)
	length() int
}

// Column is the dense, entity-id-indexed array backing one component type.
// Growth doubles the previous length, or jumps straight to the required
// length if doubling isn't enough — the same policy table.Table's backing
// arrays use in the teacher.
type Column[T any] struct {
	data []T
}

func (c *Column[T]) ensureLen(n int) {
	if len(c.data) >= n {
		return
	}
	newLen := max(len(c.data)*2, n)
	grown := make([]T, newLen)
	copy(grown, c.data)
	c.data = grown
}

func (c *Column[T]) length() int { return len(c.data) }

// at returns a pointer to the live slot for entity id. Callers must have
// already called ensureLen(id+1).
func (c *Column[T]) at(id int) *T { return &c.data[id] }

// reset zeroes the slot at id, the explicit "physically overwritten only on
// the next add" step spec.md §3 calls for: destroy never clears a column,
// add does.
func (c *Column[T]) reset(id int) { c.data[id] = *new(T) }

// columnStore owns every registered component type's Column, keyed by the
// TypeIndex the Type Registry assigned it. A columnStore backs the
// per-entity component data; singleton storage is independent of it and
// lives in its own table.Table-backed singletonStore — see singleton.go.
type columnStore struct {
	columns map[TypeIndex]columnBase
}

func newColumnStore() columnStore {
	return columnStore{columns: make(map[TypeIndex]columnBase)}
}

// getColumn returns the Column[T] for idx, lazily creating it. The caller
// must hold the structural mutex: column creation and growth are both
// structural mutations (spec.md §4.3/§4.8).
func getColumn[T any](cs *columnStore, idx TypeIndex) *Column[T] {
	if existing, ok := cs.columns[idx]; ok {
		return existing.(*Column[T])
	}
	c := &Column[T]{}
	cs.columns[idx] = c
	return c
}

// growAll extends every existing column to at least length n, the
// "entity id space grows" propagation step.
func (cs *columnStore) growAll(n int) {
	for _, c := range cs.columns {
		c.ensureLen(n)
	}
}
