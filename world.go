package silo

import (
	"iter"
	"sync"
)

// archetypeInitialCapacity is the starting backing-slice capacity for every
// newly created archetype, mirroring the 1024 default spec.md §6 gives
// WorldOptions.InitialEntityCapacity.
const archetypeInitialCapacity = 1024

// World is the runtime home of one ECS instance: an entity directory, the
// component columns it indexes, the archetype partition and query cache
// over those columns, and the system scheduler that drives them. Every
// structural mutation — create/destroy entity, add/remove component — goes
// through the single mu mutex, matching spec.md §4.8's "structural
// mutations are serialized" contract and the teacher's own
// single-structural-lock storage.go design.
type World struct {
	mu sync.Mutex

	options WorldOptions

	directory     *entityDirectory
	columns       columnStore
	singletons    *singletonStore
	partition     *partition
	relationships *relationshipTable

	scheduler *scheduler

	errorSink func(source string, err error)

	initialized bool
	disposed    bool
}

// OnError registers the sink that receives UserSystemError values produced
// by system bodies during Update — spec.md §7's "errors reported, never
// propagated to the tick driver."
func (w *World) OnError(sink func(source string, err error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errorSink = sink
}

func (w *World) reportError(source string, err error) {
	w.mu.Lock()
	sink := w.errorSink
	w.mu.Unlock()
	if sink != nil {
		sink(source, err)
	}
}

// checkEntity validates a handle against the directory, exempting the
// reserved singleton id 0 from generation checks — the Open Question in
// spec.md §9 decided explicitly in DESIGN.md. Callers must hold mu.
func (w *World) checkEntity(e EntityHandle) error {
	if e.id == 0 {
		return nil
	}
	if !w.directory.valid(e.id, e.generation) {
		var cur uint32
		if int(e.id) < len(w.directory.generation) {
			cur = w.directory.generation[e.id]
		}
		return EntityDestroyedError{ID: e.id, Generation: e.generation, Current: cur}
	}
	return nil
}

// growToFit grows the directory (if needed) and propagates that growth to
// the per-entity column store. Callers must hold mu.
func (w *World) growToFit(id uint32) {
	if w.directory.ensureCapacity(int(id) + 1) {
		w.columns.growAll(len(w.directory.alive))
	}
}

// transition is the canonical structural-mutation primitive of spec.md
// §4.8: remove id from its current archetype and add it to the archetype
// for newTag, recording the new slot in the directory. Every add/remove
// component operation, however many types it touches at once, calls this
// exactly once (P7) — batch helpers compute the whole new Tag first and
// transition only if it actually differs from the old one.
func (w *World) transition(id uint32, newTag Tag) *Archetype {
	oldTag := w.directory.tag[id]
	if oldArch, ok := w.partition.byTag[oldTag.key()]; ok {
		oldArch.removeAt(int(w.directory.slot[id]))
	}
	w.directory.tag[id] = newTag
	newArch := w.partition.getOrCreate(newTag, archetypeInitialCapacity)
	w.directory.slot[id] = int32(newArch.add(id))
	return newArch
}

// CreateEntity allocates a fresh or recycled id, places it in the
// zero-component archetype, and returns a live handle — spec.md §4.1's
// create_entity.
func (w *World) CreateEntity() (EntityHandle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.disposed {
		return EntityHandle{}, LifecycleMisuseError{Reason: "CreateEntity called after Dispose"}
	}
	id, gen := w.directory.allocate()
	w.growToFit(id)
	arch := w.partition.getOrCreate(Tag{}, archetypeInitialCapacity)
	w.directory.slot[id] = int32(arch.add(id))
	w.directory.tag[id] = Tag{}
	return EntityHandle{id: id, generation: gen}, nil
}

// DestroyEntity removes id from its archetype and bumps its generation,
// invalidating every outstanding handle for it — spec.md §4.1's
// destroy_entity. Destroying an already-dead or stale handle reports
// EntityDestroyedError rather than silently succeeding.
func (w *World) DestroyEntity(e EntityHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(e); err != nil {
		return err
	}
	if e.id == 0 {
		return InvalidSingletonError{Reason: "the reserved singleton id cannot be destroyed"}
	}
	tag := w.directory.tag[e.id]
	if arch, ok := w.partition.byTag[tag.key()]; ok {
		arch.removeAt(int(w.directory.slot[e.id]))
	}
	w.directory.destroy(e.id)
	delete(w.relationships.parent, e.id)
	return nil
}

// TryGetEntityByID looks up the live handle for id, reporting false if id
// is out of range or not currently alive.
func (w *World) TryGetEntityByID(id uint32) (EntityHandle, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if int(id) >= len(w.directory.alive) || !w.directory.alive[id] {
		return EntityHandle{}, false
	}
	return EntityHandle{id: id, generation: w.directory.generation[id]}, true
}

// EntityCount returns the number of currently alive entities, excluding the
// reserved singleton id.
func (w *World) EntityCount() uint32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.directory.count()
}

// AllEntities iterates every currently alive entity. The live set is
// snapshotted under the lock before any handle is yielded, so a consumer
// that itself mutates the world mid-range never deadlocks against mu and
// never observes a handle it raced past.
func (w *World) AllEntities() iter.Seq[EntityHandle] {
	return func(yield func(EntityHandle) bool) {
		w.mu.Lock()
		handles := make([]EntityHandle, 0, w.directory.count())
		for id := uint32(1); int(id) < len(w.directory.alive); id++ {
			if w.directory.alive[id] {
				handles = append(handles, EntityHandle{id: id, generation: w.directory.generation[id]})
			}
		}
		w.mu.Unlock()
		for _, h := range handles {
			if !yield(h) {
				return
			}
		}
	}
}

// CompactArchetypes runs Compact on every archetype, then rebuilds the
// directory's cached slot index for every surviving entity. Compact itself
// only knows about its own entity_ids slice; the slot rebuild is what keeps
// the directory's O(1) removal path correct afterward — the maintenance
// contract noted in archetype.go's doc comment.
func (w *World) CompactArchetypes() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, a := range w.partition.Archetypes() {
		a.Compact()
		for slot, id := range a.EntitySpan() {
			w.directory.slot[id] = int32(slot)
		}
	}
}

// FragmentationStats is a world-level rollup of tombstone fragmentation
// over every archetype; it holds no per-archetype entries. A
// maintenance affordance this package adds beyond spec.md's base
// requirements (see SPEC_FULL.md's supplemented features).
type FragmentationStats struct {
	ArchetypeCount int
	TotalSlots     int
	TotalAlive     int
	Fragmentation  float64
}

// FragmentationStats summarizes tombstone fragmentation across every
// archetype, for callers deciding whether a CompactArchetypes pass is
// worthwhile.
func (w *World) FragmentationStats() FragmentationStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	var stats FragmentationStats
	for _, a := range w.partition.Archetypes() {
		stats.ArchetypeCount++
		stats.TotalSlots += a.Len()
		stats.TotalAlive += int(a.AliveCount())
	}
	if stats.TotalSlots > 0 {
		stats.Fragmentation = 1 - float64(stats.TotalAlive)/float64(stats.TotalSlots)
	}
	return stats
}

// EnsureEntityCapacity pre-grows the directory and every column to at least
// n entities, avoiding growth churn on a known-size workload.
func (w *World) EnsureEntityCapacity(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.directory.ensureCapacity(n) {
		w.columns.growAll(len(w.directory.alive))
	}
}

// derefComponent is the shared dereference path behind ComponentHandle[T].Get:
// validate the handle, then return a pointer into the backing column. It is
// a free function (methods cannot carry their own type parameters in Go).
func derefComponent[T any](w *World, id, generation uint32, idx TypeIndex) (*T, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(EntityHandle{id: id, generation: generation}); err != nil {
		return nil, err
	}
	if !w.directory.tag[id].Has(idx) {
		return nil, ComponentNotFoundError{EntityID: id, Type: *new(T)}
	}
	if id == 0 {
		return singletonSlot[T](w.singletons, idx), nil
	}
	col := getColumn[T](&w.columns, idx)
	col.ensureLen(int(id) + 1)
	return col.at(int(id)), nil
}
