package silo

import "fmt"

// EntityNotFoundError reports an operation addressed to an id that is not
// (or is no longer) alive.
type EntityNotFoundError struct{ ID uint32 }

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d not found", e.ID)
}

// EntityDestroyedError reports that a handle's generation no longer
// matches the directory — the use-after-free signal of spec.md §4.7/P5.
type EntityDestroyedError struct {
	ID                  uint32
	Generation, Current uint32
}

func (e EntityDestroyedError) Error() string {
	return fmt.Sprintf("entity %d destroyed: handle generation %d, current %d", e.ID, e.Generation, e.Current)
}

// ComponentNotFoundError reports get_component on an entity whose tag does
// not carry the requested type.
type ComponentNotFoundError struct {
	EntityID uint32
	Type     any
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("entity %d has no component %T", e.EntityID, e.Type)
}

// InvalidSingletonError reports add/remove of a non-singleton type against
// id 0, or a singleton-bound operation against a regular entity.
type InvalidSingletonError struct{ Reason string }

func (e InvalidSingletonError) Error() string { return "invalid singleton use: " + e.Reason }

// EntityHandle is a stable, copyable external reference to an entity: the
// (id, generation) pair of spec.md §4.7. It survives every structural
// mutation except the destruction of its own entity — exactly the
// condition ComponentHandle.Get reports on dereference.
type EntityHandle struct {
	id         uint32
	generation uint32
}

// ID returns the directory slot this handle addresses.
func (h EntityHandle) ID() uint32 { return h.id }

// Generation returns the generation this handle was minted against.
func (h EntityHandle) Generation() uint32 { return h.generation }

// IsSingleton reports whether this handle addresses the reserved
// singleton id 0.
func (h EntityHandle) IsSingleton() bool { return h.id == 0 }

// ComponentHandle is a stable external reference to one component slot:
// (id, generation, type_index) plus the owning World, per spec.md §4.7.
type ComponentHandle[T any] struct {
	id         uint32
	generation uint32
	typeIndex  TypeIndex
	world      *World
}

// EntityID returns the id of the entity this handle's component belongs
// to.
func (h ComponentHandle[T]) EntityID() uint32 { return h.id }

// Get dereferences the handle: it validates the entity's generation (id 0
// is exempt — see world.go's singleton discussion) and returns a mutable
// pointer into the backing column. The pointer is valid until the next
// structural mutation that could grow that column; callers that need a
// value to outlive a create_entity should re-dereference through the
// handle.
func (h ComponentHandle[T]) Get() (*T, error) {
	return derefComponent[T](h.world, h.id, h.generation, h.typeIndex)
}

// MustGet is Get but panics on error, for call sites that have already
// established the handle is live.
func (h ComponentHandle[T]) MustGet() *T {
	v, err := h.Get()
	if err != nil {
		panic(err)
	}
	return v
}
