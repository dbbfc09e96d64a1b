package silo

import (
	"reflect"
	"sort"
)

// AddComponent adds component type T to e, transitioning it into the
// archetype for its new Tag. Adding a type the entity already carries is a
// no-op that preserves the existing value — the explicit resolution of
// spec.md §9's open question, recorded in DESIGN.md.
func AddComponent[T any](w *World, e EntityHandle) (ComponentHandle[T], error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(e); err != nil {
		return ComponentHandle[T]{}, err
	}
	if e.id == 0 {
		return ComponentHandle[T]{}, InvalidSingletonError{Reason: "use AddSingletonComponent for the reserved id"}
	}
	idx, err := getOrRegister[T]()
	if err != nil {
		return ComponentHandle[T]{}, err
	}
	tag := w.directory.tag[e.id]
	if !tag.Has(idx) {
		newTag := tag
		newTag.Set(idx)
		w.transition(e.id, newTag)
		col := getColumn[T](&w.columns, idx)
		w.growToFit(e.id)
		col.ensureLen(int(e.id) + 1)
		col.reset(int(e.id))
	}
	return ComponentHandle[T]{id: e.id, generation: e.generation, typeIndex: idx, world: w}, nil
}

// RemoveComponent drops component type T from e, if present. Removing a
// type the entity never had, or one never registered at all, is a no-op.
func RemoveComponent[T any](w *World, e EntityHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(e); err != nil {
		return err
	}
	if e.id == 0 {
		return InvalidSingletonError{Reason: "use RemoveSingletonComponent for the reserved id"}
	}
	idx, ok := tryIndex[T]()
	if !ok {
		return nil
	}
	tag := w.directory.tag[e.id]
	if !tag.Has(idx) {
		return nil
	}
	newTag := tag
	newTag.Clear(idx)
	w.transition(e.id, newTag)
	col := getColumn[T](&w.columns, idx)
	if int(e.id) < col.length() {
		col.reset(int(e.id))
	}
	return nil
}

// GetComponent returns a handle to e's component of type T, reporting
// NotRegisteredError if T was never registered by anyone, or
// ComponentNotFoundError if e's Tag doesn't carry it.
func GetComponent[T any](w *World, e EntityHandle) (ComponentHandle[T], error) {
	w.mu.Lock()
	if err := w.checkEntity(e); err != nil {
		w.mu.Unlock()
		return ComponentHandle[T]{}, err
	}
	idx, ok := tryIndex[T]()
	if !ok {
		w.mu.Unlock()
		return ComponentHandle[T]{}, NotRegisteredError{Type: reflect.TypeFor[T]()}
	}
	if !w.directory.tag[e.id].Has(idx) {
		w.mu.Unlock()
		return ComponentHandle[T]{}, ComponentNotFoundError{EntityID: e.id, Type: *new(T)}
	}
	w.mu.Unlock()
	return ComponentHandle[T]{id: e.id, generation: e.generation, typeIndex: idx, world: w}, nil
}

// TryGetComponent is GetComponent without the error: ok is false for
// exactly the cases GetComponent would have returned an error for.
func TryGetComponent[T any](w *World, e EntityHandle) (ComponentHandle[T], bool) {
	h, err := GetComponent[T](w, e)
	return h, err == nil
}

// HasComponent reports whether e currently carries a component of type T.
// A never-registered T always reports false rather than registering it.
func HasComponent[T any](w *World, e EntityHandle) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.checkEntity(e) != nil {
		return false
	}
	idx, ok := tryIndex[T]()
	if !ok {
		return false
	}
	return w.directory.tag[e.id].Has(idx)
}

// ComponentsAsString renders e's current Tag as a sorted list of component
// type names, a debug affordance (SPEC_FULL.md's supplemented features)
// with no effect on scheduling or storage.
func ComponentsAsString(w *World, e EntityHandle) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.checkEntity(e) != nil {
		return nil
	}
	tag := w.directory.tag[e.id]
	names := make([]string, 0)
	snap := *globalRegistry.snap.Load()
	for t, idx := range snap.indices {
		if tag.Has(idx) {
			names = append(names, t.String())
		}
	}
	sort.Strings(names)
	return names
}

// --- singleton components -------------------------------------------------
//
// Singleton storage lives in World.singletons, a table.Table-backed
// singletonStore (see singleton.go) wholly separate from the per-entity
// Column Store. Presence is tracked on the directory's reserved id-0 Tag
// slot, which is never touched by
// CreateEntity/DestroyEntity since id 0 is never allocated to a regular
// entity. This is how spec.md's two descriptions of singleton storage
// ("independent of entity columns" in the data model, "entity id 0
// reserved for singletons" in the directory section) are reconciled — see
// DESIGN.md.

// AddSingletonComponent installs w's singleton instance of type T; each
// World keeps its own singletons. Adding a type already installed is a no-op preserving the
// existing value, matching AddComponent's policy.
func AddSingletonComponent[T any](w *World) (ComponentHandle[T], error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	idx, err := getOrRegister[T]()
	if err != nil {
		return ComponentHandle[T]{}, err
	}
	if !w.directory.tag[0].Has(idx) {
		w.directory.tag[0].Set(idx)
		ptr := singletonSlot[T](w.singletons, idx)
		*ptr = *new(T)
	}
	return ComponentHandle[T]{id: 0, generation: 0, typeIndex: idx, world: w}, nil
}

// RemoveSingletonComponent uninstalls the singleton instance of type T, if
// present.
func RemoveSingletonComponent[T any](w *World) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	idx, ok := tryIndex[T]()
	if !ok {
		return nil
	}
	if !w.directory.tag[0].Has(idx) {
		return nil
	}
	w.directory.tag[0].Clear(idx)
	ptr := singletonSlot[T](w.singletons, idx)
	*ptr = *new(T)
	return nil
}

// GetSingletonComponent returns a handle to the installed singleton
// instance of type T, or InvalidSingletonError if none is installed.
func GetSingletonComponent[T any](w *World) (ComponentHandle[T], error) {
	w.mu.Lock()
	idx, ok := tryIndex[T]()
	if !ok || !w.directory.tag[0].Has(idx) {
		w.mu.Unlock()
		return ComponentHandle[T]{}, InvalidSingletonError{Reason: "no singleton of this type is installed"}
	}
	w.mu.Unlock()
	return ComponentHandle[T]{id: 0, generation: 0, typeIndex: idx, world: w}, nil
}

// TryGetSingletonComponent is GetSingletonComponent without the error.
func TryGetSingletonComponent[T any](w *World) (ComponentHandle[T], bool) {
	h, err := GetSingletonComponent[T](w)
	return h, err == nil
}

// HasSingletonComponent reports whether a singleton of type T is currently
// installed.
func HasSingletonComponent[T any](w *World) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	idx, ok := tryIndex[T]()
	if !ok {
		return false
	}
	return w.directory.tag[0].Has(idx)
}
