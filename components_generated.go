package silo

// AddComponentsK / RemoveComponentsK / ComponentHandlesK for K = 2..9,
// generated by hand in the small-macro style spec.md §9 calls for. Each
// AddComponentsK computes the whole new Tag up front and transitions the
// entity into its archetype exactly once regardless of K (P7), then
// zero-initializes only the columns for types the entity didn't already
// carry.


// ComponentHandles2 bundles one ComponentHandle per requested type, in
// order, as returned by AddComponents2.
type ComponentHandles2[T1, T2 any] struct {
	H1 ComponentHandle[T1]
	H2 ComponentHandle[T2]
}

// AddComponents2 adds all of T1, T2 to e in a single archetype
// transition, preserving the data of any type e already carried.
func AddComponents2[T1, T2 any](w *World, e EntityHandle) (ComponentHandles2[T1, T2], error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var zero ComponentHandles2[T1, T2]
	if err := w.checkEntity(e); err != nil {
		return zero, err
	}
	if e.id == 0 {
		return zero, InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	idx1, err := getOrRegister[T1]()
	if err != nil {
		return zero, err
	}
	idx2, err := getOrRegister[T2]()
	if err != nil {
		return zero, err
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	newTag.Set(idx1)
	newTag.Set(idx2)
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	w.growToFit(e.id)
	if !tag.Has(idx1) {
		c1 := getColumn[T1](&w.columns, idx1)
		c1.ensureLen(int(e.id) + 1)
		c1.reset(int(e.id))
	}
	if !tag.Has(idx2) {
		c2 := getColumn[T2](&w.columns, idx2)
		c2.ensureLen(int(e.id) + 1)
		c2.reset(int(e.id))
	}
	return ComponentHandles2[T1, T2]{
		H1: ComponentHandle[T1]{id: e.id, generation: e.generation, typeIndex: idx1, world: w},
		H2: ComponentHandle[T2]{id: e.id, generation: e.generation, typeIndex: idx2, world: w},
	}, nil
}

// RemoveComponents2 drops any of T1, T2 that e currently carries, in
// a single archetype transition.
func RemoveComponents2[T1, T2 any](w *World, e EntityHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(e); err != nil {
		return err
	}
	if e.id == 0 {
		return InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	if idx1, ok := tryIndex[T1](); ok {
		newTag.Clear(idx1)
	}
	if idx2, ok := tryIndex[T2](); ok {
		newTag.Clear(idx2)
	}
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	return nil
}

// ComponentHandles3 bundles one ComponentHandle per requested type, in
// order, as returned by AddComponents3.
type ComponentHandles3[T1, T2, T3 any] struct {
	H1 ComponentHandle[T1]
	H2 ComponentHandle[T2]
	H3 ComponentHandle[T3]
}

// AddComponents3 adds all of T1, T2, T3 to e in a single archetype
// transition, preserving the data of any type e already carried.
func AddComponents3[T1, T2, T3 any](w *World, e EntityHandle) (ComponentHandles3[T1, T2, T3], error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var zero ComponentHandles3[T1, T2, T3]
	if err := w.checkEntity(e); err != nil {
		return zero, err
	}
	if e.id == 0 {
		return zero, InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	idx1, err := getOrRegister[T1]()
	if err != nil {
		return zero, err
	}
	idx2, err := getOrRegister[T2]()
	if err != nil {
		return zero, err
	}
	idx3, err := getOrRegister[T3]()
	if err != nil {
		return zero, err
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	newTag.Set(idx1)
	newTag.Set(idx2)
	newTag.Set(idx3)
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	w.growToFit(e.id)
	if !tag.Has(idx1) {
		c1 := getColumn[T1](&w.columns, idx1)
		c1.ensureLen(int(e.id) + 1)
		c1.reset(int(e.id))
	}
	if !tag.Has(idx2) {
		c2 := getColumn[T2](&w.columns, idx2)
		c2.ensureLen(int(e.id) + 1)
		c2.reset(int(e.id))
	}
	if !tag.Has(idx3) {
		c3 := getColumn[T3](&w.columns, idx3)
		c3.ensureLen(int(e.id) + 1)
		c3.reset(int(e.id))
	}
	return ComponentHandles3[T1, T2, T3]{
		H1: ComponentHandle[T1]{id: e.id, generation: e.generation, typeIndex: idx1, world: w},
		H2: ComponentHandle[T2]{id: e.id, generation: e.generation, typeIndex: idx2, world: w},
		H3: ComponentHandle[T3]{id: e.id, generation: e.generation, typeIndex: idx3, world: w},
	}, nil
}

// RemoveComponents3 drops any of T1, T2, T3 that e currently carries, in
// a single archetype transition.
func RemoveComponents3[T1, T2, T3 any](w *World, e EntityHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(e); err != nil {
		return err
	}
	if e.id == 0 {
		return InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	if idx1, ok := tryIndex[T1](); ok {
		newTag.Clear(idx1)
	}
	if idx2, ok := tryIndex[T2](); ok {
		newTag.Clear(idx2)
	}
	if idx3, ok := tryIndex[T3](); ok {
		newTag.Clear(idx3)
	}
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	return nil
}

// ComponentHandles4 bundles one ComponentHandle per requested type, in
// order, as returned by AddComponents4.
type ComponentHandles4[T1, T2, T3, T4 any] struct {
	H1 ComponentHandle[T1]
	H2 ComponentHandle[T2]
	H3 ComponentHandle[T3]
	H4 ComponentHandle[T4]
}

// AddComponents4 adds all of T1, T2, T3, T4 to e in a single archetype
// transition, preserving the data of any type e already carried.
func AddComponents4[T1, T2, T3, T4 any](w *World, e EntityHandle) (ComponentHandles4[T1, T2, T3, T4], error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var zero ComponentHandles4[T1, T2, T3, T4]
	if err := w.checkEntity(e); err != nil {
		return zero, err
	}
	if e.id == 0 {
		return zero, InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	idx1, err := getOrRegister[T1]()
	if err != nil {
		return zero, err
	}
	idx2, err := getOrRegister[T2]()
	if err != nil {
		return zero, err
	}
	idx3, err := getOrRegister[T3]()
	if err != nil {
		return zero, err
	}
	idx4, err := getOrRegister[T4]()
	if err != nil {
		return zero, err
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	newTag.Set(idx1)
	newTag.Set(idx2)
	newTag.Set(idx3)
	newTag.Set(idx4)
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	w.growToFit(e.id)
	if !tag.Has(idx1) {
		c1 := getColumn[T1](&w.columns, idx1)
		c1.ensureLen(int(e.id) + 1)
		c1.reset(int(e.id))
	}
	if !tag.Has(idx2) {
		c2 := getColumn[T2](&w.columns, idx2)
		c2.ensureLen(int(e.id) + 1)
		c2.reset(int(e.id))
	}
	if !tag.Has(idx3) {
		c3 := getColumn[T3](&w.columns, idx3)
		c3.ensureLen(int(e.id) + 1)
		c3.reset(int(e.id))
	}
	if !tag.Has(idx4) {
		c4 := getColumn[T4](&w.columns, idx4)
		c4.ensureLen(int(e.id) + 1)
		c4.reset(int(e.id))
	}
	return ComponentHandles4[T1, T2, T3, T4]{
		H1: ComponentHandle[T1]{id: e.id, generation: e.generation, typeIndex: idx1, world: w},
		H2: ComponentHandle[T2]{id: e.id, generation: e.generation, typeIndex: idx2, world: w},
		H3: ComponentHandle[T3]{id: e.id, generation: e.generation, typeIndex: idx3, world: w},
		H4: ComponentHandle[T4]{id: e.id, generation: e.generation, typeIndex: idx4, world: w},
	}, nil
}

// RemoveComponents4 drops any of T1, T2, T3, T4 that e currently carries, in
// a single archetype transition.
func RemoveComponents4[T1, T2, T3, T4 any](w *World, e EntityHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(e); err != nil {
		return err
	}
	if e.id == 0 {
		return InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	if idx1, ok := tryIndex[T1](); ok {
		newTag.Clear(idx1)
	}
	if idx2, ok := tryIndex[T2](); ok {
		newTag.Clear(idx2)
	}
	if idx3, ok := tryIndex[T3](); ok {
		newTag.Clear(idx3)
	}
	if idx4, ok := tryIndex[T4](); ok {
		newTag.Clear(idx4)
	}
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	return nil
}

// ComponentHandles5 bundles one ComponentHandle per requested type, in
// order, as returned by AddComponents5.
type ComponentHandles5[T1, T2, T3, T4, T5 any] struct {
	H1 ComponentHandle[T1]
	H2 ComponentHandle[T2]
	H3 ComponentHandle[T3]
	H4 ComponentHandle[T4]
	H5 ComponentHandle[T5]
}

// AddComponents5 adds all of T1, T2, T3, T4, T5 to e in a single archetype
// transition, preserving the data of any type e already carried.
func AddComponents5[T1, T2, T3, T4, T5 any](w *World, e EntityHandle) (ComponentHandles5[T1, T2, T3, T4, T5], error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var zero ComponentHandles5[T1, T2, T3, T4, T5]
	if err := w.checkEntity(e); err != nil {
		return zero, err
	}
	if e.id == 0 {
		return zero, InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	idx1, err := getOrRegister[T1]()
	if err != nil {
		return zero, err
	}
	idx2, err := getOrRegister[T2]()
	if err != nil {
		return zero, err
	}
	idx3, err := getOrRegister[T3]()
	if err != nil {
		return zero, err
	}
	idx4, err := getOrRegister[T4]()
	if err != nil {
		return zero, err
	}
	idx5, err := getOrRegister[T5]()
	if err != nil {
		return zero, err
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	newTag.Set(idx1)
	newTag.Set(idx2)
	newTag.Set(idx3)
	newTag.Set(idx4)
	newTag.Set(idx5)
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	w.growToFit(e.id)
	if !tag.Has(idx1) {
		c1 := getColumn[T1](&w.columns, idx1)
		c1.ensureLen(int(e.id) + 1)
		c1.reset(int(e.id))
	}
	if !tag.Has(idx2) {
		c2 := getColumn[T2](&w.columns, idx2)
		c2.ensureLen(int(e.id) + 1)
		c2.reset(int(e.id))
	}
	if !tag.Has(idx3) {
		c3 := getColumn[T3](&w.columns, idx3)
		c3.ensureLen(int(e.id) + 1)
		c3.reset(int(e.id))
	}
	if !tag.Has(idx4) {
		c4 := getColumn[T4](&w.columns, idx4)
		c4.ensureLen(int(e.id) + 1)
		c4.reset(int(e.id))
	}
	if !tag.Has(idx5) {
		c5 := getColumn[T5](&w.columns, idx5)
		c5.ensureLen(int(e.id) + 1)
		c5.reset(int(e.id))
	}
	return ComponentHandles5[T1, T2, T3, T4, T5]{
		H1: ComponentHandle[T1]{id: e.id, generation: e.generation, typeIndex: idx1, world: w},
		H2: ComponentHandle[T2]{id: e.id, generation: e.generation, typeIndex: idx2, world: w},
		H3: ComponentHandle[T3]{id: e.id, generation: e.generation, typeIndex: idx3, world: w},
		H4: ComponentHandle[T4]{id: e.id, generation: e.generation, typeIndex: idx4, world: w},
		H5: ComponentHandle[T5]{id: e.id, generation: e.generation, typeIndex: idx5, world: w},
	}, nil
}

// RemoveComponents5 drops any of T1, T2, T3, T4, T5 that e currently carries, in
// a single archetype transition.
func RemoveComponents5[T1, T2, T3, T4, T5 any](w *World, e EntityHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(e); err != nil {
		return err
	}
	if e.id == 0 {
		return InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	if idx1, ok := tryIndex[T1](); ok {
		newTag.Clear(idx1)
	}
	if idx2, ok := tryIndex[T2](); ok {
		newTag.Clear(idx2)
	}
	if idx3, ok := tryIndex[T3](); ok {
		newTag.Clear(idx3)
	}
	if idx4, ok := tryIndex[T4](); ok {
		newTag.Clear(idx4)
	}
	if idx5, ok := tryIndex[T5](); ok {
		newTag.Clear(idx5)
	}
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	return nil
}

// ComponentHandles6 bundles one ComponentHandle per requested type, in
// order, as returned by AddComponents6.
type ComponentHandles6[T1, T2, T3, T4, T5, T6 any] struct {
	H1 ComponentHandle[T1]
	H2 ComponentHandle[T2]
	H3 ComponentHandle[T3]
	H4 ComponentHandle[T4]
	H5 ComponentHandle[T5]
	H6 ComponentHandle[T6]
}

// AddComponents6 adds all of T1, T2, T3, T4, T5, T6 to e in a single archetype
// transition, preserving the data of any type e already carried.
func AddComponents6[T1, T2, T3, T4, T5, T6 any](w *World, e EntityHandle) (ComponentHandles6[T1, T2, T3, T4, T5, T6], error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var zero ComponentHandles6[T1, T2, T3, T4, T5, T6]
	if err := w.checkEntity(e); err != nil {
		return zero, err
	}
	if e.id == 0 {
		return zero, InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	idx1, err := getOrRegister[T1]()
	if err != nil {
		return zero, err
	}
	idx2, err := getOrRegister[T2]()
	if err != nil {
		return zero, err
	}
	idx3, err := getOrRegister[T3]()
	if err != nil {
		return zero, err
	}
	idx4, err := getOrRegister[T4]()
	if err != nil {
		return zero, err
	}
	idx5, err := getOrRegister[T5]()
	if err != nil {
		return zero, err
	}
	idx6, err := getOrRegister[T6]()
	if err != nil {
		return zero, err
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	newTag.Set(idx1)
	newTag.Set(idx2)
	newTag.Set(idx3)
	newTag.Set(idx4)
	newTag.Set(idx5)
	newTag.Set(idx6)
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	w.growToFit(e.id)
	if !tag.Has(idx1) {
		c1 := getColumn[T1](&w.columns, idx1)
		c1.ensureLen(int(e.id) + 1)
		c1.reset(int(e.id))
	}
	if !tag.Has(idx2) {
		c2 := getColumn[T2](&w.columns, idx2)
		c2.ensureLen(int(e.id) + 1)
		c2.reset(int(e.id))
	}
	if !tag.Has(idx3) {
		c3 := getColumn[T3](&w.columns, idx3)
		c3.ensureLen(int(e.id) + 1)
		c3.reset(int(e.id))
	}
	if !tag.Has(idx4) {
		c4 := getColumn[T4](&w.columns, idx4)
		c4.ensureLen(int(e.id) + 1)
		c4.reset(int(e.id))
	}
	if !tag.Has(idx5) {
		c5 := getColumn[T5](&w.columns, idx5)
		c5.ensureLen(int(e.id) + 1)
		c5.reset(int(e.id))
	}
	if !tag.Has(idx6) {
		c6 := getColumn[T6](&w.columns, idx6)
		c6.ensureLen(int(e.id) + 1)
		c6.reset(int(e.id))
	}
	return ComponentHandles6[T1, T2, T3, T4, T5, T6]{
		H1: ComponentHandle[T1]{id: e.id, generation: e.generation, typeIndex: idx1, world: w},
		H2: ComponentHandle[T2]{id: e.id, generation: e.generation, typeIndex: idx2, world: w},
		H3: ComponentHandle[T3]{id: e.id, generation: e.generation, typeIndex: idx3, world: w},
		H4: ComponentHandle[T4]{id: e.id, generation: e.generation, typeIndex: idx4, world: w},
		H5: ComponentHandle[T5]{id: e.id, generation: e.generation, typeIndex: idx5, world: w},
		H6: ComponentHandle[T6]{id: e.id, generation: e.generation, typeIndex: idx6, world: w},
	}, nil
}

// RemoveComponents6 drops any of T1, T2, T3, T4, T5, T6 that e currently carries, in
// a single archetype transition.
func RemoveComponents6[T1, T2, T3, T4, T5, T6 any](w *World, e EntityHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(e); err != nil {
		return err
	}
	if e.id == 0 {
		return InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	if idx1, ok := tryIndex[T1](); ok {
		newTag.Clear(idx1)
	}
	if idx2, ok := tryIndex[T2](); ok {
		newTag.Clear(idx2)
	}
	if idx3, ok := tryIndex[T3](); ok {
		newTag.Clear(idx3)
	}
	if idx4, ok := tryIndex[T4](); ok {
		newTag.Clear(idx4)
	}
	if idx5, ok := tryIndex[T5](); ok {
		newTag.Clear(idx5)
	}
	if idx6, ok := tryIndex[T6](); ok {
		newTag.Clear(idx6)
	}
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	return nil
}

// ComponentHandles7 bundles one ComponentHandle per requested type, in
// order, as returned by AddComponents7.
type ComponentHandles7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	H1 ComponentHandle[T1]
	H2 ComponentHandle[T2]
	H3 ComponentHandle[T3]
	H4 ComponentHandle[T4]
	H5 ComponentHandle[T5]
	H6 ComponentHandle[T6]
	H7 ComponentHandle[T7]
}

// AddComponents7 adds all of T1, T2, T3, T4, T5, T6, T7 to e in a single archetype
// transition, preserving the data of any type e already carried.
func AddComponents7[T1, T2, T3, T4, T5, T6, T7 any](w *World, e EntityHandle) (ComponentHandles7[T1, T2, T3, T4, T5, T6, T7], error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var zero ComponentHandles7[T1, T2, T3, T4, T5, T6, T7]
	if err := w.checkEntity(e); err != nil {
		return zero, err
	}
	if e.id == 0 {
		return zero, InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	idx1, err := getOrRegister[T1]()
	if err != nil {
		return zero, err
	}
	idx2, err := getOrRegister[T2]()
	if err != nil {
		return zero, err
	}
	idx3, err := getOrRegister[T3]()
	if err != nil {
		return zero, err
	}
	idx4, err := getOrRegister[T4]()
	if err != nil {
		return zero, err
	}
	idx5, err := getOrRegister[T5]()
	if err != nil {
		return zero, err
	}
	idx6, err := getOrRegister[T6]()
	if err != nil {
		return zero, err
	}
	idx7, err := getOrRegister[T7]()
	if err != nil {
		return zero, err
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	newTag.Set(idx1)
	newTag.Set(idx2)
	newTag.Set(idx3)
	newTag.Set(idx4)
	newTag.Set(idx5)
	newTag.Set(idx6)
	newTag.Set(idx7)
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	w.growToFit(e.id)
	if !tag.Has(idx1) {
		c1 := getColumn[T1](&w.columns, idx1)
		c1.ensureLen(int(e.id) + 1)
		c1.reset(int(e.id))
	}
	if !tag.Has(idx2) {
		c2 := getColumn[T2](&w.columns, idx2)
		c2.ensureLen(int(e.id) + 1)
		c2.reset(int(e.id))
	}
	if !tag.Has(idx3) {
		c3 := getColumn[T3](&w.columns, idx3)
		c3.ensureLen(int(e.id) + 1)
		c3.reset(int(e.id))
	}
	if !tag.Has(idx4) {
		c4 := getColumn[T4](&w.columns, idx4)
		c4.ensureLen(int(e.id) + 1)
		c4.reset(int(e.id))
	}
	if !tag.Has(idx5) {
		c5 := getColumn[T5](&w.columns, idx5)
		c5.ensureLen(int(e.id) + 1)
		c5.reset(int(e.id))
	}
	if !tag.Has(idx6) {
		c6 := getColumn[T6](&w.columns, idx6)
		c6.ensureLen(int(e.id) + 1)
		c6.reset(int(e.id))
	}
	if !tag.Has(idx7) {
		c7 := getColumn[T7](&w.columns, idx7)
		c7.ensureLen(int(e.id) + 1)
		c7.reset(int(e.id))
	}
	return ComponentHandles7[T1, T2, T3, T4, T5, T6, T7]{
		H1: ComponentHandle[T1]{id: e.id, generation: e.generation, typeIndex: idx1, world: w},
		H2: ComponentHandle[T2]{id: e.id, generation: e.generation, typeIndex: idx2, world: w},
		H3: ComponentHandle[T3]{id: e.id, generation: e.generation, typeIndex: idx3, world: w},
		H4: ComponentHandle[T4]{id: e.id, generation: e.generation, typeIndex: idx4, world: w},
		H5: ComponentHandle[T5]{id: e.id, generation: e.generation, typeIndex: idx5, world: w},
		H6: ComponentHandle[T6]{id: e.id, generation: e.generation, typeIndex: idx6, world: w},
		H7: ComponentHandle[T7]{id: e.id, generation: e.generation, typeIndex: idx7, world: w},
	}, nil
}

// RemoveComponents7 drops any of T1, T2, T3, T4, T5, T6, T7 that e currently carries, in
// a single archetype transition.
func RemoveComponents7[T1, T2, T3, T4, T5, T6, T7 any](w *World, e EntityHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(e); err != nil {
		return err
	}
	if e.id == 0 {
		return InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	if idx1, ok := tryIndex[T1](); ok {
		newTag.Clear(idx1)
	}
	if idx2, ok := tryIndex[T2](); ok {
		newTag.Clear(idx2)
	}
	if idx3, ok := tryIndex[T3](); ok {
		newTag.Clear(idx3)
	}
	if idx4, ok := tryIndex[T4](); ok {
		newTag.Clear(idx4)
	}
	if idx5, ok := tryIndex[T5](); ok {
		newTag.Clear(idx5)
	}
	if idx6, ok := tryIndex[T6](); ok {
		newTag.Clear(idx6)
	}
	if idx7, ok := tryIndex[T7](); ok {
		newTag.Clear(idx7)
	}
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	return nil
}

// ComponentHandles8 bundles one ComponentHandle per requested type, in
// order, as returned by AddComponents8.
type ComponentHandles8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	H1 ComponentHandle[T1]
	H2 ComponentHandle[T2]
	H3 ComponentHandle[T3]
	H4 ComponentHandle[T4]
	H5 ComponentHandle[T5]
	H6 ComponentHandle[T6]
	H7 ComponentHandle[T7]
	H8 ComponentHandle[T8]
}

// AddComponents8 adds all of T1, T2, T3, T4, T5, T6, T7, T8 to e in a single archetype
// transition, preserving the data of any type e already carried.
func AddComponents8[T1, T2, T3, T4, T5, T6, T7, T8 any](w *World, e EntityHandle) (ComponentHandles8[T1, T2, T3, T4, T5, T6, T7, T8], error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var zero ComponentHandles8[T1, T2, T3, T4, T5, T6, T7, T8]
	if err := w.checkEntity(e); err != nil {
		return zero, err
	}
	if e.id == 0 {
		return zero, InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	idx1, err := getOrRegister[T1]()
	if err != nil {
		return zero, err
	}
	idx2, err := getOrRegister[T2]()
	if err != nil {
		return zero, err
	}
	idx3, err := getOrRegister[T3]()
	if err != nil {
		return zero, err
	}
	idx4, err := getOrRegister[T4]()
	if err != nil {
		return zero, err
	}
	idx5, err := getOrRegister[T5]()
	if err != nil {
		return zero, err
	}
	idx6, err := getOrRegister[T6]()
	if err != nil {
		return zero, err
	}
	idx7, err := getOrRegister[T7]()
	if err != nil {
		return zero, err
	}
	idx8, err := getOrRegister[T8]()
	if err != nil {
		return zero, err
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	newTag.Set(idx1)
	newTag.Set(idx2)
	newTag.Set(idx3)
	newTag.Set(idx4)
	newTag.Set(idx5)
	newTag.Set(idx6)
	newTag.Set(idx7)
	newTag.Set(idx8)
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	w.growToFit(e.id)
	if !tag.Has(idx1) {
		c1 := getColumn[T1](&w.columns, idx1)
		c1.ensureLen(int(e.id) + 1)
		c1.reset(int(e.id))
	}
	if !tag.Has(idx2) {
		c2 := getColumn[T2](&w.columns, idx2)
		c2.ensureLen(int(e.id) + 1)
		c2.reset(int(e.id))
	}
	if !tag.Has(idx3) {
		c3 := getColumn[T3](&w.columns, idx3)
		c3.ensureLen(int(e.id) + 1)
		c3.reset(int(e.id))
	}
	if !tag.Has(idx4) {
		c4 := getColumn[T4](&w.columns, idx4)
		c4.ensureLen(int(e.id) + 1)
		c4.reset(int(e.id))
	}
	if !tag.Has(idx5) {
		c5 := getColumn[T5](&w.columns, idx5)
		c5.ensureLen(int(e.id) + 1)
		c5.reset(int(e.id))
	}
	if !tag.Has(idx6) {
		c6 := getColumn[T6](&w.columns, idx6)
		c6.ensureLen(int(e.id) + 1)
		c6.reset(int(e.id))
	}
	if !tag.Has(idx7) {
		c7 := getColumn[T7](&w.columns, idx7)
		c7.ensureLen(int(e.id) + 1)
		c7.reset(int(e.id))
	}
	if !tag.Has(idx8) {
		c8 := getColumn[T8](&w.columns, idx8)
		c8.ensureLen(int(e.id) + 1)
		c8.reset(int(e.id))
	}
	return ComponentHandles8[T1, T2, T3, T4, T5, T6, T7, T8]{
		H1: ComponentHandle[T1]{id: e.id, generation: e.generation, typeIndex: idx1, world: w},
		H2: ComponentHandle[T2]{id: e.id, generation: e.generation, typeIndex: idx2, world: w},
		H3: ComponentHandle[T3]{id: e.id, generation: e.generation, typeIndex: idx3, world: w},
		H4: ComponentHandle[T4]{id: e.id, generation: e.generation, typeIndex: idx4, world: w},
		H5: ComponentHandle[T5]{id: e.id, generation: e.generation, typeIndex: idx5, world: w},
		H6: ComponentHandle[T6]{id: e.id, generation: e.generation, typeIndex: idx6, world: w},
		H7: ComponentHandle[T7]{id: e.id, generation: e.generation, typeIndex: idx7, world: w},
		H8: ComponentHandle[T8]{id: e.id, generation: e.generation, typeIndex: idx8, world: w},
	}, nil
}

// RemoveComponents8 drops any of T1, T2, T3, T4, T5, T6, T7, T8 that e currently carries, in
// a single archetype transition.
func RemoveComponents8[T1, T2, T3, T4, T5, T6, T7, T8 any](w *World, e EntityHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(e); err != nil {
		return err
	}
	if e.id == 0 {
		return InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	if idx1, ok := tryIndex[T1](); ok {
		newTag.Clear(idx1)
	}
	if idx2, ok := tryIndex[T2](); ok {
		newTag.Clear(idx2)
	}
	if idx3, ok := tryIndex[T3](); ok {
		newTag.Clear(idx3)
	}
	if idx4, ok := tryIndex[T4](); ok {
		newTag.Clear(idx4)
	}
	if idx5, ok := tryIndex[T5](); ok {
		newTag.Clear(idx5)
	}
	if idx6, ok := tryIndex[T6](); ok {
		newTag.Clear(idx6)
	}
	if idx7, ok := tryIndex[T7](); ok {
		newTag.Clear(idx7)
	}
	if idx8, ok := tryIndex[T8](); ok {
		newTag.Clear(idx8)
	}
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	return nil
}

// ComponentHandles9 bundles one ComponentHandle per requested type, in
// order, as returned by AddComponents9.
type ComponentHandles9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	H1 ComponentHandle[T1]
	H2 ComponentHandle[T2]
	H3 ComponentHandle[T3]
	H4 ComponentHandle[T4]
	H5 ComponentHandle[T5]
	H6 ComponentHandle[T6]
	H7 ComponentHandle[T7]
	H8 ComponentHandle[T8]
	H9 ComponentHandle[T9]
}

// AddComponents9 adds all of T1, T2, T3, T4, T5, T6, T7, T8, T9 to e in a single archetype
// transition, preserving the data of any type e already carried.
func AddComponents9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](w *World, e EntityHandle) (ComponentHandles9[T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var zero ComponentHandles9[T1, T2, T3, T4, T5, T6, T7, T8, T9]
	if err := w.checkEntity(e); err != nil {
		return zero, err
	}
	if e.id == 0 {
		return zero, InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	idx1, err := getOrRegister[T1]()
	if err != nil {
		return zero, err
	}
	idx2, err := getOrRegister[T2]()
	if err != nil {
		return zero, err
	}
	idx3, err := getOrRegister[T3]()
	if err != nil {
		return zero, err
	}
	idx4, err := getOrRegister[T4]()
	if err != nil {
		return zero, err
	}
	idx5, err := getOrRegister[T5]()
	if err != nil {
		return zero, err
	}
	idx6, err := getOrRegister[T6]()
	if err != nil {
		return zero, err
	}
	idx7, err := getOrRegister[T7]()
	if err != nil {
		return zero, err
	}
	idx8, err := getOrRegister[T8]()
	if err != nil {
		return zero, err
	}
	idx9, err := getOrRegister[T9]()
	if err != nil {
		return zero, err
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	newTag.Set(idx1)
	newTag.Set(idx2)
	newTag.Set(idx3)
	newTag.Set(idx4)
	newTag.Set(idx5)
	newTag.Set(idx6)
	newTag.Set(idx7)
	newTag.Set(idx8)
	newTag.Set(idx9)
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	w.growToFit(e.id)
	if !tag.Has(idx1) {
		c1 := getColumn[T1](&w.columns, idx1)
		c1.ensureLen(int(e.id) + 1)
		c1.reset(int(e.id))
	}
	if !tag.Has(idx2) {
		c2 := getColumn[T2](&w.columns, idx2)
		c2.ensureLen(int(e.id) + 1)
		c2.reset(int(e.id))
	}
	if !tag.Has(idx3) {
		c3 := getColumn[T3](&w.columns, idx3)
		c3.ensureLen(int(e.id) + 1)
		c3.reset(int(e.id))
	}
	if !tag.Has(idx4) {
		c4 := getColumn[T4](&w.columns, idx4)
		c4.ensureLen(int(e.id) + 1)
		c4.reset(int(e.id))
	}
	if !tag.Has(idx5) {
		c5 := getColumn[T5](&w.columns, idx5)
		c5.ensureLen(int(e.id) + 1)
		c5.reset(int(e.id))
	}
	if !tag.Has(idx6) {
		c6 := getColumn[T6](&w.columns, idx6)
		c6.ensureLen(int(e.id) + 1)
		c6.reset(int(e.id))
	}
	if !tag.Has(idx7) {
		c7 := getColumn[T7](&w.columns, idx7)
		c7.ensureLen(int(e.id) + 1)
		c7.reset(int(e.id))
	}
	if !tag.Has(idx8) {
		c8 := getColumn[T8](&w.columns, idx8)
		c8.ensureLen(int(e.id) + 1)
		c8.reset(int(e.id))
	}
	if !tag.Has(idx9) {
		c9 := getColumn[T9](&w.columns, idx9)
		c9.ensureLen(int(e.id) + 1)
		c9.reset(int(e.id))
	}
	return ComponentHandles9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{
		H1: ComponentHandle[T1]{id: e.id, generation: e.generation, typeIndex: idx1, world: w},
		H2: ComponentHandle[T2]{id: e.id, generation: e.generation, typeIndex: idx2, world: w},
		H3: ComponentHandle[T3]{id: e.id, generation: e.generation, typeIndex: idx3, world: w},
		H4: ComponentHandle[T4]{id: e.id, generation: e.generation, typeIndex: idx4, world: w},
		H5: ComponentHandle[T5]{id: e.id, generation: e.generation, typeIndex: idx5, world: w},
		H6: ComponentHandle[T6]{id: e.id, generation: e.generation, typeIndex: idx6, world: w},
		H7: ComponentHandle[T7]{id: e.id, generation: e.generation, typeIndex: idx7, world: w},
		H8: ComponentHandle[T8]{id: e.id, generation: e.generation, typeIndex: idx8, world: w},
		H9: ComponentHandle[T9]{id: e.id, generation: e.generation, typeIndex: idx9, world: w},
	}, nil
}

// RemoveComponents9 drops any of T1, T2, T3, T4, T5, T6, T7, T8, T9 that e currently carries, in
// a single archetype transition.
func RemoveComponents9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](w *World, e EntityHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkEntity(e); err != nil {
		return err
	}
	if e.id == 0 {
		return InvalidSingletonError{Reason: "use singleton component functions for the reserved id"}
	}
	tag := w.directory.tag[e.id]
	newTag := tag
	if idx1, ok := tryIndex[T1](); ok {
		newTag.Clear(idx1)
	}
	if idx2, ok := tryIndex[T2](); ok {
		newTag.Clear(idx2)
	}
	if idx3, ok := tryIndex[T3](); ok {
		newTag.Clear(idx3)
	}
	if idx4, ok := tryIndex[T4](); ok {
		newTag.Clear(idx4)
	}
	if idx5, ok := tryIndex[T5](); ok {
		newTag.Clear(idx5)
	}
	if idx6, ok := tryIndex[T6](); ok {
		newTag.Clear(idx6)
	}
	if idx7, ok := tryIndex[T7](); ok {
		newTag.Clear(idx7)
	}
	if idx8, ok := tryIndex[T8](); ok {
		newTag.Clear(idx8)
	}
	if idx9, ok := tryIndex[T9](); ok {
		newTag.Clear(idx9)
	}
	if !newTag.Equal(tag) {
		w.transition(e.id, newTag)
	}
	return nil
}
