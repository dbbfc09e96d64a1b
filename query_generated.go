package silo

import "iter"

// GroupOfK / BundleK for K = 1..9, generated by hand in the small-macro
// style spec.md §9 calls for. Each GroupOfK resolves its K component types
// to TypeIndex values, ORs them into one query Tag, and walks
// matching_archetypes (spec.md §4.9 group_of<T1..Tk>):
//
//   - if any type was never registered, the sequence yields nothing
//   - archetypes are visited in partition creation order
//   - each archetype's entity span is refetched on every inner step, so an
//     archetype growth caused by a sibling CreateEntity mid-iteration is
//     tolerated rather than read through a stale slice header
//   - tombstoned slots (-1) are skipped
//
// The yielded value pairs the entity with a BundleK of live pointers into
// the backing columns, not copies — mutating through them mutates storage
// directly, matching spec.md's "mutable references into the columns"
// semantics for iteration.


// GroupOf1 iterates every entity carrying a component of type T1.
func GroupOf1[T1 any](w *World) iter.Seq2[EntityHandle, *T1] {
	return func(yield func(EntityHandle, *T1) bool) {
		w.mu.Lock()
		idx1, ok := tryIndex[T1]()
		if !ok {
			w.mu.Unlock()
			return
		}
		query := NewTag(idx1)
		w.mu.Unlock()
		archs := w.partition.matching(query, &w.mu)
		w.mu.Lock()
		col := getColumn[T1](&w.columns, idx1)
		w.mu.Unlock()
		for _, a := range archs {
			i := 0
			for {
				w.mu.Lock()
				span := a.EntitySpan()
				if i >= len(span) {
					w.mu.Unlock()
					break
				}
				id := span[i]
				i++
				if id == -1 {
					w.mu.Unlock()
					continue
				}
				gen := w.directory.generation[id]
				ptr := col.at(int(id))
				w.mu.Unlock()
				if !yield(EntityHandle{id: uint32(id), generation: gen}, ptr) {
					return
				}
			}
		}
	}
}

// Bundle2 carries one live pointer per component type yielded by GroupOf2.
type Bundle2[T1, T2 any] struct {
	C1 *T1
	C2 *T2
}

// GroupOf2 iterates every entity carrying all of T1, T2.
func GroupOf2[T1, T2 any](w *World) iter.Seq2[EntityHandle, Bundle2[T1, T2]] {
	return func(yield func(EntityHandle, Bundle2[T1, T2]) bool) {
		w.mu.Lock()
		idx1, ok1 := tryIndex[T1]()
		idx2, ok2 := tryIndex[T2]()
		if !ok1 || !ok2 {
			w.mu.Unlock()
			return
		}
		query := NewTag(idx1, idx2)
		w.mu.Unlock()
		archs := w.partition.matching(query, &w.mu)
		w.mu.Lock()
		col1 := getColumn[T1](&w.columns, idx1)
		col2 := getColumn[T2](&w.columns, idx2)
		w.mu.Unlock()
		for _, a := range archs {
			i := 0
			for {
				w.mu.Lock()
				span := a.EntitySpan()
				if i >= len(span) {
					w.mu.Unlock()
					break
				}
				id := span[i]
				i++
				if id == -1 {
					w.mu.Unlock()
					continue
				}
				gen := w.directory.generation[id]
				bundle := Bundle2[T1, T2]{C1: col1.at(int(id)), C2: col2.at(int(id))}
				w.mu.Unlock()
				if !yield(EntityHandle{id: uint32(id), generation: gen}, bundle) {
					return
				}
			}
		}
	}
}

// Bundle3 carries one live pointer per component type yielded by GroupOf3.
type Bundle3[T1, T2, T3 any] struct {
	C1 *T1
	C2 *T2
	C3 *T3
}

// GroupOf3 iterates every entity carrying all of T1, T2, T3.
func GroupOf3[T1, T2, T3 any](w *World) iter.Seq2[EntityHandle, Bundle3[T1, T2, T3]] {
	return func(yield func(EntityHandle, Bundle3[T1, T2, T3]) bool) {
		w.mu.Lock()
		idx1, ok1 := tryIndex[T1]()
		idx2, ok2 := tryIndex[T2]()
		idx3, ok3 := tryIndex[T3]()
		if !ok1 || !ok2 || !ok3 {
			w.mu.Unlock()
			return
		}
		query := NewTag(idx1, idx2, idx3)
		w.mu.Unlock()
		archs := w.partition.matching(query, &w.mu)
		w.mu.Lock()
		col1 := getColumn[T1](&w.columns, idx1)
		col2 := getColumn[T2](&w.columns, idx2)
		col3 := getColumn[T3](&w.columns, idx3)
		w.mu.Unlock()
		for _, a := range archs {
			i := 0
			for {
				w.mu.Lock()
				span := a.EntitySpan()
				if i >= len(span) {
					w.mu.Unlock()
					break
				}
				id := span[i]
				i++
				if id == -1 {
					w.mu.Unlock()
					continue
				}
				gen := w.directory.generation[id]
				bundle := Bundle3[T1, T2, T3]{C1: col1.at(int(id)), C2: col2.at(int(id)), C3: col3.at(int(id))}
				w.mu.Unlock()
				if !yield(EntityHandle{id: uint32(id), generation: gen}, bundle) {
					return
				}
			}
		}
	}
}

// Bundle4 carries one live pointer per component type yielded by GroupOf4.
type Bundle4[T1, T2, T3, T4 any] struct {
	C1 *T1
	C2 *T2
	C3 *T3
	C4 *T4
}

// GroupOf4 iterates every entity carrying all of T1, T2, T3, T4.
func GroupOf4[T1, T2, T3, T4 any](w *World) iter.Seq2[EntityHandle, Bundle4[T1, T2, T3, T4]] {
	return func(yield func(EntityHandle, Bundle4[T1, T2, T3, T4]) bool) {
		w.mu.Lock()
		idx1, ok1 := tryIndex[T1]()
		idx2, ok2 := tryIndex[T2]()
		idx3, ok3 := tryIndex[T3]()
		idx4, ok4 := tryIndex[T4]()
		if !ok1 || !ok2 || !ok3 || !ok4 {
			w.mu.Unlock()
			return
		}
		query := NewTag(idx1, idx2, idx3, idx4)
		w.mu.Unlock()
		archs := w.partition.matching(query, &w.mu)
		w.mu.Lock()
		col1 := getColumn[T1](&w.columns, idx1)
		col2 := getColumn[T2](&w.columns, idx2)
		col3 := getColumn[T3](&w.columns, idx3)
		col4 := getColumn[T4](&w.columns, idx4)
		w.mu.Unlock()
		for _, a := range archs {
			i := 0
			for {
				w.mu.Lock()
				span := a.EntitySpan()
				if i >= len(span) {
					w.mu.Unlock()
					break
				}
				id := span[i]
				i++
				if id == -1 {
					w.mu.Unlock()
					continue
				}
				gen := w.directory.generation[id]
				bundle := Bundle4[T1, T2, T3, T4]{C1: col1.at(int(id)), C2: col2.at(int(id)), C3: col3.at(int(id)), C4: col4.at(int(id))}
				w.mu.Unlock()
				if !yield(EntityHandle{id: uint32(id), generation: gen}, bundle) {
					return
				}
			}
		}
	}
}

// Bundle5 carries one live pointer per component type yielded by GroupOf5.
type Bundle5[T1, T2, T3, T4, T5 any] struct {
	C1 *T1
	C2 *T2
	C3 *T3
	C4 *T4
	C5 *T5
}

// GroupOf5 iterates every entity carrying all of T1, T2, T3, T4, T5.
func GroupOf5[T1, T2, T3, T4, T5 any](w *World) iter.Seq2[EntityHandle, Bundle5[T1, T2, T3, T4, T5]] {
	return func(yield func(EntityHandle, Bundle5[T1, T2, T3, T4, T5]) bool) {
		w.mu.Lock()
		idx1, ok1 := tryIndex[T1]()
		idx2, ok2 := tryIndex[T2]()
		idx3, ok3 := tryIndex[T3]()
		idx4, ok4 := tryIndex[T4]()
		idx5, ok5 := tryIndex[T5]()
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
			w.mu.Unlock()
			return
		}
		query := NewTag(idx1, idx2, idx3, idx4, idx5)
		w.mu.Unlock()
		archs := w.partition.matching(query, &w.mu)
		w.mu.Lock()
		col1 := getColumn[T1](&w.columns, idx1)
		col2 := getColumn[T2](&w.columns, idx2)
		col3 := getColumn[T3](&w.columns, idx3)
		col4 := getColumn[T4](&w.columns, idx4)
		col5 := getColumn[T5](&w.columns, idx5)
		w.mu.Unlock()
		for _, a := range archs {
			i := 0
			for {
				w.mu.Lock()
				span := a.EntitySpan()
				if i >= len(span) {
					w.mu.Unlock()
					break
				}
				id := span[i]
				i++
				if id == -1 {
					w.mu.Unlock()
					continue
				}
				gen := w.directory.generation[id]
				bundle := Bundle5[T1, T2, T3, T4, T5]{C1: col1.at(int(id)), C2: col2.at(int(id)), C3: col3.at(int(id)), C4: col4.at(int(id)), C5: col5.at(int(id))}
				w.mu.Unlock()
				if !yield(EntityHandle{id: uint32(id), generation: gen}, bundle) {
					return
				}
			}
		}
	}
}

// Bundle6 carries one live pointer per component type yielded by GroupOf6.
type Bundle6[T1, T2, T3, T4, T5, T6 any] struct {
	C1 *T1
	C2 *T2
	C3 *T3
	C4 *T4
	C5 *T5
	C6 *T6
}

// GroupOf6 iterates every entity carrying all of T1, T2, T3, T4, T5, T6.
func GroupOf6[T1, T2, T3, T4, T5, T6 any](w *World) iter.Seq2[EntityHandle, Bundle6[T1, T2, T3, T4, T5, T6]] {
	return func(yield func(EntityHandle, Bundle6[T1, T2, T3, T4, T5, T6]) bool) {
		w.mu.Lock()
		idx1, ok1 := tryIndex[T1]()
		idx2, ok2 := tryIndex[T2]()
		idx3, ok3 := tryIndex[T3]()
		idx4, ok4 := tryIndex[T4]()
		idx5, ok5 := tryIndex[T5]()
		idx6, ok6 := tryIndex[T6]()
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
			w.mu.Unlock()
			return
		}
		query := NewTag(idx1, idx2, idx3, idx4, idx5, idx6)
		w.mu.Unlock()
		archs := w.partition.matching(query, &w.mu)
		w.mu.Lock()
		col1 := getColumn[T1](&w.columns, idx1)
		col2 := getColumn[T2](&w.columns, idx2)
		col3 := getColumn[T3](&w.columns, idx3)
		col4 := getColumn[T4](&w.columns, idx4)
		col5 := getColumn[T5](&w.columns, idx5)
		col6 := getColumn[T6](&w.columns, idx6)
		w.mu.Unlock()
		for _, a := range archs {
			i := 0
			for {
				w.mu.Lock()
				span := a.EntitySpan()
				if i >= len(span) {
					w.mu.Unlock()
					break
				}
				id := span[i]
				i++
				if id == -1 {
					w.mu.Unlock()
					continue
				}
				gen := w.directory.generation[id]
				bundle := Bundle6[T1, T2, T3, T4, T5, T6]{C1: col1.at(int(id)), C2: col2.at(int(id)), C3: col3.at(int(id)), C4: col4.at(int(id)), C5: col5.at(int(id)), C6: col6.at(int(id))}
				w.mu.Unlock()
				if !yield(EntityHandle{id: uint32(id), generation: gen}, bundle) {
					return
				}
			}
		}
	}
}

// Bundle7 carries one live pointer per component type yielded by GroupOf7.
type Bundle7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	C1 *T1
	C2 *T2
	C3 *T3
	C4 *T4
	C5 *T5
	C6 *T6
	C7 *T7
}

// GroupOf7 iterates every entity carrying all of T1, T2, T3, T4, T5, T6, T7.
func GroupOf7[T1, T2, T3, T4, T5, T6, T7 any](w *World) iter.Seq2[EntityHandle, Bundle7[T1, T2, T3, T4, T5, T6, T7]] {
	return func(yield func(EntityHandle, Bundle7[T1, T2, T3, T4, T5, T6, T7]) bool) {
		w.mu.Lock()
		idx1, ok1 := tryIndex[T1]()
		idx2, ok2 := tryIndex[T2]()
		idx3, ok3 := tryIndex[T3]()
		idx4, ok4 := tryIndex[T4]()
		idx5, ok5 := tryIndex[T5]()
		idx6, ok6 := tryIndex[T6]()
		idx7, ok7 := tryIndex[T7]()
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 {
			w.mu.Unlock()
			return
		}
		query := NewTag(idx1, idx2, idx3, idx4, idx5, idx6, idx7)
		w.mu.Unlock()
		archs := w.partition.matching(query, &w.mu)
		w.mu.Lock()
		col1 := getColumn[T1](&w.columns, idx1)
		col2 := getColumn[T2](&w.columns, idx2)
		col3 := getColumn[T3](&w.columns, idx3)
		col4 := getColumn[T4](&w.columns, idx4)
		col5 := getColumn[T5](&w.columns, idx5)
		col6 := getColumn[T6](&w.columns, idx6)
		col7 := getColumn[T7](&w.columns, idx7)
		w.mu.Unlock()
		for _, a := range archs {
			i := 0
			for {
				w.mu.Lock()
				span := a.EntitySpan()
				if i >= len(span) {
					w.mu.Unlock()
					break
				}
				id := span[i]
				i++
				if id == -1 {
					w.mu.Unlock()
					continue
				}
				gen := w.directory.generation[id]
				bundle := Bundle7[T1, T2, T3, T4, T5, T6, T7]{C1: col1.at(int(id)), C2: col2.at(int(id)), C3: col3.at(int(id)), C4: col4.at(int(id)), C5: col5.at(int(id)), C6: col6.at(int(id)), C7: col7.at(int(id))}
				w.mu.Unlock()
				if !yield(EntityHandle{id: uint32(id), generation: gen}, bundle) {
					return
				}
			}
		}
	}
}

// Bundle8 carries one live pointer per component type yielded by GroupOf8.
type Bundle8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	C1 *T1
	C2 *T2
	C3 *T3
	C4 *T4
	C5 *T5
	C6 *T6
	C7 *T7
	C8 *T8
}

// GroupOf8 iterates every entity carrying all of T1, T2, T3, T4, T5, T6, T7, T8.
func GroupOf8[T1, T2, T3, T4, T5, T6, T7, T8 any](w *World) iter.Seq2[EntityHandle, Bundle8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	return func(yield func(EntityHandle, Bundle8[T1, T2, T3, T4, T5, T6, T7, T8]) bool) {
		w.mu.Lock()
		idx1, ok1 := tryIndex[T1]()
		idx2, ok2 := tryIndex[T2]()
		idx3, ok3 := tryIndex[T3]()
		idx4, ok4 := tryIndex[T4]()
		idx5, ok5 := tryIndex[T5]()
		idx6, ok6 := tryIndex[T6]()
		idx7, ok7 := tryIndex[T7]()
		idx8, ok8 := tryIndex[T8]()
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 || !ok8 {
			w.mu.Unlock()
			return
		}
		query := NewTag(idx1, idx2, idx3, idx4, idx5, idx6, idx7, idx8)
		w.mu.Unlock()
		archs := w.partition.matching(query, &w.mu)
		w.mu.Lock()
		col1 := getColumn[T1](&w.columns, idx1)
		col2 := getColumn[T2](&w.columns, idx2)
		col3 := getColumn[T3](&w.columns, idx3)
		col4 := getColumn[T4](&w.columns, idx4)
		col5 := getColumn[T5](&w.columns, idx5)
		col6 := getColumn[T6](&w.columns, idx6)
		col7 := getColumn[T7](&w.columns, idx7)
		col8 := getColumn[T8](&w.columns, idx8)
		w.mu.Unlock()
		for _, a := range archs {
			i := 0
			for {
				w.mu.Lock()
				span := a.EntitySpan()
				if i >= len(span) {
					w.mu.Unlock()
					break
				}
				id := span[i]
				i++
				if id == -1 {
					w.mu.Unlock()
					continue
				}
				gen := w.directory.generation[id]
				bundle := Bundle8[T1, T2, T3, T4, T5, T6, T7, T8]{C1: col1.at(int(id)), C2: col2.at(int(id)), C3: col3.at(int(id)), C4: col4.at(int(id)), C5: col5.at(int(id)), C6: col6.at(int(id)), C7: col7.at(int(id)), C8: col8.at(int(id))}
				w.mu.Unlock()
				if !yield(EntityHandle{id: uint32(id), generation: gen}, bundle) {
					return
				}
			}
		}
	}
}

// Bundle9 carries one live pointer per component type yielded by GroupOf9.
type Bundle9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	C1 *T1
	C2 *T2
	C3 *T3
	C4 *T4
	C5 *T5
	C6 *T6
	C7 *T7
	C8 *T8
	C9 *T9
}

// GroupOf9 iterates every entity carrying all of T1, T2, T3, T4, T5, T6, T7, T8, T9.
func GroupOf9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](w *World) iter.Seq2[EntityHandle, Bundle9[T1, T2, T3, T4, T5, T6, T7, T8, T9]] {
	return func(yield func(EntityHandle, Bundle9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) bool) {
		w.mu.Lock()
		idx1, ok1 := tryIndex[T1]()
		idx2, ok2 := tryIndex[T2]()
		idx3, ok3 := tryIndex[T3]()
		idx4, ok4 := tryIndex[T4]()
		idx5, ok5 := tryIndex[T5]()
		idx6, ok6 := tryIndex[T6]()
		idx7, ok7 := tryIndex[T7]()
		idx8, ok8 := tryIndex[T8]()
		idx9, ok9 := tryIndex[T9]()
		if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 || !ok8 || !ok9 {
			w.mu.Unlock()
			return
		}
		query := NewTag(idx1, idx2, idx3, idx4, idx5, idx6, idx7, idx8, idx9)
		w.mu.Unlock()
		archs := w.partition.matching(query, &w.mu)
		w.mu.Lock()
		col1 := getColumn[T1](&w.columns, idx1)
		col2 := getColumn[T2](&w.columns, idx2)
		col3 := getColumn[T3](&w.columns, idx3)
		col4 := getColumn[T4](&w.columns, idx4)
		col5 := getColumn[T5](&w.columns, idx5)
		col6 := getColumn[T6](&w.columns, idx6)
		col7 := getColumn[T7](&w.columns, idx7)
		col8 := getColumn[T8](&w.columns, idx8)
		col9 := getColumn[T9](&w.columns, idx9)
		w.mu.Unlock()
		for _, a := range archs {
			i := 0
			for {
				w.mu.Lock()
				span := a.EntitySpan()
				if i >= len(span) {
					w.mu.Unlock()
					break
				}
				id := span[i]
				i++
				if id == -1 {
					w.mu.Unlock()
					continue
				}
				gen := w.directory.generation[id]
				bundle := Bundle9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{C1: col1.at(int(id)), C2: col2.at(int(id)), C3: col3.at(int(id)), C4: col4.at(int(id)), C5: col5.at(int(id)), C6: col6.at(int(id)), C7: col7.at(int(id)), C8: col8.at(int(id)), C9: col9.at(int(id))}
				w.mu.Unlock()
				if !yield(EntityHandle{id: uint32(id), generation: gen}, bundle) {
					return
				}
			}
		}
	}
}
