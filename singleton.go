package silo

import "github.com/TheBitDrifter/table"

// singletonStore is the storage for singleton components, every one of
// which is bound to the reserved entity id 0 (see World.checkEntity). A
// singleton needs exactly one row for the World's whole lifetime — the
// narrowest case of the shape warehouse's table package already builds
// per archetype: one schema, one table.Table, one entry. Unlike the
// general per-entity Column Store (column.go), which spec.md requires to
// be a single global array indexed directly by entity id across every
// archetype — a shape table.Table does not offer, since it is scoped to
// one archetype's rows and moves entries between tables via
// TransferEntries rather than addressing a row by a global id — the
// singleton case has no cross-archetype indexing requirement at all, so
// it gets a real table.Table the way warehouse's own
// FactoryNewComponent/newArchetype build one.
type singletonStore struct {
	schema     table.Schema
	entryIndex table.EntryIndex
	elements   []table.ElementType
	accessors  map[TypeIndex]any

	tbl table.Table
	row table.Entry
}

func newSingletonStore() *singletonStore {
	return &singletonStore{
		schema:     table.Factory.NewSchema(),
		entryIndex: table.Factory.NewEntryIndex(),
		accessors:  make(map[TypeIndex]any),
	}
}

// registerSingleton returns the table.Accessor[T] for idx, building it
// (and rebuilding the backing table.Table to include it) the first time a
// singleton of type T is installed. Callers must hold World.mu.
func registerSingleton[T any](ss *singletonStore, idx TypeIndex) table.Accessor[T] {
	if existing, ok := ss.accessors[idx]; ok {
		return existing.(table.Accessor[T])
	}
	elem := table.FactoryNewElementType[T]()
	accessor := table.FactoryNewAccessor[T](elem)
	ss.schema.Register(elem)
	ss.elements = append(ss.elements, elem)
	ss.accessors[idx] = accessor
	ss.rebuild()
	return accessor
}

// rebuild replaces the singleton table.Table with one carrying every
// registered singleton element type so far, the same
// NewTableBuilder().WithSchema().WithEntryIndex().WithElementTypes().
// Build() sequence warehouse's newArchetype uses. The first build
// allocates the table's one row; every later rebuild (one per newly
// installed singleton type) transfers that row into the new table via
// TransferEntries, the same operation warehouse's entity.go
// AddComponent uses when an entity's component set grows — so an
// already-installed singleton's value survives a later singleton type
// being added.
func (ss *singletonStore) rebuild() {
	tbl, err := table.NewTableBuilder().
		WithSchema(ss.schema).
		WithEntryIndex(ss.entryIndex).
		WithElementTypes(ss.elements...).
		Build()
	if err != nil {
		panic(err)
	}
	if ss.tbl == nil {
		entries, err := tbl.NewEntries(1)
		if err != nil {
			panic(err)
		}
		ss.tbl = tbl
		ss.row = entries[0]
		return
	}
	if err := ss.tbl.TransferEntries(tbl, ss.row.Index()); err != nil {
		panic(err)
	}
	ss.tbl = tbl
}

// singletonSlot returns the live pointer to type T's singleton slot,
// registering T if this is its first use.
func singletonSlot[T any](ss *singletonStore, idx TypeIndex) *T {
	accessor := registerSingleton[T](ss, idx)
	return accessor.Get(ss.row.Index(), ss.tbl)
}
