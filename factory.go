package silo

// factory implements the factory pattern the teacher's own factory.go
// uses for every constructor: an unexported type with one exported
// zero-value instance, so construction always reads as Factory.NewX(...).
type factory struct{}

// Factory is the global factory instance for constructing Worlds and
// standalone Queries.
var Factory factory

// NewWorld constructs a World sized by opts.InitialEntityCapacity (the
// zero value falls back to DefaultWorldOptions' capacity), with its own
// entity directory, component column store, singleton store, archetype
// partition, and scheduler.
func (factory) NewWorld(opts WorldOptions) *World {
	if opts.InitialEntityCapacity <= 0 {
		opts.InitialEntityCapacity = DefaultWorldOptions().InitialEntityCapacity
	}
	w := &World{
		options:       opts,
		directory:     newEntityDirectory(opts.InitialEntityCapacity),
		columns:       newColumnStore(),
		singletons:    newSingletonStore(),
		partition:     newPartition(),
		relationships: newRelationshipTable(),
	}
	w.scheduler = newScheduler(w)
	// The base (empty-tag) archetype always exists so the zero-component
	// entity CreateEntity produces has somewhere to live immediately.
	w.partition.getOrCreate(Tag{}, archetypeInitialCapacity)
	return w
}

// NewQuery creates a new, empty composable Query.
func (factory) NewQuery() Query {
	return newQuery()
}
