/*
Package silo is an in-process, archetype-based Entity-Component-System
runtime core for latency-sensitive simulation and server workloads.

Silo stores components densely, one column per type, partitioned by
archetype so that a query over several component types touches only the
archetypes that actually carry them. Structural changes — creating or
destroying entities, adding or removing components — are immediate and
thread-safe, guarded by a single structural mutex; external references
(handles) remain valid across every structural change except the
destruction of their own entity, which they detect and report rather than
dereferencing stale memory.

Core Concepts:

  - Tag: a bitset over component-type indices, the signature of an
    archetype or a query.
  - Archetype: the set of entities sharing one Tag, stored as a tombstoned,
    append-only id list.
  - EntityHandle / ComponentHandle[T]: stable (id, generation) tokens that
    validate on every dereference.
  - Scheduler: priority-ordered, frequency-gated execution of systems over
    queries.

Basic Usage:

	world := silo.Factory.NewWorld(silo.DefaultWorldOptions())

	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }

	entity, _ := world.CreateEntity()
	silo.AddComponent[Position](world, entity)
	silo.AddComponent[Velocity](world, entity)

	for entity, pair := range silo.GroupOf2[Position, Velocity](world) {
		pair.C1.X += pair.C2.X
		pair.C1.Y += pair.C2.Y
		_ = entity
	}

Silo is a standalone library: user component definitions, user system
implementations, process-level initialization and logging are all external
collaborators it never reaches into.
*/
package silo
