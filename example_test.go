package silo_test

import (
	"fmt"

	"github.com/quarrystack/silo"
)

// Position and Velocity are simple components for a minimal movement
// simulation.
type Position struct{ X, Y float64 }
type Velocity struct{ X, Y float64 }

// Example_basic shows entity/component creation and a two-component query
// driving a handful of entities forward one step.
func Example_basic() {
	world := silo.Factory.NewWorld(silo.DefaultWorldOptions())

	for i := 0; i < 3; i++ {
		e, _ := world.CreateEntity()
		handles, _ := silo.AddComponents2[Position, Velocity](world, e)
		pos, _ := handles.H1.Get()
		vel, _ := handles.H2.Get()
		pos.X, pos.Y = float64(i), 0
		vel.X, vel.Y = 1, 0
	}

	for e := range world.AllEntities() {
		_ = e
	}

	for _, bundle := range silo.GroupOf2[Position, Velocity](world) {
		bundle.C1.X += bundle.C2.X
		bundle.C1.Y += bundle.C2.Y
	}

	total := 0.0
	for _, bundle := range silo.GroupOf2[Position, Velocity](world) {
		total += bundle.C1.X
	}
	fmt.Println(total)
	// Output: 6
}

// MovementSystem is a priority-0, every-tick system that advances every
// Position/Velocity pair once.
type MovementSystem struct{}

func (MovementSystem) Execute(w *silo.World) error {
	for _, bundle := range silo.GroupOf2[Position, Velocity](w) {
		bundle.C1.X += bundle.C2.X
	}
	return nil
}
func (MovementSystem) Frequency() int { return 1 }
func (MovementSystem) Priority() int  { return 0 }

// Example_scheduler shows a single system driven through Init/Update/
// Dispose, ticking a Position forward three times.
func Example_scheduler() {
	world := silo.Factory.NewWorld(silo.DefaultWorldOptions())
	e, _ := world.CreateEntity()
	handles, _ := silo.AddComponents2[Position, Velocity](world, e)
	pos, _ := handles.H1.Get()
	vel, _ := handles.H2.Get()
	pos.X = 0
	vel.X = 2

	silo.AddSystem(world, MovementSystem{})
	world.Init()
	for i := 0; i < 3; i++ {
		world.Update()
	}
	world.Dispose()

	final, _ := silo.GetComponent[Position](world, e)
	v, _ := final.Get()
	fmt.Println(v.X)
	// Output: 6
}
