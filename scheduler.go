package silo

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// InitSystem runs once, in registration order, during World.Init. Init
// systems are not ordered by priority.
type InitSystem interface {
	Init(w *World) error
}

// EndSystem runs once, in registration order, during World.Dispose.
type EndSystem interface {
	End(w *World) error
}

// ExecuteSystem runs every tick its frequency counter fires, grouped into
// the priority bucket Priority() reports. Frequency must be positive;
// Priority may be any signed int, lower running first — spec.md §4.10.
type ExecuteSystem interface {
	Execute(w *World) error
	Frequency() int
	Priority() int
}

// registeredSystem is the scheduler's bookkeeping record for one system
// value: which of InitSystem/ExecuteSystem/EndSystem it implements, plus
// its per-system frequency counter.
type registeredSystem struct {
	typeKey  reflect.Type
	initImpl InitSystem
	execImpl ExecuteSystem
	endImpl  EndSystem
	counter  uint64
}

// scheduler holds the priority buckets and lifecycle lists AddSystem/
// RemoveSystem mutate, and drives Init/Update/Dispose over them. Its own mu
// is distinct from World.mu: registering a system never needs the
// structural lock, only the scheduler's own bookkeeping lock.
type scheduler struct {
	world *World

	mu sync.Mutex

	initSystems []registeredSystem
	endSystems  []registeredSystem
	buckets     map[int][]registeredSystem

	pending schedulerOperationQueue
}

func newScheduler(w *World) *scheduler {
	return &scheduler{world: w, buckets: make(map[int][]registeredSystem)}
}

func (s *scheduler) enqueue(op schedulerOperation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.enqueue(op)
}

func (s *scheduler) install(rs registeredSystem) {
	if rs.initImpl != nil {
		s.initSystems = append(s.initSystems, rs)
	}
	if rs.execImpl != nil {
		p := rs.execImpl.Priority()
		s.buckets[p] = append(s.buckets[p], rs)
	}
	if rs.endImpl != nil {
		s.endSystems = append(s.endSystems, rs)
	}
}

func (s *scheduler) uninstall(typeKey any) {
	s.initSystems = filterSystemsOut(s.initSystems, typeKey)
	s.endSystems = filterSystemsOut(s.endSystems, typeKey)
	for p, bucket := range s.buckets {
		s.buckets[p] = filterSystemsOut(bucket, typeKey)
	}
}

func filterSystemsOut(systems []registeredSystem, typeKey any) []registeredSystem {
	out := systems[:0]
	for _, rs := range systems {
		if rs.typeKey != typeKey {
			out = append(out, rs)
		}
	}
	return out
}

func (s *scheduler) sortedPriorities() []int {
	ps := make([]int, 0, len(s.buckets))
	for p := range s.buckets {
		ps = append(ps, p)
	}
	sort.Ints(ps)
	return ps
}

// buildRegisteredSystem inspects sys for which of InitSystem/ExecuteSystem/
// EndSystem it implements. A system implementing none is a programmer
// error; an ExecuteSystem with a non-positive Frequency is too.
func buildRegisteredSystem[S any](sys S) (registeredSystem, error) {
	rs := registeredSystem{typeKey: reflect.TypeFor[S]()}
	boxed := any(sys)
	init, hasInit := boxed.(InitSystem)
	exec, hasExec := boxed.(ExecuteSystem)
	end, hasEnd := boxed.(EndSystem)
	if !hasInit && !hasExec && !hasEnd {
		return registeredSystem{}, LifecycleMisuseError{
			Reason: fmt.Sprintf("%T implements none of InitSystem, ExecuteSystem, EndSystem", sys),
		}
	}
	if hasExec && exec.Frequency() <= 0 {
		return registeredSystem{}, LifecycleMisuseError{
			Reason: fmt.Sprintf("%T: Execute frequency must be positive, got %d", sys, exec.Frequency()),
		}
	}
	if hasInit {
		rs.initImpl = init
	}
	if hasExec {
		rs.execImpl = exec
	}
	if hasEnd {
		rs.endImpl = end
	}
	return rs, nil
}

// AddSystem registers sys's Init/Execute/End capabilities. The change is
// queued and takes effect at the next bucket boundary (spec.md §4.10), so
// calling AddSystem from inside a running system never perturbs the bucket
// currently executing.
func AddSystem[S any](w *World, sys S) error {
	rs, err := buildRegisteredSystem(sys)
	if err != nil {
		return err
	}
	w.scheduler.enqueue(addSystemOperation{sys: rs})
	return nil
}

// RemoveSystem unregisters every capability previously registered for type
// S, queued for the next bucket boundary.
func RemoveSystem[S any](w *World) {
	w.scheduler.enqueue(removeSystemOperation{typeKey: reflect.TypeFor[S]()})
}

// Init runs every registered InitSystem in registration order (the order
// AddSystem was called); no Priority() is consulted. It must be called
// exactly once before the first Update.
func (w *World) Init() error {
	w.mu.Lock()
	if w.initialized {
		w.mu.Unlock()
		return LifecycleMisuseError{Reason: "Init called more than once"}
	}
	w.initialized = true
	w.mu.Unlock()

	s := w.scheduler
	s.mu.Lock()
	s.pending.processAll(s)
	initSystems := append([]registeredSystem(nil), s.initSystems...)
	s.mu.Unlock()

	for i := range initSystems {
		if err := initSystems[i].initImpl.Init(w); err != nil {
			source := fmt.Sprintf("%v", initSystems[i].typeKey)
			w.reportError(source, UserSystemError{Source: source, Err: err})
		}
	}
	return nil
}

// Update runs one tick: every priority bucket in ascending order, each
// ExecuteSystem whose frequency counter fires this tick, bucket-sequential
// or bucket-concurrent per WorldOptions.Parallel. Pending add/remove-system
// operations are applied at every bucket boundary, including before the
// first bucket and after the last.
func (w *World) Update() error {
	w.mu.Lock()
	if !w.initialized {
		w.mu.Unlock()
		return LifecycleMisuseError{Reason: "Update called before Init"}
	}
	if w.disposed {
		w.mu.Unlock()
		return LifecycleMisuseError{Reason: "Update called on a disposed world"}
	}
	w.mu.Unlock()

	s := w.scheduler
	s.mu.Lock()
	s.pending.processAll(s)
	priorities := s.sortedPriorities()
	s.mu.Unlock()

	for _, p := range priorities {
		s.mu.Lock()
		bucket := s.buckets[p]
		s.mu.Unlock()

		s.runBucket(bucket)

		s.mu.Lock()
		s.pending.processAll(s)
		s.mu.Unlock()
	}
	return nil
}

// runBucket runs every system in bucket once, in sequence or concurrently
// per options.Parallel/Parallelism. A system's error is reported to the
// error sink and never aborts siblings or the tick — every goroutine
// returns nil to the errgroup regardless of what its system returned, so
// Wait never cancels the others (spec.md §4.10's cancellation contract).
func (s *scheduler) runBucket(bucket []registeredSystem) {
	w := s.world
	run := func(i int) {
		rs := &bucket[i]
		if rs.counter%uint64(rs.execImpl.Frequency()) == 0 {
			if err := rs.execImpl.Execute(w); err != nil {
				source := fmt.Sprintf("%v", rs.typeKey)
				w.reportError(source, UserSystemError{Source: source, Err: err})
			}
		}
		rs.counter++
	}

	if len(bucket) <= 1 || !w.options.Parallel {
		for i := range bucket {
			run(i)
		}
		return
	}

	var g errgroup.Group
	if w.options.Parallelism > 0 {
		g.SetLimit(w.options.Parallelism)
	}
	for i := range bucket {
		i := i
		g.Go(func() error {
			run(i)
			return nil
		})
	}
	_ = g.Wait()
}

// Dispose runs every registered EndSystem, in registration order, and
// marks the World unusable for any further CreateEntity or Update call.
func (w *World) Dispose() error {
	w.mu.Lock()
	if w.disposed {
		w.mu.Unlock()
		return LifecycleMisuseError{Reason: "Dispose called more than once"}
	}
	w.disposed = true
	w.mu.Unlock()

	s := w.scheduler
	s.mu.Lock()
	endSystems := append([]registeredSystem(nil), s.endSystems...)
	s.mu.Unlock()

	for i := range endSystems {
		if err := endSystems[i].endImpl.End(w); err != nil {
			source := fmt.Sprintf("%v", endSystems[i].typeKey)
			w.reportError(source, UserSystemError{Source: source, Err: err})
		}
	}
	return nil
}
