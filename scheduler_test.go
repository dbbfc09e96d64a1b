package silo

import (
	"errors"
	"testing"
)

type orderTrackingSystem struct {
	name     string
	priority int
	freq     int
	log      *[]string
}

func (s orderTrackingSystem) Execute(w *World) error {
	*s.log = append(*s.log, s.name)
	return nil
}
func (s orderTrackingSystem) Frequency() int { return s.freq }
func (s orderTrackingSystem) Priority() int  { return s.priority }

type systemA struct{ orderTrackingSystem }
type systemB struct{ orderTrackingSystem }
type systemC struct{ orderTrackingSystem }

// TestSchedulerPriorityAndFrequency covers S3: systems A (priority -1), B
// (priority 0, frequency 5), C (priority 1). Over 10 ticks, A must run
// strictly before B and C on every tick, C strictly after, and B only on
// ticks where its internal counter is a multiple of 5.
func TestSchedulerPriorityAndFrequency(t *testing.T) {
	w := Factory.NewWorld(DefaultWorldOptions())
	var log []string
	bFireCount := 0

	AddSystem(w, systemA{orderTrackingSystem{name: "A", priority: -1, freq: 1, log: &log}})
	AddSystem(w, systemB{orderTrackingSystem{name: "B", priority: 0, freq: 5, log: &log}})
	AddSystem(w, systemC{orderTrackingSystem{name: "C", priority: 1, freq: 1, log: &log}})

	if err := w.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	for tick := 0; tick < 10; tick++ {
		log = nil
		if err := w.Update(); err != nil {
			t.Fatalf("Update (tick %d): %v", tick, err)
		}
		if len(log) == 0 || log[0] != "A" {
			t.Fatalf("tick %d: A must run first, got %v", tick, log)
		}
		if log[len(log)-1] != "C" {
			t.Fatalf("tick %d: C must run last, got %v", tick, log)
		}
		hasB := false
		for _, n := range log {
			if n == "B" {
				hasB = true
			}
		}
		if hasB {
			bFireCount++
		}
	}
	if bFireCount != 2 {
		t.Errorf("B (frequency 5) should fire exactly twice over 10 ticks (counter 0 and 5), got %d", bFireCount)
	}
}

type errSystem struct {
	source string
}

func (e errSystem) Execute(w *World) error { return errBoom }
func (e errSystem) Frequency() int         { return 1 }
func (e errSystem) Priority() int          { return 0 }

var errBoom = &testSentinelError{"boom"}

type testSentinelError struct{ msg string }

func (e *testSentinelError) Error() string { return e.msg }

// TestSchedulerErrorDoesNotAbortSiblings covers the cancellation contract:
// a failing system's error reaches the error sink and does not prevent a
// sibling in the same bucket from running.
func TestSchedulerErrorDoesNotAbortSiblings(t *testing.T) {
	w := Factory.NewWorld(DefaultWorldOptions())
	var log []string
	var sinkErrs []error
	w.OnError(func(source string, err error) {
		sinkErrs = append(sinkErrs, err)
	})

	AddSystem(w, errSystem{source: "errSystem"})
	AddSystem(w, systemC{orderTrackingSystem{name: "C", priority: 0, freq: 1, log: &log}})

	w.Init()
	if err := w.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(log) != 1 || log[0] != "C" {
		t.Errorf("sibling system should still have run, got %v", log)
	}
	if len(sinkErrs) != 1 {
		t.Fatalf("expected exactly one error delivered to the sink, got %d", len(sinkErrs))
	}
	var sysErr UserSystemError
	if !errors.As(sinkErrs[0], &sysErr) {
		t.Fatalf("sink error should unwrap to UserSystemError, got %T", sinkErrs[0])
	}
	if sysErr.Source == "" {
		t.Errorf("UserSystemError.Source should name the failing system")
	}
}

func TestRemoveSystemTakesEffectAtBoundary(t *testing.T) {
	w := Factory.NewWorld(DefaultWorldOptions())
	var log []string
	AddSystem(w, systemA{orderTrackingSystem{name: "A", priority: 0, freq: 1, log: &log}})
	w.Init()

	log = nil
	w.Update()
	if len(log) != 1 {
		t.Fatalf("expected A to run once before removal, got %v", log)
	}

	RemoveSystem[systemA](w)
	log = nil
	w.Update()
	if len(log) != 0 {
		t.Errorf("A should not run on the tick after RemoveSystem, got %v", log)
	}
}
