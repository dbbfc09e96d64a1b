package silo

import (
	"reflect"
	"testing"
)

type regTestA struct{ x int }
type regTestB struct{ y int }

func TestRegistryGetOrRegisterStable(t *testing.T) {
	r := newTypeRegistry()
	idxA1, err := r.getOrRegister(reflect.TypeOf(regTestA{}))
	if err != nil {
		t.Fatalf("getOrRegister: %v", err)
	}
	idxA2, err := r.getOrRegister(reflect.TypeOf(regTestA{}))
	if err != nil {
		t.Fatalf("getOrRegister (again): %v", err)
	}
	if idxA1 != idxA2 {
		t.Errorf("same type registered twice returned different indices: %d vs %d", idxA1, idxA2)
	}

	idxB, err := r.getOrRegister(reflect.TypeOf(regTestB{}))
	if err != nil {
		t.Fatalf("getOrRegister(B): %v", err)
	}
	if idxB == idxA1 {
		t.Errorf("distinct types must receive distinct indices")
	}
}

func TestRegistryTryGet(t *testing.T) {
	r := newTypeRegistry()
	if _, ok := r.tryGet(reflect.TypeOf(regTestA{})); ok {
		t.Errorf("tryGet on a never-registered type should report false")
	}
	idx, err := r.getOrRegister(reflect.TypeOf(regTestA{}))
	if err != nil {
		t.Fatalf("getOrRegister: %v", err)
	}
	got, ok := r.tryGet(reflect.TypeOf(regTestA{}))
	if !ok || got != idx {
		t.Errorf("tryGet after registration = (%d, %v), want (%d, true)", got, ok, idx)
	}
}

func TestRegistryCapacityBoundary(t *testing.T) {
	r := newTypeRegistry()
	// Build a full registry directly (one map literal, not 65536
	// incremental getOrRegister calls, which would each pay an O(size)
	// copy-on-write rebuild and make this test quadratic).
	full := make(map[reflect.Type]TypeIndex, maxTypeCount)
	for i := 0; i < maxTypeCount; i++ {
		full[syntheticType(i)] = TypeIndex(i)
	}
	r.snap.Store(&registrySnapshot{indices: full})

	if idx, err := r.getOrRegister(syntheticType(0)); err != nil || idx != 0 {
		t.Errorf("a type already present in a full registry should still resolve: got (%d, %v)", idx, err)
	}
	if _, err := r.getOrRegister(syntheticType(maxTypeCount)); err == nil {
		t.Fatalf("registering a new type once the registry is full should fail")
	} else if _, ok := err.(CapacityExceededError); !ok {
		t.Fatalf("expected CapacityExceededError, got %T: %v", err, err)
	}
}

// syntheticType returns a distinct reflect.Type for each n by building an
// array type of length n over a fixed element type — reflect.ArrayOf
// guarantees distinctness across n without needing 65537 hand-written
// struct declarations.
func syntheticType(n int) reflect.Type {
	return reflect.ArrayOf(n, reflect.TypeOf(byte(0)))
}
