package silo

// WorldOptions configures a World at construction, generalizing the
// teacher's package-level Config/SetTableEvents knob (config.go) into the
// per-World options spec.md §6 names.
type WorldOptions struct {
	// Parallel enables concurrent execution of sibling systems within a
	// priority bucket. When false, bucket systems run sequentially in
	// registration order.
	Parallel bool

	// Parallelism caps how many systems within a bucket run concurrently.
	// -1 (the default) means "all available cores" — GOMAXPROCS.
	Parallelism int

	// InitialEntityCapacity sizes the entity directory and every column up
	// front, avoiding early growth churn.
	InitialEntityCapacity int
}

// DefaultWorldOptions mirrors what NewWorld uses when the zero value is
// passed: sequential execution, a modest initial capacity.
func DefaultWorldOptions() WorldOptions {
	return WorldOptions{
		Parallel:              false,
		Parallelism:           -1,
		InitialEntityCapacity: 1024,
	}
}
