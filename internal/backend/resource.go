package backend

// ResourceConfig fixes the execution resources of a backend session.
// It is applied once, before the session's first inference call, and is
// immutable afterwards. Zero values mean "use the backend default".
type ResourceConfig struct {
	// Threads is the intra-op thread count. 0 leaves the backend's
	// use-all-threads default in place.
	Threads int

	// BatchSize partitions the input row-wise and scores one partition at a
	// time. 0 scores the whole input in one call.
	BatchSize int
}

// SessionOptions is the session-level form of a ResourceConfig consumed by
// the portable inference engine. Inter-op parallelism is always forced to 1
// and execution is sequential: converted graphs run their operators in order,
// so inter-op scheduling only adds overhead.
type SessionOptions struct {
	IntraOpThreads int
	InterOpThreads int
	Sequential     bool
}

// SessionOptions translates the resource configuration for the portable
// engine.
func (rc ResourceConfig) SessionOptions() SessionOptions {
	return SessionOptions{
		IntraOpThreads: rc.Threads,
		InterOpThreads: 1,
		Sequential:     true,
	}
}
