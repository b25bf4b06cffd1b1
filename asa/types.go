package asa

import "time"

// TimeOracle reports remaining budget: the driver stops once it reports
// zero or less. The core treats it opaquely; WallClock is the
// only constructor provided, but any func() time.Duration works, including
// one driven by a context deadline or a test's fake clock.
type TimeOracle func() time.Duration

// WallClock returns a TimeOracle counting down from budget starting now.
func WallClock(budget time.Duration) TimeOracle {
	deadline := time.Now().Add(budget)
	return func() time.Duration { return time.Until(deadline) }
}

// Stats is the driver-owned counters returned alongside the best solution;
// the driver keeps no global mutable state, every counter lives here.
type Stats struct {
	// Components is the number of connected order/aisle clusters in the
	// instance adjacency graph, computed once before the loop starts.
	Components       int
	Iterations       int
	Accepted         int
	Rejected         int
	Perturbations    int
	Intensifications int
	PathRelinks      int
	TabuRuns         int
	EliteOffers      int
	EliteAccepts     int
	BestCost         float64
	FinalNoImprove   int
	Termination      string // "time_exhausted" | "stagnation" | "context_cancelled"

	// lastDelta is the most recently applied operator's realized cost delta,
	// scratch space for Solve's own improvement check between steps; it is
	// not part of the public counters contract.
	lastDelta float64
}
