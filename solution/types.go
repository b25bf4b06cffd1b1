package solution

import (
	"sync"

	"github.com/katalvlaran/wavepick/instance"
)

// Weights holds the surrogate evaluator's penalty coefficients.
// DefaultWeights below matches the shipped defaults exactly;
// callers rarely need to change them, but the config package exposes them
// as a knob.
type Weights struct {
	PMissing float64 // penalty per chosen order that is not fully covered
	CAisle   float64 // cost per chosen aisle
	WRatio   float64 // weight on |aisles|/max(1,|orders|)
}

// DefaultWeights returns the shipped defaults: pMissing=1000, cAisle=10, wRatio=50.
func DefaultWeights() Weights {
	return Weights{PMissing: 1000, CAisle: 10, WRatio: 50}
}

// Solution is the mutable working solution over an instance.Instance.
// Zero value is not usable; construct with New.
type Solution struct {
	Inst *instance.Instance

	weights Weights

	chosenOrder    []bool
	chosenOrderIdx []int // chosenOrder id -> position in orderList, -1 if absent
	orderList      []int // dense list of currently chosen order ids

	chosenAisle    []bool
	chosenAisleIdx []int
	aisleList      []int

	// coverage[o][pos] is the number of chosen aisles stocking
	// Inst.Order(o).Items[pos].ItemID. Defined for every order regardless of
	// whether it is currently chosen.
	coverage [][]int32
	// uncovered[o] is the count of positions in coverage[o] that are zero;
	// order o is fully covered iff uncovered[o] == 0.
	uncovered []int32

	currentCost     float64
	costKnown       bool
	stateVersion    uint64 // bumped on every Apply* mutation; guards delta caches
	orderDeltaCache map[int]cachedDelta
	aisleDeltaCache map[int]cachedDelta
	// cacheMu guards orderDeltaCache/aisleDeltaCache reads and writes.
	// EvaluateBatch reads deltas from many goroutines
	// concurrently; Apply* mutation methods are documented as the caller's
	// exclusion responsibility (never run concurrently with EvaluateBatch),
	// but the cache maps themselves still need this to avoid a concurrent
	// map write panic across batch workers.
	cacheMu sync.Mutex
}

type cachedDelta struct {
	version uint64
	value   float64
}

// New constructs an empty Solution (no orders, no aisles chosen) over inst,
// with default evaluator weights.
func New(inst *instance.Instance) *Solution {
	return NewWithWeights(inst, DefaultWeights())
}

// NewWithWeights is New with explicit evaluator weights.
func NewWithWeights(inst *instance.Instance, w Weights) *Solution {
	n := inst.NumOrders()
	m := inst.NumAisles()

	s := &Solution{
		Inst:            inst,
		weights:         w,
		chosenOrder:     make([]bool, n),
		chosenOrderIdx:  make([]int, n),
		chosenAisle:     make([]bool, m),
		chosenAisleIdx:  make([]int, m),
		coverage:        make([][]int32, n),
		uncovered:       make([]int32, n),
		orderDeltaCache: make(map[int]cachedDelta),
		aisleDeltaCache: make(map[int]cachedDelta),
	}
	for i := range s.chosenOrderIdx {
		s.chosenOrderIdx[i] = -1
	}
	for i := range s.chosenAisleIdx {
		s.chosenAisleIdx[i] = -1
	}
	for o := 0; o < n; o++ {
		k := len(inst.Order(o).Items)
		s.coverage[o] = make([]int32, k)
		s.uncovered[o] = int32(k)
	}
	return s
}

// ContainsOrder reports whether order o is currently chosen. O(1).
func (s *Solution) ContainsOrder(o int) bool { return s.chosenOrder[o] }

// ContainsAisle reports whether aisle a is currently chosen. O(1).
func (s *Solution) ContainsAisle(a int) bool { return s.chosenAisle[a] }

// ChosenOrders returns the (read-only) dense slice of currently chosen order ids.
// Callers must not retain the slice across a mutating call.
func (s *Solution) ChosenOrders() []int { return s.orderList }

// ChosenAisles returns the (read-only) dense slice of currently chosen aisle ids.
func (s *Solution) ChosenAisles() []int { return s.aisleList }

// NumChosenOrders returns |chosenOrders|.
func (s *Solution) NumChosenOrders() int { return len(s.orderList) }

// NumChosenAisles returns |chosenAisles|.
func (s *Solution) NumChosenAisles() int { return len(s.aisleList) }

// IsOrderCovered reports whether order o is fully covered: every item it
// demands is stocked by at least one chosen aisle. This is the presence-based
// surrogate notion; PerUnitFeasible is the stricter per-unit check.
func (s *Solution) IsOrderCovered(o int) bool { return s.uncovered[o] == 0 }

// Weights returns the evaluator weights in effect.
func (s *Solution) Weights() Weights { return s.weights }

// TotalUnitsPicked returns the sum of demanded units across chosen orders,
// the numerator of the true objective.
func (s *Solution) TotalUnitsPicked() int {
	total := 0
	for _, o := range s.orderList {
		total += s.Inst.Order(o).TotalUnits()
	}
	return total
}

// Objective returns the true reported objective: picked units / |aisles|,
// or 0 if no aisle is chosen (avoids division by zero; an empty-aisle
// solution is never feasible unless no order demands
// anything, so this only matters for diagnostics on partial solutions).
func (s *Solution) Objective() float64 {
	if len(s.aisleList) == 0 {
		return 0
	}
	return float64(s.TotalUnitsPicked()) / float64(len(s.aisleList))
}
