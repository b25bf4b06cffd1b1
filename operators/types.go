package operators

import (
	"math/rand"

	"github.com/katalvlaran/wavepick/solution"
)

// Operator is a stateless move: apply mutates s and returns the realized
// change in surrogate cost, 0 if it could not act. Apply repairs internally
// if its move left s infeasible (presence-based); s stays infeasible only
// when Repair cannot cover a chosen order from any aisle.
type Operator interface {
	Name() string
	Apply(s *solution.Solution, rng *rand.Rand) float64
}

// track measures the exact cost delta of running fn against s's
// incrementally maintained CurrentCost, so every operator's reported delta
// already includes whatever Repair contributed, without re-deriving each
// sub-delta by hand.
func track(s *solution.Solution, fn func()) float64 {
	before := s.CurrentCost()
	fn()
	return s.CurrentCost() - before
}

// repairIfNeeded restores feasibility when fn's move broke it; a no-op
// (and zero cost) when s is already feasible.
func repairIfNeeded(s *solution.Solution) {
	if !s.IsFeasible() {
		s.Repair()
	}
}

// nonChosenOrders returns the ids of orders not currently in s's chosen set.
func nonChosenOrders(s *solution.Solution) []int {
	out := make([]int, 0, s.Inst.NumOrders()-s.NumChosenOrders())
	for o := 0; o < s.Inst.NumOrders(); o++ {
		if !s.ContainsOrder(o) {
			out = append(out, o)
		}
	}
	return out
}

// nonChosenAisles returns the ids of aisles not currently in s's chosen set.
func nonChosenAisles(s *solution.Solution) []int {
	out := make([]int, 0, s.Inst.NumAisles()-s.NumChosenAisles())
	for a := 0; a < s.Inst.NumAisles(); a++ {
		if !s.ContainsAisle(a) {
			out = append(out, a)
		}
	}
	return out
}

// ceilFrac returns ⌈frac·n⌉, clamped to [0, n].
func ceilFrac(frac float64, n int) int {
	if n <= 0 || frac <= 0 {
		return 0
	}
	k := int(frac*float64(n) + 0.999999999)
	if k > n {
		k = n
	}
	return k
}
