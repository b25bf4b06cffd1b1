package asa

import (
	"math/rand"

	"github.com/katalvlaran/wavepick/instance"
	"github.com/katalvlaran/wavepick/solution"
)

// buildInitial constructs the driver's starting solution: a uniformly
// random orderFraction (clamped to [0.2, 0.5]) of orders, added
// in shuffled order, then repaired; Repair's greedy set cover supplies
// "a few covering aisles" deterministically given the chosen orders.
func buildInitial(inst *instance.Instance, w solution.Weights, orderFraction float64, rng *rand.Rand) *solution.Solution {
	if orderFraction < 0.2 {
		orderFraction = 0.2
	}
	if orderFraction > 0.5 {
		orderFraction = 0.5
	}

	n := inst.NumOrders()
	order := rng.Perm(n)
	k := int(orderFraction * float64(n))
	if k == 0 && n > 0 {
		k = 1
	}

	// Orders demanding an item no aisle stocks are never seeded: no cover
	// exists for them, so they could only ever be evicted again.
	s := solution.NewWithWeights(inst, w)
	added := 0
	for _, o := range order {
		if added == k {
			break
		}
		if demandsUncoverable(inst, o) {
			continue
		}
		s.ApplyAddOrder(o)
		added++
	}
	if !s.IsFeasible() {
		s.Repair()
	}
	return s
}

// demandsUncoverable reports whether order o demands an item that no aisle
// stocks at all, making the order permanently infeasible.
func demandsUncoverable(inst *instance.Instance, o int) bool {
	for _, d := range inst.Order(o).Items {
		if inst.IsUncoverable(d.ItemID) {
			return true
		}
	}
	return false
}
