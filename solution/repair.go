package solution

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// IsFeasible reports whether every chosen order is fully covered: every
// item it demands is stocked by at least one currently chosen aisle. This
// is the presence-based definition used throughout search; see
// PerUnitFeasible for the stricter per-unit check reserved for the final
// gate.
func (s *Solution) IsFeasible() bool {
	for _, o := range s.orderList {
		if !s.IsOrderCovered(o) {
			return false
		}
	}
	return true
}

// CoverageQuality returns the fraction of chosen orders that are fully
// covered, or 1.0 if no order is chosen.
func (s *Solution) CoverageQuality() float64 {
	if len(s.orderList) == 0 {
		return 1
	}
	covered := 0
	for _, o := range s.orderList {
		if s.IsOrderCovered(o) {
			covered++
		}
	}
	return float64(covered) / float64(len(s.orderList))
}

// RemoveInfeasibleOrders drops every chosen order whose demand cannot be met
// even with all currently chosen aisles, per item and per unit, and returns
// the number removed. Unlike IsOrderCovered this is a unit-level check: an
// order demanding 10 units of an item of which the chosen aisles stock 3 in
// total is infeasible here even though presence-based coverage is satisfied.
func (s *Solution) RemoveInfeasibleOrders() int {
	var drop []int
	for _, o := range s.orderList {
		if !s.orderMeetableByChosen(o) {
			drop = append(drop, o)
		}
	}
	for _, o := range drop {
		s.ApplyRemoveOrder(o)
	}
	return len(drop)
}

// orderMeetableByChosen reports whether the chosen aisles collectively stock
// at least the demanded units of every item order o demands.
func (s *Solution) orderMeetableByChosen(o int) bool {
	ord := s.Inst.Order(o)
	for _, d := range ord.Items {
		available := 0
		for _, a := range s.aisleList {
			available += s.Inst.Aisle(a).Stock(d.ItemID)
		}
		if available < d.Units {
			return false
		}
	}
	return true
}

// orderUncoveredBitset returns a bitset over order o's Items positions, with
// bit j set iff coverage[o][j] == 0 (position j still uncovered).
func (s *Solution) orderUncoveredBitset(o int) *bitset.BitSet {
	cov := s.coverage[o]
	b := bitset.New(uint(len(cov)))
	for j, c := range cov {
		if c == 0 {
			b.Set(uint(j))
		}
	}
	return b
}

// aisleCoverBitset returns a bitset over order o's Items positions, with bit
// j set iff aisle a stocks Inst.Order(o).Items[j].ItemID.
func (s *Solution) aisleCoverBitset(o, a int) *bitset.BitSet {
	ord := s.Inst.Order(o)
	aisle := s.Inst.Aisle(a)
	b := bitset.New(uint(len(ord.Items)))
	for _, it := range aisle.Items {
		if pos, ok := ord.PositionOf(it.ItemID); ok {
			b.Set(uint(pos))
		}
	}
	return b
}

// Repair runs a greedy set-cover loop to make every chosen order feasible,
// then prunes any now-redundant aisle. Returns true iff a fully feasible
// cover was achieved (the uncovered universe emptied); on false, the
// partial cover built so far is left in place.
func (s *Solution) Repair() bool {
	uncovered := make(map[int]*bitset.BitSet, len(s.orderList))
	remaining := uint(0)
	for _, o := range s.orderList {
		b := s.orderUncoveredBitset(o)
		if b.Any() {
			uncovered[o] = b
			remaining += b.Count()
		}
	}

	candidates := make(map[int]bool)
	for o := range uncovered {
		for _, a := range s.Inst.OrderToAisles(o) {
			if !s.chosenAisle[a] {
				candidates[a] = true
			}
		}
	}

	for remaining > 0 && len(candidates) > 0 {
		bestAisle := -1
		var bestGain uint
		for a := range candidates {
			var gain uint
			for _, o := range s.Inst.AisleToOrders(a) {
				ub, ok := uncovered[o]
				if !ok {
					continue
				}
				gain += s.aisleCoverBitset(o, a).IntersectionCardinality(ub)
			}
			if gain > bestGain || (gain == bestGain && (bestAisle == -1 || a < bestAisle)) {
				bestGain = gain
				bestAisle = a
			}
		}
		if bestAisle == -1 || bestGain == 0 {
			break
		}

		s.ApplyAddAisle(bestAisle)
		delete(candidates, bestAisle)
		for _, o := range s.Inst.AisleToOrders(bestAisle) {
			ub, ok := uncovered[o]
			if !ok {
				continue
			}
			cover := s.aisleCoverBitset(o, bestAisle)
			before := ub.Count()
			ub.InPlaceDifference(cover)
			after := ub.Count()
			remaining -= before - after
			if after == 0 {
				delete(uncovered, o)
			}
		}
	}

	if remaining > 0 {
		return false
	}

	s.prune()
	return true
}

// prune removes every aisle whose exclusion leaves the solution feasible.
// Iteration order is the ascending aisle id, for determinism.
func (s *Solution) prune() {
	ids := append([]int(nil), s.aisleList...)
	sort.Ints(ids)
	for _, a := range ids {
		if !s.chosenAisle[a] {
			continue // removed earlier in this same pass
		}
		s.ApplyRemoveAisle(a)
		if !s.IsFeasible() {
			s.ApplyAddAisle(a)
		}
	}
}

// PerUnitFeasible runs the stricter per-unit feasibility gate: for every
// chosen order and every item it demands, the summed stock of that item
// across chosen aisles must be at least the demanded units, not merely
// "some aisle stocks it". This is the true SBPO constraint; the
// presence-based IsFeasible is the surrogate used throughout search.
func (s *Solution) PerUnitFeasible() bool {
	for _, o := range s.orderList {
		if !s.orderMeetableByChosen(o) {
			return false
		}
	}
	return true
}

// WaveSizeInBounds sums demanded units across chosen orders and checks the
// total falls in [WaveSizeLB, WaveSizeUB], the wave-bound half of problem
// feasibility.
func (s *Solution) WaveSizeInBounds() bool {
	total := s.TotalUnitsPicked()
	return total >= s.Inst.WaveSizeLB && total <= s.Inst.WaveSizeUB
}
