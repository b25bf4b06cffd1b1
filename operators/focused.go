package operators

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/wavepick/solution"
)

// ObjectiveFocused removes the ⌈λ·|chosenOrders|⌉ chosen orders with the
// lowest per-order contribution (demanded units ÷ (1+exclusive aisles)),
// then re-adds non-chosen orders ranked by units/(1+max(0,deltaAdd)),
// highest first, up to the same count. Re-inserting the same
// count keeps wave size roughly stable; no distinct insertion budget is
// called for, so this mirrors LNSOrder/LNSAisle's symmetric pattern.
type ObjectiveFocused struct {
	Lambda float64
}

func (o ObjectiveFocused) Name() string { return "ObjectiveFocused" }

func (o ObjectiveFocused) Apply(s *solution.Solution, rng *rand.Rand) float64 {
	n := ceilFrac(o.Lambda, s.NumChosenOrders())
	if n == 0 {
		return 0
	}

	chosen := append([]int(nil), s.ChosenOrders()...)
	sort.Slice(chosen, func(i, j int) bool {
		return contribution(s, chosen[i]) < contribution(s, chosen[j])
	})
	drop := chosen[:n]

	return track(s, func() {
		for _, ord := range drop {
			s.ApplyRemoveOrder(ord)
		}
		candidates := nonChosenOrders(s)
		sort.Slice(candidates, func(i, j int) bool {
			return addScore(s, candidates[i]) > addScore(s, candidates[j])
		})
		if len(candidates) > n {
			candidates = candidates[:n]
		}
		for _, ord := range candidates {
			s.ApplyAddOrder(ord)
		}
		repairIfNeeded(s)
	})
}

// contribution is demanded units divided by (1+exclusive aisle count): an
// order's share of the current wave that would be lost if it were dropped.
func contribution(s *solution.Solution, o int) float64 {
	units := float64(s.Inst.Order(o).TotalUnits())
	return units / float64(1+exclusiveAisleCount(s, o))
}

// exclusiveAisleCount counts chosen aisles adjacent to order o that serve no
// other currently chosen order: the aisles o alone is keeping in the wave.
func exclusiveAisleCount(s *solution.Solution, o int) int {
	count := 0
	for _, a := range s.Inst.OrderToAisles(o) {
		if !s.ContainsAisle(a) {
			continue
		}
		shared := false
		for _, other := range s.Inst.AisleToOrders(a) {
			if other != o && s.ContainsOrder(other) {
				shared = true
				break
			}
		}
		if !shared {
			count++
		}
	}
	return count
}

// addScore is units/(1+max(0,deltaAdd)): orders cheap to re-add (small or
// negative delta) and carrying many units score highest.
func addScore(s *solution.Solution, o int) float64 {
	units := float64(s.Inst.Order(o).TotalUnits())
	delta := s.DeltaAddOrder(o)
	if delta < 0 {
		delta = 0
	}
	return units / (1 + delta)
}
