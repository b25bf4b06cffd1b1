package operators

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/wavepick/internal/prng"
	"github.com/katalvlaran/wavepick/solution"
)

// LNSOrder is a large-neighborhood-search destroy/repair operator over
// orders. Destroy removes ⌈ρ·|chosenOrders|⌉ random chosen
// orders; repair ranks every non-chosen order by DeltaAddOrder and
// re-inserts the cheapest up to the destroyed count.
type LNSOrder struct {
	Rho float64
}

func (l LNSOrder) Name() string { return "LNSOrder" }

func (l LNSOrder) Apply(s *solution.Solution, rng *rand.Rand) float64 {
	n := ceilFrac(l.Rho, s.NumChosenOrders())
	if n == 0 {
		return 0
	}
	destroyed := append([]int(nil), s.ChosenOrders()...)
	prng.ShuffleInts(destroyed, rng)
	destroyed = destroyed[:n]

	return track(s, func() {
		for _, o := range destroyed {
			s.ApplyRemoveOrder(o)
		}
		candidates := nonChosenOrders(s)
		sort.Slice(candidates, func(i, j int) bool {
			return s.DeltaAddOrder(candidates[i]) < s.DeltaAddOrder(candidates[j])
		})
		if len(candidates) > n {
			candidates = candidates[:n]
		}
		for _, o := range candidates {
			s.ApplyAddOrder(o)
		}
		repairIfNeeded(s)
	})
}

// LNSAisle is LNSOrder's analogue over aisles.
type LNSAisle struct {
	Rho float64
}

func (l LNSAisle) Name() string { return "LNSAisle" }

func (l LNSAisle) Apply(s *solution.Solution, rng *rand.Rand) float64 {
	n := ceilFrac(l.Rho, s.NumChosenAisles())
	if n == 0 {
		return 0
	}
	destroyed := append([]int(nil), s.ChosenAisles()...)
	prng.ShuffleInts(destroyed, rng)
	destroyed = destroyed[:n]

	return track(s, func() {
		for _, a := range destroyed {
			s.ApplyRemoveAisle(a)
		}
		candidates := nonChosenAisles(s)
		sort.Slice(candidates, func(i, j int) bool {
			return s.DeltaAddAisle(candidates[i]) < s.DeltaAddAisle(candidates[j])
		})
		if len(candidates) > n {
			candidates = candidates[:n]
		}
		for _, a := range candidates {
			s.ApplyAddAisle(a)
		}
		repairIfNeeded(s)
	})
}
