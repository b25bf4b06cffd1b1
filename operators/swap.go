package operators

import (
	"math/rand"

	"github.com/katalvlaran/wavepick/internal/prng"
	"github.com/katalvlaran/wavepick/solution"
)

// SwapAisle picks one chosen aisle and one unchosen aisle uniformly,
// removes the former and adds the latter.
type SwapAisle struct{}

func (SwapAisle) Name() string { return "SwapAisle" }

func (SwapAisle) Apply(s *solution.Solution, rng *rand.Rand) float64 {
	chosen := s.ChosenAisles()
	candidates := nonChosenAisles(s)
	if len(chosen) == 0 || len(candidates) == 0 {
		return 0
	}
	remove := chosen[rng.Intn(len(chosen))]
	add := candidates[rng.Intn(len(candidates))]
	return track(s, func() {
		s.ApplyRemoveAisle(remove)
		s.ApplyAddAisle(add)
		repairIfNeeded(s)
	})
}

// SwapOrder is SwapAisle's analogue over orders: its delta is quoted by
// DeltaSwapOrders before the two applies commit it. Adding before removing
// keeps |chosenOrders| off zero mid-swap, where DeltaRemoveOrder quotes +Inf.
type SwapOrder struct{}

func (SwapOrder) Name() string { return "SwapOrder" }

func (SwapOrder) Apply(s *solution.Solution, rng *rand.Rand) float64 {
	chosen := s.ChosenOrders()
	candidates := nonChosenOrders(s)
	if len(chosen) == 0 || len(candidates) == 0 {
		return 0
	}
	remove := chosen[rng.Intn(len(chosen))]
	add := candidates[rng.Intn(len(candidates))]
	delta := s.DeltaSwapOrders(remove, add)
	s.ApplyAddOrder(add)
	s.ApplyRemoveOrder(remove)
	if s.IsFeasible() {
		return delta
	}
	return delta + track(s, func() { s.Repair() })
}

// MultiSwapAisle picks K chosen and K unchosen aisles uniformly without
// replacement, removes all K then adds all K.
type MultiSwapAisle struct {
	K int
}

func (m MultiSwapAisle) Name() string { return "MultiSwapAisle" }

func (m MultiSwapAisle) Apply(s *solution.Solution, rng *rand.Rand) float64 {
	k := m.K
	if k <= 0 {
		return 0
	}
	chosen := append([]int(nil), s.ChosenAisles()...)
	candidates := nonChosenAisles(s)
	if len(chosen) < k || len(candidates) < k {
		return 0
	}
	prng.ShuffleInts(chosen, rng)
	prng.ShuffleInts(candidates, rng)
	remove := chosen[:k]
	add := candidates[:k]

	return track(s, func() {
		for _, a := range remove {
			s.ApplyRemoveAisle(a)
		}
		for _, a := range add {
			s.ApplyAddAisle(a)
		}
		repairIfNeeded(s)
	})
}
