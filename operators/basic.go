package operators

import (
	"math/rand"

	"github.com/katalvlaran/wavepick/solution"
)

// AddOrder chooses a uniform-random order not currently chosen and adds it.
type AddOrder struct{}

func (AddOrder) Name() string { return "AddOrder" }

func (AddOrder) Apply(s *solution.Solution, rng *rand.Rand) float64 {
	candidates := nonChosenOrders(s)
	if len(candidates) == 0 {
		return 0
	}
	o := candidates[rng.Intn(len(candidates))]
	return track(s, func() {
		s.ApplyAddOrder(o)
		repairIfNeeded(s)
	})
}

// RemoveOrder chooses a uniform-random chosen order and removes it.
type RemoveOrder struct{}

func (RemoveOrder) Name() string { return "RemoveOrder" }

func (RemoveOrder) Apply(s *solution.Solution, rng *rand.Rand) float64 {
	chosen := s.ChosenOrders()
	if len(chosen) == 0 {
		return 0
	}
	o := chosen[rng.Intn(len(chosen))]
	return track(s, func() {
		s.ApplyRemoveOrder(o)
		repairIfNeeded(s)
	})
}

// AddAisle chooses a uniform-random aisle not currently chosen and adds it.
type AddAisle struct{}

func (AddAisle) Name() string { return "AddAisle" }

func (AddAisle) Apply(s *solution.Solution, rng *rand.Rand) float64 {
	candidates := nonChosenAisles(s)
	if len(candidates) == 0 {
		return 0
	}
	a := candidates[rng.Intn(len(candidates))]
	return track(s, func() {
		s.ApplyAddAisle(a)
		repairIfNeeded(s)
	})
}

// RemoveAisle chooses a uniform-random chosen aisle and removes it.
type RemoveAisle struct{}

func (RemoveAisle) Name() string { return "RemoveAisle" }

func (RemoveAisle) Apply(s *solution.Solution, rng *rand.Rand) float64 {
	chosen := s.ChosenAisles()
	if len(chosen) == 0 {
		return 0
	}
	a := chosen[rng.Intn(len(chosen))]
	return track(s, func() {
		s.ApplyRemoveAisle(a)
		repairIfNeeded(s)
	})
}
