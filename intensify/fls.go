package intensify

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/wavepick/solution"
)

// FocusedLocalSearch runs VND over s in place: BestImprovement scans
// every neighbor in every neighborhood each iteration; FirstImprovement
// shuffles one neighborhood at a time and moves on the first improving
// feasible neighbor. ctx's cancellation is checked once per iteration, so
// no step runs longer than one sub-iteration without a cancellation check.
func FocusedLocalSearch(ctx context.Context, s *solution.Solution, cfg FLSConfig, rng *rand.Rand) FLSResult {
	var deadline time.Time
	if cfg.TimeoutMillis > 0 {
		deadline = time.Now().Add(time.Duration(cfg.TimeoutMillis) * time.Millisecond)
	}

	bestCost := s.CurrentCost()
	noImprove := 0
	iter := 0
	improvedAny := false
	patience := cfg.PatienceFactor * float64(s.Inst.NumOrders()+s.Inst.NumAisles())
	if patience < 1 {
		patience = 1
	}

	for {
		if cfg.MaxIterations > 0 && iter >= cfg.MaxIterations {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if cfg.TargetCost > 0 && bestCost <= cfg.TargetCost {
			break
		}
		if float64(noImprove) >= patience {
			break
		}

		var delta float64
		var acted bool
		if cfg.Mode == BestImprovement {
			delta, acted = stepBest(ctx, s, cfg, rng)
		} else {
			delta, acted = stepFirst(s, cfg, rng)
		}
		iter++

		if acted && delta < -cfg.ImprovementEpsilon {
			bestCost = s.CurrentCost()
			noImprove = 0
			improvedAny = true
			// Geometric patience reduction as the search keeps finding
			// improvements, so FLS tightens its stagnation tolerance instead
			// of wandering once gains are flowing.
			patience = math.Max(1, patience*0.95)
		} else {
			noImprove++
			if cfg.AllowRestart && cfg.MaxNoImprovement > 0 && noImprove%cfg.MaxNoImprovement == 0 {
				lightMutation(s, rng)
			}
		}
	}

	return FLSResult{Best: s, Iterations: iter, Improved: improvedAny}
}

// stepBest materializes both neighborhoods' candidate moves, evaluates every
// delta concurrently, and commits the strictly best improving one.
func stepBest(ctx context.Context, s *solution.Solution, cfg FLSConfig, rng *rand.Rand) (float64, bool) {
	candidates := append(neighborsOrder(s), neighborsAisle(s)...)
	if len(candidates) == 0 {
		return 0, false
	}

	results, err := s.EvaluateBatch(ctx, candidates, 0)
	if err != nil {
		return 0, false
	}

	bestIdx := -1
	bestDelta := math.Inf(1)
	for _, r := range results {
		if r.Delta < bestDelta {
			bestDelta, bestIdx = r.Delta, r.Index
		}
	}
	if bestIdx == -1 || bestDelta >= -cfg.ImprovementEpsilon {
		return 0, false
	}
	return commit(s, candidates[bestIdx]), true
}

// stepFirst scans Order-neighborhood then Aisle-neighborhood, each shuffled,
// committing the first strictly improving feasible neighbor it finds.
func stepFirst(s *solution.Solution, cfg FLSConfig, rng *rand.Rand) (float64, bool) {
	for _, neighborhood := range [][]move{neighborsOrder(s), neighborsAisle(s)} {
		shuffleMoves(neighborhood, rng)
		for _, m := range neighborhood {
			if peekDelta(s, m) < -cfg.ImprovementEpsilon {
				return commit(s, m), true
			}
		}
	}
	return 0, false
}

// neighborsOrder enumerates the Order-neighborhood: one add/remove move per
// order depending on its current membership.
func neighborsOrder(s *solution.Solution) []move {
	n := s.Inst.NumOrders()
	out := make([]move, 0, n)
	for o := 0; o < n; o++ {
		if s.ContainsOrder(o) {
			out = append(out, move{Kind: solution.MoveRemoveOrder, A: o})
		} else {
			out = append(out, move{Kind: solution.MoveAddOrder, A: o})
		}
	}
	return out
}

// neighborsAisle is neighborsOrder's analogue over aisles.
func neighborsAisle(s *solution.Solution) []move {
	n := s.Inst.NumAisles()
	out := make([]move, 0, n)
	for a := 0; a < n; a++ {
		if s.ContainsAisle(a) {
			out = append(out, move{Kind: solution.MoveRemoveAisle, A: a})
		} else {
			out = append(out, move{Kind: solution.MoveAddAisle, A: a})
		}
	}
	return out
}

// peekDelta reads a candidate move's raw delta without mutating s.
func peekDelta(s *solution.Solution, m move) float64 {
	switch m.Kind {
	case solution.MoveAddOrder:
		return s.DeltaAddOrder(m.A)
	case solution.MoveRemoveOrder:
		return s.DeltaRemoveOrder(m.A)
	case solution.MoveAddAisle:
		return s.DeltaAddAisle(m.A)
	case solution.MoveRemoveAisle:
		return s.DeltaRemoveAisle(m.A)
	case solution.MoveSwapAisle:
		return s.DeltaSwapAisle(m.A, m.B)
	case solution.MoveSwapOrders:
		return s.DeltaSwapOrders(m.A, m.B)
	default:
		return 0
	}
}

// commit applies m to s, repairs if m left s infeasible, and returns the
// exact realized cost change including any repair contribution.
func commit(s *solution.Solution, m move) float64 {
	before := s.CurrentCost()
	switch m.Kind {
	case solution.MoveAddOrder:
		s.ApplyAddOrder(m.A)
	case solution.MoveRemoveOrder:
		s.ApplyRemoveOrder(m.A)
	case solution.MoveAddAisle:
		s.ApplyAddAisle(m.A)
	case solution.MoveRemoveAisle:
		s.ApplyRemoveAisle(m.A)
	case solution.MoveSwapAisle:
		s.ApplyRemoveAisle(m.A)
		s.ApplyAddAisle(m.B)
	case solution.MoveSwapOrders:
		s.ApplyAddOrder(m.B)
		s.ApplyRemoveOrder(m.A)
	}
	if !s.IsFeasible() {
		s.Repair()
	}
	return s.CurrentCost() - before
}

// shuffleMoves is Fisher-Yates over a move slice.
func shuffleMoves(a []move, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// lightMutation removes one random chosen order or aisle and repairs,
// the stagnation kicker used when AllowRestart is set.
func lightMutation(s *solution.Solution, rng *rand.Rand) {
	removeOrder := rng.Intn(2) == 0
	if removeOrder && s.NumChosenOrders() > 0 {
		chosen := s.ChosenOrders()
		s.ApplyRemoveOrder(chosen[rng.Intn(len(chosen))])
	} else if s.NumChosenAisles() > 0 {
		chosen := s.ChosenAisles()
		s.ApplyRemoveAisle(chosen[rng.Intn(len(chosen))])
	}
	if !s.IsFeasible() {
		s.Repair()
	}
}
