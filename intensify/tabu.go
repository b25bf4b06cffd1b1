package intensify

import (
	"context"
	"math"

	"github.com/katalvlaran/wavepick/solution"
)

// DefaultTabuMaxIterations and DefaultTabuTenure are the shipped defaults.
const (
	DefaultTabuMaxIterations = 100
	DefaultTabuTenure        = 10
)

// tabuKey identifies a move for tabu-list membership.
type tabuKey struct {
	Kind solution.MoveKind
	A, B int
}

// MemeticTabu runs a short tabu search from start: the neighborhood is
// every single add/remove move over orders and aisles, plus
// every aisle swap. Each iteration picks the best non-tabu move, or a tabu
// move only if it would beat the global best (aspiration); the move's key
// is enqueued and the oldest evicted once the tenure is exceeded. Returns
// the best solution found along the walk.
func MemeticTabu(ctx context.Context, start *solution.Solution, maxIterations, tabuTenure int) *solution.Solution {
	working := start.DeepCopy()
	best := working.DeepCopy()
	bestCost := best.CurrentCost()

	tabu := make(map[tabuKey]bool)
	var queue []tabuKey

	for iter := 0; iter < maxIterations; iter++ {
		if ctx.Err() != nil {
			break
		}
		candidates := tabuNeighborhood(working)
		bestIdx, bestDelta := -1, math.Inf(1)
		for i, m := range candidates {
			key := tabuKeyOf(m)
			d := peekDelta(working, m)
			if tabu[key] && working.CurrentCost()+d >= bestCost {
				continue // tabu and doesn't beat global best: skip
			}
			if d < bestDelta {
				bestDelta, bestIdx = d, i
			}
		}
		if bestIdx == -1 {
			break
		}

		chosen := candidates[bestIdx]
		commit(working, chosen)
		key := tabuKeyOf(chosen)
		queue = append(queue, key)
		tabu[key] = true
		if len(queue) > tabuTenure {
			delete(tabu, queue[0])
			queue = queue[1:]
		}

		if working.CurrentCost() < bestCost {
			bestCost = working.CurrentCost()
			best = working.DeepCopy()
		}
	}
	return best
}

func tabuKeyOf(m move) tabuKey { return tabuKey{Kind: m.Kind, A: m.A, B: m.B} }

// tabuNeighborhood is neighborsOrder ∪ neighborsAisle ∪ every aisle swap.
func tabuNeighborhood(s *solution.Solution) []move {
	out := append(neighborsOrder(s), neighborsAisle(s)...)
	chosen := s.ChosenAisles()
	for a := 0; a < s.Inst.NumAisles(); a++ {
		if s.ContainsAisle(a) {
			continue
		}
		for _, c := range chosen {
			out = append(out, move{Kind: solution.MoveSwapAisle, A: c, B: a})
		}
	}
	return out
}
