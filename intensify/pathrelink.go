package intensify

import (
	"context"
	"math/rand"
	"sort"

	"github.com/katalvlaran/wavepick/solution"
)

// PathRelinking walks from origin toward guide: the move set is the
// symmetric difference over orders and aisles (one ADD/REMOVE per
// differing element), ranked by estimated delta on a fresh copy of origin
// (biggest improvement first), with the trailing 75% of that ranking
// shuffled. Moves are applied sequentially to a working copy, repairing
// after each if needed; the best solution seen along the walk is returned.
// If refine, FIRST_IMPROVEMENT local search runs at every improvement point.
func PathRelinking(ctx context.Context, origin, guide *solution.Solution, rng *rand.Rand, refine bool, cfg FLSConfig) *solution.Solution {
	moves := diffMoves(origin, guide)
	if len(moves) == 0 {
		return origin.DeepCopy()
	}

	scratch := origin.DeepCopy()
	deltas := make([]float64, len(moves))
	for i, m := range moves {
		deltas[i] = peekDelta(scratch, m)
	}

	order := make([]int, len(moves))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return deltas[order[i]] < deltas[order[j]] })

	top := (len(order) + 3) / 4 // ⌈25%⌉ kept in ranked order
	if top > len(order) {
		top = len(order)
	}
	tail := append([]int(nil), order[top:]...)
	shuffleIdx(tail, rng)
	final := append(append([]int(nil), order[:top]...), tail...)

	refineCfg := cfg
	refineCfg.Mode = FirstImprovement

	working := origin.DeepCopy()
	best := working.DeepCopy()
	bestCost := best.CurrentCost()
	for _, idx := range final {
		if ctx.Err() != nil {
			break
		}
		commit(working, moves[idx])
		if working.CurrentCost() < bestCost {
			bestCost = working.CurrentCost()
			best = working.DeepCopy()
			if refine {
				res := FocusedLocalSearch(ctx, best, refineCfg, rng)
				best = res.Best
				bestCost = best.CurrentCost()
			}
		}
	}
	return best
}

// diffMoves returns one ADD/REMOVE move per order/aisle that differs between
// origin and guide: elements guide has that origin lacks get an Add,
// origin ins that guide doesn't get a Remove.
func diffMoves(origin, guide *solution.Solution) []move {
	orderMoves := diffCategory(origin.ChosenOrders(), guide.ChosenOrders(), solution.MoveAddOrder, solution.MoveRemoveOrder)
	aisleMoves := diffCategory(origin.ChosenAisles(), guide.ChosenAisles(), solution.MoveAddAisle, solution.MoveRemoveAisle)
	return append(orderMoves, aisleMoves...)
}

func diffCategory(originIDs, guideIDs []int, addKind, removeKind solution.MoveKind) []move {
	originSet := make(map[int]bool, len(originIDs))
	for _, x := range originIDs {
		originSet[x] = true
	}
	guideSet := make(map[int]bool, len(guideIDs))
	for _, x := range guideIDs {
		guideSet[x] = true
	}
	var adds, removes []int
	for x := range guideSet {
		if !originSet[x] {
			adds = append(adds, x)
		}
	}
	for x := range originSet {
		if !guideSet[x] {
			removes = append(removes, x)
		}
	}
	sort.Ints(adds)
	sort.Ints(removes)

	out := make([]move, 0, len(adds)+len(removes))
	for _, x := range adds {
		out = append(out, move{Kind: addKind, A: x})
	}
	for _, x := range removes {
		out = append(out, move{Kind: removeKind, A: x})
	}
	return out
}

func shuffleIdx(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
