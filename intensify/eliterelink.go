package intensify

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/wavepick/solution"
)

// ElitePathRelinking runs Path Relinking between every ordered pair of
// distinct elites, offering each improving result back to the archive, and
// returns the best solution seen. Returns nil if the archive has fewer
// than two members.
func ElitePathRelinking(ctx context.Context, archive *Archive, cfg FLSConfig, rng *rand.Rand) *solution.Solution {
	members := archive.Members()
	if len(members) < 2 {
		return nil
	}

	var best *solution.Solution
	bestCost := math.Inf(1)
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			for _, pair := range [2][2]*solution.Solution{
				{members[i], members[j]},
				{members[j], members[i]},
			} {
				if ctx.Err() != nil {
					return best
				}
				res := PathRelinking(ctx, pair[0], pair[1], rng, false, cfg)
				if res.IsFeasible() {
					archive.Offer(res)
				}
				if res.CurrentCost() < bestCost {
					bestCost = res.CurrentCost()
					best = res
				}
			}
		}
	}
	return best
}
