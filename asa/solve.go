package asa

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/wavepick/config"
	"github.com/katalvlaran/wavepick/instance"
	"github.com/katalvlaran/wavepick/intensify"
	"github.com/katalvlaran/wavepick/internal/prng"
	"github.com/katalvlaran/wavepick/metrics"
	"github.com/katalvlaran/wavepick/operators"
	"github.com/katalvlaran/wavepick/selector"
	"github.com/katalvlaran/wavepick/solution"
)

// driftCheckFrequency is how often the driver recomputes the cost from
// scratch, guarding against incremental-delta drift.
const driftCheckFrequency = 500

// Solve runs the Adaptive Simulated Annealing driver against
// inst until oracle reports no time remaining or the no-improvement ceiling
// is reached. seed drives every deterministic RNG stream the driver and its
// collaborators use. reg is optional; pass nil to skip metrics
// export.
func Solve(ctx context.Context, inst *instance.Instance, cfg config.Config, oracle TimeOracle, seed int64, reg *metrics.Registry) (*solution.Solution, Stats) {
	driverRNG := prng.New(seed)
	opRNG := prng.Derive(driverRNG, 1)
	flsRNG := prng.Derive(driverRNG, 2)
	relinkRNG := prng.Derive(driverRNG, 3)
	perturbRNG := prng.Derive(driverRNG, 4)

	weights := cfg.Weights.SolutionWeights()
	current := buildInitial(inst, weights, cfg.Driver.InitialOrderFraction, driverRNG)
	// Drop orders that can never be covered before the loop wastes
	// iterations on them: the same eviction the loop itself would
	// eventually apply, just run eagerly once up front.
	current.RemoveInfeasibleOrders()
	if !current.IsFeasible() {
		current.Repair()
	}

	ops := defaultOperators()
	sel, err := selector.New(ops, cfg.Bandit.SelectorConfig(), opRNG)
	if err != nil {
		// ops is never empty (defaultOperators returns a fixed 10-element
		// slice), so this is a contract violation, not a recoverable case.
		panic(err)
	}

	archive := intensify.NewArchive(cfg.Elite.Size)
	flsCfg := cfg.FLS.FLSConfig()

	best := current.DeepCopy()
	bestCost := best.CurrentCost()
	bestInBounds := best.WaveSizeInBounds()

	var stats Stats
	stats.Components = len(inst.ConnectedComponents())
	noImprove := 0
	iter := 0

	for {
		if oracle() <= 0 {
			stats.Termination = "time_exhausted"
			break
		}
		if ctx.Err() != nil {
			stats.Termination = "context_cancelled"
			break
		}
		if noImprove >= cfg.Driver.MaxNoImprovementIterations {
			stats.Termination = "stagnation"
			break
		}

		iter++
		stats.Iterations++
		if reg != nil {
			reg.IncIteration()
		}

		var accepted, improved bool
		current, accepted = applyOperator(current, sel, opRNG, &stats, cfg.Driver.TemperatureScaleFactor)
		improved = accepted && stats.lastDelta < 0

		if iter%driftCheckFrequency == 0 {
			current.Drift()
		}

		if cfg.Driver.EliteUpdateFrequency > 0 && iter%cfg.Driver.EliteUpdateFrequency == 0 {
			offerElite(archive, current, reg, &stats)
			offerElite(archive, best, reg, &stats)
		}

		if shouldIntensify(iter, noImprove, cfg) {
			var fired bool
			current, fired = intensifyOnce(ctx, current, flsCfg, noImprove, cfg, flsRNG)
			improved = improved || fired
			stats.Intensifications++
			if reg != nil {
				reg.IncIntensification()
			}
		}

		if shouldPathRelink(iter, noImprove, cfg, archive) {
			if relinked := intensify.ElitePathRelinking(ctx, archive, flsCfg, relinkRNG); relinked != nil && relinked.CurrentCost() < current.CurrentCost() {
				current = relinked
				improved = true
			}
			stats.PathRelinks++
			if reg != nil {
				reg.IncPathRelink()
			}
		}

		if float64(noImprove) > 0.8*float64(cfg.Driver.MaxNoImprovementIterations) {
			tabu := intensify.MemeticTabu(ctx, current, cfg.Tabu.MaxIterations, cfg.Tabu.Tenure)
			stats.TabuRuns++
			if reg != nil {
				reg.IncTabuRun()
			}
			if tabu.CurrentCost() < current.CurrentCost() {
				current = tabu
				improved = true
			}
		}

		// A feasible solution within the wave-size bounds replaces a best
		// outside them; otherwise the lower cost wins.
		inBounds := current.WaveSizeInBounds()
		if current.IsFeasible() && ((inBounds && !bestInBounds) ||
			(inBounds == bestInBounds && current.CurrentCost() < bestCost)) {
			best = current.DeepCopy()
			bestCost = best.CurrentCost()
			bestInBounds = inBounds
			noImprove = 0
		} else if !improved {
			noImprove++
			if cfg.Driver.PerturbationFrequency > 0 && noImprove%cfg.Driver.PerturbationFrequency == 0 {
				strongPerturbation(current, cfg.Driver.PerturbationStrength, perturbRNG)
				stats.Perturbations++
				if reg != nil {
					reg.IncPerturbation()
				}
				current.Drift()
			}
		}

		if reg != nil {
			reg.SetCurrentCost(current.CurrentCost())
			reg.SetBestCost(bestCost)
			reg.SetBestSolutionStats(best.NumChosenAisles(), best.TotalUnitsPicked())
			reg.SetArchiveSize(archive.Len())
			reg.ExportBanditSnapshots(sel.Snapshot())
		}
	}

	if stats.Termination == "" {
		stats.Termination = "stagnation"
	}
	stats.BestCost = bestCost
	stats.FinalNoImprove = noImprove
	return best, stats
}

// applyOperator asks sel for an operator, applies it to current, and
// feeds back the Metropolis-accepted outcome. A rejected move is rolled
// back by returning the pre-application backup in current's
// place, matching the classic SA contract that a rejected move leaves the
// working solution unchanged. Returns the (possibly rolled-back) solution
// and whether the move was accepted; stats.lastDelta records the realized
// delta for the caller's improvement check.
func applyOperator(current *solution.Solution, sel *selector.Selector, rng *rand.Rand, stats *Stats, temperatureScaleFactor float64) (*solution.Solution, bool) {
	idx, op := sel.Select()
	backup := current.DeepCopy()
	delta := op.Apply(current, rng)
	accepted := acceptMove(delta, current.CurrentCost(), backup.CurrentCost(), temperatureScaleFactor, rng)
	sel.Feedback(idx, delta, accepted)
	stats.lastDelta = delta

	if accepted {
		stats.Accepted++
		return current, true
	}
	stats.Rejected++
	return backup, false
}

// acceptMove is the Metropolis-like acceptance rule:
// unconditional accept on improvement, else accept with probability
// exp(-delta/(cost*temperatureScaleFactor)). referenceCost is the
// pre-move cost, used as the annealing temperature's cost scale so the
// probability is well-defined even when the post-move cost is non-finite
// (e.g. a move that emptied chosenOrders).
func acceptMove(delta, postCost, referenceCost, temperatureScaleFactor float64, rng *rand.Rand) bool {
	if delta < 0 {
		return true
	}
	scale := referenceCost
	if math.IsInf(scale, 1) || scale <= 0 {
		scale = postCost
	}
	if math.IsInf(scale, 1) || scale <= 0 {
		return false
	}
	scale *= temperatureScaleFactor
	if scale <= 0 {
		return false
	}
	p := math.Exp(-delta / scale)
	return rng.Float64() < p
}

// shouldIntensify triggers on a periodic cadence, or on stagnation past
// half the no-improvement ceiling.
func shouldIntensify(iter, noImprove int, cfg config.Config) bool {
	if cfg.Driver.IntensificationFrequency > 0 && iter%cfg.Driver.IntensificationFrequency == 0 {
		return true
	}
	return float64(noImprove) > float64(cfg.Driver.MaxNoImprovementIterations)/2
}

// intensifyOnce runs Focused Local Search on a copy of current (best
// improvement when deeply stagnated, noImprove past 75% of the ceiling,
// else first improvement) and adopts the result only if it is no worse
// than current, rolling back otherwise.
func intensifyOnce(ctx context.Context, current *solution.Solution, flsCfg intensify.FLSConfig, noImprove int, cfg config.Config, rng *rand.Rand) (*solution.Solution, bool) {
	runCfg := flsCfg
	if float64(noImprove) > 0.75*float64(cfg.Driver.MaxNoImprovementIterations) {
		runCfg.Mode = intensify.BestImprovement
	} else {
		runCfg.Mode = intensify.FirstImprovement
	}

	before := current.CurrentCost()
	working := current.DeepCopy()
	result := intensify.FocusedLocalSearch(ctx, working, runCfg, rng)
	if result.Best.CurrentCost() > before {
		return current, false // roll back: leave current untouched
	}
	return result.Best, result.Improved
}

// shouldPathRelink triggers on the configured cadence, or on deep
// stagnation, once the archive holds at least two elites.
func shouldPathRelink(iter, noImprove int, cfg config.Config, archive *intensify.Archive) bool {
	if archive.Len() < 2 {
		return false
	}
	if cfg.Driver.PathRelinkingFrequency > 0 && iter%cfg.Driver.PathRelinkingFrequency == 0 {
		return true
	}
	return float64(noImprove) > 0.7*float64(cfg.Driver.MaxNoImprovementIterations)
}

// offerElite offers s to archive (Offer deep-copies internally on
// admission) and records the outcome.
func offerElite(archive *intensify.Archive, s *solution.Solution, reg *metrics.Registry, stats *Stats) {
	accepted := archive.Offer(s)
	stats.EliteOffers++
	if accepted {
		stats.EliteAccepts++
	}
	if reg != nil {
		reg.IncEliteOffer(accepted)
	}
}

// strongPerturbation is the deep-stagnation escape: an LNS destroy/repair
// pass over both orders and aisles at strength rho. Both
// LNSOrder and LNSAisle are applied (rather than just one) so a "strong"
// perturbation actually reshuffles both halves of the solution; a
// single-category LNS at the same strength leaves the other category's
// local optimum completely undisturbed.
func strongPerturbation(current *solution.Solution, rho float64, rng *rand.Rand) {
	operators.LNSOrder{Rho: rho}.Apply(current, rng)
	operators.LNSAisle{Rho: rho}.Apply(current, rng)
}
