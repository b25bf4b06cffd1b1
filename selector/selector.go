package selector

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/wavepick/operators"
)

// Selector is the adaptive multi-armed bandit over a fixed operator set.
// Zero value is not usable; construct with New.
type Selector struct {
	ops   []operators.Operator
	stats []Stats
	cfg   Config
	rng   *rand.Rand

	totalUses atomic.Int64

	// mu guards probs, recomputed by updateWeights and read by Select under
	// Roulette. The writer section is short: one slice assignment.
	mu    sync.RWMutex
	probs []float64
}

// New constructs a Selector over ops with cfg. rng drives UCB1 tie-breaks,
// ε-greedy exploration, and Roulette sampling.
func New(ops []operators.Operator, cfg Config, rng *rand.Rand) (*Selector, error) {
	if len(ops) == 0 {
		return nil, ErrNoOperators
	}
	sel := &Selector{
		ops:   ops,
		stats: make([]Stats, len(ops)),
		cfg:   cfg,
		rng:   rng,
		probs: make([]float64, len(ops)),
	}
	uniform := 1.0 / float64(len(ops))
	for i := range sel.probs {
		sel.probs[i] = uniform
	}
	return sel, nil
}

// Select picks an operator index and returns it alongside the operator.
func (sel *Selector) Select() (int, operators.Operator) {
	var idx int
	switch sel.cfg.Strategy {
	case EpsilonGreedy:
		idx = sel.selectEpsilonGreedy()
	case Roulette:
		idx = sel.selectRoulette()
	default:
		idx = sel.selectUCB1()
	}
	return idx, sel.ops[idx]
}

func (sel *Selector) selectUCB1() int {
	for i := range sel.stats {
		if sel.stats[i].Uses() == 0 {
			return i
		}
	}
	logN := math.Log(float64(sel.totalUses.Load()))
	best, bestScore := 0, math.Inf(-1)
	for i := range sel.stats {
		u := float64(sel.stats[i].Uses())
		score := sel.stats[i].MeanReward() + sel.cfg.UCBConst*math.Sqrt(logN/u)
		if score > bestScore {
			bestScore, best = score, i
		}
	}
	return best
}

func (sel *Selector) selectEpsilonGreedy() int {
	if sel.rng.Float64() < sel.cfg.Epsilon {
		return sel.rng.Intn(len(sel.ops))
	}
	best, bestMean := 0, math.Inf(-1)
	for i := range sel.stats {
		m := sel.stats[i].MeanReward()
		if m > bestMean {
			bestMean, best = m, i
		}
	}
	return best
}

func (sel *Selector) selectRoulette() int {
	sel.mu.RLock()
	probs := sel.probs
	sel.mu.RUnlock()

	r := sel.rng.Float64()
	cum := 0.0
	for i, p := range probs {
		cum += p
		if r <= cum {
			return i
		}
	}
	return len(probs) - 1
}

// Feedback records the outcome of applying the operator at idx: a reward of
// 1.0 on improvement (delta<0), 0.1 on accept-without-improvement, else 0.
// Every UpdateFrequency feedbacks, probabilities are recomputed for
// Roulette.
func (sel *Selector) Feedback(idx int, delta float64, accepted bool) {
	st := &sel.stats[idx]
	st.uses.Add(1)
	if delta < 0 || accepted {
		st.successes.Add(1)
		reward := 0.1
		if delta < 0 {
			reward = 1.0
		}
		st.addReward(reward)
	}

	n := sel.totalUses.Add(1)
	if sel.cfg.UpdateFrequency > 0 && n%int64(sel.cfg.UpdateFrequency) == 0 {
		sel.updateWeights()
	}
}

// updateWeights recomputes the Roulette probability table from current
// mean rewards, shifting the minimum to zero and normalizing; falls back
// to uniform if the shifted total is non-positive.
func (sel *Selector) updateWeights() {
	means := make([]float64, len(sel.stats))
	minMean := math.Inf(1)
	for i := range sel.stats {
		means[i] = sel.stats[i].MeanReward()
		if means[i] < minMean {
			minMean = means[i]
		}
	}
	offset := 0.0
	if minMean < 0 {
		offset = -minMean
	}
	total := 0.0
	shifted := make([]float64, len(means))
	for i, m := range means {
		shifted[i] = m + offset
		total += shifted[i]
	}

	next := make([]float64, len(means))
	if total <= 0 {
		uniform := 1.0 / float64(len(means))
		for i := range next {
			next[i] = uniform
		}
	} else {
		for i, v := range shifted {
			next[i] = v / total
		}
	}

	sel.mu.Lock()
	sel.probs = next
	sel.mu.Unlock()
}

// Snapshot returns a race-free copy of every operator's current stats.
func (sel *Selector) Snapshot() []Snapshot {
	sel.mu.RLock()
	probs := sel.probs
	sel.mu.RUnlock()

	out := make([]Snapshot, len(sel.ops))
	for i := range sel.ops {
		out[i] = Snapshot{
			Name:       sel.ops[i].Name(),
			Uses:       sel.stats[i].Uses(),
			Successes:  sel.stats[i].Successes(),
			MeanReward: sel.stats[i].MeanReward(),
			Score:      probs[i],
		}
	}
	return out
}
