package selector

import (
	"math"
	"sync/atomic"
)

// Strategy selects which arm-picking rule the Selector applies.
type Strategy int

const (
	UCB1 Strategy = iota
	EpsilonGreedy
	Roulette
)

// Config holds the bandit's tunable parameters.
type Config struct {
	Strategy        Strategy
	UCBConst        float64 // default √2
	Epsilon         float64 // default 0.1
	UpdateFrequency int     // default 100
}

// DefaultConfig returns the shipped defaults.
func DefaultConfig() Config {
	return Config{
		Strategy:        UCB1,
		UCBConst:        math.Sqrt2,
		Epsilon:         0.1,
		UpdateFrequency: 100,
	}
}

// Stats is one operator's running bandit statistics. Uses/Successes/reward
// accumulation are lock-free ("counters are atomic").
type Stats struct {
	uses          atomic.Int64
	successes     atomic.Int64
	sumRewardBits atomic.Uint64
}

func (s *Stats) addReward(r float64) {
	for {
		old := s.sumRewardBits.Load()
		next := math.Float64bits(math.Float64frombits(old) + r)
		if s.sumRewardBits.CompareAndSwap(old, next) {
			return
		}
	}
}

// Uses returns the number of times this operator was fed back.
func (s *Stats) Uses() int64 { return s.uses.Load() }

// Successes returns the number of feedbacks counted as a success.
func (s *Stats) Successes() int64 { return s.successes.Load() }

// SumReward returns the accumulated reward.
func (s *Stats) SumReward() float64 { return math.Float64frombits(s.sumRewardBits.Load()) }

// MeanReward returns SumReward()/Uses(), or 0 if never used.
func (s *Stats) MeanReward() float64 {
	u := s.uses.Load()
	if u == 0 {
		return 0
	}
	return s.SumReward() / float64(u)
}

// Snapshot is a point-in-time, race-free read of one operator's stats,
// for diagnostics and metrics export.
type Snapshot struct {
	Name       string
	Uses       int64
	Successes  int64
	MeanReward float64
	Score      float64
}
