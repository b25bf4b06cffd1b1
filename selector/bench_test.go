package selector_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/wavepick/operators"
	"github.com/katalvlaran/wavepick/selector"
)

// benchOps is a 10-arm set with one strictly improving arm, the shape the
// driver presents to the bandit.
func benchOps() []operators.Operator {
	ops := make([]operators.Operator, 10)
	for i := range ops {
		delta := 0.0
		if i == 3 {
			delta = -1
		}
		ops[i] = fakeOp{name: fmt.Sprintf("op%d", i), delta: delta}
	}
	return ops
}

func BenchmarkSelectFeedback(b *testing.B) {
	b.ReportAllocs()
	strategies := []struct {
		name string
		cfg  selector.Config
	}{
		{"ucb1", selector.DefaultConfig()},
		{"epsilon_greedy", selector.Config{Strategy: selector.EpsilonGreedy, Epsilon: 0.1, UpdateFrequency: 100}},
		{"roulette", selector.Config{Strategy: selector.Roulette, UpdateFrequency: 100}},
	}
	for _, st := range strategies {
		b.Run(st.name, func(b *testing.B) {
			sel, err := selector.New(benchOps(), st.cfg, rand.New(rand.NewSource(1)))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				idx, op := sel.Select()
				delta := op.Apply(nil, nil)
				sel.Feedback(idx, delta, delta <= 0)
			}
		})
	}
}
