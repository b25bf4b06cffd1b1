package selector_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wavepick/operators"
	"github.com/katalvlaran/wavepick/selector"
	"github.com/katalvlaran/wavepick/solution"
)

// constOp reports a fixed delta; it stands in for a real move operator so
// the example exercises only the bandit.
type constOp struct {
	name  string
	delta float64
}

func (c constOp) Name() string                                 { return c.name }
func (c constOp) Apply(*solution.Solution, *rand.Rand) float64 { return c.delta }

// ExampleSelector_Select runs UCB1 over two operators: one that always
// improves and one that never does. UCB1 tries each arm once, then the
// improving arm's mean reward dominates the exploration bonus.
func ExampleSelector_Select() {
	ops := []operators.Operator{
		constOp{name: "improve", delta: -1},
		constOp{name: "noop", delta: 0},
	}
	sel, err := selector.New(ops, selector.DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i := 0; i < 4; i++ {
		idx, op := sel.Select()
		delta := op.Apply(nil, nil)
		sel.Feedback(idx, delta, true)
		fmt.Println(op.Name())
	}
	// Output:
	// improve
	// noop
	// improve
	// improve
}
