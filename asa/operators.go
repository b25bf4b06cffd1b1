package asa

import "github.com/katalvlaran/wavepick/operators"

// defaultOperators is the fixed operator set the bandit selects over:
// the basic add/remove pair for orders and aisles, the
// single- and multi-element swaps, small-neighborhood LNS destroy/repair,
// and the objective-focused reinsertion operator.
func defaultOperators() []operators.Operator {
	return []operators.Operator{
		operators.AddOrder{},
		operators.RemoveOrder{},
		operators.AddAisle{},
		operators.RemoveAisle{},
		operators.SwapAisle{},
		operators.SwapOrder{},
		operators.MultiSwapAisle{K: 2},
		operators.LNSOrder{Rho: 0.1},
		operators.LNSAisle{Rho: 0.1},
		operators.ObjectiveFocused{Lambda: 0.2},
	}
}
