// Package solution_test benchmarks the hot paths of the incremental
// evaluator and the set-cover repair over synthetic instances.
package solution_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/wavepick/instance"
	"github.com/katalvlaran/wavepick/solution"
)

// benchSizes are the order counts to benchmark; aisles scale at half that.
var benchSizes = []int{50, 100, 200}

// benchInstance builds a deterministic synthetic instance with n orders,
// n/2 aisles, and an item pool of n/4+1 items.
func benchInstance(n int) *instance.Instance {
	rng := rand.New(rand.NewSource(int64(n)))
	numItems := n/4 + 1

	orderCounts := make([]int, n)
	var orderFlat [][2]int
	for o := 0; o < n; o++ {
		k := 1 + rng.Intn(3)
		orderCounts[o] = k
		for j := 0; j < k; j++ {
			orderFlat = append(orderFlat, [2]int{rng.Intn(numItems), 1 + rng.Intn(5)})
		}
	}

	m := n / 2
	aisleCounts := make([]int, m)
	var aisleFlat [][2]int
	for a := 0; a < m; a++ {
		l := 2 + rng.Intn(4)
		aisleCounts[a] = l
		for j := 0; j < l; j++ {
			aisleFlat = append(aisleFlat, [2]int{rng.Intn(numItems), 1 + rng.Intn(9)})
		}
	}

	ins, err := instance.NewInstance(numItems, orderFlat, aisleFlat, orderCounts, aisleCounts, 0, 1<<30)
	if err != nil {
		panic(err)
	}
	return ins
}

// benchSolution seeds half the orders and repairs, giving every benchmark a
// realistic mid-search state.
func benchSolution(ins *instance.Instance) *solution.Solution {
	s := solution.New(ins)
	for o := 0; o < ins.NumOrders(); o += 2 {
		s.ApplyAddOrder(o)
	}
	s.Repair()
	return s
}

func BenchmarkEvaluateCost(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		s := benchSolution(benchInstance(n))
		b.Run(fmt.Sprintf("orders=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = s.EvaluateCost()
			}
		})
	}
}

func BenchmarkApplyAddRemoveAisle(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		s := benchSolution(benchInstance(n))
		// An aisle outside the repaired cover, if any; fall back to 0.
		target := 0
		for a := 0; a < s.Inst.NumAisles(); a++ {
			if !s.ContainsAisle(a) {
				target = a
				break
			}
		}
		b.Run(fmt.Sprintf("orders=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s.ApplyAddAisle(target)
				s.ApplyRemoveAisle(target)
			}
		})
	}
}

func BenchmarkRepair(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		ins := benchInstance(n)
		broken := solution.New(ins)
		for o := 0; o < ins.NumOrders(); o += 2 {
			broken.ApplyAddOrder(o)
		}
		b.Run(fmt.Sprintf("orders=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s := broken.DeepCopy() // includes the copy; repair dominates
				s.Repair()
			}
		})
	}
}
