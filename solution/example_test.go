package solution_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wavepick/instance"
	"github.com/katalvlaran/wavepick/solution"
)

// ExampleSolution_Repair covers a freshly chosen order via greedy set
// cover: the order demands two items, each stocked by a different aisle,
// so both aisles end up in the solution.
func ExampleSolution_Repair() {
	ins, err := instance.Parse(strings.NewReader("1 2 2\n2 0 2 1 2\n1 0 2\n1 1 2\n4 4\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s := solution.New(ins)
	s.ApplyAddOrder(0)
	fmt.Println("feasible before:", s.IsFeasible())

	s.Repair()
	fmt.Println("feasible after:", s.IsFeasible())
	fmt.Println("aisles visited:", s.NumChosenAisles())
	fmt.Printf("objective: %.1f\n", s.Objective())
	// Output:
	// feasible before: false
	// feasible after: true
	// aisles visited: 2
	// objective: 2.0
}

// ExampleSolution_DeltaAddAisle shows delta evaluation: the delta quoted
// before a move equals the realized cost change after applying it.
func ExampleSolution_DeltaAddAisle() {
	ins, err := instance.Parse(strings.NewReader("1 2 2\n2 0 2 1 2\n1 0 2\n1 1 2\n4 4\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0)

	before := s.CurrentCost()
	delta := s.DeltaAddAisle(1) // covers the missing item: drops the penalty
	s.ApplyAddAisle(1)
	fmt.Printf("delta: %.1f\n", delta)
	fmt.Printf("exact: %v\n", s.CurrentCost()-before == delta)
	// Output:
	// delta: -940.0
	// exact: true
}
