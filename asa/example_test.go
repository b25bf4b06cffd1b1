package asa_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/wavepick/asa"
	"github.com/katalvlaran/wavepick/config"
	"github.com/katalvlaran/wavepick/instance"
)

// ExampleSolve drives the full solver on the smallest possible instance:
// one order demanding 3 units of one item, one aisle stocking 5 of it.
func ExampleSolve() {
	ins, err := instance.Parse(strings.NewReader("1 1 1\n1 0 3\n1 0 5\n3 3\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cfg := config.Default()
	cfg.Driver.MaxNoImprovementIterations = 50

	oracle := asa.WallClock(2 * time.Second)
	best, _ := asa.Solve(context.Background(), ins, cfg, oracle, 1, nil)

	fmt.Printf("objective: %.1f\n", best.Objective())
	fmt.Println("orders:", best.ChosenOrders())
	fmt.Println("aisles:", best.ChosenAisles())
	// Output:
	// objective: 3.0
	// orders: [0]
	// aisles: [0]
}
