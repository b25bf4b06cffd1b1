package solution_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/wavepick/instance"
	"github.com/katalvlaran/wavepick/solution"
	"github.com/stretchr/testify/require"
)

// twoAisleCoverText: one order needs two items,
// each stocked by a different aisle; neither aisle alone covers it.
const twoAisleCoverText = "1 2 2\n2 0 2 1 2\n1 0 2\n1 1 2\n4 4\n"

func mustParse(t *testing.T, text string) *instance.Instance {
	t.Helper()
	ins, err := instance.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return ins
}

func TestSolution_CoverageConsistency(t *testing.T) {
	ins := mustParse(t, twoAisleCoverText)
	s := solution.New(ins)

	s.ApplyAddOrder(0)
	require.False(t, s.IsOrderCovered(0))

	s.ApplyAddAisle(0)
	require.False(t, s.IsOrderCovered(0)) // still missing item 1

	s.ApplyAddAisle(1)
	require.True(t, s.IsOrderCovered(0))

	before := s.CurrentCost()
	s.UpdateCoverage() // full recompute must agree with incremental state
	require.True(t, s.IsOrderCovered(0))
	after := s.EvaluateCost()
	require.InDelta(t, before, after, 1e-9)
}

func TestSolution_DeltaCorrectness_AddRemoveOrder(t *testing.T) {
	// Two orders, so order 1 keeps the base cost finite (an empty order set
	// costs +∞) while order 0 is added and removed.
	ins := mustParse(t, "2 2 2\n2 0 2 1 2\n1 0 1\n1 0 2\n1 1 2\n3 5\n")
	s := solution.New(ins)
	s.ApplyAddAisle(0)
	s.ApplyAddAisle(1)
	s.ApplyAddOrder(1)

	base := s.CurrentCost()
	wantDelta := s.DeltaAddOrder(0)
	s.ApplyAddOrder(0)
	require.InDelta(t, base+wantDelta, s.CurrentCost(), 1e-9)
	require.InDelta(t, s.EvaluateCost(), s.CurrentCost(), 1e-9)

	base = s.CurrentCost()
	wantDelta = s.DeltaRemoveOrder(0)
	s.ApplyRemoveOrder(0)
	require.InDelta(t, base+wantDelta, s.CurrentCost(), 1e-9)
	require.InDelta(t, s.EvaluateCost(), s.CurrentCost(), 1e-9)
}

func TestSolution_DeltaCorrectness_AddRemoveAisle(t *testing.T) {
	ins := mustParse(t, twoAisleCoverText)
	s := solution.New(ins)
	s.ApplyAddOrder(0)

	base := s.CurrentCost()
	wantDelta := s.DeltaAddAisle(0)
	s.ApplyAddAisle(0)
	require.InDelta(t, base+wantDelta, s.CurrentCost(), 1e-9)
	require.InDelta(t, s.EvaluateCost(), s.CurrentCost(), 1e-9)

	base = s.CurrentCost()
	wantDelta = s.DeltaAddAisle(1)
	s.ApplyAddAisle(1)
	require.InDelta(t, base+wantDelta, s.CurrentCost(), 1e-9)
	require.InDelta(t, s.EvaluateCost(), s.CurrentCost(), 1e-9)

	base = s.CurrentCost()
	wantDelta = s.DeltaRemoveAisle(0)
	s.ApplyRemoveAisle(0)
	require.InDelta(t, base+wantDelta, s.CurrentCost(), 1e-9)
	require.InDelta(t, s.EvaluateCost(), s.CurrentCost(), 1e-9)
}

func TestSolution_DeltaSwapAisle_MatchesSequentialRemoveAdd(t *testing.T) {
	ins := mustParse(t, twoAisleCoverText)
	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0)

	// Simulate the swap on a scratch copy via sequential remove+add to get a
	// ground-truth delta, independent of DeltaSwapAisle's single-pass logic.
	scratch := s.DeepCopy()
	before := scratch.EvaluateCost()
	scratch.ApplyRemoveAisle(0)
	scratch.ApplyAddAisle(1)
	want := scratch.EvaluateCost() - before

	got := s.DeltaSwapAisle(0, 1)
	require.InDelta(t, want, got, 1e-9)
}

func TestSolution_DeltaSwapOrders_MatchesSequentialRemoveAdd(t *testing.T) {
	// Order 0 demands items 0 and 1, order 1 demands item 0 only; with just
	// aisle 0 chosen, order 0 is uncovered and order 1 is covered.
	text := "2 2 2\n2 0 2 1 2\n1 0 1\n1 0 2\n1 1 2\n3 5\n"
	ins := mustParse(t, text)
	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0)

	scratch := s.DeepCopy()
	before := scratch.EvaluateCost()
	scratch.ApplyAddOrder(1)
	scratch.ApplyRemoveOrder(0)
	want := scratch.EvaluateCost() - before

	require.InDelta(t, want, s.DeltaSwapOrders(0, 1), 1e-9)
	require.InDelta(t, want, s.DeltaSwapOrders(1, 0), 1e-9) // argument order is irrelevant

	// Both ids on the same side of the membership line: no swap, delta 0.
	require.Equal(t, 0.0, s.DeltaSwapOrders(0, 0))

	// The batch API dispatches the same delta.
	results, err := s.EvaluateBatch(context.Background(), []solution.BatchRequest{
		{Kind: solution.MoveSwapOrders, A: 0, B: 1},
	}, 1)
	require.NoError(t, err)
	require.InDelta(t, want, results[0].Delta, 1e-9)
}

func TestSolution_Idempotence(t *testing.T) {
	// Two orders, so order 1 exists in the instance but is never chosen.
	ins := mustParse(t, "2 2 2\n2 0 2 1 2\n1 0 1\n1 0 2\n1 1 2\n3 5\n")
	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0)

	cost := s.CurrentCost()
	s.ApplyAddOrder(0) // already present: no-op
	s.ApplyAddAisle(0) // already present: no-op
	require.InDelta(t, cost, s.CurrentCost(), 1e-9)

	s.ApplyRemoveOrder(1) // never present: no-op
	s.ApplyRemoveAisle(1) // never present: no-op
	require.InDelta(t, cost, s.CurrentCost(), 1e-9)
}

func TestSolution_RoundTrip(t *testing.T) {
	ins := mustParse(t, twoAisleCoverText)
	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0)
	s.ApplyAddAisle(1)

	before := s.DeepCopy()
	s.ApplyRemoveAisle(1)
	s.ApplyAddAisle(1)
	require.True(t, s.Equals(before))
	require.InDelta(t, before.CurrentCost(), s.CurrentCost(), 1e-9)
}

func TestSolution_Repair_GreedySetCover(t *testing.T) {
	ins := mustParse(t, twoAisleCoverText)
	s := solution.New(ins)
	s.ApplyAddOrder(0)

	require.False(t, s.IsFeasible())
	ok := s.Repair()
	require.True(t, ok)
	require.True(t, s.IsFeasible())
	require.True(t, s.ContainsAisle(0))
	require.True(t, s.ContainsAisle(1))
}

func TestSolution_Repair_PrunesRedundantAisle(t *testing.T) {
	// Single aisle stocks both items at once: both aisles are individually
	// sufficient, so Repair's prune pass should end with exactly one chosen.
	text := "1 2 3\n2 0 2 1 2\n2 0 2 1 2\n2 0 2 1 2\n4 4\n"
	ins := mustParse(t, text)
	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0)
	s.ApplyAddAisle(1)

	ok := s.Repair()
	require.True(t, ok)
	require.True(t, s.IsFeasible())
	require.Equal(t, 1, s.NumChosenAisles())
}

func TestSolution_RemoveInfeasibleOrders(t *testing.T) {
	ins := mustParse(t, twoAisleCoverText)
	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0) // only partial coverage

	removed := s.RemoveInfeasibleOrders()
	require.Equal(t, 1, removed)
	require.Equal(t, 0, s.NumChosenOrders())
}

func TestSolution_RemoveInfeasibleOrders_PerUnitEviction(t *testing.T) {
	// Order 0 demands 1 unit, order 1 demands 10; the only aisle stocks 3.
	// Presence-based coverage is satisfied for both, but order 1 can never
	// be met per-unit and must be evicted.
	text := "2 1 1\n1 0 1\n1 0 10\n1 0 3\n1 10\n"
	ins := mustParse(t, text)
	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddOrder(1)
	s.ApplyAddAisle(0)
	require.True(t, s.IsFeasible())

	removed := s.RemoveInfeasibleOrders()
	require.Equal(t, 1, removed)
	require.True(t, s.ContainsOrder(0))
	require.False(t, s.ContainsOrder(1))
	require.True(t, s.PerUnitFeasible())
	require.InDelta(t, 1.0, s.Objective(), 1e-9)
}

func TestSolution_PerUnitFeasible(t *testing.T) {
	// Order demands 3 units of item 0; aisle stocks only 2 -> presence-based
	// feasible but not per-unit feasible.
	text := "1 1 1\n1 0 3\n1 0 2\n1 1\n"
	ins := mustParse(t, text)
	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0)

	require.True(t, s.IsFeasible())
	require.False(t, s.PerUnitFeasible())
}

func TestSolution_EvaluateBatch(t *testing.T) {
	ins := mustParse(t, twoAisleCoverText)
	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.ApplyAddAisle(0)

	reqs := []solution.BatchRequest{
		{Kind: solution.MoveAddAisle, A: 1},
		{Kind: solution.MoveRemoveAisle, A: 0},
		{Kind: solution.MoveSwapAisle, A: 0, B: 1},
	}
	results, err := s.EvaluateBatch(context.Background(), reqs, 4)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.InDelta(t, s.DeltaAddAisle(1), results[0].Delta, 1e-9)
	require.InDelta(t, s.DeltaRemoveAisle(0), results[1].Delta, 1e-9)
	require.InDelta(t, s.DeltaSwapAisle(0, 1), results[2].Delta, 1e-9)
}
