package solution

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MoveKind tags which delta function a BatchRequest resolves to.
type MoveKind int

const (
	MoveAddOrder MoveKind = iota
	MoveRemoveOrder
	MoveAddAisle
	MoveRemoveAisle
	MoveSwapAisle
	MoveSwapOrders
)

// BatchRequest is one candidate move to evaluate against a shared,
// read-only Solution snapshot.
type BatchRequest struct {
	Kind MoveKind
	A    int // primary id: the order/aisle to act on, or the one to remove for swaps
	B    int // secondary id: the order/aisle to add for swaps; unused otherwise
}

// BatchResult pairs a request's index with its evaluated delta.
type BatchResult struct {
	Index int
	Delta float64
}

// EvaluateBatch evaluates every request concurrently against s, bounded to
// maxWorkers in flight. Every delta function it calls reads chosenOrder/
// chosenAisle/coverage/uncovered/the delta caches but never mutates the
// Solution, so concurrent evaluation is race-free as long as no Apply*
// call happens concurrently with EvaluateBatch; the caller (the ASA
// driver) owns that contract.
//
// maxWorkers <= 0 means unbounded (one goroutine per request).
func (s *Solution) EvaluateBatch(ctx context.Context, reqs []BatchRequest, maxWorkers int) ([]BatchResult, error) {
	results := make([]BatchResult, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	if maxWorkers > 0 {
		g.SetLimit(maxWorkers)
	}

	for i, r := range reqs {
		i, r := i, r
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = BatchResult{Index: i, Delta: s.deltaFor(r)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// deltaFor dispatches a single BatchRequest to its delta function.
func (s *Solution) deltaFor(r BatchRequest) float64 {
	switch r.Kind {
	case MoveAddOrder:
		return s.DeltaAddOrder(r.A)
	case MoveRemoveOrder:
		return s.DeltaRemoveOrder(r.A)
	case MoveAddAisle:
		return s.DeltaAddAisle(r.A)
	case MoveRemoveAisle:
		return s.DeltaRemoveAisle(r.A)
	case MoveSwapAisle:
		return s.DeltaSwapAisle(r.A, r.B)
	case MoveSwapOrders:
		return s.DeltaSwapOrders(r.A, r.B)
	default:
		return 0
	}
}
