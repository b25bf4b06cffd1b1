package solution

import (
	"math"

	"github.com/katalvlaran/wavepick/instance"
)

// EvaluateCost performs a full recompute of the surrogate cost, ignoring any
// cached value:
//
//	cost(S) = Σ_{o∈orders(S)} pMissing·[o not fully covered]
//	        + cAisle·|aisles(S)|
//	        + wRatio·(|aisles(S)| / max(1,|orders(S)|))
//
// cost = +∞ if |orders(S)| = 0.
func (s *Solution) EvaluateCost() float64 {
	O := len(s.orderList)
	A := len(s.aisleList)
	if O == 0 {
		return math.Inf(1)
	}
	cost := s.weights.CAisle*float64(A) + s.ratioTerm(A, O)
	for _, o := range s.orderList {
		if !s.IsOrderCovered(o) {
			cost += s.weights.PMissing
		}
	}
	return cost
}

func (s *Solution) ratioTerm(A, O int) float64 {
	denom := O
	if denom < 1 {
		denom = 1
	}
	return s.weights.WRatio * float64(A) / float64(denom)
}

// CurrentCost returns the last computed cost, evaluating it fully on first
// access ("tagged unknown on construction until evaluated").
func (s *Solution) CurrentCost() float64 {
	if !s.costKnown {
		s.currentCost = s.EvaluateCost()
		s.costKnown = true
	}
	return s.currentCost
}

// Drift recomputes currentCost from scratch and returns the absolute
// difference against the previously cached (incrementally accumulated)
// value, used by the ASA driver's periodic drift check.
func (s *Solution) Drift() float64 {
	prev := s.currentCost
	hadValue := s.costKnown
	fresh := s.EvaluateCost()
	s.currentCost = fresh
	s.costKnown = true
	if !hadValue {
		return 0
	}
	d := fresh - prev
	if d < 0 {
		d = -d
	}
	return d
}

// bump applies delta to currentCost (if known) and invalidates the delta
// caches. Both order and aisle caches share one stateVersion: an order
// mutation changes |orders(S)| which shifts the ratio term for every cached
// aisle delta too (and vice versa for coverage after an aisle mutation), so
// splitting invalidation strictly "orders cache on order changes, aisles
// cache on aisle changes" would let a stale cross-category entry return a
// wrong delta. A single shared version is the simplest scheme that keeps
// every delta exact.
func (s *Solution) bump(delta float64) {
	if s.costKnown {
		s.currentCost += delta
		// A +∞ cost (no chosen orders) cannot return to a finite value by
		// adding deltas, so it is recomputed on the next CurrentCost call.
		if math.IsInf(s.currentCost, 0) || math.IsNaN(s.currentCost) {
			s.costKnown = false
		}
	}
	s.invalidateAll()
}

func (s *Solution) bumpOrders(delta float64) { s.bump(delta) }
func (s *Solution) bumpAisles(delta float64) { s.bump(delta) }

func (s *Solution) invalidateAll() {
	s.cacheMu.Lock()
	s.stateVersion++
	clear(s.orderDeltaCache)
	clear(s.aisleDeltaCache)
	s.cacheMu.Unlock()
}

// cachedOrderDelta returns (value, true) if orderDeltaCache holds a
// current-version entry for o, else (0, false). Safe for concurrent callers.
func (s *Solution) cachedOrderDelta(o int) (float64, bool) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	v, ok := s.orderDeltaCache[o]
	if !ok || v.version != s.stateVersion {
		return 0, false
	}
	return v.value, true
}

func (s *Solution) storeOrderDelta(o int, value float64) {
	s.cacheMu.Lock()
	s.orderDeltaCache[o] = cachedDelta{version: s.stateVersion, value: value}
	s.cacheMu.Unlock()
}

func (s *Solution) cachedAisleDelta(a int) (float64, bool) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	v, ok := s.aisleDeltaCache[a]
	if !ok || v.version != s.stateVersion {
		return 0, false
	}
	return v.value, true
}

func (s *Solution) storeAisleDelta(a int, value float64) {
	s.cacheMu.Lock()
	s.aisleDeltaCache[a] = cachedDelta{version: s.stateVersion, value: value}
	s.cacheMu.Unlock()
}

// DeltaAddOrder returns the exact change in cost(S) from adding o, or 0 if o
// is already chosen.
func (s *Solution) DeltaAddOrder(o int) float64 {
	if s.chosenOrder[o] {
		return 0
	}
	if v, ok := s.cachedOrderDelta(o); ok {
		return v
	}
	O := len(s.orderList)
	A := len(s.aisleList)
	missing := 0.0
	if !s.IsOrderCovered(o) {
		missing = s.weights.PMissing
	}
	delta := missing + (s.ratioTerm(A, O+1) - s.ratioTerm(A, O))
	s.storeOrderDelta(o, delta)
	return delta
}

// DeltaRemoveOrder returns the exact change in cost(S) from removing o, 0 if
// o is not chosen, or +∞ if removal would empty chosenOrders.
func (s *Solution) DeltaRemoveOrder(o int) float64 {
	if !s.chosenOrder[o] {
		return 0
	}
	O := len(s.orderList)
	if O == 1 {
		return math.Inf(1)
	}
	if v, ok := s.cachedOrderDelta(o); ok {
		return v
	}
	A := len(s.aisleList)
	missing := 0.0
	if !s.IsOrderCovered(o) {
		missing = -s.weights.PMissing
	}
	delta := missing + (s.ratioTerm(A, O-1) - s.ratioTerm(A, O))
	s.storeOrderDelta(o, delta)
	return delta
}

// DeltaSwapOrders returns DeltaRemove(contained)+DeltaAdd(notContained) when
// exactly one of o1,o2 is chosen, 0 otherwise. The swap
// leaves |orders(S)| unchanged, so the ratio term contributes 0 net; only
// the two orders' coverage-penalty transitions can move the cost.
func (s *Solution) DeltaSwapOrders(o1, o2 int) float64 {
	in1, in2 := s.chosenOrder[o1], s.chosenOrder[o2]
	if in1 == in2 {
		return 0
	}
	contained, notContained := o1, o2
	if in2 {
		contained, notContained = o2, o1
	}
	delta := 0.0
	if !s.IsOrderCovered(contained) {
		delta -= s.weights.PMissing
	}
	if !s.IsOrderCovered(notContained) {
		delta += s.weights.PMissing
	}
	return delta
}

// DeltaAddAisle returns the exact change in cost(S) from adding a, or 0 if a
// is already chosen.
func (s *Solution) DeltaAddAisle(a int) float64 {
	if s.chosenAisle[a] {
		return 0
	}
	if v, ok := s.cachedAisleDelta(a); ok {
		return v
	}
	A := len(s.aisleList)
	O := len(s.orderList)
	aisle := s.Inst.Aisle(a)
	missing := 0.0
	for _, o := range s.Inst.AisleToOrders(a) {
		if !s.chosenOrder[o] {
			continue
		}
		du := s.coverageTransition(o, nil, aisle)
		missing += s.missingDeltaFor(o, du)
	}
	delta := s.weights.CAisle + (s.ratioTerm(A+1, O) - s.ratioTerm(A, O)) + missing
	s.storeAisleDelta(a, delta)
	return delta
}

// DeltaRemoveAisle returns the exact change in cost(S) from removing a, or 0
// if a is not chosen.
func (s *Solution) DeltaRemoveAisle(a int) float64 {
	if !s.chosenAisle[a] {
		return 0
	}
	if v, ok := s.cachedAisleDelta(a); ok {
		return v
	}
	A := len(s.aisleList)
	O := len(s.orderList)
	aisle := s.Inst.Aisle(a)
	missing := 0.0
	for _, o := range s.Inst.AisleToOrders(a) {
		if !s.chosenOrder[o] {
			continue
		}
		du := s.coverageTransition(o, aisle, nil)
		missing += s.missingDeltaFor(o, du)
	}
	delta := -s.weights.CAisle + (s.ratioTerm(A-1, O) - s.ratioTerm(A, O)) + missing
	s.storeAisleDelta(a, delta)
	return delta
}

// DeltaSwapAisle returns deltaRemoveAisle(aRemove) evaluated in the current
// state, composed with deltaAddAisle(aAdd) evaluated in the state after the
// simulated removal, without mutating the Solution.
//
// Because final coverage counts only depend on the final set of chosen
// aisles, not on the order in which they were added/removed, the
// per-order coverage-penalty transition can be computed directly from the
// final state via coverageTransition(o, aRemove, aAdd) rather than two
// sequential simulated states. This gives the identical value (the two
// telescoping deltas sum to exactly the same final-minus-initial
// difference) with one pass instead of two.
func (s *Solution) DeltaSwapAisle(aRemove, aAdd int) float64 {
	if aRemove == aAdd {
		return 0
	}
	A := len(s.aisleList) // unchanged: one removed, one added
	O := len(s.orderList)
	removeAisle := s.Inst.Aisle(aRemove)
	addAisle := s.Inst.Aisle(aAdd)

	affected := unionOrders(s.Inst.AisleToOrders(aRemove), s.Inst.AisleToOrders(aAdd))
	missing := 0.0
	for _, o := range affected {
		if !s.chosenOrder[o] {
			continue
		}
		du := s.coverageTransition(o, removeAisle, addAisle)
		missing += s.missingDeltaFor(o, du)
	}
	// cAisle and ratio terms are both a function of A alone, and A is
	// unchanged by a swap, so their net contribution is exactly 0.
	_ = A
	_ = O
	return missing
}

// missingDeltaFor returns the pMissing contribution change for order o given
// du, the net change in its uncovered-position count.
func (s *Solution) missingDeltaFor(o int, du int32) float64 {
	if du == 0 {
		return 0
	}
	before := s.uncovered[o]
	after := before + du
	switch {
	case before == 0 && after > 0:
		return s.weights.PMissing
	case before > 0 && after == 0:
		return -s.weights.PMissing
	default:
		return 0
	}
}

// coverageTransition returns the net change in order o's uncovered-position
// count if removeAisle (currently chosen, or nil) were removed and addAisle
// (currently unchosen, or nil) were added. Only items order o demands that
// either aisle stocks can change coverage[o][*]; all other positions are
// provably unaffected.
func (s *Solution) coverageTransition(o int, removeAisle, addAisle *instance.Aisle) int32 {
	ord := s.Inst.Order(o)
	touched := make(map[int]int32, 4)
	if removeAisle != nil {
		for _, it := range removeAisle.Items {
			if pos, ok := ord.PositionOf(it.ItemID); ok {
				touched[pos]--
			}
		}
	}
	if addAisle != nil {
		for _, it := range addAisle.Items {
			if pos, ok := ord.PositionOf(it.ItemID); ok {
				touched[pos]++
			}
		}
	}
	var du int32
	for pos, net := range touched {
		if net == 0 {
			continue
		}
		old := s.coverage[o][pos]
		after := old + net
		switch {
		case old == 0 && after > 0:
			du--
		case old > 0 && after == 0:
			du++
		}
	}
	return du
}

func unionOrders(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, x := range a {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	for _, x := range b {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}
