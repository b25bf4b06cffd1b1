package solution

import "github.com/katalvlaran/wavepick/instance"

// ApplyAddOrder inserts o into chosenOrders if absent, updating currentCost
// by the exact delta. No-op if already chosen. Coverage is unaffected: it
// depends only on aisles.
func (s *Solution) ApplyAddOrder(o int) {
	if s.chosenOrder[o] {
		return
	}
	delta := s.DeltaAddOrder(o)
	s.chosenOrder[o] = true
	s.chosenOrderIdx[o] = len(s.orderList)
	s.orderList = append(s.orderList, o)
	s.bumpOrders(delta)
}

// ApplyRemoveOrder removes o from chosenOrders if present. No-op on an
// absent id.
func (s *Solution) ApplyRemoveOrder(o int) {
	if !s.chosenOrder[o] {
		return
	}
	delta := s.DeltaRemoveOrder(o)
	s.removeFromList(o, &s.orderList, s.chosenOrderIdx)
	s.chosenOrder[o] = false
	s.bumpOrders(delta)
}

// ApplyAddAisle inserts a into chosenAisles if absent, incrementing
// coverage[o][pos] for every order o adjacent to a (chosen or not) and
// every item pos aisle a stocks among o's demand.
func (s *Solution) ApplyAddAisle(a int) {
	if s.chosenAisle[a] {
		return
	}
	delta := s.DeltaAddAisle(a)
	aisle := s.Inst.Aisle(a)
	for _, o := range s.Inst.AisleToOrders(a) {
		s.addAisleCoverage(o, aisle)
	}
	s.chosenAisle[a] = true
	s.chosenAisleIdx[a] = len(s.aisleList)
	s.aisleList = append(s.aisleList, a)
	s.bumpAisles(delta)
}

// ApplyRemoveAisle removes a from chosenAisles if present, decrementing
// coverage symmetrically to ApplyAddAisle.
func (s *Solution) ApplyRemoveAisle(a int) {
	if !s.chosenAisle[a] {
		return
	}
	delta := s.DeltaRemoveAisle(a)
	aisle := s.Inst.Aisle(a)
	for _, o := range s.Inst.AisleToOrders(a) {
		s.removeAisleCoverage(o, aisle)
	}
	s.removeFromList(a, &s.aisleList, s.chosenAisleIdx)
	s.chosenAisle[a] = false
	s.bumpAisles(delta)
}

// addAisleCoverage increments coverage[o][pos] for every item pos that both
// order o demands and aisle stocks.
func (s *Solution) addAisleCoverage(o int, aisle *instance.Aisle) {
	ord := s.Inst.Order(o)
	for _, it := range aisle.Items {
		pos, ok := ord.PositionOf(it.ItemID)
		if !ok {
			continue
		}
		if s.coverage[o][pos] == 0 {
			s.uncovered[o]--
		}
		s.coverage[o][pos]++
	}
}

func (s *Solution) removeAisleCoverage(o int, aisle *instance.Aisle) {
	ord := s.Inst.Order(o)
	for _, it := range aisle.Items {
		pos, ok := ord.PositionOf(it.ItemID)
		if !ok {
			continue
		}
		s.coverage[o][pos]--
		if s.coverage[o][pos] == 0 {
			s.uncovered[o]++
		}
	}
}

// UpdateCoverage fully recomputes coverage from chosenAisles, restoring
// the coverage-consistency invariant unconditionally. Used after bulk
// operations and at drift-suspected points.
func (s *Solution) UpdateCoverage() {
	for o := range s.coverage {
		for pos := range s.coverage[o] {
			s.coverage[o][pos] = 0
		}
		s.uncovered[o] = int32(len(s.coverage[o]))
	}
	for _, a := range s.aisleList {
		aisle := s.Inst.Aisle(a)
		for _, o := range s.Inst.AisleToOrders(a) {
			ord := s.Inst.Order(o)
			for _, it := range aisle.Items {
				pos, ok := ord.PositionOf(it.ItemID)
				if !ok {
					continue
				}
				if s.coverage[o][pos] == 0 {
					s.uncovered[o]--
				}
				s.coverage[o][pos]++
			}
		}
	}
	s.invalidateAll()
	s.costKnown = false
}

// DeepCopy produces an independent Solution with identical chosen sets and
// coverage counters. The Instance pointer is shared (non-owning).
func (s *Solution) DeepCopy() *Solution {
	cp := &Solution{
		Inst:            s.Inst,
		weights:         s.weights,
		chosenOrder:     append([]bool(nil), s.chosenOrder...),
		chosenOrderIdx:  append([]int(nil), s.chosenOrderIdx...),
		orderList:       append([]int(nil), s.orderList...),
		chosenAisle:     append([]bool(nil), s.chosenAisle...),
		chosenAisleIdx:  append([]int(nil), s.chosenAisleIdx...),
		aisleList:       append([]int(nil), s.aisleList...),
		uncovered:       append([]int32(nil), s.uncovered...),
		currentCost:     s.currentCost,
		costKnown:       s.costKnown,
		orderDeltaCache: make(map[int]cachedDelta),
		aisleDeltaCache: make(map[int]cachedDelta),
	}
	cp.coverage = make([][]int32, len(s.coverage))
	for i, row := range s.coverage {
		cp.coverage[i] = append([]int32(nil), row...)
	}
	return cp
}

// Equals compares two solutions by instance identity and by the sets
// (chosenOrders, chosenAisles): set equality, independent of insertion order.
func (s *Solution) Equals(other *Solution) bool {
	if other == nil || s.Inst != other.Inst {
		return false
	}
	if len(s.orderList) != len(other.orderList) || len(s.aisleList) != len(other.aisleList) {
		return false
	}
	for o := range s.chosenOrder {
		if s.chosenOrder[o] != other.chosenOrder[o] {
			return false
		}
	}
	for a := range s.chosenAisle {
		if s.chosenAisle[a] != other.chosenAisle[a] {
			return false
		}
	}
	return true
}

// removeFromList deletes id from list (swap-with-last) and fixes up idx.
func (s *Solution) removeFromList(id int, list *[]int, idx []int) {
	l := *list
	pos := idx[id]
	last := len(l) - 1
	l[pos] = l[last]
	idx[l[pos]] = pos
	l = l[:last]
	idx[id] = -1
	*list = l
}
