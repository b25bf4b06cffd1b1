package intensify

import (
	"math"
	"sort"

	"github.com/katalvlaran/wavepick/distmatrix"
	"github.com/katalvlaran/wavepick/solution"
)

// DefaultCapacity is the Elite Archive's default size.
const DefaultCapacity = 5

// MinDistance is the diversity floor an admitted replacement must keep
// with every remaining resident when admitted on the quality-preserving
// branch of Offer.
const MinDistance = 0.2

// eliteWeight balances quality against diversity in the combined admission
// score ("w = 0.3").
const eliteWeight = 0.3

// Archive is the fixed-capacity Elite Archive. members and
// dist are kept index-aligned: members[i] corresponds to dist row/col i.
// Zero value is not usable; construct with NewArchive.
type Archive struct {
	capacity int
	members  []*solution.Solution
	dist     *distmatrix.Matrix
}

// NewArchive constructs an empty Archive with the given capacity.
func NewArchive(capacity int) *Archive {
	return &Archive{capacity: capacity, dist: distmatrix.New(capacity)}
}

// Len returns the number of resident solutions.
func (ar *Archive) Len() int { return len(ar.members) }

// Members returns a cost-ascending snapshot ("Keep archive
// sorted by cost ascending").
func (ar *Archive) Members() []*solution.Solution {
	out := append([]*solution.Solution(nil), ar.members...)
	sort.Slice(out, func(i, j int) bool { return out[i].CurrentCost() < out[j].CurrentCost() })
	return out
}

// quality is the admission qualityScore: -1/cost (higher is better, so a
// lower cost yields a score closer to zero from below).
func quality(s *solution.Solution) float64 { return -1.0 / s.CurrentCost() }

// jaccardDelta is |AΔB|/(|A|+|B|), 0 if both sets are empty.
func jaccardDelta(a, b []int) float64 {
	denom := len(a) + len(b)
	if denom == 0 {
		return 0
	}
	setA := make(map[int]bool, len(a))
	for _, x := range a {
		setA[x] = true
	}
	setB := make(map[int]bool, len(b))
	for _, x := range b {
		setB[x] = true
	}
	diff := 0
	for x := range setA {
		if !setB[x] {
			diff++
		}
	}
	for x := range setB {
		if !setA[x] {
			diff++
		}
	}
	return float64(diff) / float64(denom)
}

// distance is the weighted order/aisle Jaccard distance.
func distance(a, b *solution.Solution) float64 {
	return 0.4*jaccardDelta(a.ChosenOrders(), b.ChosenOrders()) + 0.6*jaccardDelta(a.ChosenAisles(), b.ChosenAisles())
}

// Offer proposes candidate for admission. Rejects infeasible solutions
// and exact duplicates. Accepts directly while under capacity;
// once full, replaces the lowest-scoring resident if candidate beats it on
// the combined quality/diversity score, or if candidate strictly improves
// quality while keeping every remaining pairwise distance >= MinDistance.
// Returns whether candidate was admitted.
func (ar *Archive) Offer(candidate *solution.Solution) bool {
	if !candidate.IsFeasible() {
		return false
	}
	for _, m := range ar.members {
		if m.Equals(candidate) {
			return false
		}
	}
	cand := candidate.DeepCopy()

	if len(ar.members) < ar.capacity {
		ar.append(cand)
		return true
	}

	minCandDist := math.Inf(1)
	for _, m := range ar.members {
		if d := distance(cand, m); d < minCandDist {
			minCandDist = d
		}
	}
	candScore := (1-eliteWeight)*quality(cand) + eliteWeight*minCandDist

	worstIdx, worstScore := -1, math.Inf(1)
	for i, m := range ar.members {
		score := (1-eliteWeight)*quality(m) + eliteWeight*ar.dist.RowMin(i)
		if score < worstScore {
			worstScore, worstIdx = score, i
		}
	}

	replace := candScore > worstScore
	if !replace && quality(cand) > quality(ar.members[worstIdx]) && minCandDist >= MinDistance {
		replace = true
	}
	if !replace {
		return false
	}

	ar.removeAt(worstIdx)
	ar.append(cand)
	return true
}

func (ar *Archive) append(s *solution.Solution) {
	ar.members = append(ar.members, s)
	ar.dist.Append(func(k int) float64 { return distance(s, ar.members[k]) })
}

func (ar *Archive) removeAt(i int) {
	ar.members = append(ar.members[:i], ar.members[i+1:]...)
	ar.dist.Remove(i)
}
