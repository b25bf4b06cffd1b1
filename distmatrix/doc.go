// Package distmatrix is a small dense symmetric distance matrix with flat
// row-major storage, specialized to the elite archive's pairwise-distance
// bookkeeping: it tracks, for a fixed-capacity set of elite solutions, the
// distance between every pair so admission can score a candidate's
// diversity in O(K) rather than O(K²).
package distmatrix
