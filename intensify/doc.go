// Package intensify implements the search's intensification phases over
// solution.Solution: Focused Local Search (VND), Path Relinking, the Elite
// Archive, Memetic Tabu Intensification, and Elite Path Relinking. Each
// phase is a free function taking a *solution.Solution (or a pair) and
// returning the best solution it found, checking ctx cancellation between
// sub-iterations.
package intensify
