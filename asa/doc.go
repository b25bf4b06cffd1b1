// Package asa implements the Adaptive Simulated Annealing driver: the
// outer metaheuristic loop that selects and applies move operators,
// accepts or rejects them with a Metropolis-like rule, and
// periodically calls into focused local search, elite path relinking, and
// memetic tabu intensification, all against a wall-clock or caller-supplied
// time oracle.
//
// The driver keeps no global mutable state: every counter it tracks lives
// on the driver-owned Stats struct returned from Solve, and every random
// stream derives from the single seed passed in.
package asa
