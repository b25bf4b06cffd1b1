// Package wavepick implements an Adaptive Simulated Annealing solver for
// the SBPO 2025 wave-picking problem: given a set of customer orders, a set
// of warehouse aisles, and a wave size window, pick a subset of orders and
// the aisles needed to fully cover them so as to maximize units picked per
// aisle visited.
//
// The module has no root-level API of its own; it is organized as a set
// of focused subpackages, each concern kept in its own directory:
//
//	instance/   — immutable problem data: orders, aisles, adjacency, the
//	              instance file reader
//	solution/   — the mutable working solution: incremental cost
//	              evaluation, feasibility validation, greedy repair
//	operators/  — the move operators the search applies to a solution
//	selector/   — the adaptive multi-armed bandit choosing among operators
//	intensify/  — focused local search, the elite archive, path relinking,
//	              and memetic tabu search
//	asa/        — the Adaptive Simulated Annealing driver tying the above
//	              together behind a wall-clock (or caller-supplied) budget
//	config/     — layered file/env/flag configuration for every tunable
//	metrics/    — optional Prometheus export of driver and bandit state
//	cmd/wavepick/ — the command-line entry point
//
// See cmd/wavepick for the runnable binary, or call asa.Solve directly to
// embed the solver in another program.
package wavepick
