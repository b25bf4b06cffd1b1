// Package operators implements the move operators of the wave-picking
// adaptive search: stateless behavior objects that mutate a
// solution.Solution in place and report the realized change in surrogate
// cost. Each operator is a plain data record carrying its own parameters
// (ρ, k, λ) rather than a node in an inheritance tree, matching the
// tagged-variant style the evaluator/repair layer already uses for move
// application: a small struct plus free functions, not a class hierarchy.
package operators
