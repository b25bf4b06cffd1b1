// Package solution implements the mutable working solution for the
// wave-picking adaptive search: chosen orders/aisles, per-(order,item)
// coverage bookkeeping, the delta-evaluated surrogate cost, and the
// set-cover-based validation/repair layer.
//
// These three concerns (state, evaluator, repair) live in one package:
// they share the Solution's internal coverage counters and cannot be
// evaluated independently of each other, so a move operator that imports
// solution needs all three at once.
//
// Solution owns its sets and coverage counters exclusively; it holds a
// non-owning pointer to its instance.Instance. A Solution is not
// goroutine-safe for mutation: concurrent readers (EvaluateBatch) are
// safe only while no goroutine calls an Apply* method.
package solution
