// Package selector implements the adaptive operator selector: a
// multi-armed bandit over a fixed set of named operators, with pluggable
// UCB1 / ε-greedy / Roulette strategies. Per-operator counters are atomic;
// the derived probability table is guarded by a readers-writer lock with a
// short writer section on updateWeights.
package selector
