// Package instance defines the immutable SBPO wave-picking problem data:
// orders, aisles, item demands/stocks, and wave-size bounds.
//
// An Instance is built once (by Parse, or by NewInstance from in-memory
// data) and never mutated afterward. It precomputes, once and for all, the
// order↔aisle adjacency used by solution.Solution so every Solution sharing
// the Instance can reuse the same read-only maps.
//
// Item ids are dense integers in [0, NumItems). Order ids are dense in
// [0, len(Orders)); aisle ids are dense in [0, len(Aisles)).
package instance
