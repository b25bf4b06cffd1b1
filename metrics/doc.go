// Package metrics exports the ASA driver's own counters through
// Prometheus. The core solver never reads these back; they are a one-way
// window into a run. Registry wraps a private
// *prometheus.Registry, never the global DefaultRegisterer, so a driver
// can run (and be exported) more than once in the same process without
// collector-already-registered panics, the way a server would run more
// than one connection's worth of counters side by side.
package metrics
