package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/wavepick/selector"
)

// Handler returns an http.Handler serving this Registry's metrics in the
// Prometheus exposition format, for wiring into a /metrics route.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// IncIteration records one driver iteration.
func (r *Registry) IncIteration() { r.iterationsTotal.Inc() }

// IncPerturbation records one strong perturbation.
func (r *Registry) IncPerturbation() { r.perturbations.Inc() }

// IncIntensification records one focused local search pass.
func (r *Registry) IncIntensification() { r.intensifications.Inc() }

// IncPathRelink records one elite path relinking pass.
func (r *Registry) IncPathRelink() { r.pathRelinks.Inc() }

// IncTabuRun records one memetic tabu search run.
func (r *Registry) IncTabuRun() { r.tabuRuns.Inc() }

// IncEliteOffer records one solution offered to the elite archive, and
// whether it was admitted.
func (r *Registry) IncEliteOffer(accepted bool) {
	r.eliteOffers.Inc()
	if accepted {
		r.eliteAccepts.Inc()
	}
}

// SetBestCost records the best surrogate cost found so far.
func (r *Registry) SetBestCost(cost float64) { r.bestCost.Set(cost) }

// SetCurrentCost records the working solution's surrogate cost.
func (r *Registry) SetCurrentCost(cost float64) { r.currentCost.Set(cost) }

// SetBestSolutionStats records the best solution's aisle count and units picked.
func (r *Registry) SetBestSolutionStats(aislesVisited, unitsPicked int) {
	r.aislesVisited.Set(float64(aislesVisited))
	r.unitsPicked.Set(float64(unitsPicked))
}

// SetArchiveSize records the elite archive's current occupancy.
func (r *Registry) SetArchiveSize(n int) { r.archiveSize.Set(float64(n)) }

// ExportBanditSnapshots overwrites the per-operator gauges from a
// selector.Snapshot slice, as produced by (*selector.Selector).Snapshot.
func (r *Registry) ExportBanditSnapshots(snaps []selector.Snapshot) {
	for _, s := range snaps {
		r.operatorUses.WithLabelValues(s.Name).Set(float64(s.Uses))
		r.operatorMeanReward.WithLabelValues(s.Name).Set(s.MeanReward)
	}
}
