package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry holds one driver run's exported metrics. The zero value is not
// usable; construct with NewRegistry.
type Registry struct {
	reg *prometheus.Registry

	iterationsTotal  prometheus.Counter
	perturbations    prometheus.Counter
	intensifications prometheus.Counter
	pathRelinks      prometheus.Counter
	tabuRuns         prometheus.Counter
	eliteOffers      prometheus.Counter
	eliteAccepts     prometheus.Counter

	bestCost      prometheus.Gauge
	currentCost   prometheus.Gauge
	aislesVisited prometheus.Gauge
	unitsPicked   prometheus.Gauge
	archiveSize   prometheus.Gauge

	operatorUses       *prometheus.GaugeVec
	operatorMeanReward *prometheus.GaugeVec
}

// NewRegistry constructs a Registry backed by a fresh, private
// prometheus.Registry: collectors are registered on it, never on
// prometheus.DefaultRegisterer.
func NewRegistry() *Registry {
	r := &Registry{reg: prometheus.NewRegistry()}

	r.iterationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wavepick_iterations_total",
		Help: "Total ASA driver iterations executed.",
	})
	r.perturbations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wavepick_perturbations_total",
		Help: "Total strong perturbations applied.",
	})
	r.intensifications = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wavepick_intensifications_total",
		Help: "Total focused local search intensification passes run.",
	})
	r.pathRelinks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wavepick_path_relinks_total",
		Help: "Total elite path relinking passes run.",
	})
	r.tabuRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wavepick_tabu_runs_total",
		Help: "Total memetic tabu search runs triggered by stagnation.",
	})
	r.eliteOffers = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wavepick_elite_offers_total",
		Help: "Total solutions offered to the elite archive.",
	})
	r.eliteAccepts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wavepick_elite_accepts_total",
		Help: "Total solutions admitted into the elite archive.",
	})

	r.bestCost = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wavepick_best_cost",
		Help: "Best surrogate cost found so far.",
	})
	r.currentCost = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wavepick_current_cost",
		Help: "Surrogate cost of the driver's current working solution.",
	})
	r.aislesVisited = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wavepick_best_aisles_visited",
		Help: "Number of aisles visited in the best solution found so far.",
	})
	r.unitsPicked = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wavepick_best_units_picked",
		Help: "Total units picked in the best solution found so far.",
	})
	r.archiveSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wavepick_elite_archive_size",
		Help: "Current number of solutions resident in the elite archive.",
	})

	r.operatorUses = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "wavepick_operator_uses",
		Help: "Total times each move operator was selected, as of the last snapshot export.",
	}, []string{"operator"})
	r.operatorMeanReward = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "wavepick_operator_mean_reward",
		Help: "Current mean bandit reward for each move operator.",
	}, []string{"operator"})

	r.reg.MustRegister(
		r.iterationsTotal, r.perturbations, r.intensifications, r.pathRelinks,
		r.tabuRuns, r.eliteOffers, r.eliteAccepts,
		r.bestCost, r.currentCost, r.aislesVisited, r.unitsPicked, r.archiveSize,
		r.operatorUses, r.operatorMeanReward,
	)
	return r
}
