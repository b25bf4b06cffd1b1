// Command wavepick reads an SBPO wave-picking instance file, runs the
// Adaptive Simulated Annealing driver against it for a configured wall-clock
// budget, and prints the best feasible solution found plus run statistics.
//
// The instance reader, flag/config wiring, and statistics printing all
// live here, outside the solver packages: this file only assembles the
// pieces exported by instance, config, asa, and metrics.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/wavepick/asa"
	"github.com/katalvlaran/wavepick/config"
	"github.com/katalvlaran/wavepick/instance"
	"github.com/katalvlaran/wavepick/metrics"
	"github.com/katalvlaran/wavepick/solution"
)

func main() {
	var (
		instancePath = pflag.String("instance", "", "path to the SBPO instance file (required)")
		configPath   = pflag.String("config", "", "optional YAML config file overlaying the defaults")
		seed         = pflag.Int64("seed", 0, "deterministic PRNG seed (0 selects the fixed default seed)")
		metricsAddr  = pflag.String("metrics-addr", "", "if set, serve Prometheus metrics at this address (e.g. :9090) while solving")
		outputPath   = pflag.String("output", "", "optional path to write the solution report; defaults to stdout")
	)
	config.RegisterFlags(pflag.CommandLine)
	pflag.Parse()

	if *instancePath == "" {
		fmt.Fprintln(os.Stderr, "wavepick: --instance is required")
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath, pflag.CommandLine)
	if err != nil {
		log.Fatalf("wavepick: load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("wavepick: invalid config: %v", err)
	}

	f, err := os.Open(*instancePath)
	if err != nil {
		log.Fatalf("wavepick: open instance: %v", err)
	}
	inst, err := instance.Parse(f)
	f.Close()
	if err != nil {
		log.Fatalf("wavepick: parse instance: %v", err)
	}
	log.Printf("wavepick: loaded instance: %d orders, %d aisles, %d items, wave=[%d,%d]",
		inst.NumOrders(), inst.NumAisles(), inst.NumItems, inst.WaveSizeLB, inst.WaveSizeUB)

	var reg *metrics.Registry
	if *metricsAddr != "" {
		reg = metrics.NewRegistry()
		mux := http.NewServeMux()
		mux.Handle("/metrics", reg.Handler())
		srv := &http.Server{Addr: *metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("wavepick: metrics server stopped: %v", err)
			}
		}()
		log.Printf("wavepick: metrics listening on %s/metrics", *metricsAddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	oracle := asa.WallClock(time.Duration(cfg.Driver.MaxRuntimeMillis) * time.Millisecond)
	best, stats := asa.Solve(ctx, inst, *cfg, oracle, *seed, reg)

	out := os.Stdout
	if *outputPath != "" {
		w, err := os.Create(*outputPath)
		if err != nil {
			log.Fatalf("wavepick: open output: %v", err)
		}
		defer w.Close()
		out = w
	}
	writeReport(out, best, stats)
}

func writeReport(w *os.File, best *solution.Solution, stats asa.Stats) {
	fmt.Fprintf(w, "objective: %.6f\n", best.Objective())
	fmt.Fprintf(w, "units_picked: %d\n", best.TotalUnitsPicked())
	fmt.Fprintf(w, "aisles_visited: %d\n", best.NumChosenAisles())
	fmt.Fprintf(w, "feasible: %v\n", best.IsFeasible() && best.WaveSizeInBounds())
	fmt.Fprintf(w, "orders: %v\n", best.ChosenOrders())
	fmt.Fprintf(w, "aisles: %v\n", best.ChosenAisles())
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "components: %d\n", stats.Components)
	fmt.Fprintf(w, "iterations: %d (accepted %d, rejected %d)\n", stats.Iterations, stats.Accepted, stats.Rejected)
	fmt.Fprintf(w, "perturbations: %d  intensifications: %d  path_relinks: %d  tabu_runs: %d\n",
		stats.Perturbations, stats.Intensifications, stats.PathRelinks, stats.TabuRuns)
	fmt.Fprintf(w, "elite_offers: %d  elite_accepts: %d\n", stats.EliteOffers, stats.EliteAccepts)
	fmt.Fprintf(w, "best_cost: %.6f  final_no_improve: %d  termination: %s\n",
		stats.BestCost, stats.FinalNoImprove, stats.Termination)
}
