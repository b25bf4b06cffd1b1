package config

import (
	"github.com/katalvlaran/wavepick/intensify"
	"github.com/katalvlaran/wavepick/selector"
	"github.com/katalvlaran/wavepick/solution"
)

// Driver holds the Adaptive Simulated Annealing driver's top-level knobs.
type Driver struct {
	MaxRuntimeMillis           int64   `mapstructure:"max_runtime_millis"`
	MaxNoImprovementIterations int     `mapstructure:"max_no_improvement_iterations"`
	IntensificationFrequency   int     `mapstructure:"intensification_frequency"`
	PathRelinkingFrequency     int     `mapstructure:"path_relinking_frequency"`
	EliteUpdateFrequency       int     `mapstructure:"elite_update_frequency"`
	TemperatureScaleFactor     float64 `mapstructure:"temperature_scale_factor"`
	PerturbationFrequency      int     `mapstructure:"perturbation_frequency"`
	PerturbationStrength       float64 `mapstructure:"perturbation_strength"`
	InitialOrderFraction       float64 `mapstructure:"initial_order_fraction"`
}

// Bandit mirrors selector.Config for file/env/flag loading.
type Bandit struct {
	Strategy        string  `mapstructure:"strategy"` // "ucb1" | "epsilon_greedy" | "roulette"
	UCBConst        float64 `mapstructure:"ucb_const"`
	Epsilon         float64 `mapstructure:"epsilon"`
	UpdateFrequency int     `mapstructure:"update_frequency"`
}

// Elite mirrors the Elite Archive's tunables.
type Elite struct {
	Size int `mapstructure:"size"`
}

// Tabu mirrors the Memetic Tabu phase's tunables.
type Tabu struct {
	Tenure        int `mapstructure:"tenure"`
	MaxIterations int `mapstructure:"max_iterations"`
}

// FLS mirrors intensify.FLSConfig for file/env/flag loading.
type FLS struct {
	MaxIterations      int     `mapstructure:"max_iterations"`
	TimeoutMillis      int     `mapstructure:"timeout_millis"`
	TargetCost         float64 `mapstructure:"target_cost"`
	MaxNoImprovement   int     `mapstructure:"max_no_improvement"`
	AllowRestart       bool    `mapstructure:"allow_restart"`
	PatienceFactor     float64 `mapstructure:"patience_factor"`
	ImprovementEpsilon float64 `mapstructure:"improvement_epsilon"`
}

// Weights mirrors solution.Weights, the surrogate evaluator's penalty
// coefficients.
type Weights struct {
	PMissing float64 `mapstructure:"p_missing"`
	CAisle   float64 `mapstructure:"c_aisle"`
	WRatio   float64 `mapstructure:"w_ratio"`
}

// Config is the top-level configuration for the wavepick solver driver.
type Config struct {
	Driver  Driver  `mapstructure:"driver"`
	Bandit  Bandit  `mapstructure:"bandit"`
	Elite   Elite   `mapstructure:"elite"`
	Tabu    Tabu    `mapstructure:"tabu"`
	FLS     FLS     `mapstructure:"fls"`
	Weights Weights `mapstructure:"weights"`
}

// SelectorConfig converts Bandit into the selector package's native Config.
func (b Bandit) SelectorConfig() selector.Config {
	strat := selector.UCB1
	switch b.Strategy {
	case "epsilon_greedy":
		strat = selector.EpsilonGreedy
	case "roulette":
		strat = selector.Roulette
	}
	return selector.Config{
		Strategy:        strat,
		UCBConst:        b.UCBConst,
		Epsilon:         b.Epsilon,
		UpdateFrequency: b.UpdateFrequency,
	}
}

// FLSConfig converts FLS into intensify's native FLSConfig. Mode is always
// FirstImprovement by default; the driver overrides it per call site.
func (f FLS) FLSConfig() intensify.FLSConfig {
	return intensify.FLSConfig{
		MaxIterations:      f.MaxIterations,
		TimeoutMillis:      f.TimeoutMillis,
		TargetCost:         f.TargetCost,
		MaxNoImprovement:   f.MaxNoImprovement,
		AllowRestart:       f.AllowRestart,
		PatienceFactor:     f.PatienceFactor,
		ImprovementEpsilon: f.ImprovementEpsilon,
		Mode:               intensify.FirstImprovement,
	}
}

// SolutionWeights converts Weights into the solution package's native Weights.
func (w Weights) SolutionWeights() solution.Weights {
	return solution.Weights{PMissing: w.PMissing, CAisle: w.CAisle, WRatio: w.WRatio}
}
