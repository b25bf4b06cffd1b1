package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default returns the shipped default configuration.
func Default() Config {
	return Config{
		Driver: Driver{
			MaxRuntimeMillis:           600000,
			MaxNoImprovementIterations: 1000,
			IntensificationFrequency:   150,
			PathRelinkingFrequency:     400,
			EliteUpdateFrequency:       30,
			TemperatureScaleFactor:     0.12,
			PerturbationFrequency:      100,
			PerturbationStrength:       0.3,
			InitialOrderFraction:       0.3,
		},
		Bandit: Bandit{
			Strategy:        "ucb1",
			UCBConst:        1.41421356237,
			Epsilon:         0.1,
			UpdateFrequency: 100,
		},
		Elite: Elite{Size: 5},
		Tabu:  Tabu{Tenure: 10, MaxIterations: 100},
		FLS: FLS{
			MaxIterations:      2000,
			TimeoutMillis:      5000,
			TargetCost:         0,
			MaxNoImprovement:   200,
			AllowRestart:       true,
			PatienceFactor:     2.0,
			ImprovementEpsilon: 1e-6,
		},
		Weights: Weights{PMissing: 1000, CAisle: 10, WRatio: 50},
	}
}

// RegisterFlags binds every Config knob onto fs as a CLI flag, defaulted
// from Default(). Call before fs.Parse; pass fs into Load so parsed flag
// values take precedence over file and env values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int64("driver.max_runtime_millis", d.Driver.MaxRuntimeMillis, "wall-clock budget for the solve in milliseconds")
	fs.Int("driver.max_no_improvement_iterations", d.Driver.MaxNoImprovementIterations, "iterations without improvement before the driver stops")
	fs.Int("driver.intensification_frequency", d.Driver.IntensificationFrequency, "iterations between focused local search intensification passes")
	fs.Int("driver.path_relinking_frequency", d.Driver.PathRelinkingFrequency, "iterations between elite path relinking passes")
	fs.Int("driver.elite_update_frequency", d.Driver.EliteUpdateFrequency, "iterations between elite archive offers")
	fs.Float64("driver.temperature_scale_factor", d.Driver.TemperatureScaleFactor, "Metropolis acceptance temperature as a fraction of current cost")
	fs.Int("driver.perturbation_frequency", d.Driver.PerturbationFrequency, "iterations between strong perturbations")
	fs.Float64("driver.perturbation_strength", d.Driver.PerturbationStrength, "LNS destroy fraction used by strong perturbation")
	fs.Float64("driver.initial_order_fraction", d.Driver.InitialOrderFraction, "fraction of orders seeded into the initial solution, clamped to [0.2, 0.5]")

	fs.String("bandit.strategy", d.Bandit.Strategy, "operator selection strategy: ucb1 | epsilon_greedy | roulette")
	fs.Float64("bandit.ucb_const", d.Bandit.UCBConst, "UCB1 exploration constant")
	fs.Float64("bandit.epsilon", d.Bandit.Epsilon, "epsilon-greedy exploration rate")
	fs.Int("bandit.update_frequency", d.Bandit.UpdateFrequency, "feedbacks between roulette probability table recomputation")

	fs.Int("elite.size", d.Elite.Size, "elite archive capacity")

	fs.Int("tabu.tenure", d.Tabu.Tenure, "memetic tabu list tenure")
	fs.Int("tabu.max_iterations", d.Tabu.MaxIterations, "memetic tabu search iteration cap")

	fs.Int("fls.max_iterations", d.FLS.MaxIterations, "focused local search iteration cap")
	fs.Int("fls.timeout_millis", d.FLS.TimeoutMillis, "focused local search time budget in milliseconds")
	fs.Float64("fls.target_cost", d.FLS.TargetCost, "focused local search stops once this cost is reached; 0 disables")
	fs.Int("fls.max_no_improvement", d.FLS.MaxNoImprovement, "focused local search patience ceiling before a light mutation")
	fs.Bool("fls.allow_restart", d.FLS.AllowRestart, "allow focused local search to apply a light mutation on stagnation")
	fs.Float64("fls.patience_factor", d.FLS.PatienceFactor, "focused local search patience scale factor")
	fs.Float64("fls.improvement_epsilon", d.FLS.ImprovementEpsilon, "minimum delta counted as an improvement")

	fs.Float64("weights.p_missing", d.Weights.PMissing, "surrogate cost penalty per uncovered order")
	fs.Float64("weights.c_aisle", d.Weights.CAisle, "surrogate cost penalty per visited aisle")
	fs.Float64("weights.w_ratio", d.Weights.WRatio, "surrogate cost penalty on the aisle-to-order ratio")
}

// Load reads Config from an optional YAML file at path (skipped if path is
// empty), overlays WAVEPICK_* environment variables, and overlays fs's
// parsed flags last so a flag always wins. Every field starts from
// Default().
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	// Defaults are registered per leaf key ("elite.size", not "elite") so a
	// partial file section keeps the other defaults of that section and a
	// bound flag is never shadowed by a section-level value.
	defaults := pflag.NewFlagSet("defaults", pflag.ContinueOnError)
	RegisterFlags(defaults)
	defaults.VisitAll(func(f *pflag.Flag) { v.SetDefault(f.Name, f.DefValue) })

	v.SetEnvPrefix("WAVEPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges a misconfigured driver would otherwise only
// discover at runtime.
func (c *Config) Validate() error {
	if c.Driver.MaxRuntimeMillis <= 0 {
		return fmt.Errorf("driver.max_runtime_millis must be > 0")
	}
	if c.Driver.MaxNoImprovementIterations <= 0 {
		return fmt.Errorf("driver.max_no_improvement_iterations must be > 0")
	}
	if c.Driver.TemperatureScaleFactor <= 0 {
		return fmt.Errorf("driver.temperature_scale_factor must be > 0")
	}
	if c.Driver.PerturbationStrength <= 0 || c.Driver.PerturbationStrength >= 1 {
		return fmt.Errorf("driver.perturbation_strength must be in (0,1)")
	}
	if c.Driver.InitialOrderFraction <= 0 || c.Driver.InitialOrderFraction > 1 {
		return fmt.Errorf("driver.initial_order_fraction must be in (0,1]")
	}
	switch c.Bandit.Strategy {
	case "ucb1", "epsilon_greedy", "roulette":
	default:
		return fmt.Errorf("bandit.strategy must be one of: ucb1, epsilon_greedy, roulette")
	}
	if c.Elite.Size <= 0 {
		return fmt.Errorf("elite.size must be > 0")
	}
	if c.Tabu.Tenure <= 0 || c.Tabu.MaxIterations <= 0 {
		return fmt.Errorf("tabu.tenure and tabu.max_iterations must be > 0")
	}
	if c.Weights.PMissing <= 0 || c.Weights.CAisle <= 0 || c.Weights.WRatio <= 0 {
		return fmt.Errorf("weights.p_missing, weights.c_aisle and weights.w_ratio must be > 0")
	}
	return nil
}
