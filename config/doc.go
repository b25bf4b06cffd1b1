// Package config loads the tunable knobs of the wave-picking driver:
// driver timing and stagnation limits, bandit strategy parameters,
// elite archive and tabu search sizes, focused local search stop conditions,
// and the surrogate evaluator's penalty weights.
//
// Configuration loads from an optional YAML file plus WAVEPICK_* environment
// variables via viper, mirroring the Load/Validate shape used elsewhere in
// this dependency stack; command-line flags are registered with pflag and
// bound on top so a flag always wins over a file value or a default.
package config
