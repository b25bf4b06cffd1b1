package intensify

import "github.com/katalvlaran/wavepick/solution"

// FLSMode selects how Focused Local Search picks its next move.
type FLSMode int

const (
	// BestImprovement scans every neighbor in every neighborhood and moves
	// to the strictly best feasible improving neighbor.
	BestImprovement FLSMode = iota
	// FirstImprovement scans one neighborhood at a time, in shuffled order,
	// and moves to the first strictly improving feasible neighbor found.
	FirstImprovement
)

// FLSConfig holds Focused Local Search's stop conditions and knobs.
type FLSConfig struct {
	MaxIterations      int
	TimeoutMillis      int
	TargetCost         float64 // stop once bestCost <= TargetCost; 0 disables
	MaxNoImprovement   int     // patience ceiling before a light mutation kicks in
	AllowRestart       bool
	PatienceFactor     float64
	ImprovementEpsilon float64
	Mode               FLSMode
}

// DefaultFLSConfig returns reasonable defaults.
func DefaultFLSConfig() FLSConfig {
	return FLSConfig{
		MaxIterations:      2000,
		TimeoutMillis:      5000,
		TargetCost:         0,
		MaxNoImprovement:   200,
		AllowRestart:       true,
		PatienceFactor:     2.0,
		ImprovementEpsilon: 1e-6,
		Mode:               FirstImprovement,
	}
}

// move is a single candidate mutation, reusing solution's batch-request
// vocabulary for the order and aisle neighborhoods.
type move = solution.BatchRequest

// FLSResult reports what Focused Local Search found.
type FLSResult struct {
	Best       *solution.Solution
	Iterations int
	Improved   bool
}
