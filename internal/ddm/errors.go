package ddm

import "errors"

// Domain errors for trial construction and stepping.
var (
	// ErrThreshold indicates a non-positive decision threshold.
	ErrThreshold = errors.New("ddm: threshold must be positive")

	// ErrTimeStep indicates a non-positive discretization interval.
	ErrTimeStep = errors.New("ddm: time step must be positive")

	// ErrNoiseScale indicates a negative noise coefficient.
	ErrNoiseScale = errors.New("ddm: noise scale must be non-negative")

	// ErrStartingBias indicates a starting point on or outside the boundaries.
	ErrStartingBias = errors.New("ddm: starting bias must lie strictly between the boundaries")

	// ErrMaxTime indicates a non-positive time limit for a bounded run.
	ErrMaxTime = errors.New("ddm: max time must be positive")

	// ErrTrialDecided indicates a step was requested on a terminal trial.
	ErrTrialDecided = errors.New("ddm: trial already decided")

	// ErrNonFinite indicates the evidence value became NaN or Inf.
	ErrNonFinite = errors.New("ddm: evidence became non-finite")
)
