package ddm

import (
	"fmt"
	"math"
)

// Params is the immutable parameter set for one trial.
type Params struct {
	// DriftRate is the mean rate of evidence accumulation per unit time.
	DriftRate float64
	// Threshold is the absolute evidence magnitude that commits a
	// decision; boundaries sit at +Threshold and -Threshold.
	Threshold float64
	// StartingBias is the initial evidence value, |StartingBias| < Threshold.
	StartingBias float64
	// NoiseScale is the standard deviation coefficient of the per-step noise.
	NoiseScale float64
	// Dt is the discretization interval.
	Dt float64
	// MaxTime bounds a batch run; incremental stepping ignores it.
	MaxTime float64
}

// DefaultParams mirrors the canonical demo configuration.
func DefaultParams() Params {
	return Params{
		DriftRate:    1.5,
		Threshold:    2.0,
		StartingBias: 0.0,
		NoiseScale:   1.0,
		Dt:           0.05,
		MaxTime:      5.0,
	}
}

// Validate rejects parameter sets the stepping rule is not defined for.
func (p Params) Validate() error {
	if p.Threshold <= 0 || math.IsNaN(p.Threshold) {
		return fmt.Errorf("%w, got %f", ErrThreshold, p.Threshold)
	}
	if p.Dt <= 0 || math.IsNaN(p.Dt) {
		return fmt.Errorf("%w, got %f", ErrTimeStep, p.Dt)
	}
	if p.NoiseScale < 0 || math.IsNaN(p.NoiseScale) {
		return fmt.Errorf("%w, got %f", ErrNoiseScale, p.NoiseScale)
	}
	if math.Abs(p.StartingBias) >= p.Threshold || math.IsNaN(p.StartingBias) {
		return fmt.Errorf("%w, got bias %f with threshold %f", ErrStartingBias, p.StartingBias, p.Threshold)
	}
	return nil
}

// validateBounded additionally requires a usable time limit.
func (p Params) validateBounded() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.MaxTime <= 0 || math.IsNaN(p.MaxTime) {
		return fmt.Errorf("%w, got %f", ErrMaxTime, p.MaxTime)
	}
	return nil
}
