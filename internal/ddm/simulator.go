package ddm

import (
	"context"
	"fmt"
	"math"
	"time"
)

// DefaultBatch is the number of steps the incremental mode advances
// per poll.
const DefaultBatch = 5

// Simulator applies the discretized stepping rule to trials. One
// simulator owns one noise source; it is not safe for concurrent use.
type Simulator struct {
	params Params
	noise  NoiseSource
}

// New validates the parameters and builds a simulator. A nil noise
// source falls back to a time-seeded gaussian generator.
func New(p Params, noise NoiseSource) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if noise == nil {
		noise = NewGaussianNoise(time.Now().UnixNano())
	}
	return &Simulator{params: p, noise: noise}, nil
}

func (s *Simulator) Params() Params {
	return s.params
}

// NewTrial returns a fresh trial seeded with the initial sample.
func (s *Simulator) NewTrial() *Trial {
	capacity := 0
	if s.params.MaxTime > 0 {
		capacity = int(s.params.MaxTime / s.params.Dt)
	}
	return newTrial(s.params, capacity)
}

// Step advances the trial by one time step:
//
//	E += v*dt + sigma*sqrt(dt)*N(0,1)
//
// then checks the boundaries. The upper test runs first, so evidence
// landing exactly on +Threshold classifies upper. Stepping a decided
// trial is an error and leaves it untouched.
func (s *Simulator) Step(t *Trial) error {
	if t.Decided {
		return ErrTrialDecided
	}

	p := s.params
	delta := p.DriftRate*p.Dt + p.NoiseScale*math.Sqrt(p.Dt)*s.noise.Normal()

	t.Evidence += delta
	t.Time += p.Dt
	t.Times = append(t.Times, t.Time)
	t.Evidences = append(t.Evidences, t.Evidence)

	if math.Abs(t.Evidence) >= p.Threshold {
		t.Decided = true
		t.DecisionTime = t.Time
		if t.Evidence >= p.Threshold {
			t.Boundary = BoundaryUpper
		} else {
			t.Boundary = BoundaryLower
		}
	}
	return nil
}

// StepN advances the trial by up to n steps, stopping early once a
// boundary is crossed. This is the incremental mode: the caller polls,
// renders partial progress, and decides when to stop.
func (s *Simulator) StepN(t *Trial, n int) error {
	if t.Decided {
		return ErrTrialDecided
	}
	for i := 0; i < n; i++ {
		if err := s.Step(t); err != nil {
			return err
		}
		if t.Decided {
			break
		}
	}
	return nil
}

// Run is the batch mode: it steps a fresh trial until a boundary is
// crossed or MaxTime elapses, whichever comes first. The returned
// trial is complete either way; Decided reports which case occurred.
func (s *Simulator) Run(ctx context.Context) (*Trial, error) {
	if err := s.params.validateBounded(); err != nil {
		return nil, err
	}

	trial := s.NewTrial()
	steps := int(s.params.MaxTime / s.params.Dt)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return trial, ctx.Err()
		default:
		}

		if err := s.Step(trial); err != nil {
			return trial, err
		}
		if trial.Decided {
			break
		}
		if !trial.Finite() {
			return trial, fmt.Errorf("%w at t=%.4f", ErrNonFinite, trial.Time)
		}
	}

	return trial, nil
}
