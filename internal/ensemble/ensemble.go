package ensemble

import (
	"context"
	"math"
	"sync"

	"github.com/MaxUCSD/ddm-simulator/internal/ddm"
)

// Outcome is the terminal record of one trial in an ensemble.
type Outcome struct {
	Seed         int64
	Decided      bool
	Boundary     ddm.Boundary
	DecisionTime float64
	Steps        int
}

// Runner executes independent trials of the same parameter set in
// parallel. Each trial gets its own simulator with a derived seed, so
// outcomes are uncorrelated and the whole ensemble is reproducible
// from seedStart.
type Runner struct {
	params    ddm.Params
	numTrials int
	seedStart int64
}

func New(p ddm.Params, numTrials int, seedStart int64) *Runner {
	return &Runner{params: p, numTrials: numTrials, seedStart: seedStart}
}

func (r *Runner) Run(ctx context.Context) ([]Outcome, error) {
	if err := r.params.Validate(); err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, r.numTrials)
	errs := make([]error, r.numTrials)

	var wg sync.WaitGroup
	for i := 0; i < r.numTrials; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := r.seedStart + int64(idx)
			sim, err := ddm.New(r.params, ddm.NewGaussianNoise(seed))
			if err != nil {
				errs[idx] = err
				return
			}

			trial, err := sim.Run(ctx)
			if err != nil {
				errs[idx] = err
				return
			}

			outcomes[idx] = Outcome{
				Seed:         seed,
				Decided:      trial.Decided,
				Boundary:     trial.Boundary,
				DecisionTime: trial.DecisionTime,
				Steps:        trial.Steps(),
			}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return outcomes, nil
}

// Summary aggregates ensemble outcomes into response statistics.
type Summary struct {
	Trials  int
	Upper   int
	Lower   int
	Timeout int

	// Decision-time statistics over decided trials only.
	MeanDecisionTime float64
	MinDecisionTime  float64
	MaxDecisionTime  float64
}

// UpperRate is the fraction of decided trials that crossed the upper
// boundary.
func (s Summary) UpperRate() float64 {
	decided := s.Upper + s.Lower
	if decided == 0 {
		return 0
	}
	return float64(s.Upper) / float64(decided)
}

func Summarize(outcomes []Outcome) Summary {
	s := Summary{
		Trials:          len(outcomes),
		MinDecisionTime: math.Inf(1),
		MaxDecisionTime: math.Inf(-1),
	}

	sum := 0.0
	for _, o := range outcomes {
		switch {
		case !o.Decided:
			s.Timeout++
			continue
		case o.Boundary == ddm.BoundaryUpper:
			s.Upper++
		default:
			s.Lower++
		}

		sum += o.DecisionTime
		if o.DecisionTime < s.MinDecisionTime {
			s.MinDecisionTime = o.DecisionTime
		}
		if o.DecisionTime > s.MaxDecisionTime {
			s.MaxDecisionTime = o.DecisionTime
		}
	}

	decided := s.Upper + s.Lower
	if decided > 0 {
		s.MeanDecisionTime = sum / float64(decided)
	} else {
		s.MinDecisionTime = 0
		s.MaxDecisionTime = 0
	}

	return s
}
