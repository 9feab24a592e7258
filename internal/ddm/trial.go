package ddm

import "math"

// Boundary identifies which decision boundary a trial crossed.
type Boundary int

const (
	BoundaryNone Boundary = iota
	BoundaryUpper
	BoundaryLower
)

func (b Boundary) String() string {
	switch b {
	case BoundaryUpper:
		return "upper"
	case BoundaryLower:
		return "lower"
	default:
		return "none"
	}
}

// Trial is the mutable state of one evidence-accumulation run. It is
// created by a Simulator, mutated only by Step, and becomes terminal
// once Decided is set.
type Trial struct {
	Time     float64
	Evidence float64

	// Times and Evidences record the full trajectory, starting with
	// the initial sample (0, StartingBias).
	Times     []float64
	Evidences []float64

	Decided      bool
	Boundary     Boundary
	DecisionTime float64
}

func newTrial(p Params, capacity int) *Trial {
	t := &Trial{
		Evidence:  p.StartingBias,
		Times:     make([]float64, 0, capacity+1),
		Evidences: make([]float64, 0, capacity+1),
	}
	t.Times = append(t.Times, 0)
	t.Evidences = append(t.Evidences, p.StartingBias)
	return t
}

// Steps reports the number of steps taken so far.
func (t *Trial) Steps() int {
	return len(t.Times) - 1
}

// Finite reports whether the evidence value is still a usable number.
func (t *Trial) Finite() bool {
	return !math.IsNaN(t.Evidence) && !math.IsInf(t.Evidence, 0)
}
