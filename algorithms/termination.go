package algorithms

import "math"

// Termination decides when a run stops and how far along it is. Progress must
// be non-decreasing and reach exactly 1.0 once the budget is exhausted; the
// survival penalty is scheduled off it.
type Termination interface {
	// Progress reports the fraction of the search budget consumed, in [0, 1].
	Progress(generation, evaluations int) float64
	// Done reports whether the budget is exhausted.
	Done(generation, evaluations int) bool
}

// MaxGenerations stops after N generations and reports progress as the
// fraction of generations completed.
type MaxGenerations struct {
	N int
}

func (t *MaxGenerations) Progress(generation, _ int) float64 {
	return math.Min(float64(generation)/float64(t.N), 1.0)
}

func (t *MaxGenerations) Done(generation, _ int) bool {
	return generation >= t.N
}

// MaxEvaluations stops after N objective evaluations and reports progress as
// the fraction of the evaluation budget consumed.
type MaxEvaluations struct {
	N int
}

func (t *MaxEvaluations) Progress(_, evaluations int) float64 {
	return math.Min(float64(evaluations)/float64(t.N), 1.0)
}

func (t *MaxEvaluations) Done(_, evaluations int) bool {
	return evaluations >= t.N
}
