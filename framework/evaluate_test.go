package framework

import (
	"testing"
)

// echoProblem maps a single decision variable onto two objectives and one
// constraint, keeping expected evaluations easy to state: f = (x, 1-x) and
// x <= 0.5.
type echoProblem struct{}

func (echoProblem) Name() string { return "echo" }

func (echoProblem) ObjectiveFuncs() []ObjectiveFunc {
	return []ObjectiveFunc{
		func(s Solution) float64 { return s.(*RealSolution).Variables[0] },
		func(s Solution) float64 { return 1 - s.(*RealSolution).Variables[0] },
	}
}

func (echoProblem) Constraints() []Constraint {
	return []Constraint{
		func(s Solution) float64 { return s.(*RealSolution).Variables[0] - 0.5 },
		func(s Solution) float64 { return -1 }, // never active
	}
}

func (echoProblem) Bounds() []Bounds { return []Bounds{{L: 0, H: 1}} }

func (echoProblem) Initialize(n int) []Solution {
	sols := make([]Solution, n)
	for i := range sols {
		sols[i] = NewRealSolution([]float64{0.5}, []Bounds{{L: 0, H: 1}})
	}
	return sols
}

func (echoProblem) TrueParetoFront(int) []ObjectiveSpacePoint { return nil }

func TestEvaluate(t *testing.T) {
	feasible := Evaluate(echoProblem{}, NewRealSolution([]float64{0.2}, []Bounds{{L: 0, H: 1}}))
	if feasible.Value[0] != 0.2 || feasible.Value[1] != 0.8 {
		t.Errorf("unexpected objective vector %v", feasible.Value)
	}
	if !feasible.Feasible() || feasible.Violation != 0 {
		t.Errorf("expected a feasible individual, got violation %v", feasible.Violation)
	}
	if feasible.Niche != -1 {
		t.Errorf("expected a fresh individual to be unassigned, got niche %d", feasible.Niche)
	}

	// only positive constraint values add to the violation
	infeasible := Evaluate(echoProblem{}, NewRealSolution([]float64{0.8}, []Bounds{{L: 0, H: 1}}))
	if infeasible.Feasible() {
		t.Error("expected the constraint x <= 0.5 to be violated")
	}
	if got, want := infeasible.Violation, 0.8-0.5; got-want > 1e-12 || want-got > 1e-12 {
		t.Errorf("expected violation %v, got %v", want, got)
	}
}

func TestEvaluateAllPreservesOrder(t *testing.T) {
	n := 64
	sols := make([]Solution, n)
	for i := range sols {
		sols[i] = NewRealSolution([]float64{float64(i) / float64(n)}, []Bounds{{L: 0, H: 1}})
	}

	for _, workers := range []int{0, 1, 4} {
		individuals := EvaluateAll(echoProblem{}, sols, workers)
		if len(individuals) != n {
			t.Fatalf("workers=%d: expected %d individuals, got %d", workers, n, len(individuals))
		}
		for i, ind := range individuals {
			if want := float64(i) / float64(n); ind.Value[0] != want {
				t.Fatalf("workers=%d: individual %d evaluated out of order: got %v, want %v",
					workers, i, ind.Value[0], want)
			}
			if ind.Solution != sols[i] {
				t.Fatalf("workers=%d: individual %d carries the wrong solution", workers, i)
			}
		}
	}
}
