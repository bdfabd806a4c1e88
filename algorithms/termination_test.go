package algorithms_test

import (
	"testing"

	"github.com/go-moea/moea/algorithms"
)

func TestMaxGenerations(t *testing.T) {
	term := &algorithms.MaxGenerations{N: 4}

	if p := term.Progress(0, 0); p != 0 {
		t.Errorf("expected progress 0 at the start, got %v", p)
	}
	if p := term.Progress(2, 0); p != 0.5 {
		t.Errorf("expected progress 0.5 halfway, got %v", p)
	}
	if p := term.Progress(4, 0); p != 1 {
		t.Errorf("expected progress 1 at the budget, got %v", p)
	}
	if p := term.Progress(9, 0); p != 1 {
		t.Errorf("expected progress to clamp at 1, got %v", p)
	}

	if term.Done(3, 0) {
		t.Error("expected the run to continue one generation before the budget")
	}
	if !term.Done(4, 0) {
		t.Error("expected the run to stop at the budget")
	}
}

func TestMaxEvaluations(t *testing.T) {
	term := &algorithms.MaxEvaluations{N: 1000}

	if p := term.Progress(0, 250); p != 0.25 {
		t.Errorf("expected progress 0.25, got %v", p)
	}
	if p := term.Progress(0, 1500); p != 1 {
		t.Errorf("expected progress to clamp at 1, got %v", p)
	}

	if term.Done(0, 999) {
		t.Error("expected the run to continue below the budget")
	}
	if !term.Done(0, 1000) {
		t.Error("expected the run to stop at the budget")
	}
}
