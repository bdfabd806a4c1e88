package algorithms_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-moea/moea/algorithms"
	"github.com/go-moea/moea/framework"
)

func solutions(points [][]float64) []*algorithms.NSGAIISolution {
	out := make([]*algorithms.NSGAIISolution, len(points))
	for i, p := range points {
		out[i] = &algorithms.NSGAIISolution{Value: append(framework.ObjectiveSpacePoint{}, p...)}
	}
	return out
}

func TestNonDominatedSortStampsRanks(t *testing.T) {
	pop := solutions([][]float64{
		{1, 1},
		{0, 3},
		{3, 0},
		{2, 2},     // dominated by (1,1)
		{2.5, 2.5}, // dominated by (1,1) and (2,2)
	})

	fronts := algorithms.NonDominatedSort(pop)
	if len(fronts) != 3 {
		t.Fatalf("expected 3 fronts, got %d", len(fronts))
	}
	if len(fronts[0]) != 3 || len(fronts[1]) != 1 || len(fronts[2]) != 1 {
		t.Errorf("unexpected front sizes %d/%d/%d", len(fronts[0]), len(fronts[1]), len(fronts[2]))
	}

	wantRanks := []int{0, 0, 0, 1, 2}
	for i, want := range wantRanks {
		if pop[i].Rank != want {
			t.Errorf("solution %d: expected rank %d, got %d", i, want, pop[i].Rank)
		}
	}
}

func TestDominates(t *testing.T) {
	a := &algorithms.NSGAIISolution{Value: framework.ObjectiveSpacePoint{1, 1}}
	b := &algorithms.NSGAIISolution{Value: framework.ObjectiveSpacePoint{2, 1}}
	c := &algorithms.NSGAIISolution{Value: framework.ObjectiveSpacePoint{0, 2}}

	if !algorithms.Dominates(a, b) {
		t.Error("expected (1,1) to dominate (2,1)")
	}
	if algorithms.Dominates(b, a) {
		t.Error("expected (2,1) not to dominate (1,1)")
	}
	if algorithms.Dominates(a, c) || algorithms.Dominates(c, a) {
		t.Error("expected a tradeoff pair to be mutually non-dominated")
	}
	if algorithms.Dominates(a, a) {
		t.Error("expected equal vectors not to dominate each other")
	}
}

func TestGetParetoFront(t *testing.T) {
	pop := solutions([][]float64{{1, 1}, {2, 2}, {0, 3}})

	front := algorithms.GetParetoFront(pop)
	want := []framework.ObjectiveSpacePoint{{1, 1}, {0, 3}}
	if diff := cmp.Diff(want, front); diff != "" {
		t.Errorf("unexpected front (-want +got):\n%s", diff)
	}

	if algorithms.GetParetoFront(nil) != nil {
		t.Error("expected nil front for an empty population")
	}
}
