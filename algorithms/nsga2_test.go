package algorithms

import (
	"math"
	"testing"

	"github.com/go-moea/moea/benchmarks"
	"github.com/go-moea/moea/framework"
	"github.com/go-moea/moea/util"
)

// Test problem: ZDT1 benchmark function
func TestNSGAIIWithZDT1(t *testing.T) {
	numVars := 30
	popSize := 100

	// Create the ZDT1 problem instance
	zdt1 := benchmarks.NewZDT1(numVars)

	// Create NSGA-II instance
	nsga := NewNSGAII(NSGA2Config{PopulationSize: popSize}, zdt1)

	// Run algorithm
	finalPop := nsga.Run()

	// Basic validation
	if len(finalPop) != popSize {
		t.Errorf("Expected population size %d, got %d", popSize, len(finalPop))
	}

	// Verify Pareto front characteristics
	fronts := NonDominatedSort(finalPop)
	if len(fronts) == 0 {
		t.Error("No fronts found in final population")
	}

	firstFront := fronts[0]
	results := make([]framework.ObjectiveSpacePoint, len(firstFront))
	for i := range len(firstFront) {
		results[i] = firstFront[i].Value
	}
	err := util.PlotResultsTo(t.TempDir(), results, zdt1, nsga.Name())
	if err != nil {
		t.Errorf("Plot failed: %v", err)
	}

	// Check if first front is non-dominated
	for i := 0; i < len(firstFront); i++ {
		for j := 0; j < len(firstFront); j++ {
			if i != j && Dominates(firstFront[i], firstFront[j]) {
				t.Error("First front contains dominated solutions")
			}
		}
	}
}

func TestNSGAIIEvaluationsCount(t *testing.T) {
	nsga := NewNSGAII(NSGA2Config{PopulationSize: 10, MaxGenerations: 2}, benchmarks.NewZDT1(5))

	finalPop := nsga.Run()
	if len(finalPop) != 10 {
		t.Errorf("Expected population size 10, got %d", len(finalPop))
	}

	// 10 initial evaluations plus 10 offspring per generation
	if got := nsga.Evaluations(); got != 30 {
		t.Errorf("Expected 30 evaluations, got %d", got)
	}
}

func TestCrowdingDistance(t *testing.T) {
	a := &NSGAIISolution{Value: framework.ObjectiveSpacePoint{0, 1}}
	b := &NSGAIISolution{Value: framework.ObjectiveSpacePoint{0.25, 0.75}}
	c := &NSGAIISolution{Value: framework.ObjectiveSpacePoint{0.75, 0.25}}
	d := &NSGAIISolution{Value: framework.ObjectiveSpacePoint{1, 0}}

	// input order must not matter
	CrowdingDistance([]*NSGAIISolution{c, a, d, b})

	if !math.IsInf(a.Distance, 1) || !math.IsInf(d.Distance, 1) {
		t.Error("Expected boundary solutions to get infinite distance")
	}
	if math.Abs(b.Distance-1.5) > 1e-12 {
		t.Errorf("Expected distance 1.5, got %v", b.Distance)
	}
	if math.Abs(c.Distance-1.5) > 1e-12 {
		t.Errorf("Expected distance 1.5, got %v", c.Distance)
	}

	// fronts of up to two members are all boundary
	e := &NSGAIISolution{Value: framework.ObjectiveSpacePoint{0, 1}}
	f := &NSGAIISolution{Value: framework.ObjectiveSpacePoint{1, 0}}
	CrowdingDistance([]*NSGAIISolution{e, f})
	if !math.IsInf(e.Distance, 1) || !math.IsInf(f.Distance, 1) {
		t.Error("Expected both members of a two-solution front to get infinite distance")
	}
}
