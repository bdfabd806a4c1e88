package framework

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// Evaluate computes the objective vector and aggregate constraint violation
// for a single solution.
func Evaluate(problem Problem, sol Solution) *Individual {
	objs := problem.ObjectiveFuncs()
	value := make(ObjectiveSpacePoint, len(objs))
	for i, f := range objs {
		value[i] = f(sol)
	}

	violation := 0.0
	for _, g := range problem.Constraints() {
		if v := g(sol); v > 0 {
			violation += v
		}
	}

	return &Individual{
		Solution:  sol,
		Value:     value,
		Violation: violation,
		Niche:     -1,
	}
}

// EvaluateAll evaluates the given solutions on a bounded worker pool and
// returns the individuals in input order. Workers <= 0 uses one worker per
// available CPU.
func EvaluateAll(problem Problem, sols []Solution, workers int) []*Individual {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	individuals := make([]*Individual, len(sols))
	p := pool.New().WithMaxGoroutines(workers)
	for i, sol := range sols {
		p.Go(func() {
			individuals[i] = Evaluate(problem, sol)
		})
	}
	p.Wait()

	return individuals
}
