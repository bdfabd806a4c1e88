package algorithms

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"k8s.io/klog/v2"

	"github.com/go-moea/moea/framework"
	"github.com/go-moea/moea/refdirs"
)

// RVEAConfig configures the reference-vector-guided evolutionary algorithm.
// Zero values fall back to the defaults documented per field.
type RVEAConfig struct {
	// ReferenceDirections holds one direction per row, one entry per
	// objective. When nil, a default set for the problem's objective count is
	// generated and the population size is bound to its length.
	ReferenceDirections [][]float64
	// Alpha is the APD penalty exponent. Default 2.0.
	Alpha float64
	// AdaptFrequency is the fraction of total progress between two
	// reference-direction adaptations. Default 0.1.
	AdaptFrequency float64
	// PopulationSize defaults to the number of reference directions. The
	// niching only works with that correspondence, so overriding it requires
	// supplying ReferenceDirections explicitly.
	PopulationSize int
	// NumOffsprings defaults to PopulationSize.
	NumOffsprings int
	// CrossoverProbability and MutationProbability drive the variation
	// operators of the problem's Solution type. Defaults 0.9 and 0.1.
	CrossoverProbability float64
	MutationProbability  float64
	// Termination defaults to 250 generations.
	Termination Termination
	// Survival overrides the survival strategy. Defaults to APD survival
	// built from the reference directions and Alpha.
	Survival framework.SurvivalStrategy
	// Workers bounds parallel objective evaluation. <= 0 uses all CPUs.
	Workers int
}

// RVEA couples a thin generational loop to the APD survival engine: the
// engine owns all selection decisions, the loop owns offspring generation,
// the adaptation cadence and the reporting of the optimum.
type RVEA struct {
	config   RVEAConfig
	problem  framework.Problem
	survival framework.SurvivalStrategy
	nAdapt   int
	pop      []*framework.Individual
	evals    int
}

// NewRVEA validates and defaults the configuration against the given problem.
func NewRVEA(config RVEAConfig, problem framework.Problem) (*RVEA, error) {
	numObj := len(problem.ObjectiveFuncs())

	dirs := config.ReferenceDirections
	if dirs == nil {
		if config.PopulationSize > 0 {
			return nil, fmt.Errorf("population size is bound to the reference-direction count; supply ReferenceDirections to override it")
		}
		var err error
		dirs, err = refdirs.Default(numObj)
		if err != nil {
			return nil, err
		}
	}
	for i, d := range dirs {
		if len(d) != numObj {
			return nil, fmt.Errorf("reference direction %d has %d entries, want %d objectives", i, len(d), numObj)
		}
	}
	config.ReferenceDirections = dirs

	if config.Alpha == 0 {
		config.Alpha = 2.0
	}
	if config.AdaptFrequency == 0 {
		config.AdaptFrequency = 0.1
	}
	if config.PopulationSize == 0 {
		config.PopulationSize = len(dirs)
	}
	if config.NumOffsprings == 0 {
		config.NumOffsprings = config.PopulationSize
	}
	if config.CrossoverProbability == 0 {
		config.CrossoverProbability = 0.9
	}
	if config.MutationProbability == 0 {
		config.MutationProbability = 0.1
	}
	if config.Termination == nil {
		config.Termination = &MaxGenerations{N: 250}
	}

	survival := config.Survival
	if survival == nil {
		var err error
		survival, err = NewAPDSurvival(dirs, config.Alpha)
		if err != nil {
			return nil, err
		}
	}

	return &RVEA{
		config:   config,
		problem:  problem,
		survival: survival,
		nAdapt:   1,
	}, nil
}

func (r *RVEA) Name() string {
	return "RVEA"
}

// Advance runs one survival-selection round on the merged population and, on
// the configured cadence, adapts the reference-direction geometry. The
// cadence check is level-triggered and fires at most once per call, so a
// progress jump spanning several adaptation increments is caught up one
// adaptation per subsequent call rather than all at once.
func (r *RVEA) Advance(pop []*framework.Individual, progress float64) []*framework.Individual {
	survivors := r.survival.Select(pop, progress)

	if progress/r.config.AdaptFrequency >= float64(r.nAdapt) {
		if adaptive, ok := r.survival.(framework.AdaptiveSurvival); ok {
			adaptive.Adapt()
		}
		r.nAdapt++
	}

	return survivors
}

// Run executes the generational loop until the termination budget is
// exhausted and returns the final population. The context is checked once per
// generation; on cancellation the population selected so far is returned
// together with the context's error.
func (r *RVEA) Run(ctx context.Context) ([]*framework.Individual, error) {
	logger := klog.FromContext(ctx)

	term := r.config.Termination
	switch term.(type) {
	case *MaxGenerations, *MaxEvaluations:
	default:
		// The APD penalty schedules its pressure shift off the progress
		// fraction; any termination source is accepted as long as it reports
		// one, but generation or evaluation budgets are the intended ones.
		logger.V(2).Info("unrecognized termination source, using its reported progress as-is",
			"type", fmt.Sprintf("%T", term))
	}

	logger.V(2).Info("starting run", "algorithm", r.Name(), "problem", r.problem.Name(),
		"directions", len(r.config.ReferenceDirections), "populationSize", r.config.PopulationSize)

	sols := r.problem.Initialize(r.config.PopulationSize)
	pop := framework.EvaluateAll(r.problem, sols, r.config.Workers)
	r.evals = len(pop)

	// the initial selection establishes the ideal point and niche metadata
	pop = r.nextGeneration(pop, term.Progress(0, r.evals))
	r.pop = pop

	for gen := 1; !term.Done(gen-1, r.evals); gen++ {
		if err := ctx.Err(); err != nil {
			return r.pop, err
		}

		offspring := r.variate(pop)
		evaluated := framework.EvaluateAll(r.problem, offspring, r.config.Workers)
		r.evals += len(evaluated)

		merged := make([]*framework.Individual, 0, len(pop)+len(evaluated))
		merged = append(merged, pop...)
		merged = append(merged, evaluated...)

		progress := term.Progress(gen, r.evals)
		pop = r.nextGeneration(merged, progress)
		r.pop = pop

		logger.V(4).Info("generation complete", "generation", gen, "progress", progress,
			"survivors", len(pop), "evaluations", r.evals)
	}

	logger.V(2).Info("run finished", "evaluations", r.evals, "population", len(r.pop))
	return r.pop, nil
}

// nextGeneration applies survival selection and keeps the least-violating
// individuals whenever selection returns nobody, which happens while the
// whole population is still infeasible.
func (r *RVEA) nextGeneration(merged []*framework.Individual, progress float64) []*framework.Individual {
	survivors := r.Advance(merged, progress)
	if len(survivors) == 0 {
		survivors = leastViolating(merged, r.config.PopulationSize)
	}
	return survivors
}

// variate produces offspring from randomly paired parents through the
// solutions' own crossover and mutation operators, then drops exact
// duplicates of the parents and of each other. A generation may therefore
// carry slightly fewer offspring than configured.
func (r *RVEA) variate(pop []*framework.Individual) []framework.Solution {
	parents := make([]framework.Solution, len(pop))
	for i, ind := range pop {
		parents[i] = ind.Solution
	}

	offspring := make([]framework.Solution, 0, r.config.NumOffsprings)
	for len(offspring) < r.config.NumOffsprings {
		p1 := parents[rand.IntN(len(parents))]
		p2 := parents[rand.IntN(len(parents))]

		c1, c2 := p1.Crossover(p2, r.config.CrossoverProbability)
		c1.Mutate(r.config.MutationProbability)
		c2.Mutate(r.config.MutationProbability)

		offspring = append(offspring, c1)
		if len(offspring) < r.config.NumOffsprings {
			offspring = append(offspring, c2)
		}
	}

	return framework.EliminateDuplicates(offspring, parents, framework.DuplicateEpsilon)
}

// Evaluations returns the number of objective evaluations performed so far.
func (r *RVEA) Evaluations() int {
	return r.evals
}

// Optimum reports the algorithm's current optimum approximation from its live
// population.
func (r *RVEA) Optimum() []*framework.Individual {
	return Optimum(r.pop)
}

// Optimum applies the reporting rule for a population: when it contains any
// feasible individual the whole population is the optimum set, otherwise the
// single least-violating individual represents it (first occurrence on ties).
func Optimum(pop []*framework.Individual) []*framework.Individual {
	if len(pop) == 0 {
		return nil
	}
	for _, ind := range pop {
		if ind.Feasible() {
			out := make([]*framework.Individual, len(pop))
			copy(out, pop)
			return out
		}
	}

	best := 0
	for i := 1; i < len(pop); i++ {
		if pop[i].Violation < pop[best].Violation {
			best = i
		}
	}
	return []*framework.Individual{pop[best]}
}

// leastViolating returns the n individuals with the smallest constraint
// violation, keeping input order between equal violations.
func leastViolating(pop []*framework.Individual, n int) []*framework.Individual {
	sorted := make([]*framework.Individual, len(pop))
	copy(sorted, pop)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Violation < sorted[j].Violation
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
