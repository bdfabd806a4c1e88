package algorithms

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/go-moea/moea/framework"
)

// NSGA2Config configures NSGA-II. Zero values fall back to the defaults
// documented per field.
type NSGA2Config struct {
	// PopulationSize defaults to 100.
	PopulationSize int
	// MaxGenerations defaults to 250.
	MaxGenerations int
	// CrossoverProbability and MutationProbability drive the variation
	// operators of the problem's Solution type. Defaults 0.9 and 0.1.
	CrossoverProbability float64
	MutationProbability  float64
	// TournamentSize defaults to 2.
	TournamentSize int
}

// NSGAII implements the classic rank-and-crowding algorithm. Constraints are
// ignored; constrained problems are better served by RVEA.
type NSGAII struct {
	config  NSGA2Config
	problem framework.Problem
	evals   int
}

// NewNSGAII creates an NSGA-II instance for the given problem.
func NewNSGAII(config NSGA2Config, problem framework.Problem) *NSGAII {
	if config.PopulationSize == 0 {
		config.PopulationSize = 100
	}
	if config.MaxGenerations == 0 {
		config.MaxGenerations = 250
	}
	if config.CrossoverProbability == 0 {
		config.CrossoverProbability = 0.9
	}
	if config.MutationProbability == 0 {
		config.MutationProbability = 0.1
	}
	if config.TournamentSize == 0 {
		config.TournamentSize = 2
	}
	return &NSGAII{
		config:  config,
		problem: problem,
	}
}

func (n *NSGAII) Name() string {
	return "NSGA-II"
}

// Run executes the algorithm and returns the final population.
func (n *NSGAII) Run() []*NSGAIISolution {
	sols := n.problem.Initialize(n.config.PopulationSize)
	population := make([]*NSGAIISolution, len(sols))
	for i, sol := range sols {
		population[i] = &NSGAIISolution{Solution: sol, Value: n.evaluate(sol)}
	}
	for _, front := range NonDominatedSort(population) {
		CrowdingDistance(front)
	}

	for gen := 0; gen < n.config.MaxGenerations; gen++ {
		offspring := make([]*NSGAIISolution, 0, n.config.PopulationSize)
		for len(offspring) < n.config.PopulationSize {
			p1 := n.tournamentSelect(population)
			p2 := n.tournamentSelect(population)

			c1, c2 := p1.Solution.Crossover(p2.Solution, n.config.CrossoverProbability)
			c1.Mutate(n.config.MutationProbability)
			c2.Mutate(n.config.MutationProbability)

			offspring = append(offspring, &NSGAIISolution{Solution: c1, Value: n.evaluate(c1)})
			if len(offspring) < n.config.PopulationSize {
				offspring = append(offspring, &NSGAIISolution{Solution: c2, Value: n.evaluate(c2)})
			}
		}

		combined := make([]*NSGAIISolution, 0, len(population)+len(offspring))
		combined = append(combined, population...)
		combined = append(combined, offspring...)

		fronts := NonDominatedSort(combined)

		// Refill the population front by front; the front that no longer fits
		// whole is trimmed by crowding distance.
		population = make([]*NSGAIISolution, 0, n.config.PopulationSize)
		frontIndex := 0
		for frontIndex < len(fronts) && len(population)+len(fronts[frontIndex]) <= n.config.PopulationSize {
			CrowdingDistance(fronts[frontIndex])
			population = append(population, fronts[frontIndex]...)
			frontIndex++
		}
		if len(population) < n.config.PopulationSize && frontIndex < len(fronts) {
			CrowdingDistance(fronts[frontIndex])
			sort.Slice(fronts[frontIndex], func(i, j int) bool {
				return fronts[frontIndex][i].Distance > fronts[frontIndex][j].Distance
			})
			population = append(population, fronts[frontIndex][:n.config.PopulationSize-len(population)]...)
		}
	}

	return population
}

// Evaluations returns the number of objective evaluations performed so far.
func (n *NSGAII) Evaluations() int {
	return n.evals
}

func (n *NSGAII) evaluate(sol framework.Solution) framework.ObjectiveSpacePoint {
	objs := n.problem.ObjectiveFuncs()
	value := make(framework.ObjectiveSpacePoint, len(objs))
	for i, f := range objs {
		value[i] = f(sol)
	}
	n.evals++
	return value
}

// tournamentSelect picks the best of TournamentSize random contestants,
// preferring lower rank and, within a rank, higher crowding distance.
func (n *NSGAII) tournamentSelect(population []*NSGAIISolution) *NSGAIISolution {
	best := population[rand.IntN(len(population))]
	for i := 1; i < n.config.TournamentSize; i++ {
		contestant := population[rand.IntN(len(population))]
		if contestant.Rank < best.Rank || (contestant.Rank == best.Rank && contestant.Distance > best.Distance) {
			best = contestant
		}
	}
	return best
}

// CrowdingDistance calculates crowding distance for solutions in a front
func CrowdingDistance(front []*NSGAIISolution) {
	if len(front) <= 2 {
		for i := range front {
			front[i].Distance = math.Inf(1)
		}
		return
	}

	numObjectives := len(front[0].Value)
	for i := range front {
		front[i].Distance = 0
	}

	for m := 0; m < numObjectives; m++ {
		// Sort by each objective
		sort.Slice(front, func(i, j int) bool {
			return front[i].Value[m] < front[j].Value[m]
		})

		// Set boundary points to infinity
		front[0].Distance = math.Inf(1)
		front[len(front)-1].Distance = math.Inf(1)

		objectiveRange := front[len(front)-1].Value[m] - front[0].Value[m]
		if objectiveRange == 0 {
			continue
		}

		// Calculate distance for intermediate points
		for i := 1; i < len(front)-1; i++ {
			front[i].Distance += (front[i+1].Value[m] - front[i-1].Value[m]) / objectiveRange
		}
	}
}
