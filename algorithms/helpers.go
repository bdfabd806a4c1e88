package algorithms

import (
	"github.com/go-moea/moea/framework"
)

// NSGAIISolution pairs a candidate solution with its objective values and the
// rank/crowding bookkeeping NSGA-II sorts by. Rank and Distance are
// recomputed every generation.
type NSGAIISolution struct {
	Solution framework.Solution
	Value    framework.ObjectiveSpacePoint
	Rank     int
	Distance float64
}

// NonDominatedSort splits the population into fronts and stamps each
// solution's Rank: fronts[0] holds the non-dominated solutions, fronts[1] the
// ones only dominated by fronts[0], and so on.
func NonDominatedSort(population []*NSGAIISolution) [][]*NSGAIISolution {
	var fronts [][]*NSGAIISolution
	dominated := make(map[int][]int)
	domCount := make([]int, len(population))

	// Calculate domination for each solution
	for i := 0; i < len(population); i++ {
		dominated[i] = []int{}
		for j := 0; j < len(population); j++ {
			if i != j {
				if Dominates(population[i], population[j]) {
					dominated[i] = append(dominated[i], j)
				} else if Dominates(population[j], population[i]) {
					domCount[i]++
				}
			}
		}
	}

	// Find first front
	currentFront := []*NSGAIISolution{}
	currentFrontIndices := []int{}
	for i := 0; i < len(population); i++ {
		if domCount[i] == 0 {
			population[i].Rank = 0
			currentFront = append(currentFront, population[i])
			currentFrontIndices = append(currentFrontIndices, i)
		}
	}
	fronts = append(fronts, currentFront)

	// Find subsequent fronts
	frontIndex := 0
	for len(currentFront) > 0 {
		nextFront := []*NSGAIISolution{}
		nextFrontIndices := []int{}
		for _, idx := range currentFrontIndices {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					population[dominatedIdx].Rank = frontIndex + 1
					nextFront = append(nextFront, population[dominatedIdx])
					nextFrontIndices = append(nextFrontIndices, dominatedIdx)
				}
			}
		}
		frontIndex++
		if len(nextFront) > 0 {
			fronts = append(fronts, nextFront)
		}
		currentFront = nextFront
		currentFrontIndices = nextFrontIndices
	}

	return fronts
}

// Dominates checks if solution a dominates solution b: a is no worse on every
// objective and strictly better on at least one (minimization).
func Dominates(a, b *NSGAIISolution) bool {
	better := false
	for i := 0; i < len(a.Value); i++ {
		if a.Value[i] > b.Value[i] {
			return false
		}
		if a.Value[i] < b.Value[i] {
			better = true
		}
	}
	return better
}

// GetParetoFront extracts the first non-dominated front of the population as
// points in objective space.
func GetParetoFront(population []*NSGAIISolution) []framework.ObjectiveSpacePoint {
	if len(population) == 0 {
		return nil
	}

	fronts := NonDominatedSort(population)
	if len(fronts) == 0 || len(fronts[0]) == 0 {
		return nil
	}

	paretoFront := make([]framework.ObjectiveSpacePoint, len(fronts[0]))
	for i, sol := range fronts[0] {
		paretoFront[i] = sol.Value
	}
	return paretoFront
}
