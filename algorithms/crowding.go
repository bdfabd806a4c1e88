package algorithms

import (
	"sort"

	"github.com/go-moea/moea/framework"
)

// RankCrowdingSurvival reduces a population to Size individuals the NSGA-II
// way: non-dominated fronts are kept whole while they fit, and the first front
// that no longer fits is trimmed by crowding distance. It implements the same
// survival seam APDSurvival does, so it can drive the RVEA loop when a plain
// Pareto-based reduction is wanted.
type RankCrowdingSurvival struct {
	// Size is the survivor budget. A non-positive budget keeps every
	// feasible individual.
	Size int
}

var _ framework.SurvivalStrategy = (*RankCrowdingSurvival)(nil)

func (s *RankCrowdingSurvival) Select(pop []*framework.Individual, _ float64) []*framework.Individual {
	feasible := make([]*framework.Individual, 0, len(pop))
	for _, ind := range pop {
		if ind.Feasible() {
			feasible = append(feasible, ind)
		}
	}
	if s.Size <= 0 || len(feasible) <= s.Size {
		return feasible
	}

	// reuse the NSGA-II sort and crowding machinery on lightweight wrappers
	wrapped := make([]*NSGAIISolution, len(feasible))
	owner := make(map[*NSGAIISolution]*framework.Individual, len(feasible))
	for i, ind := range feasible {
		w := &NSGAIISolution{Solution: ind.Solution, Value: ind.Value}
		wrapped[i] = w
		owner[w] = ind
	}

	survivors := make([]*framework.Individual, 0, s.Size)
	for _, front := range NonDominatedSort(wrapped) {
		CrowdingDistance(front)
		if len(survivors)+len(front) <= s.Size {
			for _, w := range front {
				survivors = append(survivors, owner[w])
			}
			continue
		}
		sort.SliceStable(front, func(i, j int) bool {
			return front[i].Distance > front[j].Distance
		})
		for _, w := range front[:s.Size-len(survivors)] {
			survivors = append(survivors, owner[w])
		}
		break
	}
	return survivors
}
