package framework

// Individual pairs a candidate solution with its evaluated objective values
// and the bookkeeping survival selection needs.
type Individual struct {
	Solution Solution
	// Value is the evaluated objective vector.
	Value ObjectiveSpacePoint
	// Violation is the aggregate constraint violation: the sum of all
	// positive constraint values. Zero means the solution is feasible.
	Violation float64

	// Survival-selection metadata, recomputed on every selection call.
	// It is only meaningful for the generation that set it.
	Niche int     // index of the assigned reference direction, -1 if unassigned
	Theta float64 // angle to the assigned direction, radians
	APD   float64 // angle-penalized distance within the niche
	Opt   bool    // true for the winner of the niche
}

// Feasible reports whether the individual violates no constraints.
func (ind *Individual) Feasible() bool {
	return ind.Violation <= 0
}

// SurvivalStrategy reduces a combined parent+offspring population to the
// survivors forming the next generation.
type SurvivalStrategy interface {
	// Select returns the surviving individuals. Progress is the fraction of
	// the search budget consumed so far, in [0, 1].
	Select(pop []*Individual, progress float64) []*Individual
}

// AdaptiveSurvival is implemented by survival strategies whose internal
// geometry can be rescaled as estimates of the objective-space spread improve.
type AdaptiveSurvival interface {
	SurvivalStrategy
	Adapt()
}
