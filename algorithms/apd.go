package algorithms

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/go-moea/moea/framework"
)

// geometryEpsilon floors near-singular values in the selection geometry: the
// distance of a candidate sitting exactly on the ideal point and the neighbor
// angle between two coinciding reference directions.
const geometryEpsilon = 1e-64

// APDSurvival selects survivors by angle-penalized distance. Every feasible
// candidate is assigned to the reference direction it is closest to by angle,
// and within each non-empty niche the candidate with the smallest penalized
// distance to the ideal point survives. The penalty grows with search
// progress, so early generations reward closeness to the ideal point while
// late generations increasingly reward angular alignment with the directions.
type APDSurvival struct {
	alpha   float64
	refDirs *mat.Dense // directions as supplied; adaptation rescales from these
	extreme []int      // directions coinciding with a coordinate axis
	niches  [][]int    // member buckets from the last selection
	state   *engineState
}

var _ framework.AdaptiveSurvival = (*APDSurvival)(nil)

// engineState bundles the geometry the selection math reads. Select and Adapt
// swap in a fresh value instead of editing fields, so no call ever observes a
// half-updated geometry.
type engineState struct {
	v     *mat.Dense // unit reference directions, one per row
	gamma []float64  // angle from each direction to its nearest neighbor
	ideal []float64  // best value seen per objective, starts at +Inf
	nadir []float64  // worst survivor value per objective, nil before the first selection
}

// NewAPDSurvival builds the survival engine from a matrix of reference
// directions (one per row, entries per objective) and the penalty exponent
// alpha. The directions do not need to be normalized.
func NewAPDSurvival(refDirs [][]float64, alpha float64) (*APDSurvival, error) {
	if len(refDirs) == 0 {
		return nil, fmt.Errorf("at least one reference direction is required")
	}
	dim := len(refDirs[0])
	if dim == 0 {
		return nil, fmt.Errorf("reference directions need at least one dimension")
	}
	if alpha < 0 {
		return nil, fmt.Errorf("alpha must be non-negative, got %v", alpha)
	}

	dirs := mat.NewDense(len(refDirs), dim, nil)
	for i, d := range refDirs {
		if len(d) != dim {
			return nil, fmt.Errorf("reference direction %d has %d entries, want %d", i, len(d), dim)
		}
		if floats.Norm(d, 2) == 0 {
			return nil, fmt.Errorf("reference direction %d is the zero vector", i)
		}
		dirs.SetRow(i, d)
	}

	ideal := make([]float64, dim)
	for j := range ideal {
		ideal[j] = math.Inf(1)
	}

	v := unitDirections(dirs)
	return &APDSurvival{
		alpha:   alpha,
		refDirs: dirs,
		extreme: extremeDirections(dirs),
		state: &engineState{
			v:     v,
			gamma: neighborAngles(v),
			ideal: ideal,
		},
	}, nil
}

// Select reduces pop to at most one survivor per reference direction.
// Infeasible individuals are filtered out first; stale selection metadata is
// cleared on every input individual. All assigned candidates get their niche,
// theta and APD recorded, and each niche winner carries Opt=true.
func (s *APDSurvival) Select(pop []*framework.Individual, progress float64) []*framework.Individual {
	for _, ind := range pop {
		ind.Niche, ind.Theta, ind.APD, ind.Opt = -1, 0, 0, false
	}

	feasible := make([]*framework.Individual, 0, len(pop))
	for _, ind := range pop {
		if ind.Feasible() {
			feasible = append(feasible, ind)
		}
	}
	if len(feasible) == 0 {
		return nil
	}

	st := s.state
	nDirs, dim := st.v.Dims()

	// objective matrix, one candidate per row
	F := mat.NewDense(len(feasible), dim, nil)
	for i, ind := range feasible {
		F.SetRow(i, ind.Value)
	}

	// update the ideal point estimate before translating
	ideal := make([]float64, dim)
	copy(ideal, st.ideal)
	for j := 0; j < dim; j++ {
		for i := 0; i < len(feasible); i++ {
			ideal[j] = math.Min(ideal[j], F.At(i, j))
		}
	}

	// translate so the ideal point becomes the origin, record each candidate's
	// distance to it, and scale every row down to a unit direction
	dist := make([]float64, len(feasible))
	row := make([]float64, dim)
	for i := range feasible {
		mat.Row(row, i, F)
		floats.Sub(row, ideal)
		d := floats.Norm(row, 2)
		if d < geometryEpsilon {
			d = geometryEpsilon
		}
		dist[i] = d
		floats.Scale(1/d, row)
		F.SetRow(i, row)
	}

	// acute angle between every candidate direction and reference direction
	cosines := mat.NewDense(len(feasible), nDirs, nil)
	cosines.Mul(F, st.v.T())
	angles := mat.NewDense(len(feasible), nDirs, nil)
	angles.Apply(func(_, _ int, c float64) float64 {
		return math.Acos(clampCosine(c))
	}, cosines)

	// niche assignment: nearest direction by angle, first index wins ties
	niches := make([][]int, nDirs)
	angleRow := make([]float64, nDirs)
	for i := range feasible {
		mat.Row(angleRow, i, angles)
		k := floats.MinIdx(angleRow)
		niches[k] = append(niches[k], i)
	}

	// bi-objective problems skip the dimensionality correction
	m := 1.0
	if dim > 2 {
		m = float64(dim)
	}
	progressTerm := m * math.Pow(progress, s.alpha)

	// one survivor per non-empty niche: the member with the smallest APD
	survivors := make([]*framework.Individual, 0, nDirs)
	for k, members := range niches {
		if len(members) == 0 {
			continue
		}
		best, bestAPD := -1, math.Inf(1)
		for _, i := range members {
			theta := angles.At(i, k)
			apd := dist[i] * (1 + progressTerm*(theta/st.gamma[k]))
			ind := feasible[i]
			ind.Niche, ind.Theta, ind.APD, ind.Opt = k, theta, apd, false
			if apd < bestAPD {
				best, bestAPD = i, apd
			}
		}
		feasible[best].Opt = true
		survivors = append(survivors, feasible[best])
	}

	// the nadir estimate comes from the survivors' untranslated objectives
	nadir := make([]float64, dim)
	for j := range nadir {
		nadir[j] = math.Inf(-1)
	}
	for _, ind := range survivors {
		for j, f := range ind.Value {
			nadir[j] = math.Max(nadir[j], f)
		}
	}

	s.niches = niches
	s.state = &engineState{v: st.v, gamma: st.gamma, ideal: ideal, nadir: nadir}

	return survivors
}

// Adapt rescales the original reference directions by the objective-space
// spread observed so far (nadir minus ideal), renormalizes them, and
// recomputes the neighbor angles. It is a no-op until a selection call has
// established both estimates.
func (s *APDSurvival) Adapt() {
	st := s.state
	if st.ideal == nil || st.nadir == nil {
		return
	}

	scaled := unitDirections(s.refDirs)
	r, c := scaled.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			scaled.Set(i, j, scaled.At(i, j)*(st.nadir[j]-st.ideal[j]))
		}
	}

	v := unitDirections(scaled)
	s.state = &engineState{v: v, gamma: neighborAngles(v), ideal: st.ideal, nadir: st.nadir}
}

// Directions returns a copy of the current unit reference directions.
func (s *APDSurvival) Directions() *mat.Dense {
	return mat.DenseCopyOf(s.state.v)
}

// NeighborAngles returns a copy of the current neighbor angles, one per
// reference direction.
func (s *APDSurvival) NeighborAngles() []float64 {
	out := make([]float64, len(s.state.gamma))
	copy(out, s.state.gamma)
	return out
}

// Ideal returns the ideal point estimate: the componentwise minimum objective
// value selection has seen so far. Entries are +Inf before any selection.
func (s *APDSurvival) Ideal() []float64 {
	out := make([]float64, len(s.state.ideal))
	copy(out, s.state.ideal)
	return out
}

// Nadir returns the nadir point estimate from the last selection call, or nil
// if none has run yet.
func (s *APDSurvival) Nadir() []float64 {
	if s.state.nadir == nil {
		return nil
	}
	out := make([]float64, len(s.state.nadir))
	copy(out, s.state.nadir)
	return out
}

// ExtremeDirections returns the indices of reference directions that coincide
// with a coordinate axis. They receive no special treatment during selection
// but are useful when inspecting how the boundary of the front is covered.
func (s *APDSurvival) ExtremeDirections() []int {
	out := make([]int, len(s.extreme))
	copy(out, s.extreme)
	return out
}

// Niches returns the niche membership of the last selection call: one bucket
// per reference direction holding indices into that call's feasible subset.
func (s *APDSurvival) Niches() [][]int {
	out := make([][]int, len(s.niches))
	for k, members := range s.niches {
		out[k] = make([]int, len(members))
		copy(out[k], members)
	}
	return out
}

// unitDirections returns a copy of dirs with every row scaled to unit L2
// norm. Zero rows are floored to keep the scaling finite.
func unitDirections(dirs *mat.Dense) *mat.Dense {
	r, c := dirs.Dims()
	v := mat.NewDense(r, c, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, dirs)
		n := floats.Norm(row, 2)
		if n < geometryEpsilon {
			n = geometryEpsilon
		}
		floats.Scale(1/n, row)
		v.SetRow(i, row)
	}
	return v
}

// neighborAngles returns, per direction, the angle to its nearest neighboring
// direction: the arccos of the second-largest value in its row of the cosine
// matrix (the largest is the self-similarity).
func neighborAngles(v *mat.Dense) []float64 {
	n, _ := v.Dims()
	gamma := make([]float64, n)
	if n == 1 {
		// a lone direction has no neighbor; fall back to the widest angle
		gamma[0] = math.Pi
		return gamma
	}

	cos := mat.NewDense(n, n, nil)
	cos.Mul(v, v.T())
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Row(row, i, cos)
		sort.Float64s(row)
		gamma[i] = math.Max(math.Acos(clampCosine(row[n-2])), geometryEpsilon)
	}
	return gamma
}

// extremeDirections returns the indices of rows equal to a coordinate axis.
func extremeDirections(dirs *mat.Dense) []int {
	r, c := dirs.Dims()
	var idx []int
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			match := true
			for k := 0; k < c; k++ {
				want := 0.0
				if k == j {
					want = 1.0
				}
				if dirs.At(i, k) != want {
					match = false
					break
				}
			}
			if match {
				idx = append(idx, i)
				break
			}
		}
	}
	return idx
}

func clampCosine(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
