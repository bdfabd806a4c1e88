// Package refdirs generates reference-direction sets on the unit simplex,
// used to guide many-objective survival selection.
package refdirs

import (
	"fmt"

	"github.com/patrickmn/go-cache"
	"gonum.org/v1/gonum/stat/combin"
)

// Generation is a pure function of (dim, partitions), so the canonical set for
// each pair is computed once and memoized. Callers always receive copies.
var lattice = cache.New(cache.NoExpiration, 0)

// NumPoints returns the number of Das-Dennis directions generated for the
// given dimension and partition count: C(partitions+dim-1, dim-1).
func NumPoints(dim, partitions int) int {
	return combin.Binomial(partitions+dim-1, dim-1)
}

// DasDennis generates the simplex-lattice reference directions for the given
// objective-space dimension: every vector with non-negative entries that are
// integer multiples of 1/partitions and sum to one. With zero partitions the
// single centroid direction is returned.
func DasDennis(dim, partitions int) ([][]float64, error) {
	if dim < 1 {
		return nil, fmt.Errorf("reference directions need at least one dimension, got %d", dim)
	}
	if partitions < 0 {
		return nil, fmt.Errorf("number of partitions must be non-negative, got %d", partitions)
	}
	if partitions == 0 {
		centroid := make([]float64, dim)
		for i := range centroid {
			centroid[i] = 1.0 / float64(dim)
		}
		return [][]float64{centroid}, nil
	}

	key := fmt.Sprintf("%d/%d", dim, partitions)
	if cached, ok := lattice.Get(key); ok {
		return copyDirections(cached.([][]float64)), nil
	}

	dirs := make([][]float64, 0, NumPoints(dim, partitions))
	recurse(&dirs, make([]float64, dim), partitions, partitions, 0)
	lattice.Set(key, dirs, cache.NoExpiration)

	return copyDirections(dirs), nil
}

// recurse distributes the remaining beta partition units over the entries at
// depth and beyond, emitting one direction per complete assignment. The first
// coordinate ascends slowest, which fixes the ordering of the set.
func recurse(dirs *[][]float64, dir []float64, partitions, beta, depth int) {
	if depth == len(dir)-1 {
		dir[depth] = float64(beta) / float64(partitions)
		out := make([]float64, len(dir))
		copy(out, dir)
		*dirs = append(*dirs, out)
		return
	}
	for i := 0; i <= beta; i++ {
		dir[depth] = float64(i) / float64(partitions)
		recurse(dirs, dir, partitions, beta-i, depth+1)
	}
}

// Default returns the reference directions used when the caller does not
// supply a set: a single direction for one objective, a 100-point lattice for
// two, a 91-point lattice for three. Problems with more objectives need an
// explicit set sized to the population budget the caller has in mind.
func Default(numObjectives int) ([][]float64, error) {
	switch numObjectives {
	case 1:
		return [][]float64{{1.0}}, nil
	case 2:
		return DasDennis(2, 99)
	case 3:
		return DasDennis(3, 12)
	default:
		return nil, fmt.Errorf("no default reference directions for %d objectives, please provide them directly", numObjectives)
	}
}

func copyDirections(dirs [][]float64) [][]float64 {
	out := make([][]float64, len(dirs))
	for i, d := range dirs {
		row := make([]float64, len(d))
		copy(row, d)
		out[i] = row
	}
	return out
}
