package util

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/go-moea/moea/framework"
)

// InvertedGenerationalDistance measures how well found approximates the
// reference front: the mean Euclidean distance from each reference point to
// its nearest found point. Lower is better; zero means every reference point
// is matched exactly. An empty reference yields 0, an empty found set +Inf.
func InvertedGenerationalDistance(reference, found []framework.ObjectiveSpacePoint) float64 {
	if len(reference) == 0 {
		return 0
	}
	if len(found) == 0 {
		return math.Inf(1)
	}

	total := 0.0
	for _, ref := range reference {
		nearest := math.Inf(1)
		for _, p := range found {
			if d := floats.Distance(ref, p, 2); d < nearest {
				nearest = d
			}
		}
		total += nearest
	}
	return total / float64(len(reference))
}
