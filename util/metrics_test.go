package util_test

import (
	"math"
	"testing"

	"github.com/go-moea/moea/framework"
	"github.com/go-moea/moea/util"
)

func TestInvertedGenerationalDistance(t *testing.T) {
	ref := []framework.ObjectiveSpacePoint{{0, 0}, {1, 1}}

	if got := util.InvertedGenerationalDistance(ref, ref); got != 0 {
		t.Errorf("IGD of a front against itself = %v, want 0", got)
	}

	// (0, 1) is at distance 1 from both reference points.
	if got := util.InvertedGenerationalDistance(ref, []framework.ObjectiveSpacePoint{{0, 1}}); math.Abs(got-1) > 1e-12 {
		t.Errorf("IGD = %v, want 1", got)
	}

	// Each reference point picks its nearest found point: 0 for (0, 0)
	// and 2 for (2, 0), averaging to 1.
	spread := []framework.ObjectiveSpacePoint{{0, 0}, {2, 0}}
	found := []framework.ObjectiveSpacePoint{{0, 0}, {7, 24}}
	if got := util.InvertedGenerationalDistance(spread, found); math.Abs(got-1) > 1e-12 {
		t.Errorf("IGD = %v, want 1", got)
	}
}

func TestInvertedGenerationalDistanceEmptyFronts(t *testing.T) {
	ref := []framework.ObjectiveSpacePoint{{0, 0}}

	if got := util.InvertedGenerationalDistance(nil, ref); got != 0 {
		t.Errorf("IGD with no reference = %v, want 0", got)
	}
	if got := util.InvertedGenerationalDistance(ref, nil); !math.IsInf(got, 1) {
		t.Errorf("IGD with no found points = %v, want +Inf", got)
	}
}
