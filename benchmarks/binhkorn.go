package benchmarks

import (
	"math"
	"math/rand/v2"

	"github.com/go-moea/moea/framework"
)

// BinhKorn is a constrained bi-objective benchmark. Both constraints are
// quadratic; the first one cuts into the search box, so infeasible solutions
// show up in random populations and exercise the constraint-violation path.
type BinhKorn struct{}

func NewBinhKorn() *BinhKorn {
	return &BinhKorn{}
}

func (p *BinhKorn) Name() string {
	return "BinhKorn"
}

func (p *BinhKorn) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *BinhKorn) f1(x framework.Solution) float64 {
	xx := x.(*framework.RealSolution).Variables
	return 4*xx[0]*xx[0] + 4*xx[1]*xx[1]
}

func (p *BinhKorn) f2(x framework.Solution) float64 {
	xx := x.(*framework.RealSolution).Variables
	return math.Pow(xx[0]-5, 2) + math.Pow(xx[1]-5, 2)
}

// Constraints returns the two constraints in g(x) <= 0 form:
// (x-5)^2 + y^2 <= 25 and (x-8)^2 + (y+3)^2 >= 7.7.
func (p *BinhKorn) Constraints() []framework.Constraint {
	g1 := func(x framework.Solution) float64 {
		xx := x.(*framework.RealSolution).Variables
		return math.Pow(xx[0]-5, 2) + xx[1]*xx[1] - 25
	}
	g2 := func(x framework.Solution) float64 {
		xx := x.(*framework.RealSolution).Variables
		return 7.7 - math.Pow(xx[0]-8, 2) - math.Pow(xx[1]+3, 2)
	}
	return []framework.Constraint{g1, g2}
}

func (p *BinhKorn) Bounds() []framework.Bounds {
	return []framework.Bounds{
		{L: 0.0, H: 5.0},
		{L: 0.0, H: 3.0},
	}
}

func (p *BinhKorn) Initialize(popSize int) []framework.Solution {
	population := make([]framework.Solution, popSize)
	b := p.Bounds()
	for i := 0; i < popSize; i++ {
		vars := make([]float64, len(b))
		for j := range b {
			vars[j] = b[j].L + rand.Float64()*(b[j].H-b[j].L)
		}
		population[i] = framework.NewRealSolution(vars, b)
	}
	return population
}

// TrueParetoFront follows the known Pareto set: x = y on [0, 3], then y
// stays at 3 while x continues to 5.
func (p *BinhKorn) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		t := 5 * float64(i) / float64(numPoints-1)
		x, y := t, t
		if t > 3 {
			y = 3
		}
		points[i] = framework.ObjectiveSpacePoint{
			4*x*x + 4*y*y,
			math.Pow(x-5, 2) + math.Pow(y-5, 2),
		}
	}
	return points
}
