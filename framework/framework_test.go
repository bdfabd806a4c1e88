package framework

import (
	"math"
	"testing"
)

func unitBounds(n int) []Bounds {
	b := make([]Bounds, n)
	for i := range b {
		b[i] = Bounds{L: 0, H: 1}
	}
	return b
}

func TestRealSolutionCloneIsIndependent(t *testing.T) {
	orig := NewRealSolution([]float64{0.25, 0.5}, unitBounds(2))

	clone := orig.Clone().(*RealSolution)
	clone.Variables[0] = 0.9

	if orig.Variables[0] != 0.25 {
		t.Errorf("expected the original to keep its variables, got %v", orig.Variables)
	}
}

func TestRealSolutionCrossoverStaysWithinBounds(t *testing.T) {
	b := unitBounds(8)
	p1 := NewRealSolution([]float64{0, 0.1, 0.2, 0.3, 0.7, 0.8, 0.9, 1}, b)
	p2 := NewRealSolution([]float64{1, 0.9, 0.8, 0.7, 0.3, 0.2, 0.1, 0}, b)

	for trial := 0; trial < 50; trial++ {
		c1, c2 := p1.Crossover(p2, 1.0)
		for _, child := range []*RealSolution{c1.(*RealSolution), c2.(*RealSolution)} {
			for i, v := range child.Variables {
				if v < b[i].L || v > b[i].H {
					t.Fatalf("child variable %d out of bounds: %v", i, v)
				}
			}
		}
	}

	// the parents never change
	if p1.Variables[0] != 0 || p2.Variables[0] != 1 {
		t.Error("expected crossover to leave the parents untouched")
	}
}

func TestRealSolutionCrossoverAtRateZeroCopiesParents(t *testing.T) {
	b := unitBounds(3)
	p1 := NewRealSolution([]float64{0.1, 0.2, 0.3}, b)
	p2 := NewRealSolution([]float64{0.9, 0.8, 0.7}, b)

	c1, c2 := p1.Crossover(p2, 0)
	for i := range p1.Variables {
		if c1.(*RealSolution).Variables[i] != p1.Variables[i] {
			t.Errorf("expected child 1 to copy parent 1, got %v", c1)
		}
		if c2.(*RealSolution).Variables[i] != p2.Variables[i] {
			t.Errorf("expected child 2 to copy parent 2, got %v", c2)
		}
	}
}

func TestRealSolutionMutateStaysWithinBounds(t *testing.T) {
	b := []Bounds{{L: -1, H: 1}, {L: 0, H: 10}}

	for trial := 0; trial < 50; trial++ {
		sol := NewRealSolution([]float64{0.5, 5}, b)
		sol.Mutate(1.0)
		for i, v := range sol.Variables {
			if v < b[i].L || v > b[i].H {
				t.Fatalf("variable %d out of bounds after mutation: %v", i, v)
			}
		}
	}
}

func TestBinarySolutionCrossover(t *testing.T) {
	zeros := NewBinarySolution(make([]bool, 16))
	ones := NewBinarySolution([]bool{true, true, true, true, true, true, true, true,
		true, true, true, true, true, true, true, true})

	// at rate 1 the single-point swap keeps the children complementary
	c1, c2 := zeros.Crossover(ones, 1.0)
	b1, b2 := c1.(*BinarySolution), c2.(*BinarySolution)
	for i := range b1.Bits {
		if b1.Bits[i] == b2.Bits[i] {
			t.Fatalf("expected complementary children at bit %d", i)
		}
	}

	// at rate 0 the children copy the parents
	c1, c2 = zeros.Crossover(ones, 0)
	for i := range c1.(*BinarySolution).Bits {
		if c1.(*BinarySolution).Bits[i] || !c2.(*BinarySolution).Bits[i] {
			t.Fatal("expected the children to copy the parents at rate 0")
		}
	}
}

func TestBinarySolutionMutateFlipsEveryBitAtRateOne(t *testing.T) {
	sol := NewBinarySolution([]bool{true, false, true, false})
	sol.Mutate(1.0)

	want := []bool{false, true, false, true}
	for i := range want {
		if sol.Bits[i] != want[i] {
			t.Errorf("bit %d: expected %v, got %v", i, want[i], sol.Bits[i])
		}
	}
}

func TestBinarySolutionCloneIsIndependent(t *testing.T) {
	orig := NewBinarySolution([]bool{true, false})

	clone := orig.Clone().(*BinarySolution)
	clone.Bits[0] = false

	if !orig.Bits[0] {
		t.Error("expected the original to keep its bits")
	}
}

func TestPolynomialMutationMovesValues(t *testing.T) {
	// with rate 1 and wide bounds at least one variable should move
	moved := false
	for trial := 0; trial < 20 && !moved; trial++ {
		sol := NewRealSolution([]float64{0.5}, unitBounds(1))
		sol.Mutate(1.0)
		if math.Abs(sol.Variables[0]-0.5) > 1e-12 {
			moved = true
		}
	}
	if !moved {
		t.Error("expected mutation at rate 1 to perturb the variable")
	}
}
