package framework

import "math"

// DuplicateEpsilon is the default tolerance below which two real-valued
// decision vectors count as the same solution.
const DuplicateEpsilon = 1e-16

// EliminateDuplicates filters candidates whose decision variables match,
// within eps, a solution in against or an earlier surviving candidate.
// Solutions of unknown encodings are never treated as duplicates.
func EliminateDuplicates(candidates []Solution, against []Solution, eps float64) []Solution {
	if eps <= 0 {
		eps = DuplicateEpsilon
	}

	kept := make([]Solution, 0, len(candidates))
	for _, c := range candidates {
		dup := false
		for _, a := range against {
			if sameSolution(c, a, eps) {
				dup = true
				break
			}
		}
		if !dup {
			for _, k := range kept {
				if sameSolution(c, k, eps) {
					dup = true
					break
				}
			}
		}
		if !dup {
			kept = append(kept, c)
		}
	}
	return kept
}

func sameSolution(a, b Solution, eps float64) bool {
	switch x := a.(type) {
	case *RealSolution:
		y, ok := b.(*RealSolution)
		if !ok || len(x.Variables) != len(y.Variables) {
			return false
		}
		for i := range x.Variables {
			if math.Abs(x.Variables[i]-y.Variables[i]) > eps {
				return false
			}
		}
		return true
	case *BinarySolution:
		y, ok := b.(*BinarySolution)
		if !ok || len(x.Bits) != len(y.Bits) {
			return false
		}
		for i := range x.Bits {
			if x.Bits[i] != y.Bits[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
