package polyroot

import (
	"cmp"
	"slices"
)

// sortRoots orders a root slice canonically, in place: roots with an
// imaginary part of exactly zero come first in descending order, the
// remaining roots follow sorted by real part and then imaginary part, both
// descending. A conjugate pair thus reads +i before −i, matching the sign
// convention of the closed-form solvers.
func sortRoots(roots []complex128) []complex128 {
	slices.SortStableFunc(roots, func(a, b complex128) int {
		aReal := imag(a) == 0.0
		bReal := imag(b) == 0.0
		switch {
		case aReal && !bReal:
			return -1
		case !aReal && bReal:
			return 1
		}
		if c := cmp.Compare(real(b), real(a)); c != 0 {
			return c
		}
		return cmp.Compare(imag(b), imag(a))
	})
	return roots
}
