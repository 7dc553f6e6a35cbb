package polyroot

import (
	"math"
	"math/cmplx"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func checkRoots(t *testing.T, roots, expected []complex128) {
	t.Helper()
	checkRootsEps(t, roots, expected, 1e-9)
}

// checkRootsEps compares two root multisets by greedily pairing each expected
// root with the nearest remaining computed root. Pairing by distance rather
// than by a sort key keeps conjugate pairs stable: one ULP of jitter in the
// real part of a pair must not flip which member gets compared against +i.
func checkRootsEps(t *testing.T, roots, expected []complex128, epsilon float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots (%v), expected %d", len(roots), roots, len(expected))
	}
	remaining := slices.Clone(roots)
	for _, want := range expected {
		best, bestDist := -1, math.Inf(1)
		for i, got := range remaining {
			if d := cmplx.Abs(got - want); d < bestDist {
				best, bestDist = i, d
			}
		}
		if bestDist > epsilon {
			t.Errorf("no root near %v; closest is %v at distance %v", want, remaining[best], bestDist)
		}
		remaining = slices.Delete(remaining, best, best+1)
	}
}

// checkResiduals evaluates the polynomial (descending coefficients) at every
// root and fails if any residual exceeds a tolerance proportional to the
// coefficient magnitudes.
func checkResiduals(t *testing.T, roots []complex128, coeffs ...float64) {
	t.Helper()
	p := make([]complex128, len(coeffs))
	for i, c := range coeffs {
		p[len(coeffs)-1-i] = complex(c, 0)
	}
	tolerance := 1e-6 * maxAbs(coeffs)
	for _, root := range roots {
		if res := cmplx.Abs(evalComplex(p, root)); res > tolerance {
			t.Errorf("residual %v at root %v exceeds %v", res, root, tolerance)
		}
	}
}

// checkRealDescending fails unless the real parts of the returned sequence
// are non-increasing, which the fixed-degree solvers guarantee for
// polynomials whose roots are all real.
func checkRealDescending(t *testing.T, roots []complex128) {
	t.Helper()
	for i := 1; i < len(roots); i++ {
		if real(roots[i]) > real(roots[i-1]) {
			t.Errorf("roots out of order: %v before %v in %v", roots[i-1], roots[i], roots)
		}
	}
}
