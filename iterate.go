package polyroot

import (
	"math"
	"math/cmplx"
)

// maxSweeps bounds the simultaneous-iteration solvers. They stop early on a
// fixed point, but carry no residual check, so the cap is the ultimate
// safeguard against non-convergence.
const maxSweeps = 100

// seedArc is the total angle, in degrees, over which the initial root
// estimates are fanned out. The deliberately irrational-looking value keeps
// the seeds off roots-of-unity symmetries that can stall both iterations; do
// not round it.
const seedArc = 350.123

// seedEstimates computes the deterministic starting points for the
// simultaneous iterations: one point derived from the coefficient magnitudes,
// rotated through n equal increments of the seed arc.
func seedEstimates(p []complex128) []complex128 {
	n := len(p) - 1
	radius := 1.0 + maxMod(p)
	p0 := complex(math.Sqrt(radius), math.Cbrt(radius))
	step := seedArc / 180.0 * math.Pi / float64(n)
	seeds := make([]complex128, n)
	for i := range seeds {
		seeds[i] = rotate(p0, float64(i)*step)
	}
	return seeds
}

// SolveDurandKerner finds all roots of a monic polynomial of arbitrary degree
// using the Durand–Kerner (Weierstrass) simultaneous iteration.
//
// coeffs holds the coefficients in ascending order, index i for xⁱ, with the
// caller supplying the leading 1. Exactly len(coeffs)-1 roots are returned,
// counted with multiplicity, in convergence order; callers that need the
// canonical ordering of the fixed-degree solvers must sort the result
// themselves.
//
// Each sweep applies a Newton-like correction to every estimate, using the
// product of distances to all other current estimates in place of the
// derivative of the deflated polynomial. Convergence is quadratic.
//
// [Durand–Kerner method]: https://en.wikipedia.org/wiki/Durand%E2%80%93Kerner_method
func SolveDurandKerner(coeffs []complex128) []complex128 {
	if len(coeffs) < 2 {
		return nil
	}
	roots := seedEstimates(coeffs)
	for iter := 0; iter < maxSweeps; iter++ {
		var maxDelta float64
		for i := range roots {
			den := complex(1, 0)
			for j := range roots {
				if j != i {
					den *= roots[i] - roots[j]
				}
			}
			delta := evalComplex(coeffs, roots[i]) / den
			roots[i] -= delta
			maxDelta = max(maxDelta, cmplx.Abs(delta))
		}
		if maxDelta == 0.0 {
			break
		}
	}
	for i := range roots {
		roots[i] = snapTiny(roots[i])
	}
	return roots
}

// SolveAberthEhrlich finds all roots of a monic polynomial of arbitrary
// degree using the Aberth–Ehrlich simultaneous iteration.
//
// The contract matches [SolveDurandKerner]: ascending monic coefficients in,
// len(coeffs)-1 roots out in convergence order. The update is a Newton step
// damped by the sum of reciprocal distances to the other estimates, which
// converges cubically where Durand–Kerner converges quadratically, at the
// cost of evaluating the derivative at every step.
//
// [Aberth method]: https://en.wikipedia.org/wiki/Aberth_method
func SolveAberthEhrlich(coeffs []complex128) []complex128 {
	if len(coeffs) < 2 {
		return nil
	}
	deriv := derivComplex(coeffs)
	roots := seedEstimates(coeffs)
	for iter := 0; iter < maxSweeps; iter++ {
		var maxDelta float64
		for i := range roots {
			newton := evalComplex(coeffs, roots[i]) / evalComplex(deriv, roots[i])
			var sum complex128
			for j := range roots {
				if j != i {
					sum += 1 / (roots[i] - roots[j])
				}
			}
			w := newton / (1 - newton*sum)
			roots[i] -= w
			maxDelta = max(maxDelta, cmplx.Abs(w))
		}
		if maxDelta == 0.0 {
			break
		}
	}
	for i := range roots {
		roots[i] = snapTiny(roots[i])
	}
	return roots
}
