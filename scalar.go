package polyroot

import "math"

// maxScalarIter bounds every scalar search loop. Convergence for
// well-conditioned low-degree polynomials takes far fewer steps; the cap only
// guarantees termination.
const maxScalarIter = 100

// newtonSeed is the fixed starting point for Newton–Raphson. It is chosen to
// have near-zero probability of coinciding with a critical point of the
// derivative of any polynomial a caller is likely to pass in; do not replace
// it with a "nicer" value such as 0 or 1, which land on critical points of
// common symmetric polynomials.
const newtonSeed = 0.73908513321516064

// newtonRaphson searches for a real root of the polynomial p (ascending
// coefficients), starting from the fixed seed. It reports success once the
// update no longer changes x (a fixed point) or |f(x)| drops to allowedError.
// If neither happens within the iteration budget it reports failure rather
// than returning a possibly wrong value, so that callers can fall back to a
// more robust method.
func newtonRaphson(p []float64, allowedError float64) (float64, bool) {
	d := derivReal(p)
	x := newtonSeed
	for iter := 0; iter < maxScalarIter; iter++ {
		fx := evalReal(p, x)
		if math.Abs(fx) <= allowedError {
			return x, true
		}
		next := x - fx/evalReal(d, x)
		if next == x {
			return x, true
		}
		x = next
	}
	if math.Abs(evalReal(p, x)) <= allowedError {
		return x, true
	}
	return 0, false
}

// bisect searches for a real root of p inside [lo, hi]. The bracket must
// contain a sign change of p; establishing that is the caller's job. Each step
// keeps the sub-interval whose endpoint signs still differ, so unlike
// Newton–Raphson the search cannot diverge, it is merely slower. The search
// also stops once the midpoint stops moving, which happens when the bracket
// has collapsed to adjacent floating-point values.
func bisect(p []float64, lo, hi, allowedError float64) (float64, bool) {
	negAtLo := math.Signbit(evalReal(p, lo))
	mid := lo
	for iter := 0; iter < maxScalarIter; iter++ {
		next := 0.5 * (lo + hi)
		if next == mid {
			break
		}
		mid = next
		fmid := evalReal(p, mid)
		if math.Abs(fmid) <= allowedError {
			return mid, true
		}
		if math.Signbit(fmid) == negAtLo {
			lo = mid
		} else {
			hi = mid
		}
	}
	if math.Abs(evalReal(p, mid)) <= allowedError {
		return mid, true
	}
	return 0, false
}
