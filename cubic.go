package polyroot

import (
	"fmt"
	"math"
	"math/cmplx"
)

// newtonResidualLimit is the largest residual |f(root)| that
// SolveCubicNewtonFactor accepts from Newton–Raphson before distrusting the
// result and falling back to bisection.
const newtonResidualLimit = 1e-9

// SolveCubicNewtonFactor finds all roots, real and complex, of the cubic
// a3·x³ + a2·x² + a1·x + a0 = 0 by locating one real root with Newton–Raphson
// and deflating the remaining quadratic factor.
//
// If Newton–Raphson fails to converge, a real root is bracketed by growing a
// symmetric interval until the polynomial changes sign and bisecting inside
// it. A genuine cubic always has a real root; if none can be bracketed even at
// ±1e64 the inputs don't describe one, and the function panics rather than
// returning a plausible-looking wrong answer.
//
// A zero a3 delegates to [SolveQuadratic].
func SolveCubicNewtonFactor(a3, a2, a1, a0 float64) []complex128 {
	if a3 == 0.0 {
		return SolveQuadratic(a2, a1, a0)
	}
	if a0 == 0.0 {
		// x divides the polynomial; solve the remaining quadratic.
		return sortRoots(append(SolveQuadratic(a3, a2, a1), 0))
	}
	// Dividing by the largest coefficient magnitude doesn't change the roots
	// but keeps the intermediate values well conditioned.
	m := maxAbs([]float64{a3, a2, a1, a0})
	a, b, c, d := a3/m, a2/m, a1/m, a0/m
	p := ascending(a, b, c, d)

	root, ok := newtonRaphson(p, 1e-12)
	if !ok || math.Abs(evalReal(p, root)) > newtonResidualLimit {
		root = bisectCubic(p, a3, a2, a1, a0)
	}

	// Synthetic division by (x - root) leaves the quadratic factor.
	t1 := b + root*a
	t0 := c + root*t1
	return sortRoots(append(SolveQuadratic(a, t1, t0), complex(root, 0)))
}

// bisectCubic brackets and bisects a real root of the conditioned cubic p.
// The original coefficients are carried along for diagnostics only.
func bisectCubic(p []float64, a3, a2, a1, a0 float64) float64 {
	if Logger != nil {
		Logger.Info("newton-raphson did not converge, falling back to bisection",
			"a3", a3, "a2", a2, "a1", a1, "a0", a0)
	}
	for lim := 64.0; lim <= 1e64; lim *= 2.0 {
		flo := evalReal(p, -lim)
		fhi := evalReal(p, lim)
		if flo == 0.0 {
			return -lim
		}
		if fhi == 0.0 {
			return lim
		}
		if math.Signbit(flo) != math.Signbit(fhi) {
			root, ok := bisect(p, -lim, lim, 1e-12)
			if !ok {
				break
			}
			return root
		}
	}
	panic(fmt.Sprintf("polyroot: cannot bracket a real root of %g·x³ + %g·x² + %g·x + %g", a3, a2, a1, a0))
}

// SolveCubicCardano finds all roots, real and complex, of the cubic
// a3·x³ + a2·x² + a1·x + a0 = 0 using Cardano's formula in resolvent form.
// All three roots fall out of the closed formula at once, with no iteration.
//
// The radicand of the inner square root can be negative, so the square and
// cube roots are taken over the complex numbers throughout.
//
// A zero a3 delegates to [SolveQuadratic].
func SolveCubicCardano(a3, a2, a1, a0 float64) []complex128 {
	if a3 == 0.0 {
		return SolveQuadratic(a2, a1, a0)
	}
	if a0 == 0.0 {
		return sortRoots(append(SolveQuadratic(a3, a2, a1), 0))
	}
	m := maxAbs([]float64{a3, a2, a1, a0})
	a, b, c, d := a3/m, a2/m, a1/m, a0/m

	d0 := b*b - 3.0*a*c
	d1 := 2.0*b*b*b - 9.0*a*b*c + 27.0*a*a*d
	if d0 == 0.0 && d1 == 0.0 {
		// Triple root, found from the deflated linear case 3a·x + b = 0.
		root := complex(-b/(3.0*a), 0)
		return []complex128{root, root, root}
	}

	sq := cmplx.Sqrt(complex(d1*d1-4.0*d0*d0*d0, 0))
	base := (complex(d1, 0) + sq) / 2.0
	if base == 0 {
		// The + branch cancelled exactly; the − branch cannot also be zero
		// here since d0 and d1 aren't both zero, and using it avoids dividing
		// by a zero cube root below.
		base = (complex(d1, 0) - sq) / 2.0
	}
	u := cbrtc(base)

	roots := make([]complex128, 0, 3)
	for _, theta := range [3]float64{0.0, 2.0 * math.Pi / 3.0, -2.0 * math.Pi / 3.0} {
		w := rotate(u, theta)
		roots = append(roots, -(w+complex(b, 0)+complex(d0, 0)/w)/complex(3.0*a, 0))
	}
	return sortRoots(roots)
}

// SolveCubicDurandKerner finds all roots of the cubic
// a3·x³ + a2·x² + a1·x + a0 = 0 using the Durand–Kerner simultaneous
// iteration. A zero a3 delegates to [SolveQuadratic].
func SolveCubicDurandKerner(a3, a2, a1, a0 float64) []complex128 {
	if a3 == 0.0 {
		return SolveQuadratic(a2, a1, a0)
	}
	return sortRoots(SolveDurandKerner(monicComplex(a3, a2, a1, a0)))
}

// SolveCubicAberthEhrlich finds all roots of the cubic
// a3·x³ + a2·x² + a1·x + a0 = 0 using the Aberth–Ehrlich simultaneous
// iteration. A zero a3 delegates to [SolveQuadratic].
func SolveCubicAberthEhrlich(a3, a2, a1, a0 float64) []complex128 {
	if a3 == 0.0 {
		return SolveQuadratic(a2, a1, a0)
	}
	return sortRoots(SolveAberthEhrlich(monicComplex(a3, a2, a1, a0)))
}

// monicComplex builds the ascending, monic complex coefficient vector for the
// polynomial given in descending real coefficients, dividing through by the
// leading coefficient. The caller guarantees coeffs[0] != 0.
func monicComplex(coeffs ...float64) []complex128 {
	lead := coeffs[0]
	p := make([]complex128, len(coeffs))
	for i, c := range coeffs {
		p[len(coeffs)-1-i] = complex(c/lead, 0)
	}
	p[len(coeffs)-1] = 1
	return p
}
