package polyroot

import "math"

// SolveLinear finds the root of a linear equation.
//
// Returns the value of x for which q1·x + q0 = 0. If q1 is zero the input is
// not a polynomial of degree one and has no roots; an empty slice is returned.
// This is a degenerate-input policy, not an error.
func SolveLinear(q1, q0 float64) []complex128 {
	if q1 == 0.0 {
		return nil
	}
	return []complex128{complex(-q0/q1, 0)}
}

// SolveQuadratic finds all roots, real and complex, of a quadratic equation.
//
// Returns the values of x for which q2·x² + q1·x + q0 = 0. If q2 is zero the
// equation degenerates to a linear one and is handed to [SolveLinear].
//
// Real roots are returned in descending order; a complex-conjugate pair is
// returned with the +i root first.
func SolveQuadratic(q2, q1, q0 float64) []complex128 {
	if q2 == 0.0 {
		return SolveLinear(q1, q0)
	}
	return SolveQuadraticMonic(q1/q2, q0/q2)
}

// SolveQuadraticMonic finds all roots of the monic quadratic
// x² + q1·x + q0 = 0.
//
// The discriminant is computed with an overflow guard: if squaring q1/2 or
// subtracting q0 would exceed the floating-point range, both coefficients are
// rescaled by a common factor first and the roots scaled back afterwards. For
// a non-negative discriminant the second root is derived from the first via
// Vieta's product rather than the textbook formula, avoiding catastrophic
// cancellation when the roots differ greatly in magnitude.
func SolveQuadraticMonic(q1, q0 float64) []complex128 {
	switch {
	case q0 == 0.0 && q1 == 0.0:
		// Double root at zero.
		return []complex128{0, 0}
	case q0 == 0.0:
		// x(x + q1) = 0.
		if -q1 > 0.0 {
			return []complex128{complex(-q1, 0), 0}
		}
		return []complex128{0, complex(-q1, 0)}
	case q1 == 0.0:
		// x² = -q0, symmetric around zero on the real or imaginary axis.
		if q0 < 0.0 {
			r := math.Sqrt(-q0)
			return []complex128{complex(r, 0), complex(-r, 0)}
		}
		r := math.Sqrt(q0)
		return []complex128{complex(0, r), complex(0, -r)}
	}

	x := 0.5 * q1
	disc := x*x - q0
	if math.IsInf(x*x, 0) || math.IsInf(disc, 0) {
		// Rescale so that the squared term stays representable, solve the
		// scaled equation, and scale the roots back. The constant term is
		// divided by s twice rather than by s², which itself can overflow.
		s := max(math.Abs(q1), math.Sqrt(math.Abs(q0)))
		roots := SolveQuadraticMonic(q1/s, q0/s/s)
		for i := range roots {
			roots[i] *= complex(s, 0)
		}
		return roots
	}
	if disc >= 0.0 {
		// Pick the root that adds rather than cancels, then recover the other
		// one from root1·root2 = q0.
		root1 := -x - math.Copysign(math.Sqrt(disc), x)
		root2 := q0 / root1
		if root1 >= root2 {
			return []complex128{complex(root1, 0), complex(root2, 0)}
		}
		return []complex128{complex(root2, 0), complex(root1, 0)}
	}
	im := math.Sqrt(-disc)
	return []complex128{complex(-x, im), complex(-x, -im)}
}
