package polyroot

import (
	"math"
	"math/cmplx"
)

// rotate returns z rotated by theta radians around the origin, i.e. z
// multiplied by the unit complex number of angle theta.
func rotate(z complex128, theta float64) complex128 {
	sin, cos := math.Sincos(theta)
	return z * complex(cos, sin)
}

// cbrtc returns the principal complex cube root of z.
//
// math.Cbrt only covers the real line; the iterative and Cardano solvers need
// cube roots of values anywhere in the plane.
func cbrtc(z complex128) complex128 {
	r, theta := cmplx.Polar(z)
	return cmplx.Rect(math.Cbrt(r), theta/3.0)
}

// snapTiny replaces any coordinate of z whose magnitude is the smallest
// representable positive double with exactly zero. The simultaneous-iteration
// solvers can leave such one-ULP artifacts behind, and reporting them as
// nonzero components would be meaningless.
func snapTiny(z complex128) complex128 {
	re, im := real(z), imag(z)
	if math.Abs(re) == math.SmallestNonzeroFloat64 {
		re = 0.0
	}
	if math.Abs(im) == math.SmallestNonzeroFloat64 {
		im = 0.0
	}
	return complex(re, im)
}
