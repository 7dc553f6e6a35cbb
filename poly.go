package polyroot

import (
	"math"
	"math/cmplx"
)

// Internally, every routine in this package stores polynomials as ascending
// coefficient slices: index i holds the coefficient of xⁱ, constant term
// first. The public fixed-degree entry points accept the opposite, natural
// mathematical order (leading coefficient first); ascending is the single
// boundary adapter between the two. Keep the transposition here rather than
// inlining reversals at call sites, as getting it backwards silently breaks
// every caller.
func ascending(coeffs ...float64) []float64 {
	p := make([]float64, len(coeffs))
	for i, c := range coeffs {
		p[len(coeffs)-1-i] = c
	}
	return p
}

// evalReal evaluates the polynomial p (ascending coefficients) at x using
// Horner's rule.
func evalReal(p []float64, x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// evalComplex evaluates the polynomial p (ascending coefficients) at z using
// Horner's rule.
func evalComplex(p []complex128, z complex128) complex128 {
	var y complex128
	for i := len(p) - 1; i >= 0; i-- {
		y = y*z + p[i]
	}
	return y
}

// derivReal returns the coefficients of the derivative of p.
func derivReal(p []float64) []float64 {
	if len(p) < 2 {
		return nil
	}
	d := make([]float64, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}
	return d
}

// derivComplex returns the coefficients of the derivative of p.
func derivComplex(p []complex128) []complex128 {
	if len(p) < 2 {
		return nil
	}
	d := make([]complex128, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = complex(float64(i), 0) * p[i]
	}
	return d
}

// maxAbs returns the largest coefficient magnitude of p.
func maxAbs(p []float64) float64 {
	var m float64
	for _, c := range p {
		m = max(m, math.Abs(c))
	}
	return m
}

// maxMod returns the largest coefficient modulus of p.
func maxMod(p []complex128) float64 {
	var m float64
	for _, c := range p {
		m = max(m, cmplx.Abs(c))
	}
	return m
}
