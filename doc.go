// Package polyroot computes all real and complex roots of polynomials with
// real or complex coefficients.
//
// # Solvers
//
// For degrees one and two, [SolveLinear], [SolveQuadratic], and
// [SolveQuadraticMonic] use closed-form formulas, with rescaling to guard
// against overflow and stable root pairing to avoid catastrophic cancellation.
//
// For cubics, four independent algorithms are provided:
//
//   - [SolveCubicNewtonFactor] finds one real root by Newton–Raphson (with a
//     bisection fallback) and deflates to a quadratic.
//   - [SolveCubicCardano] evaluates Cardano's closed formula over the complex
//     numbers, yielding all three roots at once.
//   - [SolveCubicDurandKerner] and [SolveCubicAberthEhrlich] route through the
//     general-degree simultaneous-iteration solvers.
//
// For quartics, [SolveQuarticDurandKerner] and [SolveQuarticAberthEhrlich]
// route through the general-degree solvers as well.
//
// [SolveDurandKerner] and [SolveAberthEhrlich] accept monic polynomials of
// arbitrary degree. The Aberth–Ehrlich iteration converges cubically where
// Durand–Kerner converges quadratically, at the cost of evaluating the
// derivative at every step.
//
// # Conventions
//
// The fixed-degree entry points take coefficients in the order one would write
// the polynomial, leading coefficient first: SolveCubicCardano(a3, a2, a1, a0)
// solves a3·x³ + a2·x² + a1·x + a0 = 0. The general-degree solvers instead
// take an ascending coefficient slice, index i holding the coefficient of xⁱ,
// with the caller supplying the leading 1.
//
// Every solver returns as many roots as the polynomial's degree, counted with
// multiplicity, after dropping zero leading coefficients. Fixed-degree entry
// points return real roots first in descending order, followed by the
// remaining roots sorted by real part, then imaginary part, both descending;
// the general-degree solvers return roots in convergence order.
//
// All routines are pure functions without shared state and are safe for
// concurrent use.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Durand–Kerner method]
//   - [Aberth method] by Oliver Aberth
//   - [Cubic equation], for Cardano's formula in resolvent form
//   - [Numerically stable quadratic roots]
//
// [Durand–Kerner method]: https://en.wikipedia.org/wiki/Durand%E2%80%93Kerner_method
// [Aberth method]: https://en.wikipedia.org/wiki/Aberth_method
// [Cubic equation]: https://en.wikipedia.org/wiki/Cubic_equation#General_cubic_formula
// [Numerically stable quadratic roots]: https://math.stackexchange.com/questions/866331
package polyroot
