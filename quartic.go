package polyroot

// SolveQuarticDurandKerner finds all roots, real and complex, of the quartic
// a4·x⁴ + a3·x³ + a2·x² + a1·x + a0 = 0 using the Durand–Kerner simultaneous
// iteration. A zero a4 delegates to [SolveCubicDurandKerner].
func SolveQuarticDurandKerner(a4, a3, a2, a1, a0 float64) []complex128 {
	if a4 == 0.0 {
		return SolveCubicDurandKerner(a3, a2, a1, a0)
	}
	return sortRoots(SolveDurandKerner(monicComplex(a4, a3, a2, a1, a0)))
}

// SolveQuarticAberthEhrlich finds all roots, real and complex, of the quartic
// a4·x⁴ + a3·x³ + a2·x² + a1·x + a0 = 0 using the Aberth–Ehrlich simultaneous
// iteration. A zero a4 delegates to [SolveCubicAberthEhrlich].
func SolveQuarticAberthEhrlich(a4, a3, a2, a1, a0 float64) []complex128 {
	if a4 == 0.0 {
		return SolveCubicAberthEhrlich(a3, a2, a1, a0)
	}
	return sortRoots(SolveAberthEhrlich(monicComplex(a4, a3, a2, a1, a0)))
}
