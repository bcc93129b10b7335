package geom

import "math"

// goldenRatio is the standard golden-section search contraction factor.
const goldenRatio = 0.6180339887498949

// MinimizeScalar finds an approximate minimizer of f over [lo,hi] using
// golden-section search, the textbook bracketed 1-D minimizer used when no
// derivative is available. It is used to seed a clamp's initial parameter
// by minimizing distance-to-curve.
func MinimizeScalar(f func(float64) float64, lo, hi float64, iterations int) float64 {
	if iterations <= 0 {
		iterations = 60
	}
	a, b := lo, hi
	c := b - goldenRatio*(b-a)
	d := a + goldenRatio*(b-a)
	fc, fd := f(c), f(d)
	for i := 0; i < iterations; i++ {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - goldenRatio*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + goldenRatio*(b-a)
			fd = f(d)
		}
	}
	return (a + b) / 2
}

// MinimizeScalarUnbounded approximates an unbounded 1-D minimization by
// golden-section search over a generously wide bracket, since callers
// (clamp.ParametricCurve with no declared bounds) still need a finite
// search interval.
func MinimizeScalarUnbounded(f func(float64) float64, guess float64, iterations int) float64 {
	const span = 1e3
	return MinimizeScalar(f, guess-span, guess+span, iterations)
}

// MinimizeVector2 approximates a 2-D minimizer of f over the box
// [lo0,hi0]x[lo1,hi1] using alternating coordinate-wise golden-section
// descent (Powell-style single-direction sweeps), sufficient to seed a
// clamp.ParametricSurface's initial (u,v) without pulling in a full
// optimization library for a one-shot, low-precision seed.
func MinimizeVector2(f func(u, v float64) float64, lo, hi [2]float64, sweeps int) (float64, float64) {
	if sweeps <= 0 {
		sweeps = 8
	}
	u := (lo[0] + hi[0]) / 2
	v := (lo[1] + hi[1]) / 2
	for i := 0; i < sweeps; i++ {
		u = MinimizeScalar(func(x float64) float64 { return f(x, v) }, lo[0], hi[0], 40)
		v = MinimizeScalar(func(y float64) float64 { return f(u, y) }, lo[1], hi[1], 40)
	}
	return u, v
}

// Clamp restricts x to [lo,hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// AlmostEqual reports whether a and b differ by no more than tol.
func AlmostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
