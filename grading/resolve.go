package grading

import "math"

// Segment is one resolved piece of a Grading: the fraction of the parent
// length it covers, its cell count, and its total expansion ratio.
type Segment struct {
	LengthFraction float64
	Count          int
	TotalExpansion float64
}

// ResolveChop solves c's geometric progression for a segment of the given
// length, returning a Segment with Count rounded to the nearest positive
// integer and TotalExpansion adjusted so the segment's length matches
// length exactly.
func ResolveChop(length float64, c Chop) (Segment, error) {
	n, r, s, ok := solveProgression(length, c)
	if !ok {
		return Segment{}, ErrInvalidChop
	}
	count := roundPositiveInt(n)
	r = refineRatio(length, s, count, r)
	e := s * math.Pow(r, float64(count-1))
	ratio := e / s
	if s == 0 {
		ratio = 1
	}
	return Segment{Count: count, TotalExpansion: ratio}, nil
}

// solveProgression returns a continuous (possibly non-integer) cell count
// n, common ratio r and first cell size s for the progression implied by c
// over the given length. ok is false when c does not supply enough of
// {Count, TotalExpansion, StartSize, EndSize, C2CExpansion} to solve it.
func solveProgression(length float64, c Chop) (n, r, s float64, ok bool) {
	switch {
	case c.Count != nil && c.C2CExpansion != nil:
		return solveFromCountRatio(length, float64(*c.Count), *c.C2CExpansion)

	case c.Count != nil && c.TotalExpansion != nil:
		rr := ratioFromTotalExpansion(float64(*c.Count), *c.TotalExpansion)
		return solveFromCountRatio(length, float64(*c.Count), rr)

	case c.Count != nil && c.StartSize != nil:
		rr := solveRatioFromCountAndStart(length, float64(*c.Count), *c.StartSize)
		return solveFromCountRatio(length, float64(*c.Count), rr)

	case c.Count != nil && c.EndSize != nil:
		rr := solveRatioFromCountAndEnd(length, float64(*c.Count), *c.EndSize)
		return solveFromCountRatio(length, float64(*c.Count), rr)

	case c.Count != nil:
		// Only a count: assume uniform (R=1).
		return solveFromCountRatio(length, float64(*c.Count), 1)

	case c.StartSize != nil && c.EndSize != nil:
		return solveFromStartEnd(length, *c.StartSize, *c.EndSize)

	case c.TotalExpansion != nil && c.StartSize != nil:
		return solveFromStartEnd(length, *c.StartSize, *c.StartSize**c.TotalExpansion)

	case c.TotalExpansion != nil && c.EndSize != nil:
		return solveFromStartEnd(length, *c.EndSize / *c.TotalExpansion, *c.EndSize)

	case c.C2CExpansion != nil && c.StartSize != nil:
		return solveFromRatioAndStart(length, *c.C2CExpansion, *c.StartSize)

	case c.C2CExpansion != nil && c.EndSize != nil:
		return solveFromRatioAndEnd(length, *c.C2CExpansion, *c.EndSize)

	default:
		return 0, 0, 0, false
	}
}

// ratioFromTotalExpansion returns r such that r^(n-1) == totalExpansion.
func ratioFromTotalExpansion(n, totalExpansion float64) float64 {
	if n <= 1 {
		return 1
	}
	return math.Pow(totalExpansion, 1/(n-1))
}

// solveFromCountRatio returns (n, r, s) given a known count and ratio.
func solveFromCountRatio(length, n, r float64) (float64, float64, float64, bool) {
	if n <= 0 || length <= 0 {
		return 0, 0, 0, false
	}
	var s float64
	if nearOne(r) {
		s = length / n
	} else {
		s = length * (r - 1) / (math.Pow(r, n) - 1)
	}
	return n, r, s, true
}

// solveFromStartEnd returns (n, r, s) given known start/end cell sizes and
// a closed-form continuous count: r = (L-s)/(L-e), n = 1 + ln(R)/ln(r).
func solveFromStartEnd(length, s, e float64) (float64, float64, float64, bool) {
	if length <= 0 || s <= 0 || e <= 0 {
		return 0, 0, 0, false
	}
	if nearOne(e / s) {
		return length / s, 1, s, true
	}
	denom := length - e
	if denom == 0 {
		return 0, 0, 0, false
	}
	r := (length - s) / denom
	if r <= 0 {
		return 0, 0, 0, false
	}
	totalExpansion := e / s
	n := 1 + math.Log(totalExpansion)/math.Log(r)
	return n, r, s, true
}

// solveRatioFromCountAndStart solves r from L = s*(r^n-1)/(r-1) given n,s,
// by bisection (the function is monotonically increasing in r for r>0).
func solveRatioFromCountAndStart(length, n, s float64) float64 {
	f := func(r float64) float64 {
		if nearOne(r) {
			return s*n - length
		}
		return s*(math.Pow(r, n)-1)/(r-1) - length
	}
	return bisect(f, 1e-6, 1e6)
}

// solveRatioFromCountAndEnd solves r from e = s(r)*r^(n-1), where
// s(r) = L*(r-1)/(r^n-1), given n,e.
func solveRatioFromCountAndEnd(length, n, e float64) float64 {
	f := func(r float64) float64 {
		var s float64
		if nearOne(r) {
			s = length / n
		} else {
			s = length * (r - 1) / (math.Pow(r, n) - 1)
		}
		return s*math.Pow(r, n-1) - e
	}
	return bisect(f, 1e-6, 1e6)
}

// solveFromRatioAndStart returns (n, r, s) given a known c2c ratio and
// start size: n solved from L = s*(r^n-1)/(r-1).
func solveFromRatioAndStart(length, r, s float64) (float64, float64, float64, bool) {
	if s <= 0 || length <= 0 {
		return 0, 0, 0, false
	}
	if nearOne(r) {
		return length / s, 1, s, true
	}
	n := math.Log(1+length*(r-1)/s) / math.Log(r)
	return n, r, s, true
}

// solveFromRatioAndEnd returns (n, r, s) given a known c2c ratio and end
// size: s = e/r^(n-1), substituted into the length equation and solved for
// n by bisection.
func solveFromRatioAndEnd(length, r, e float64) (float64, float64, float64, bool) {
	if e <= 0 || length <= 0 {
		return 0, 0, 0, false
	}
	f := func(n float64) float64 {
		s := e / math.Pow(r, n-1)
		if nearOne(r) {
			return s*n - length
		}
		return s*(math.Pow(r, n)-1)/(r-1) - length
	}
	n := bisect(f, 1, 1e6)
	s := e / math.Pow(r, n-1)
	return n, r, s, true
}

// refineRatio re-solves r for the rounded integer count so the segment's
// length matches exactly, holding s fixed.
func refineRatio(length, s float64, n int, rGuess float64) float64 {
	if n <= 1 || s <= 0 {
		return 1
	}
	f := func(r float64) float64 {
		if nearOne(r) {
			return s*float64(n) - length
		}
		return s*(math.Pow(r, float64(n))-1)/(r-1) - length
	}
	lo, hi := rGuess*0.1, rGuess*10
	if lo <= 0 {
		lo = 1e-6
	}
	if hi <= lo {
		hi = lo + 1e6
	}
	r := bisect(f, lo, hi)
	if nearOne(r) {
		return 1
	}
	return r
}

// bisect finds a root of f in [lo,hi], assuming f is monotonic and changes
// sign across the interval; it falls back to the bracket midpoint if the
// signs don't straddle zero (degenerate/edge input).
func bisect(f func(float64) float64, lo, hi float64) float64 {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo
	}
	if fhi == 0 {
		return hi
	}
	if (flo > 0) == (fhi > 0) {
		// Not bracketed; best effort.
		return (lo + hi) / 2
	}
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		fm := f(mid)
		if math.Abs(fm) < 1e-12 {
			return mid
		}
		if (fm > 0) == (flo > 0) {
			lo, flo = mid, fm
		} else {
			hi, fhi = mid, fm
		}
	}
	return (lo + hi) / 2
}

func roundPositiveInt(n float64) int {
	rounded := int(math.Round(n))
	if rounded < 1 {
		return 1
	}
	return rounded
}

func nearOne(x float64) bool {
	return math.Abs(x-1) < 1e-9
}
