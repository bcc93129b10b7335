package grading

// Take selects which of an Axis's four wire lengths is used when computing
// a grading from chops.
type Take string

const (
	TakeAvg Take = "avg"
	TakeMin Take = "min"
	TakeMax Take = "max"
)

// Chop is a user declaration of how to subdivide one segment of an axis.
// Not all fields are supplied; ResolveChop requires enough of
// {Count, TotalExpansion, StartSize, EndSize, C2CExpansion} to solve the
// underlying geometric progression for a given length.
type Chop struct {
	// Count is the cell count for this segment, N.
	Count *int
	// TotalExpansion is the last/first cell-size ratio, R = e/s.
	TotalExpansion *float64
	// StartSize is the first cell size, s.
	StartSize *float64
	// EndSize is the last cell size, e.
	EndSize *float64
	// C2CExpansion is the cell-to-cell ratio, r.
	C2CExpansion *float64
	// LengthRatio is the fraction of the axis length this chop covers.
	// Zero means "unset"; a lone Chop with LengthRatio unset is treated as
	// covering the whole axis (ratio 1). Two or more chops on the same
	// axis must all set LengthRatio, summing to 1 within tolerance.
	LengthRatio float64
	// Take selects which wire length the axis uses to resolve this chop
	// when it has no defined wire grading to copy yet.
	Take Take
}

// ratioOrWhole returns c's LengthRatio, defaulting to 1 when unset and
// whole reports this is the only chop on the axis.
func (c Chop) ratioOrWhole(whole bool) float64 {
	if c.LengthRatio == 0 && whole {
		return 1
	}
	return c.LengthRatio
}

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

// ChopCount builds a Chop with only a cell count (uniform, R=1).
func ChopCount(n int) Chop {
	return Chop{Count: intPtr(n)}
}

// ChopCountExpansion builds a Chop with a count and a total expansion ratio.
func ChopCountExpansion(n int, totalExpansion float64) Chop {
	return Chop{Count: intPtr(n), TotalExpansion: floatPtr(totalExpansion)}
}

// ChopSizes builds a Chop from a count, start size and end size.
func ChopSizes(n int, startSize, endSize float64) Chop {
	return Chop{Count: intPtr(n), StartSize: floatPtr(startSize), EndSize: floatPtr(endSize)}
}

// ChopStartEnd builds a Chop from only a start and end cell size (count is
// derived).
func ChopStartEnd(startSize, endSize float64) Chop {
	return Chop{StartSize: floatPtr(startSize), EndSize: floatPtr(endSize)}
}
