package axis

import "errors"

// ErrUndefinedGradings is returned when a fixed point is reached with at
// least one axis still lacking a defined grading on every wire.
var ErrUndefinedGradings = errors.New("axis: undefined gradings remain after propagation")

// ErrInconsistentGradings is returned when, after the fixed point, an
// axis's four wires (or two neighboring axes) disagree on cell count.
var ErrInconsistentGradings = errors.New("axis: inconsistent grading counts")
