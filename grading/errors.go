package grading

import "errors"

// ErrInvalidChop indicates a Chop is overconstrained or underconstrained
// for the axis/wire length it was applied to: either none of {count,
// total_expansion, start_size, end_size, c2c_expansion} supplied enough
// information to solve the geometric progression, or a set of chops'
// length_ratio fields do not sum to 1 within tolerance.
var ErrInvalidChop = errors.New("grading: invalid or unreconcilable chop")
