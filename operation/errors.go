package operation

import "errors"

// ErrDegenerateFace is returned when a face's four points don't resolve to
// four distinct vertices.
var ErrDegenerateFace = errors.New("operation: degenerate face (coincident corners)")
