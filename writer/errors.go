package writer

import "errors"

// ErrNotGraded is returned when Write is asked to emit a mesh whose
// grading cannot be completed by the implicit EnsureGraded call; the
// returned error wraps both ErrNotGraded and EnsureGraded's own error.
var ErrNotGraded = errors.New("writer: mesh is not fully graded")
