package mesh

import "github.com/hexcore/blockmesh/core"

// LogFunc receives narration of Mesh lifecycle transitions, mirroring
// axis.LogFunc's injectable-callback style.
type LogFunc func(format string, args ...any)

// Settings is the process-wide configuration of a Mesh: the geometric
// scale factor applied at write time, the vertex-dedup tolerance, and an
// optional logger.
type Settings struct {
	Scale     float64
	Tolerance float64
	Log       LogFunc
}

// DefaultSettings returns the Settings used when New receives no
// overriding options: scale 1, tolerance core.DefaultTolerance, no logging.
func DefaultSettings() Settings {
	return Settings{
		Scale:     1,
		Tolerance: core.DefaultTolerance,
		Log:       func(string, ...any) {},
	}
}

// Option customizes Settings before a Mesh is constructed.
type Option func(*Settings)

// WithScale overrides the geometric scale factor emitted by the writer.
func WithScale(scale float64) Option {
	if scale <= 0 {
		panic("mesh: WithScale requires a positive scale")
	}
	return func(s *Settings) { s.Scale = scale }
}

// WithTolerance overrides the vertex-dedup tolerance.
func WithTolerance(eps float64) Option {
	if eps <= 0 {
		panic("mesh: WithTolerance requires a positive epsilon")
	}
	return func(s *Settings) { s.Tolerance = eps }
}

// WithLogger installs fn to receive lifecycle narration. Passing nil
// restores the no-op default.
func WithLogger(fn LogFunc) Option {
	return func(s *Settings) {
		if fn != nil {
			s.Log = fn
		}
	}
}
