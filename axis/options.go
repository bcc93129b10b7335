package axis

// LogFunc receives a narration message during propagation, an injectable
// callback rather than a baked-in logging dependency.
type LogFunc func(format string, args ...any)

// Option configures a Propagate call.
type Option func(*options)

type options struct {
	log LogFunc
}

func defaultOptions() options {
	return options{log: func(string, ...any) {}}
}

// WithLogger installs fn to receive narration of each pass's per-axis
// decisions (copied, chop-built or neighbor-copied); an axis that is
// already defined is skipped without a message. Passing nil restores the
// no-op default.
func WithLogger(fn LogFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.log = fn
		}
	}
}
