package ngramidx

// Options configures builder and index construction.
type Options struct {
	// Logger receives structured operation logs. Defaults to NoopLogger.
	Logger *Logger
}

// DefaultOptions returns the default construction options.
func DefaultOptions() Options {
	return Options{
		Logger: NoopLogger(),
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := ngramidx.NewJSONLogger(slog.LevelInfo)
//	builder, _ := ngramidx.NewBuilder[string](3, ngramidx.WithLogger(logger))
func WithLogger(logger *Logger) func(*Options) {
	return func(o *Options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.Logger = logger
	}
}

func applyOptions(optFns []func(*Options)) Options {
	o := DefaultOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
