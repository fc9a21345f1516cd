package store

// engineConfig collects the options a caller can pass to NewEngine. The
// library takes no environment variables and persists nothing; this is the
// entire configuration surface.
type engineConfig struct {
	initialCapacity int
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

func applyOptions(opts []Option) engineConfig {
	cfg := engineConfig{initialCapacity: defaultInitialCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithInitialCapacity preallocates the Engine's internal maps for roughly n
// tokens, avoiding rehashing growth on an initial bulk load of Seed calls.
func WithInitialCapacity(n int) Option {
	return func(cfg *engineConfig) {
		if n > 0 {
			cfg.initialCapacity = n
		}
	}
}
