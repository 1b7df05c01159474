package gendy

import "log/slog"

// An Option configures an Engine at construction.
type Option func(*options)

type options struct {
	config Config
	rand   *Rand
	logger *slog.Logger
}

// WithConfig sets the initial parameters.  Invalid fields are corrected and
// the corrections logged.
func WithConfig(c Config) Option {
	return func(o *options) { o.config = c }
}

// WithSeed seeds the engine's random source, making its output
// reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rand = NewRand(seed) }
}

// WithRand gives the engine a random source.  The engine must be its only
// user.
func WithRand(r *Rand) Option {
	return func(o *options) { o.rand = r }
}

// WithLogger sets the engine's logger.  By default an engine logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
