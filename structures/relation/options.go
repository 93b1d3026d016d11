package relation

import (
	"context"
	"log/slog"
)

type config struct {
	log    *slog.Logger
	verify bool
}

// Option configures a relation at construction time.
type Option func(conf *config)

// WithLogger sets a logger that receives debug records for relation lifecycle events, like partners being detached or a key being replaced.
// Nothing is logged for individual puts. A nil logger disables logging, which is the default.
func WithLogger(log *slog.Logger) Option {
	return func(conf *config) {
		conf.log = log
	}
}

// WithInvariantChecks makes every mutating operation audit both indices afterward, panicking with an error wrapping [ErrCorrupted] if they disagree.
// This is expensive, and intended for tests and debugging.
func WithInvariantChecks() Option {
	return func(conf *config) {
		conf.verify = true
	}
}

func newConfig(opts []Option) *config {
	conf := new(config)
	for _, opt := range opts {
		if opt != nil {
			opt(conf)
		}
	}
	return conf
}

// shared is the state common to both indices of a relation, and to every façade over it.
type shared struct {
	mods     uint64
	log      *slog.Logger
	verify   func() error
	nilValue bool
	valued   bool
}

func (s *shared) modified() {
	s.mods++
}

func (s *shared) debug(msg string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.Log(context.Background(), slog.LevelDebug, msg, args...)
}

// audit runs after a completed mutation when invariant checks are enabled.
func (s *shared) audit(op string) {
	if s.verify == nil {
		return
	}
	if err := s.verify(); err != nil {
		panic(&OpError{Op: op, Err: err})
	}
}
