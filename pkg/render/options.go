package render

import (
	"log/slog"

	"github.com/goliatone/go-domengine/pkg/cache"
	"github.com/goliatone/go-domengine/pkg/sanitize"
)

const defaultMaxDepth = 64

// Option customises an Engine.
type Option func(*Engine)

// WithCache injects the store used for compiled fragments. The engine owns
// the store for its lifetime; share one store between engines only when they
// use the same policy.
func WithCache(store cache.Store[string, *Fragment]) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithCacheSize bounds the fragment cache to size entries using an LRU store.
// A size of zero keeps the default unbounded, append-only cache.
func WithCacheSize(size int) Option {
	return func(e *Engine) {
		if size <= 0 {
			return
		}
		e.store = cache.NewLRU[string, *Fragment](size)
	}
}

// WithPolicy sets the sanitization policy applied to every source before it
// is parsed and to serialized output. Nil disables sanitization.
func WithPolicy(policy sanitize.Policy) Option {
	return func(e *Engine) {
		e.policy = policy
	}
}

// WithLogger routes engine diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxDepth limits how deeply nested templates may recurse.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}
