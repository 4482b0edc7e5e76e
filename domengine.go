// Package domengine renders HTML templates whose markup carries {name} and
// {?name} markers. Templates are compiled once per distinct source, cached as
// parsed trees and filled on a fresh clone for every render.
//
// Quick start:
//
//	engine := domengine.NewEngine()
//	out, err := engine.Serialize(domengine.New(`<p>{greeting}</p>`, domengine.Data{
//		"greeting": "Hello",
//	}))
package domengine

import (
	"log/slog"

	"golang.org/x/net/html"

	"github.com/goliatone/go-domengine/pkg/cache"
	"github.com/goliatone/go-domengine/pkg/model"
	"github.com/goliatone/go-domengine/pkg/render"
	"github.com/goliatone/go-domengine/pkg/resolve"
	"github.com/goliatone/go-domengine/pkg/sanitize"
)

// Template pairs a source with its data context.
type Template = model.Template

// Data is the key/value context markers resolve against.
type Data = model.Data

// Collection is an ordered key/value container rendered value by value.
type Collection = model.Collection

// Engine compiles, caches and renders templates.
type Engine = render.Engine

// Option customises an Engine.
type Option = render.Option

// MissingValueError reports a required marker without a value.
type MissingValueError = resolve.MissingValueError

// ErrMissingValue matches every MissingValueError via errors.Is.
var ErrMissingValue = resolve.ErrMissingValue

// New builds a template from source and data.
func New(source string, data Data) Template {
	return model.New(source, data)
}

// NewCollection returns an empty ordered collection.
func NewCollection() *Collection {
	return model.NewCollection()
}

// NewEngine constructs an Engine. Each engine owns its fragment cache.
func NewEngine(options ...Option) *Engine {
	return render.New(options...)
}

// Render is shorthand for engine.Render.
func Render(engine *Engine, tmpl Template) (*html.Node, error) {
	return engine.Render(tmpl)
}

// Serialize is shorthand for engine.Serialize.
func Serialize(engine *Engine, tmpl Template) (string, error) {
	return engine.Serialize(tmpl)
}

// WithPolicy sets the sanitization policy.
func WithPolicy(policy sanitize.Policy) Option {
	return render.WithPolicy(policy)
}

// WithCacheSize bounds the fragment cache with an LRU of size entries.
func WithCacheSize(size int) Option {
	return render.WithCacheSize(size)
}

// WithCache injects a fragment store.
func WithCache(store cache.Store[string, *render.Fragment]) Option {
	return render.WithCache(store)
}

// WithLogger routes engine diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return render.WithLogger(logger)
}
