package render

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/goliatone/go-domengine/pkg/cache"
	"github.com/goliatone/go-domengine/pkg/dom"
	"github.com/goliatone/go-domengine/pkg/model"
	"github.com/goliatone/go-domengine/pkg/sanitize"
)

// Engine compiles, caches and fills templates. It is safe for concurrent use.
type Engine struct {
	store    cache.Store[string, *Fragment]
	policy   sanitize.Policy
	logger   *slog.Logger
	maxDepth int
}

// New constructs an Engine applying any provided options. Without options the
// engine uses an unbounded cache, no sanitization and a discarding logger.
func New(options ...Option) *Engine {
	e := &Engine{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.applyDefaults()
	return e
}

func (e *Engine) applyDefaults() {
	if e.store == nil {
		e.store = cache.NewUnbounded[string, *Fragment]()
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.maxDepth <= 0 {
		e.maxDepth = defaultMaxDepth
	}
}

// Compile returns the compiled form of source, parsing and scanning it on
// first use. The result is a private copy: its Root is a deep clone of the
// cached tree and its Tokens are copied, so callers may mutate it freely
// without affecting later renders.
func (e *Engine) Compile(source string) (*Fragment, error) {
	fragment, err := e.compiled(source)
	if err != nil {
		return nil, err
	}
	return &Fragment{
		Doctype: fragment.Doctype,
		Root:    fragment.Clone(),
		Tokens:  fragment.Tokens.Clone(),
	}, nil
}

// compiled returns the shared cache entry for source. Two goroutines
// compiling the same new source may both parse it; the later Set wins and
// both results are equivalent.
func (e *Engine) compiled(source string) (*Fragment, error) {
	if fragment, ok := e.store.Get(source); ok {
		return fragment, nil
	}

	fragment, err := compile(source, e.policy)
	if err != nil {
		return nil, err
	}
	e.store.Set(source, fragment)

	e.logger.Debug("render: compiled template",
		"bytes", len(source),
		"document", fragment.IsDocument(),
		"positions", fragment.Tokens.Len(),
		"cached", e.store.Len(),
	)
	return fragment, nil
}

// Keys lists the key paths referenced by source's markers in document order.
func (e *Engine) Keys(source string) ([]string, error) {
	fragment, err := e.compiled(source)
	if err != nil {
		return nil, err
	}
	return fragment.Tokens.Keys(), nil
}

// Render fills a clone of the template's compiled tree and returns its root:
// the <html> element for documents, a fragment container otherwise.
func (e *Engine) Render(tmpl model.Template) (*html.Node, error) {
	root, _, err := e.render(tmpl, 0)
	return root, err
}

// Serialize renders tmpl and returns doctype plus markup, passed through the
// engine's policy.
func (e *Engine) Serialize(tmpl model.Template) (string, error) {
	markup, err := e.markup(tmpl, 0)
	if err != nil {
		return "", err
	}
	return sanitize.Apply(e.policy, markup), nil
}

// Write serializes tmpl to w.
func (e *Engine) Write(w io.Writer, tmpl model.Template) error {
	markup, err := e.Serialize(tmpl)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, markup)
	return err
}

// Stats exposes fragment cache counters.
func (e *Engine) Stats() cache.Stats {
	return e.store.Stats()
}

func (e *Engine) render(tmpl model.Template, depth int) (*html.Node, *Fragment, error) {
	if depth > e.maxDepth {
		return nil, nil, fmt.Errorf("%w (%d)", ErrMaxDepth, e.maxDepth)
	}
	fragment, err := e.compiled(tmpl.Source)
	if err != nil {
		return nil, nil, err
	}
	root := fragment.Clone()
	f := filler{engine: e, tmpl: tmpl, depth: depth}
	if err := f.fill(root, fragment.Tokens); err != nil {
		return nil, nil, err
	}
	return root, fragment, nil
}

// markup renders tmpl and serializes it without applying the policy.
func (e *Engine) markup(tmpl model.Template, depth int) (string, error) {
	root, fragment, err := e.render(tmpl, depth)
	if err != nil {
		return "", err
	}
	out, err := dom.Serialize(root)
	if err != nil {
		return "", fmt.Errorf("render: serialize template: %w", err)
	}
	return fragment.Doctype + out, nil
}
