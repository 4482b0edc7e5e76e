package render

import (
	"fmt"
	"regexp"

	"golang.org/x/net/html"

	"github.com/goliatone/go-domengine/pkg/dom"
	"github.com/goliatone/go-domengine/pkg/sanitize"
	"github.com/goliatone/go-domengine/pkg/token"
)

var doctypePattern = regexp.MustCompile(`(?i)^\s*<!doctype [^>]+>`)

// Fragment is the compiled, cached form of one template source.
//
// Invariant: Tokens positions index dom.Nodes(Root). dom.Clone preserves node
// order, kinds and count, so the same positions address the same nodes in
// every clone returned by Clone. The cached Fragment is shared by every render
// and its Root is never mutated: fill always works on a clone, and
// Engine.Compile hands callers a copy rather than the cached entry.
type Fragment struct {
	// Doctype is the literal doctype prefix of a document source, or "" for
	// fragments. It is reattached only at serialization.
	Doctype string
	// Root is the <html> element for documents, or a fragment container.
	Root   *html.Node
	Tokens token.Map
}

// Clone returns a deep copy of the fragment root, ready to be filled.
func (f *Fragment) Clone() *html.Node {
	return dom.Clone(f.Root)
}

// IsDocument reports whether the source compiled as a full document.
func (f *Fragment) IsDocument() bool {
	return f.Doctype != ""
}

// compile parses source (after applying policy) and scans it for markers.
// Doctype detection runs on the raw source, before the policy sees it.
func compile(source string, policy sanitize.Policy) (*Fragment, error) {
	doctype := doctypePattern.FindString(source)
	markup := sanitize.Apply(policy, source)

	var (
		root *html.Node
		err  error
	)
	if doctype != "" {
		root, err = dom.ParseDocument(markup)
	} else {
		root, err = dom.ParseFragment(markup)
	}
	if err != nil {
		return nil, fmt.Errorf("render: compile template: %w", err)
	}

	return &Fragment{
		Doctype: doctype,
		Root:    root,
		Tokens:  token.Scan(root),
	}, nil
}
