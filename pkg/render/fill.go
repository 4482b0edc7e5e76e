package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-domengine/pkg/dom"
	"github.com/goliatone/go-domengine/pkg/model"
	"github.com/goliatone/go-domengine/pkg/resolve"
	"github.com/goliatone/go-domengine/pkg/token"
)

// filler mutates one clone on behalf of one template.
type filler struct {
	engine *Engine
	tmpl   model.Template
	depth  int
}

func (f filler) fill(root *html.Node, tokens token.Map) error {
	// Collect nodes before mutating: splicing replaces text nodes but the
	// positions were computed on the untouched tree.
	nodes := dom.Nodes(root)
	for _, entry := range tokens {
		if entry.Position >= len(nodes) {
			return fmt.Errorf("%w: %d of %d", ErrPositionMismatch, entry.Position, len(nodes))
		}
		node := nodes[entry.Position]

		for _, attr := range entry.Set.Attributes {
			if err := f.attribute(node, attr); err != nil {
				return err
			}
		}
		if len(entry.Set.Tokens) == 0 {
			continue
		}
		var err error
		if entry.Set.Raw {
			err = f.rawText(node, entry.Set.Tokens)
		} else {
			err = f.text(node, entry.Set.Tokens)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// attribute substitutes each marker in the attribute value. An attribute made
// of a single marker that resolves to "" is removed.
func (f filler) attribute(node *html.Node, attr token.Attribute) error {
	initial, ok := dom.Attr(node, attr.Name)
	if !ok {
		return nil
	}

	value, err := f.splice(initial, attr.Tokens, f.attributeText)
	if err != nil {
		return err
	}

	if len(attr.Tokens) == 1 && value == "" {
		dom.RemoveAttr(node, attr.Name)
		return nil
	}
	dom.SetAttr(node, attr.Name, value)
	return nil
}

// rawText rewrites the whole content of a title/script/style/textarea.
func (f filler) rawText(node *html.Node, tokens []token.Token) error {
	value, err := f.splice(dom.Text(node), tokens, rawTextValue)
	if err != nil {
		return err
	}
	dom.SetText(node, value)
	return nil
}

// splice walks s from a moving cursor, replacing each marker occurrence with
// the string form of its resolved value and keeping literal text around it.
func (f filler) splice(s string, tokens []token.Token, stringify func(resolve.Resolved) (string, error)) (string, error) {
	var b strings.Builder
	rest := s
	for _, tok := range tokens {
		resolved, err := resolve.Resolve(f.tmpl, tok)
		if err != nil {
			return "", err
		}
		idx := strings.Index(rest, tok.Marker)
		if idx < 0 {
			return "", missingMarker(tok)
		}
		text, err := stringify(resolved)
		if err != nil {
			return "", err
		}
		b.WriteString(rest[:idx])
		b.WriteString(text)
		rest = rest[idx+len(tok.Marker):]
	}
	b.WriteString(rest)
	return b.String(), nil
}

// attributeText renders nested templates to markup so they can live inside
// an attribute value.
func (f filler) attributeText(r resolve.Resolved) (string, error) {
	switch v := r.(type) {
	case resolve.Sub:
		return f.engine.markup(v.Template, f.depth+1)
	case resolve.Sequence:
		var b strings.Builder
		for _, item := range v {
			text, err := f.attributeText(item)
			if err != nil {
				return "", err
			}
			b.WriteString(text)
		}
		return b.String(), nil
	}
	return resolve.String(r), nil
}

func rawTextValue(r resolve.Resolved) (string, error) {
	switch v := r.(type) {
	case resolve.Sub:
		return "", ErrRawTextContent
	case resolve.Sequence:
		var b strings.Builder
		for _, item := range v {
			text, err := rawTextValue(item)
			if err != nil {
				return "", err
			}
			b.WriteString(text)
		}
		return b.String(), nil
	}
	return resolve.String(r), nil
}

// text replaces a text node with the run of nodes its markers expand to.
func (f filler) text(node *html.Node, tokens []token.Token) error {
	var out run
	rest := node.Data
	for _, tok := range tokens {
		resolved, err := resolve.Resolve(f.tmpl, tok)
		if err != nil {
			return err
		}
		idx := strings.Index(rest, tok.Marker)
		if idx < 0 {
			return missingMarker(tok)
		}
		out.text.WriteString(rest[:idx])
		rest = rest[idx+len(tok.Marker):]
		if err := f.expand(&out, resolved); err != nil {
			return err
		}
	}
	out.text.WriteString(rest)
	out.flush()

	dom.ReplaceWith(node, out.nodes...)
	return nil
}

func (f filler) expand(out *run, r resolve.Resolved) error {
	switch v := r.(type) {
	case resolve.Scalar:
		out.text.WriteString(string(v))
	case resolve.Sub:
		root, _, err := f.engine.render(v.Template, f.depth+1)
		if err != nil {
			return err
		}
		out.append(dom.Detach(root)...)
	case resolve.Sequence:
		for _, item := range v {
			if err := f.expand(out, item); err != nil {
				return err
			}
		}
	}
	return nil
}

// run accumulates the replacement for one text node, merging adjacent text.
type run struct {
	nodes []*html.Node
	text  strings.Builder
}

func (r *run) flush() {
	if r.text.Len() == 0 {
		return
	}
	r.nodes = append(r.nodes, dom.NewText(r.text.String()))
	r.text.Reset()
}

func (r *run) append(nodes ...*html.Node) {
	r.flush()
	r.nodes = append(r.nodes, nodes...)
}

// missingMarker reports a scanned marker that is no longer in the node it was
// found in, meaning the tree no longer matches its position map.
func missingMarker(tok token.Token) error {
	return fmt.Errorf("%w: marker %s not found", ErrPositionMismatch, tok.Marker)
}
