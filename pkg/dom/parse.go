package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoDocumentElement is returned when a parsed document has no root element.
var ErrNoDocumentElement = errors.New("dom: document has no root element")

// ParseDocument parses markup as a full HTML document and returns its
// document element (<html>) detached from the document node. Any doctype in
// the markup is consumed by the parser; callers keep the literal doctype text
// themselves.
func ParseDocument(markup string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	for child := doc.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			doc.RemoveChild(child)
			return child, nil
		}
	}
	return nil, ErrNoDocumentElement
}

// ParseFragment parses markup in a <body> context, the same context a browser
// range uses for contextual fragments, and returns the resulting nodes under a
// container node.
func ParseFragment(markup string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Body.String(),
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("dom: parse fragment: %w", err)
	}
	container := NewContainer()
	for _, node := range nodes {
		if node.Parent != nil {
			node.Parent.RemoveChild(node)
		}
		container.AppendChild(node)
	}
	return container, nil
}

// NewContainer returns an empty fragment container.
func NewContainer() *html.Node {
	return &html.Node{Type: html.DocumentNode}
}

// IsContainer reports whether n is a fragment container rather than a real
// element or text node.
func IsContainer(n *html.Node) bool {
	return n != nil && n.Type == html.DocumentNode
}
