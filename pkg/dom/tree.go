package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var rawTextElements = map[atom.Atom]struct{}{
	atom.Title:    {},
	atom.Script:   {},
	atom.Style:    {},
	atom.Textarea: {},
}

// IsRawText reports whether n is an element whose content model is literal
// text (title, script, style, textarea). Such elements only ever hold text, so
// their content is rewritten as a whole rather than spliced child by child.
func IsRawText(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || n.Namespace != "" {
		return false
	}
	_, ok := rawTextElements[n.DataAtom]
	return ok
}

// Nodes returns root and its descendants in document (pre-order) order,
// keeping only element and text nodes. Children of raw-text elements are not
// visited; the element stands for its content. The walk is deterministic, so a
// deep clone yields the same sequence of node kinds as the original tree.
func Nodes(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode, html.TextNode:
			out = append(out, n)
		}
		if IsRawText(n) {
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// Clone returns a deep copy of n with no parent or siblings.
func Clone(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	out := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		out.Attr = make([]html.Attribute, len(n.Attr))
		copy(out.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out.AppendChild(Clone(child))
	}
	return out
}

// Text returns the text of a text node, or the concatenated text of an
// element's descendants.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				b.WriteString(child.Data)
				continue
			}
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

// SetText replaces the content of n with text. Text nodes are updated in
// place; elements lose their children and receive a single text child.
func SetText(n *html.Node, text string) {
	if n.Type == html.TextNode {
		n.Data = text
		return
	}
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		n.RemoveChild(child)
		child = next
	}
	if text != "" {
		n.AppendChild(NewText(text))
	}
}

// NewText returns a detached text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// ReplaceWith swaps n for replacements, in order, inside n's parent. It
// reports false when n is detached.
func ReplaceWith(n *html.Node, replacements ...*html.Node) bool {
	parent := n.Parent
	if parent == nil {
		return false
	}
	for _, replacement := range replacements {
		if replacement.Parent != nil {
			replacement.Parent.RemoveChild(replacement)
		}
		parent.InsertBefore(replacement, n)
	}
	parent.RemoveChild(n)
	return true
}

// Detach returns the nodes a rendered root contributes when spliced into
// another tree: a container gives up its children, anything else is itself.
func Detach(root *html.Node) []*html.Node {
	if !IsContainer(root) {
		if root.Parent != nil {
			root.Parent.RemoveChild(root)
		}
		return []*html.Node{root}
	}
	var out []*html.Node
	for child := root.FirstChild; child != nil; {
		next := child.NextSibling
		root.RemoveChild(child)
		out = append(out, child)
		child = next
	}
	return out
}
