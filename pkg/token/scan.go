package token

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-domengine/pkg/dom"
)

// Attribute lists the markers of one attribute value.
type Attribute struct {
	Name   string
	Tokens []Token
}

// Set holds the markers found at one position. Elements carry Attributes;
// text nodes and raw-text elements carry Tokens, with Raw marking the latter
// for whole-content rewrite.
type Set struct {
	Attributes []Attribute
	Tokens     []Token
	Raw        bool
}

// Entry pairs a position with its Set.
type Entry struct {
	Position int
	Set      Set
}

// Map is the ordered position→Set index for one compiled tree. Positions are
// indexes into dom.Nodes(root) and are listed in ascending order.
type Map []Entry

// Len reports how many positions carry markers.
func (m Map) Len() int { return len(m) }

// Clone returns a deep copy of m.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for i, entry := range m {
		set := Set{Raw: entry.Set.Raw, Tokens: append([]Token(nil), entry.Set.Tokens...)}
		for _, attr := range entry.Set.Attributes {
			set.Attributes = append(set.Attributes, Attribute{
				Name:   attr.Name,
				Tokens: append([]Token(nil), attr.Tokens...),
			})
		}
		out[i] = Entry{Position: entry.Position, Set: set}
	}
	return out
}

// Scan walks root with dom.Nodes and records every position whose attribute
// values or text content contain markers. A raw-text element contributes both
// its attribute markers and its content markers at its own position.
func Scan(root *html.Node) Map {
	var out Map
	for position, node := range dom.Nodes(root) {
		var set Set
		switch node.Type {
		case html.ElementNode:
			for _, attr := range node.Attr {
				if tokens := Identify(attr.Val); len(tokens) > 0 {
					set.Attributes = append(set.Attributes, Attribute{
						Name:   dom.AttrName(attr),
						Tokens: tokens,
					})
				}
			}
			if dom.IsRawText(node) {
				if tokens := Identify(dom.Text(node)); len(tokens) > 0 {
					set.Tokens = tokens
					set.Raw = true
				}
			}
		case html.TextNode:
			set.Tokens = Identify(node.Data)
		}
		if len(set.Attributes) == 0 && len(set.Tokens) == 0 {
			continue
		}
		out = append(out, Entry{Position: position, Set: set})
	}
	return out
}

// Keys returns the distinct key paths referenced anywhere in m, in first-seen
// order.
func (m Map) Keys() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(tokens []Token) {
		for _, tok := range tokens {
			if _, ok := seen[tok.Key]; ok {
				continue
			}
			seen[tok.Key] = struct{}{}
			out = append(out, tok.Key)
		}
	}
	for _, entry := range m {
		for _, attr := range entry.Set.Attributes {
			add(attr.Tokens)
		}
		add(entry.Set.Tokens)
	}
	return out
}
