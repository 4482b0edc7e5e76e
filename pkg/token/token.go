// Package token discovers markers in a parsed tree. A marker is `{name}`
// (required) or `{?name}` (optional) where name is a dotted path of lowercase
// identifiers. Scan records, per node position, the ordered markers found in
// attribute values or text content.
//
// Markers are matched against decoded DOM text, after the parser has resolved
// character references, so `&#123;name}` in the source is a marker. Values
// substituted during fill are never re-scanned.
package token

import "regexp"

// Pattern matches a single marker. Group 1 is the optional flag, group 2 the
// key path.
var Pattern = regexp.MustCompile(`\{(\?)?([a-z][a-z0-9_]*(?:\.[a-z][a-z0-9_]*)*)\}`)

// Token is one marker occurrence.
type Token struct {
	// Marker is the literal text found in the source, e.g. "{?user.name}".
	Marker string
	// Key is the dotted path, e.g. "user.name".
	Key string
	// Optional is true for `{?name}` markers.
	Optional bool
}

// Identify returns the markers in s in order of appearance, keeping duplicates.
func Identify(s string) []Token {
	matches := Pattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Token, 0, len(matches))
	for _, m := range matches {
		out = append(out, Token{
			Marker:   m[0],
			Key:      m[2],
			Optional: m[1] == "?",
		})
	}
	return out
}
