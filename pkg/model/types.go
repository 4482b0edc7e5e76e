package model

import (
	"maps"
	"strings"
)

// Data is the context a template's markers resolve against. Values can be
// scalars, Templates, sequences, Collections or nested mappings addressed with
// dotted keys.
type Data map[string]any

// Template is a (source, data) pair. Source is treated as immutable and keys
// the fragment cache; two templates with the same source share one compiled
// structure regardless of their data.
type Template struct {
	Source string
	Data   Data
}

// New builds a Template, shallow-copying data so later changes to the caller's
// map do not leak into the template.
func New(source string, data Data) Template {
	return Template{
		Source: source,
		Data:   maps.Clone(data),
	}
}

// With returns a copy of the template whose data is the receiver's data
// overlaid with the supplied entries. It is the usual way to specialise a
// shared layout template per page.
func (t Template) With(data Data) Template {
	merged := make(Data, len(t.Data)+len(data))
	maps.Copy(merged, t.Data)
	maps.Copy(merged, data)
	return Template{Source: t.Source, Data: merged}
}

// Lookup returns the top-level data entry for name.
func (t Template) Lookup(name string) (any, bool) {
	if t.Data == nil {
		return nil, false
	}
	value, ok := t.Data[name]
	return value, ok
}

// SetPath stores value under a dotted key. Intermediate Data, map[string]any
// and Collection values along the path are copied before the write, so
// containers shared with other data (a caller's nested maps, a decoded data
// file) are never modified; only d itself changes. Missing or non-mapping
// intermediates are replaced with new Data maps.
func (d Data) SetPath(path string, value any) {
	segments := strings.Split(path, ".")
	d[segments[0]] = assign(d[segments[0]], segments[1:], value)
}

func assign(current any, segments []string, value any) any {
	if len(segments) == 0 {
		return value
	}
	key, rest := segments[0], segments[1:]
	switch c := current.(type) {
	case Data:
		out := maps.Clone(c)
		if out == nil {
			out = Data{}
		}
		out[key] = assign(c[key], rest, value)
		return out
	case map[string]any:
		out := maps.Clone(c)
		if out == nil {
			out = map[string]any{}
		}
		out[key] = assign(c[key], rest, value)
		return out
	case *Collection:
		out := c.Clone()
		prev, _ := c.Get(key)
		out.Set(key, assign(prev, rest, value))
		return out
	default:
		return Data{key: assign(nil, rest, value)}
	}
}
