// Package resolve turns a marker into a value. Value walks a dotted key path
// through a data context; Resolve applies the required/optional contract and
// classifies the result into the closed Resolved variant the filler matches
// on.
package resolve

import "github.com/goliatone/go-domengine/pkg/model"

// Resolved is one of Scalar, Sequence, Sub or Empty.
type Resolved interface {
	resolved()
}

// Scalar is a value rendered as text.
type Scalar string

// Sequence is an ordered run of values, rendered one after another. Items may
// themselves be Sequences.
type Sequence []Resolved

// Sub is a nested template rendered to nodes.
type Sub struct {
	Template model.Template
}

// Empty contributes nothing. It is what an optional marker resolves to when
// its value is missing, and is distinct from the text "null".
type Empty struct{}

func (Scalar) resolved()   {}
func (Sequence) resolved() {}
func (Sub) resolved()      {}
func (Empty) resolved()    {}
