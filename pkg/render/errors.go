package render

import "errors"

var (
	// ErrRawTextContent is returned when a marker inside a raw-text element
	// (title, script, style, textarea) resolves to a nested template. Those
	// elements only hold text, so only scalar values can be substituted.
	ErrRawTextContent = errors.New("render: nested template inside raw-text element")
	// ErrPositionMismatch signals that a clone no longer lines up with the
	// token map compiled for its source.
	ErrPositionMismatch = errors.New("render: token position out of range")
	// ErrMaxDepth is returned when nested templates recurse deeper than the
	// configured limit, usually because data refers back to itself.
	ErrMaxDepth = errors.New("render: maximum template nesting depth exceeded")
)
