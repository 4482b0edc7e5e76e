package resolve

import (
	"errors"
	"fmt"
)

// ErrMissingValue matches every *MissingValueError via errors.Is.
var ErrMissingValue = errors.New("resolve: missing value")

// MissingValueError reports a required marker whose value is absent or nil.
type MissingValueError struct {
	// Marker is the literal marker text, e.g. "{user.name}".
	Marker string
	// Key is the dotted path that failed to resolve.
	Key string
	// Source is the source of the template that owns the marker.
	Source string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("resolve: missing %s in %q", e.Marker, e.Source)
}

// Is lets errors.Is(err, ErrMissingValue) match.
func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}
