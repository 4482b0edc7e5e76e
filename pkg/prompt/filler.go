package prompt

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/goliatone/go-domengine/pkg/model"
	"github.com/goliatone/go-domengine/pkg/render"
	"github.com/goliatone/go-domengine/pkg/resolve"
)

const defaultMaxPrompts = 32

// Filler serializes templates, prompting for missing required values.
type Filler struct {
	driver     Driver
	maxPrompts int
}

// Option customises a Filler.
type Option func(*Filler)

// WithMaxPrompts caps how many values a single Serialize call may ask for.
func WithMaxPrompts(n int) Option {
	return func(f *Filler) {
		if n > 0 {
			f.maxPrompts = n
		}
	}
}

// NewFiller returns a Filler asking driver for values.
func NewFiller(driver Driver, options ...Option) *Filler {
	f := &Filler{driver: driver, maxPrompts: defaultMaxPrompts}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Serialize renders tmpl with r. Missing values of tmpl's own markers are
// prompted for; missing values inside nested templates are returned as
// errors because their data is not addressable from here. The caller's data,
// nested maps and collections included, is not modified: answers go into a
// top-level copy and SetPath copies every container along the key path.
func (f *Filler) Serialize(ctx context.Context, r render.Renderer, tmpl model.Template) (string, error) {
	working := model.Template{Source: tmpl.Source, Data: maps.Clone(tmpl.Data)}
	if working.Data == nil {
		working.Data = model.Data{}
	}

	for asked := 0; ; asked++ {
		out, err := r.Serialize(working)
		if err == nil {
			return out, nil
		}

		var missing *resolve.MissingValueError
		if !errors.As(err, &missing) || missing.Source != working.Source {
			return "", err
		}
		if asked >= f.maxPrompts {
			return "", fmt.Errorf("prompt: gave up after %d values: %w", asked, err)
		}

		value, err := f.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Value for %s", missing.Marker),
			Help:    fmt.Sprintf("The template requires %q.", missing.Key),
			Validator: func(s string) error {
				if s == "" {
					return errors.New("a value is required")
				}
				return nil
			},
		})
		if err != nil {
			return "", err
		}
		working.Data.SetPath(missing.Key, value)
	}
}
