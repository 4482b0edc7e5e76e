package render

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-domengine/pkg/model"
)

// Renderer is the contract consumers depend on: produce a live node tree or a
// serialized string for a template.
type Renderer interface {
	Render(tmpl model.Template) (*html.Node, error)
	Serialize(tmpl model.Template) (string, error)
}

// Ensure Engine implements the Renderer interface.
var _ Renderer = (*Engine)(nil)
