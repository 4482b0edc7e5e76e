package domengine

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// EmbeddedTemplates exposes the starter page templates (layout, main, nav,
// item and notice) so callers can compose a page without writing markup
// first. Load them with NewLoader and a FS source.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
