package domengine

import (
	"github.com/goliatone/go-domengine/internal/loader"
)

// Loader reads template markup from files, an fs.FS or HTTP endpoints.
type Loader = loader.Loader

// LoaderOptions configures NewLoader.
type LoaderOptions = loader.Options

// NewLoader constructs a loader while keeping the implementation internal.
func NewLoader(options LoaderOptions) *Loader {
	return loader.New(options)
}

// SourceFromFile, SourceFromFS and SourceFromURL build loader sources.
var (
	SourceFromFile = loader.FromFile
	SourceFromFS   = loader.FromFS
	SourceFromURL  = loader.FromURL
)
