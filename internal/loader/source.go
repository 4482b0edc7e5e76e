package loader

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// SourceKind enumerates the supported template source locations.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source identifies where template markup lives.
type Source interface {
	Location() string
	Kind() SourceKind
}

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// FromFile returns a Source pointing to a file path.
func FromFile(p string) Source {
	return fileSource{path: filepath.Clean(p)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// FromFS returns a Source identifying a file inside the loader's fs.FS.
func FromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// FromURL parses raw and returns a Source for it. Unlike the file helpers it
// reports invalid input as an error since URLs usually come from user input.
func FromURL(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("loader: empty URL source")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("loader: unsupported URL scheme %q", u.Scheme)
	}
	return urlSource{raw: raw}, nil
}

// Companion returns the markup file that sits next to a component module:
// "widgets/card.js" becomes "widgets/card.html". The last extension is
// replaced; names without one get ".html" appended. Query strings and
// fragments on URLs are preserved.
func Companion(location string) string {
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Host != "" {
		u.Path = companionPath(u.Path)
		return u.String()
	}
	return companionPath(location)
}

func companionPath(p string) string {
	dir, file := path.Split(p)
	if file == "" {
		return p
	}
	if i := strings.LastIndexByte(file, '.'); i > 0 {
		file = file[:i]
	}
	return dir + file + ".html"
}
