// Package loader reads template markup from files, an fs.FS or HTTP(S)
// endpoints and turns it into templates ready for rendering.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/goliatone/go-domengine/pkg/model"
)

// ErrHTTPDisabled is returned for URL sources when no HTTP client is set up.
var ErrHTTPDisabled = errors.New("loader: http support disabled")

// Options configures a Loader.
type Options struct {
	FileSystem        fs.FS
	HTTPClient        *http.Client
	AllowHTTPFallback bool
	RequestTimeout    time.Duration
	// Companion rewrites every location to its ".html" sibling before
	// reading, so a component's module path can be passed directly.
	Companion bool
}

// Loader fetches template sources.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	timeout   time.Duration
	companion bool
}

// New constructs a Loader from options.
func New(options Options) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		timeout:   timeout,
		companion: options.Companion,
	}
}

// Load returns the raw markup at src.
func (l *Loader) Load(ctx context.Context, src Source) (string, error) {
	if src == nil {
		return "", errors.New("loader: source is nil")
	}

	location := src.Location()
	if l.companion {
		location = Companion(location)
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = loadFile(ctx, location)
	case SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, location)
	case SourceKindURL:
		if l.http == nil {
			return "", ErrHTTPDisabled
		}
		data, err = loadHTTP(ctx, l.http, location, l.timeout)
	default:
		err = fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return "", fmt.Errorf("loader: load %s: %w", location, err)
	}
	return string(data), nil
}

// Template loads src and pairs the markup with data.
func (l *Loader) Template(ctx context.Context, src Source, data model.Data) (model.Template, error) {
	source, err := l.Load(ctx, src)
	if err != nil {
		return model.Template{}, err
	}
	return model.New(source, data), nil
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return fs.ReadFile(filesystem, name)
}

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("unexpected status " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}
