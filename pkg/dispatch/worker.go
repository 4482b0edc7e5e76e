package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-domengine/pkg/render"
	"github.com/goliatone/go-domengine/pkg/wire"
)

// ErrClosed is returned by a Worker after Close.
var ErrClosed = errors.New("dispatch: worker closed")

type request struct {
	payload []byte
	reply   chan response
}

type response struct {
	markup string
	err    error
}

// Worker is an in-process Client. Requests are served one at a time by a
// single goroutine that owns the renderer, mirroring a browser tab that
// handles messages on its event loop.
type Worker struct {
	id       string
	renderer render.Renderer
	requests chan request
	done     chan struct{}
	wg       sync.WaitGroup
	closed   atomic.Bool

	served atomic.Uint64
}

var _ Client = (*Worker)(nil)

// NewWorker starts a worker serving requests with renderer.
func NewWorker(id string, renderer render.Renderer) *Worker {
	w := &Worker{
		id:       id,
		renderer: renderer,
		requests: make(chan request),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w
}

// ID returns the worker identifier.
func (w *Worker) ID() string { return w.id }

// Available reports whether the worker still accepts requests.
func (w *Worker) Available() bool { return !w.closed.Load() }

// Served reports how many requests the worker has completed.
func (w *Worker) Served() uint64 { return w.served.Load() }

// Serialize sends payload to the worker goroutine and waits for its markup.
func (w *Worker) Serialize(ctx context.Context, payload []byte) (string, error) {
	if w.closed.Load() {
		return "", ErrClosed
	}

	req := request{payload: payload, reply: make(chan response, 1)}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-w.done:
		return "", ErrClosed
	case w.requests <- req:
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case resp := <-req.reply:
		return resp.markup, resp.err
	}
}

// Close stops the worker and waits for the in-flight request to finish.
func (w *Worker) Close() {
	if w.closed.Swap(true) {
		return
	}
	close(w.done)
	w.wg.Wait()
}

func (w *Worker) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case req := <-w.requests:
			resp := w.handle(req.payload)
			w.served.Add(1)
			req.reply <- resp
		}
	}
}

func (w *Worker) handle(payload []byte) response {
	tmpl, err := wire.Decode(payload)
	if err != nil {
		return response{err: err}
	}
	markup, err := w.renderer.Serialize(tmpl)
	return response{markup: markup, err: err}
}
