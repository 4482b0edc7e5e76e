package dispatch_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-domengine/pkg/dispatch"
	"github.com/goliatone/go-domengine/pkg/model"
	"github.com/goliatone/go-domengine/pkg/render"
	"github.com/goliatone/go-domengine/pkg/resolve"
)

type stubClient struct {
	id        string
	available bool
	payloads  [][]byte
}

func (s *stubClient) ID() string      { return s.id }
func (s *stubClient) Available() bool { return s.available }

func (s *stubClient) Serialize(_ context.Context, payload []byte) (string, error) {
	s.payloads = append(s.payloads, payload)
	return "from " + s.id, nil
}

type blockingClient struct{}

func (blockingClient) ID() string      { return "blocking" }
func (blockingClient) Available() bool { return true }

func (blockingClient) Serialize(ctx context.Context, _ []byte) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestDispatcherWithoutClients(t *testing.T) {
	d := dispatch.New()
	_, err := d.Serialize(context.Background(), model.New(`<p></p>`, nil))
	if !errors.Is(err, dispatch.ErrNoClient) {
		t.Fatalf("expected ErrNoClient, got %v", err)
	}

	d.Register(&stubClient{id: "hidden", available: false})
	if _, err := d.Serialize(context.Background(), model.New(`<p></p>`, nil)); !errors.Is(err, dispatch.ErrNoClient) {
		t.Fatalf("expected unavailable clients to be skipped, got %v", err)
	}
}

func TestDispatcherPicksAmongAvailable(t *testing.T) {
	a := &stubClient{id: "a", available: true}
	b := &stubClient{id: "b", available: false}
	c := &stubClient{id: "c", available: true}

	var seen []int
	d := dispatch.New(
		dispatch.WithClients(a, b, c),
		dispatch.WithPicker(func(n int) int {
			seen = append(seen, n)
			return n - 1
		}),
	)

	out, err := d.Serialize(context.Background(), model.New(`<p>{x}</p>`, model.Data{"x": "y"}))
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if out != "from c" {
		t.Fatalf("expected last available client, got %q", out)
	}
	if len(seen) != 1 || seen[0] != 2 {
		t.Fatalf("expected picker to see 2 available clients, got %v", seen)
	}
	if len(c.payloads) != 1 {
		t.Fatalf("expected one payload for c, got %d", len(c.payloads))
	}

	d.Unregister("c")
	out, err = d.Serialize(context.Background(), model.New(`<p></p>`, nil))
	if err != nil || out != "from a" {
		t.Fatalf("expected a after unregistering c, got %q %v", out, err)
	}
}

func TestWorkerRendersDecodedTemplates(t *testing.T) {
	worker := dispatch.NewWorker("tab-1", render.New())
	defer worker.Close()

	d := dispatch.New(dispatch.WithClients(worker))
	tmpl := model.New(`<ul>{items}</ul>`, model.Data{
		"items": []model.Template{
			model.New(`<li>{x}</li>`, model.Data{"x": "a"}),
			model.New(`<li>{x}</li>`, model.Data{"x": "b"}),
		},
	})

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := d.Serialize(context.Background(), tmpl)
			if err == nil && out != `<ul><li>a</li><li>b</li></ul>` {
				err = fmt.Errorf("unexpected markup %q", out)
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}
	if worker.Served() != 8 {
		t.Fatalf("expected 8 served requests, got %d", worker.Served())
	}
}

func TestWorkerPropagatesMissingValue(t *testing.T) {
	worker := dispatch.NewWorker("tab-1", render.New())
	defer worker.Close()

	d := dispatch.New(dispatch.WithClients(worker))
	_, err := d.Serialize(context.Background(), model.New(`<p>{name}</p>`, nil))
	if !errors.Is(err, resolve.ErrMissingValue) {
		t.Fatalf("expected ErrMissingValue through dispatch, got %v", err)
	}
}

func TestWorkerClose(t *testing.T) {
	worker := dispatch.NewWorker("tab-1", render.New())
	worker.Close()
	worker.Close()

	if worker.Available() {
		t.Fatalf("expected closed worker to be unavailable")
	}
	if _, err := worker.Serialize(context.Background(), nil); !errors.Is(err, dispatch.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestDispatchHonoursContext(t *testing.T) {
	d := dispatch.New(dispatch.WithClients(blockingClient{}))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := d.Serialize(ctx, model.New(`<p></p>`, nil))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
