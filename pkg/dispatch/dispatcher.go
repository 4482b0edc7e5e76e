package dispatch

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/goliatone/go-domengine/pkg/model"
	"github.com/goliatone/go-domengine/pkg/wire"
)

// ErrNoClient is returned when no registered client is available.
var ErrNoClient = errors.New("dispatch: no available client")

// Client owns a DOM and serializes encoded templates on request.
type Client interface {
	ID() string
	Available() bool
	Serialize(ctx context.Context, payload []byte) (string, error)
}

// Option customises a Dispatcher.
type Option func(*Dispatcher)

// WithPicker replaces the random client selection. pick receives the number
// of available clients and returns the index to use.
func WithPicker(pick func(n int) int) Option {
	return func(d *Dispatcher) {
		if pick != nil {
			d.pick = pick
		}
	}
}

// WithClients registers clients at construction.
func WithClients(clients ...Client) Option {
	return func(d *Dispatcher) {
		d.clients = append(d.clients, clients...)
	}
}

// Dispatcher routes templates to clients. It is safe for concurrent use.
type Dispatcher struct {
	mu      sync.RWMutex
	clients []Client
	pick    func(n int) int
}

// New constructs a Dispatcher.
func New(options ...Option) *Dispatcher {
	d := &Dispatcher{pick: rand.Intn}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// Register adds a client. Registering an ID twice replaces the earlier client.
func (d *Dispatcher) Register(client Client) {
	if client == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, existing := range d.clients {
		if existing.ID() == client.ID() {
			d.clients[i] = client
			return
		}
	}
	d.clients = append(d.clients, client)
}

// Unregister removes the client with id.
func (d *Dispatcher) Unregister(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, existing := range d.clients {
		if existing.ID() == id {
			d.clients = append(d.clients[:i], d.clients[i+1:]...)
			return
		}
	}
}

// Serialize encodes tmpl and has a randomly chosen available client render it.
func (d *Dispatcher) Serialize(ctx context.Context, tmpl model.Template) (string, error) {
	client, err := d.choose()
	if err != nil {
		return "", err
	}

	payload, err := wire.Encode(tmpl)
	if err != nil {
		return "", err
	}

	out, err := client.Serialize(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("dispatch: client %s: %w", client.ID(), err)
	}
	return out, nil
}

func (d *Dispatcher) choose() (Client, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	available := make([]Client, 0, len(d.clients))
	for _, client := range d.clients {
		if client.Available() {
			available = append(available, client)
		}
	}
	if len(available) == 0 {
		return nil, ErrNoClient
	}
	return available[d.pick(len(available))], nil
}
