// Package dispatch serializes templates in a context that does not own a DOM
// by borrowing one that does. A Dispatcher encodes the template with package
// wire, picks an available Client at random and waits for the markup it sends
// back. Worker is an in-process Client that owns a render engine and serves
// requests from its own goroutine.
package dispatch
