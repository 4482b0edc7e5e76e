// Package wire encodes templates into a portable JSON form so they can be
// handed to another execution context (a worker goroutine, another process)
// that owns a DOM and serializes them there.
//
// Every value is wrapped in a JSON array whose shape tags its kind:
//
//	[scalar]                     string, number, bool or null
//	[[item, item, ...]]          sequence; each item is itself wrapped
//	[{"key": item, ...}]         mapping
//	[{"key": item, ...}, "src"]  template: data plus its source
//	[{"key": item, ...}, null, ["k1", "k2"]]
//	                             ordered collection with its key order
package wire
