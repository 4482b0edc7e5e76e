// Package model defines the records the engine renders: a Template pairs an
// immutable markup source (the compile cache key) with a Data context, and a
// Collection carries ordered key/value data whose values are rendered in
// insertion order. Engine-private state never lives inside Data, so user keys
// can use any name a marker can address.
package model
