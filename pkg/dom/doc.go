// Package dom is the parsing and tree-manipulation capability the engine
// consumes. It wraps golang.org/x/net/html so the compile and fill stages only
// see a small surface: parse a document or a fragment, walk nodes in document
// order, deep-clone, read and write attributes and text, splice nodes and
// serialize.
//
// Fragments are returned under a container node of type html.DocumentNode with
// no doctype child; rendering the container emits only its children.
package dom
