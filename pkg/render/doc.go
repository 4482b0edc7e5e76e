// Package render compiles templates into cached fragments and fills clones of
// them with data. Engine is the entry point:
//
//	engine := render.New()
//	markup, err := engine.Serialize(model.New(`<p class="{?c}">{t}</p>`, model.Data{"t": "hi"}))
//	// markup == "<p>hi</p>"
//
// Compile parses and scans a source once and keeps the result in the engine's
// cache. Render and Serialize always work on a deep clone of the cached tree,
// so concurrent renders never observe each other's mutations.
package render
