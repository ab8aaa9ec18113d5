// Package render turns VNode trees into HTML.
//
// The renderer resolves suspense boundaries at render time: a boundary
// renders its fallback while any dependency is Pending, its content once
// all are Ready, and an error region on the first failure. Each boundary
// is wrapped in a marker element so a host pushing re-renders (see
// cmd/lazynav) swaps settled regions in place.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(tree)
//
// Page assembles a complete HTML document around rendered body content
// for hosts serving over HTTP.
package render
