// Package vdom provides the rendered-content tree for lazynav.
//
// A VNode tree is what a route's view produces. It is opaque to the
// routing core except for one node kind: KindSuspense, the boundary that
// ties a region of content to deferred values.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, raw HTML, and suspense boundaries. Props holds attributes.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Suspense
//
// A suspense boundary shows its fallback while any of its dependencies
// is Pending, its content once all are Ready, and an error state as soon
// as any is Failed (first failure wins):
//
//	Suspense(Text("Loading..."), func() *VNode {
//	    text, _ := data.Get()
//	    return Pre(Text(text))
//	}, data)
//
// CollectDependencies walks a tree (descending into resolved content)
// and returns the deferred values still gating it; the navigator awaits
// those to know when to re-render.
package vdom
