// Package rdom provides the render-tree node model and the reconciler.
//
// A render tree is what a component template produces on every render pass:
// element nodes with a tag, ordered attributes and children, and text nodes
// with content. The tree a component most recently adopted is its live tree;
// instead of being thrown away on the next render it is patched in place.
//
// # Core Types
//
// Node is the fundamental building block, either an element or text. Owner
// marks a node as the root of a nested component's self-managed subtree,
// which a parent reconciler may replace wholesale but never restructure.
//
// # Building Trees
//
// Trees are built with El and NewText, or parsed from markup:
//
//	rdom.El("div", rdom.A("class", "card"),
//	    rdom.El("h1", "Title"),
//	    rdom.El("p", "Content"),
//	)
//
//	rdom.MustParse(`<div class="card"><h1>Title</h1></div>`)
//
// # Reconciliation
//
// Reconcile(into, node) mutates the live tree `into` until it matches the
// freshly produced `node`, preserving node identity wherever possible so
// attached event handlers and owned subtrees survive. Every applied mutation
// can be observed through a Recorder, which feeds instrumentation, metrics,
// and patch streaming.
//
// # Events
//
// Nodes carry typed event handlers. Dispatch bubbles from the event target
// through its ancestors; Closest supports delegated dispatch against simple
// tag/#id/.class selectors.
package rdom
