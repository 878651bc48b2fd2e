// Package rtest provides testing helpers for reactive components.
//
// The harness mounts a component kind, tracks every mutation its
// re-renders apply, and lets tests query the live tree with CSS-style
// selectors and fire synthetic events:
//
//	func TestCounter(t *testing.T) {
//	    h := rtest.Mount(t, Counter, nil)
//	    h.Click("button.inc")
//	    h.ExpectText("span.count", "1")
//	    if h.OpsOf(rdom.OpSetText) != 1 {
//	        t.Error("expected a single text patch")
//	    }
//	}
//
// Input simulates typing: it sets the node's live value property and
// dispatches an "input" event, the same sequence a browser produces.
package rtest
