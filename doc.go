// Package reactive is a minimal retained-mode UI component library.
//
// A Component holds private keyed state, a pure template projects state and
// props to a render tree (package rdom), and the reconciler patches the
// previously rendered tree into the new shape with the fewest possible
// mutations, preserving node identity so attached event listeners and nested
// component subtrees survive re-renders.
//
// # State and Effects
//
// State has a fixed key schema and changes only through SetState, which
// compares values by identity, dispatches per-key and global effects for the
// keys that actually changed, and re-renders:
//
//	counter := reactive.New(template, map[string]any{"count": 0})
//	counter.Effects().Add("count", func() { ... })
//	counter.SetState(reactive.Set("count", 1))
//
// # Component Kinds
//
// Define builds a reusable kind from a configuration object; each instance
// gets its own deep-copied state and event list:
//
//	Counter := reactive.Define(reactive.Config{
//	    Template: func(c *reactive.Component) *rdom.Node {
//	        return rdom.El("span", rdom.Textf("%v", c.State()["count"]))
//	    },
//	    InitialState: map[string]any{"count": 0},
//	    Events: []reactive.EventDef{
//	        {Type: "click", Listener: increment, Selector: "button"},
//	    },
//	})
//	a, b := Counter.New(), Counter.New()
//
// State propagation between components is manual, wired through effect
// listeners; there is no dependency graph, no scheduler, and no asynchronous
// rendering. Everything runs synchronously on the caller's goroutine.
package reactive
