package rtest

import (
	"strings"
	"testing"

	"github.com/angeljsb/reactive"
	"github.com/angeljsb/reactive/pkg/rdom"
)

// Harness mounts a component and exposes its live tree for querying,
// event firing, and mutation counting.
type Harness struct {
	t    *testing.T
	comp *reactive.Component
	ops  *rdom.OpCounter
}

// Mount instantiates a kind, starts observing its mutations, and renders
// it with the given props.
//
// Example:
//
//	h := rtest.Mount(t, Counter, nil)
//	h.Click("button.inc")
//	h.ExpectText("span", "1")
func Mount(t *testing.T, kind *reactive.Kind, props map[string]any) *Harness {
	t.Helper()
	return MountComponent(t, kind.New(), props)
}

// MountComponent wraps an already-built component instance. Useful when a
// test needs to wire effects or listeners before the first render.
func MountComponent(t *testing.T, c *reactive.Component, props map[string]any) *Harness {
	t.Helper()
	h := &Harness{t: t, comp: c, ops: &rdom.OpCounter{}}
	c.Observe(h.ops)
	c.Get(props)
	if c.Tree() == nil {
		t.Fatal("component rendered no tree")
	}
	return h
}

// Component returns the mounted component.
func (h *Harness) Component() *reactive.Component {
	return h.comp
}

// Root returns the live tree root.
func (h *Harness) Root() *rdom.Node {
	return h.comp.Tree()
}

// HTML renders the live tree to an HTML string.
func (h *Harness) HTML() string {
	return rdom.RenderHTML(h.Root())
}

// SetProps replaces the component's props and re-renders.
func (h *Harness) SetProps(props map[string]any) {
	h.comp.Get(props)
}

// Query returns the first node matching the selector, or nil.
func (h *Harness) Query(sel string) *rdom.Node {
	return rdom.Find(h.Root(), sel)
}

// Find returns the first node matching the selector, failing the test
// when nothing matches.
func (h *Harness) Find(sel string) *rdom.Node {
	h.t.Helper()
	n := h.Query(sel)
	if n == nil {
		h.t.Fatalf("no node matches %q in:\n%s", sel, h.HTML())
	}
	return n
}

// Fire dispatches an event of the given type at the first node matching
// the selector.
func (h *Harness) Fire(sel, eventType string) {
	h.t.Helper()
	target := h.Find(sel)
	target.Dispatch(&rdom.Event{Type: eventType, Target: target})
}

// Click is shorthand for Fire(sel, "click").
func (h *Harness) Click(sel string) {
	h.t.Helper()
	h.Fire(sel, "click")
}

// Input sets the live value property on the matched node and dispatches
// an "input" event carrying it, mirroring what a browser does while the
// user types.
func (h *Harness) Input(sel, value string) {
	h.t.Helper()
	target := h.Find(sel)
	target.SetValue(value)
	target.Dispatch(&rdom.Event{Type: "input", Target: target, Value: value})
}

// Ops returns the number of tree mutations applied since mount (or the
// last ResetOps).
func (h *Harness) Ops() int {
	return h.ops.Total
}

// OpsOf returns the mutation count for one op kind.
func (h *Harness) OpsOf(kind rdom.OpKind) int {
	return h.ops.ByKind[kind]
}

// ResetOps clears the mutation counters.
func (h *Harness) ResetOps() {
	h.ops.Reset()
}

// ExpectContains asserts that the rendered HTML contains the substring.
func (h *Harness) ExpectContains(expected string) {
	h.t.Helper()
	if html := h.HTML(); !strings.Contains(html, expected) {
		h.t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered HTML does not contain the
// substring.
func (h *Harness) ExpectNotContains(unexpected string) {
	h.t.Helper()
	if html := h.HTML(); strings.Contains(html, unexpected) {
		h.t.Errorf("expected rendered output not to contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectText asserts that the matched node's subtree renders exactly the
// given text content.
func (h *Harness) ExpectText(sel, want string) {
	h.t.Helper()
	if got := textContent(h.Find(sel)); got != want {
		h.t.Errorf("text of %q = %q, want %q", sel, got, want)
	}
}

// ExpectAttr asserts an attribute value on the matched node.
func (h *Harness) ExpectAttr(sel, name, want string) {
	h.t.Helper()
	got, ok := h.Find(sel).Attr(name)
	if !ok {
		h.t.Errorf("node %q has no attribute %q", sel, name)
		return
	}
	if got != want {
		h.t.Errorf("attribute %q of %q = %q, want %q", name, sel, got, want)
	}
}

func textContent(n *rdom.Node) string {
	if n.Kind() == rdom.KindText {
		return n.Text()
	}
	var b strings.Builder
	for i := 0; i < n.ChildCount(); i++ {
		b.WriteString(textContent(n.Child(i)))
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
