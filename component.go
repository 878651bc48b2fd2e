package reactive

import (
	"github.com/angeljsb/reactive/pkg/rdom"
)

// Template is a pure projection from a component's state and props to a
// fresh render tree. It must not mutate the component.
type Template func(c *Component) *rdom.Node

// EventListener handles a UI event on behalf of a component.
type EventListener func(c *Component, e *rdom.Event)

// Field is a single state update. SetState takes fields rather than a map so
// multi-key batches keep the order the caller supplied, which fixes the
// dispatch order of per-key effects.
type Field struct {
	Key   string
	Value any
}

// Set builds a Field for SetState.
func Set(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Binding is one registered event listener. AddEventListener returns it as
// an opaque handle for RemoveEventListener; two bindings are distinct even
// when built from the same function literal. The dispatch wrapper is built
// lazily, once per binding, and re-registered on the current root after
// every patch since a replaced root carries no prior handlers. The handle
// from the last AddHandler call is kept so reattaching removes exactly this
// binding's wrapper and nothing else.
type Binding struct {
	eventType string
	listener  EventListener
	selector  string
	wrapper   rdom.Handler
	handle    *rdom.HandlerRef
}

// Type returns the event type the binding listens for.
func (b *Binding) Type() string { return b.eventType }

// Selector returns the delegation selector, or "" for a direct binding.
func (b *Binding) Selector() string { return b.selector }

// Component couples a state store, an effect registry, a template and a
// persistent live tree. External state mutations flow through SetState,
// which dispatches effects and re-renders; the live tree is patched in place
// so handlers and nested component subtrees keep their identity.
//
// State is reachable only through Snapshot/State; there is no way to assign
// it directly, so immutability is enforced at compile time rather than by
// intercepting writes.
type Component struct {
	state    *StateStore
	props    map[string]any
	template Template
	live     *rdom.Node
	events   []*Binding
	effects  *EffectRegistry

	// Extra holds instance fields copied from a factory's definitions
	// mapping.
	Extra map[string]any

	recorder rdom.Recorder
}

// New constructs an unmounted component from a template and its initial
// state. The initial mapping is deep-copied; its key set becomes the fixed
// state schema.
func New(template Template, initialState map[string]any) *Component {
	c := &Component{Extra: make(map[string]any)}
	c.init(template, initialState)
	return c
}

// init wires state and template. Split from New so the factory can run
// definitions in the instance's context first.
func (c *Component) init(template Template, initialState map[string]any) {
	c.state = NewStateStore(initialState)
	c.template = template
	c.effects = NewEffectRegistry()
	c.props = map[string]any{}
}

// State returns a deep snapshot of the component's state.
func (c *Component) State() map[string]any {
	return c.state.Snapshot()
}

// Props returns a copy of the current props mapping.
func (c *Component) Props() map[string]any {
	out := make(map[string]any, len(c.props))
	for k, v := range c.props {
		out[k] = v
	}
	return out
}

// Prop returns one prop value, or nil when absent.
func (c *Component) Prop(key string) any {
	return c.props[key]
}

// Effects exposes the component's effect registry for listener wiring.
func (c *Component) Effects() *EffectRegistry {
	return c.effects
}

// Tree returns the current live tree root, or nil before the first render.
func (c *Component) Tree() *rdom.Node {
	return c.live
}

// Observe streams every mutation the component's reconciliation passes apply
// to rec. A nil rec disables observation.
func (c *Component) Observe(rec rdom.Recorder) {
	c.recorder = rec
}

// SetState applies a batch of updates. Keys absent from the state schema are
// silently ignored. For each key whose value actually changed (identity
// comparison), its per-key effects fire in the order the fields were
// supplied; if anything changed, the global effects then fire once with the
// full changed-key list and the component re-renders. A batch that changes
// nothing dispatches nothing and leaves the live tree untouched.
func (c *Component) SetState(fields ...Field) {
	changed := make([]string, 0, len(fields))
	for _, f := range fields {
		if c.state.Change(f.Key, f.Value) {
			changed = append(changed, f.Key)
		}
	}
	if len(changed) == 0 {
		return
	}
	for _, key := range changed {
		c.effects.DispatchKey(key)
	}
	c.effects.DispatchGlobals(changed)
	c.Render()
}

// Render invokes the template and syncs the live tree. The first call adopts
// the produced tree directly; later calls reconcile into the existing tree
// unless the new tree is structurally identical. Event bindings are
// reattached after any patch, since a root-level replacement produces a
// fresh root object with no handlers.
func (c *Component) Render() *rdom.Node {
	if c.template == nil {
		return c.live
	}
	next := c.template(c)
	if next != nil {
		next.SetOwner(c)
	}
	if c.live == nil {
		c.live = next
		c.putEvents()
		return c.live
	}
	if !rdom.Equal(c.live, next) {
		var opts []rdom.Option
		if c.recorder != nil {
			opts = append(opts, rdom.WithRecorder(c.recorder))
		}
		c.live = rdom.Reconcile(c.live, next, opts...)
		c.putEvents()
	}
	return c.live
}

// Get replaces props wholesale (never merged), renders, and returns the live
// root. It is how a parent template embeds a child component's subtree.
func (c *Component) Get(props map[string]any) *rdom.Node {
	next := make(map[string]any, len(props))
	for k, v := range props {
		next[k] = v
	}
	c.props = next
	return c.Render()
}

// AddEventListener registers a listener for an event type, optionally
// delegated through a selector. Adding while mounted attaches immediately.
// The returned binding is the handle for RemoveEventListener; a nil listener
// registers nothing and returns nil.
func (c *Component) AddEventListener(eventType string, listener EventListener, selector ...string) *Binding {
	if listener == nil {
		return nil
	}
	b := &Binding{
		eventType: eventType,
		listener:  listener,
	}
	if len(selector) > 0 {
		b.selector = selector[0]
	}
	c.events = append(c.events, b)
	if c.live != nil {
		c.putEvents()
	}
	return b
}

// RemoveEventListener drops the binding, detaching its wrapper from the
// current root if mounted. It reports whether the binding was still
// registered, so a second removal returns false.
func (c *Component) RemoveEventListener(b *Binding) bool {
	if b == nil {
		return false
	}
	for i, have := range c.events {
		if have != b {
			continue
		}
		if c.live != nil && b.handle != nil {
			c.live.RemoveHandler(b.eventType, b.handle)
			b.handle = nil
		}
		c.events = append(c.events[:i], c.events[i+1:]...)
		return true
	}
	return false
}

// Reattach binds the component's cached event wrappers to root. The
// reconciler calls it when a parent patch installs a subtree owned by this
// component, so the wrappers land on that exact node rather than being
// assumed already attached. Removing by the stored handle first keeps a
// surviving root from accumulating duplicates; on a fresh root the removal
// finds nothing and is harmless.
func (c *Component) Reattach(root *rdom.Node) {
	for _, b := range c.events {
		c.ensureWrapper(b)
		root.RemoveHandler(b.eventType, b.handle)
		b.handle = root.AddHandler(b.eventType, b.wrapper)
	}
}

// putEvents (re-)registers every binding's wrapper on the current root.
// Wrappers are built once per binding and reused across renders; removal
// before re-adding keeps a surviving root from accumulating duplicates.
func (c *Component) putEvents() {
	if c.live == nil {
		return
	}
	c.Reattach(c.live)
}

// ensureWrapper lazily builds the dispatch wrapper for a binding. Without a
// selector the wrapper invokes the listener directly, bound to the component
// instance. With a selector it performs delegated dispatch: the listener
// runs only when the event's originating target has a matching
// ancestor-or-self inside this component's subtree.
func (c *Component) ensureWrapper(b *Binding) {
	if b.wrapper != nil {
		return
	}
	listener := b.listener
	if b.selector == "" {
		b.wrapper = func(e *rdom.Event) {
			listener(c, e)
		}
		return
	}
	selectorCopy := b.selector
	b.wrapper = func(e *rdom.Event) {
		match := e.Target.Closest(selectorCopy)
		if match == nil || c.live == nil || !rdom.Contains(c.live, match) {
			return
		}
		listener(c, e)
	}
}
