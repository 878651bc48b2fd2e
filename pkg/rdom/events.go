package rdom

// Event is a dispatched UI event. Target is the node the event originated
// on; dispatch bubbles from the target through its ancestors until stopped.
type Event struct {
	Type   string
	Target *Node

	// Value carries the payload of value-bearing events ("input",
	// "change").
	Value string

	stopped bool
}

// StopPropagation prevents the event from bubbling to further ancestors.
// Handlers already invoked on the current node still run.
func (e *Event) StopPropagation() { e.stopped = true }

// Handler reacts to an event dispatched on or below the node it is attached
// to.
type Handler func(*Event)

type handlerEntry struct {
	fn      Handler
	removed bool
}

// HandlerRef identifies one attached handler. Function values are not
// reliably comparable in Go (distinct closures of the same literal share a
// code pointer), so AddHandler hands back a ref and removal goes through it.
type HandlerRef struct {
	entry *handlerEntry
}

// AddHandler attaches a typed event handler to the node and returns the ref
// that removes exactly this attachment. A nil fn attaches nothing.
func (n *Node) AddHandler(eventType string, fn Handler) *HandlerRef {
	if fn == nil {
		return nil
	}
	if n.handlers == nil {
		n.handlers = make(map[string][]*handlerEntry)
	}
	entry := &handlerEntry{fn: fn}
	n.handlers[eventType] = append(n.handlers[eventType], entry)
	return &HandlerRef{entry: entry}
}

// RemoveHandler detaches the handler identified by ref, reporting whether it
// was attached to this node under the given type.
func (n *Node) RemoveHandler(eventType string, ref *HandlerRef) bool {
	if ref == nil || ref.entry == nil || n.handlers == nil {
		return false
	}
	entries := n.handlers[eventType]
	for i, e := range entries {
		if e == ref.entry {
			e.removed = true
			n.handlers[eventType] = append(entries[:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// Dispatch delivers an event. If the event carries no target, the receiver
// becomes the target. Handlers fire on the target first, then on each
// ancestor in turn, in registration order per node, until the root is
// reached or propagation stops.
func (n *Node) Dispatch(e *Event) {
	if e.Target == nil {
		e.Target = n
	}
	for cur := e.Target; cur != nil; cur = cur.parent {
		cur.invokeHandlers(e)
		if e.stopped {
			return
		}
	}
}

// invokeHandlers runs the node's own handlers for the event type. The entry
// list is snapshotted so handlers may detach themselves (or others) while
// firing; an entry removed mid-dispatch is skipped.
func (n *Node) invokeHandlers(e *Event) {
	entries := n.handlers[e.Type]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]*handlerEntry, len(entries))
	copy(snapshot, entries)
	for _, entry := range snapshot {
		if entry.removed {
			continue
		}
		entry.fn(e)
	}
}
