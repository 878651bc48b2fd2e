package rdom

// Reconcile patches the live tree `into` until it matches the freshly
// produced tree `node`, mutating `into` in place with as few operations as
// possible so node identity (and with it attached handlers and nested
// component subtrees) survives re-renders.
//
// It returns the node the caller must adopt as the new live root: usually
// `into` itself, or `node` when a whole-node replacement was forced at the
// root.
//
// The child walk is an unkeyed positional diff, O(n) per level. Callers that
// need stable identity across reordering rely on component ownership
// boundaries rather than keys.
func Reconcile(into, node *Node, opts ...Option) *Node {
	r := &reconciler{}
	for _, opt := range opts {
		opt(r)
	}
	return r.merge(into, node, nil)
}

// Option configures a reconciliation pass.
type Option func(*reconciler)

// WithRecorder streams every applied mutation to rec.
func WithRecorder(rec Recorder) Option {
	return func(r *reconciler) {
		r.rec = rec
	}
}

type reconciler struct {
	rec Recorder
}

func (r *reconciler) record(op Op) {
	if r.rec != nil {
		r.rec.Record(op)
	}
}

func pathCopy(path []int, extra ...int) []int {
	out := make([]int, 0, len(path)+len(extra))
	out = append(out, path...)
	return append(out, extra...)
}

// merge reconciles one into/node pair at the given path and returns the node
// that belongs at that position.
func (r *reconciler) merge(into, node *Node, path []int) *Node {
	// Same object, nothing to do.
	if into == node {
		return into
	}

	// Tag or kind mismatch forces whole-node replacement, as does any
	// crossing of an ownership boundary: an owned subtree is never patched
	// into an unowned shape or vice versa.
	if into.kind != node.kind || into.tag != node.tag ||
		(into.owner == nil) != (node.owner == nil) {
		r.record(Op{Kind: OpReplaceNode, Path: pathCopy(path), Node: node})
		return node
	}

	// Both owned: same owner falls through to the identity check above on
	// the owner's own render pass; different owners swap subtrees wholesale
	// and the incoming owner rebinds its handlers to this exact node.
	if into.owner != nil && node.owner != nil {
		if into.owner != node.owner {
			r.record(Op{Kind: OpReplaceNode, Path: pathCopy(path), Node: node})
			node.owner.Reattach(node)
			return node
		}
	}

	// Structurally identical subtrees need no attribute or handler churn.
	if Equal(into, node) {
		return into
	}

	if into.kind == KindText {
		// Same-kind text with different content syncs in place.
		into.SetText(node.text)
		r.record(Op{Kind: OpSetText, Path: pathCopy(path), Value: node.text})
		return into
	}

	// Delete surplus trailing children first.
	for into.ChildCount() > node.ChildCount() {
		i := into.ChildCount() - 1
		into.RemoveChild(i)
		r.record(Op{Kind: OpRemoveChild, Path: pathCopy(path), Index: i})
	}

	// Drop attributes the new tree no longer carries.
	for _, name := range into.AttrNames() {
		if _, ok := node.Attr(name); !ok {
			into.RemoveAttr(name)
			r.record(Op{Kind: OpRemoveAttr, Path: pathCopy(path), Name: name})
		}
	}

	// Merge children positionally. Missing slots are appended, cloned into
	// independent nodes unless they carry component ownership, in which case
	// the owned subtree moves with its identity intact (Clone returns owned
	// nodes as-is).
	for i := 0; i < node.ChildCount(); i++ {
		fresh := node.Child(i)
		if i >= into.ChildCount() {
			appended := fresh.Clone()
			into.AppendChild(appended)
			r.record(Op{Kind: OpInsertChild, Path: pathCopy(path), Index: i, Node: appended})
			continue
		}
		existing := into.Child(i)
		merged := r.merge(existing, fresh, append(path, i))
		if merged != existing {
			into.ReplaceChild(i, merged)
		} else {
			// Building the fresh tree may have re-parented an embedded
			// live node (a nested component's root appears in both
			// trees); point it back at the live parent.
			merged.parent = into
		}
	}

	// Write the new tree's attributes last. The value attribute additionally
	// syncs the live value property so editable fields track the template.
	for _, attr := range node.attrs {
		if cur, ok := into.Attr(attr.name); !ok || cur != attr.value {
			into.SetAttr(attr.name, attr.value)
			r.record(Op{Kind: OpSetAttr, Path: pathCopy(path), Name: attr.name, Value: attr.value})
		}
		if attr.name == "value" && into.Value() != attr.value {
			into.SetValue(attr.value)
			r.record(Op{Kind: OpSetValue, Path: pathCopy(path), Value: attr.value})
		}
	}

	return into
}
