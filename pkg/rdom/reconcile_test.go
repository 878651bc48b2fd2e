package rdom

import (
	"reflect"
	"testing"
)

func TestReconcileIdentityShortCircuit(t *testing.T) {
	n := El("div", "hi")
	var counter OpCounter

	got := Reconcile(n, n, WithRecorder(&counter))

	if got != n {
		t.Error("same object must be returned unchanged")
	}
	if counter.Total != 0 {
		t.Errorf("identity reconcile applied %d mutations, want 0", counter.Total)
	}
}

func TestReconcileDeepEqualShortCircuit(t *testing.T) {
	build := func() *Node {
		return El("div", A("class", "card"),
			El("h1", "Title"),
			El("p", A("id", "body"), "Content"),
		)
	}
	into := build()
	var counter OpCounter

	got := Reconcile(into, build(), WithRecorder(&counter))

	if got != into {
		t.Error("deep-equal trees must keep the existing node")
	}
	if counter.Total != 0 {
		t.Errorf("deep-equal reconcile applied %d mutations, want 0", counter.Total)
	}
}

func TestReconcileTagMismatchReplaces(t *testing.T) {
	into := El("div", "x")
	node := El("section", "x")
	var counter OpCounter

	got := Reconcile(into, node, WithRecorder(&counter))

	if got != node {
		t.Error("tag mismatch must substitute the fresh node")
	}
	if counter.ByKind[OpReplaceNode] != 1 {
		t.Errorf("ReplaceNode ops = %d, want 1", counter.ByKind[OpReplaceNode])
	}
}

func TestReconcileKindMismatchReplaces(t *testing.T) {
	into := NewText("hello")
	node := El("div")

	if got := Reconcile(into, node); got != node {
		t.Error("text vs element must substitute the fresh node")
	}
	if got := Reconcile(El("div"), NewText("hello")); got.Kind() != KindText {
		t.Error("element vs text must substitute the fresh node")
	}
}

func TestReconcileTextContentSync(t *testing.T) {
	into := NewText("old")
	node := NewText("new")
	var counter OpCounter

	got := Reconcile(into, node, WithRecorder(&counter))

	if got != into {
		t.Error("same-kind text nodes must be patched in place")
	}
	if into.Text() != "new" {
		t.Errorf("text = %q, want new", into.Text())
	}
	if counter.ByKind[OpSetText] != 1 {
		t.Errorf("SetText ops = %d, want 1", counter.ByKind[OpSetText])
	}
}

func TestReconcileChildShrink(t *testing.T) {
	into := El("ul", El("li", "a"), El("li", "b"), El("li", "c"))
	node := El("ul", El("li", "a"))
	var counter OpCounter

	got := Reconcile(into, node, WithRecorder(&counter))

	if got != into {
		t.Fatal("shrink must keep the existing parent")
	}
	if into.ChildCount() != 1 {
		t.Errorf("ChildCount = %d, want 1", into.ChildCount())
	}
	if counter.ByKind[OpRemoveChild] != 2 {
		t.Errorf("RemoveChild ops = %d, want 2", counter.ByKind[OpRemoveChild])
	}
}

func TestReconcileAttributeRemoval(t *testing.T) {
	into := El("div", A("class", "card"), A("hidden", "true"))
	node := El("div", A("class", "card"))

	Reconcile(into, node)

	if _, ok := into.Attr("hidden"); ok {
		t.Error("stale attribute should be removed")
	}
	if v, _ := into.Attr("class"); v != "card" {
		t.Errorf("class = %q, want card", v)
	}
}

func TestReconcileAttributeWrite(t *testing.T) {
	into := El("div", A("class", "old"))
	node := El("div", A("class", "new"), A("id", "x"))
	var counter OpCounter

	Reconcile(into, node, WithRecorder(&counter))

	if v, _ := into.Attr("class"); v != "new" {
		t.Errorf("class = %q, want new", v)
	}
	if v, _ := into.Attr("id"); v != "x" {
		t.Errorf("id = %q, want x", v)
	}
	if counter.ByKind[OpSetAttr] != 2 {
		t.Errorf("SetAttr ops = %d, want 2", counter.ByKind[OpSetAttr])
	}
}

func TestReconcileAppendClonesUnownedChildren(t *testing.T) {
	into := El("ul", El("li", "a"))
	fresh := El("li", "b")
	node := El("ul", El("li", "a"), fresh)

	Reconcile(into, node)

	if into.ChildCount() != 2 {
		t.Fatalf("ChildCount = %d, want 2", into.ChildCount())
	}
	appended := into.Child(1)
	if appended == fresh {
		t.Error("an unowned child must be cloned into an independent node")
	}
	if appended.Child(0).Text() != "b" {
		t.Errorf("appended content = %q, want b", appended.Child(0).Text())
	}
	if appended.Parent() != into {
		t.Error("appended child must be parented to the live tree")
	}
}

func TestReconcileAppendMovesOwnedChildren(t *testing.T) {
	owner := &fakeOwner{}
	owned := El("div", "widget")
	owned.SetOwner(owner)

	into := El("main")
	node := El("main", owned)

	Reconcile(into, node)

	if into.Child(0) != owned {
		t.Error("an owned child must be appended with its identity intact")
	}
}

func TestReconcileChildRecursion(t *testing.T) {
	into := El("div", El("p", "old text"))
	node := El("div", El("p", "new text"))
	inner := into.Child(0)

	Reconcile(into, node)

	if into.Child(0) != inner {
		t.Error("matching children must keep their identity")
	}
	if inner.Child(0).Text() != "new text" {
		t.Errorf("inner text = %q, want new text", inner.Child(0).Text())
	}
}

func TestReconcileOwnershipBoundaryCrossing(t *testing.T) {
	owner := &fakeOwner{}
	ownedInto := El("div", "widget")
	ownedInto.SetOwner(owner)
	into := El("main", ownedInto)
	plain := El("div", "widget")
	node := El("main", plain)

	Reconcile(into, node)

	// Same shape, but the ownership boundary forces wholesale replacement.
	if into.Child(0) != plain {
		t.Error("owned → unowned must replace the child wholesale")
	}
}

func TestReconcileOwnedSubtreeNeverRestructured(t *testing.T) {
	// A nested component's live root is embedded as the same object in the
	// parent's fresh tree, so the identity short-circuit protects it: the
	// parent pass patches siblings but never descends into the owned
	// subtree.
	owner := &fakeOwner{}
	widget := El("div", A("class", "widget"), El("span", "internals"))
	widget.SetOwner(owner)

	into := El("main", El("p", "old"), widget)
	node := El("main", El("p", "new"), widget)

	Reconcile(into, node)

	if into.Child(1) != widget {
		t.Fatal("owned subtree must keep its identity")
	}
	if v, _ := widget.Attr("class"); v != "widget" {
		t.Errorf("parent patch mutated an owned subtree's attributes: %q", v)
	}
	if widget.ChildCount() != 1 || widget.Child(0).Child(0).Text() != "internals" {
		t.Error("parent patch mutated an owned subtree's children")
	}
	if into.Child(0).Child(0).Text() != "new" {
		t.Error("sibling of the owned subtree should still be patched")
	}
}

func TestReconcileDifferentOwnersReattaches(t *testing.T) {
	ownerA := &fakeOwner{}
	ownerB := &fakeOwner{}

	subtreeA := El("div", "a")
	subtreeA.SetOwner(ownerA)
	subtreeB := El("div", "b")
	subtreeB.SetOwner(ownerB)

	into := El("main", subtreeA)
	node := El("main", subtreeB)
	var counter OpCounter

	Reconcile(into, node, WithRecorder(&counter))

	if into.Child(0) != subtreeB {
		t.Fatal("different owners must swap subtrees wholesale")
	}
	if len(ownerB.reattached) != 1 || ownerB.reattached[0] != subtreeB {
		t.Error("the incoming owner must be told to reattach to the inserted node")
	}
	if len(ownerA.reattached) != 0 {
		t.Error("the outgoing owner must not be reattached")
	}
}

func TestReconcileValueAttributeSyncsProperty(t *testing.T) {
	into := El("input", A("value", "old"))
	into.SetValue("user typed")
	node := El("input", A("value", "new"))
	var counter OpCounter

	Reconcile(into, node, WithRecorder(&counter))

	if into.Value() != "new" {
		t.Errorf("live value = %q, want new", into.Value())
	}
	if counter.ByKind[OpSetValue] != 1 {
		t.Errorf("SetValue ops = %d, want 1", counter.ByKind[OpSetValue])
	}
}

func TestReconcileOpPaths(t *testing.T) {
	into := El("div",
		El("ul",
			El("li", "a"),
			El("li", "b"),
		),
	)
	node := El("div",
		El("ul",
			El("li", "a"),
			El("li", "changed"),
		),
	)

	var ops []Op
	Reconcile(into, node, WithRecorder(RecorderFunc(func(op Op) {
		ops = append(ops, op)
	})))

	if len(ops) != 1 {
		t.Fatalf("ops = %d, want 1", len(ops))
	}
	if ops[0].Kind != OpSetText || !reflect.DeepEqual(ops[0].Path, []int{0, 1, 0}) {
		t.Errorf("op = %v path %v, want SetText at [0 1 0]", ops[0].Kind, ops[0].Path)
	}
	if ops[0].Value != "changed" {
		t.Errorf("op value = %q, want changed", ops[0].Value)
	}
}

func TestReconcileGrowAndPatchTogether(t *testing.T) {
	into := El("ul", El("li", "a"))
	node := El("ul",
		El("li", "a-updated"),
		El("li", "b"),
		El("li", "c"),
	)

	got := Reconcile(into, node)

	if got != into {
		t.Fatal("grow must keep the existing parent")
	}
	var texts []string
	for i := 0; i < into.ChildCount(); i++ {
		texts = append(texts, into.Child(i).Child(0).Text())
	}
	want := []string{"a-updated", "b", "c"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("children = %v, want %v", texts, want)
	}
}
