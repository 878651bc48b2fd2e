package rdom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Owner is the back-reference from a node to the component that manages its
// subtree. A node with a non-nil owner is the root of a nested component's
// tree: a parent reconciler may replace it wholesale but must never mutate
// its internal structure. When a replacement installs a node managed by a
// different owner, the reconciler calls Reattach so the new owner can bind
// its event wrappers to that exact node.
type Owner interface {
	Reattach(root *Node)
}

// attrEntry is a single attribute. Attributes keep insertion order.
type attrEntry struct {
	name  string
	value string
}

// Node is a render-tree node: either an element with a tag, ordered
// attributes and children, or a text node with content.
//
// All structural mutation goes through the primitives below, which maintain
// parent back-pointers. Templates produce a fresh tree on every render; the
// previously produced tree is retained as the live tree and patched in place
// by Reconcile.
type Node struct {
	kind     Kind
	tag      string
	text     string
	attrs    []attrEntry
	children []*Node
	parent   *Node
	owner    Owner

	// value is the live value property of form elements. It is distinct
	// from the "value" attribute so an edited field can diverge from its
	// markup default.
	value    *string
	handlers map[string][]*handlerEntry
}

// NewElement creates an element node.
func NewElement(tag string) *Node {
	return &Node{kind: KindElement, tag: tag}
}

// NewText creates a text node.
func NewText(content string) *Node {
	return &Node{kind: KindText, text: content}
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Tag returns the element tag name, or "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// Text returns the text content of a text node.
func (n *Node) Text() string { return n.text }

// SetText replaces the text content of a text node.
func (n *Node) SetText(content string) { n.text = content }

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Owner returns the component managing this subtree, if any.
func (n *Node) Owner() Owner { return n.owner }

// SetOwner marks the node as the root of a component-managed subtree.
func (n *Node) SetOwner(o Owner) { n.owner = o }

// Attr returns the named attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// SetAttr sets or overwrites an attribute, preserving insertion order.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.attrs {
		if a.name == name {
			n.attrs[i].value = value
			return
		}
	}
	n.attrs = append(n.attrs, attrEntry{name: name, value: value})
}

// RemoveAttr removes an attribute, reporting whether it was present.
func (n *Node) RemoveAttr(name string) bool {
	for i, a := range n.attrs {
		if a.name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return true
		}
	}
	return false
}

// AttrNames returns the attribute names in insertion order.
func (n *Node) AttrNames() []string {
	names := make([]string, len(n.attrs))
	for i, a := range n.attrs {
		names[i] = a.name
	}
	return names
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the child at index i, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// AppendChild appends a child node.
func (n *Node) AppendChild(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
}

// InsertChild inserts a child at index i. Out-of-range indices append.
func (n *Node) InsertChild(i int, c *Node) {
	if i < 0 || i >= len(n.children) {
		n.AppendChild(c)
		return
	}
	c.parent = n
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
}

// RemoveChild removes and returns the child at index i, or nil if out of
// range.
func (n *Node) RemoveChild(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	c := n.children[i]
	c.parent = nil
	n.children = append(n.children[:i], n.children[i+1:]...)
	return c
}

// ReplaceChild swaps the child at index i for c, returning the displaced
// node.
func (n *Node) ReplaceChild(i int, c *Node) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	old := n.children[i]
	old.parent = nil
	c.parent = n
	n.children[i] = c
	return old
}

// indexOf returns the position of c among n's children, or -1.
func (n *Node) indexOf(c *Node) int {
	for i, child := range n.children {
		if child == c {
			return i
		}
	}
	return -1
}

// Value returns the live value property. If the property was never set it
// falls back to the "value" attribute.
func (n *Node) Value() string {
	if n.value != nil {
		return *n.value
	}
	v, _ := n.Attr("value")
	return v
}

// SetValue sets the live value property without touching the attribute.
func (n *Node) SetValue(v string) {
	n.value = &v
}

// Clone returns a deep, independent copy of the node. Attached event
// handlers, the parent pointer, and the live value property are not copied.
//
// A node that carries component ownership is returned as-is: an owned
// subtree must keep the exact identity its owner manages, so it moves
// instead of being duplicated.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	if n.owner != nil {
		return n
	}
	c := &Node{
		kind: n.kind,
		tag:  n.tag,
		text: n.text,
	}
	if len(n.attrs) > 0 {
		c.attrs = make([]attrEntry, len(n.attrs))
		copy(c.attrs, n.attrs)
	}
	for _, child := range n.children {
		c.AppendChild(child.Clone())
	}
	return c
}

// Contains reports whether target is root itself or a descendant of root,
// following parent pointers upward from target.
func Contains(root, target *Node) bool {
	for n := target; n != nil; n = n.parent {
		if n == root {
			return true
		}
	}
	return false
}

// Path returns the child-index path from root to target, or nil if target is
// not inside root's subtree. The root itself has the empty (non-nil zero
// length) path.
func Path(root, target *Node) []int {
	if root == target {
		return []int{}
	}
	if target == nil || target.parent == nil {
		return nil
	}
	parentPath := Path(root, target.parent)
	if parentPath == nil {
		return nil
	}
	i := target.parent.indexOf(target)
	if i < 0 {
		return nil
	}
	return append(parentPath, i)
}

// Resolve walks a child-index path from root, returning nil if the path
// leaves the tree.
func Resolve(root *Node, path []int) *Node {
	n := root
	for _, i := range path {
		if n == nil {
			return nil
		}
		n = n.Child(i)
	}
	return n
}
