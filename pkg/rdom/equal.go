package rdom

// Equal reports structural deep equality between two nodes: same kind, same
// tag, same text, same attribute set, same owner identity, and recursively
// equal children.
//
// Attribute order is not significant for equality; it only affects
// serialization. The live value property is transient display state and is
// ignored, as is any attached event handler.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || a.tag != b.tag || a.text != b.text {
		return false
	}
	if a.owner != b.owner {
		return false
	}
	if len(a.attrs) != len(b.attrs) {
		return false
	}
	for _, attr := range a.attrs {
		v, ok := b.Attr(attr.name)
		if !ok || v != attr.value {
			return false
		}
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i, child := range a.children {
		if !Equal(child, b.children[i]) {
			return false
		}
	}
	return true
}
