package rdom

import "strings"

// selector is a parsed simple selector: an optional tag, an optional #id,
// and any number of .class terms. Compound forms like "button.primary" and
// "input#name.wide" are supported; combinators are not.
type selector struct {
	tag     string
	id      string
	classes []string
}

func parseSelector(s string) selector {
	var sel selector
	var cur strings.Builder
	mode := byte(0) // 0 = tag, '#' = id, '.' = class
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		switch mode {
		case '#':
			sel.id = cur.String()
		case '.':
			sel.classes = append(sel.classes, cur.String())
		default:
			sel.tag = cur.String()
		}
		cur.Reset()
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '#' || c == '.' {
			flush()
			mode = c
			continue
		}
		cur.WriteByte(c)
	}
	flush()
	return sel
}

// Matches reports whether the node satisfies the simple selector.
func (n *Node) Matches(sel string) bool {
	if n.kind != KindElement {
		return false
	}
	s := parseSelector(strings.TrimSpace(sel))
	if s.tag != "" && !strings.EqualFold(s.tag, n.tag) {
		return false
	}
	if s.id != "" {
		id, _ := n.Attr("id")
		if id != s.id {
			return false
		}
	}
	if len(s.classes) > 0 {
		class, _ := n.Attr("class")
		have := strings.Fields(class)
		for _, want := range s.classes {
			found := false
			for _, c := range have {
				if c == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

// Closest returns the nearest ancestor-or-self matching the selector,
// following parent pointers, or nil when none matches.
func (n *Node) Closest(sel string) *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.Matches(sel) {
			return cur
		}
	}
	return nil
}

// Find returns the first node in root's subtree matching the selector,
// searching depth-first in document order.
func Find(root *Node, sel string) *Node {
	if root == nil {
		return nil
	}
	if root.Matches(sel) {
		return root
	}
	for _, child := range root.children {
		if found := Find(child, sel); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in root's subtree matching the selector, in
// document order.
func FindAll(root *Node, sel string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Matches(sel) {
			out = append(out, n)
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(root)
	return out
}
