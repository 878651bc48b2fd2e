package rdom

import "fmt"

// Attr is a single attribute for use with El.
type Attr struct {
	Name  string
	Value string
}

// A creates an Attr.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// El builds an element node from a tag and a mixed argument list.
// Arguments can be: nil (ignored, allows conditionals), Attr, []Attr,
// *Node, []*Node, or string (converted to a text child).
func El(tag string, args ...any) *Node {
	n := NewElement(tag)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			n.SetAttr(v.Name, v.Value)
		case []Attr:
			for _, a := range v {
				n.SetAttr(a.Name, a.Value)
			}
		case *Node:
			if v != nil {
				n.AppendChild(v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					n.AppendChild(c)
				}
			}
		case string:
			n.AppendChild(NewText(v))
		default:
			n.AppendChild(NewText(fmt.Sprintf("%v", v)))
		}
	}
	return n
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return NewText(fmt.Sprintf(format, args...))
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation. The function is only called if
// condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to nodes, skipping nil results.
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	result := make([]*Node, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *Node) []*Node {
	if n <= 0 {
		return nil
	}
	result := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			result = append(result, node)
		}
	}
	return result
}
