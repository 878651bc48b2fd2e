package rdom

import "testing"

func TestElMixedArgs(t *testing.T) {
	n := El("div",
		A("class", "card"),
		[]Attr{A("id", "x"), A("role", "main")},
		"hello",
		nil,
		El("span", "inner"),
		[]*Node{El("p"), nil, El("b")},
		42,
	)

	if n.Tag() != "div" {
		t.Fatalf("tag = %q", n.Tag())
	}
	if v, _ := n.Attr("role"); v != "main" {
		t.Error("[]Attr args should all be applied")
	}
	if n.ChildCount() != 5 {
		t.Fatalf("ChildCount = %d, want 5", n.ChildCount())
	}
	if n.Child(0).Text() != "hello" {
		t.Error("string args become text children")
	}
	if n.Child(4).Text() != "42" {
		t.Error("other values are stringified into text children")
	}
}

func TestIfHelpers(t *testing.T) {
	n := El("span")
	if If(false, n) != nil || If(true, n) != n {
		t.Error("If")
	}
	if IfElse(false, nil, n) != n {
		t.Error("IfElse")
	}
	called := false
	if When(false, func() *Node { called = true; return n }) != nil || called {
		t.Error("When must not evaluate the function when false")
	}
}

func TestRangeAndRepeat(t *testing.T) {
	items := []string{"a", "b", "c"}
	nodes := Range(items, func(s string, i int) *Node {
		if s == "b" {
			return nil
		}
		return El("li", s)
	})
	if len(nodes) != 2 {
		t.Errorf("Range skipped-nil length = %d, want 2", len(nodes))
	}

	if got := len(Repeat(3, func(i int) *Node { return El("i") })); got != 3 {
		t.Errorf("Repeat = %d nodes, want 3", got)
	}
	if Repeat(0, func(i int) *Node { return nil }) != nil {
		t.Error("Repeat(0) should be nil")
	}
}
