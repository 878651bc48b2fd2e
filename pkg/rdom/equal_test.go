package rdom

import "testing"

func TestEqual(t *testing.T) {
	owner := &fakeOwner{}
	other := &fakeOwner{}

	owned := func(o Owner) *Node {
		n := El("div", "x")
		n.SetOwner(o)
		return n
	}

	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", El("div"), nil, false},
		{"same text", NewText("x"), NewText("x"), true},
		{"different text", NewText("x"), NewText("y"), false},
		{"text vs element", NewText("x"), El("div"), false},
		{"different tag", El("div"), El("span"), false},
		{
			"same attrs different order",
			El("div", A("a", "1"), A("b", "2")),
			El("div", A("b", "2"), A("a", "1")),
			true,
		},
		{
			"different attr value",
			El("div", A("a", "1")),
			El("div", A("a", "2")),
			false,
		},
		{
			"extra attr",
			El("div", A("a", "1")),
			El("div", A("a", "1"), A("b", "2")),
			false,
		},
		{
			"recursive children",
			El("div", El("p", "deep")),
			El("div", El("p", "deep")),
			true,
		},
		{
			"different child count",
			El("div", El("p")),
			El("div", El("p"), El("p")),
			false,
		},
		{
			"different deep text",
			El("div", El("p", "a")),
			El("div", El("p", "b")),
			false,
		},
		{"same owner", owned(owner), owned(owner), true},
		{"different owner", owned(owner), owned(other), false},
		{"owned vs unowned", owned(owner), El("div", "x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualIgnoresLiveValue(t *testing.T) {
	a := El("input", A("value", "x"))
	b := El("input", A("value", "x"))
	a.SetValue("user typed")

	if !Equal(a, b) {
		t.Error("the live value property is transient state and must not affect equality")
	}
}
