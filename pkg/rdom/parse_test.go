package rdom

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseSingleRoot(t *testing.T) {
	n, err := Parse(`<div class="card" id="main"><h1>Title</h1><p>Body &amp; more</p></div>`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if n.Tag() != "div" {
		t.Errorf("tag = %q, want div", n.Tag())
	}
	if got := n.AttrNames(); !reflect.DeepEqual(got, []string{"class", "id"}) {
		t.Errorf("attr order = %v, want [class id]", got)
	}
	if n.ChildCount() != 2 {
		t.Fatalf("ChildCount = %d, want 2", n.ChildCount())
	}
	if got := n.Child(1).Child(0).Text(); got != "Body & more" {
		t.Errorf("entity decoding: %q, want %q", got, "Body & more")
	}
}

func TestParseTextRoot(t *testing.T) {
	n, err := Parse("just text")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if n.Kind() != KindText || n.Text() != "just text" {
		t.Errorf("node = %v %q, want text root", n.Kind(), n.Text())
	}
}

func TestParseNoRoot(t *testing.T) {
	if _, err := Parse("   \n\t "); !errors.Is(err, ErrNoRoot) {
		t.Errorf("err = %v, want ErrNoRoot", err)
	}
}

func TestParseMultipleRoots(t *testing.T) {
	if _, err := Parse("<div></div><span></span>"); !errors.Is(err, ErrMultipleRoots) {
		t.Errorf("err = %v, want ErrMultipleRoots", err)
	}
}

func TestParseDropsInterElementWhitespace(t *testing.T) {
	n, err := Parse("<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if n.ChildCount() != 2 {
		t.Errorf("ChildCount = %d, want 2 (whitespace dropped)", n.ChildCount())
	}
}

func TestParseVoidElement(t *testing.T) {
	n, err := Parse(`<input type="text" value="x">`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if n.Tag() != "input" || n.ChildCount() != 0 {
		t.Errorf("node = %q with %d children, want childless input", n.Tag(), n.ChildCount())
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid markup")
		}
	}()
	MustParse("")
}
