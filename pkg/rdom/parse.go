package rdom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrNoRoot is returned when the markup contains no usable node.
	ErrNoRoot = errors.New("rdom: markup has no root node")

	// ErrMultipleRoots is returned when the markup has more than one
	// top-level node.
	ErrMultipleRoots = errors.New("rdom: markup has multiple root nodes")
)

// Parse parses a markup string into a single root node. Attribute order is
// preserved as written. Whitespace-only text between elements is dropped;
// all other text becomes text nodes.
func Parse(markup string) (*Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("rdom: parse markup: %w", err)
	}

	var roots []*Node
	for _, hn := range parsed {
		if n := fromHTML(hn); n != nil {
			roots = append(roots, n)
		}
	}
	switch len(roots) {
	case 0:
		return nil, ErrNoRoot
	case 1:
		return roots[0], nil
	default:
		return nil, ErrMultipleRoots
	}
}

// MustParse is Parse that panics on error, for static markup.
func MustParse(markup string) *Node {
	n, err := Parse(markup)
	if err != nil {
		panic(err)
	}
	return n
}

func fromHTML(hn *html.Node) *Node {
	switch hn.Type {
	case html.TextNode:
		if strings.TrimSpace(hn.Data) == "" {
			return nil
		}
		return NewText(hn.Data)
	case html.ElementNode:
		n := NewElement(hn.Data)
		for _, a := range hn.Attr {
			n.SetAttr(a.Key, a.Val)
		}
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if child := fromHTML(c); child != nil {
				n.AppendChild(child)
			}
		}
		return n
	default:
		// Comments, doctypes and the like have no render-tree shape.
		return nil
	}
}
