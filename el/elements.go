package el

import "github.com/angeljsb/reactive/pkg/rdom"

// Type aliases for the rdom primitives used by the DSL.
type Node = rdom.Node
type Attr = rdom.Attr

// Text creates a text node.
func Text(content string) *Node { return rdom.NewText(content) }

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node { return rdom.Textf(format, args...) }

// Document structure

// Div creates a <div> element.
func Div(args ...any) *Node { return rdom.El("div", args...) }

// Span creates a <span> element.
func Span(args ...any) *Node { return rdom.El("span", args...) }

// Main creates a <main> element.
func Main(args ...any) *Node { return rdom.El("main", args...) }

// Section creates a <section> element.
func Section(args ...any) *Node { return rdom.El("section", args...) }

// Article creates an <article> element.
func Article(args ...any) *Node { return rdom.El("article", args...) }

// Aside creates an <aside> element.
func Aside(args ...any) *Node { return rdom.El("aside", args...) }

// Header creates a <header> element.
func Header(args ...any) *Node { return rdom.El("header", args...) }

// Footer creates a <footer> element.
func Footer(args ...any) *Node { return rdom.El("footer", args...) }

// Nav creates a <nav> element.
func Nav(args ...any) *Node { return rdom.El("nav", args...) }

// Headings

// H1 creates an <h1> element.
func H1(args ...any) *Node { return rdom.El("h1", args...) }

// H2 creates an <h2> element.
func H2(args ...any) *Node { return rdom.El("h2", args...) }

// H3 creates an <h3> element.
func H3(args ...any) *Node { return rdom.El("h3", args...) }

// H4 creates an <h4> element.
func H4(args ...any) *Node { return rdom.El("h4", args...) }

// Text content

// P creates a <p> element.
func P(args ...any) *Node { return rdom.El("p", args...) }

// Pre creates a <pre> element.
func Pre(args ...any) *Node { return rdom.El("pre", args...) }

// Code creates a <code> element.
func Code(args ...any) *Node { return rdom.El("code", args...) }

// Blockquote creates a <blockquote> element.
func Blockquote(args ...any) *Node { return rdom.El("blockquote", args...) }

// Ul creates a <ul> element.
func Ul(args ...any) *Node { return rdom.El("ul", args...) }

// Ol creates an <ol> element.
func Ol(args ...any) *Node { return rdom.El("ol", args...) }

// Li creates a <li> element.
func Li(args ...any) *Node { return rdom.El("li", args...) }

// Inline

// Aelem creates an <a> element (named to avoid clashing with the A attribute
// helper in rdom).
func Aelem(args ...any) *Node { return rdom.El("a", args...) }

// Strong creates a <strong> element.
func Strong(args ...any) *Node { return rdom.El("strong", args...) }

// Em creates an <em> element.
func Em(args ...any) *Node { return rdom.El("em", args...) }

// Small creates a <small> element.
func Small(args ...any) *Node { return rdom.El("small", args...) }

// Br creates a <br> element.
func Br() *Node { return rdom.El("br") }

// Hr creates an <hr> element.
func Hr() *Node { return rdom.El("hr") }

// Img creates an <img> element.
func Img(args ...any) *Node { return rdom.El("img", args...) }

// Forms

// Form creates a <form> element.
func Form(args ...any) *Node { return rdom.El("form", args...) }

// Input creates an <input> element.
func Input(args ...any) *Node { return rdom.El("input", args...) }

// TextArea creates a <textarea> element.
func TextArea(args ...any) *Node { return rdom.El("textarea", args...) }

// Button creates a <button> element.
func Button(args ...any) *Node { return rdom.El("button", args...) }

// Label creates a <label> element.
func Label(args ...any) *Node { return rdom.El("label", args...) }

// Select creates a <select> element.
func Select(args ...any) *Node { return rdom.El("select", args...) }

// Option creates an <option> element.
func Option(args ...any) *Node { return rdom.El("option", args...) }

// Tables

// Table creates a <table> element.
func Table(args ...any) *Node { return rdom.El("table", args...) }

// Thead creates a <thead> element.
func Thead(args ...any) *Node { return rdom.El("thead", args...) }

// Tbody creates a <tbody> element.
func Tbody(args ...any) *Node { return rdom.El("tbody", args...) }

// Tr creates a <tr> element.
func Tr(args ...any) *Node { return rdom.El("tr", args...) }

// Th creates a <th> element.
func Th(args ...any) *Node { return rdom.El("th", args...) }

// Td creates a <td> element.
func Td(args ...any) *Node { return rdom.El("td", args...) }
