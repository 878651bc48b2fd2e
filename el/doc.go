// Package el provides element construction sugar over package rdom.
//
// Templates read naturally as nested calls:
//
//	el.Div(el.Class("counter"),
//	    el.Span(el.Textf("%d", count)),
//	    el.Button(el.Class("inc"), "+"),
//	)
//
// Every factory accepts the same mixed argument list as rdom.El: attributes,
// child nodes, strings (text children) and nil (ignored).
package el
