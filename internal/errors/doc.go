// Package errors provides structured, coded errors for the reactive
// runtime and CLI.
//
// Every well-known failure mode has a stable code (E001, E040, ...)
// registered in registry.go, along with a category, a default
// suggestion, and a documentation link. Errors are created from the
// registry with New or Newf and may carry extra detail or a wrapped
// cause:
//
//	err := errors.New("E060").WithDetail("reactive.json is not valid JSON").Wrap(parseErr)
//	fmt.Fprint(os.Stderr, err.Format())
//
// Format renders an error for terminal display with ANSI colors;
// DisableColors switches to plain output for non-TTY destinations.
package errors
