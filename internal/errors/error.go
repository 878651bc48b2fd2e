package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryRuntime Category = "runtime"
	CategoryParse   Category = "parse"
	CategoryConfig  Category = "config"
	CategoryServe   Category = "serve"
	CategoryCLI     Category = "cli"
)

// Error is a structured error with a stable code, a fix suggestion, and
// documentation link, used by the CLI and preview-server surface.
type Error struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (runtime, parse, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail overrides the detail text.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap attaches an underlying error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered code. Unknown codes produce a
// generic runtime error carrying the code.
func New(code string) *Error {
	if tmpl, ok := registry[code]; ok {
		return &Error{
			Code:     code,
			Category: tmpl.Category,
			Message:  tmpl.Message,
			Detail:   tmpl.Detail,
			DocURL:   tmpl.DocURL,
		}
	}
	return &Error{
		Code:     code,
		Category: CategoryRuntime,
		Message:  "unknown error",
	}
}

// Newf creates an ad hoc Error without a registered code.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a plain error under a registered code.
func FromError(err error, code string) *Error {
	return New(code).Wrap(err)
}
