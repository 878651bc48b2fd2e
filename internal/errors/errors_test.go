package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("E001")
	if err.Code != "E001" {
		t.Errorf("Code = %q, want E001", err.Code)
	}
	if err.Category != CategoryRuntime {
		t.Errorf("Category = %q, want runtime", err.Category)
	}
	if err.Message == "" || err.Detail == "" || err.DocURL == "" {
		t.Error("registered error missing template fields")
	}
	if got := err.Error(); !strings.HasPrefix(got, "E001: ") {
		t.Errorf("Error() = %q, want E001 prefix", got)
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Code != "E999" {
		t.Errorf("Code = %q, want E999", err.Code)
	}
	if err.Message != "unknown error" {
		t.Errorf("Message = %q, want generic message", err.Message)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "demo %q not found", "clock")
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
	if err.Error() != `demo "clock" not found` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := FromError(cause, "E060")
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	var coded *Error
	if !stderrors.As(err, &coded) || coded.Code != "E060" {
		t.Error("errors.As should recover the coded error")
	}
}

func TestBuilderMethods(t *testing.T) {
	err := New("E061").
		WithDetail("got port 99999").
		WithSuggestion("use --port with a value below 65536")
	if err.Detail != "got port 99999" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion == "" {
		t.Error("Suggestion not set")
	}
}

func TestFormatPlain(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E080").
		WithDetail("no component mounted at /missing").
		Wrap(stderrors.New("route miss")).
		WithSuggestion("check the path passed to Mount")
	out := err.Format()

	for _, want := range []string{
		"ERROR E080: Unknown page",
		"no component mounted at /missing",
		"caused by: route miss",
		"hint: check the path passed to Mount",
		"docs: https://github.com/angeljsb/reactive",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() contains ANSI codes with colors disabled")
	}
}

func TestFormatColors(t *testing.T) {
	EnableColors()
	out := New("E001").Format()
	if !strings.Contains(out, "\033[31m") {
		t.Error("Format() missing red code with colors enabled")
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("E001"); !ok {
		t.Error("Lookup(E001) should succeed")
	}
	if _, ok := Lookup("E999"); ok {
		t.Error("Lookup(E999) should fail")
	}
}
