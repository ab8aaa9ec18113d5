package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "navigation error",
			code:    "E001",
			wantMsg: "Route not found",
			wantCat: CategoryNavigation,
		},
		{
			name:    "module error",
			code:    "E021",
			wantMsg: "Module load failed",
			wantCat: CategoryModule,
		},
		{
			name:    "data error",
			code:    "E041",
			wantMsg: "Response deserialization failed",
			wantCat: CategoryData,
		},
		{
			name:    "config error",
			code:    "E060",
			wantMsg: "Invalid configuration file",
			wantCat: CategoryConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.DocURL == "" {
				t.Error("expected DocURL to be set for registered code")
			}
		})
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Code != "E999" {
		t.Errorf("Code = %q, want %q", err.Code, "E999")
	}
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q, want %q", err.Message, "Unknown error")
	}
}

func TestErrorString(t *testing.T) {
	err := New("E020")
	want := "E020: Module not registered"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = Newf(CategoryData, "fetch %s failed", "/todos/1")
	if got := err.Error(); got != "fetch /todos/1 failed" {
		t.Errorf("Error() = %q, want message without code", got)
	}
}

func TestUnwrapChain(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := New("E040").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var le *LazyNavError
	if !stderrors.As(error(err), &le) {
		t.Error("errors.As should match *LazyNavError")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E040") != nil {
		t.Error("FromError(nil) should return nil")
	}

	le := New("E021")
	if got := FromError(le, "E040"); got != le {
		t.Error("FromError should pass an existing LazyNavError through")
	}

	cause := stderrors.New("boom")
	wrapped := FromError(cause, "E040")
	if wrapped.Code != "E040" || !stderrors.Is(wrapped, cause) {
		t.Errorf("FromError = %+v, want E040 wrapping cause", wrapped)
	}
}

func TestBuilders(t *testing.T) {
	err := New("E020").
		WithSuggestion("Register the module source before navigating").
		WithDetail("custom detail")

	if err.Suggestion == "" || err.Detail != "custom detail" {
		t.Errorf("builders did not apply: %+v", err)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E021").
		Wrap(stderrors.New("boom")).
		WithSuggestion("Check the module source")

	out := err.Format()
	for _, want := range []string{"E021", "Module load failed", "Caused by: boom", "Hint:", "lazynav.dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E060").Wrap(stderrors.New("unexpected end of JSON input"))
	want := "E060: Invalid configuration file: unexpected end of JSON input"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestRegisterCustomCode(t *testing.T) {
	Register("X100", ErrorTemplate{
		Category: CategoryCLI,
		Message:  "Custom failure",
	})
	t.Cleanup(func() { delete(registry, "X100") })

	err := New("X100")
	if err.Message != "Custom failure" || err.Category != CategoryCLI {
		t.Errorf("New(X100) = %+v, want registered template", err)
	}
	if _, ok := Lookup("X100"); !ok {
		t.Error("Lookup should find the registered code")
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six seven eight nine ten", 20)
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six seven eight nine ten" {
		t.Errorf("wrapped text lost words: %v", lines)
	}
}
