package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindClipboard, "clipboard error"},
		{KindBrowser, "browser error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE_ContextBecomesError(t *testing.T) {
	err := E(Op("test.Op"), KindInvalid, "just a message")
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("E() returned %T, want *Error", err)
	}
	if e.Err == nil || e.Err.Error() != "just a message" {
		t.Errorf("E().Err = %v, want %q", e.Err, "just a message")
	}
	if e.Context != "" {
		t.Errorf("E().Context = %q, want empty", e.Context)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{"matching kind", E(Op("test"), KindNotFound, "not found"), KindNotFound, true},
		{"non-matching kind", E(Op("test"), KindNotFound, "not found"), KindInvalid, false},
		{"plain error", errors.New("regular error"), KindNotFound, false},
		{"nil error", nil, KindNotFound, false},
		{"wrapped error", fmt.Errorf("wrapped: %w", E(Op("test"), KindClipboard, "no clipboard")), KindClipboard, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(E(Op("test"), KindBrowser, "x")); got != KindBrowser {
		t.Errorf("GetKind() = %v, want %v", got, KindBrowser)
	}
	if got := GetKind(errors.New("regular")); got != KindUnknown {
		t.Errorf("GetKind() = %v, want %v", got, KindUnknown)
	}
	if got := GetKind(nil); got != KindUnknown {
		t.Errorf("GetKind(nil) = %v, want %v", got, KindUnknown)
	}
}

func TestConstructors(t *testing.T) {
	underlying := errors.New("boom")
	tests := []struct {
		name   string
		err    error
		kind   Kind
		op     Op
		wraps  bool
		substr string
	}{
		{"ConfigLoadFailed", ConfigLoadFailed("/cfg.json", underlying), KindConfig, "config.Load", true, "/cfg.json"},
		{"ConfigSaveFailed", ConfigSaveFailed("/cfg.json", underlying), KindConfig, "config.Save", true, "/cfg.json"},
		{"InvalidSetting", InvalidSetting("ts", "0.0.1"), KindInvalid, "playground.Validate", false, `"0.0.1" is not a valid ts`},
		{"LinkMalformed", LinkMalformed("bad fragment", underlying), KindInvalid, "report.ParseLink", true, "bad fragment"},
		{"LinkMalformed no cause", LinkMalformed("bad fragment", nil), KindInvalid, "report.ParseLink", false, "bad fragment"},
		{"ClipboardUnavailable", ClipboardUnavailable(underlying), KindClipboard, "clipboard.WriteText", true, "no clipboard"},
		{"BrowserOpenFailed", BrowserOpenFailed("https://x", underlying), KindBrowser, "browser.Open", true, "https://x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.kind) {
				t.Errorf("kind = %v, want %v", GetKind(tt.err), tt.kind)
			}
			e, ok := tt.err.(*Error)
			if !ok {
				t.Fatalf("got %T, want *Error", tt.err)
			}
			if e.Op != tt.op {
				t.Errorf("Op = %q, want %q", e.Op, tt.op)
			}
			if errors.Is(tt.err, underlying) != tt.wraps {
				t.Errorf("wraps underlying = %v, want %v", !tt.wraps, tt.wraps)
			}
			if !strings.Contains(tt.err.Error(), tt.substr) {
				t.Errorf("Error() = %q, want to contain %q", tt.err.Error(), tt.substr)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	innerErr := errors.New("original error")
	middleErr := E(Op("middle.Op"), KindIO, innerErr)
	outerErr := E(Op("outer.Op"), KindConfig, middleErr)

	if !errors.Is(outerErr, innerErr) {
		t.Error("Should be able to find inner error through chain")
	}
	if GetKind(outerErr) != KindConfig {
		t.Error("GetKind should return outer error's kind")
	}
}
