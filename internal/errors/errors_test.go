package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "simple error",
			err:      New(CodeUnknownTool, "unknown tool"),
			expected: "UNKNOWN_TOOL: unknown tool",
		},
		{
			name:     "wrapped error",
			err:      Wrap(CodeInvalidArguments, "bad args", fmt.Errorf("not an object")),
			expected: "INVALID_ARGUMENTS: bad args: not an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Run("no wrapped error", func(t *testing.T) {
		err := New(CodeUnknownTool, "unknown")
		if err.Unwrap() != nil {
			t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
		}
	})

	t.Run("stdlib errors.Is compatibility", func(t *testing.T) {
		underlying := fmt.Errorf("decode error")
		err := Wrap(CodeInvalidArguments, "bad args", underlying)

		if !errors.Is(err, underlying) {
			t.Error("errors.Is() = false, want true for wrapped error")
		}
	})

	t.Run("stdlib errors.As compatibility", func(t *testing.T) {
		err := fmt.Errorf("dispatch: %w", New(CodeUnknownTool, "unknown"))

		var vErr *Error
		if !errors.As(err, &vErr) {
			t.Fatal("errors.As() = false, want true")
		}
		if vErr.Code != CodeUnknownTool {
			t.Errorf("errors.As() code = %q, want %q", vErr.Code, CodeUnknownTool)
		}
	})
}

func TestCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "typed error", err: New(CodeUnknownTool, "x"), expected: CodeUnknownTool},
		{name: "standard error", err: fmt.Errorf("standard error"), expected: ""},
		{
			name:     "wrapped typed error",
			err:      fmt.Errorf("wrapped: %w", InvalidConfig("VANTA_PROJECT_ID", fmt.Errorf("bad uuid"))),
			expected: CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Code(tt.err)
			if got != tt.expected {
				t.Errorf("Code() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIs(t *testing.T) {
	if Is(nil, CodeUnknownTool) {
		t.Error("Is(nil) = true, want false")
	}
	if !Is(UnknownTool("x"), CodeUnknownTool) {
		t.Error("Is() = false, want true for matching code")
	}
	if Is(UnknownTool("x"), CodeInternal) {
		t.Error("Is() = true, want false for non-matching code")
	}
}

func TestUnknownTool(t *testing.T) {
	err := UnknownTool("bogus_tool")

	if err.Code != CodeUnknownTool {
		t.Errorf("Code = %q, want %q", err.Code, CodeUnknownTool)
	}
	if !strings.Contains(err.Message, `"bogus_tool"`) {
		t.Errorf("Message = %q, should name the tool", err.Message)
	}
}

func TestInvalidArguments(t *testing.T) {
	underlying := fmt.Errorf("cannot unmarshal number")
	err := InvalidArguments("vanta_execute_service", underlying)

	if err.Code != CodeInvalidArguments {
		t.Errorf("Code = %q, want %q", err.Code, CodeInvalidArguments)
	}
	if !strings.Contains(err.Message, "vanta_execute_service") {
		t.Errorf("Message = %q, should name the tool", err.Message)
	}
	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
}

func TestInvalidConfig(t *testing.T) {
	err := InvalidConfig("VANTA_API_BASE", fmt.Errorf("missing scheme"))

	if err.Code != CodeInvalidConfig {
		t.Errorf("Code = %q, want %q", err.Code, CodeInvalidConfig)
	}
	if !strings.Contains(err.Error(), "VANTA_API_BASE") || !strings.Contains(err.Error(), "missing scheme") {
		t.Errorf("Error() = %q, should include field and cause", err.Error())
	}
}

func TestInternal(t *testing.T) {
	err := Internal("failed to marshal response", fmt.Errorf("boom"))

	if err.Code != CodeInternal {
		t.Errorf("Code = %q, want %q", err.Code, CodeInternal)
	}
}

func BenchmarkCode(b *testing.B) {
	err := New(CodeUnknownTool, "unknown")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Code(err)
	}
}
