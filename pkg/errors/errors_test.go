// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/genhooks/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_identifier_error",
			code:    errors.ErrInvalidIdentifier,
			message: "bad package name",
			wantStr: "[INVALID_IDENTIFIER] bad package name",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		format  string
		args    []interface{}
		wantMsg string
	}{
		{
			name:    "format_with_string",
			code:    errors.ErrInvalidInput,
			format:  "invalid value: %s",
			args:    []interface{}{"test"},
			wantMsg: "invalid value: test",
		},
		{
			name:    "format_with_multiple_args",
			code:    errors.ErrInvalidPort,
			format:  "port %d outside [%d, %d]",
			args:    []interface{}{80, 1024, 65535},
			wantMsg: "port 80 outside [1024, 65535]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Newf(tt.code, tt.format, tt.args...)

			if err.Message != tt.wantMsg {
				t.Errorf("Newf() message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileMove, "move failed")

		if err.Code != errors.ErrFileMove {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrFileMove)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FILE_MOVE] move failed: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrUnknown, "unknown error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrFileRemove, "cannot remove %s", "Dockerfile")
		if err.Message != "cannot remove Dockerfile" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidPort, "bad port").
		WithDetail("kind", "out_of_range").
		WithDetail("value", "80")

	if err.Details["kind"] != "out_of_range" {
		t.Errorf("WithDetail() kind = %v, want %v", err.Details["kind"], "out_of_range")
	}

	if err.Details["value"] != "80" {
		t.Errorf("WithDetail() value = %v, want %v", err.Details["value"], "80")
	}
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrFileWrite, "write failed").WithDetails(map[string]interface{}{
		"path": "src/App.java",
		"mode": 0644,
	})

	if err.Details["path"] != "src/App.java" {
		t.Errorf("WithDetails() path = %v", err.Details["path"])
	}
	if err.Details["mode"] != 0644 {
		t.Errorf("WithDetails() mode = %v", err.Details["mode"])
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrInvalidPort, "bad port"),
			code:     errors.ErrInvalidPort,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrInvalidPort, "bad port"),
			code:     errors.ErrInvalidIdentifier,
			expected: false,
		},
		{
			name:     "non_gen_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrInvalidPort,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrInvalidPort,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "gen_error",
			err:      errors.New(errors.ErrInvalidVariant, "no source roots"),
			expected: errors.ErrInvalidVariant,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	if !errors.IsValidation(errors.New(errors.ErrInvalidIdentifier, "x")) {
		t.Error("identifier errors are validation errors")
	}
	if !errors.IsValidation(errors.New(errors.ErrInvalidPort, "x")) {
		t.Error("port errors are validation errors")
	}
	if errors.IsValidation(errors.New(errors.ErrFileMove, "x")) {
		t.Error("filesystem errors are not validation errors")
	}
	if errors.IsValidation(stderrors.New("plain")) {
		t.Error("plain errors are not validation errors")
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileRead, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var genErr *errors.GenError
		if stderrors.As(configErr.Unwrap(), &genErr) {
			if !errors.IsErrorCode(genErr, errors.ErrFileRead) {
				t.Error("Middle error should have ErrFileRead code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})

	t.Run("is_matches_by_code", func(t *testing.T) {
		if !stderrors.Is(configErr, errors.New(errors.ErrConfigLoad, "")) {
			t.Error("errors.Is should match on code")
		}
	})
}
