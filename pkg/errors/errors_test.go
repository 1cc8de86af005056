package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "level %d misconfigured", 3)

	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidConfig)
	}
	if err.Message != "level 3 misconfigured" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	if !strings.Contains(err.Error(), "INVALID_CONFIG") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "write layout")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if got := err.Error(); !strings.Contains(got, "disk full") {
		t.Errorf("Error() = %q, want cause included", got)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidOutline, "outline needs at least 2 points")

	if !Is(err, ErrCodeInvalidOutline) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInvalidLevels) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidOutline) {
		t.Error("Is should not match a plain error")
	}

	// Matches through wrapping
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeInvalidOutline) {
		t.Error("Is should unwrap fmt-wrapped errors")
	}
}

func TestIsConfig(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidConfig, true},
		{ErrCodeInvalidLevels, true},
		{ErrCodeInvalidOutline, true},
		{ErrCodeInvalidSpacing, true},
		{ErrCodeInternal, false},
		{ErrCodeNotFound, false},
	}

	for _, tt := range tests {
		err := New(tt.code, "x")
		if got := IsConfig(err); got != tt.want {
			t.Errorf("IsConfig(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}

	if IsConfig(stderrors.New("plain")) {
		t.Error("IsConfig should be false for plain errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeLayoutNotFound, "x")); got != ErrCodeLayoutNotFound {
		t.Errorf("GetCode = %v", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidLevels, "no enabled levels")
	if got := UserMessage(err); got != "no enabled levels" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
