package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeTemplateNotFound, "template %q is not registered", "analytics")

	want := `TEMPLATE_NOT_FOUND: template "analytics" is not registered`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !Is(err, ErrCodeTemplateNotFound) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodePersistenceFailure) {
		t.Error("Is() = true for non-matching code")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodePersistenceFailure, cause, "save layout %s", "default")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	if GetCode(err) != ErrCodePersistenceFailure {
		t.Errorf("GetCode() = %q, want %q", GetCode(err), ErrCodePersistenceFailure)
	}
}

func TestIs_WrappedChain(t *testing.T) {
	inner := New(ErrCodeInvalidLayoutFormat, "missing components array")
	outer := fmt.Errorf("import: %w", inner)

	if !Is(outer, ErrCodeInvalidLayoutFormat) {
		t.Error("Is() failed to unwrap fmt.Errorf chain")
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain error) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeComponentNotFound, "component abc not found")
	if got := UserMessage(err); got != "component abc not found" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
