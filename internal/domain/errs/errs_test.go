package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestInputError_IsAndMessage(t *testing.T) {
	err := Input("Please fill in all required fields.", "Name", "Phone")
	if !errors.Is(err, ErrInput) {
		t.Fatalf("expected errors.Is(err, ErrInput)")
	}
	if errors.Is(err, ErrStorage) {
		t.Fatalf("input error must not match ErrStorage")
	}
	if !strings.Contains(err.Error(), "Name, Phone") {
		t.Fatalf("message = %q", err.Error())
	}

	var ie *InputError
	if !errors.As(fmt.Errorf("wrap: %w", err), &ie) || len(ie.Fields) != 2 {
		t.Fatalf("errors.As failed: %+v", ie)
	}
}

func TestStorageError_WrapsCause(t *testing.T) {
	cause := errors.New("table members is locked")
	err := Storage(cause)
	if !errors.Is(err, ErrStorage) || !errors.Is(err, cause) {
		t.Fatalf("storage error lost identity: %v", err)
	}
	if err.Error() != cause.Error() {
		t.Fatalf("message = %q, want cause text", err.Error())
	}
	if Storage(nil) != nil {
		t.Fatalf("Storage(nil) must be nil")
	}
}

func TestDuplicateKeyError(t *testing.T) {
	err := &DuplicateKeyError{Key: "id_number", Cause: errors.New("UNIQUE constraint failed")}
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey")
	}
	if !strings.HasPrefix(err.Error(), "duplicate id_number") {
		t.Fatalf("message = %q", err.Error())
	}
}
