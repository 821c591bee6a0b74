package errs

import (
	"errors"
	"strings"
)

// Error taxonomy shared by the gateway, use cases and transport.
var (
	ErrConnection   = errors.New("connection error")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInput        = errors.New("invalid input")
	ErrStorage      = errors.New("storage error")
)

// InputError reports missing or malformed form fields. No storage call is
// issued once an InputError is produced.
type InputError struct {
	Fields []string
	Msg    string
}

func (e *InputError) Error() string {
	if len(e.Fields) == 0 {
		return e.Msg
	}
	return e.Msg + " (" + strings.Join(e.Fields, ", ") + ")"
}

func (e *InputError) Is(target error) bool { return target == ErrInput }

func Input(msg string, fields ...string) error {
	return &InputError{Fields: fields, Msg: msg}
}

// StorageError wraps any database failure other than a duplicate key.
type StorageError struct{ Cause error }

func (e *StorageError) Error() string { return e.Cause.Error() }

func (e *StorageError) Unwrap() error { return e.Cause }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func Storage(err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Cause: err}
}

// DuplicateKeyError is returned when a unique column already holds the value.
type DuplicateKeyError struct {
	Key   string
	Cause error
}

func (e *DuplicateKeyError) Error() string {
	return "duplicate " + e.Key + ": " + e.Cause.Error()
}

func (e *DuplicateKeyError) Unwrap() error { return e.Cause }

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }
