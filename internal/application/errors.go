package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrPresetExists   = errors.New("preset already exists")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NoteError represents a failure while reading a single note's reference
// metadata. It is recovered during a report run; the note is skipped.
type NoteError struct {
	Path string
	Err  error
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("note %s: %v", e.Path, e.Err)
}

func (e *NoteError) Unwrap() error {
	return e.Err
}

// WriteError represents a failure to write the report output. It aborts the
// whole run.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
