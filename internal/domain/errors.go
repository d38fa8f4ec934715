package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrProjectExists         = errors.New("project already exists (use --force to overwrite)")
	ErrNotInitialized        = errors.New("no project found (run 'gantt new' first)")
	ErrValidation            = errors.New("validation failed")
	ErrInvalidDuration       = errors.New("duration must be a non-negative integer")
	ErrDurationTooLong       = errors.New("duration exceeds 3650 days")
	ErrInvalidDate           = errors.New("invalid date")
	ErrEmptyID               = errors.New("task ID cannot be empty")
	ErrUnknownColour         = errors.New("unknown colour")
	ErrSelfDependency        = errors.New("task cannot depend on itself")
	ErrUnknownComplexity     = errors.New("unknown project complexity")
	ErrNoFieldsToUpdate      = errors.New("no fields to update")
	ErrNegativeTaskCount     = errors.New("task count cannot be negative")
	ErrConfigExists          = errors.New("config file already exists")
	ErrCalendarNotConfigured = errors.New("calendar not configured (set [calendar] calendar_id or pass --calendar)")
)

// ValidationError reports a tabular field that could not be converted.
// Row is 1-based in the order rows were supplied. Line is the source file
// line of the row, or 0 when the rows did not come from a file.
type ValidationError struct {
	Err   error
	Field string
	Value string
	Row   int
	Line  int
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	where := fmt.Sprintf("row %d", e.Row)
	if e.Line > 0 {
		where += fmt.Sprintf(" (line %d)", e.Line)
	}
	return fmt.Sprintf("%s: field %q: value %q: %v", where, e.Field, e.Value, e.Err)
}

// Is reports ErrValidation so callers can match any conversion failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error { return e.Err }
