package service

// Code is a machine-readable validation error code.
type Code string

const (
	// CodeEmptyText means the task text was empty after trimming.
	CodeEmptyText Code = "EMPTY_TEXT"
)

// ValidationError is a user-correctable input error.
type ValidationError struct {
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is a ValidationError with the same code.
func (e *ValidationError) Is(target error) bool {
	if t, ok := target.(*ValidationError); ok {
		return e.Code == t.Code
	}
	return false
}

// ErrEmptyText is returned by Add when the trimmed text is empty.
var ErrEmptyText = &ValidationError{Code: CodeEmptyText, Message: "task text is empty"}
