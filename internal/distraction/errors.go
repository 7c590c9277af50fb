package distraction

import "fmt"

// ValidationError rejects user input before anything touches disk.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ErrEmptyNote is returned by Append when the note is blank after trimming.
var ErrEmptyNote = &ValidationError{Field: "note", Message: "please enter a note before saving"}

// ReadError reports a journal file that exists but does not hold a JSON
// array of entries. The file is left untouched.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to read journal %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
