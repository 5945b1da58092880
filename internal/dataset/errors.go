package dataset

import "fmt"

// InputFormatError indicates the input could not be read as a table.
type InputFormatError struct {
	Path string
	Line int // 1-based; 0 when unknown
	Err  error
}

func (e *InputFormatError) Error() string {
	if e == nil {
		return "invalid input"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *InputFormatError) Unwrap() error { return e.Err }
