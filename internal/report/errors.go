package report

import (
	"fmt"
	"strings"
)

// MissingColumnError reports a requested distribution column that is not in the dataset.
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("column %q not found in dataset", e.Column)
	}
	return fmt.Sprintf("column %q not found in dataset; available columns: %s", e.Column, strings.Join(e.Available, ", "))
}

// FilesystemError wraps a failure to create a directory or write an artifact.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
