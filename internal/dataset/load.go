package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadOptions controls how a file is read.
type LoadOptions struct {
	// Delimiter for CSV. If 0, uses tab for .tsv files and sniffs the header otherwise.
	Delimiter rune
	// MissingValues are tokens read as absent. Empty means DefaultMissingValues.
	MissingValues []string
	// SheetName selects an XLSX sheet by name.
	SheetName string
	// SheetIndex is the 1-based XLSX sheet index, used if SheetName is empty.
	SheetIndex int
}

// Loader reads one tabular file format.
type Loader interface {
	CanLoad(path string) bool
	Load(path string, opt LoadOptions) (*Dataset, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// Load selects a loader based on filename. Unknown extensions are read as CSV.
func Load(path string, opt LoadOptions) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &InputFormatError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &InputFormatError{Path: path, Err: fmt.Errorf("is a directory")}
	}
	for _, l := range registry {
		if l.CanLoad(path) {
			return l.Load(path, opt)
		}
	}
	return csvLoader{}.Load(path, opt)
}

// ParseDelimiter converts a user-facing delimiter name to a rune. Empty means auto-detect.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, nil
	case ",", "comma":
		return ',', nil
	case ";", "semicolon":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	case "|", "pipe":
		return '|', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %s (use ','|';'|'tab'|'|')", s)
	}
}

func hasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func init() {
	Register(csvLoader{})
	Register(xlsxLoader{})
}
