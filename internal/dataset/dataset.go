package dataset

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the column type tag assigned at load time.
type Kind int

const (
	// KindNumeric marks columns whose values are all integers or floats.
	KindNumeric Kind = iota
	// KindCategorical marks label or free-form text columns.
	KindCategorical
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Cell is a single value. Num is only meaningful for numeric columns.
type Cell struct {
	Raw     string
	Num     float64
	Missing bool
}

// Column is a named, typed sequence of cells.
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// Len returns the number of rows in the column.
func (c *Column) Len() int { return len(c.Cells) }

// IsNumeric reports whether the column carries the numeric tag.
func (c *Column) IsNumeric() bool { return c.Kind == KindNumeric }

// MissingCount returns the number of absent cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, cell := range c.Cells {
		if cell.Missing {
			n++
		}
	}
	return n
}

// HasMissing reports whether at least one cell is absent.
func (c *Column) HasMissing() bool {
	for _, cell := range c.Cells {
		if cell.Missing {
			return true
		}
	}
	return false
}

// Floats returns the finite, present values of a numeric column in row order.
// It returns nil for categorical columns.
func (c *Column) Floats() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Missing || math.IsNaN(cell.Num) || math.IsInf(cell.Num, 0) {
			continue
		}
		out = append(out, cell.Num)
	}
	return out
}

// Strings returns the present raw values in row order.
func (c *Column) Strings() []string {
	out := make([]string, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if !cell.Missing {
			out = append(out, cell.Raw)
		}
	}
	return out
}

// valueKey returns the comparison key of a present cell: numeric cells compare
// by value (so "1" and "1.0" match), categorical cells by their text.
func (c *Column) valueKey(i int) string {
	cell := c.Cells[i]
	if c.Kind == KindNumeric {
		if cell.Num == 0 {
			return "0"
		}
		return strconv.FormatFloat(cell.Num, 'g', -1, 64)
	}
	return cell.Raw
}

// DistinctCount returns the number of distinct present values. Absent cells are not counted.
func (c *Column) DistinctCount() int {
	seen := make(map[string]struct{})
	for i, cell := range c.Cells {
		if cell.Missing {
			continue
		}
		seen[c.valueKey(i)] = struct{}{}
	}
	return len(seen)
}

// Equal reports whether both columns hold the same values position-for-position.
// Absent cells match absent cells; columns of different kinds never match.
func (c *Column) Equal(o *Column) bool {
	if c.Kind != o.Kind || len(c.Cells) != len(o.Cells) {
		return false
	}
	for i := range c.Cells {
		a, b := c.Cells[i], o.Cells[i]
		if a.Missing || b.Missing {
			if a.Missing != b.Missing {
				return false
			}
			continue
		}
		if c.valueKey(i) != o.valueKey(i) {
			return false
		}
	}
	return true
}

// Dataset is an ordered collection of equally long named columns.
// It is not modified after construction; Drop returns a new Dataset.
type Dataset struct {
	Name    string
	columns []*Column
	index   map[string]int
	rows    int
}

// New builds a Dataset. Column names must be unique and all columns must have the same length.
func New(name string, cols []*Column) (*Dataset, error) {
	d := &Dataset{Name: name, columns: cols, index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if _, dup := d.index[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", c.Name)
		}
		d.index[c.Name] = i
		if i == 0 {
			d.rows = c.Len()
		} else if c.Len() != d.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name, c.Len(), d.rows)
		}
	}
	return d, nil
}

// Rows returns the row count.
func (d *Dataset) Rows() int { return d.rows }

// Width returns the column count.
func (d *Dataset) Width() int { return len(d.columns) }

// Columns returns the columns in source order.
func (d *Dataset) Columns() []*Column {
	out := make([]*Column, len(d.columns))
	copy(out, d.columns)
	return out
}

// Names returns the column names in source order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.columns))
	for i, c := range d.columns {
		out[i] = c.Name
	}
	return out
}

// Column looks a column up by name.
func (d *Dataset) Column(name string) (*Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.columns[i], true
}

// Head returns the names of the first n columns (all of them if n exceeds the width).
func (d *Dataset) Head(n int) []string {
	names := d.Names()
	if n < 0 {
		n = 0
	}
	if n < len(names) {
		names = names[:n]
	}
	return names
}

// Drop returns a view without the named columns. Unknown names are ignored.
// Columns are shared with the receiver, not copied.
func (d *Dataset) Drop(names ...string) *Dataset {
	skip := make(map[string]struct{}, len(names))
	for _, n := range names {
		skip[n] = struct{}{}
	}
	kept := make([]*Column, 0, len(d.columns))
	for _, c := range d.columns {
		if _, ok := skip[c.Name]; !ok {
			kept = append(kept, c)
		}
	}
	out := &Dataset{Name: d.Name, columns: kept, index: make(map[string]int, len(kept)), rows: d.rows}
	for i, c := range kept {
		out.index[c.Name] = i
	}
	return out
}
