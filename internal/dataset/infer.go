package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultMissingValues are the tokens read as absent values.
var DefaultMissingValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a", "nan", "null",
}

type inferrer struct {
	missing map[string]struct{}
}

func newInferrer(tokens []string) inferrer {
	if len(tokens) == 0 {
		tokens = DefaultMissingValues
	}
	m := make(map[string]struct{}, len(tokens)+1)
	m[""] = struct{}{}
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return inferrer{missing: m}
}

func (in inferrer) isMissing(s string) bool {
	_, ok := in.missing[strings.TrimSpace(s)]
	return ok
}

// parseNumber parses a decimal or scientific literal. Hex and underscore forms are rejected.
func parseNumber(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" || strings.ContainsAny(raw, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// buildColumn tags a column numeric when every present value parses as a number.
// A column without any present value is numeric.
func (in inferrer) buildColumn(name string, raw []string) *Column {
	cells := make([]Cell, len(raw))
	numeric := true
	for i, v := range raw {
		if in.isMissing(v) {
			cells[i] = Cell{Raw: v, Missing: true}
			continue
		}
		cells[i] = Cell{Raw: v}
		if !numeric {
			continue
		}
		if f, ok := parseNumber(v); ok {
			cells[i].Num = f
			if math.IsNaN(f) {
				cells[i].Missing = true
			}
		} else {
			numeric = false
		}
	}
	kind := KindNumeric
	if !numeric {
		kind = KindCategorical
		for i := range cells {
			cells[i].Num = 0
			cells[i].Missing = in.isMissing(cells[i].Raw)
		}
	}
	return &Column{Name: name, Kind: kind, Cells: cells}
}

// normalizeHeader names empty headers "Unnamed: <i>" and suffixes repeated names with .1, .2, ...
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	used := make(map[string]struct{}, len(header))
	counts := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		base := name
		for {
			if _, taken := used[name]; !taken {
				break
			}
			counts[base]++
			name = fmt.Sprintf("%s.%d", base, counts[base])
		}
		used[name] = struct{}{}
		out[i] = name
	}
	return out
}

// fromRecords builds a Dataset from a header and row records. Rows shorter than
// the header are padded with absent cells.
func fromRecords(name string, header []string, rows [][]string, in inferrer) (*Dataset, error) {
	names := normalizeHeader(header)
	raw := make([][]string, len(names))
	for j := range raw {
		raw[j] = make([]string, len(rows))
	}
	for i, rec := range rows {
		for j := range names {
			if j < len(rec) {
				raw[j][i] = rec[j]
			}
		}
	}
	cols := make([]*Column, len(names))
	for j, n := range names {
		cols[j] = in.buildColumn(n, raw[j])
	}
	return New(name, cols)
}
