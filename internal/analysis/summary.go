package analysis

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/KaramelBytes/edareport/internal/dataset"
)

// Summary is the data-quality record of a dataset. It is computed once by
// Summarize and not modified afterwards.
type Summary struct {
	Name    string
	Rows    int
	Columns int

	// Column names in source order.
	Missing     []string
	Numeric     []string
	Categorical []string
	Duplicates  []string
	Constant    []string

	// Cleaned is the dataset without duplicate and constant columns.
	Cleaned *dataset.Dataset

	Profiles []ColumnProfile
}

// Summarize computes the data-quality summary. Constant columns are evaluated
// on the duplicate-free view.
func Summarize(ds *dataset.Dataset) *Summary {
	s := &Summary{
		Name:    ds.Name,
		Rows:    ds.Rows(),
		Columns: ds.Width(),
	}
	s.Missing = MissingColumns(ds)
	s.Numeric, s.Categorical = Classify(ds)
	s.Duplicates = DuplicateColumns(ds)
	dedup := ds.Drop(s.Duplicates...)
	s.Constant = ConstantColumns(dedup)
	s.Cleaned = dedup.Drop(s.Constant...)
	for _, c := range ds.Columns() {
		s.Profiles = append(s.Profiles, ProfileColumn(c))
	}
	return s
}

// MissingColumns lists columns with at least one absent value.
func MissingColumns(ds *dataset.Dataset) []string {
	out := []string{}
	for _, c := range ds.Columns() {
		if c.HasMissing() {
			out = append(out, c.Name)
		}
	}
	return out
}

// Classify partitions column names into numeric and categorical/text.
func Classify(ds *dataset.Dataset) (numeric, categorical []string) {
	numeric, categorical = []string{}, []string{}
	for _, c := range ds.Columns() {
		if c.IsNumeric() {
			numeric = append(numeric, c.Name)
		} else {
			categorical = append(categorical, c.Name)
		}
	}
	return numeric, categorical
}

// DuplicateColumns lists every column whose values equal those of an earlier
// column. The leftmost column of each group is not listed.
func DuplicateColumns(ds *dataset.Dataset) []string {
	out := []string{}
	buckets := make(map[uint64][]*dataset.Column)
	for _, c := range ds.Columns() {
		h := fingerprint(c)
		dup := false
		for _, first := range buckets[h] {
			if first.Equal(c) {
				dup = true
				break
			}
		}
		if dup {
			out = append(out, c.Name)
			continue
		}
		buckets[h] = append(buckets[h], c)
	}
	return out
}

// ConstantColumns lists columns with exactly one distinct present value.
// A column with no present values is not constant.
func ConstantColumns(ds *dataset.Dataset) []string {
	out := []string{}
	for _, c := range ds.Columns() {
		if c.DistinctCount() == 1 {
			out = append(out, c.Name)
		}
	}
	return out
}

// BoxplotColumns lists the numeric columns of the cleaned view that hold at least one value.
func (s *Summary) BoxplotColumns() []string {
	out := []string{}
	if s.Cleaned == nil {
		return out
	}
	for _, c := range s.Cleaned.Columns() {
		if c.IsNumeric() && len(c.Floats()) > 0 {
			out = append(out, c.Name)
		}
	}
	return out
}

// fingerprint hashes a column so that equal columns share a bucket.
func fingerprint(c *dataset.Column) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	h.Write([]byte{byte(c.Kind)})
	for _, cell := range c.Cells {
		switch {
		case cell.Missing:
			h.Write([]byte{0})
		case c.IsNumeric():
			v := cell.Num
			if v == 0 {
				v = 0 // fold -0
			}
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write([]byte{1})
			h.Write(buf[:])
		default:
			h.Write([]byte{2})
			h.Write([]byte(cell.Raw))
			h.Write([]byte{0xff})
		}
	}
	return h.Sum64()
}
