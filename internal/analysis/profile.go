package analysis

import (
	"sort"

	"github.com/KaramelBytes/edareport/internal/dataset"
	"github.com/montanaflynn/stats"
)

// ColumnProfile captures counts and, for numeric columns, a five-number summary.
type ColumnProfile struct {
	Name     string
	Kind     dataset.Kind
	NonNull  int
	Missing  int
	Distinct int
	// Numeric is nil for categorical columns and for numeric columns without values.
	Numeric *NumericStats
	// TopValues holds the most frequent categorical values.
	TopValues []CategoryCount
}

// NumericStats is the descriptive summary of a numeric column.
type NumericStats struct {
	Count               int
	Min, Q1, Median, Q3 float64
	Max, Mean, Std      float64
}

type CategoryCount struct {
	Value string
	Count int
}

// topValuesInProfile caps TopValues in profiles.
const topValuesInProfile = 5

// ProfileColumn computes the profile of one column.
func ProfileColumn(c *dataset.Column) ColumnProfile {
	p := ColumnProfile{
		Name:     c.Name,
		Kind:     c.Kind,
		Missing:  c.MissingCount(),
		Distinct: c.DistinctCount(),
	}
	p.NonNull = c.Len() - p.Missing
	if c.IsNumeric() {
		p.Numeric = describe(c.Floats())
		return p
	}
	p.TopValues = ValueCounts(c)
	if len(p.TopValues) > topValuesInProfile {
		p.TopValues = p.TopValues[:topValuesInProfile]
	}
	return p
}

// describe returns nil when vals is empty.
func describe(vals []float64) *NumericStats {
	if len(vals) == 0 {
		return nil
	}
	data := stats.Float64Data(vals)
	ns := &NumericStats{Count: len(vals)}
	ns.Min, _ = data.Min()
	ns.Max, _ = data.Max()
	ns.Mean, _ = data.Mean()
	ns.Median, _ = data.Median()
	if len(vals) < 2 {
		ns.Q1, ns.Q3 = ns.Median, ns.Median
		return ns
	}
	if q, err := stats.Quartile(data); err == nil {
		ns.Q1, ns.Q3 = q.Q1, q.Q3
	}
	ns.Std, _ = stats.StandardDeviationSample(data)
	return ns
}

// ValueCounts counts present values of a column, most frequent first; ties are ordered by value.
func ValueCounts(c *dataset.Column) []CategoryCount {
	counts := make(map[string]int)
	for _, v := range c.Strings() {
		counts[v]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, CategoryCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Value < out[j].Value
		}
		return out[i].Count > out[j].Count
	})
	return out
}
