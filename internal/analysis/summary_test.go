package analysis

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/edareport/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, rows ...string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.ReadCSV(strings.NewReader(strings.Join(rows, "\n")), "test.csv", dataset.LoadOptions{Delimiter: ','})
	require.NoError(t, err)
	return ds
}

func TestSummarizeScenario(t *testing.T) {
	ds := load(t,
		"A,B,C,D",
		"1,,x,1",
		"2,,x,2",
		"3,,x,3",
	)
	s := Summarize(ds)

	assert.Equal(t, []string{"B"}, s.Missing)
	assert.Equal(t, []string{"A", "B", "D"}, s.Numeric)
	assert.Equal(t, []string{"C"}, s.Categorical)
	assert.Equal(t, []string{"D"}, s.Duplicates)
	assert.Equal(t, []string{"C"}, s.Constant)
	assert.Equal(t, []string{"A", "B"}, s.Cleaned.Names())
	assert.Equal(t, []string{"A"}, s.BoxplotColumns())
	assert.Equal(t, 3, s.Rows)
	assert.Equal(t, 4, s.Columns)
}

func TestNoMissingValues(t *testing.T) {
	s := Summarize(load(t, "a,b", "1,x", "2,y"))
	assert.Empty(t, s.Missing)
	assert.NotNil(t, s.Missing)
}

func TestClassificationIsAPartition(t *testing.T) {
	ds := load(t,
		"n,t,mixed,blank,f",
		"1,a,1,,1.5",
		"2,b,two,,2.5",
	)
	numeric, categorical := Classify(ds)
	seen := map[string]int{}
	for _, n := range numeric {
		seen[n]++
	}
	for _, c := range categorical {
		seen[c]++
	}
	assert.Len(t, seen, ds.Width())
	for name, n := range seen {
		assert.Equal(t, 1, n, "column %s classified twice", name)
	}
	assert.Equal(t, []string{"n", "blank", "f"}, numeric)
	assert.Equal(t, []string{"t", "mixed"}, categorical)
}

func TestDuplicateColumnsNonAdjacent(t *testing.T) {
	ds := load(t,
		"a,b,c,d,e",
		"1,x,1,x,1",
		",y,,y,",
		"3,z,3,z,4",
	)
	assert.Equal(t, []string{"c", "d"}, DuplicateColumns(ds))
}

func TestDuplicateColumnsRespectMissingPositions(t *testing.T) {
	ds := load(t,
		"a,b",
		"1,1",
		",2",
		"3,",
	)
	assert.Empty(t, DuplicateColumns(ds))
}

func TestConstantColumns(t *testing.T) {
	ds := load(t,
		"same,withgap,varied,allgone",
		"k,5,1,",
		"k,,2,",
		"k,5,1,",
	)
	assert.Equal(t, []string{"same", "withgap"}, ConstantColumns(ds))
}

func TestConstantEvaluatedAfterDedup(t *testing.T) {
	s := Summarize(load(t,
		"c1,c2",
		"7,7",
		"7,7",
	))
	assert.Equal(t, []string{"c2"}, s.Duplicates)
	assert.Equal(t, []string{"c1"}, s.Constant)
	assert.Empty(t, s.Cleaned.Names())
}

func TestProfileColumn(t *testing.T) {
	ds := load(t,
		"v,label",
		"1,b",
		"2,a",
		"3,b",
		"4,",
		",c",
	)
	v, _ := ds.Column("v")
	p := ProfileColumn(v)
	require.NotNil(t, p.Numeric)
	assert.Equal(t, 4, p.NonNull)
	assert.Equal(t, 1, p.Missing)
	assert.Equal(t, 4, p.Distinct)
	assert.Equal(t, 1.0, p.Numeric.Min)
	assert.Equal(t, 4.0, p.Numeric.Max)
	assert.Equal(t, 2.5, p.Numeric.Mean)
	assert.Equal(t, 2.5, p.Numeric.Median)
	assert.Equal(t, 1.5, p.Numeric.Q1)
	assert.Equal(t, 3.5, p.Numeric.Q3)
	assert.InDelta(t, 1.2910, p.Numeric.Std, 1e-4)

	label, _ := ds.Column("label")
	lp := ProfileColumn(label)
	assert.Nil(t, lp.Numeric)
	assert.Equal(t, []CategoryCount{{"b", 2}, {"a", 1}, {"c", 1}}, lp.TopValues)
}

func TestProfileEmptyNumeric(t *testing.T) {
	ds := load(t, "e,x", ",1", ",2")
	e, _ := ds.Column("e")
	p := ProfileColumn(e)
	assert.Nil(t, p.Numeric)
	assert.Equal(t, 2, p.Missing)
}

func TestMarkdown(t *testing.T) {
	s := Summarize(load(t,
		"A,B,C,D",
		"1,,x,1",
		"2,,x,2",
	))
	md := s.Markdown()
	assert.Contains(t, md, "# Dataset Summary")
	assert.Contains(t, md, "## Duplicate Columns")
	assert.Contains(t, md, "- D")
	assert.Contains(t, md, "## Constant Columns")
	assert.Contains(t, md, "- C")
	assert.Contains(t, md, "## Schema")
	assert.Contains(t, md, "100.0%")
	assert.Contains(t, md, "top: x(2)")
}
