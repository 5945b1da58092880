package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/KaramelBytes/edareport/internal/dataset"
)

const scenarioCSV = `A,B,C,D
1,,x,1
2,,x,2
3,,x,3
`

func load(t *testing.T, src string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.ReadCSV(strings.NewReader(src), "data.csv", dataset.LoadOptions{})
	require.NoError(t, err)
	return ds
}

func quiet() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

// images returns the src attribute of every <img> in the page.
func images(t *testing.T, page []byte) []string {
	t.Helper()
	root, err := html.Parse(bytes.NewReader(page))
	require.NoError(t, err)
	var srcs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, a := range n.Attr {
				if a.Key == "src" {
					srcs = append(srcs, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return srcs
}

func TestAnalyzeScenario(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "analysis_report.html")
	logger, hook := logtest.NewNullLogger()

	res, err := Analyze(load(t, scenarioCSV), out, Options{Logger: logger})
	require.NoError(t, err)

	s := res.Summary
	assert.Equal(t, []string{"B"}, s.Missing)
	assert.Equal(t, []string{"A", "B", "D"}, s.Numeric)
	assert.Equal(t, []string{"C"}, s.Categorical)
	assert.Equal(t, []string{"D"}, s.Duplicates)
	assert.Equal(t, []string{"C"}, s.Constant)

	assert.Equal(t, []string{filepath.Join(dir, "A_boxplot.png")}, res.BoxplotPaths)
	require.Len(t, res.DistributionPaths, 4)
	for _, p := range append(res.BoxplotPaths, res.DistributionPaths...) {
		assert.FileExists(t, p)
	}
	assert.NoFileExists(t, filepath.Join(dir, "D_boxplot.png"))
	assert.NoFileExists(t, filepath.Join(dir, "C_boxplot.png"))

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	body := string(page)
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "<title>Data Analysis Report</title>")

	headings := []string{
		"1. Columns with Missing Values",
		"2. Numeric Columns",
		"3. Categorical Columns",
		"4. Duplicate Columns",
		"5. Constant Columns",
		"6. Boxplots",
		"7. Distributions",
		"8. Column Profile",
	}
	last := -1
	for _, h := range headings {
		i := strings.Index(body, "<h2>"+h+"</h2>")
		require.GreaterOrEqual(t, i, 0, h)
		assert.Greater(t, i, last, "section %q out of order", h)
		last = i
	}

	assert.Equal(t, []string{
		"A_boxplot.png",
		"A_distribution.png",
		"B_distribution.png",
		"C_distribution.png",
		"D_distribution.png",
	}, images(t, page))
	assert.Contains(t, body, `width="400"`)

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, msgs, "HTML report saved")
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.html")
	ds := load(t, scenarioCSV)

	_, err := Analyze(ds, out, Options{Logger: quiet()})
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)
	firstPNG, err := os.ReadFile(filepath.Join(dir, "A_boxplot.png"))
	require.NoError(t, err)

	_, err = Analyze(ds, out, Options{Logger: quiet()})
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)
	secondPNG, err := os.ReadFile(filepath.Join(dir, "A_boxplot.png"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstPNG, secondPNG)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}

func TestAnalyzeSanitizesFilenames(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.html")
	ds := load(t, "\"a/b:c\",label\n1,red\n5,blue\n9,red\n")

	res, err := Analyze(ds, out, Options{Logger: quiet()})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "a_b_c_boxplot.png")}, res.BoxplotPaths)
	assert.FileExists(t, filepath.Join(dir, "a_b_c_distribution.png"))
	assert.FileExists(t, filepath.Join(dir, "label_distribution.png"))

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	for _, src := range images(t, page) {
		assert.NotContains(t, src, ":")
	}
	// The unsanitized name is kept in the text of the report.
	assert.Contains(t, string(page), "<li>a/b:c</li>")
}

func TestAnalyzeWarnsOnSanitizedNameCollision(t *testing.T) {
	dir := t.TempDir()
	logger, hook := logtest.NewNullLogger()
	ds := load(t, "\"a/b\",\"a:b\"\n1,9\n2,8\n3,1\n")

	res, err := Analyze(ds, filepath.Join(dir, "r.html"), Options{Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a_b_boxplot.png"), filepath.Join(dir, "a_b_boxplot.png")}, res.BoxplotPaths)

	var warned []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = append(warned, e.Data["path"].(string))
		}
	}
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a_b_boxplot.png"),
		filepath.Join(dir, "a_b_distribution.png"),
	}, warned)
}

func TestAnalyzeByteOrderMarkInput(t *testing.T) {
	dir := t.TempDir()
	res, err := Analyze(load(t, "\ufeff"+scenarioCSV), filepath.Join(dir, "r.html"), Options{
		DistributionColumns: []string{"A"},
		Logger:              quiet(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "A_distribution.png")}, res.DistributionPaths)
	assert.Equal(t, []string{filepath.Join(dir, "A_boxplot.png")}, res.BoxplotPaths)
}

func TestAnalyzeUnknownDistributionColumn(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.html")

	_, err := Analyze(load(t, scenarioCSV), out, Options{
		DistributionColumns: []string{"A", "Z"},
		Logger:              quiet(),
	})
	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, "Z", mce.Column)
	assert.Contains(t, err.Error(), "available columns: A, B, C, D")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAnalyzeCustomColumnsAndImageDir(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.html")
	imgDir := filepath.Join(dir, "img")

	res, err := Analyze(load(t, scenarioCSV), out, Options{
		DistributionColumns: []string{"C"},
		ImageDir:            imgDir,
		ImageWidth:          250,
		Logger:              quiet(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(imgDir, "C_distribution.png")}, res.DistributionPaths)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"img/A_boxplot.png", "img/C_distribution.png"}, images(t, page))
	assert.Contains(t, string(page), `width="250"`)
}

func TestAnalyzeDefaultDistributionCount(t *testing.T) {
	dir := t.TempDir()
	src := "c1,c2,c3,c4,c5,c6,c7,c8\n1,2,3,4,5,6,7,8\n2,3,4,5,6,7,8,9\n"

	res, err := Analyze(load(t, src), filepath.Join(dir, "r.html"), Options{Logger: quiet()})
	require.NoError(t, err)
	assert.Len(t, res.DistributionPaths, DefaultDistributionCount)
	assert.NoFileExists(t, filepath.Join(dir, "c7_distribution.png"))

	res, err = Analyze(load(t, src), filepath.Join(dir, "r.html"), Options{DefaultDistributionCount: 2, Logger: quiet()})
	require.NoError(t, err)
	assert.Len(t, res.DistributionPaths, 2)
}

func TestAnalyzeFilesystemError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Analyze(load(t, scenarioCSV), filepath.Join(blocker, "report.html"), Options{Logger: quiet()})
	var fse *FilesystemError
	require.True(t, errors.As(err, &fse))
	assert.Equal(t, "mkdir", fse.Op)
}

func TestAnalyzeWritesMarkdown(t *testing.T) {
	dir := t.TempDir()
	md := filepath.Join(dir, "notes", "summary.md")

	res, err := Analyze(load(t, scenarioCSV), filepath.Join(dir, "r.html"), Options{MarkdownPath: md, Logger: quiet()})
	require.NoError(t, err)
	assert.Equal(t, md, res.MarkdownPath)
	b, err := os.ReadFile(md)
	require.NoError(t, err)
	assert.Contains(t, string(b), "# Dataset Summary")
}

func TestDocumentRender(t *testing.T) {
	doc := NewDocument("T & Co")
	doc.Add(ListSection{Title: "Empty"}).
		Add(ListSection{Title: "Names", Items: []string{"<b>"}}).
		Add(GallerySection{Title: "Pics", Width: 100}).
		Add(TableSection{Title: "Tab", Header: []string{"h"}, Rows: [][]string{{"v"}}})
	require.Len(t, doc.Sections(), 4)

	b, err := doc.Bytes()
	require.NoError(t, err)
	page := string(b)
	assert.Contains(t, page, "<title>T &amp; Co</title>")
	assert.Contains(t, page, "<h2>1. Empty</h2>\n<p>None</p>")
	assert.Contains(t, page, "<li>&lt;b&gt;</li>")
	assert.Contains(t, page, "<h2>3. Pics</h2>\n<p>None</p>")
	assert.Contains(t, page, "<th>h</th>")
	assert.Contains(t, page, "<td>v</td>")
}
