package analysis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
)

// WriteMarkdown renders the summary as a compact Markdown document.
func (s *Summary) WriteMarkdown(w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1("Dataset Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"File", safeName(s.Name)},
			{"Rows", strconv.Itoa(s.Rows)},
			{"Columns", strconv.Itoa(s.Columns)},
			{"Columns after cleaning", strconv.Itoa(cleanedWidth(s))},
		},
	})
	md.PlainText("")

	writeList(md, "Columns with Missing Values", s.Missing)
	writeList(md, "Numeric Columns", s.Numeric)
	writeList(md, "Categorical Columns", s.Categorical)
	writeList(md, "Duplicate Columns", s.Duplicates)
	writeList(md, "Constant Columns", s.Constant)

	if len(s.Profiles) > 0 {
		md.H2("Schema")
		rows := make([][]string, 0, len(s.Profiles))
		for _, p := range s.Profiles {
			rows = append(rows, []string{
				safeVal(safeName(p.Name)),
				p.Kind.String(),
				strconv.Itoa(p.NonNull),
				p.MissingPercent(),
				strconv.Itoa(p.Distinct),
				safeVal(p.Details()),
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Column", "Kind", "Non-null", "Missing", "Distinct", "Details"},
			Rows:   rows,
		})
	}
	return md.Build()
}

// Markdown returns the rendered summary as a string.
func (s *Summary) Markdown() string {
	var b strings.Builder
	_ = s.WriteMarkdown(&b)
	return b.String()
}

func writeList(md *markdown.Markdown, title string, names []string) {
	md.H2(title)
	if len(names) == 0 {
		md.PlainText("None")
		md.PlainText("")
		return
	}
	items := make([]string, len(names))
	for i, n := range names {
		items[i] = safeName(n)
	}
	md.BulletList(items...)
	md.PlainText("")
}

func cleanedWidth(s *Summary) int {
	if s.Cleaned == nil {
		return s.Columns
	}
	return s.Cleaned.Width()
}

// MissingPercent formats the share of absent cells, e.g. "12.5%".
func (p ColumnProfile) MissingPercent() string {
	total := p.NonNull + p.Missing
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(p.Missing)*100.0/float64(total))
}

// Details formats the numeric summary or the top categories of a column.
func (p ColumnProfile) Details() string {
	if n := p.Numeric; n != nil {
		return fmt.Sprintf("min %.4g, q1 %.4g, median %.4g, q3 %.4g, max %.4g, mean %.4g, std %.4g",
			n.Min, n.Q1, n.Median, n.Q3, n.Max, n.Mean, n.Std)
	}
	if len(p.TopValues) == 0 {
		return ""
	}
	parts := make([]string, len(p.TopValues))
	for i, kv := range p.TopValues {
		parts[i] = fmt.Sprintf("%s(%d)", kv.Value, kv.Count)
	}
	return "top: " + strings.Join(parts, ", ")
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
