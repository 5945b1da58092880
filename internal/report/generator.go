// Package report turns a dataset into a static HTML report with boxplot and
// distribution images stored next to it.
package report

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/KaramelBytes/edareport/internal/analysis"
	"github.com/KaramelBytes/edareport/internal/chart"
	"github.com/KaramelBytes/edareport/internal/dataset"
	"github.com/KaramelBytes/edareport/internal/utils"
)

const (
	// DefaultOutput is the report path used when none is given.
	DefaultOutput = "analysis_report.html"
	// DefaultDistributionCount is how many leading columns get a distribution plot by default.
	DefaultDistributionCount = 6
	// DefaultImageWidth is the display width of gallery images, in pixels.
	DefaultImageWidth = 400

	pageTitle = "Data Analysis Report"
)

// Options control report generation. Zero values select the defaults.
type Options struct {
	// DistributionColumns overrides the first DefaultDistributionCount columns.
	DistributionColumns      []string
	DefaultDistributionCount int
	// ImageDir defaults to the directory holding the HTML file.
	ImageDir      string
	ImageWidth    int
	Bins          int
	MaxCategories int
	// MarkdownPath, when set, also writes the Markdown summary there.
	MarkdownPath string
	Logger       logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.DefaultDistributionCount <= 0 {
		o.DefaultDistributionCount = DefaultDistributionCount
	}
	if o.ImageWidth <= 0 {
		o.ImageWidth = DefaultImageWidth
	}
	if o.Bins <= 0 {
		o.Bins = chart.DefaultBins
	}
	if o.MaxCategories <= 0 {
		o.MaxCategories = chart.DefaultMaxCategories
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}

// Result describes what a run produced.
type Result struct {
	Summary           *analysis.Summary
	OutputPath        string
	BoxplotPaths      []string
	DistributionPaths []string
	MarkdownPath      string
}

// Analyze summarizes ds, renders the plots and writes the HTML report to outputPath.
// Unknown distribution columns are rejected before anything is written.
func Analyze(ds *dataset.Dataset, outputPath string, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	log := opts.Logger
	if outputPath == "" {
		outputPath = DefaultOutput
	}

	distCols := opts.DistributionColumns
	if len(distCols) == 0 {
		distCols = ds.Head(opts.DefaultDistributionCount)
	}
	for _, name := range distCols {
		if _, ok := ds.Column(name); !ok {
			return nil, &MissingColumnError{Column: name, Available: ds.Names()}
		}
	}

	s := analysis.Summarize(ds)
	log.WithField("columns", s.Missing).Info("columns with missing values")
	log.WithFields(logrus.Fields{"numeric": s.Numeric, "categorical": s.Categorical}).Info("column types")
	log.WithField("columns", s.Duplicates).Info("duplicate columns")
	log.WithField("columns", s.Constant).Info("constant columns")
	log.WithFields(logrus.Fields{"rows": s.Rows, "columns": s.Cleaned.Width()}).Info("cleaned dataset")

	htmlDir := filepath.Dir(outputPath)
	imageDir := opts.ImageDir
	if imageDir == "" {
		imageDir = htmlDir
	}
	for _, dir := range []string{htmlDir, imageDir} {
		if err := utils.EnsureDir(dir); err != nil {
			return nil, &FilesystemError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	res := &Result{Summary: s, OutputPath: outputPath}
	written := make(map[string]string) // image path -> column
	claim := func(path, column string) {
		if prev, ok := written[path]; ok && prev != column {
			log.WithFields(logrus.Fields{"path": path, "column": column, "previous": prev}).
				Warn("image file name collides after sanitization; overwriting")
		}
		written[path] = column
	}

	for _, name := range s.BoxplotColumns() {
		col, _ := s.Cleaned.Column(name)
		fig, err := chart.Boxplot(name, col.Floats())
		if err != nil {
			return nil, err
		}
		path := filepath.Join(imageDir, utils.SanitizeFilename(name+"_boxplot.png"))
		claim(path, name)
		if err := writeFigure(fig, path); err != nil {
			return nil, err
		}
		res.BoxplotPaths = append(res.BoxplotPaths, path)
		log.WithField("path", path).Debug("boxplot saved")
	}
	log.WithField("count", len(res.BoxplotPaths)).Info("boxplots generated")

	for _, name := range distCols {
		col, _ := ds.Column(name)
		fig, err := distribution(col, opts)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(imageDir, utils.SanitizeFilename(name+"_distribution.png"))
		claim(path, name)
		if err := writeFigure(fig, path); err != nil {
			return nil, err
		}
		res.DistributionPaths = append(res.DistributionPaths, path)
		log.WithField("path", path).Debug("distribution plot saved")
	}
	log.WithField("count", len(res.DistributionPaths)).Info("distribution plots generated")

	doc, err := Build(s, htmlDir, res.BoxplotPaths, res.DistributionPaths, opts.ImageWidth)
	if err != nil {
		return nil, err
	}
	page, err := doc.Bytes()
	if err != nil {
		return nil, err
	}
	if err := utils.SafeWriteFile(outputPath, page); err != nil {
		return nil, &FilesystemError{Op: "write", Path: outputPath, Err: err}
	}
	log.WithField("path", outputPath).Info("HTML report saved")

	if opts.MarkdownPath != "" {
		if err := utils.EnsureDir(filepath.Dir(opts.MarkdownPath)); err != nil {
			return nil, &FilesystemError{Op: "mkdir", Path: filepath.Dir(opts.MarkdownPath), Err: err}
		}
		if err := utils.SafeWriteFile(opts.MarkdownPath, []byte(s.Markdown())); err != nil {
			return nil, &FilesystemError{Op: "write", Path: opts.MarkdownPath, Err: err}
		}
		res.MarkdownPath = opts.MarkdownPath
		log.WithField("path", opts.MarkdownPath).Info("Markdown summary saved")
	}
	return res, nil
}

// Build assembles the report page. Image paths are linked relative to htmlDir.
func Build(s *analysis.Summary, htmlDir string, boxplots, distributions []string, width int) (*Document, error) {
	boxImgs, err := gallery(htmlDir, boxplots)
	if err != nil {
		return nil, err
	}
	distImgs, err := gallery(htmlDir, distributions)
	if err != nil {
		return nil, err
	}
	doc := NewDocument(pageTitle)
	doc.Add(ListSection{Title: "Columns with Missing Values", Items: s.Missing}).
		Add(ListSection{Title: "Numeric Columns", Items: s.Numeric}).
		Add(ListSection{Title: "Categorical Columns", Items: s.Categorical}).
		Add(ListSection{Title: "Duplicate Columns", Items: s.Duplicates}).
		Add(ListSection{Title: "Constant Columns", Items: s.Constant}).
		Add(GallerySection{Title: "Boxplots", Images: boxImgs, Width: width}).
		Add(GallerySection{Title: "Distributions", Images: distImgs, Width: width}).
		Add(profileTable(s))
	return doc, nil
}

func gallery(htmlDir string, paths []string) ([]Image, error) {
	imgs := make([]Image, 0, len(paths))
	for _, p := range paths {
		src, err := utils.RelLink(htmlDir, p)
		if err != nil {
			return nil, fmt.Errorf("link %s: %w", p, err)
		}
		imgs = append(imgs, Image{Src: src, Alt: filepath.Base(p)})
	}
	return imgs, nil
}

func profileTable(s *analysis.Summary) TableSection {
	t := TableSection{
		Title:  "Column Profile",
		Header: []string{"Column", "Kind", "Non-null", "Missing", "Distinct", "Details"},
	}
	for _, p := range s.Profiles {
		t.Rows = append(t.Rows, []string{
			p.Name,
			p.Kind.String(),
			strconv.Itoa(p.NonNull),
			p.MissingPercent(),
			strconv.Itoa(p.Distinct),
			p.Details(),
		})
	}
	return t
}

func distribution(col *dataset.Column, opts Options) (*chart.Figure, error) {
	if col.IsNumeric() {
		return chart.Histogram(col.Name, col.Floats(), opts.Bins)
	}
	counts := analysis.ValueCounts(col)
	bars := make([]chart.Bar, len(counts))
	for i, c := range counts {
		bars[i] = chart.Bar{Label: c.Value, Count: c.Count}
	}
	return chart.CountPlot(col.Name, bars, opts.MaxCategories)
}

func writeFigure(fig *chart.Figure, path string) error {
	data, err := fig.PNG()
	if err != nil {
		return fmt.Errorf("render %q: %w", fig.Title(), err)
	}
	if err := utils.SafeWriteFile(path, data); err != nil {
		return &FilesystemError{Op: "write", Path: path, Err: err}
	}
	return nil
}
