package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultBins is the histogram bin count when none is given.
const DefaultBins = 20

// DefaultMaxCategories caps the bars of a count plot when no cap is given.
const DefaultMaxCategories = 20

// Bar is one category of a count plot.
type Bar struct {
	Label string
	Count int
}

// Histogram draws a histogram of values with a kernel density curve scaled to counts.
// An empty values slice yields a titled figure without data.
func Histogram(column string, values []float64, bins int) (*Figure, error) {
	if bins <= 0 {
		bins = DefaultBins
	}
	f := newFigure(fmt.Sprintf("Distribution of %s", column), DistributionWidth, DistributionHeight)
	f.plot.X.Label.Text = column
	f.plot.Y.Label.Text = "Count"
	if len(values) == 0 {
		return f, nil
	}
	h, err := newHist(values, bins)
	if err != nil {
		return nil, fmt.Errorf("histogram %s: %w", column, err)
	}
	h.FillColor = histFill
	f.plot.Add(h)

	if d := newDensity(values); d != nil {
		lo, hi := minMax(values)
		scale := float64(len(values)) * h.Width
		curve := plotter.NewFunction(func(x float64) float64 { return d.at(x) * scale })
		curve.XMin, curve.XMax = lo, hi
		curve.Samples = 200
		curve.Color = curveLine
		curve.Width = vg.Points(2)
		f.plot.Add(curve)
		if peak := d.peak(lo, hi, curve.Samples) * scale; peak > f.plot.Y.Max {
			f.plot.Y.Max = peak * 1.05
		}
	}
	return f, nil
}

// CountPlot draws horizontal bars, first bar at the top. bars should already be
// ordered by descending count; at most maxBars are drawn.
func CountPlot(column string, bars []Bar, maxBars int) (*Figure, error) {
	if maxBars <= 0 {
		maxBars = DefaultMaxCategories
	}
	f := newFigure(fmt.Sprintf("Distribution of %s", column), DistributionWidth, DistributionHeight)
	f.plot.X.Label.Text = "Count"
	f.plot.Y.Label.Text = column
	if len(bars) == 0 {
		return f, nil
	}
	if len(bars) > maxBars {
		bars = bars[:maxBars]
	}
	n := len(bars)
	vals := make(plotter.Values, n)
	labels := make([]string, n)
	// NominalY puts the first label at the bottom, so reverse.
	for i, b := range bars {
		vals[n-1-i] = float64(b.Count)
		labels[n-1-i] = b.Label
	}
	width := vg.Length(math.Min(24, 320/float64(n)))
	bc, err := plotter.NewBarChart(vals, width)
	if err != nil {
		return nil, fmt.Errorf("count plot %s: %w", column, err)
	}
	bc.Horizontal = true
	bc.Color = set2[1]
	bc.LineStyle.Width = 0
	f.plot.Add(bc)
	f.plot.NominalY(labels...)
	return f, nil
}

// newHist bins values; a single unit-wide bin centred on the value is used when all values are equal.
func newHist(values []float64, bins int) (*plotter.Histogram, error) {
	lo, hi := minMax(values)
	if lo != hi {
		return plotter.NewHist(plotter.Values(values), bins)
	}
	return &plotter.Histogram{
		Bins:      []plotter.HistogramBin{{Min: lo - 0.5, Max: lo + 0.5, Weight: float64(len(values))}},
		Width:     1,
		LineStyle: plotter.DefaultLineStyle,
	}, nil
}

func minMax(vals []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
