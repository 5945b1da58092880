package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Boxplot draws a horizontal single-variable boxplot of values.
func Boxplot(column string, values []float64) (*Figure, error) {
	if len(values) == 0 {
		return nil, errors.New("boxplot: no values")
	}
	f := newFigure(fmt.Sprintf("Boxplot for %s", column), BoxplotWidth, BoxplotHeight)
	bp, err := plotter.MakeHorizBoxPlot(vg.Points(60), 0, plotter.Values(values))
	if err != nil {
		return nil, fmt.Errorf("boxplot %s: %w", column, err)
	}
	bp.FillColor = set2[0]
	f.plot.Add(bp)
	f.plot.X.Label.Text = column
	f.plot.HideY()
	return f, nil
}
