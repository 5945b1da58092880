// Package chart renders single-column figures to PNG.
//
// Every figure owns its plot and canvas; nothing is shared between figures.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure sizes.
const (
	BoxplotWidth       = 6 * vg.Inch
	BoxplotHeight      = 4 * vg.Inch
	DistributionWidth  = 10 * vg.Inch
	DistributionHeight = 6 * vg.Inch
)

// set2 is a qualitative palette for fills and bars.
var set2 = []color.Color{
	color.RGBA{R: 0x66, G: 0xc2, B: 0xa5, A: 0xff},
	color.RGBA{R: 0xfc, G: 0x8d, B: 0x62, A: 0xff},
	color.RGBA{R: 0x8d, G: 0xa0, B: 0xcb, A: 0xff},
	color.RGBA{R: 0xe7, G: 0x8a, B: 0xc3, A: 0xff},
}

var (
	histFill  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0x99}
	curveLine = color.RGBA{R: 0x1f, G: 0x3a, B: 0x93, A: 0xff}
)

// Figure is a titled plot with a fixed size.
type Figure struct {
	plot   *plot.Plot
	width  vg.Length
	height vg.Length
}

func newFigure(title string, w, h vg.Length) *Figure {
	p := plot.New()
	p.Title.Text = title
	return &Figure{plot: p, width: w, height: h}
}

// Title returns the figure title.
func (f *Figure) Title() string { return f.plot.Title.Text }

// WriteTo draws the figure on a fresh raster canvas and encodes it as PNG.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	c := vgimg.New(f.width, f.height)
	f.plot.Draw(draw.New(c))
	n, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("encode png: %w", err)
	}
	return n, nil
}

// PNG returns the encoded figure.
func (f *Figure) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
