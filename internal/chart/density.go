package chart

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// density is a Gaussian kernel density estimate with Scott's bandwidth.
type density struct {
	points    []float64
	bandwidth float64
}

// newDensity returns nil when fewer than two points are given or the points do not vary.
func newDensity(points []float64) *density {
	if len(points) < 2 {
		return nil
	}
	sd := stat.StdDev(points, nil)
	if sd == 0 || math.IsNaN(sd) {
		return nil
	}
	bw := sd * math.Pow(float64(len(points)), -0.2)
	return &density{points: points, bandwidth: bw}
}

func (d *density) at(x float64) float64 {
	var sum float64
	for _, p := range d.points {
		sum += distuv.UnitNormal.Prob((x - p) / d.bandwidth)
	}
	return sum / (float64(len(d.points)) * d.bandwidth)
}

// peak samples the density on [lo, hi] and returns the largest value.
func (d *density) peak(lo, hi float64, samples int) float64 {
	if samples < 2 {
		samples = 2
	}
	step := (hi - lo) / float64(samples-1)
	var best float64
	for i := 0; i < samples; i++ {
		best = math.Max(best, d.at(lo+float64(i)*step))
	}
	return best
}
