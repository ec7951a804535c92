package noh

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LineSamples places n points evenly in radius on [rmin, rmax] along the
// geometry's natural axis: x for planar, the x=y diagonal for cylindrical and
// the x=y=z diagonal for spherical.
func LineSamples(g Geometry, rmin, rmax float64, n int) (x, y, z []float64) {
	var (
		r = span(rmin, rmax, n)
		c float64
	)
	x, y, z = make([]float64, n), make([]float64, n), make([]float64, n)
	switch g {
	case Planar:
		copy(x, r)
		return
	case Cylindrical:
		c = 1 / math.Sqrt2
		floats.ScaleTo(x, c, r)
		copy(y, x)
	default:
		c = 1 / math.Sqrt(3)
		floats.ScaleTo(x, c, r)
		copy(y, x)
		copy(z, x)
	}
	return
}

// LambdaSamples places n points evenly on [0, 1].
func LambdaSamples(n int) []float64 {
	return span(0, 1, n)
}

func span(lo, hi float64, n int) (v []float64) {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
