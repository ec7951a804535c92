package noh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Norms are error measures of an approximate field against the exact one.
// L1 is the mean absolute error, L2 the root mean square error.
type Norms struct {
	L1, L2, Linf float64
}

func ErrorNorms(exact, approx []float64) (n Norms, err error) {
	if len(exact) != len(approx) {
		err = fmt.Errorf("%w: len(exact) = %d, len(approx) = %d", ErrShapeMismatch, len(exact), len(approx))
		return
	}
	if len(exact) == 0 {
		return
	}
	N := float64(len(exact))
	n.L1 = floats.Distance(exact, approx, 1) / N
	n.L2 = floats.Distance(exact, approx, 2) / math.Sqrt(N)
	n.Linf = floats.Distance(exact, approx, math.Inf(1))
	return
}

type Comparison struct {
	N                               int
	Density, Pressure, SIE          Norms
	VelocityX, VelocityY, VelocityZ Norms
	Speed                           Norms // radial component
}

// Compare evaluates the exact solution at the positions of a numerical result
// and returns the error norms of each field.
func (s *Solver) Compare(num *Fields, t float64) (c *Comparison, err error) {
	var (
		exact *ExactSolution
		g     = s.p.Geometry
	)
	for _, f := range [][]float64{num.Density, num.Pressure, num.SIE, num.VelocityX, num.VelocityY, num.VelocityZ} {
		if len(f) != num.Len() {
			return nil, fmt.Errorf("%w: numerical field has %d entries, want %d", ErrShapeMismatch, len(f), num.Len())
		}
	}
	if exact, err = s.Evaluate(num.X, num.Y, num.Z, t); err != nil {
		return
	}
	c = &Comparison{N: num.Len()}
	pairs := []struct {
		dst       *Norms
		ex, numer []float64
	}{
		{&c.Density, exact.Density, num.Density},
		{&c.Pressure, exact.Pressure, num.Pressure},
		{&c.SIE, exact.SIE, num.SIE},
		{&c.VelocityX, exact.VelocityX, num.VelocityX},
		{&c.VelocityY, exact.VelocityY, num.VelocityY},
		{&c.VelocityZ, exact.VelocityZ, num.VelocityZ},
		{&c.Speed,
			g.RadialSpeed(exact.X, exact.Y, exact.Z, exact.VelocityX, exact.VelocityY, exact.VelocityZ),
			g.RadialSpeed(num.X, num.Y, num.Z, num.VelocityX, num.VelocityY, num.VelocityZ)},
	}
	for _, p := range pairs {
		if *p.dst, err = ErrorNorms(p.ex, p.numer); err != nil {
			return nil, err
		}
	}
	return
}

// ConvergenceOrder returns the observed order between successive resolutions,
// log(e[i]/e[i+1]) / log(h[i]/h[i+1]).
func ConvergenceOrder(h, e []float64) (order []float64, err error) {
	if len(h) != len(e) || len(h) < 2 {
		err = fmt.Errorf("%w: need matching h and e with at least two entries, have %d and %d",
			ErrShapeMismatch, len(h), len(e))
		return
	}
	for i := range h {
		if !(h[i] > 0) {
			return nil, &ParameterError{Name: "h", Value: h[i], Reason: "resolution must be > 0"}
		}
		if !(e[i] > 0) {
			return nil, &ParameterError{Name: "e", Value: e[i], Reason: "error must be > 0"}
		}
	}
	order = make([]float64, len(h)-1)
	for i := range order {
		order[i] = math.Log(e[i]/e[i+1]) / math.Log(h[i]/h[i+1])
	}
	return
}
