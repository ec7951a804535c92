package noh

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/notargets/noh/utils"
)

func TestEvaluateSpherical(t *testing.T) {
	s, err := NewSolver(SphericalConfig())
	require.NoError(t, err)
	var (
		// r = 0.1 inside the shock, r = 0.9 outside
		x = []float64{0.1, 0.9 * 0.6, 0}
		y = []float64{0, 0.9 * 0.8, 0}
		z = []float64{0, 0, 0}
	)
	sol, err := s.Evaluate(x, y, z, 1)
	require.NoError(t, err)
	assert.Equal(t, x, sol.X)
	assert.Equal(t, y, sol.Y)
	assert.Equal(t, z, sol.Z)
	{ // Shocked sample
		relNear(t, 64, sol.Density[0])
		relNear(t, 64./3., sol.Pressure[0])
		assert.Equal(t, 0.5, sol.SIE[0])
		assert.Equal(t, 0., sol.VelocityX[0])
		assert.Equal(t, 0., sol.VelocityY[0])
		assert.Equal(t, 0., sol.VelocityZ[0])
	}
	{ // Undisturbed sample
		relNear(t, math.Pow(1+1/0.9, 2), sol.Density[1])
		assert.Equal(t, 0., sol.Pressure[1])
		assert.Equal(t, 0., sol.SIE[1])
		u0 := s.U0()
		relNear(t, u0*0.6*(-1), sol.VelocityX[1])
		relNear(t, u0*0.8*(-1), sol.VelocityY[1])
		assert.Equal(t, 0., sol.VelocityZ[1])
	}
	{ // Origin has a zero velocity vector
		relNear(t, 64, sol.Density[2])
		assert.Equal(t, 0., sol.VelocityX[2])
		assert.False(t, math.IsNaN(sol.VelocityX[2]))
	}
	require.Len(t, sol.Jumps, 1)
	assert.Equal(t, s.Jump(1), sol.Jumps[0])
	assert.Equal(t, 1., sol.Time)
}

func TestEvaluateCopiesInput(t *testing.T) {
	s, err := NewSolver(PlanarConfig())
	require.NoError(t, err)
	x := []float64{0.1, 0.5}
	sol, err := s.Evaluate(x, make([]float64, 2), make([]float64, 2), 1)
	require.NoError(t, err)
	x[0] = 42
	assert.Equal(t, 0.1, sol.X[0])
}

func TestEvaluateGeometries(t *testing.T) {
	x, y, z := []float64{0, 0.1, 0.3, 0.5, 1, 2}, []float64{0.2, -0.3, 0.1, 0, 1, -2}, []float64{-0.4, 0.1, 0.2, 0.7, 1, 2}
	for _, s := range allSolvers(t) {
		sol, err := s.Evaluate(x, y, z, 0.7)
		require.NoError(t, err)
		r := s.Geometry().Radius(x, y, z)
		switch s.Geometry() {
		case Planar:
			assert.Equal(t, x, r)
			for i := range x {
				assert.Equal(t, 0., sol.VelocityY[i])
				assert.Equal(t, 0., sol.VelocityZ[i])
			}
		case Cylindrical:
			for i := range x {
				relNear(t, math.Sqrt(x[i]*x[i]+y[i]*y[i]), r[i])
				assert.Equal(t, 0., sol.VelocityZ[i])
			}
		}
		speed := s.Geometry().RadialSpeed(x, y, z, sol.VelocityX, sol.VelocityY, sol.VelocityZ)
		p := s.Profile(scaled(r, 1/(0.7*math.Abs(s.U0()))))
		for i := range x {
			relNear(t, s.U0()*p.Velocity[i], speed[i])
			relNear(t, s.Rho0()*p.Density[i], sol.Density[i])
		}
		{ // Coordinates whose squares overflow still have a direction
			big := []float64{1.e200}
			sol, err := s.Evaluate(big, []float64{0}, []float64{0}, 1)
			require.NoError(t, err)
			assert.Equal(t, -s.U0(), sol.VelocityX[0], "%s", s.Geometry())
			relNear(t, s.Rho0(), sol.Density[0])
			big = []float64{3.e200}
			sol, err = s.Evaluate(big, []float64{4.e200}, []float64{0}, 1)
			require.NoError(t, err)
			assert.False(t, math.IsNaN(sol.VelocityX[0]) || math.IsInf(sol.VelocityX[0], 0))
			if s.Geometry() != Planar {
				relNear(t, 0.6*(-s.U0()), sol.VelocityX[0])
				relNear(t, 0.8*(-s.U0()), sol.VelocityY[0])
			}
		}
	}
}

func scaled(v []float64, c float64) (r []float64) {
	r = make([]float64, len(v))
	for i := range v {
		r[i] = c * v[i]
	}
	return
}

func TestEvaluateScaling(t *testing.T) {
	for _, g := range []Geometry{Planar, Cylindrical, Spherical} {
		x, y, z := LineSamples(g, 0, 1, 41)
		base := Parameters{Geometry: g, Gamma: 1.4, U0: -1, Rho0: 1}
		s0, err := NewSolver(base)
		require.NoError(t, err)
		ref, err := s0.Evaluate(x, y, z, 1)
		require.NoError(t, err)
		{ // rho0 -> k·rho0 scales density and pressure with k, nothing else
			k := 3.5
			p := base
			p.Rho0 *= k
			s, err := NewSolver(p)
			require.NoError(t, err)
			sol, err := s.Evaluate(x, y, z, 1)
			require.NoError(t, err)
			for i := range x {
				relNear(t, k*ref.Density[i], sol.Density[i])
				relNear(t, k*ref.Pressure[i], sol.Pressure[i])
				relNear(t, ref.SIE[i], sol.SIE[i])
				relNear(t, ref.VelocityX[i], sol.VelocityX[i])
			}
		}
		{ // u0 -> k·u0 at fixed lam, so t -> t/k
			k := 2.
			p := base
			p.U0 *= k
			s, err := NewSolver(p)
			require.NoError(t, err)
			sol, err := s.Evaluate(x, y, z, 1/k)
			require.NoError(t, err)
			for i := range x {
				relNear(t, ref.Density[i], sol.Density[i])
				relNear(t, k*k*ref.Pressure[i], sol.Pressure[i])
				relNear(t, k*k*ref.SIE[i], sol.SIE[i])
				relNear(t, k*ref.VelocityX[i], sol.VelocityX[i])
				relNear(t, k*ref.VelocityY[i], sol.VelocityY[i])
				relNear(t, k*ref.VelocityZ[i], sol.VelocityZ[i])
			}
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	s, err := NewSolver(CylindricalConfig())
	require.NoError(t, err)
	{ // Shape mismatch
		_, err = s.Evaluate([]float64{1, 2}, []float64{1}, []float64{1, 2}, 1)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	}
	{ // Time must be positive
		for _, tt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err = s.Evaluate([]float64{1}, []float64{1}, []float64{1}, tt)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		}
	}
	{ // NaN in a coordinate that defines the radius
		_, err = s.Evaluate([]float64{1, 2}, []float64{1, math.NaN()}, []float64{0, 0}, 1)
		assert.True(t, errors.Is(err, ErrSingularInput))
		assert.Contains(t, err.Error(), "sample 1")
		_, err = s.EvaluateParallel([]float64{1, 2, 3}, []float64{1, 1, math.Inf(-1)}, []float64{0, 0, 0}, 1, 3)
		assert.ErrorIs(t, err, ErrSingularInput)
	}
	{ // z is not used by cylindrical geometry
		_, err = s.Evaluate([]float64{1}, []float64{1}, []float64{math.NaN()}, 1)
		assert.NoError(t, err)
	}
	{ // Empty input is fine
		sol, err := s.Evaluate(nil, nil, nil, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, sol.Len())
	}
}

func TestEvaluateTinyTime(t *testing.T) {
	for _, s := range allSolvers(t) {
		tt := math.SmallestNonzeroFloat64
		sol, err := s.Evaluate([]float64{0, 1.e-320, 1}, []float64{0, 0, 0}, []float64{0, 0, 0}, tt)
		require.NoError(t, err)
		for i := 0; i < sol.Len(); i++ {
			assert.False(t, math.IsNaN(sol.Density[i]), "%s sample %d", s.Geometry(), i)
			assert.False(t, math.IsNaN(sol.VelocityX[i]), "%s sample %d", s.Geometry(), i)
		}
		// The origin is always inside the shock
		relNear(t, s.Rho0()*s.Profile([]float64{0}).Density[0], sol.Density[0])
		assert.Equal(t, 0., sol.Pressure[1])
		assert.Equal(t, -s.U0(), sol.VelocityX[2])
	}
	{ // t·|u0| underflowing to zero is rejected
		s, err := NewSolver(Parameters{Geometry: Spherical, Gamma: 5. / 3., U0: -0.25, Rho0: 1})
		require.NoError(t, err)
		_, err = s.Evaluate([]float64{0}, []float64{0}, []float64{0}, math.SmallestNonzeroFloat64)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestEvaluateShockBoundary(t *testing.T) {
	for _, s := range allSolvers(t) {
		for _, tt := range []float64{0.6, 1, 3, 7.3} {
			var (
				jc  = s.Jump(tt)
				rs  = jc.Location
				x   = []float64{rs, rs * (1 - 1.e-9)}
				sol *ExactSolution
				err error
			)
			sol, err = s.Evaluate(x, make([]float64, 2), make([]float64, 2), tt)
			require.NoError(t, err)
			// A sample at the shock radius belongs to the undisturbed flow
			relNear(t, s.Rho0()*jc.Density.Post, sol.Density[0])
			assert.Equal(t, 0., sol.Pressure[0])
			assert.Equal(t, -s.U0(), sol.VelocityX[0])
			// Just inside it is shocked
			relNear(t, s.Rho0()*jc.Density.Pre, sol.Density[1])
			assert.Equal(t, 0., sol.VelocityX[1])
		}
	}
}

func TestEvaluateNoNegativeZero(t *testing.T) {
	for _, s := range allSolvers(t) {
		x, y, z := LineSamples(s.Geometry(), 0, 1, 21)
		sol, err := s.Evaluate(x, y, z, 1)
		require.NoError(t, err)
		for _, v := range [][]float64{sol.VelocityX, sol.VelocityY, sol.VelocityZ} {
			for i := range v {
				assert.False(t, v[i] == 0 && math.Signbit(v[i]), "%s sample %d", s.Geometry(), i)
			}
		}
		var buf bytes.Buffer
		require.NoError(t, sol.WriteCSV(&buf))
		assert.NotContains(t, buf.String(), ",-0,")
		assert.NotContains(t, buf.String(), ",-0\n")
	}
}

func TestEvaluateParallel(t *testing.T) {
	defer goleak.VerifyNone(t)
	s, err := NewSolver(SphericalConfig())
	require.NoError(t, err)
	x, y, z := LineSamples(Spherical, 0, 2, 1001)
	ref, err := s.Evaluate(x, y, z, 1.5)
	require.NoError(t, err)
	for _, np := range []int{-1, 1, 2, 7, 32, 5000} {
		sol, err := s.EvaluateParallel(x, y, z, 1.5, np)
		require.NoError(t, err)
		assert.Equal(t, ref, sol, "parallel degree %d", np)
	}
	sol, err := s.EvaluateParallel(nil, nil, nil, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Len())
}

func TestLineSamples(t *testing.T) {
	for _, g := range []Geometry{Planar, Cylindrical, Spherical} {
		x, y, z := LineSamples(g, 0.5, 1.5, 11)
		r := g.Radius(x, y, z)
		assert.InDelta(t, 0.5, r[0], utils.NODETOL)
		assert.InDelta(t, 1.0, r[5], utils.NODETOL)
		assert.InDelta(t, 1.5, r[10], utils.NODETOL)
	}
	x, _, _ := LineSamples(Planar, 0.25, 1, 1)
	assert.Equal(t, []float64{0.25}, x)
	lam := LambdaSamples(5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, lam)
	assert.Empty(t, LambdaSamples(0))
}
