package noh

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolver(t *testing.T) {
	{ // Defaults
		p := DefaultParameters()
		assert.Equal(t, Spherical, p.Geometry)
		assert.Equal(t, 5./3., p.Gamma)
		assert.Equal(t, -1., p.U0)
		assert.Equal(t, 1., p.Rho0)
		s, err := NewSolver(p)
		require.NoError(t, err)
		assert.Equal(t, p, s.Parameters())
		assert.InDelta(t, 1./3., s.LambdaShock(), 1.e-15)
		assert.InDelta(t, 2./3., s.ShockRadius(2), 1.e-15)
	}
	{ // Presets differ only in geometry
		assert.Equal(t, Planar, PlanarConfig().Geometry)
		assert.Equal(t, Cylindrical, CylindricalConfig().Geometry)
		assert.Equal(t, Spherical, SphericalConfig().Geometry)
		for _, p := range []Parameters{PlanarConfig(), CylindricalConfig(), SphericalConfig()} {
			assert.Equal(t, 5./3., p.Gamma)
			_, err := NewSolver(p)
			assert.NoError(t, err)
		}
	}
}

func TestNewSolverRejects(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(p *Parameters)
		param string
	}{
		{"geometry 0", func(p *Parameters) { p.Geometry = 0 }, "geometry"},
		{"geometry 4", func(p *Parameters) { p.Geometry = 4 }, "geometry"},
		{"u0 zero", func(p *Parameters) { p.U0 = 0 }, "u0"},
		{"u0 positive", func(p *Parameters) { p.U0 = 1 }, "u0"},
		{"u0 NaN", func(p *Parameters) { p.U0 = math.NaN() }, "u0"},
		{"u0 -Inf", func(p *Parameters) { p.U0 = math.Inf(-1) }, "u0"},
		{"gamma one", func(p *Parameters) { p.Gamma = 1 }, "gamma"},
		{"rho0 zero", func(p *Parameters) { p.Rho0 = 0 }, "rho0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mod(&p)
			s, err := NewSolver(p)
			assert.Nil(t, s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))
			var pe *ParameterError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.param, pe.Name)
		})
	}
}

func TestNewGeometry(t *testing.T) {
	for label, want := range map[string]Geometry{
		"planar": Planar, "Slab": Planar, "1": Planar,
		"cylindrical": Cylindrical, " 2 ": Cylindrical,
		"SPHERICAL": Spherical, "3": Spherical,
	} {
		g, err := NewGeometry(label)
		assert.NoError(t, err, label)
		assert.Equal(t, want, g, label)
	}
	for _, label := range []string{"0", "4", "-1", "999", "conical", ""} {
		_, err := NewGeometry(label)
		assert.ErrorIs(t, err, ErrInvalidParameter, label)
	}
	assert.Equal(t, "cylindrical", Cylindrical.String())
	assert.Equal(t, "Geometry(7)", Geometry(7).String())
}
