package noh

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Geometry uint8

const (
	Planar Geometry = iota + 1
	Cylindrical
	Spherical
)

var geometryNames = map[string]Geometry{
	"planar":      Planar,
	"slab":        Planar,
	"cylindrical": Cylindrical,
	"spherical":   Spherical,
}

func (g Geometry) String() string {
	switch g {
	case Planar:
		return "planar"
	case Cylindrical:
		return "cylindrical"
	case Spherical:
		return "spherical"
	}
	return fmt.Sprintf("Geometry(%d)", uint8(g))
}

func (g Geometry) Valid() bool {
	return g >= Planar && g <= Spherical
}

// NewGeometry accepts a name ("planar", "cylindrical", "spherical") or the
// numeric symmetry index "1", "2", "3".
func NewGeometry(label string) (g Geometry, err error) {
	var (
		ok  bool
		key = strings.ToLower(strings.TrimSpace(label))
	)
	if g, ok = geometryNames[key]; ok {
		return
	}
	var n int
	if n, err = strconv.Atoi(key); err != nil {
		err = &ParameterError{Name: "geometry", Value: math.NaN(), Reason: fmt.Sprintf("unknown geometry %q", label)}
		return
	}
	g = Geometry(n)
	if n < 0 || n > math.MaxUint8 || !g.Valid() {
		err = &ParameterError{Name: "geometry", Value: float64(n), Reason: "must be 1, 2 or 3"}
	}
	return
}

// Parameters are the physical inputs of the Noh problem.
type Parameters struct {
	Geometry Geometry
	Gamma    float64 // adiabatic index, > 1
	U0       float64 // incident velocity, < 0
	Rho0     float64 // reference density, > 0
}

func DefaultParameters() Parameters {
	return Parameters{
		Geometry: Spherical,
		Gamma:    5. / 3.,
		U0:       -1,
		Rho0:     1,
	}
}

func PlanarConfig() (p Parameters) {
	p = DefaultParameters()
	p.Geometry = Planar
	return
}

func CylindricalConfig() (p Parameters) {
	p = DefaultParameters()
	p.Geometry = Cylindrical
	return
}

func SphericalConfig() (p Parameters) {
	return DefaultParameters()
}

func (p Parameters) Validate() error {
	switch {
	case !p.Geometry.Valid():
		return &ParameterError{Name: "geometry", Value: float64(p.Geometry), Reason: "must be 1, 2 or 3"}
	case !(p.Gamma > 1) || math.IsInf(p.Gamma, 0):
		return &ParameterError{Name: "gamma", Value: p.Gamma, Reason: "must be finite and > 1"}
	case !(p.U0 < 0) || math.IsInf(p.U0, 0):
		return &ParameterError{Name: "u0", Value: p.U0, Reason: "must be finite and < 0"}
	case !(p.Rho0 > 0) || math.IsInf(p.Rho0, 0):
		return &ParameterError{Name: "rho0", Value: p.Rho0, Reason: "must be finite and > 0"}
	}
	return nil
}

// Solver evaluates the Noh similarity solution. It holds a validated copy of
// its Parameters and is safe for concurrent use.
type Solver struct {
	p Parameters
}

func NewSolver(p Parameters) (s *Solver, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	s = &Solver{p: p}
	return
}

func (s *Solver) Parameters() Parameters { return s.p }
func (s *Solver) Geometry() Geometry     { return s.p.Geometry }
func (s *Solver) Gamma() float64         { return s.p.Gamma }
func (s *Solver) U0() float64            { return s.p.U0 }
func (s *Solver) Rho0() float64          { return s.p.Rho0 }

// LambdaShock is the similarity coordinate of the shock, (gamma-1)/2. Every
// piecewise field in the package switches branch at this value.
func (s *Solver) LambdaShock() float64 {
	return lambdaShock(s.p.Gamma)
}

// ShockRadius is the shock position at time t.
func (s *Solver) ShockRadius(t float64) float64 {
	return s.LambdaShock() * math.Abs(s.p.U0) * t
}

func lambdaShock(gamma float64) float64 {
	return 0.5 * (gamma - 1)
}

func (p Parameters) String() string {
	return fmt.Sprintf("geometry = %s, gamma = %v, u0 = %v, rho0 = %v", p.Geometry, p.Gamma, p.U0, p.Rho0)
}
