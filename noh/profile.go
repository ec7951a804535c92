package noh

import (
	"github.com/notargets/noh/utils"
)

// Profile holds the dimensionless fields of the similarity solution, one entry
// per similarity coordinate lam = r / (t·|u0|).
type Profile struct {
	Density, Pressure, SIE, Velocity []float64
}

func NewProfile(n int) *Profile {
	return &Profile{
		Density:  make([]float64, n),
		Pressure: make([]float64, n),
		SIE:      make([]float64, n),
		Velocity: make([]float64, n),
	}
}

func (p *Profile) Len() int { return len(p.Density) }

func (p *Profile) set(i int, st state) {
	p.Density[i], p.Pressure[i], p.SIE[i], p.Velocity[i] = st.Density, st.Pressure, st.SIE, st.Velocity
}

// state is the value of the four dimensionless fields at a single lam.
type state struct {
	Density, Pressure, SIE, Velocity float64
}

// Profile evaluates the dimensionless solution at each lam:
//
//	lam <  (gamma-1)/2   shocked core
//	    density  = ((gamma+1)/(gamma-1))^geometry
//	    pressure = (gamma-1)/2 · density        (4^geometry/3 for gamma = 5/3)
//	    sie      = 1/2
//	    velocity = 0
//	lam >= (gamma-1)/2   undisturbed inflow
//	    density  = (1 + 1/lam)^(geometry-1)
//	    pressure = sie = 0
//	    velocity = -1
//
// The threshold itself belongs to the undisturbed branch.
//
// The core pressure is the ideal-gas value (gamma-1)·rho·e. It reduces to the
// often quoted 4^geometry/3 only at gamma = 5/3; for other gamma it differs
// (43.2 rather than 21.33 for gamma = 1.4 in spherical geometry) and stays
// consistent with the shocked density and sie.
func (s *Solver) Profile(lam []float64) (p *Profile) {
	p = NewProfile(len(lam))
	s.profileTo(p, lam)
	return
}

func (s *Solver) profileTo(p *Profile, lam []float64) {
	var (
		ls    = s.LambdaShock()
		inner = s.shockedState()
	)
	for i, l := range lam {
		st := inner
		if !(l < ls) {
			st = s.inflowState(l)
		}
		p.set(i, st)
	}
}

func (s *Solver) compression() float64 {
	return (s.p.Gamma + 1) / (s.p.Gamma - 1)
}

func (s *Solver) shockedState() (st state) {
	st.Density = utils.POW(s.compression(), int(s.p.Geometry))
	st.SIE = 0.5
	// Ideal gas: p = (gamma-1)·rho·e
	st.Pressure = (s.p.Gamma - 1) * st.Density * st.SIE
	return
}

func (s *Solver) inflowDensity(lam float64) float64 {
	return utils.POW(1+1/lam, int(s.p.Geometry)-1)
}

func (s *Solver) inflowState(lam float64) state {
	return state{
		Density:  s.inflowDensity(lam),
		Velocity: -1,
	}
}
