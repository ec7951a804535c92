package noh

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/noh/utils"
)

// Fields is a struct of parallel arrays, one entry per sample.
type Fields struct {
	X, Y, Z                         []float64
	Density, Pressure, SIE          []float64
	VelocityX, VelocityY, VelocityZ []float64
}

func NewFields(n int) *Fields {
	return &Fields{
		X:         make([]float64, n),
		Y:         make([]float64, n),
		Z:         make([]float64, n),
		Density:   make([]float64, n),
		Pressure:  make([]float64, n),
		SIE:       make([]float64, n),
		VelocityX: make([]float64, n),
		VelocityY: make([]float64, n),
		VelocityZ: make([]float64, n),
	}
}

func (f *Fields) Len() int { return len(f.X) }

type ExactSolution struct {
	Fields
	Time  float64
	Jumps []JumpCondition
}

// Evaluate returns the dimensional solution at the samples (x, y, z) and time t:
//
//	density  = rho0·D(lam)
//	pressure = rho0·u0²·P(lam)
//	sie      = u0²·E(lam)
//	speed    = u0·V(lam), split along the geometry's direction cosines
//
// with lam = r / (t·|u0|) and D, P, E, V from Profile. A sample at or beyond
// ShockRadius(t) is always in the undisturbed flow.
func (s *Solver) Evaluate(x, y, z []float64, t float64) (sol *ExactSolution, err error) {
	if sol, err = s.newSolution(x, y, z, t); err != nil {
		return nil, err
	}
	if err = s.fill(sol, 0, len(x), newWorkspace(len(x))); err != nil {
		return nil, err
	}
	return
}

// EvaluateParallel is Evaluate with the samples split into parallelDegree
// contiguous buckets, each evaluated on its own goroutine. A parallelDegree
// below one uses runtime.NumCPU().
func (s *Solver) EvaluateParallel(x, y, z []float64, t float64, parallelDegree int) (sol *ExactSolution, err error) {
	if sol, err = s.newSolution(x, y, z, t); err != nil {
		return nil, err
	}
	var (
		n = len(x)
		g errgroup.Group
	)
	if parallelDegree < 1 {
		parallelDegree = runtime.NumCPU()
	}
	if parallelDegree > n {
		parallelDegree = n
	}
	if n == 0 {
		return
	}
	pm := utils.NewPartitionMap(parallelDegree, n)
	for bn := 0; bn < pm.ParallelDegree; bn++ {
		var (
			lo, hi = pm.GetBucketRange(bn)
			ws     = newWorkspace(pm.GetBucketDimension(bn))
		)
		g.Go(func() error {
			return s.fill(sol, lo, hi, ws)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return
}

func (s *Solver) newSolution(x, y, z []float64, t float64) (sol *ExactSolution, err error) {
	if len(y) != len(x) || len(z) != len(x) {
		err = fmt.Errorf("%w: len(x) = %d, len(y) = %d, len(z) = %d", ErrShapeMismatch, len(x), len(y), len(z))
		return
	}
	if !(t > 0) || math.IsInf(t, 0) {
		err = &ParameterError{Name: "t", Value: t, Reason: "must be finite and > 0"}
		return
	}
	if !(t*math.Abs(s.p.U0) > 0) {
		err = &ParameterError{Name: "t", Value: t, Reason: "t·|u0| underflows to zero"}
		return
	}
	sol = &ExactSolution{
		Fields: *NewFields(len(x)),
		Time:   t,
		Jumps:  []JumpCondition{s.Jump(t)},
	}
	copy(sol.X, x)
	copy(sol.Y, y)
	copy(sol.Z, z)
	return
}

// workspace is the scratch storage of one bucket.
type workspace struct {
	r, lam, speed []float64
	prof          *Profile
}

func newWorkspace(n int) *workspace {
	return &workspace{
		r:     make([]float64, n),
		lam:   make([]float64, n),
		speed: make([]float64, n),
		prof:  NewProfile(n),
	}
}

// fill evaluates samples [lo, hi) of sol in place. Buckets never overlap, so
// concurrent calls on disjoint ranges share no state.
func (s *Solver) fill(sol *ExactSolution, lo, hi int, ws *workspace) (err error) {
	var (
		g       = s.p.Geometry
		n       = hi - lo
		x, y, z = sol.X[lo:hi], sol.Y[lo:hi], sol.Z[lo:hi]
		r, lam  = ws.r[:n], ws.lam[:n]
		speed   = ws.speed[:n]
		prof    = &Profile{ws.prof.Density[:n], ws.prof.Pressure[:n], ws.prof.SIE[:n], ws.prof.Velocity[:n]}
		u0      = s.p.U0
		tu      = sol.Time * math.Abs(u0)
		ls, rs  = s.LambdaShock(), s.ShockRadius(sol.Time)
		vx      = sol.VelocityX[lo:hi]
		vy      = sol.VelocityY[lo:hi]
		vz      = sol.VelocityZ[lo:hi]
	)
	if i := g.firstNonFinite(x, y, z); i >= 0 {
		return fmt.Errorf("%w: sample %d at (%v, %v, %v)", ErrSingularInput, lo+i, x[i], y[i], z[i])
	}
	g.RadiusTo(r, x, y, z)
	for i := range r {
		// Division keeps lam finite at r = 0 for any t·|u0| > 0
		lam[i] = r[i] / tu
		// Rounding in lam must not pull a sample at ShockRadius(t) into the core
		if lam[i] < ls && rs > 0 && r[i] >= rs {
			lam[i] = ls
		}
	}
	s.profileTo(prof, lam)

	floats.ScaleTo(sol.Density[lo:hi], s.p.Rho0, prof.Density)
	floats.ScaleTo(sol.Pressure[lo:hi], s.p.Rho0*u0*u0, prof.Pressure)
	floats.ScaleTo(sol.SIE[lo:hi], u0*u0, prof.SIE)
	floats.ScaleTo(speed, u0, prof.Velocity)
	g.DecomposeTo(vx, vy, vz, x, y, z, r, speed)
	for _, v := range [][]float64{vx, vy, vz} {
		clearNegativeZero(v)
	}
	return
}

// clearNegativeZero replaces -0 with +0.
func clearNegativeZero(v []float64) {
	for i := range v {
		if v[i] == 0 {
			v[i] = 0
		}
	}
}

// firstNonFinite returns the index of the first sample whose radius-defining
// coordinates are NaN or infinite, or -1.
func (g Geometry) firstNonFinite(x, y, z []float64) int {
	useY, useZ := g.usedCoordinates()
	bad := func(v float64) bool {
		return math.IsNaN(v) || math.IsInf(v, 0)
	}
	for i := range x {
		if bad(x[i]) || (useY && bad(y[i])) || (useZ && bad(z[i])) {
			return i
		}
	}
	return -1
}
