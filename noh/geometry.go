package noh

import (
	"math"
)

// RadiusTo writes the symmetry radius of each sample into r:
//
//	planar      r = x
//	cylindrical r = sqrt(x² + y²)
//	spherical   r = sqrt(x² + y² + z²)
//
// Planar samples are expected on x >= 0.
func (g Geometry) RadiusTo(r, x, y, z []float64) {
	switch g {
	case Planar:
		copy(r, x)
	case Cylindrical:
		for i := range r {
			r[i] = math.Hypot(x[i], y[i])
		}
	case Spherical:
		for i := range r {
			r[i] = math.Hypot(math.Hypot(x[i], y[i]), z[i])
		}
	}
}

func (g Geometry) Radius(x, y, z []float64) (r []float64) {
	r = make([]float64, len(x))
	g.RadiusTo(r, x, y, z)
	return
}

// DecomposeTo splits a radial speed into Cartesian components using the
// direction cosines x/r, y/r, z/r. At r = 0 the cosines are taken as zero, so
// the velocity vector at the origin is the zero vector.
func (g Geometry) DecomposeTo(vx, vy, vz, x, y, z, r, speed []float64) {
	cosine := func(a, r float64) float64 {
		if r == 0 {
			return 0
		}
		return a / r
	}
	for i := range speed {
		switch g {
		case Planar:
			vx[i], vy[i], vz[i] = speed[i], 0, 0
		case Cylindrical:
			vx[i] = cosine(x[i], r[i]) * speed[i]
			vy[i] = cosine(y[i], r[i]) * speed[i]
			vz[i] = 0
		case Spherical:
			vx[i] = cosine(x[i], r[i]) * speed[i]
			vy[i] = cosine(y[i], r[i]) * speed[i]
			vz[i] = cosine(z[i], r[i]) * speed[i]
		}
	}
}

// RadialSpeed projects a Cartesian velocity back onto the radial direction.
func (g Geometry) RadialSpeed(x, y, z, vx, vy, vz []float64) (speed []float64) {
	var (
		r = g.Radius(x, y, z)
	)
	speed = make([]float64, len(r))
	for i, ri := range r {
		switch {
		case g == Planar:
			speed[i] = vx[i]
		case ri == 0:
			speed[i] = 0
		case g == Cylindrical:
			speed[i] = (x[i]*vx[i] + y[i]*vy[i]) / ri
		default:
			speed[i] = (x[i]*vx[i] + y[i]*vy[i] + z[i]*vz[i]) / ri
		}
	}
	return
}

// usedCoordinates reports which of x, y, z enter the radius.
func (g Geometry) usedCoordinates() (useY, useZ bool) {
	return g >= Cylindrical, g >= Spherical
}
