package InputParameters

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/notargets/noh/noh"
)

// InputParametersNoh is a Noh problem read from a YAML file. Omitted values
// fall back to the defaults of noh.DefaultParameters and DefaultSampling.
type InputParametersNoh struct {
	Title     string   `json:"Title"`
	Geometry  string   `json:"Geometry"` // planar, cylindrical, spherical or 1, 2, 3
	Gamma     *float64 `json:"Gamma"`
	U0        *float64 `json:"U0"`
	Rho0      *float64 `json:"Rho0"`
	Time      *float64 `json:"Time"`
	RMin      *float64 `json:"RMin"`
	RMax      *float64 `json:"RMax"`
	NumPoints *int     `json:"NumPoints"`
}

// Sampling is the set of points an evaluation is made at.
type Sampling struct {
	Time       float64
	RMin, RMax float64
	NumPoints  int
}

func DefaultSampling() Sampling {
	return Sampling{
		Time:      0.6,
		RMin:      0,
		RMax:      1,
		NumPoints: 101,
	}
}

func (ip *InputParametersNoh) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Parameters merges the file values over base. The result is not validated;
// noh.NewSolver does that.
func (ip *InputParametersNoh) Parameters(base noh.Parameters) (p noh.Parameters, err error) {
	p = base
	if len(ip.Geometry) != 0 {
		if p.Geometry, err = noh.NewGeometry(ip.Geometry); err != nil {
			return
		}
	}
	setFloat(&p.Gamma, ip.Gamma)
	setFloat(&p.U0, ip.U0)
	setFloat(&p.Rho0, ip.Rho0)
	return
}

func (ip *InputParametersNoh) Sampling(base Sampling) (s Sampling, err error) {
	s = base
	setFloat(&s.Time, ip.Time)
	setFloat(&s.RMin, ip.RMin)
	setFloat(&s.RMax, ip.RMax)
	if ip.NumPoints != nil {
		s.NumPoints = *ip.NumPoints
	}
	err = s.Validate()
	return
}

func (s Sampling) Validate() error {
	switch {
	case s.NumPoints < 1:
		return fmt.Errorf("NumPoints = %d, must be at least 1", s.NumPoints)
	case s.RMin < 0 || s.RMax < s.RMin:
		return fmt.Errorf("radius range [%v, %v] must satisfy 0 <= RMin <= RMax", s.RMin, s.RMax)
	}
	return nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func (ip *InputParametersNoh) Print(w io.Writer, p noh.Parameters, s Sampling) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t= Geometry\n", p.Geometry)
	fmt.Fprintf(w, "%8.5f\t\t= Gamma\n", p.Gamma)
	fmt.Fprintf(w, "%8.5f\t\t= U0\n", p.U0)
	fmt.Fprintf(w, "%8.5f\t\t= Rho0\n", p.Rho0)
	fmt.Fprintf(w, "%8.5f\t\t= Time\n", s.Time)
	fmt.Fprintf(w, "[%v, %v]\t\t= Radius Range\n", s.RMin, s.RMax)
	fmt.Fprintf(w, "[%d]\t\t\t= Number of Points\n", s.NumPoints)
}
