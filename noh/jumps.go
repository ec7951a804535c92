package noh

import (
	"fmt"
	"strings"
)

// FieldJump is the multiplicative value of a dimensionless field on either side
// of the shock. Pre is the shocked (inner) side, Post the undisturbed side.
type FieldJump struct {
	Pre, Post float64
}

type JumpCondition struct {
	Label       string
	LambdaShock float64 // similarity coordinate of the front
	Location    float64 // shock radius at the evaluation time
	Density     FieldJump
	Pressure    FieldJump
	SIE         FieldJump
	Velocity    FieldJump
}

// Jump describes the shock at time t. The factors depend only on gamma and
// geometry and are the one-sided limits of Profile at LambdaShock.
func (s *Solver) Jump(t float64) (jc JumpCondition) {
	var (
		ls    = s.LambdaShock()
		inner = s.shockedState()
		outer = s.inflowState(ls)
	)
	jc = JumpCondition{
		Label:       "Shock",
		LambdaShock: ls,
		Location:    s.ShockRadius(t),
		Density:     FieldJump{inner.Density, outer.Density},
		Pressure:    FieldJump{inner.Pressure, outer.Pressure},
		SIE:         FieldJump{inner.SIE, outer.SIE},
		Velocity:    FieldJump{inner.Velocity, outer.Velocity},
	}
	return
}

func (jc JumpCondition) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at r = %8.5f (lambda = %8.5f)\n", jc.Label, jc.Location, jc.LambdaShock)
	fmt.Fprintf(&b, "%-10s %14s %14s\n", "field", "pre", "post")
	for _, f := range []struct {
		name string
		j    FieldJump
	}{
		{"density", jc.Density},
		{"pressure", jc.Pressure},
		{"sie", jc.SIE},
		{"velocity", jc.Velocity},
	} {
		fmt.Fprintf(&b, "%-10s %14.8g %14.8g\n", f.name, f.j.Pre, f.j.Post)
	}
	return b.String()
}
