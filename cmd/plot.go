/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"image/color"
	"time"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/noh/noh"
)

// PlotScales are display multipliers applied to each dimensionless field.
type PlotScales struct {
	Density, Pressure, SIE, Velocity float64
}

type PlotSeries struct {
	Name   string
	Values []float64
	Color  color.RGBA
}

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Display the dimensionless profile on lam in [0, 1]",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			p  noh.Parameters
			s  *noh.Solver
			sc PlotScales
		)
		if p, err = solverParameters(); err != nil {
			return
		}
		if s, err = noh.NewSolver(p); err != nil {
			return
		}
		n, _ := cmd.Flags().GetInt("n")
		sc.Density, _ = cmd.Flags().GetFloat64("densityScale")
		sc.Pressure, _ = cmd.Flags().GetFloat64("pressureScale")
		sc.SIE, _ = cmd.Flags().GetFloat64("sieScale")
		sc.Velocity, _ = cmd.Flags().GetFloat64("velocityScale")
		lam := noh.LambdaSamples(n)
		PlotProfile(lam, ProfileSeries(s.Profile(lam), sc))
		for {
			time.Sleep(10 * time.Second)
		}
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().IntP("n", "n", 201, "number of lam samples")
	PlotCmd.Flags().Float64("densityScale", 1./64., "display scale for density")
	PlotCmd.Flags().Float64("pressureScale", 1./32., "display scale for pressure")
	PlotCmd.Flags().Float64("sieScale", 1, "display scale for specific internal energy")
	PlotCmd.Flags().Float64("velocityScale", 1, "display scale for velocity")
}

// ProfileSeries scales each profile field for display.
func ProfileSeries(p *noh.Profile, sc PlotScales) (series []PlotSeries) {
	scale := func(v []float64, c float64) []float64 {
		return floats.ScaleTo(make([]float64, len(v)), c, v)
	}
	return []PlotSeries{
		{fmt.Sprintf("Density x %g", sc.Density), scale(p.Density, sc.Density), utils2.RED},
		{fmt.Sprintf("Pressure x %g", sc.Pressure), scale(p.Pressure, sc.Pressure), color.RGBA{R: 50, G: 0, B: 255}},
		{fmt.Sprintf("SIE x %g", sc.SIE), scale(p.SIE, sc.SIE), color.RGBA{R: 25, G: 255, B: 25}},
		{fmt.Sprintf("Velocity x %g", sc.Velocity), scale(p.Velocity, sc.Velocity), utils2.WHITE},
	}
}

// plotRange pads the extent of all series by ten percent.
func plotRange(series []PlotSeries) (fmin, fmax float32) {
	lo, hi := 0., 0.
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		lo = min(lo, floats.Min(s.Values))
		hi = max(hi, floats.Max(s.Values))
	}
	pad := 0.1 * (hi - lo)
	if pad == 0 {
		pad = 1
	}
	return float32(lo - pad), float32(hi + pad)
}

// polyline converts a curve into the segment list AddLine draws,
// x1, y1, x2, y2 per segment.
func polyline(x, f []float64) (line []float32) {
	for i := 1; i < len(x); i++ {
		line = append(line,
			float32(x[i-1]), float32(f[i-1]),
			float32(x[i]), float32(f[i]))
	}
	return
}

func PlotProfile(lam []float64, series []PlotSeries) {
	var (
		fmin, fmax = plotRange(series)
		ch         = chart2d.NewChart2D(0, 1, fmin, fmax,
			1024, 1024, utils2.WHITE, utils2.BLACK)
		pitch = float32(0.05) * (fmax - fmin)
	)
	ch.AddLine([]float32{0, 0, 1, 0}, utils2.WHITE)
	for i, s := range series {
		ch.AddLine(polyline(lam, s.Values), s.Color)
		tf := assets.NewTextFormatter("NotoSans", "Regular", 24, s.Color, true, false)
		ch.Printf(tf, 0.7, fmax-float32(i+1)*pitch, "%s", s.Name)
	}
}
