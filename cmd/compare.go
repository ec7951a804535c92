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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/noh/noh"
)

// CompareCmd represents the compare command
var CompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Error norms of a numerical result against the exact solution",
	Long: `
Reads a CSV file with a header row naming any of the columns
x, y, z, density, pressure, sie, velocity_x, velocity_y, velocity_z
(x is required, missing columns are taken as zero), evaluates the exact solution
at the same positions and time, and prints L1, L2 (RMS) and Linf errors.

With --csv the density and sie norms are written as one row of the resolution
study format read by tools/convOrder:

	title,numPts,rhoL1,rhoL2,rhoMAX,sieL1,sieL2,sieMAX`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			p   noh.Parameters
			num *noh.Fields
			f   *os.File
		)
		if p, err = solverParameters(); err != nil {
			return
		}
		name, _ := cmd.Flags().GetString("resultsFile")
		if len(name) == 0 {
			return fmt.Errorf("must supply a results file (-F, --resultsFile) in CSV format")
		}
		if f, err = os.Open(name); err != nil {
			return
		}
		defer f.Close()
		if num, err = noh.ReadFieldsCSV(f); err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		opts := CompareOptions{}
		opts.Time, _ = cmd.Flags().GetFloat64("time")
		opts.CSV, _ = cmd.Flags().GetBool("csv")
		if opts.Title, _ = cmd.Flags().GetString("title"); len(opts.Title) == 0 {
			opts.Title = name
		}
		return RunCompare(cmd.OutOrStdout(), p, num, opts)
	},
}

func init() {
	rootCmd.AddCommand(CompareCmd)
	CompareCmd.Flags().StringP("resultsFile", "F", "", "CSV file with the numerical solution")
	CompareCmd.Flags().Float64P("time", "t", 0.6, "time of the numerical solution, must be > 0")
	CompareCmd.Flags().Bool("csv", false, "write a convergence study CSV row instead of the table")
	CompareCmd.Flags().String("title", "", "study title of the CSV row, defaults to the results file name")
}

type CompareOptions struct {
	Time  float64
	CSV   bool   // resolution study row instead of the norms table
	Title string // study name of the CSV row
}

// CompareCSVHeader names the columns of a resolution study row.
const CompareCSVHeader = "title,numPts,rhoL1,rhoL2,rhoMAX,sieL1,sieL2,sieMAX"

func RunCompare(w io.Writer, p noh.Parameters, num *noh.Fields, opts CompareOptions) (err error) {
	var (
		s *noh.Solver
		c *noh.Comparison
	)
	if s, err = noh.NewSolver(p); err != nil {
		return
	}
	t := opts.Time
	if c, err = s.Compare(num, t); err != nil {
		return
	}
	logger.Info("compared numerical result", zap.Int("samples", c.N), zap.Float64("t", t),
		zap.Float64("densityL1", c.Density.L1))
	if opts.CSV {
		return writeStudyRow(w, opts.Title, c)
	}
	fmt.Fprintf(w, "%s, t = %v, %d samples\n", p, t, c.N)
	fmt.Fprintf(w, "%-12s %14s %14s %14s\n", "field", "L1", "L2", "Linf")
	for _, row := range []struct {
		name string
		n    noh.Norms
	}{
		{"density", c.Density},
		{"pressure", c.Pressure},
		{"sie", c.SIE},
		{"velocity_x", c.VelocityX},
		{"velocity_y", c.VelocityY},
		{"velocity_z", c.VelocityZ},
		{"speed", c.Speed},
	} {
		fmt.Fprintf(w, "%-12s %14.6e %14.6e %14.6e\n", row.name, row.n.L1, row.n.L2, row.n.Linf)
	}
	return
}

func writeStudyRow(w io.Writer, title string, c *noh.Comparison) (err error) {
	cw := csv.NewWriter(w)
	row := []string{title, strconv.Itoa(c.N)}
	for _, v := range []float64{
		c.Density.L1, c.Density.L2, c.Density.Linf,
		c.SIE.L1, c.SIE.L2, c.SIE.Linf,
	} {
		row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
	}
	if err = cw.WriteAll([][]string{strings.Split(CompareCSVHeader, ","), row}); err != nil {
		return
	}
	return cw.Error()
}
