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
	"io"

	"github.com/spf13/cobra"

	"github.com/notargets/noh/noh"
)

// JumpsCmd represents the jumps command
var JumpsCmd = &cobra.Command{
	Use:   "jumps",
	Short: "Print the shock location and jump factors",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			p noh.Parameters
		)
		if p, err = solverParameters(); err != nil {
			return
		}
		t, _ := cmd.Flags().GetFloat64("time")
		return RunJumps(cmd.OutOrStdout(), p, t)
	},
}

func init() {
	rootCmd.AddCommand(JumpsCmd)
	JumpsCmd.Flags().Float64P("time", "t", 1, "time at which the shock is located, must be > 0")
}

func RunJumps(w io.Writer, p noh.Parameters, t float64) (err error) {
	var (
		s *noh.Solver
	)
	if s, err = noh.NewSolver(p); err != nil {
		return
	}
	if !(t > 0) {
		return &noh.ParameterError{Name: "t", Value: t, Reason: "must be > 0"}
	}
	fmt.Fprintf(w, "%s\n", p)
	fmt.Fprint(w, s.Jump(t).String())
	return
}
