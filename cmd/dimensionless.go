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
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/noh/noh"
)

// ProfileCmd represents the profile command
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Write the dimensionless similarity profile on lam in [0, 1] as CSV",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			p noh.Parameters
		)
		if p, err = solverParameters(); err != nil {
			return
		}
		n, _ := cmd.Flags().GetInt("n")
		output, _ := cmd.Flags().GetString("output")
		return RunProfile(cmd.OutOrStdout(), p, n, output)
	},
}

func init() {
	rootCmd.AddCommand(ProfileCmd)
	ProfileCmd.Flags().IntP("n", "n", 101, "number of lam samples")
	ProfileCmd.Flags().StringP("output", "o", "", "CSV output file, default stdout")
}

func RunProfile(stdout io.Writer, p noh.Parameters, n int, output string) (err error) {
	var (
		s *noh.Solver
	)
	if s, err = noh.NewSolver(p); err != nil {
		return
	}
	lam := noh.LambdaSamples(n)
	logger.Debug("profile", zap.Stringer("geometry", p.Geometry), zap.Int("samples", n),
		zap.Float64("lambdaShock", s.LambdaShock()))
	w, closer, err := openOutput(stdout, output)
	if err != nil {
		return
	}
	if err = s.Profile(lam).WriteCSV(w, lam); err != nil {
		_ = closer()
		return
	}
	return closer()
}
