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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/noh/InputParameters"
	"github.com/notargets/noh/noh"
)

type EvaluateOptions struct {
	Title    string
	Params   noh.Parameters
	Sampling InputParameters.Sampling
	Parallel int
	Output   string
}

// EvaluateCmd represents the evaluate command
var EvaluateCmd = &cobra.Command{
	Use:     "evaluate",
	Aliases: []string{"eval"},
	Short:   "Sample the exact solution along a radial line and write CSV",
	Long: `
Samples the exact solution at NumPoints radii on [RMin, RMax] along the natural
axis of the geometry and writes x, y, z, density, pressure, sie and velocity
components as CSV. Parameters come from flags, the config file, or a YAML input
file (-I), which overrides the others:

########################################
Title: "Spherical Noh"
Geometry: spherical
Gamma: 1.6666666666666667
U0: -1.
Rho0: 1.
Time: 0.6
RMin: 0.
RMax: 1.
NumPoints: 101
########################################
`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			opts *EvaluateOptions
		)
		if opts, err = evaluateOptions(cmd); err != nil {
			return
		}
		if dir, _ := cmd.Flags().GetString("cpuprofile"); dir != "" {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
		}
		return RunEvaluate(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	},
}

func init() {
	rootCmd.AddCommand(EvaluateCmd)
	def := InputParameters.DefaultSampling()
	EvaluateCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the problem parameters and sampling")
	EvaluateCmd.Flags().Float64P("time", "t", def.Time, "evaluation time, must be > 0")
	EvaluateCmd.Flags().Float64("rMin", def.RMin, "smallest sample radius")
	EvaluateCmd.Flags().Float64("rMax", def.RMax, "largest sample radius")
	EvaluateCmd.Flags().IntP("n", "n", def.NumPoints, "number of sample points")
	EvaluateCmd.Flags().IntP("parallel", "p", 0, "number of parallel workers, 0 = number of CPUs")
	EvaluateCmd.Flags().StringP("output", "o", "", "CSV output file, default stdout")
	EvaluateCmd.Flags().String("cpuprofile", "", "write a CPU profile into this directory")
}

func evaluateOptions(cmd *cobra.Command) (opts *EvaluateOptions, err error) {
	opts = &EvaluateOptions{}
	if opts.Params, err = solverParameters(); err != nil {
		return
	}
	opts.Sampling.Time, _ = cmd.Flags().GetFloat64("time")
	opts.Sampling.RMin, _ = cmd.Flags().GetFloat64("rMin")
	opts.Sampling.RMax, _ = cmd.Flags().GetFloat64("rMax")
	opts.Sampling.NumPoints, _ = cmd.Flags().GetInt("n")
	opts.Parallel, _ = cmd.Flags().GetInt("parallel")
	opts.Output, _ = cmd.Flags().GetString("output")
	icFile, _ := cmd.Flags().GetString("inputConditionsFile")
	if len(icFile) != 0 {
		if err = opts.applyInputFile(icFile); err != nil {
			return
		}
	}
	err = opts.Sampling.Validate()
	return
}

func (opts *EvaluateOptions) applyInputFile(name string) (err error) {
	var (
		data []byte
		ip   = &InputParameters.InputParametersNoh{}
	)
	if data, err = os.ReadFile(name); err != nil {
		return
	}
	if err = ip.Parse(data); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if opts.Params, err = ip.Parameters(opts.Params); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if opts.Sampling, err = ip.Sampling(opts.Sampling); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	opts.Title = ip.Title
	return
}

// RunEvaluate writes the sampled solution as CSV to stdout or opts.Output, and
// echoes the parameters and the jump conditions to info.
func RunEvaluate(stdout, info io.Writer, opts *EvaluateOptions) (err error) {
	var (
		s   *noh.Solver
		sol *noh.ExactSolution
		sm  = opts.Sampling
	)
	if s, err = noh.NewSolver(opts.Params); err != nil {
		return
	}
	(&InputParameters.InputParametersNoh{Title: opts.Title}).Print(info, opts.Params, sm)
	x, y, z := noh.LineSamples(opts.Params.Geometry, sm.RMin, sm.RMax, sm.NumPoints)
	logger.Info("evaluating Noh solution",
		zap.Stringer("geometry", opts.Params.Geometry),
		zap.Float64("gamma", opts.Params.Gamma),
		zap.Float64("t", sm.Time),
		zap.Int("samples", len(x)),
		zap.Int("parallel", opts.Parallel))
	if sol, err = s.EvaluateParallel(x, y, z, sm.Time, opts.Parallel); err != nil {
		return
	}
	for _, jc := range sol.Jumps {
		logger.Debug("jump condition",
			zap.String("label", jc.Label),
			zap.Float64("location", jc.Location),
			zap.Float64("lambda", jc.LambdaShock))
		fmt.Fprint(info, jc.String())
	}
	w, closer, err := openOutput(stdout, opts.Output)
	if err != nil {
		return
	}
	if err = sol.WriteCSV(w); err != nil {
		_ = closer()
		return
	}
	return closer()
}
