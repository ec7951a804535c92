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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/notargets/noh/noh"
)

var (
	cfgFile string
	logger  = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "noh",
	Short: "Exact solution of the Noh implosion problem",
	Long: `
Evaluates the self-similar solution of the Noh shock implosion problem for an
ideal gas in planar, cylindrical or spherical geometry, for verification of
hydrodynamics codes.

noh evaluate --geometry spherical --time 0.6 > noh.csv`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		config := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var l *zap.Logger
		if l, err = config.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	def := noh.DefaultParameters()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.noh.yaml)")
	pf.BoolP("verbose", "v", false, "debug level logging")
	pf.StringP("geometry", "G", def.Geometry.String(), "planar, cylindrical or spherical (or 1, 2, 3)")
	pf.Float64("gamma", def.Gamma, "adiabatic index, must be > 1")
	pf.Float64("u0", def.U0, "incident velocity, must be < 0")
	pf.Float64("rho0", def.Rho0, "reference density, must be > 0")
	for _, name := range []string{"verbose", "geometry", "gamma", "u0", "rho0"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".noh")
	}
	viper.SetEnvPrefix("noh")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// solverParameters collects the physical parameters from flags, NOH_* env
// variables and the config file, in that order of precedence.
func solverParameters() (p noh.Parameters, err error) {
	if p.Geometry, err = noh.NewGeometry(viper.GetString("geometry")); err != nil {
		return
	}
	p.Gamma = viper.GetFloat64("gamma")
	p.U0 = viper.GetFloat64("u0")
	p.Rho0 = viper.GetFloat64("rho0")
	return
}

// openOutput returns stdout for "" or "-", otherwise creates the named file.
func openOutput(stdout io.Writer, name string) (w io.Writer, closer func() error, err error) {
	if name == "" || name == "-" {
		return stdout, func() error { return nil }, nil
	}
	var f *os.File
	if f, err = os.Create(name); err != nil {
		return
	}
	return f, f.Close, nil
}
