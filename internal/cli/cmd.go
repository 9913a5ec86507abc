/*
Copyright © 2026 the fvmhd2d authors.
This file is part of fvmhd2d.

fvmhd2d is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

fvmhd2d is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with fvmhd2d.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package cli wires a cobra command tree and a viper-backed configuration
// record around fvmhd2d, following inmaputil/cmd.go's Cfg pattern: a
// struct embedding *viper.Viper, one cobra.Command per subcommand, and a
// PersistentPreRunE that loads the config file before the command runs.
package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fvmhd/fvmhd2d"
)

// version is set at release time by the build; it mirrors inmap/main.go's
// bare package-level Version string.
var version = "dev"

// Cfg holds the command tree and the viper-backed configuration store, per
// inmaputil/cmd.go's Cfg.
type Cfg struct {
	*viper.Viper

	Root    *cobra.Command
	runCmd  *cobra.Command
	verCmd  *cobra.Command
}

// fileConfig mirrors the on-disk TOML shape of a run configuration. It is
// decoded with BurntSushi/toml, then layered under viper's flag/env
// overlay so that command-line flags and FVMHD2D_-prefixed environment
// variables can override anything a config file sets.
type fileConfig struct {
	Nx, Ny      int
	Nghosts     int
	Xmin, Xmax  float64
	Ymin, Ymax  float64
	Gamma       float64
	CFL         float64
	Tend        float64
	Problem     string
	MHD         bool
	BoundaryX   string
	BoundaryY   string
	Reconstruct string
	TimeStep    string
	Riemann     string
	Smallr      float64
	Epsilon     float64
	SaveFreq    int
	LogFreq     int
	OutputDir   string
}

// New builds the command tree. log is used for run-time reporting; a nil
// logger falls back to logrus's standard logger.
func New(log logrus.FieldLogger) *Cfg {
	if log == nil {
		log = logrus.StandardLogger()
	}
	cfg := &Cfg{Viper: viper.New()}
	cfg.SetEnvPrefix("FVMHD2D")
	cfg.AutomaticEnv()

	cfg.Root = &cobra.Command{
		Use:   "fvmhd2d",
		Short: "A 2-D finite-volume Euler/MHD solver.",
		Long: `fvmhd2d integrates the 2-D compressible Euler equations, or ideal MHD
with GLM divergence cleaning, on a uniform Cartesian grid using a
directionally-split Godunov scheme.

Configuration can be provided with a TOML file via --config, with
command-line flags, or with FVMHD2D_-prefixed environment variables.
Flags and environment variables take precedence over the config file.`,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfigFile(cfg)
		},
	}

	cfg.verCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print the version number",
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fvmhd2d v%s\n", version)
		},
	}

	cfg.runCmd = &cobra.Command{
		Use:               "run",
		Short:             "Run a simulation to completion.",
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cfg, log)
		},
	}
	addRunFlags(cfg.runCmd, cfg.Viper)

	cfg.Root.PersistentFlags().String("config", "", "path to a TOML configuration file")
	cfg.BindPFlag("config", cfg.Root.PersistentFlags().Lookup("config"))

	cfg.Root.AddCommand(cfg.verCmd, cfg.runCmd)
	return cfg
}

// addRunFlags registers one pflag per configuration field, bound into v,
// following cmd.go's per-option set.Xxx/BindPFlag idiom.
func addRunFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()
	flags.Int("nx", 0, "number of domain cells in x")
	flags.Int("ny", 0, "number of domain cells in y")
	flags.Int("nghosts", 2, "number of ghost cells on each side")
	flags.Float64("xmin", 0, "domain lower x bound")
	flags.Float64("xmax", 1, "domain upper x bound")
	flags.Float64("ymin", 0, "domain lower y bound")
	flags.Float64("ymax", 1, "domain upper y bound")
	flags.Float64("gamma", 1.4, "adiabatic index")
	flags.Float64("cfl", 0.5, "CFL number in (0,1]")
	flags.Float64("tend", 0, "end time of the simulation")
	flags.String("problem", "", "registered problem name")
	flags.Bool("mhd", false, "enable magnetohydrodynamics")
	flags.String("boundaryx", "absorbing", "x boundary kind: absorbing, reflecting or periodic")
	flags.String("boundaryy", "absorbing", "y boundary kind: absorbing, reflecting or periodic")
	flags.String("reconstruction", "pcm", "reconstruction kind: pcm or plm")
	flags.String("timestepping", "euler", "time-stepping scheme: euler or rk2")
	flags.String("riemann", "hll", "riemann solver: hll or fivewaves")
	flags.Float64("smallr", 1e-10, "density floor")
	flags.Float64("epsilon", 1e-6, "regularization epsilon for the five-wave solver")
	flags.Int("savefreq", 10, "write output every N iterations (0 disables periodic saves)")
	flags.Int("logfreq", 1, "log progress every N iterations")
	flags.String("outputdir", "", "directory for NetCDF output; empty disables output")

	for _, name := range []string{
		"nx", "ny", "nghosts", "xmin", "xmax", "ymin", "ymax", "gamma", "cfl",
		"tend", "problem", "mhd", "boundaryx", "boundaryy", "reconstruction",
		"timestepping", "riemann", "smallr", "epsilon", "savefreq", "logfreq",
		"outputdir",
	} {
		v.BindPFlag(name, flags.Lookup(name))
	}
}

// loadConfigFile decodes the --config TOML file, if one was given, and
// seeds it into viper as defaults so that flags and environment variables
// set explicitly by the caller still win, following cmd.go's setConfig.
func loadConfigFile(cfg *Cfg) error {
	path := cfg.GetString("config")
	if path == "" {
		return nil
	}
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("fvmhd2d: reading configuration file %s: %w", path, err)
	}
	defaults := map[string]interface{}{
		"nx": fc.Nx, "ny": fc.Ny, "nghosts": fc.Nghosts,
		"xmin": fc.Xmin, "xmax": fc.Xmax, "ymin": fc.Ymin, "ymax": fc.Ymax,
		"gamma": fc.Gamma, "cfl": fc.CFL, "tend": fc.Tend,
		"problem": fc.Problem, "mhd": fc.MHD,
		"boundaryx": fc.BoundaryX, "boundaryy": fc.BoundaryY,
		"reconstruction": fc.Reconstruct, "timestepping": fc.TimeStep,
		"riemann": fc.Riemann, "smallr": fc.Smallr, "epsilon": fc.Epsilon,
		"savefreq": fc.SaveFreq, "logfreq": fc.LogFreq, "outputdir": fc.OutputDir,
	}
	for k, val := range defaults {
		cfg.SetDefault(k, val)
	}
	return nil
}

func parseBoundaryKind(s string) (fvmhd2d.BoundaryKind, error) {
	switch s {
	case "absorbing", "":
		return fvmhd2d.Absorbing, nil
	case "reflecting":
		return fvmhd2d.Reflecting, nil
	case "periodic":
		return fvmhd2d.Periodic, nil
	default:
		return 0, &fvmhd2d.ConfigError{Field: "boundary", Reason: "must be absorbing, reflecting or periodic, got " + s}
	}
}

func parseReconstructionKind(s string) (fvmhd2d.ReconstructionKind, error) {
	switch s {
	case "pcm", "":
		return fvmhd2d.PCM, nil
	case "plm":
		return fvmhd2d.PLM, nil
	default:
		return 0, &fvmhd2d.ConfigError{Field: "reconstruction", Reason: "must be pcm or plm, got " + s}
	}
}

func parseTimeSteppingKind(s string) (fvmhd2d.TimeSteppingKind, error) {
	switch s {
	case "euler", "":
		return fvmhd2d.Euler, nil
	case "rk2":
		return fvmhd2d.RK2, nil
	default:
		return 0, &fvmhd2d.ConfigError{Field: "timestepping", Reason: "must be euler or rk2, got " + s}
	}
}

func parseRiemannSolverKind(s string) (fvmhd2d.RiemannSolverKind, error) {
	switch s {
	case "hll", "":
		return fvmhd2d.HLL, nil
	case "fivewaves":
		return fvmhd2d.FiveWaves, nil
	default:
		return 0, &fvmhd2d.ConfigError{Field: "riemann", Reason: "must be hll or fivewaves, got " + s}
	}
}

// buildConfig assembles an fvmhd2d.Config from the bound viper values.
func buildConfig(v *viper.Viper) (fvmhd2d.Config, error) {
	cfg := fvmhd2d.DefaultConfig()
	cfg.Nx = v.GetInt("nx")
	cfg.Ny = v.GetInt("ny")
	cfg.Nghosts = v.GetInt("nghosts")
	cfg.Xmin = v.GetFloat64("xmin")
	cfg.Xmax = v.GetFloat64("xmax")
	cfg.Ymin = v.GetFloat64("ymin")
	cfg.Ymax = v.GetFloat64("ymax")
	cfg.Gamma = v.GetFloat64("gamma")
	cfg.CFL = v.GetFloat64("cfl")
	cfg.Tend = v.GetFloat64("tend")
	cfg.ProblemName = v.GetString("problem")
	cfg.MHD = v.GetBool("mhd")
	cfg.Smallr = v.GetFloat64("smallr")
	cfg.Epsilon = v.GetFloat64("epsilon")
	cfg.SaveFreq = v.GetInt("savefreq")
	cfg.LogFrequency = v.GetInt("logfreq")
	cfg.OutputDir = v.GetString("outputdir")

	var err error
	if cfg.BoundaryX, err = parseBoundaryKind(v.GetString("boundaryx")); err != nil {
		return cfg, err
	}
	if cfg.BoundaryY, err = parseBoundaryKind(v.GetString("boundaryy")); err != nil {
		return cfg, err
	}
	if cfg.Reconstruction, err = parseReconstructionKind(v.GetString("reconstruction")); err != nil {
		return cfg, err
	}
	if cfg.TimeStepping, err = parseTimeSteppingKind(v.GetString("timestepping")); err != nil {
		return cfg, err
	}
	if cfg.RiemannSolver, err = parseRiemannSolverKind(v.GetString("riemann")); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runCommand builds a Run from the resolved configuration and drives it to
// completion, mapping error kinds to the exit codes documented in
// SPEC_FULL.md: 2 for configuration/problem errors, 3 for numerical
// failures during the run.
func runCommand(cfg *Cfg, log logrus.FieldLogger) error {
	c, err := buildConfig(cfg.Viper)
	if err != nil {
		os.Exit(2)
	}

	var sink fvmhd2d.Sink
	if c.OutputDir != "" {
		sink, err = fvmhd2d.NetCDFSink(c.OutputDir, false)
		if err != nil {
			return err
		}
	}

	run, err := fvmhd2d.NewRun(c, sink, log)
	if err != nil {
		switch err.(type) {
		case *fvmhd2d.ConfigError, *fvmhd2d.UnknownProblemError:
			os.Exit(2)
		}
		return err
	}

	if err := run.Loop(); err != nil {
		switch err.(type) {
		case *fvmhd2d.NonFiniteStateError, *fvmhd2d.NonPositiveThermoError:
			os.Exit(3)
		}
		return err
	}
	return nil
}
