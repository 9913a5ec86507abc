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

package fvmhd2d

// BoundaryKind is a tagged variant selecting one of the three ghost-fill
// policies. It is a small enum rather than a string tag; the boundary
// filler (boundary.go) switches on it once for every ghost cell it fills.
type BoundaryKind int

const (
	Absorbing BoundaryKind = iota
	Reflecting
	Periodic
)

func (k BoundaryKind) String() string {
	switch k {
	case Absorbing:
		return "absorbing"
	case Reflecting:
		return "reflecting"
	case Periodic:
		return "periodic"
	default:
		return "unknown"
	}
}

// ReconstructionKind selects piecewise-constant or minmod-limited
// piecewise-linear interface reconstruction.
type ReconstructionKind int

const (
	PCM ReconstructionKind = iota
	PLM
)

func (k ReconstructionKind) String() string {
	if k == PLM {
		return "plm"
	}
	return "pcm"
}

// TimeSteppingKind selects the time-integration scheme.
type TimeSteppingKind int

const (
	Euler TimeSteppingKind = iota
	RK2
)

func (k TimeSteppingKind) String() string {
	if k == RK2 {
		return "rk2"
	}
	return "euler"
}

// RiemannSolverKind selects the approximate Riemann solver.
type RiemannSolverKind int

const (
	HLL RiemannSolverKind = iota
	FiveWaves
)

func (k RiemannSolverKind) String() string {
	if k == FiveWaves {
		return "fivewaves"
	}
	return "hll"
}

// Config is the read-only simulation configuration record described in
// spec §6. It is validated once, at startup, by Validate.
type Config struct {
	Nx, Ny  int
	Nghosts int

	Xmin, Xmax, Ymin, Ymax float64

	Gamma float64
	CFL   float64
	Tend  float64

	ProblemName string
	MHD         bool

	BoundaryX, BoundaryY BoundaryKind
	Reconstruction       ReconstructionKind
	TimeStepping         TimeSteppingKind
	RiemannSolver        RiemannSolverKind

	Smallr  float64
	Epsilon float64

	SaveFreq     int
	LogFrequency int

	// OutputDir is the directory NetCDFSink writes save files into. Not
	// present in spec.md's configuration record (output is out of scope
	// for the core) but needed by a complete, runnable binary.
	OutputDir string
}

// DefaultConfig returns a Config populated with the numerical defaults
// named throughout spec.md (smallr=1e-10, epsilon=1e-6) plus Nghosts=2,
// Gamma=1.4, CFL=0.5, SaveFreq=10 and LogFrequency=1, and otherwise
// zero-valued; callers must still set grid size, domain and problem name.
func DefaultConfig() Config {
	return Config{
		Nghosts:      2,
		Gamma:        1.4,
		CFL:          0.5,
		Smallr:       1e-10,
		Epsilon:      1e-6,
		SaveFreq:     10,
		LogFrequency: 1,
	}
}

// Validate checks the configuration for internal contradictions and
// returns a *ConfigError for the first one found, an *UnknownProblemError
// if ProblemName is not registered, or nil. It never mutates c. Once this
// passes, every numerical kernel may assume the configuration is
// self-consistent.
func (c Config) Validate() error {
	if c.Nx <= 0 {
		return &ConfigError{"Nx", "must be positive"}
	}
	if c.Ny <= 0 {
		return &ConfigError{"Ny", "must be positive"}
	}
	if c.Nghosts < 1 {
		return &ConfigError{"Nghosts", "must be at least 1"}
	}
	if c.Reconstruction == PLM && c.Nghosts < 2 {
		return &ConfigError{"Nghosts", "PLM reconstruction needs at least 2 ghost cells"}
	}
	if c.Xmax <= c.Xmin {
		return &ConfigError{"Xmax", "must be greater than Xmin"}
	}
	if c.Ymax <= c.Ymin {
		return &ConfigError{"Ymax", "must be greater than Ymin"}
	}
	if c.Gamma <= 1 {
		return &ConfigError{"Gamma", "must be greater than 1"}
	}
	if c.CFL <= 0 || c.CFL > 1 {
		return &ConfigError{"CFL", "must be in (0,1]"}
	}
	if c.Tend <= 0 {
		return &ConfigError{"Tend", "must be positive"}
	}
	if c.RiemannSolver == HLL && c.MHD {
		return &ConfigError{"RiemannSolver", "HLL does not carry magnetic fluxes; MHD runs must use FiveWaves"}
	}
	if c.Smallr <= 0 {
		return &ConfigError{"Smallr", "must be positive"}
	}
	if _, err := LookupProblem(c.ProblemName); err != nil {
		return err
	}
	return nil
}
