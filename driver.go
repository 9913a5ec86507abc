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

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Run owns the mutable simulation state and drives it forward in time,
// grounded on run.go's top-level driving loop: a grid, a configuration,
// an output sink and a logger, stepped until Tend is reached.
type Run struct {
	Cfg     Config
	Grid    *Grid
	Sink    Sink
	Log     logrus.FieldLogger
	stepper *Stepper

	Iteration int
	T         float64

	initialMass float64
}

// NewRun builds a Run from a validated configuration: it allocates the
// grid, looks up and applies the named problem initializer, converts to
// conservative form and records the initial mass for later checkpoints.
// log may be nil, in which case a default logrus logger is used.
func NewRun(cfg Config, sink Sink, log logrus.FieldLogger) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	init, err := LookupProblem(cfg.ProblemName)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if sink == nil {
		sink = NullSink
	}

	g := NewGrid(cfg.Nx, cfg.Ny, cfg.Nghosts, cfg.Xmin, cfg.Xmax, cfg.Ymin, cfg.Ymax)
	init(g, cfg)
	GridPrimToCons(g, cfg.Gamma)

	r := &Run{
		Cfg:     cfg,
		Grid:    g,
		Sink:    sink,
		Log:     log,
		stepper: NewStepper(cfg, g),
	}
	r.initialMass = r.totalMass()
	return r, nil
}

// totalMass sums rho over every domain cell, scaled by cell volume. It
// backs MassCheckpoint and is grounded on vargrid.go's identical
// sum-a-field-then-scale-by-volume idiom (floats.Sum(c.Cf) * c.Volume).
func (r *Run) totalMass() float64 {
	rho := make([]float64, 0, (r.Grid.Iend-r.Grid.Ibeg)*(r.Grid.Jend-r.Grid.Jbeg))
	r.Grid.DomainCells(func(i, j int) {
		rho = append(rho, r.Grid.GetQ(i, j)[IR])
	})
	return floats.Sum(rho) * r.Grid.Dx * r.Grid.Dy
}

// MassCheckpoint compares the current total mass against the mass
// recorded at initialization and returns the relative drift. A
// supplemental diagnostic (original_source kept no equivalent check, but
// framework.go's own checkpointing habit motivates carrying one here):
// pure advection and the HLL/five-wave fluxes used in this solver should
// conserve mass to machine precision, so a growing drift flags a bug
// rather than physics.
func (r *Run) MassCheckpoint() float64 {
	if r.initialMass == 0 {
		return 0
	}
	return (r.totalMass() - r.initialMass) / r.initialMass
}

// Loop advances the simulation from t=0 until Cfg.Tend, saving through
// Sink every SaveFreq iterations and logging every LogFrequency
// iterations, following run.go's "step, log, occasionally write" shape.
// The loop stops once T+Cfg.Epsilon reaches Cfg.Tend. It returns the first
// error encountered: a *NonFiniteStateError or *NonPositiveThermoError from
// deep inside a step is surfaced unmodified, while a Sink error is returned
// wrapped with the save point it occurred at.
func (r *Run) Loop() error {
	if err := r.Sink(r.Grid, r.Iteration, r.T); err != nil {
		return fmt.Errorf("fvmhd2d: writing initial output: %w", err)
	}

	for r.T+r.Cfg.Epsilon < r.Cfg.Tend {
		dt, err := Timestep(r.Grid, r.Cfg)
		if err != nil {
			return err
		}
		if r.T+dt > r.Cfg.Tend {
			dt = r.Cfg.Tend - r.T
		}

		if err := r.stepper.Step(r.Grid, dt, r.Iteration, r.T); err != nil {
			return err
		}

		r.T += dt
		r.Iteration++

		if r.Cfg.LogFrequency > 0 && r.Iteration%r.Cfg.LogFrequency == 0 {
			r.Log.WithFields(logrus.Fields{
				"iteration": r.Iteration,
				"t":         r.T,
				"dt":        dt,
				"massDrift": r.MassCheckpoint(),
			}).Info("step")
		}

		if r.Cfg.SaveFreq > 0 && r.Iteration%r.Cfg.SaveFreq == 0 {
			if err := r.Sink(r.Grid, r.Iteration, r.T); err != nil {
				return fmt.Errorf("fvmhd2d: writing output at iteration %d: %w", r.Iteration, err)
			}
		}
	}

	if r.Cfg.SaveFreq <= 0 || r.Iteration%r.Cfg.SaveFreq != 0 {
		if err := r.Sink(r.Grid, r.Iteration, r.T); err != nil {
			return fmt.Errorf("fvmhd2d: writing final output: %w", err)
		}
	}
	return nil
}
