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

import "testing"

func TestScenarioSodShockTubeStaysFinite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Nx, cfg.Ny = 64, 4
	cfg.Xmax, cfg.Ymax = 1, 1
	cfg.Tend = 0.1
	cfg.ProblemName = "sod_x"
	cfg.BoundaryX, cfg.BoundaryY = Absorbing, Periodic
	cfg.SaveFreq = 0

	run, err := NewRun(cfg, NullSink, nil)
	if err != nil {
		t.Fatalf("unexpected error building run: %v", err)
	}
	if err := run.Loop(); err != nil {
		t.Fatalf("unexpected error running Sod shock tube: %v", err)
	}
	run.Grid.DomainCells(func(i, j int) {
		q := run.Grid.GetQ(i, j)
		if !q.Finite() {
			t.Errorf("cell (%d,%d) went non-finite: %v", i, j, q)
		}
		if q[IR] <= 0 || q[IP] <= 0 {
			t.Errorf("cell (%d,%d) has non-physical density or pressure: %v", i, j, q)
		}
	})
}

func TestScenarioOrszagTangFiveWavesStaysFinite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Nx, cfg.Ny = 16, 16
	cfg.Xmax, cfg.Ymax = 1, 1
	cfg.Tend = 0.05
	cfg.ProblemName = "orszag-tang"
	cfg.MHD = true
	cfg.RiemannSolver = FiveWaves
	cfg.BoundaryX, cfg.BoundaryY = Periodic, Periodic
	cfg.SaveFreq = 0

	run, err := NewRun(cfg, NullSink, nil)
	if err != nil {
		t.Fatalf("unexpected error building run: %v", err)
	}
	if err := run.Loop(); err != nil {
		t.Fatalf("unexpected error running Orszag-Tang: %v", err)
	}
	run.Grid.DomainCells(func(i, j int) {
		if !run.Grid.GetQ(i, j).Finite() {
			t.Errorf("cell (%d,%d) went non-finite", i, j)
		}
	})
}

func TestScenarioReflectingWallPreservesSymmetry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Nx, cfg.Ny = 16, 16
	cfg.Xmax, cfg.Ymax = 1, 1
	cfg.Tend = 0.02
	cfg.ProblemName = "sod_x"
	cfg.BoundaryX, cfg.BoundaryY = Reflecting, Reflecting
	cfg.SaveFreq = 0

	run, err := NewRun(cfg, NullSink, nil)
	if err != nil {
		t.Fatalf("unexpected error building run: %v", err)
	}

	g := run.Grid
	g.DomainCells(func(i, j int) {
		x, _ := g.CellCenter(i, j)
		var q State
		q[IR] = 1.0
		q[IP] = 1.0 + 0.5*(x-0.5)*(x-0.5)
		g.SetQ(i, j, q)
	})
	GridPrimToCons(g, cfg.Gamma)

	if err := run.Loop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	jmid := g.Jbeg + (g.Jend-g.Jbeg)/2
	for k := 0; k < (g.Iend-g.Ibeg)/2; k++ {
		left := g.GetQ(g.Ibeg+k, jmid)
		right := g.GetQ(g.Iend-1-k, jmid)
		if absDifferent(left[IR], right[IR], 1e-6) {
			t.Errorf("symmetric initial condition under reflecting walls should stay symmetric in density: left=%g right=%g (k=%d)", left[IR], right[IR], k)
		}
	}
}

func TestScenarioMassConservationUnderPeriodicBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Nx, cfg.Ny = 16, 16
	cfg.Xmax, cfg.Ymax = 1, 1
	cfg.Tend = 0.05
	cfg.ProblemName = "sod_x"
	cfg.BoundaryX, cfg.BoundaryY = Periodic, Periodic
	cfg.SaveFreq = 0

	run, err := NewRun(cfg, NullSink, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := run.Loop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if drift := run.MassCheckpoint(); absDifferent(drift, 0, 1e-6) {
		t.Errorf("mass should be conserved to near machine precision under periodic boundaries, drift=%g", drift)
	}
}

func TestScenarioUnknownProblemIsRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Nx, cfg.Ny = 4, 4
	cfg.Xmax, cfg.Ymax = 1, 1
	cfg.Tend = 1
	cfg.ProblemName = "does-not-exist"

	if _, err := NewRun(cfg, NullSink, nil); err == nil {
		t.Error("expected an *UnknownProblemError for an unregistered problem name")
	} else if _, ok := err.(*UnknownProblemError); !ok {
		t.Errorf("expected a *UnknownProblemError, got %T", err)
	}
}
