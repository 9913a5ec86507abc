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
	"math"
	"testing"
)

func uniformTestConfig() Config {
	cfg := DefaultConfig()
	cfg.Nx, cfg.Ny = 8, 8
	cfg.Xmax, cfg.Ymax = 1, 1
	cfg.Tend = 1
	cfg.ProblemName = "sod_x"
	cfg.BoundaryX, cfg.BoundaryY = Periodic, Periodic
	return cfg
}

func TestStepperEulerStepOnUniformStateIsStationary(t *testing.T) {
	cfg := uniformTestConfig()
	g := NewGrid(cfg.Nx, cfg.Ny, cfg.Nghosts, cfg.Xmin, cfg.Xmax, cfg.Ymin, cfg.Ymax)
	uniform := State{1.0, 0, 0, 0, 1.0, 0, 0, 0, 0}
	g.DomainCells(func(i, j int) { g.SetQ(i, j, uniform) })
	GridPrimToCons(g, cfg.Gamma)

	st := NewStepper(cfg, g)
	if err := st.Step(g, 1e-3, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g.DomainCells(func(i, j int) {
		q := g.GetQ(i, j)
		if !q.Close(uniform, 1e-9) {
			t.Errorf("cell (%d,%d): a uniform periodic state should not change under one step, got %v", i, j, q)
		}
	})
}

func TestStepperEnforcesDensityFloor(t *testing.T) {
	cfg := uniformTestConfig()
	cfg.Smallr = 0.5
	g := NewGrid(cfg.Nx, cfg.Ny, cfg.Nghosts, cfg.Xmin, cfg.Xmax, cfg.Ymin, cfg.Ymax)
	g.DomainCells(func(i, j int) {
		g.SetQ(i, j, State{0.01, 0, 0, 0, 1.0, 0, 0, 0, 0})
	})
	GridPrimToCons(g, cfg.Gamma)

	st := NewStepper(cfg, g)
	if err := st.Step(g, 1e-3, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.DomainCells(func(i, j int) {
		if g.GetU(i, j)[IR] < cfg.Smallr-1e-12 {
			t.Errorf("cell (%d,%d): density %g fell below the configured floor %g", i, j, g.GetU(i, j)[IR], cfg.Smallr)
		}
	})
}

func TestStepperNonFiniteStateReportsOffendingField(t *testing.T) {
	cfg := uniformTestConfig()
	g := NewGrid(cfg.Nx, cfg.Ny, cfg.Nghosts, cfg.Xmin, cfg.Xmax, cfg.Ymin, cfg.Ymax)
	uniform := State{1.0, 0, 0, 0, 1.0, 0, 0, 0, 0}
	g.DomainCells(func(i, j int) { g.SetQ(i, j, uniform) })
	GridPrimToCons(g, cfg.Gamma)

	badI, badJ := g.Ibeg+1, g.Jbeg+1
	u := g.GetU(badI, badJ)
	u[IBY] = math.Inf(1)
	g.SetU(badI, badJ, u)

	st := NewStepper(cfg, g)
	err := st.Step(g, 1e-3, 7, 1.5)
	if err == nil {
		t.Fatal("expected a *NonFiniteStateError, got nil")
	}
	nf, ok := err.(*NonFiniteStateError)
	if !ok {
		t.Fatalf("expected a *NonFiniteStateError, got %T", err)
	}
	if nf.Field != IBY {
		t.Errorf("NonFiniteStateError.Field should name the diverging field IBY (%d), got %d", IBY, nf.Field)
	}
	if nf.I != badI || nf.J != badJ {
		t.Errorf("NonFiniteStateError should cite the offending cell (%d,%d), got (%d,%d)", badI, badJ, nf.I, nf.J)
	}
	if nf.Iteration != 7 || nf.T != 1.5 {
		t.Errorf("NonFiniteStateError should carry the iteration/time it was called with, got iteration=%d t=%g", nf.Iteration, nf.T)
	}
}

func TestStepperRK2AgreesWithEulerOnUniformState(t *testing.T) {
	cfg := uniformTestConfig()
	cfg.TimeStepping = RK2
	g := NewGrid(cfg.Nx, cfg.Ny, cfg.Nghosts, cfg.Xmin, cfg.Xmax, cfg.Ymin, cfg.Ymax)
	uniform := State{1.0, 0, 0, 0, 1.0, 0, 0, 0, 0}
	g.DomainCells(func(i, j int) { g.SetQ(i, j, uniform) })
	GridPrimToCons(g, cfg.Gamma)

	st := NewStepper(cfg, g)
	if err := st.Step(g, 1e-3, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.DomainCells(func(i, j int) {
		q := g.GetQ(i, j)
		if !q.Close(uniform, 1e-9) {
			t.Errorf("cell (%d,%d): RK2 step of a uniform periodic state should not change it, got %v", i, j, q)
		}
	})
}
