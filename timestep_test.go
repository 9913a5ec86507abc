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

func TestTimestepRespectsCFL(t *testing.T) {
	g := NewGrid(8, 8, 2, 0, 1, 0, 1)
	g.DomainCells(func(i, j int) {
		g.SetQ(i, j, State{1, 1, 1, 0, 1, 0, 0, 0, 0})
	})
	cfg := DefaultConfig()
	cfg.Nx, cfg.Ny = 8, 8
	cfg.Xmax, cfg.Ymax = 1, 1
	cfg.Tend = 1
	cfg.ProblemName = "sod_x"

	dt, err := Timestep(g, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dt <= 0 {
		t.Fatalf("timestep should be positive, got %g", dt)
	}

	cs, _ := SpeedOfSound(State{1, 1, 1, 0, 1, 0, 0, 0, 0}, cfg.Gamma)
	invDt := (cs + 1) / g.Dx * 2
	wantMax := cfg.CFL / invDt
	if dt > wantMax*1.0001 {
		t.Errorf("timestep %g exceeds CFL bound %g", dt, wantMax)
	}
}

func TestTimestepDoublingCFLDoublesStep(t *testing.T) {
	g := NewGrid(8, 8, 2, 0, 1, 0, 1)
	g.DomainCells(func(i, j int) {
		g.SetQ(i, j, State{1, 0, 0, 0, 1, 0, 0, 0, 0})
	})
	cfg := DefaultConfig()
	cfg.Nx, cfg.Ny = 8, 8
	cfg.Xmax, cfg.Ymax = 1, 1
	cfg.Tend = 1
	cfg.ProblemName = "sod_x"
	cfg.CFL = 0.2

	dt1, err := Timestep(g, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.CFL = 0.4
	dt2, err := Timestep(g, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if absDifferent(dt2, 2*dt1, 1e-9) {
		t.Errorf("doubling CFL should double dt: dt1=%g dt2=%g", dt1, dt2)
	}
}
