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

func fillRamp(g *Grid) {
	g.DomainCells(func(i, j int) {
		x, y := g.CellCenter(i, j)
		g.SetQ(i, j, State{1 + x + 10*y, 1, 2, 3, 1, 0.1, 0.2, 0.3, 0})
	})
}

func TestFillBoundariesPeriodicWraps(t *testing.T) {
	g := NewGrid(4, 4, 2, 0, 1, 0, 1)
	fillRamp(g)
	FillBoundaries(g, Periodic, Periodic)

	for j := g.Jbeg; j < g.Jend; j++ {
		left := g.GetQ(g.Ibeg-1, j)
		right := g.GetQ(g.Iend-1, j)
		if !left.Equal(right) {
			t.Errorf("periodic x-ghost at j=%d: left ghost %v should equal rightmost domain cell %v", j, left, right)
		}
	}
}

func TestFillBoundariesReflectingNegatesNormalComponents(t *testing.T) {
	g := NewGrid(4, 4, 2, 0, 1, 0, 1)
	fillRamp(g)
	FillBoundaries(g, Reflecting, Absorbing)

	j := g.Jbeg
	interior := g.GetQ(g.Ibeg, j)
	ghost := g.GetQ(g.Ibeg-1, j)
	if absDifferent(ghost[IU], -interior[IU], 1e-12) {
		t.Errorf("reflecting x-boundary should negate u: interior %g, ghost %g", interior[IU], ghost[IU])
	}
	if absDifferent(ghost[IV], interior[IV], 1e-12) {
		t.Errorf("reflecting x-boundary should leave v untouched: interior %g, ghost %g", interior[IV], ghost[IV])
	}
	if absDifferent(ghost[IR], interior[IR], 1e-12) {
		t.Errorf("reflecting x-boundary should leave density untouched: interior %g, ghost %g", interior[IR], ghost[IR])
	}
}

func TestFillBoundariesAbsorbingCopiesEdge(t *testing.T) {
	g := NewGrid(4, 4, 2, 0, 1, 0, 1)
	fillRamp(g)
	FillBoundaries(g, Absorbing, Absorbing)

	edge := g.GetQ(g.Ibeg, g.Jbeg)
	for i := 0; i < g.Nghosts; i++ {
		ghost := g.GetQ(i, g.Jbeg)
		if !ghost.Equal(edge) {
			t.Errorf("absorbing x-ghost at i=%d should copy the domain edge %v, got %v", i, edge, ghost)
		}
	}
}
