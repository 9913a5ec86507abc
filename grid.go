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
	"github.com/ctessum/sparse"
)

// Grid holds the primitive (Q) and conservative (U) cell-centered state
// fields for the whole padded domain, each backed by a
// github.com/ctessum/sparse dense array of shape (Ntx, Nty, NFields) —
// the same storage this corpus uses for its own gridded pollutant fields
// (see aim.go's sparse.ZerosDense(m.Nz, m.Ny, m.Nx) grids).
type Grid struct {
	Q *sparse.DenseArray // primitive
	U *sparse.DenseArray // conservative

	Nx, Ny   int
	Nghosts  int
	Ntx, Nty int
	Ibeg     int
	Iend     int
	Jbeg     int
	Jend     int

	Xmin, Xmax, Ymin, Ymax float64
	Dx, Dy                 float64
}

// NewGrid allocates a zero-initialized grid of Nx by Ny domain cells
// padded with Nghosts ghost cells on every side, over the physical domain
// [xmin,xmax] x [ymin,ymax].
func NewGrid(Nx, Ny, Nghosts int, xmin, xmax, ymin, ymax float64) *Grid {
	ntx := Nx + 2*Nghosts
	nty := Ny + 2*Nghosts
	return &Grid{
		Q:       sparse.ZerosDense(ntx, nty, NFields),
		U:       sparse.ZerosDense(ntx, nty, NFields),
		Nx:      Nx,
		Ny:      Ny,
		Nghosts: Nghosts,
		Ntx:     ntx,
		Nty:     nty,
		Ibeg:    Nghosts,
		Iend:    Nghosts + Nx,
		Jbeg:    Nghosts,
		Jend:    Nghosts + Ny,
		Xmin:    xmin,
		Xmax:    xmax,
		Ymin:    ymin,
		Ymax:    ymax,
		Dx:      (xmax - xmin) / float64(Nx),
		Dy:      (ymax - ymin) / float64(Ny),
	}
}

// CellCenter returns the physical coordinates of the center of cell (i,j).
func (g *Grid) CellCenter(i, j int) (x, y float64) {
	x = g.Xmin + (float64(i-g.Ibeg)+0.5)*g.Dx
	y = g.Ymin + (float64(j-g.Jbeg)+0.5)*g.Dy
	return x, y
}

// GetQ returns the primitive state at cell (i,j).
func (g *Grid) GetQ(i, j int) State {
	return getState(g.Q, i, j)
}

// SetQ stores the primitive state q at cell (i,j).
func (g *Grid) SetQ(i, j int, q State) {
	setState(g.Q, i, j, q)
}

// GetU returns the conservative state at cell (i,j).
func (g *Grid) GetU(i, j int) State {
	return getState(g.U, i, j)
}

// SetU stores the conservative state u at cell (i,j).
func (g *Grid) SetU(i, j int, u State) {
	setState(g.U, i, j, u)
}

func getState(a *sparse.DenseArray, i, j int) State {
	var s State
	base := a.Index1d(i, j, 0)
	copy(s[:], a.Elements[base:base+NFields])
	return s
}

func setState(a *sparse.DenseArray, i, j int, s State) {
	base := a.Index1d(i, j, 0)
	copy(a.Elements[base:base+NFields], s[:])
}

// DomainCells calls fn once for every cell (i,j) in the interior domain
// [Ibeg,Iend) x [Jbeg,Jend), skipping ghost cells.
func (g *Grid) DomainCells(fn func(i, j int)) {
	for i := g.Ibeg; i < g.Iend; i++ {
		for j := g.Jbeg; j < g.Jend; j++ {
			fn(i, j)
		}
	}
}
