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

// FillBoundaries fills the ghost strips of g.Q according to the
// configured per-axis policies. x-ghosts are filled first, over the
// domain rows only, then y-ghosts over the full x extent — the y pass
// therefore fills the four corners from the x-ghost columns the x pass
// just produced, which is the corner policy spec §4.3 calls for.
func FillBoundaries(g *Grid, boundaryX, boundaryY BoundaryKind) {
	fillXGhosts(g, boundaryX)
	fillYGhosts(g, boundaryY)
}

func fillXGhosts(g *Grid, kind BoundaryKind) {
	for j := g.Jbeg; j < g.Jend; j++ {
		for i := 0; i < g.Nghosts; i++ {
			g.SetQ(i, j, xGhostValue(g, kind, i, j))
		}
		for i := g.Iend; i < g.Ntx; i++ {
			g.SetQ(i, j, xGhostValue(g, kind, i, j))
		}
	}
}

func fillYGhosts(g *Grid, kind BoundaryKind) {
	for i := 0; i < g.Ntx; i++ {
		for j := 0; j < g.Nghosts; j++ {
			g.SetQ(i, j, yGhostValue(g, kind, i, j))
		}
		for j := g.Jend; j < g.Nty; j++ {
			g.SetQ(i, j, yGhostValue(g, kind, i, j))
		}
	}
}

func xGhostValue(g *Grid, kind BoundaryKind, i, j int) State {
	switch kind {
	case Periodic:
		src := i
		if i < g.Ibeg {
			src = i + g.Nx
		} else {
			src = i - g.Nx
		}
		return g.GetQ(src, j)
	case Reflecting:
		ipiv := g.Ibeg
		if i >= g.Iend {
			ipiv = g.Iend
		}
		isym := 2*ipiv - i - 1
		q := g.GetQ(isym, j)
		q[IU] = -q[IU]
		q[IBX] = -q[IBX]
		return q
	default: // Absorbing
		src := g.Ibeg
		if i >= g.Iend {
			src = g.Iend - 1
		}
		return g.GetQ(src, j)
	}
}

func yGhostValue(g *Grid, kind BoundaryKind, i, j int) State {
	switch kind {
	case Periodic:
		src := j
		if j < g.Jbeg {
			src = j + g.Ny
		} else {
			src = j - g.Ny
		}
		return g.GetQ(i, src)
	case Reflecting:
		jpiv := g.Jbeg
		if j >= g.Jend {
			jpiv = g.Jend
		}
		jsym := 2*jpiv - j - 1
		q := g.GetQ(i, jsym)
		q[IV] = -q[IV]
		q[IBY] = -q[IBY]
		return q
	default: // Absorbing
		src := g.Jbeg
		if j >= g.Jend {
			src = g.Jend - 1
		}
		return g.GetQ(i, src)
	}
}
