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

	"github.com/ctessum/sparse"
)

// minmod is the classic slope limiter: it returns the smaller-magnitude
// argument when both have the same sign, else zero.
func minmod(a, b float64) float64 {
	if a*b <= 0 {
		return 0
	}
	if math.Abs(a) < math.Abs(b) {
		return a
	}
	return b
}

// Slopes holds the per-field, per-direction minmod slopes used by PLM
// reconstruction. It is owned by the Stepper (update.go) and allocated
// once at startup, rather than as module-level state (spec §9).
type Slopes struct {
	X *sparse.DenseArray // shape (Ntx, Nty, NFields)
	Y *sparse.DenseArray // shape (Ntx, Nty, NFields)
}

// NewSlopes allocates slope arrays sized to match g.
func NewSlopes(g *Grid) *Slopes {
	return &Slopes{
		X: sparse.ZerosDense(g.Ntx, g.Nty, NFields),
		Y: sparse.ZerosDense(g.Ntx, g.Nty, NFields),
	}
}

// Compute fills s.X and s.Y from g.Q over the extended domain
// [Ibeg-1,Iend+1) x [Jbeg-1,Jend+1), as spec §4.4/§4.6 require for the
// PLM reconstruction stencil.
func (s *Slopes) Compute(g *Grid) {
	for i := g.Ibeg - 1; i < g.Iend+1; i++ {
		for j := g.Jbeg - 1; j < g.Jend+1; j++ {
			qc := g.GetQ(i, j)
			qxm := g.GetQ(i-1, j)
			qxp := g.GetQ(i+1, j)
			qym := g.GetQ(i, j-1)
			qyp := g.GetQ(i, j+1)
			var sx, sy State
			for f := 0; f < NFields; f++ {
				sx[f] = minmod(qc[f]-qxm[f], qxp[f]-qc[f])
				sy[f] = minmod(qc[f]-qym[f], qyp[f]-qc[f])
			}
			setState(s.X, i, j, sx)
			setState(s.Y, i, j, sy)
		}
	}
}

func (s *Slopes) at(which *sparse.DenseArray, i, j int) State {
	return getState(which, i, j)
}

// Recon returns the interface primitive state on the given side (-1 for
// the face at lower index, +1 for the face at higher index) of cell
// (i,j) along dir, already swapped into x-aligned form. For PCM this is
// simply Q[i,j]; for PLM it is Q[i,j] +/- half the directional slope.
func Recon(g *Grid, slopes *Slopes, kind ReconstructionKind, i, j, side int, dir Direction) State {
	q := g.GetQ(i, j)
	if kind == PLM {
		var slope State
		switch dir {
		case DirX:
			slope = slopes.at(slopes.X, i, j)
		case DirY:
			slope = slopes.at(slopes.Y, i, j)
		default:
			panic("fvmhd2d: PLM reconstruction only defined for X and Y sweeps")
		}
		q = q.Add(slope.Scale(0.5 * float64(side)))
	}
	return q.SwapComponents(dir)
}
