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

	"gonum.org/v1/gonum/floats"
)

// cellInvDt returns the inverse time step implied by cell (i,j) per
// spec §4.7: the hydro wave-speed estimate, or its max with the fast
// magnetosonic estimate when MHD is enabled.
func cellInvDt(g *Grid, cfg Config, i, j int) (float64, error) {
	q := g.GetQ(i, j)
	cs, err := SpeedOfSound(q, cfg.Gamma)
	if err != nil {
		return 0, annotate(err, i, j)
	}
	invDt := (cs+math.Abs(q[IU]))/g.Dx + (cs+math.Abs(q[IV]))/g.Dy

	if cfg.MHD {
		cfx, err := FastMagnetosonicSpeed(q, cfg.Gamma, DirX)
		if err != nil {
			return 0, annotate(err, i, j)
		}
		cfy, err := FastMagnetosonicSpeed(q, cfg.Gamma, DirY)
		if err != nil {
			return 0, annotate(err, i, j)
		}
		mhdInvDt := (cfx+math.Abs(q[IU]))/g.Dx + (cfy+math.Abs(q[IV]))/g.Dy
		if mhdInvDt > invDt {
			invDt = mhdInvDt
		}
	}
	return invDt, nil
}

// Timestep returns the CFL-limited time step for the current state of g,
// per spec §4.7: dt = CFL / max(inv_dt) over every domain cell. The
// reduction itself is gonum's floats.Max, following vargrid.go's use of
// the same package for whole-grid reductions (floats.Sum(c.Cf)).
func Timestep(g *Grid, cfg Config) (float64, error) {
	invDts := make([]float64, 0, (g.Iend-g.Ibeg)*(g.Jend-g.Jbeg))
	for i := g.Ibeg; i < g.Iend; i++ {
		for j := g.Jbeg; j < g.Jend; j++ {
			invDt, err := cellInvDt(g, cfg, i, j)
			if err != nil {
				return 0, err
			}
			invDts = append(invDts, invDt)
		}
	}
	maxInvDt := floats.Max(invDts)
	if maxInvDt == 0 {
		return cfg.Tend, nil
	}
	return cfg.CFL / maxInvDt, nil
}
