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

// CellPrimToCons converts a single primitive state to conservative form
// (spec §4.1). The pressure/energy slot (IP/IE) carries pressure on the
// way in and total energy density on the way out; the two representations
// never coexist in the same State value.
func CellPrimToCons(q State, gamma float64) State {
	var u State
	u[IR] = q[IR]
	u[IU] = q[IR] * q[IU]
	u[IV] = q[IR] * q[IV]
	u[IW] = q[IR] * q[IW]
	u[IBX], u[IBY], u[IBZ], u[IPSI] = q[IBX], q[IBY], q[IBZ], q[IPSI]

	ek := 0.5 * q[IR] * (q[IU]*q[IU] + q[IV]*q[IV] + q[IW]*q[IW])
	emag := 0.5 * (q[IBX]*q[IBX] + q[IBY]*q[IBY] + q[IBZ]*q[IBZ])
	epsi := 0.5 * q[IPSI] * q[IPSI]
	u[IE] = q[IP]/(gamma-1) + ek + emag + epsi
	return u
}

// CellConsToPrim converts a single conservative state back to primitive
// form (spec §4.1), inverting CellPrimToCons. It returns a
// NonPositiveThermoError when u[IR] <= 0, since the velocity divide and
// the resulting pressure would otherwise be meaningless.
func CellConsToPrim(u State, gamma float64) (State, error) {
	if u[IR] <= 0 {
		return State{}, &NonPositiveThermoError{Rho: u[IR]}
	}
	var q State
	q[IR] = u[IR]
	q[IU] = u[IU] / u[IR]
	q[IV] = u[IV] / u[IR]
	q[IW] = u[IW] / u[IR]
	q[IBX], q[IBY], q[IBZ], q[IPSI] = u[IBX], u[IBY], u[IBZ], u[IPSI]

	ek := 0.5 * u[IR] * (q[IU]*q[IU] + q[IV]*q[IV] + q[IW]*q[IW])
	emag := 0.5 * (u[IBX]*u[IBX] + u[IBY]*u[IBY] + u[IBZ]*u[IBZ])
	epsi := 0.5 * u[IPSI] * u[IPSI]
	q[IP] = (u[IE] - ek - emag - epsi) * (gamma - 1)
	return q, nil
}

// GridPrimToCons applies CellPrimToCons over every domain cell of g,
// storing the result into g.U. Ghost cells are left untouched; callers
// must have filled them, if needed, before relying on U there.
func GridPrimToCons(g *Grid, gamma float64) {
	g.DomainCells(func(i, j int) {
		g.SetU(i, j, CellPrimToCons(g.GetQ(i, j), gamma))
	})
}

// GridConsToPrim applies CellConsToPrim over every domain cell of g,
// storing the result into g.Q. It returns a *NonPositiveThermoError (with
// I,J filled in) for the first cell that fails to convert.
func GridConsToPrim(g *Grid, gamma float64) error {
	var firstErr error
	for i := g.Ibeg; i < g.Iend && firstErr == nil; i++ {
		for j := g.Jbeg; j < g.Jend; j++ {
			q, err := CellConsToPrim(g.GetU(i, j), gamma)
			if err != nil {
				if nt, ok := err.(*NonPositiveThermoError); ok {
					nt.I, nt.J = i, j
				}
				firstErr = err
				break
			}
			g.SetQ(i, j, q)
		}
	}
	return firstErr
}
