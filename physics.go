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

import "math"

// SpeedOfSound returns the adiabatic sound speed sqrt(gamma*p/rho) of the
// primitive state q. It returns a NonPositiveThermoError (with I,J left
// zero; callers at the cell loop fill them in) when rho or p is not
// strictly positive.
func SpeedOfSound(q State, gamma float64) (float64, error) {
	if q[IR] <= 0 || q[IP] <= 0 {
		return 0, &NonPositiveThermoError{Rho: q[IR], P: q[IP]}
	}
	return math.Sqrt(gamma * q[IP] / q[IR]), nil
}

// FastMagnetosonicSpeed returns the fast magnetosonic wave speed of the
// primitive MHD state q along direction dir.
func FastMagnetosonicSpeed(q State, gamma float64, dir Direction) (float64, error) {
	cs, err := SpeedOfSound(q, gamma)
	if err != nil {
		return 0, err
	}
	c0sq := cs * cs
	bsq := q[IBX]*q[IBX] + q[IBY]*q[IBY] + q[IBZ]*q[IBZ]
	casq := bsq / q[IR]

	var bd float64
	switch dir {
	case DirX:
		bd = q[IBX]
	case DirY:
		bd = q[IBY]
	case DirZ:
		bd = q[IBZ]
	}
	capsq := bd * bd / q[IR]

	sum := c0sq + casq
	disc := sum*sum - 4*c0sq*capsq
	if disc < 0 {
		disc = 0
	}
	return math.Sqrt(0.5*sum + 0.5*math.Sqrt(disc)), nil
}
