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

// hydroFlux computes the physical x-flux of a primitive hydro state,
// per spec §4.5's computeFlux.
func hydroFlux(q State, gamma float64) State {
	rho, u, v, w, p := q[IR], q[IU], q[IV], q[IW], q[IP]
	ek := 0.5 * rho * (u*u + v*v)
	e := p/(gamma-1) + ek
	var f State
	f[IR] = rho * u
	f[IU] = rho*u*u + p
	f[IV] = rho * u * v
	f[IW] = rho * u * w
	f[IE] = (p + e) * u
	return f
}

// RiemannHLL is the two-wave Harten-Lax-van Leer approximate Riemann
// solver for the hydro (non-MHD) equations. qL and qR must already be
// primitive states swapped into x-aligned form; magnetic fields (IBX..
// IPSI) are left at zero in the returned flux. HLL must never be invoked
// on an MHD-configured run (spec §4.5, §7) — that is enforced once at
// Config.Validate time, not re-checked per call.
func RiemannHLL(qL, qR State, gamma float64) (State, error) {
	aL, err := SpeedOfSound(qL, gamma)
	if err != nil {
		return State{}, err
	}
	aR, err := SpeedOfSound(qR, gamma)
	if err != nil {
		return State{}, err
	}

	sl := math.Min(qL[IU]-aL, qR[IU]-aR)
	sr := math.Max(qL[IU]+aL, qR[IU]+aR)

	fl := hydroFlux(qL, gamma)
	fr := hydroFlux(qR, gamma)

	switch {
	case sl >= 0:
		return fl, nil
	case sr <= 0:
		return fr, nil
	default:
		uL := CellPrimToCons(qL, gamma)
		uR := CellPrimToCons(qR, gamma)
		var flux State
		for f := 0; f < IBX; f++ {
			flux[f] = (sr*fl[f] - sl*fr[f] + sl*sr*(uR[f]-uL[f])) / (sr - sl)
		}
		return flux, nil
	}
}

const (
	betaMin    = 1e-3
	alfvenMax  = 10.0
)

// RiemannFiveWaves is the five-wave MHD approximate Riemann solver of
// spec §4.5: three characteristic wave speeds (one longitudinal, two
// transverse) and a star state per transverse component. qL and qR must
// already be primitive states swapped into x-aligned form.
func RiemannFiveWaves(qL, qR State, gamma, eps float64) (State, error) {
	rhoL, rhoR := qL[IR], qR[IR]

	bsqL := qL[IBX]*qL[IBX] + qL[IBY]*qL[IBY] + qL[IBZ]*qL[IBZ]
	bsqR := qR[IBX]*qR[IBX] + qR[IBY]*qR[IBY] + qR[IBZ]*qR[IBZ]

	pL := [3]float64{
		-qL[IBX]*qL[IBX] + qL[IP] + 0.5*bsqL,
		-qL[IBX] * qL[IBY],
		-qL[IBX] * qL[IBZ],
	}
	pR := [3]float64{
		-qR[IBX]*qR[IBX] + qR[IP] + 0.5*bsqR,
		-qR[IBX] * qR[IBY],
		-qR[IBX] * qR[IBZ],
	}

	csL, err := SpeedOfSound(qL, gamma)
	if err != nil {
		return State{}, err
	}
	csR, err := SpeedOfSound(qR, gamma)
	if err != nil {
		return State{}, err
	}

	caL := math.Sqrt(rhoL*(qL[IBX]*qL[IBX]+0.5*bsqL)) + eps
	caR := math.Sqrt(rhoR*(qR[IBX]*qR[IBX]+0.5*bsqR)) + eps
	cbL := math.Sqrt(rhoL * (rhoL*csL*csL + qL[IBY]*qL[IBY] + qL[IBZ]*qL[IBZ] + 0.5*bsqL))
	cbR := math.Sqrt(rhoR * (rhoR*csR*csR + qR[IBY]*qR[IBY] + qR[IBZ]*qR[IBZ] + 0.5*bsqR))

	cL := [3]float64{cbL, caL, caL}
	cR := [3]float64{cbR, caR, caR}

	if qL[IBX]*qR[IBX] < -eps || qL[IBY]*qR[IBY] < -eps || qL[IBZ]*qR[IBZ] < -eps {
		cfL, err := FastMagnetosonicSpeed(qL, gamma, DirX)
		if err != nil {
			return State{}, err
		}
		cfR, err := FastMagnetosonicSpeed(qR, gamma, DirX)
		if err != nil {
			return State{}, err
		}
		c := math.Max(rhoL*cfL, rhoR*cfR)
		cL = [3]float64{c, c, c}
		cR = [3]float64{c, c, c}
	}

	vL := [3]float64{qL[IU], qL[IV], qL[IW]}
	vR := [3]float64{qR[IU], qR[IV], qR[IW]}

	var uStar, pStar [3]float64
	for k := 0; k < 3; k++ {
		uStar[k] = (cL[k]*vL[k] + cR[k]*vR[k] + pL[k] - pR[k]) / (cL[k] + cR[k])
		pStar[k] = (cR[k]*pL[k] + cL[k]*pR[k] + cL[k]*cR[k]*(vL[k]-vR[k])) / (cL[k] + cR[k])
	}

	var q State
	var bStar float64
	if uStar[0] > 0 {
		q = qL
		bStar = qR[IBX]
	} else {
		q = qR
		bStar = qL[IBX]
	}
	u := CellPrimToCons(q, gamma)
	uS := uStar[0]

	var flux State
	flux[IR] = u[IR] * uS
	flux[IU] = u[IU]*uS + pStar[0]
	flux[IV] = u[IV]*uS + pStar[1]
	flux[IW] = u[IW]*uS + pStar[2]
	flux[IE] = u[IE]*uS + pStar[0]*uS + pStar[1]*uStar[1] + pStar[2]*uStar[2]

	bsq := q[IBX]*q[IBX] + q[IBY]*q[IBY] + q[IBZ]*q[IBZ]
	beta := q[IP] / (0.5 * bsq)
	alfven := math.Sqrt(q[IR] * uS / bsq)

	bComponents := [3]float64{q[IBX], q[IBY], q[IBZ]}
	fieldIdx := [3]int{IBX, IBY, IBZ}
	for k := 0; k < 3; k++ {
		if beta < betaMin || alfven > alfvenMax {
			flux[fieldIdx[k]] = u[fieldIdx[k]]*uS - bComponents[0]*uStar[k]
		} else {
			flux[fieldIdx[k]] = u[fieldIdx[k]]*uS - bStar*uStar[k]
		}
	}
	return flux, nil
}
