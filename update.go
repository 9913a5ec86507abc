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
	"runtime"
	"sync"
)

// Stepper advances a Grid by one full time step. It owns the slope
// arrays used by PLM reconstruction (spec §9: slopes are owned by the
// update component and allocated once, not module-level globals).
type Stepper struct {
	cfg    Config
	slopes *Slopes
}

// NewStepper builds a Stepper for the given configuration and grid shape.
func NewStepper(cfg Config, g *Grid) *Stepper {
	return &Stepper{cfg: cfg, slopes: NewSlopes(g)}
}

func (st *Stepper) riemann(qL, qR State) (State, error) {
	if st.cfg.RiemannSolver == FiveWaves {
		return RiemannFiveWaves(qL, qR, st.cfg.Gamma, st.cfg.Epsilon)
	}
	return RiemannHLL(qL, qR, st.cfg.Gamma)
}

// Step advances g by dt using the configured time-stepping scheme. iteration
// and t are only used to annotate a NonFiniteStateError should one occur.
func (st *Stepper) Step(g *Grid, dt float64, iteration int, t float64) error {
	if st.cfg.TimeStepping == RK2 {
		return st.rk2Step(g, dt, iteration, t)
	}
	return st.eulerStep(g, dt, iteration, t)
}

// eulerStep is the full Euler sub-step of spec §4.6: fill ghosts,
// compute slopes if needed, accumulate fluxes into U, clamp the density
// floor, then convert back to primitive form.
func (st *Stepper) eulerStep(g *Grid, dt float64, iteration int, t float64) error {
	if err := st.accumulateFluxes(g, dt, iteration, t); err != nil {
		return err
	}
	return GridConsToPrim(g, st.cfg.Gamma)
}

// rk2Step implements the strong-stability-preserving two-stage scheme of
// spec §4.6. The combiner reads only the pre-step U0 and the freshly
// computed Unew — there is only ever one Unew binding, so the Python
// prototype's mutate-then-discard bug (spec §9) cannot occur here.
func (st *Stepper) rk2Step(g *Grid, dt float64, iteration int, t float64) error {
	u0 := g.U.Copy()

	if err := st.accumulateFluxes(g, dt, iteration, t); err != nil { // g.U -> Ustar
		return err
	}
	if err := GridConsToPrim(g, st.cfg.Gamma); err != nil { // Q = consToPrim(Ustar)
		return err
	}
	if err := st.accumulateFluxes(g, dt, iteration, t); err != nil { // g.U -> Unew
		return err
	}

	for idx := range g.U.Elements {
		g.U.Elements[idx] = 0.5 * (u0.Elements[idx] + g.U.Elements[idx])
	}
	return GridConsToPrim(g, st.cfg.Gamma)
}

// accumulateFluxes performs steps 1-4 of spec §4.6's Euler sub-step: it
// fills boundary ghosts, computes PLM slopes if configured, and then -
// fanned out across runtime.GOMAXPROCS(0) workers by domain row, following
// run.go's Calculations concurrency pattern - accumulates the directional
// flux difference into every domain cell's U, clamping the density floor.
// Within the fan-out Q is only read, and each cell's U is read and written
// only by the worker that owns its row, so no synchronization is needed.
func (st *Stepper) accumulateFluxes(g *Grid, dt float64, iteration int, t float64) error {
	FillBoundaries(g, st.cfg.BoundaryX, st.cfg.BoundaryY)
	if st.cfg.Reconstruction == PLM {
		st.slopes.Compute(g)
	}

	nprocs := runtime.GOMAXPROCS(0)
	rows := g.Iend - g.Ibeg
	if nprocs > rows {
		nprocs = rows
	}
	errs := make([]error, nprocs)

	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for ii := pp; ii < rows; ii += nprocs {
				i := g.Ibeg + ii
				for j := g.Jbeg; j < g.Jend; j++ {
					delta, err := st.cellFluxDivergence(g, i, j)
					if err != nil {
						errs[pp] = err
						return
					}
					u := g.GetU(i, j).Add(delta.Scale(dt))
					if u[IR] < st.cfg.Smallr {
						u[IR] = st.cfg.Smallr
					}
					if field := u.FirstNonFiniteField(); field >= 0 {
						errs[pp] = &NonFiniteStateError{I: i, J: j, Field: field, Iteration: iteration, T: t}
						return
					}
					g.SetU(i, j, u)
				}
			}
		}(pp)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// cellFluxDivergence computes the combined x- and y-direction flux
// divergence -(dF/dx + dG/dy) for cell (i,j), following the face
// reconstruction and Riemann-solve recipe of spec §4.6. Both face fluxes
// for a direction are computed, and the swap back to the absolute frame
// applied, before the single fused accumulation — never reading U back
// during the sweep (spec §9's Gauss-Seidel caveat).
func (st *Stepper) cellFluxDivergence(g *Grid, i, j int) (State, error) {
	var total State
	for _, dir := range [2]Direction{DirX, DirY} {
		var qCL, qCR, qL, qR State
		var d float64
		switch dir {
		case DirX:
			qCL = Recon(g, st.slopes, st.cfg.Reconstruction, i, j, -1, DirX)
			qCR = Recon(g, st.slopes, st.cfg.Reconstruction, i, j, +1, DirX)
			qL = Recon(g, st.slopes, st.cfg.Reconstruction, i-1, j, +1, DirX)
			qR = Recon(g, st.slopes, st.cfg.Reconstruction, i+1, j, -1, DirX)
			d = g.Dx
		case DirY:
			qCL = Recon(g, st.slopes, st.cfg.Reconstruction, i, j, -1, DirY)
			qCR = Recon(g, st.slopes, st.cfg.Reconstruction, i, j, +1, DirY)
			qL = Recon(g, st.slopes, st.cfg.Reconstruction, i, j-1, +1, DirY)
			qR = Recon(g, st.slopes, st.cfg.Reconstruction, i, j+1, -1, DirY)
			d = g.Dy
		}

		fluxL, err := st.riemann(qL, qCL)
		if err != nil {
			return State{}, annotate(err, i, j)
		}
		fluxR, err := st.riemann(qCR, qR)
		if err != nil {
			return State{}, annotate(err, i, j)
		}
		fluxL = fluxL.SwapComponents(dir)
		fluxR = fluxR.SwapComponents(dir)
		total = total.Add(fluxL.Sub(fluxR).Scale(1 / d))
	}
	return total, nil
}

// annotate fills in the cell location of a NonPositiveThermoError raised
// deep inside a Riemann solve, so the diagnostic in spec §7 is complete.
func annotate(err error, i, j int) error {
	if nt, ok := err.(*NonPositiveThermoError); ok {
		nt.I, nt.J = i, j
	}
	return err
}
