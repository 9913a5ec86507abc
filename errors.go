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

import "fmt"

// ConfigError reports a contradictory or out-of-range configuration field,
// detected once at startup before any simulation step runs.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fvmhd2d: invalid configuration field %q: %s", e.Field, e.Reason)
}

// NonPositiveThermoError reports that sos or the fast magnetosonic speed
// was asked to operate on a cell with non-positive density or pressure, or
// that CellConsToPrim was given a conservative state with non-positive
// density.
type NonPositiveThermoError struct {
	I, J int
	Rho  float64
	P    float64
}

func (e *NonPositiveThermoError) Error() string {
	return fmt.Sprintf("fvmhd2d: non-positive thermodynamic state at (%d,%d): rho=%g p=%g",
		e.I, e.J, e.Rho, e.P)
}

// NonFiniteStateError reports a NaN or Inf detected in a cell's updated
// conservative state U during a sub-step, citing the offending cell, field, iteration and time per the
// diagnostic policy in spec §7.
type NonFiniteStateError struct {
	I, J      int
	Field     int
	T         float64
	Iteration int
}

func (e *NonFiniteStateError) Error() string {
	return fmt.Sprintf("fvmhd2d: non-finite state at (%d,%d) field=%d iteration=%d t=%g",
		e.I, e.J, e.Field, e.Iteration, e.T)
}

// UnknownProblemError reports a lookup for a problem name that was never
// registered with RegisterProblem.
type UnknownProblemError struct {
	Name string
}

func (e *UnknownProblemError) Error() string {
	return fmt.Sprintf("fvmhd2d: unknown problem %q", e.Name)
}
