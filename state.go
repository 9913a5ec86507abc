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

// Field indices, fixed across the whole package. Position 4 carries
// pressure in primitive states and total energy density in conservative
// states; the two never coexist in the same State value.
const (
	IR   = 0
	IU   = 1
	IV   = 2
	IW   = 3
	IP   = 4
	IE   = 4
	IBX  = 5
	IBY  = 6
	IBZ  = 7
	IPSI = 8

	NFields = 9
)

// Direction selects which grid axis a sweep is aligned with.
type Direction int

const (
	DirX Direction = iota
	DirY
	DirZ
)

// State is a fixed-size tuple of the nine scalar fields carried by a
// single cell, in either primitive or conservative form. States are
// values: copying one never aliases another.
type State [NFields]float64

// Add returns the elementwise sum of s and o.
func (s State) Add(o State) State {
	var out State
	for i := range s {
		out[i] = s[i] + o[i]
	}
	return out
}

// Sub returns the elementwise difference s - o.
func (s State) Sub(o State) State {
	var out State
	for i := range s {
		out[i] = s[i] - o[i]
	}
	return out
}

// Mul returns the elementwise product of s and o.
func (s State) Mul(o State) State {
	var out State
	for i := range s {
		out[i] = s[i] * o[i]
	}
	return out
}

// Div returns the elementwise quotient s / o.
func (s State) Div(o State) State {
	var out State
	for i := range s {
		out[i] = s[i] / o[i]
	}
	return out
}

// Scale returns s multiplied elementwise by the scalar a.
func (s State) Scale(a float64) State {
	var out State
	for i := range s {
		out[i] = s[i] * a
	}
	return out
}

// Neg returns the elementwise negation of s.
func (s State) Neg() State {
	var out State
	for i := range s {
		out[i] = -s[i]
	}
	return out
}

// Equal reports whether every field of s compares == to the matching field
// of o (so a NaN field is never equal, and +0 equals -0).
func (s State) Equal(o State) bool {
	return s == o
}

// Close reports whether s and o agree to within relative tolerance tol in
// every field.
func (s State) Close(o State, tol float64) bool {
	for i := range s {
		d := math.Abs(s[i] - o[i])
		scale := math.Max(math.Abs(s[i]), math.Abs(o[i]))
		if scale > 0 && d/scale > tol {
			return false
		}
		if scale == 0 && d > tol {
			return false
		}
	}
	return true
}

// Finite reports whether every field of s is finite (no NaN or Inf).
func (s State) Finite() bool {
	return s.FirstNonFiniteField() < 0
}

// FirstNonFiniteField returns the index of the first field of s that is
// NaN or Inf, or -1 if every field is finite. It lets a caller that has
// just detected a non-finite state report which of the 9 fields actually
// diverged, instead of always blaming field 0.
func (s State) FirstNonFiniteField() int {
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}

// SwapComponents permutes the velocity and magnetic-field triples of s so
// that code written for an x-aligned sweep also works along y (or, for a
// future 3-D extension, z). Swap is its own inverse: SwapComponents twice
// with the same direction returns the original state.
func (s State) SwapComponents(dir Direction) State {
	switch dir {
	case DirX:
		return s
	case DirY:
		out := s
		out[IU], out[IV] = s[IV], s[IU]
		out[IBX], out[IBY] = s[IBY], s[IBX]
		return out
	case DirZ:
		out := s
		out[IU], out[IW] = s[IW], s[IU]
		out[IBX], out[IBZ] = s[IBZ], s[IBX]
		return out
	default:
		panic("fvmhd2d: unknown direction")
	}
}
