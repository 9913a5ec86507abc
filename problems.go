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

// InitFunc fills the primitive state of every domain cell of g. It is the
// pluggable initializer hook of spec §6: problem initialization is an
// external collaborator the core only calls through this signature.
type InitFunc func(g *Grid, cfg Config)

var problemRegistry = map[string]InitFunc{}

// RegisterProblem adds a named initializer to the registry, following the
// teacher's functional-option shape (framework.go's InitOption) rather
// than the Python prototype's bare string-keyed dict
// (original_source/src/problems.py).
func RegisterProblem(name string, fn InitFunc) {
	problemRegistry[name] = fn
}

// LookupProblem returns the initializer registered under name, or an
// *UnknownProblemError if none was registered (spec §7).
func LookupProblem(name string) (InitFunc, error) {
	fn, ok := problemRegistry[name]
	if !ok {
		return nil, &UnknownProblemError{Name: name}
	}
	return fn, nil
}

func init() {
	RegisterProblem("sod_x", initSodX)
	RegisterProblem("orszag-tang", initOrszagTang)
}

// initSodX is the classic Sod shock tube along x (spec §6):
// rho=1, p=1, u=0 for x<=0.5, else rho=0.125, p=0.1.
func initSodX(g *Grid, cfg Config) {
	g.DomainCells(func(i, j int) {
		x, _ := g.CellCenter(i, j)
		var q State
		if x <= 0.5 {
			q[IR] = 1.0
			q[IP] = 1.0
		} else {
			q[IR] = 0.125
			q[IP] = 0.1
		}
		g.SetQ(i, j, q)
	})
}

// initOrszagTang is the 2-D MHD Orszag-Tang vortex (spec §6), grounded on
// original_source/src/problems.py's init_orszag_tang.
func initOrszagTang(g *Grid, cfg Config) {
	b0 := 1.0 / math.Sqrt(4*math.Pi)
	gamma := cfg.Gamma
	g.DomainCells(func(i, j int) {
		x, y := g.CellCenter(i, j)
		var q State
		q[IR] = gamma * gamma * b0 * b0
		q[IU] = -math.Sin(2 * math.Pi * y)
		q[IV] = math.Sin(2 * math.Pi * x)
		q[IP] = gamma * b0 * b0
		q[IBX] = -b0 * math.Sin(2*math.Pi*y)
		q[IBY] = b0 * math.Sin(4*math.Pi*x)
		g.SetQ(i, j, q)
	})
}
