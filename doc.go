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

/*
Package fvmhd2d implements a directionally-split, second-order Godunov
solver for the compressible Euler and ideal MHD+GLM equations on a uniform
two-dimensional Cartesian grid.

The package is organized around a handful of small, composable pieces:
a nine-component cell State (state.go), a ghost-padded Grid built on top of
github.com/ctessum/sparse dense arrays (grid.go), primitive/conservative
conversion (convert.go), a boundary-ghost filler (boundary.go), PCM/PLM
reconstruction (reconstruct.go), HLL and five-wave Riemann solvers
(riemann.go), the directional-split conservative update (update.go) and a
CFL time-step estimator (timestep.go). Everything else — problem
initializers, output sinks, configuration and the CLI — sits around that
core and talks to it only through the narrow interfaces in problems.go,
output.go, config.go and driver.go.
*/
package fvmhd2d
