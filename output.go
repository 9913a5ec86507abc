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
	"fmt"
	"os"
	"path/filepath"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// fieldNames names the nine primitive fields in index order, used as
// NetCDF variable names.
var fieldNames = [NFields]string{
	"rho", "u", "v", "w", "p", "bx", "by", "bz", "psi",
}

// Sink is the pluggable output hook of spec §6: the core only ever calls
// it with the current primitive grid, iteration count and time; it makes
// no assumptions about the persistence format on the other side.
type Sink func(g *Grid, iteration int, t float64) error

// NullSink discards every call. It is useful for tests and for the
// in-memory-only scenarios of spec §8.
func NullSink(g *Grid, iteration int, t float64) error { return nil }

// NetCDFSink returns a Sink that writes the domain interior of the
// primitive grid to dir/<iteration>.nc, one variable per field plus a
// scalar "time" attribute, grounded on the teacher's writeNCF/CTMData.Write
// (vargrid.go). If includeGhosts is true, ghost cells are written too
// (spec §6: "optionally ghosts").
func NetCDFSink(dir string, includeGhosts bool) (Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("fvmhd2d: creating output directory %s: %w", dir, err)
	}
	return func(g *Grid, iteration int, t float64) error {
		path := filepath.Join(dir, fmt.Sprintf("%08d.nc", iteration))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("fvmhd2d: creating %s: %w", path, err)
		}
		defer f.Close()

		iLo, iHi := g.Ibeg, g.Iend
		jLo, jHi := g.Jbeg, g.Jend
		if includeGhosts {
			iLo, iHi = 0, g.Ntx
			jLo, jHi = 0, g.Nty
		}
		nx, ny := iHi-iLo, jHi-jLo

		h := cdf.NewHeader([]string{"x", "y"}, []int{nx, ny})
		h.AddAttribute("", "time", []float64{t})
		h.AddAttribute("", "iteration", []int32{int32(iteration)})
		for _, name := range fieldNames {
			h.AddVariable(name, []string{"x", "y"}, []float32{0})
		}
		h.Define()

		nf, err := cdf.Create(f, h)
		if err != nil {
			return fmt.Errorf("fvmhd2d: writing netcdf header to %s: %w", path, err)
		}

		for fIdx, name := range fieldNames {
			data := sparse.ZerosDense(nx, ny)
			for i := iLo; i < iHi; i++ {
				for j := jLo; j < jHi; j++ {
					data.Set(g.GetQ(i, j)[fIdx], i-iLo, j-jLo)
				}
			}
			if err := writeNetCDFVariable(nf, name, data); err != nil {
				return fmt.Errorf("fvmhd2d: writing variable %s to %s: %w", name, path, err)
			}
		}
		return cdf.UpdateNumRecs(f)
	}, nil
}

// writeNetCDFVariable writes a dense array into a single variable of an
// already-defined NetCDF file, following vargrid.go's writeNCF.
func writeNetCDFVariable(f *cdf.File, name string, data *sparse.DenseArray) error {
	n := 1
	for _, v := range data.Shape {
		n *= v
	}
	if len(data.Elements) != n {
		return fmt.Errorf("dims are %d but array length is %d", n, len(data.Elements))
	}
	data32 := make([]float32, len(data.Elements))
	for i, e := range data.Elements {
		data32[i] = float32(e)
	}
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	_, err := w.Write(data32)
	return err
}
