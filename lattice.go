/*
 * lattice.go, part of govasp.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package vasp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LatticeParams are the crystallographic lattice parameters: the lengths of
// the three lattice vectors in Angstrom and the angles between them in
// degrees (Alpha between b and c, Beta between a and c, Gamma between a and b).
type LatticeParams struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// CellVolume returns the volume of the cell spanned by the rows of the 3x3
// lattice, as the absolute value of its determinant, in Angstrom^3.
func CellVolume(lattice *mat.Dense) float64 {
	return math.Abs(mat.Det(lattice))
}

// Volume returns the cell volume of the structure in Angstrom^3.
func (S *Structure) Volume() float64 {
	return CellVolume(S.Lattice)
}

//vecAngle returns the angle between two lattice vectors in degrees. The
//cosine is clamped to [-1,1] against floating point drift.
func vecAngle(u, v mat.Vector) float64 {
	cos := mat.Dot(u, v) / (mat.Norm(u, 2) * mat.Norm(v, 2))
	cos = math.Max(-1.0, math.Min(1.0, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// CellParams calculates the lattice parameters a, b, c, alpha, beta and
// gamma from a 3x3 lattice whose rows are the lattice vectors.
func CellParams(lattice *mat.Dense) *LatticeParams {
	a := lattice.RowView(0)
	b := lattice.RowView(1)
	c := lattice.RowView(2)
	return &LatticeParams{
		A:     mat.Norm(a, 2),
		B:     mat.Norm(b, 2),
		C:     mat.Norm(c, 2),
		Alpha: vecAngle(b, c),
		Beta:  vecAngle(a, c),
		Gamma: vecAngle(a, b),
	}
}

// Params returns the lattice parameters of the structure.
func (S *Structure) Params() *LatticeParams {
	return CellParams(S.Lattice)
}
