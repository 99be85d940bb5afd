/*
 * density.go, part of govasp.
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

import "fmt"

//A map for assigning mass (in amu) to elements.
//Note that just the elements common in the materials we simulate are present.
var symbolMass = map[string]float64{
	"H":  1.008,
	"Li": 6.94,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.098,
	"Ca": 40.078,
	"Ti": 47.867,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Ge": 72.63,
	"Se": 78.971,
	"Br": 79.904,
	"Zr": 91.224,
	"Nb": 92.906,
	"Sn": 118.71,
	"I":  126.90,
	"La": 138.91,
	"Ta": 180.95,
	"W":  183.84,
	"Bi": 208.98,
}

//amu in kg
const amuKg = 1.66053906660e-27

// Masses returns a slice with the mass, in amu, of each atom in the
// structure, or an error naming the first symbol without a tabulated mass.
func (S *Structure) Masses() ([]float64, error) {
	masses := make([]float64, len(S.Symbols))
	for i, sym := range S.Symbols {
		m, ok := symbolMass[sym]
		if !ok {
			return nil, fmt.Errorf("Masses: no tabulated mass for element %s", sym)
		}
		masses[i] = m
	}
	return masses, nil
}

// Density returns the crystal density of the structure in g/cm^3: the summed
// atomic masses over the cell volume.
func (S *Structure) Density() (float64, error) {
	masses, err := S.Masses()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, m := range masses {
		total += m
	}
	volcm := S.Volume() * 1e-24            //A^3 to cm^3
	density := total * amuKg / volcm * 1e3 //kg/cm^3 to g/cm^3
	return density, nil
}
