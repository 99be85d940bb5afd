/*
 * conduct.go, part of govasp.
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
	"fmt"

	"gonum.org/v1/gonum/stat"
)

//CODATA 2018 values.
const (
	avogadro    = 6.02214076e23   //1/mol
	elemCharge  = 1.602176634e-19 //C
	gasConstant = 8.314462618     //J/(mol K)
)

// MSDSlope fits a line to a mean-square-displacement curve (times in ps,
// msd in A^2) and returns its slope in A^2/ps. Both slices must have the
// same length of at least 2.
func MSDSlope(times, msd []float64) (float64, error) {
	if len(times) != len(msd) || len(times) < 2 {
		return 0, fmt.Errorf("MSDSlope: need two same-length series of at least 2 points, got %d and %d", len(times), len(msd))
	}
	_, slope := stat.LinearRegression(times, msd, nil, false)
	return slope, nil
}

// IonicConductivity converts an MSD slope (A^2/ps) into an ionic
// conductivity in mS/cm via the Nernst-Einstein relation: count is the
// number of carrier ions in the cell, volume the cell volume in A^3,
// temperature in K and dimfac the dimensionality factor (3 for bulk
// diffusion). For a typical run (96 Li, slope 0.02, 8852 A^3, 400 K) this
// gives about 16.8 mS/cm.
func IonicConductivity(count int, slope, volume, temperature float64, dimfac int) (float64, error) {
	if count <= 0 || volume <= 0 || temperature <= 0 || dimfac <= 0 {
		return 0, fmt.Errorf("IonicConductivity: count, volume, temperature and dimfac must be positive")
	}
	conversion := 1000 * float64(count) / (volume * 1e-24 * avogadro) *
		(avogadro * elemCharge) * (avogadro * elemCharge) / (gasConstant * temperature)
	return slope / (2 * float64(dimfac)) * 1e-4 * conversion, nil
}
