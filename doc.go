/*
 * doc.go, part of govasp.
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

/*Package vasp is the main package of the govasp utilities. It reads the small
column files produced by grepping VASP/LAMMPS simulation logs, plus POSCAR
structure files, and provides the numbers the companion tools need.


	**govasp capabilities**

    Reads the pre-filtered energy/temperature, volume and stress column files
	extracted from OUTCAR/OSZICAR or LAMMPS thermo output (gzipped files are
	read transparently).

    Reads POSCAR structure files (VASP 5 format, Direct or Cartesian).

    Calculates cell volume, lattice parameters (a, b, c, alpha, beta, gamma)
	and crystal density.

    Writes structures as XYZ files.

    Estimates ionic conductivity from a mean-square-displacement slope.

    The trajplot subpackage renders the four-panel trajectory diagnostics
	figure (energy, stress tensor, temperature, volume).

The column files are consumed as-is: this package does not parse OUTCAR or
OSZICAR themselves, and the fixed column indexes documented on each reader
must match whatever extraction produced the files.
*/
package vasp
