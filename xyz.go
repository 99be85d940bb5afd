/*
 * xyz.go, part of govasp.
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
	"os"
)

// XYZWrite writes the structure S as an XYZ file with name xyzname, which
// will be created for that. If the file exists it will be overwritten. The
// POSCAR comment line is carried over as the XYZ comment.
func XYZWrite(xyzname string, S *Structure) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return newTableError(UnableToWrite, xyzname, 0, "XYZWrite")
	}
	defer out.Close()
	fmt.Fprintf(out, "%-4d\n", S.Len())
	fmt.Fprintf(out, "%s\n", S.Comment)
	for i, sym := range S.Symbols {
		_, err = fmt.Fprintf(out, "%-2s  %12.6f%12.6f%12.6f\n", sym,
			S.Coords.At(i, 0), S.Coords.At(i, 1), S.Coords.At(i, 2))
		if err != nil {
			return newTableError(UnableToWrite, xyzname, i+3, "XYZWrite")
		}
	}
	return nil
}
