/*
 * poscar.go, part of govasp.
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
	"bufio"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Structure is a crystal structure read from a POSCAR file: the scaled 3x3
// lattice (rows are the lattice vectors, in Angstrom), one chemical symbol
// per atom, and cartesian coordinates (N x 3, Angstrom). It is never mutated
// after reading.
type Structure struct {
	Comment string
	Lattice *mat.Dense
	Symbols []string
	Coords  *mat.Dense
}

// Len returns the number of atoms in the structure.
func (S *Structure) Len() int { return len(S.Symbols) }

//nonBlankLine returns the next non-blank line and its 1-based number.
func nonBlankLine(scanner *bufio.Scanner, line *int) (string, bool) {
	for scanner.Scan() {
		*line++
		text := strings.TrimSpace(scanner.Text())
		if text != "" {
			return text, true
		}
	}
	return "", false
}

// POSCARRead reads a VASP 5 POSCAR/CONTCAR file: comment, scaling factor,
// three lattice vectors, element symbols, per-element counts, an optional
// "Selective dynamics" line, the coordinate mode (Direct or Cartesian) and
// one coordinate row per atom. Direct coordinates are converted to cartesian
// using the scaled lattice. VASP 4 files, which lack the symbol line, are
// rejected: the symbols are what density and XYZ export run on, and guessing
// them from POTCAR order is exactly the kind of silent reinterpretation this
// library avoids.
func POSCARRead(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newTableError(UnableToOpen, name, 0, "POSCARRead")
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	line := 0
	S := new(Structure)
	//comment line
	text, ok := nonBlankLine(scanner, &line)
	if !ok {
		return nil, newTableError(WrongFormat, name, line, "POSCARRead", "empty file")
	}
	S.Comment = text
	//scaling factor
	text, ok = nonBlankLine(scanner, &line)
	if !ok {
		return nil, newTableError(WrongFormat, name, line, "POSCARRead", "missing scaling factor")
	}
	scale, err := strconv.ParseFloat(strings.Fields(text)[0], 64)
	if err != nil {
		return nil, newTableError(NotANumber, name, line, "POSCARRead", "scaling factor")
	}
	//lattice vectors, lines 3-5
	lat := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		text, ok = nonBlankLine(scanner, &line)
		if !ok {
			return nil, newTableError(WrongFormat, name, line, "POSCARRead", "missing lattice vector")
		}
		fields := strings.Fields(text)
		if len(fields) < 3 {
			return nil, newTableError(WrongColumns, name, line, "POSCARRead", "lattice vector")
		}
		for j := 0; j < 3; j++ {
			v, err := parseField(fields[j], name, line, "POSCARRead")
			if err != nil {
				return nil, err
			}
			lat = append(lat, v*scale)
		}
	}
	S.Lattice = mat.NewDense(3, 3, lat)
	//element symbols (VASP 5). A numeric first field means a VASP 4 file.
	text, ok = nonBlankLine(scanner, &line)
	if !ok {
		return nil, newTableError(WrongFormat, name, line, "POSCARRead", "missing element symbols")
	}
	symbols := strings.Fields(text)
	if _, err := strconv.Atoi(symbols[0]); err == nil {
		return nil, newTableError(MissingSymbols, name, line, "POSCARRead")
	}
	//per-element counts
	text, ok = nonBlankLine(scanner, &line)
	if !ok {
		return nil, newTableError(WrongFormat, name, line, "POSCARRead", "missing element counts")
	}
	fields := strings.Fields(text)
	if len(fields) < len(symbols) {
		return nil, newTableError(WrongColumns, name, line, "POSCARRead", "element counts")
	}
	natoms := 0
	counts := make([]int, len(symbols))
	for i := range symbols {
		counts[i], err = strconv.Atoi(fields[i])
		if err != nil || counts[i] < 0 {
			return nil, newTableError(NotANumber, name, line, "POSCARRead", "element count: "+fields[i])
		}
		natoms += counts[i]
	}
	if natoms == 0 {
		return nil, newTableError(WrongFormat, name, line, "POSCARRead", "zero atoms")
	}
	for i, sym := range symbols {
		for j := 0; j < counts[i]; j++ {
			S.Symbols = append(S.Symbols, sym)
		}
	}
	//optional selective dynamics, then the coordinate mode
	text, ok = nonBlankLine(scanner, &line)
	if !ok {
		return nil, newTableError(WrongFormat, name, line, "POSCARRead", "missing coordinate mode")
	}
	if strings.HasPrefix(strings.ToLower(text), "s") {
		text, ok = nonBlankLine(scanner, &line)
		if !ok {
			return nil, newTableError(WrongFormat, name, line, "POSCARRead", "missing coordinate mode")
		}
	}
	mode := strings.ToLower(text)
	//VASP also accepts "K" for cartesian
	cartesian := strings.HasPrefix(mode, "c") || strings.HasPrefix(mode, "k")
	if !cartesian && !strings.HasPrefix(mode, "d") {
		return nil, newTableError(WrongFormat, name, line, "POSCARRead", "unknown coordinate mode: "+text)
	}
	//coordinates
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		text, ok = nonBlankLine(scanner, &line)
		if !ok {
			return nil, newTableError(WrongFormat, name, line, "POSCARRead", "missing coordinates")
		}
		fields := strings.Fields(text)
		if len(fields) < 3 {
			return nil, newTableError(WrongColumns, name, line, "POSCARRead", "coordinates")
		}
		for j := 0; j < 3; j++ {
			v, err := parseField(fields[j], name, line, "POSCARRead")
			if err != nil {
				return nil, err
			}
			coords = append(coords, v)
		}
	}
	raw := mat.NewDense(natoms, 3, coords)
	if !cartesian {
		//r = f*L, with the lattice vectors as the rows of L
		S.Coords = mat.NewDense(natoms, 3, nil)
		S.Coords.Mul(raw, S.Lattice)
	} else {
		raw.Scale(scale, raw)
		S.Coords = raw
	}
	if err := scanner.Err(); err != nil {
		return nil, newTableError(WrongFormat, name, line, "POSCARRead", err.Error())
	}
	return S, nil
}
