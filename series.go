/*
 * series.go, part of govasp.
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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//The column files are produced by grepping OUTCAR/OSZICAR (or LAMMPS thermo
//output) with the shell one-liners documented in the README. The column
//indexes below are a fixed contract with those one-liners; they are
//validated for count but never reinterpreted if the extraction changes.
const (
	energyStepCol = 0 //ionic step index
	energyTempCol = 2 //temperature in K
	energyECol    = 4 //total energy in eV
	energyMinCols = 5

	volumeCol     = 4 //cell volume in A^3
	volumeMinCols = 5

	stressFirstCol = 2 //first of the six stress components
	stressMinCols  = 8
)

// StressComponents names the six independent components of the symmetric
// stress tensor, in the order they appear in the stress file and in the
// diagnostics legend.
var StressComponents = [6]string{"xx", "yy", "zz", "xy", "yz", "zx"}

// EnergySeries holds the per-ionic-step step index, temperature and total
// energy read from the energy column file. The three slices always have the
// same length.
type EnergySeries struct {
	Steps    []float64
	Temps    []float64
	Energies []float64
}

// Len returns the number of recorded ionic steps.
func (E *EnergySeries) Len() int { return len(E.Steps) }

// VolumeSeries holds the per-step cell volume read from the volume column
// file. Its length may legitimately differ from the energy series it was
// extracted alongside.
type VolumeSeries struct {
	Volumes []float64
}

// Len returns the number of recorded volumes.
func (V *VolumeSeries) Len() int { return len(V.Volumes) }

// StressSeries holds the six stress tensor components per recorded step,
// one slice per component, ordered as in StressComponents.
type StressSeries struct {
	Comp [6][]float64
}

// Len returns the number of recorded steps.
func (S *StressSeries) Len() int { return len(S.Comp[0]) }

//openTable opens a column file for reading, transparently decompressing
//gzipped files. The returned closer releases both readers.
func openTable(name string) (io.Reader, func() error, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, newTableError(UnableToOpen, name, 0, "openTable")
	}
	if !strings.HasSuffix(name, ".gz") {
		return f, f.Close, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, newTableError(WrongFormat, name, 0, "openTable", "gzip.NewReader: "+err.Error())
	}
	closer := func() error {
		err := gz.Close()
		if err2 := f.Close(); err == nil {
			err = err2
		}
		return err
	}
	return gz, closer, nil
}

//readTable scans a whitespace-delimited column file, skipping blank lines
//and lines whose first non-blank character is '#'. Every data row must have
//at least mincols fields; row is called with the fields and the 1-based line
//number. Malformed rows are not repaired, they abort the read.
func readTable(name string, mincols int, row func(fields []string, line int) error) error {
	r, closer, err := openTable(name)
	if err != nil {
		return err
	}
	defer closer()
	scanner := bufio.NewScanner(r)
	line := 0
	rows := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < mincols {
			return newTableError(WrongColumns, name, line, "readTable")
		}
		if err := row(fields, line); err != nil {
			return err
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return newTableError(WrongFormat, name, line, "readTable", err.Error())
	}
	if rows == 0 {
		return newTableError(EmptyTable, name, 0, "readTable")
	}
	return nil
}

//parseField parses one numeric field, reporting the file and line on failure.
func parseField(s, name string, line int, caller string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newTableError(NotANumber, name, line, caller, "strconv.ParseFloat: "+s)
	}
	return v, nil
}

// EnergyRead reads the energy column file name: one row per recorded ionic
// step, column 0 the step index, column 2 the temperature and column 4 the
// total energy (0-indexed, whitespace-split). Rows starting with '#' are
// skipped. Rows with fewer than 5 columns, or non-numeric content in a used
// column, make the whole read fail.
func EnergyRead(name string) (*EnergySeries, error) {
	E := new(EnergySeries)
	err := readTable(name, energyMinCols, func(fields []string, line int) error {
		step, err := parseField(fields[energyStepCol], name, line, "EnergyRead")
		if err != nil {
			return err
		}
		temp, err := parseField(fields[energyTempCol], name, line, "EnergyRead")
		if err != nil {
			return err
		}
		energy, err := parseField(fields[energyECol], name, line, "EnergyRead")
		if err != nil {
			return err
		}
		E.Steps = append(E.Steps, step)
		E.Temps = append(E.Temps, temp)
		E.Energies = append(E.Energies, energy)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return E, nil
}

// VolumeRead reads the volume column file name: one row per recorded step,
// column 4 the cell volume. The same comment-skipping and validation rules
// as EnergyRead apply.
func VolumeRead(name string) (*VolumeSeries, error) {
	V := new(VolumeSeries)
	err := readTable(name, volumeMinCols, func(fields []string, line int) error {
		vol, err := parseField(fields[volumeCol], name, line, "VolumeRead")
		if err != nil {
			return err
		}
		V.Volumes = append(V.Volumes, vol)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return V, nil
}

// StressRead reads the stress column file name: one row per recorded step,
// columns 2-7 the six stress tensor components in the order xx, yy, zz, xy,
// yz, zx. The same comment-skipping and validation rules as EnergyRead apply.
func StressRead(name string) (*StressSeries, error) {
	S := new(StressSeries)
	err := readTable(name, stressMinCols, func(fields []string, line int) error {
		var row [6]float64
		for i := range row {
			v, err := parseField(fields[stressFirstCol+i], name, line, "StressRead")
			if err != nil {
				return err
			}
			row[i] = v
		}
		for i, v := range row {
			S.Comp[i] = append(S.Comp[i], v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return S, nil
}
