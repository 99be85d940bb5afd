/*
 * series_test.go, part of govasp.
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
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/floats"
)

//TestEnergyRead reads the sample energy file and checks that the comment
//row is skipped and the three used columns land in the right slices.
func TestEnergyRead(Te *testing.T) {
	E, err := EnergyRead("test/energy.dat")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("energy series read,", E.Len(), "steps")
	if E.Len() != 5 {
		Te.Errorf("expected 5 recorded steps, got %d", E.Len())
	}
	if E.Steps[0] != 1 || E.Steps[4] != 5 {
		Te.Errorf("step column misread: %v", E.Steps)
	}
	if E.Temps[2] != 298.70 {
		Te.Errorf("temperature column misread: %v", E.Temps)
	}
	if E.Energies[4] != -100.56789 {
		Te.Errorf("energy column misread: %v", E.Energies)
	}
}

func TestVolumeRead(Te *testing.T) {
	V, err := VolumeRead("test/volume.dat")
	if err != nil {
		Te.Fatal(err)
	}
	if V.Len() != 3 {
		Te.Errorf("expected 3 volumes, got %d", V.Len())
	}
	if V.Volumes[0] != 8852.23 || V.Volumes[2] != 8854.02 {
		Te.Errorf("volume column misread: %v", V.Volumes)
	}
}

//TestStressRead checks the six components come out in the fixed order
//xx, yy, zz, xy, yz, zx.
func TestStressRead(Te *testing.T) {
	S, err := StressRead("test/stress.dat")
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 4 {
		Te.Errorf("expected 4 recorded steps, got %d", S.Len())
	}
	first := []float64{-1.20, -1.35, -1.10, 0.10, 0.21, 0.32}
	for i := range StressComponents {
		if len(S.Comp[i]) != 4 {
			Te.Errorf("component %s has %d rows, expected 4", StressComponents[i], len(S.Comp[i]))
		}
		if S.Comp[i][0] != first[i] {
			Te.Errorf("component %s misread: got %v, expected %v", StressComponents[i], S.Comp[i][0], first[i])
		}
	}
}

func TestMissingFile(Te *testing.T) {
	_, err := EnergyRead("test/no_such_file.dat")
	if err == nil {
		Te.Fatal("expected an error for a missing file")
	}
	ferr, ok := err.(FileError)
	if !ok {
		Te.Fatalf("expected a FileError, got %T", err)
	}
	if ferr.FileName() != "test/no_such_file.dat" {
		Te.Errorf("error does not name the offending file: %s", ferr.FileName())
	}
	fmt.Println("missing file reported as:", err.Error())
}

//TestMalformedTable checks that wrong column counts and non-numeric content
//in a used column abort the read with an error naming file and line.
func TestMalformedTable(Te *testing.T) {
	dir := Te.TempDir()
	short := filepath.Join(dir, "short.dat")
	err := os.WriteFile(short, []byte("1 T= 300.0 E0= -100.0\n2 T= 301.0\n"), 0644)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = EnergyRead(short)
	if err == nil {
		Te.Fatal("expected an error for a row with too few columns")
	}
	terr, ok := err.(*TableError)
	if !ok || terr.Message() != WrongColumns {
		Te.Errorf("expected a WrongColumns TableError, got %v", err)
	}
	bad := filepath.Join(dir, "bad.dat")
	err = os.WriteFile(bad, []byte("1 T= 300.0 E0= notanumber\n"), 0644)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = EnergyRead(bad)
	if err == nil {
		Te.Fatal("expected an error for non-numeric content")
	}
	terr, ok = err.(*TableError)
	if !ok || terr.Message() != NotANumber {
		Te.Errorf("expected a NotANumber TableError, got %v", err)
	}
	fmt.Println("malformed table reported as:", err.Error())
}

func TestEmptyTable(Te *testing.T) {
	dir := Te.TempDir()
	empty := filepath.Join(dir, "empty.dat")
	err := os.WriteFile(empty, []byte("# only a comment\n\n"), 0644)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = VolumeRead(empty)
	if err == nil {
		Te.Fatal("expected an error for a table with no data rows")
	}
	terr, ok := err.(*TableError)
	if !ok || terr.Message() != EmptyTable {
		Te.Errorf("expected an EmptyTable TableError, got %v", err)
	}
}

//TestGzipRead gzips the sample energy file and checks the reader sees the
//same series through the compressed path.
func TestGzipRead(Te *testing.T) {
	plain, err := os.ReadFile("test/energy.dat")
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "energy.dat.gz")
	f, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write(plain); err != nil {
		Te.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := f.Close(); err != nil {
		Te.Fatal(err)
	}
	E, err := EnergyRead("test/energy.dat")
	if err != nil {
		Te.Fatal(err)
	}
	Egz, err := EnergyRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(E.Energies, Egz.Energies) || !floats.Equal(E.Temps, Egz.Temps) {
		Te.Error("gzipped energy file read differently from the plain one")
	}
}
