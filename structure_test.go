/*
 * structure_test.go, part of govasp.
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
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

//TestPOSCARIO reads the LiF sample cell and checks atom bookkeeping,
//volume, lattice parameters and the direct-to-cartesian conversion.
func TestPOSCARIO(Te *testing.T) {
	S, err := POSCARRead("test/POSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("POSCAR read:", S.Comment, S.Len(), "atoms")
	if S.Len() != 8 {
		Te.Fatalf("expected 8 atoms, got %d", S.Len())
	}
	if S.Symbols[0] != "Li" || S.Symbols[4] != "F" {
		Te.Errorf("symbols misread: %v", S.Symbols)
	}
	if v := S.Volume(); math.Abs(v-4.02*4.02*4.02) > 1e-9 {
		Te.Errorf("wrong cell volume: %v", v)
	}
	p := S.Params()
	if math.Abs(p.A-4.02) > 1e-9 || math.Abs(p.B-4.02) > 1e-9 || math.Abs(p.C-4.02) > 1e-9 {
		Te.Errorf("wrong lattice lengths: %+v", p)
	}
	if math.Abs(p.Alpha-90) > 1e-9 || math.Abs(p.Beta-90) > 1e-9 || math.Abs(p.Gamma-90) > 1e-9 {
		Te.Errorf("wrong lattice angles: %+v", p)
	}
	//second atom is at fractional (0.5, 0.5, 0), so cartesian (2.01, 2.01, 0)
	if math.Abs(S.Coords.At(1, 0)-2.01) > 1e-9 || math.Abs(S.Coords.At(1, 2)) > 1e-9 {
		Te.Errorf("direct coordinates not converted: %v %v", S.Coords.At(1, 0), S.Coords.At(1, 2))
	}
}

func TestDensity(Te *testing.T) {
	S, err := POSCARRead("test/POSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	d, err := S.Density()
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Printf("The density of the crystal is %.3f g/cm^3\n", d)
	//LiF is ~2.64 g/cm^3 experimentally
	if math.Abs(d-2.652) > 0.01 {
		Te.Errorf("wrong density: %v", d)
	}
}

//TestVASP4Rejected checks that a POSCAR without the element symbol line
//(VASP 4 format) is refused rather than guessed at.
func TestVASP4Rejected(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "POSCAR4")
	content := "old style\n1.0\n4.0 0 0\n0 4.0 0\n0 0 4.0\n1\nDirect\n0 0 0\n"
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err := POSCARRead(name)
	if err == nil {
		Te.Fatal("expected VASP 4 POSCAR to be rejected")
	}
	terr, ok := err.(*TableError)
	if !ok || terr.Message() != MissingSymbols {
		Te.Errorf("expected a MissingSymbols TableError, got %v", err)
	}
}

func TestXYZIO(Te *testing.T) {
	S, err := POSCARRead("test/POSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "lif.xyz")
	if err := XYZWrite(name, S); err != nil {
		Te.Fatal(err)
	}
	f, err := os.Open(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lines := 0
	for scanner.Scan() {
		lines++
		if lines == 2 && !strings.Contains(scanner.Text(), "LiF") {
			Te.Errorf("comment line not carried over: %s", scanner.Text())
		}
	}
	if lines != S.Len()+2 {
		Te.Errorf("expected %d lines in the XYZ file, got %d", S.Len()+2, lines)
	}
}

func TestMSDSlope(Te *testing.T) {
	times := []float64{0, 1, 2, 3, 4}
	msd := []float64{1, 3, 5, 7, 9} //slope 2, intercept 1
	slope, err := MSDSlope(times, msd)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(slope-2) > 1e-12 {
		Te.Errorf("wrong MSD slope: %v", slope)
	}
	if _, err := MSDSlope(times, msd[:3]); err == nil {
		Te.Error("expected an error for mismatched series lengths")
	}
}

//TestIonicConductivity reproduces the reference numbers of the workflow
//this replaces: 96 Li ions, slope 0.02 A^2/ps, 8852 A^3, 400 K -> ~16.8 mS/cm.
func TestIonicConductivity(Te *testing.T) {
	sigma, err := IonicConductivity(96, 0.02, 8852, 400, 3)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Printf("ionic conductivity: %.3f mS/cm\n", sigma)
	if math.Abs(sigma-16.8) > 0.1 {
		Te.Errorf("wrong conductivity: %v", sigma)
	}
	if _, err := IonicConductivity(0, 0.02, 8852, 400, 3); err == nil {
		Te.Error("expected an error for a non-positive carrier count")
	}
}
