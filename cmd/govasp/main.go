/*
 * main.go, part of govasp.
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

package main

import (
	"fmt"
	"os"
	"strconv"

	vasp "github.com/gomatsci/govasp"
	"github.com/gomatsci/govasp/trajplot"
	"github.com/spf13/cobra"
)

//The traj subcommand works on fixed file names, in the directory it is run
//from, exactly like the shell pipeline it replaces. No flags, no config.
const (
	energyFile = "energy.dat"
	volumeFile = "volume.dat"
	stressFile = "stress.dat"
	outputFile = "diagnostics.png"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "govasp",
		Short: "utilities for VASP/LAMMPS simulation workflows",
	}

	trajCmd := &cobra.Command{
		Use:   "traj",
		Short: "render the four-panel trajectory diagnostics figure",
		Long: "Reads " + energyFile + ", " + volumeFile + " and " + stressFile +
			" from the current directory and writes " + outputFile + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			E, err := vasp.EnergyRead(energyFile)
			if err != nil {
				return err
			}
			V, err := vasp.VolumeRead(volumeFile)
			if err != nil {
				return err
			}
			S, err := vasp.StressRead(stressFile)
			if err != nil {
				return err
			}
			if err := trajplot.Render(E, V, S, outputFile); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d steps)\n", outputFile, E.Len())
			fmt.Println(trajplot.Preview(E))
			return nil
		},
	}

	densityCmd := &cobra.Command{
		Use:   "density POSCAR",
		Short: "crystal density of a POSCAR structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := vasp.POSCARRead(args[0])
			if err != nil {
				return err
			}
			d, err := S.Density()
			if err != nil {
				return err
			}
			fmt.Printf("The density of the crystal is %.3f g/cm^3\n", d)
			return nil
		},
	}

	axisCmd := &cobra.Command{
		Use:   "axis POSCAR",
		Short: "lattice parameters of a POSCAR structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := vasp.POSCARRead(args[0])
			if err != nil {
				return err
			}
			p := S.Params()
			fmt.Println("      a         b         c       alpha     beta     gamma")
			fmt.Printf("%9.5f %9.5f %9.5f %9.4f %9.4f %9.4f\n",
				p.A, p.B, p.C, p.Alpha, p.Beta, p.Gamma)
			return nil
		},
	}

	xyzCmd := &cobra.Command{
		Use:   "xyz POSCAR OUTPUT",
		Short: "convert a POSCAR structure to an XYZ file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := vasp.POSCARRead(args[0])
			if err != nil {
				return err
			}
			if err := vasp.XYZWrite(args[1], S); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d atoms)\n", args[1], S.Len())
			return nil
		},
	}

	conductCmd := &cobra.Command{
		Use:   "conduct COUNT SLOPE VOLUME TEMPERATURE",
		Short: "ionic conductivity from an MSD slope (Nernst-Einstein)",
		Long: "COUNT is the number of carrier ions, SLOPE the MSD slope in A^2/ps,\n" +
			"VOLUME the cell volume in A^3 and TEMPERATURE in K. Bulk diffusion\n" +
			"(dimensionality factor 3) is assumed.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("COUNT must be an integer: %s", args[0])
			}
			nums := make([]float64, 3)
			for i, a := range args[1:] {
				nums[i], err = strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("not a number: %s", a)
				}
			}
			sigma, err := vasp.IonicConductivity(count, nums[0], nums[1], nums[2], 3)
			if err != nil {
				return err
			}
			fmt.Printf("ionic conductivity: %.3f mS/cm\n", sigma)
			return nil
		},
	}

	rootCmd.AddCommand(trajCmd, densityCmd, axisCmd, xyzCmd, conductCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
