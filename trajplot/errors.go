/*
 * errors.go, part of govasp.
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

package trajplot

import (
	"fmt"

	vasp "github.com/gomatsci/govasp"
)

//errDecorate adds the caller's name to errors that implement vasp.Error and
//passes everything else through unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(vasp.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//plotError is the error for failures while composing or writing the figure.
//It fulfills vasp.Error and vasp.FileError.
type plotError struct {
	message  string
	filename string //the output file, or empty string if none.
	deco     []string
}

func (err *plotError) Error() string {
	return fmt.Sprintf("trajplot: file %s: %s", err.filename, err.message)
}

func (err *plotError) FileName() string { return err.filename }

func (err *plotError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
