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

package vasp

import "fmt"

//This error scheme predates the "wrapping" error system of Go (the "%w"
//directive and the errors package). The Decorate method lets callers add
//information when passing an error up, without changing its type.

// Error is the interface for errors that all packages in this library
// implement. Decorate adds and retrieves info from the error. The decoration
// slice should contain the functions in the calling stack plus, for each
// function, any relevant information, in the format "FunctionName: Extra info".
// If passed an empty string it just returns the current value.
type Error interface {
	Error() string
	Decorate(string) []string
}

// FileError is an Error that can also name the input file that caused it.
type FileError interface {
	Error
	FileName() string
}

//Messages for TableError. The fixed set makes it easy for callers to tell
//the three failure kinds apart without string matching on full messages.
const (
	UnableToOpen   = "Unable to open file"
	WrongColumns   = "Wrong number of columns"
	NotANumber     = "Non-numeric value in a numeric column"
	EmptyTable     = "No data rows in file"
	UnableToWrite  = "Unable to write file"
	WrongFormat    = "Wrong format"
	MissingSymbols = "POSCAR has no element symbol line (VASP 4 format not supported)"
)

// TableError is the concrete error for the whitespace-table and POSCAR
// readers. It fulfills Error and FileError.
type TableError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based offending line, or 0 if not line-specific.
	deco     []string
}

func (err *TableError) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("govasp: file %s, line %d: %s", err.filename, err.line, err.message)
	}
	return fmt.Sprintf("govasp: file %s: %s", err.filename, err.message)
}

func (err *TableError) FileName() string { return err.filename }

// Message returns the message constant the error was built with.
func (err *TableError) Message() string { return err.message }

func (err *TableError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func newTableError(message, filename string, line int, deco ...string) *TableError {
	return &TableError{message: message, filename: filename, line: line, deco: deco}
}
