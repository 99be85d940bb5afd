/*
 * preview.go, part of govasp.
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
	"github.com/guptarohit/asciigraph"

	vasp "github.com/gomatsci/govasp"
)

// Preview returns a terminal chart of the total energy series, a quick
// convergence check without opening the PNG. Returns the empty string for
// an empty series.
func Preview(E *vasp.EnergySeries) string {
	if E == nil || E.Len() == 0 {
		return ""
	}
	return asciigraph.Plot(E.Energies,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption("total energy (eV) per recorded step"))
}
