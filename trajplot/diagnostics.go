/*
 * diagnostics.go, part of govasp.
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

/*Package trajplot renders the four-panel trajectory diagnostics figure
(total energy, stress tensor, temperature and cell volume over the recorded
ionic steps) from the column files read by the vasp package.*/
package trajplot

import (
	"image/color"
	"os"
	"strconv"

	vasp "github.com/gomatsci/govasp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//The figure geometry is fixed: four stacked panels, one column.
const (
	figWidth  = 7 * vg.Inch
	figHeight = 10 * vg.Inch
)

//energyPoints pairs the step index with the total energy, one point per
//recorded ionic step, in input row order.
func energyPoints(E *vasp.EnergySeries) plotter.XYs {
	pts := make(plotter.XYs, E.Len())
	for i := range pts {
		pts[i].X = E.Steps[i]
		pts[i].Y = E.Energies[i]
	}
	return pts
}

//temperaturePoints pairs the step index with the temperature.
func temperaturePoints(E *vasp.EnergySeries) plotter.XYs {
	pts := make(plotter.XYs, E.Len())
	for i := range pts {
		pts[i].X = E.Steps[i]
		pts[i].Y = E.Temps[i]
	}
	return pts
}

//volumePoints pairs the energy-series step index with the cell volume.
//The two series are extracted independently so their row counts can differ;
//both are silently truncated to the shorter one before pairing. This is the
//only place any alignment happens.
func volumePoints(E *vasp.EnergySeries, V *vasp.VolumeSeries) plotter.XYs {
	n := E.Len()
	if V.Len() < n {
		n = V.Len()
	}
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X = E.Steps[i]
		pts[i].Y = V.Volumes[i]
	}
	return pts
}

//stressPoints pairs the row index with one stress component. The stress
//series is plotted against its own row index and is never aligned to the
//energy or volume series; the asymmetry comes from the workflow this
//replaces and is kept as documented behavior.
func stressPoints(S *vasp.StressSeries, comp int) plotter.XYs {
	pts := make(plotter.XYs, S.Len())
	for i := range pts {
		pts[i].X = float64(i)
		pts[i].Y = S.Comp[comp][i]
	}
	return pts
}

//decimalTicks formats the default tick positions with a fixed number of
//decimals, for the energy axis where the per-step differences drown in the
//default short labels.
type decimalTicks struct {
	prec int
}

func (t decimalTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		ticks[i].Label = strconv.FormatFloat(ticks[i].Value, 'f', t.prec, 64)
	}
	return ticks
}

//linePanel builds one single-trace panel.
func linePanel(title, xlabel, ylabel string, pts plotter.XYs, col color.RGBA) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 2 * vg.Millimeter
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = col
	p.Add(l)
	return p, nil
}

//stressPanel builds the six-trace stress panel. gonum/plot has no
//multi-column legend, so the first three components go on the plot's own
//legend and the last three on a second legend that the caller must draw
//with an x offset, giving the two columns.
func stressPanel(S *vasp.StressSeries) (*plot.Plot, *plot.Legend, error) {
	p := plot.New()
	p.Title.Text = "Stress tensor"
	p.Title.Padding = 2 * vg.Millimeter
	p.X.Label.Text = "Row index"
	p.Y.Label.Text = "Stress (kB)"
	p.Add(plotter.NewGrid())
	second := plot.NewLegend()
	for i, name := range vasp.StressComponents {
		l, err := plotter.NewLine(stressPoints(S, i))
		if err != nil {
			return nil, nil, err
		}
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Color = traceColor(i, len(vasp.StressComponents))
		p.Add(l)
		if i < 3 {
			p.Legend.Add(name, l)
		} else {
			second.Add(name, l)
		}
	}
	p.Legend.Top = true
	//first column sits left of the second one
	p.Legend.XOffs = -14 * vg.Millimeter
	second.Top = true
	return p, &second, nil
}

// Render composes the four fixed panels, in order total energy, stress
// tensor, temperature and volume, and writes the figure as a PNG file named
// outname. The file handle is closed before returning; on any error no
// usable image is produced.
func Render(E *vasp.EnergySeries, V *vasp.VolumeSeries, S *vasp.StressSeries, outname string) error {
	blue := color.RGBA{B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 190, A: 255}
	energy, err := linePanel("Total energy", "Step", "Energy (eV)", energyPoints(E), blue)
	if err != nil {
		return errDecorate(err, "Render")
	}
	energy.Y.Tick.Marker = decimalTicks{prec: 4}
	stress, legend, err := stressPanel(S)
	if err != nil {
		return errDecorate(err, "Render")
	}
	temp, err := linePanel("Temperature", "Step", "Temperature (K)", temperaturePoints(E), red)
	if err != nil {
		return errDecorate(err, "Render")
	}
	vol, err := linePanel("Cell volume", "Step", "Volume (A^3)", volumePoints(E, V), green)
	if err != nil {
		return errDecorate(err, "Render")
	}

	img := vgimg.New(figWidth, figHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      4,
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      3 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}
	panels := [][]*plot.Plot{{energy}, {stress}, {temp}, {vol}}
	canvases := plot.Align(panels, tiles, dc)
	for i := range panels {
		panels[i][0].Draw(canvases[i][0])
	}
	//second column of the stress legend
	legend.Draw(canvases[1][0])

	out, err := os.Create(outname)
	if err != nil {
		return &plotError{message: vasp.UnableToWrite, filename: outname, deco: []string{"Render"}}
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(out); err != nil {
		out.Close()
		return &plotError{message: vasp.UnableToWrite, filename: outname, deco: []string{"Render", "png.WriteTo: " + err.Error()}}
	}
	if err := out.Close(); err != nil {
		return &plotError{message: vasp.UnableToWrite, filename: outname, deco: []string{"Render", "Close: " + err.Error()}}
	}
	return nil
}

// Diagnostics reads the three column files and renders the diagnostics
// figure to outname. Any read error (missing file, malformed table) or
// rendering/write error is fatal for the whole run: no image is produced
// and the returned error names the offending file.
func Diagnostics(energyfile, volumefile, stressfile, outname string) error {
	E, err := vasp.EnergyRead(energyfile)
	if err != nil {
		return errDecorate(err, "Diagnostics")
	}
	V, err := vasp.VolumeRead(volumefile)
	if err != nil {
		return errDecorate(err, "Diagnostics")
	}
	S, err := vasp.StressRead(stressfile)
	if err != nil {
		return errDecorate(err, "Diagnostics")
	}
	return Render(E, V, S, outname)
}
