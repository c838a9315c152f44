// This file is part of ppulookup.
//
// ppulookup is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ppulookup is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ppulookup.  If not, see <https://www.gnu.org/licenses/>.

// Package timeline draws a scanline table as a chart. Each cycle is plotted
// against the row of its action, with a line marking the boundary between the
// regions of the scanline.
//
// Charts are drawn with gonum.org/v1/plot and can be written as PNG, SVG or
// PDF. The Image() function draws the chart directly into an image.Image.
package timeline

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Curated error patterns.
const (
	TimelineError = "timeline: %v"
	UnknownFormat = "timeline: unknown format (%s)"
)

// Formats supported by Render().
var Formats = []string{"png", "svg", "pdf"}

// default size of the chart.
const (
	DefaultWidth  = 30 * vg.Centimeter
	DefaultHeight = 12 * vg.Centimeter
)

// Boundaries returns the position of each boundary between regions of the
// scanline. A boundary sits between the last cycle of one region and the
// first cycle of the next.
func Boundaries(tm scanline.Timing) []float64 {
	var b []float64
	for c := scanline.Cycle(1); c < scanline.CyclesPerScanline; c++ {
		if tm.Region(c) != tm.Region(c-1) {
			b = append(b, float64(c)-0.5)
		}
	}
	return b
}

// Plot creates the chart for the table.
func Plot(tab *scanline.Table, tm scanline.Timing) (*plot.Plot, error) {
	if err := tab.Validate(); err != nil {
		return nil, curated.Errorf(TimelineError, err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Scanline (%s)", tm.Name)
	p.X.Label.Text = "Cycle"
	p.X.Min = 0
	p.X.Max = scanline.CyclesPerScanline - 1
	p.Y.Min = -0.5
	p.Y.Max = float64(len(scanline.Actions)) - 0.5

	ticks := make([]plot.Tick, len(scanline.Actions))
	for i, a := range scanline.Actions {
		ticks[i] = plot.Tick{Value: float64(i), Label: a.String()}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	for _, bnd := range Boundaries(tm) {
		l, err := plotter.NewLine(plotter.XYs{{X: bnd, Y: p.Y.Min}, {X: bnd, Y: p.Y.Max}})
		if err != nil {
			return nil, curated.Errorf(TimelineError, err)
		}
		l.LineStyle.Width = vg.Points(0.5)
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(l)
	}

	for i, a := range scanline.Actions {
		cycles := tab.Cycles(a)
		if len(cycles) == 0 {
			continue // for loop
		}

		xys := make(plotter.XYs, len(cycles))
		for j, c := range cycles {
			xys[j].X = float64(c)
			xys[j].Y = float64(i)
		}

		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, curated.Errorf(TimelineError, err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(s)
	}

	return p, nil
}

// Render writes the chart for the table to w in the named format.
func Render(tab *scanline.Table, tm scanline.Timing, w io.Writer, format string, width vg.Length, height vg.Length) error {
	format = strings.ToLower(format)
	if !supported(format) {
		return curated.Errorf(UnknownFormat, format)
	}

	p, err := Plot(tab, tm)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return curated.Errorf(TimelineError, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return curated.Errorf(TimelineError, err)
	}
	return nil
}

// Save the chart for the table to the named file. The format is taken from
// the file extension.
func Save(tab *scanline.Table, tm scanline.Timing, filename string, width vg.Length, height vg.Length) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !supported(format) {
		return curated.Errorf(UnknownFormat, format)
	}

	p, err := Plot(tab, tm)
	if err != nil {
		return err
	}

	if err := p.Save(width, height, filename); err != nil {
		return curated.Errorf(TimelineError, err)
	}
	return nil
}

// Image draws the chart for the table into a new image of the given pixel
// dimensions.
func Image(tab *scanline.Table, tm scanline.Timing, width int, height int) (image.Image, error) {
	p, err := Plot(tab, tm)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))

	return c.Image(), nil
}

func supported(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
