// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"strconv"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/svg"
	"cogentcore.org/optics/sim"
)

// sweep chart layout margins in screen units, leaving room for the
// axis labels on the left and bottom.
const (
	sweepLeft   = float32(48)
	sweepRight  = float32(16)
	sweepTop    = float32(16)
	sweepBottom = float32(36)
)

// sweepCurveColor is the stroke color of the transmission curve.
const sweepCurveColor = "#005BC0"

// SweepPlot builds an SVG line chart of the simulation result's frequency
// sweep, transmission percentage over frequency, at the given size in screen
// units. The transmission axis always spans 0 to 100; the frequency axis
// spans the sweep's range. An empty sweep yields the axes and labels with no
// curve. Drawing and embedding the chart is the caller's concern.
func SweepPlot(sweep []sim.FrequencyPoint, width, height float32) *svg.SVG {
	sv := svg.NewSVG(math32.Vec2(width, height))
	x0, y0 := sweepLeft, height-sweepBottom
	x1, y1 := width-sweepRight, sweepTop

	axes := svg.NewGroup(sv.Root)
	axes.SetName("axes")
	for _, ln := range []struct {
		name   string
		pts    []math32.Vector2
		txt    string
		txtPos math32.Vector2
	}{
		{"x-axis", []math32.Vector2{{X: x0, Y: y0}, {X: x1, Y: y0}},
			"Frequency (THz)", math32.Vec2((x0+x1)/2, height-8)},
		{"y-axis", []math32.Vector2{{X: x0, Y: y0}, {X: x0, Y: y1}},
			"Transmission (%)", math32.Vec2(x0, y1-4)},
	} {
		ax := svg.NewPolyline(axes)
		ax.SetName(ln.name)
		ax.Points = ln.pts
		ax.SetProperty("stroke", "#888888")
		ax.SetProperty("stroke-width", float32(1))
		ax.SetProperty("fill", "none")

		lb := svg.NewText(axes)
		lb.SetName(ln.name + "-label")
		lb.Pos = ln.txtPos
		lb.Text = ln.txt
		lb.SetProperty("font-size", float32(11))
		lb.SetProperty("fill", "#444444")
		lb.SetProperty("text-anchor", "middle")
	}
	sweepTick(axes, "y-min", math32.Vec2(x0-6, y0), "0")
	sweepTick(axes, "y-max", math32.Vec2(x0-6, y1+4), "100")

	curve := svg.NewGroup(sv.Root)
	curve.SetName("curve")
	if len(sweep) == 0 {
		return sv
	}

	fmin, fmax := sweep[0].Frequency, sweep[0].Frequency
	for _, fp := range sweep {
		fmin = math32.Min(fmin, fp.Frequency)
		fmax = math32.Max(fmax, fp.Frequency)
	}
	sweepTick(axes, "x-min", math32.Vec2(x0, y0+14), strconv.FormatFloat(float64(fmin), 'g', -1, 32))
	sweepTick(axes, "x-max", math32.Vec2(x1, y0+14), strconv.FormatFloat(float64(fmax), 'g', -1, 32))

	pts := make([]math32.Vector2, len(sweep))
	for i, fp := range sweep {
		x := (x0 + x1) / 2 // a zero-span sweep sits in the middle
		if fmax > fmin {
			x = x0 + (fp.Frequency-fmin)/(fmax-fmin)*(x1-x0)
		}
		y := y0 + math32.Clamp(fp.Transmission, 0, 100)/100*(y1-y0)
		pts[i] = math32.Vec2(x, y)
	}
	pl := svg.NewPolyline(curve)
	pl.SetName("transmission")
	pl.Points = pts
	pl.SetProperty("stroke", sweepCurveColor)
	pl.SetProperty("stroke-width", float32(2))
	pl.SetProperty("fill", "none")
	return sv
}

func sweepTick(parent *svg.Group, name string, pos math32.Vector2, text string) {
	tk := svg.NewText(parent)
	tk.SetName(name)
	tk.Pos = pos
	tk.Text = text
	tk.SetProperty("font-size", float32(10))
	tk.SetProperty("fill", "#444444")
	tk.SetProperty("text-anchor", "middle")
}
