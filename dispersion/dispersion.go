// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dispersion derives spectral fans from traced rays: wherever a ray
// segment passes close to a dispersive component, a fan of spectral sub-rays
// spreads out from the component, violet deflected most and red least.
// Everything here is a pure function of its inputs; fans are regenerated
// from scratch whenever the rays or components change and are never stored.
package dispersion

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/optics/setup"
	"cogentcore.org/optics/sim"
)

// Label is the display name that marks a component as dispersive,
// compared case-insensitively. This is a label heuristic, not a component
// kind: any component a user names "prism" produces spectral fans.
// TODO: promote dispersive to a proper component kind so it no longer
// depends on the display name.
const Label = "prism"

// Palette is the fixed spectral palette of fan sub-rays, ordered
// violet to red. Sub-ray k of a fan gets Palette[k].
var Palette = []string{"#8B00FF", "#0000FF", "#00FF00", "#FFFF00", "#FFA500", "#FF0000"}

// Options are the geometric parameters of fan generation.
type Options struct {

	// Label is the display name marking a component as dispersive,
	// matched case-insensitively.
	Label string

	// Proximity is the maximum distance in world units from a dispersive
	// component to a ray segment that still produces a fan.
	Proximity float32

	// MaxDeflect is the deflection angle in radians of the violet end of
	// the fan; the red end deflects by half of it.
	MaxDeflect float32

	// Length is the length of each sub-ray in world units.
	Length float32

	// Opacity is the stroke opacity of each sub-ray.
	Opacity float32

	// Width is the stroke width of each sub-ray.
	Width float32

	// Bands is the number of sub-rays per fan, at most len([Palette]).
	Bands int
}

// Defaults sets the default fan parameters.
func (o *Options) Defaults() {
	o.Label = Label
	o.Proximity = 24
	o.MaxDeflect = 0.18
	o.Length = 240
	o.Opacity = 0.85
	o.Width = 2
	o.Bands = len(Palette)
}

// bands returns the effective band count, clamped to [2, len(Palette)].
func (o *Options) bands() int {
	n := o.Bands
	if n > len(Palette) {
		n = len(Palette)
	}
	if n < 2 {
		n = 2
	}
	return n
}

// SubRay is one spectral sub-ray of a fan: a two-point world-space segment
// from the dispersive component outward, with its spectral color and stroke
// parameters. Sub-rays are derived per frame and never persisted.
type SubRay struct {

	// ID identifies the sub-ray across re-renders. It combines the source
	// ray id, the segment index within the ray, and the spectral index,
	// so the same inputs always produce the same ids.
	ID string

	// Start is the fan origin: the dispersive component's position.
	Start math32.Vector2

	// End is the sub-ray endpoint, [Options.Length] away from Start.
	End math32.Vector2

	// Color is the spectral palette color for this band.
	Color string

	// Opacity is the stroke opacity.
	Opacity float32

	// Width is the stroke width.
	Width float32
}

// Dispersive returns the components whose display name matches the given
// label, compared case-insensitively. An empty label matches nothing.
func Dispersive(comps []*setup.Component, label string) []*setup.Component {
	if label == "" {
		return nil
	}
	var ds []*setup.Component
	for _, c := range comps {
		if strings.EqualFold(c.DisplayName, label) {
			ds = append(ds, c)
		}
	}
	return ds
}

// Fans generates the spectral fans for the given rays and dispersive
// components. For every consecutive point pair of every ray, every
// dispersive component within [Options.Proximity] of that segment emits one
// fan of [Options.Bands] sub-rays, spread from the segment direction by
// deflection angles decreasing from violet to red. Degenerate segments with
// coincident endpoints have no direction and emit nothing. The computation
// is pure and deterministic; with no rays or no dispersive components the
// result is nil. A nil opts uses [Options.Defaults].
func Fans(rays []sim.Ray, dispersive []*setup.Component, opts *Options) []SubRay {
	if len(rays) == 0 || len(dispersive) == 0 {
		return nil
	}
	if opts == nil {
		opts = &Options{}
		opts.Defaults()
	}
	bands := opts.bands()
	var fans []SubRay
	for _, ray := range rays {
		for i := 0; i+1 < len(ray.Points); i++ {
			p1 := ray.Points[i].Vec()
			p2 := ray.Points[i+1].Vec()
			if p1 == p2 {
				continue
			}
			seg := math32.NewLine2(p1, p2)
			dir := seg.Delta().Normal()
			for _, c := range dispersive {
				pos := c.Position.Vec()
				if seg.ClosestPointToPoint(pos).DistanceTo(pos) > opts.Proximity {
					continue
				}
				for k := 0; k < bands; k++ {
					// violet (k=0) deflects by MaxDeflect, red by half
					tk := float32(bands-1-k) / float32(bands-1)
					theta := (tk*0.5 + 0.5) * opts.MaxDeflect
					sub := math32.Rotate2D(theta).MulVector2AsVector(dir)
					fans = append(fans, SubRay{
						ID:      fmt.Sprintf("%s-%d-%d", ray.ID, i, k),
						Start:   pos,
						End:     pos.Add(sub.MulScalar(opts.Length)),
						Color:   Palette[k],
						Opacity: opts.Opacity,
						Width:   opts.Width,
					})
				}
			}
		}
	}
	return fans
}
