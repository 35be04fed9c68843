// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"bytes"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/svg"
	"cogentcore.org/optics/dispersion"
	"cogentcore.org/optics/setup"
	"cogentcore.org/optics/sim"
)

// Options are the visual parameters of the overlay.
type Options struct {

	// HaloRadius is the radius in world units of the glow
	// around each source component.
	HaloRadius float32

	// HaloOpacity is the fill opacity of source halos.
	HaloOpacity float32

	// RayCoreWidth is the stroke width of the crisp inner ray stroke.
	RayCoreWidth float32

	// RayGlowWidth is the stroke width of the wide outer ray stroke.
	RayGlowWidth float32

	// RayCoreIntensity scales ray intensity into core stroke opacity.
	RayCoreIntensity float32

	// RayGlowIntensity scales ray intensity into glow stroke opacity.
	RayGlowIntensity float32
}

// Defaults sets the default overlay parameters.
func (o *Options) Defaults() {
	o.HaloRadius = 12
	o.HaloOpacity = 0.12
	o.RayCoreWidth = 2
	o.RayGlowWidth = 4
	o.RayCoreIntensity = 0.95
	o.RayGlowIntensity = 0.25
}

// Frame is one render's worth of inputs: the current components, rays, fans,
// and viewport transform. The renderer derives everything it draws from the
// frame alone, so rendering is a pure function of it.
type Frame struct {

	// Components are the current setup components.
	Components []*setup.Component

	// Rays are the most recent simulation result's traced rays.
	Rays []sim.Ray

	// Fans are the dispersion sub-rays derived from Rays;
	// see [dispersion.Fans].
	Fans []dispersion.SubRay

	// Transform is the diagram canvas's current viewport transform.
	Transform Transform
}

// Renderer builds the overlay SVG scene for a [Frame].
type Renderer struct {

	// Options are the visual parameters; see [Options.Defaults].
	Options Options
}

// NewRenderer returns a new [Renderer] with default options.
func NewRenderer() *Renderer {
	rr := &Renderer{}
	rr.Options.Defaults()
	return rr
}

// NewScene returns a new overlay SVG scene of the given size in screen units,
// ready to pass to [Renderer.Render] each frame.
func NewScene(width, height float32) *svg.SVG {
	return svg.NewSVG(math32.Vec2(width, height))
}

// Render rebuilds the scene from the given frame. Any prior contents are
// deleted and replaced wholesale; there are no partial updates. The scene is
// one root group named "overlay" carrying the viewport transform, with three
// ordered child groups: "halos" (one circle per source component), "rays"
// (a glow and a core polyline per traced ray), and "dispersion" (one
// two-point polyline per fan sub-ray). Node names are stable across renders
// of the same inputs.
func (rr *Renderer) Render(sv *svg.SVG, f *Frame) {
	sv.DeleteAll()
	root := svg.NewGroup(sv.Root)
	root.SetName("overlay")
	root.SetProperty("transform", f.Transform.TransformProperty())
	rr.halos(root, f.Components)
	rr.rays(root, f.Rays)
	rr.fans(root, f.Fans)
}

// RenderXML renders the frame into the scene and returns it as XML text,
// for collaborators that composite the overlay as markup.
func (rr *Renderer) RenderXML(sv *svg.SVG, f *Frame) (string, error) {
	rr.Render(sv, f)
	var b bytes.Buffer
	if err := sv.WriteXML(&b, false); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (rr *Renderer) halos(parent *svg.Group, comps []*setup.Component) {
	g := svg.NewGroup(parent)
	g.SetName("halos")
	for _, c := range comps {
		if c.Kind != setup.Source {
			continue
		}
		wl := float32(632.8)
		if sp, ok := c.Properties.(*setup.SourceProperties); ok {
			wl = sp.Wavelength
		}
		h := svg.NewCircle(g)
		h.SetName("halo-" + c.ID)
		h.Pos.Set(c.Position.X, c.Position.Y)
		h.Radius = rr.Options.HaloRadius
		h.SetProperty("fill", colors.AsHex(WavelengthColor(wl)))
		h.SetProperty("fill-opacity", rr.Options.HaloOpacity)
		h.SetProperty("stroke", "none")
	}
}

func (rr *Renderer) rays(parent *svg.Group, rays []sim.Ray) {
	g := svg.NewGroup(parent)
	g.SetName("rays")
	for _, ray := range rays {
		if len(ray.Points) < 2 {
			continue
		}
		pts := make([]math32.Vector2, len(ray.Points))
		for i, p := range ray.Points {
			pts[i] = p.Vec()
		}
		in := ray.Intensity / 100

		glow := svg.NewPolyline(g)
		glow.SetName(ray.ID + "-glow")
		glow.Points = pts
		glow.SetProperty("stroke", ray.Color)
		glow.SetProperty("stroke-width", rr.Options.RayGlowWidth)
		glow.SetProperty("stroke-opacity", in*rr.Options.RayGlowIntensity)
		glow.SetProperty("fill", "none")

		core := svg.NewPolyline(g)
		core.SetName(ray.ID + "-core")
		core.Points = pts
		core.SetProperty("stroke", ray.Color)
		core.SetProperty("stroke-width", rr.Options.RayCoreWidth)
		core.SetProperty("stroke-opacity", math32.Min(1, in*rr.Options.RayCoreIntensity))
		core.SetProperty("fill", "none")
	}
}

func (rr *Renderer) fans(parent *svg.Group, fans []dispersion.SubRay) {
	g := svg.NewGroup(parent)
	g.SetName("dispersion")
	for _, sr := range fans {
		p := svg.NewPolyline(g)
		p.SetName(sr.ID)
		p.Points = []math32.Vector2{sr.Start, sr.End}
		p.SetProperty("stroke", sr.Color)
		p.SetProperty("stroke-width", sr.Width)
		p.SetProperty("stroke-opacity", sr.Opacity)
		p.SetProperty("fill", "none")
	}
}

// wavelengthBands maps the visible spectrum to display colors, in ascending
// nanometer band order, the same banding the simulation engine uses for ray
// colors.
var wavelengthBands = []struct {
	max float32
	hex string
}{
	{450, "#8B00FF"},
	{495, "#0000FF"},
	{570, "#00FF00"},
	{590, "#FFFF00"},
	{620, "#FFA500"},
}

// WavelengthColor returns the display color for the given wavelength in
// nanometers, using fixed visible-spectrum bands from violet to red.
func WavelengthColor(nm float32) color.RGBA {
	for _, b := range wavelengthBands {
		if nm < b.max {
			return errors.Log1(colors.FromHex(b.hex))
		}
	}
	return errors.Log1(colors.FromHex("#FF0000"))
}
