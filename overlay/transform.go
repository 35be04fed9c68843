// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlay renders the derived visuals of an optical setup, source
// halos, traced rays, and dispersion fans, as an SVG scene aligned with the
// diagram canvas. The scene is rebuilt from scratch on every render from the
// current components, rays, fans, and viewport transform, so it can never go
// stale relative to the canvas.
package overlay

import "cogentcore.org/core/math32"

// Transform is the diagram canvas's current view state: the pan offset and
// zoom scale applied to world coordinates. The overlay maps a world point to
// the screen exactly as the canvas positions its own nodes,
// (x*Zoom+Translate.X, y*Zoom+Translate.Y), so rays stay pixel-aligned with
// components while panning and zooming.
type Transform struct {

	// Translate is the pan offset in screen units.
	Translate math32.Vector2

	// Zoom is the zoom scale; it is always > 0.
	Zoom float32
}

// Identity returns the identity [Transform]: no pan, unit zoom.
func Identity() Transform {
	return Transform{Zoom: 1}
}

// Valid reports whether the transform is usable (Zoom > 0).
func (t Transform) Valid() bool {
	return t.Zoom > 0
}

// Matrix returns the transform as a world-to-screen matrix,
// translation applied after scaling.
func (t Transform) Matrix() math32.Matrix2 {
	return math32.Translate2D(t.Translate.X, t.Translate.Y).Mul(math32.Scale2D(t.Zoom, t.Zoom))
}

// TransformProperty returns the transform in SVG transform syntax,
// for a scene node's transform property.
func (t Transform) TransformProperty() string {
	m := t.Matrix() // Matrix2.String has a pointer receiver
	return m.String()
}

// WorldToScreen maps a world point to screen coordinates.
func (t Transform) WorldToScreen(p math32.Vector2) math32.Vector2 {
	return t.Matrix().MulVector2AsPoint(p)
}

// ScreenToWorld maps a screen point back to world coordinates,
// for hit-testing canvas events against world geometry.
func (t Transform) ScreenToWorld(p math32.Vector2) math32.Vector2 {
	return t.Matrix().Inverse().MulVector2AsPoint(p)
}

// Tracker reads the diagram canvas's current transform each frame.
// It never caches: every [Tracker.Current] call reads through to the canvas,
// so a render during a pan or zoom gesture always uses the live value.
type Tracker struct {

	// Source returns the canvas's current transform.
	Source func() Transform
}

// Current returns the canvas's current transform, or [Identity] if no source
// is set or the source reports an invalid transform.
func (tk *Tracker) Current() Transform {
	if tk == nil || tk.Source == nil {
		return Identity()
	}
	t := tk.Source()
	if !t.Valid() {
		return Identity()
	}
	return t
}
