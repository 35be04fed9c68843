// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package setup provides the data model for an optical setup: the typed
// optical components placed on the diagram, the [Registry] that owns and
// mutates them, and the JSON setup file codec shared with the simulation
// engine. All geometry is expressed in world units, the shared coordinate
// space of component positions, traced rays, and derived overlay visuals.
package setup

import "cogentcore.org/core/math32"

// Point is a position or vertex in world units. It has explicit lowercase
// JSON field names matching the setup file format and the simulation engine
// wire format; use [Point.Vec] to do geometry on it as a [math32.Vector2].
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Pt returns a new [Point] with the given coordinates.
func Pt(x, y float32) Point {
	return Point{x, y}
}

// PointFromVec returns the given [math32.Vector2] as a [Point].
func PointFromVec(v math32.Vector2) Point {
	return Point{v.X, v.Y}
}

// Vec returns the point as a [math32.Vector2].
func (p Point) Vec() math32.Vector2 {
	return math32.Vec2(p.X, p.Y)
}

// Settings configure the simulation engine's frequency sweep.
type Settings struct {

	// FreqStart is the sweep start frequency, in THz.
	FreqStart float32 `json:"freqStart"`

	// FreqStop is the sweep stop frequency, in THz.
	FreqStop float32 `json:"freqStop"`

	// FreqPoints is the number of sample points across the sweep.
	// The engine emits a single point at FreqStart if this is <= 1.
	FreqPoints int `json:"freqPoints"`
}

// Defaults sets default sweep settings spanning the visible band.
func (s *Settings) Defaults() {
	s.FreqStart = 400
	s.FreqStop = 700
	s.FreqPoints = 100
}

// Setup is a complete optical setup: the placed components plus the sweep
// settings. It is the unit of file import/export and of submission to the
// simulation engine; see [ReadSetup] and [WriteSetup].
type Setup struct {
	Components []*Component `json:"components"`
	Settings   Settings     `json:"simulationSettings"`
}
