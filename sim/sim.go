// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim is the gateway to the external optical simulation engine.
// It defines the engine's wire types and a [Client] that submits a
// [setup.Setup] for ray tracing and receives the traced rays, per-component
// path lengths, and frequency sweep. The engine owns all ray physics; this
// package only transports and stores its results.
package sim

import "cogentcore.org/optics/setup"

// Ray is one traced light path returned by the simulation engine: an ordered
// polyline of at least two world-space points, with a display color and a
// final intensity. Rays are produced wholesale by the engine and are
// immutable once received; a new [Result] always replaces the previous rays
// rather than patching them.
type Ray struct {
	ID        string        `json:"id"`
	Points    []setup.Point `json:"points"`
	Color     string        `json:"color"`
	Intensity float32       `json:"intensity"`
}

// PathLength is the traced path length attributed to one component.
type PathLength struct {
	ComponentID string  `json:"componentId"`
	Length      float32 `json:"length"`
}

// FrequencyPoint is one sample of the engine's frequency sweep.
type FrequencyPoint struct {
	Frequency    float32 `json:"frequency"`
	Transmission float32 `json:"transmission"`
}

// Result is a complete simulation result. Each run replaces the prior
// result atomically; see [Client.Result].
type Result struct {
	Rays           []Ray            `json:"rays"`
	PathLengths    []PathLength     `json:"pathLengths"`
	FrequencySweep []FrequencyPoint `json:"frequencySweep"`
}

// CatalogEntry describes one component kind available from the engine's
// component catalog endpoint.
type CatalogEntry struct {
	Kind        setup.Kind `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Properties  []string   `json:"properties"`
}
