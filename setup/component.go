// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package setup

import (
	"encoding/json"
	"fmt"

	"cogentcore.org/core/math32"
)

// Kind is the kind of an optical [Component]. The values are the wire
// strings used by the setup file format and the simulation engine.
type Kind string

const (
	// Source emits light rays.
	Source Kind = "source"

	// Mirror reflects light rays.
	Mirror Kind = "mirror"

	// Lens refracts and focuses light rays.
	Lens Kind = "lens"

	// Detector absorbs light rays and reports received intensity.
	Detector Kind = "detector"
)

// Kinds lists all valid component kinds, in catalog order.
var Kinds = []Kind{Source, Mirror, Lens, Detector}

// Valid reports whether k is one of the defined component kinds.
func (k Kind) Valid() bool {
	switch k {
	case Source, Mirror, Lens, Detector:
		return true
	}
	return false
}

// Properties is the kind-specific property bundle of a [Component].
// Each implementation belongs to exactly one [Kind]; the [Registry] guards
// every property update with this discriminator, so a bundle can never
// acquire fields from another kind.
type Properties interface {

	// Kind returns the component [Kind] this bundle belongs to.
	Kind() Kind

	// set sets the named field to the given value, reporting whether the
	// name is valid for this bundle.
	set(name string, value float32) bool
}

// SourceProperties are the properties of a [Source] component.
type SourceProperties struct {

	// Angle is the emission angle in degrees, added to the component rotation.
	Angle float32 `json:"angle"`

	// Wavelength is the emitted wavelength in nanometers.
	Wavelength float32 `json:"wavelength"`

	// Intensity is the emission intensity, 0 to 100.
	Intensity float32 `json:"intensity"`
}

func (p *SourceProperties) Kind() Kind { return Source }

func (p *SourceProperties) set(name string, value float32) bool {
	switch name {
	case "angle":
		p.Angle = value
	case "wavelength":
		p.Wavelength = value
	case "intensity":
		p.Intensity = value
	default:
		return false
	}
	return true
}

// MirrorProperties are the properties of a [Mirror] component.
type MirrorProperties struct {

	// Reflectivity is the fraction of intensity reflected, 0 to 100.
	Reflectivity float32 `json:"reflectivity"`

	// Width is the mirror width in world units.
	Width float32 `json:"width"`
}

func (p *MirrorProperties) Kind() Kind { return Mirror }

func (p *MirrorProperties) set(name string, value float32) bool {
	switch name {
	case "reflectivity":
		p.Reflectivity = value
	case "width":
		p.Width = value
	default:
		return false
	}
	return true
}

// LensProperties are the properties of a [Lens] component.
type LensProperties struct {

	// FocalLength is the focal length in world units.
	FocalLength float32 `json:"focalLength"`

	// Diameter is the lens diameter in world units.
	Diameter float32 `json:"diameter"`

	// RefractiveIndex is the refractive index of the lens material.
	RefractiveIndex float32 `json:"refractiveIndex"`
}

func (p *LensProperties) Kind() Kind { return Lens }

func (p *LensProperties) set(name string, value float32) bool {
	switch name {
	case "focalLength":
		p.FocalLength = value
	case "diameter":
		p.Diameter = value
	case "refractiveIndex":
		p.RefractiveIndex = value
	default:
		return false
	}
	return true
}

// DetectorProperties are the properties of a [Detector] component.
type DetectorProperties struct {

	// Sensitivity is the detection sensitivity, 0 to 100.
	Sensitivity float32 `json:"sensitivity"`

	// Width is the detector width in world units.
	Width float32 `json:"width"`
}

func (p *DetectorProperties) Kind() Kind { return Detector }

func (p *DetectorProperties) set(name string, value float32) bool {
	switch name {
	case "sensitivity":
		p.Sensitivity = value
	case "width":
		p.Width = value
	default:
		return false
	}
	return true
}

// DefaultProperties returns a new property bundle for the given kind with the
// same defaults the simulation engine assumes for missing values. It returns
// nil for an invalid kind.
func DefaultProperties(k Kind) Properties {
	switch k {
	case Source:
		return &SourceProperties{Angle: 0, Wavelength: 632.8, Intensity: 100}
	case Mirror:
		return &MirrorProperties{Reflectivity: 95, Width: 50}
	case Lens:
		return &LensProperties{FocalLength: 100, Diameter: 50, RefractiveIndex: 1.5}
	case Detector:
		return &DetectorProperties{Sensitivity: 90, Width: 50}
	}
	return nil
}

// NormRotation normalizes the given rotation in degrees into [0,360).
func NormRotation(deg float32) float32 {
	return math32.Mod(math32.Mod(deg, 360)+360, 360)
}

// Component is a placed optical element.
type Component struct {

	// ID is the unique, stable identifier of the component.
	// IDs are generated by [Registry.Add] and are never reused.
	ID string `json:"id"`

	// Kind is the element kind. Its wire name is "type".
	Kind Kind `json:"type"`

	// Position is the component position in world units.
	Position Point `json:"position"`

	// Rotation is the component rotation in degrees, always in [0,360).
	Rotation float32 `json:"rotation"`

	// DisplayName is an optional user-facing label. A component whose
	// DisplayName matches the dispersion label (case-insensitively) is
	// treated as dispersive; see the dispersion package.
	DisplayName string `json:"displayName,omitempty"`

	// Properties is the kind-specific property bundle.
	// It always matches [Component.Kind].
	Properties Properties `json:"properties"`
}

// componentJSON mirrors [Component] with raw properties,
// for two-phase decoding of the Properties union.
type componentJSON struct {
	ID          string          `json:"id"`
	Kind        Kind            `json:"type"`
	Position    Point           `json:"position"`
	Rotation    float32         `json:"rotation"`
	DisplayName string          `json:"displayName,omitempty"`
	Properties  json.RawMessage `json:"properties"`
}

// MarshalJSON encodes the component in the wire format, with the kind under
// the "type" key and the kind-specific properties inline.
func (c *Component) MarshalJSON() ([]byte, error) {
	props, err := json.Marshal(c.Properties)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&componentJSON{
		ID:          c.ID,
		Kind:        c.Kind,
		Position:    c.Position,
		Rotation:    c.Rotation,
		DisplayName: c.DisplayName,
		Properties:  props,
	})
}

// UnmarshalJSON decodes the component, resolving the [Properties] union from
// the wire kind. Properties not present in the JSON keep their kind defaults,
// matching the engine's treatment of missing values. The rotation is
// normalized into [0,360) on the way in.
func (c *Component) UnmarshalJSON(b []byte) error {
	var cj componentJSON
	if err := json.Unmarshal(b, &cj); err != nil {
		return err
	}
	if !cj.Kind.Valid() {
		return fmt.Errorf("setup: component %q has invalid kind %q", cj.ID, cj.Kind)
	}
	c.ID = cj.ID
	c.Kind = cj.Kind
	c.Position = cj.Position
	c.Rotation = NormRotation(cj.Rotation)
	c.DisplayName = cj.DisplayName
	c.Properties = DefaultProperties(cj.Kind)
	if len(cj.Properties) > 0 {
		if err := json.Unmarshal(cj.Properties, c.Properties); err != nil {
			return err
		}
	}
	return nil
}
