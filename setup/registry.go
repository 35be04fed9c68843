// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package setup

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// Registry owns the canonical component list of the current setup, plus the
// current selection. It is the single mutation point for component state:
// edits from the diagram canvas and the property forms all land on its
// operations, which maintain the per-kind property invariant and rotation
// normalization. A Registry is not safe for concurrent use; callers
// serialize access through the UI event loop.
type Registry struct {
	comps []*Component

	// selection is the id of the currently selected component, or "".
	selection string

	// ids holds every id this registry has ever contained, including
	// removed and imported ones, so that ids are never reused.
	ids map[string]bool
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{ids: map[string]bool{}}
}

// Components returns the current component list. The returned slice is owned
// by the registry and must not be modified; use [Registry.Update] and
// [Registry.Remove] for edits.
func (r *Registry) Components() []*Component {
	return r.comps
}

// Component returns the component with the given id, or nil if not present.
func (r *Registry) Component(id string) *Component {
	for _, c := range r.comps {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Selection returns the currently selected component, or nil.
func (r *Registry) Selection() *Component {
	if r.selection == "" {
		return nil
	}
	return r.Component(r.selection)
}

// SelectionID returns the id of the currently selected component, or "".
func (r *Registry) SelectionID() string {
	return r.selection
}

// Select makes the component with the given id the current selection,
// reporting whether it is present.
func (r *Registry) Select(id string) bool {
	if r.Component(id) == nil {
		return false
	}
	r.selection = id
	return true
}

// ClearSelection clears the current selection.
func (r *Registry) ClearSelection() {
	r.selection = ""
}

// newID returns a fresh id that no component in this registry has ever had.
func (r *Registry) newID() string {
	id := uuid.NewString()
	for r.ids[id] {
		id = uuid.NewString()
	}
	r.ids[id] = true
	return id
}

// placement returns the default position for the next added component,
// cascading diagonally so that successive additions do not stack.
func (r *Registry) placement() Point {
	n := float32(len(r.comps) % 8)
	return Pt(200+24*n, 200+24*n)
}

// Add creates a new component of the given kind with a freshly generated id,
// a default cascade placement, zero rotation, and the kind-default
// properties, appends it to the list, and returns it. Existing components
// are never touched. An optional display name can be given. Add returns nil
// for an invalid kind.
func (r *Registry) Add(kind Kind, displayName ...string) *Component {
	if !kind.Valid() {
		return nil
	}
	c := &Component{
		ID:         r.newID(),
		Kind:       kind,
		Position:   r.placement(),
		Properties: DefaultProperties(kind),
	}
	if len(displayName) > 0 {
		c.DisplayName = displayName[0]
	}
	r.comps = append(r.comps, c)
	return c
}

// Update is a partial component update, applied by [Registry.Update].
// Nil fields are left unchanged.
type Update struct {

	// Position replaces the component position.
	Position *Point

	// Rotation replaces the component rotation; it is normalized to [0,360).
	Rotation *float32

	// DisplayName replaces the display name.
	DisplayName *string

	// Properties sets named property fields to new values. Names that are
	// not valid for the component's kind are rejected individually; they
	// are never stored.
	Properties map[string]float32
}

// Update shallow-merges the given partial update into the component with the
// given id, reporting whether it was found. Property names invalid for the
// component's kind are silently rejected, preserving the per-kind invariant;
// an unknown id is a no-op. Update never panics or errors.
func (r *Registry) Update(id string, u Update) bool {
	c := r.Component(id)
	if c == nil {
		return false
	}
	if u.Position != nil {
		c.Position = *u.Position
	}
	if u.Rotation != nil {
		c.Rotation = NormRotation(*u.Rotation)
	}
	if u.DisplayName != nil {
		c.DisplayName = *u.DisplayName
	}
	for name, value := range u.Properties {
		if !c.Properties.set(name, value) {
			slog.Debug("setup.Registry.Update: property not valid for component kind",
				"id", id, "kind", c.Kind, "property", name)
		}
	}
	return true
}

// Move sets the position of the component with the given id, reporting
// whether it was found. Diagram canvas position-changed events land here.
func (r *Registry) Move(id string, p Point) bool {
	return r.Update(id, Update{Position: &p})
}

// Rotate sets the rotation in degrees of the component with the given id,
// normalized to [0,360), reporting whether it was found.
func (r *Registry) Rotate(id string, deg float32) bool {
	return r.Update(id, Update{Rotation: &deg})
}

// Remove deletes the component with the given id, reporting whether it was
// found. If it was the current selection, the selection is cleared.
func (r *Registry) Remove(id string) bool {
	for i, c := range r.comps {
		if c.ID == id {
			r.comps = slices.Delete(r.comps, i, i+1)
			if r.selection == id {
				r.selection = ""
			}
			return true
		}
	}
	return false
}

// Setup returns a [Setup] snapshot of the current components joined with the
// given sweep settings, for export or submission to the simulation engine.
func (r *Registry) Setup(st Settings) *Setup {
	return &Setup{Components: slices.Clone(r.comps), Settings: st}
}

// Import replaces the registry contents with the components of the given
// setup and clears the selection. Use [ReadSetup] first to validate a file;
// Import itself cannot fail, so a failed read leaves prior state untouched.
func (r *Registry) Import(s *Setup) {
	r.comps = slices.Clone(s.Components)
	r.selection = ""
	for _, c := range r.comps {
		r.ids[c.ID] = true
	}
}
