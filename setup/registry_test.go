// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package setup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "cogentcore.org/optics/setup"
)

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry()
	s := r.Add(Source)
	m := r.Add(Mirror, "fold mirror")

	assert.Len(t, r.Components(), 2)
	assert.NotEmpty(t, s.ID)
	assert.NotEmpty(t, m.ID)
	assert.NotEqual(t, s.ID, m.ID)

	assert.Equal(t, Source, s.Kind)
	assert.Equal(t, float32(0), s.Rotation)
	assert.IsType(t, &SourceProperties{}, s.Properties)
	assert.Equal(t, "", s.DisplayName)
	assert.Equal(t, "fold mirror", m.DisplayName)

	// successive additions cascade instead of stacking
	assert.NotEqual(t, s.Position, m.Position)

	assert.Nil(t, r.Add(Kind("beam")))
	assert.Len(t, r.Components(), 2)
}

func TestRegistryUpdate(t *testing.T) {
	r := NewRegistry()
	c := r.Add(Lens)

	pos := Pt(300, 100)
	rot := float32(-90)
	name := "prism"
	ok := r.Update(c.ID, Update{
		Position:    &pos,
		Rotation:    &rot,
		DisplayName: &name,
		Properties:  map[string]float32{"focalLength": 80, "refractiveIndex": 1.7},
	})
	assert.True(t, ok)
	assert.Equal(t, Pt(300, 100), c.Position)
	assert.Equal(t, float32(270), c.Rotation)
	assert.Equal(t, "prism", c.DisplayName)
	lp := c.Properties.(*LensProperties)
	assert.Equal(t, float32(80), lp.FocalLength)
	assert.Equal(t, float32(1.7), lp.RefractiveIndex)
	assert.Equal(t, float32(50), lp.Diameter)

	assert.False(t, r.Update("no-such-id", Update{Position: &pos}))
}

func TestRegistryUpdateKindGuard(t *testing.T) {
	r := NewRegistry()
	m := r.Add(Mirror)

	// lens-only and source-only fields must never reach a mirror bundle
	ok := r.Update(m.ID, Update{Properties: map[string]float32{
		"focalLength":  120,
		"wavelength":   550,
		"reflectivity": 80,
	}})
	assert.True(t, ok)
	mp := m.Properties.(*MirrorProperties)
	assert.Equal(t, float32(80), mp.Reflectivity)
	assert.Equal(t, float32(50), mp.Width)
	assert.Equal(t, Mirror, m.Properties.Kind())
}

func TestRegistryMoveRotate(t *testing.T) {
	r := NewRegistry()
	c := r.Add(Detector)

	assert.True(t, r.Move(c.ID, Pt(42, 7)))
	assert.Equal(t, Pt(42, 7), c.Position)

	assert.True(t, r.Rotate(c.ID, 400))
	assert.Equal(t, float32(40), c.Rotation)

	assert.False(t, r.Move("gone", Pt(0, 0)))
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	a := r.Add(Source)
	b := r.Add(Detector)

	assert.True(t, r.Select(b.ID))
	assert.Equal(t, b, r.Selection())

	assert.True(t, r.Remove(b.ID))
	assert.Len(t, r.Components(), 1)
	assert.Nil(t, r.Selection())
	assert.Equal(t, "", r.SelectionID())

	// removing a non-selected component leaves selection alone
	c := r.Add(Mirror)
	assert.True(t, r.Select(a.ID))
	assert.True(t, r.Remove(c.ID))
	assert.Equal(t, a, r.Selection())

	assert.False(t, r.Remove(b.ID))
}

func TestRegistrySelect(t *testing.T) {
	r := NewRegistry()
	c := r.Add(Lens)

	assert.False(t, r.Select("missing"))
	assert.Nil(t, r.Selection())

	assert.True(t, r.Select(c.ID))
	assert.Equal(t, c.ID, r.SelectionID())

	r.ClearSelection()
	assert.Nil(t, r.Selection())
}

func TestRegistrySetupImport(t *testing.T) {
	r := NewRegistry()
	r.Add(Source)
	r.Add(Mirror)

	var st Settings
	st.Defaults()
	s := r.Setup(st)
	assert.Len(t, s.Components, 2)
	assert.Equal(t, float32(400), s.Settings.FreqStart)

	other := NewRegistry()
	other.Add(Detector)
	other.Select(other.Components()[0].ID)
	other.Import(s)
	assert.Len(t, other.Components(), 2)
	assert.Nil(t, other.Selection())
	assert.Equal(t, r.Components()[0].ID, other.Components()[0].ID)
}
