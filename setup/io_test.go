// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package setup_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	. "cogentcore.org/optics/setup"
)

// testSetup builds a representative four-component setup.
func testSetup() *Setup {
	r := NewRegistry()
	s := r.Add(Source)
	r.Update(s.ID, Update{Properties: map[string]float32{"wavelength": 488, "angle": 15}})
	r.Rotate(s.ID, -45)
	r.Add(Mirror, "fold")
	p := r.Add(Lens, "Prism")
	r.Move(p.ID, Pt(300, 100))
	r.Add(Detector)
	return r.Setup(Settings{FreqStart: 400, FreqStop: 700, FreqPoints: 10})
}

func TestSetupRoundTrip(t *testing.T) {
	s := testSetup()

	var buf bytes.Buffer
	assert.NoError(t, WriteSetup(&buf, s))
	b := buf.Bytes()

	back, err := ReadSetup(bytes.NewReader(b))
	if assert.NoError(t, err) {
		assert.Equal(t, s, back)
		var buf2 bytes.Buffer
		assert.NoError(t, WriteSetup(&buf2, back))
		assert.Equal(t, string(b), buf2.String())
	}
}

func TestSetupRoundTripEmpty(t *testing.T) {
	s := &Setup{Components: []*Component{}}
	var buf bytes.Buffer
	assert.NoError(t, WriteSetup(&buf, s))
	back, err := ReadSetup(&buf)
	assert.NoError(t, err)
	assert.Empty(t, back.Components)
}

func TestReadSetupErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"empty object", `{}`},
		{"null components", `{"components":null}`},
		{"not json", `{"components":`},
		{"components not array", `{"components":42}`},
		{"null component", `{"components":[null]}`},
		{"invalid kind", `{"components":[{"id":"a","type":"laser","position":{"x":0,"y":0},"rotation":0}]}`},
		{"missing id", `{"components":[{"type":"source","position":{"x":0,"y":0},"rotation":0}]}`},
		{"duplicate id", `{"components":[
			{"id":"a","type":"source","position":{"x":0,"y":0},"rotation":0},
			{"id":"a","type":"mirror","position":{"x":1,"y":1},"rotation":0}]}`},
	}
	for _, tt := range tests {
		s, err := ReadSetup(strings.NewReader(tt.json))
		assert.Error(t, err, tt.name)
		assert.Nil(t, s, tt.name)
	}
}

func TestReadSetupNormalizesRotation(t *testing.T) {
	s, err := ReadSetup(strings.NewReader(
		`{"components":[{"id":"m","type":"mirror","position":{"x":0,"y":0},"rotation":-90}],
		  "simulationSettings":{"freqStart":400,"freqStop":700,"freqPoints":5}}`))
	assert.NoError(t, err)
	assert.Equal(t, float32(270), s.Components[0].Rotation)
	assert.Equal(t, 5, s.Settings.FreqPoints)
}
