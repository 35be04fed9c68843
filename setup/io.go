// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package setup

import (
	"errors"
	"fmt"
	"io"

	"cogentcore.org/core/base/iox/jsonx"
)

// ErrNoComponents is returned by [ReadSetup] when the imported JSON has no
// components array.
var ErrNoComponents = errors.New("setup: missing components array")

// ReadSetup reads and validates a [Setup] from JSON. A missing or null
// components array, an invalid component kind, a missing id, or a duplicate
// id is an error. It decodes into fresh values only, so on error the
// caller's current setup state is untouched.
func ReadSetup(r io.Reader) (*Setup, error) {
	s := &Setup{}
	if err := jsonx.Read(s, r); err != nil {
		return nil, fmt.Errorf("setup: malformed import: %w", err)
	}
	if s.Components == nil {
		return nil, ErrNoComponents
	}
	seen := map[string]bool{}
	for i, c := range s.Components {
		if c == nil {
			return nil, fmt.Errorf("setup: component %d is null", i)
		}
		if c.ID == "" {
			return nil, fmt.Errorf("setup: component %d is missing an id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("setup: duplicate component id %q", c.ID)
		}
		seen[c.ID] = true
	}
	return s, nil
}

// WriteSetup writes the given setup as indented JSON. A written setup read
// back with [ReadSetup] is semantically identical: ids, kinds, positions,
// rotations, properties, and sweep settings are all preserved.
func WriteSetup(w io.Writer, s *Setup) error {
	return jsonx.WriteIndent(s, w)
}
