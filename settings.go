// seehuhn.de/go/roundclip - rounded clip regions for UI elements
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package roundclip

import (
	"fmt"
	"math"
	"slices"
)

// DefaultCornerRadius is the corner radius used when neither a settings
// node nor any of its ancestors sets a value.
const DefaultCornerRadius = 4.0

// Settings holds the corner radius configuration of one or more behaviors.
//
// Settings form a tree.  A node without a local value inherits the
// effective value of its parent; the root falls back to
// [DefaultCornerRadius].  The value is resolved each time it is read, so
// changes to an ancestor are seen by all descendants which do not
// override it.
//
// Settings are not safe for concurrent use.
type Settings struct {
	parent *Settings

	radius   float64
	hasLocal bool

	listeners    []changeListener
	nextID       int
	removeParent func() // non-nil while subscribed to the parent
}

type changeListener struct {
	id int
	fn func(radius float64)
}

// NewSettings returns a settings node without a local value.
// If parent is nil, the node is a root.
func NewSettings(parent *Settings) *Settings {
	return &Settings{parent: parent}
}

// Parent returns the parent node, or nil for a root.
func (s *Settings) Parent() *Settings {
	return s.parent
}

// CornerRadius returns the effective corner radius of the node.
func (s *Settings) CornerRadius() float64 {
	for n := s; n != nil; n = n.parent {
		if n.hasLocal {
			return n.radius
		}
	}
	return DefaultCornerRadius
}

// HasLocalCornerRadius reports whether the node sets its own corner radius
// rather than inheriting one.
func (s *Settings) HasLocalCornerRadius() bool {
	return s.hasLocal
}

// SetCornerRadius sets the local corner radius of the node.
// The radius must be finite and non-negative.
func (s *Settings) SetCornerRadius(radius float64) error {
	if err := checkRadius(radius); err != nil {
		return err
	}
	old := s.CornerRadius()
	s.radius = radius
	s.hasLocal = true
	if radius != old {
		s.notify()
	}
	return nil
}

// ClearCornerRadius removes the local value, so that the node inherits
// the corner radius again.
func (s *Settings) ClearCornerRadius() {
	if !s.hasLocal {
		return
	}
	old := s.CornerRadius()
	s.radius = 0
	s.hasLocal = false
	if s.CornerRadius() != old {
		s.notify()
	}
}

// OnChange registers fn to be called with the new effective corner radius
// whenever it changes, including changes inherited from an ancestor.
// The returned function removes the registration; calling it more than
// once has no effect.
func (s *Settings) OnChange(fn func(radius float64)) (remove func()) {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, changeListener{id: id, fn: fn})

	// Only listen to the parent while someone listens to us.  This way a
	// parent never keeps references to unused children.
	if len(s.listeners) == 1 && s.parent != nil {
		s.removeParent = s.parent.OnChange(s.parentChanged)
	}

	return func() { s.removeListener(id) }
}

func (s *Settings) removeListener(id int) {
	i := slices.IndexFunc(s.listeners, func(l changeListener) bool { return l.id == id })
	if i < 0 {
		return
	}
	s.listeners = slices.Delete(s.listeners, i, i+1)

	if len(s.listeners) == 0 && s.removeParent != nil {
		s.removeParent()
		s.removeParent = nil
	}
}

func (s *Settings) parentChanged(float64) {
	if !s.hasLocal {
		s.notify()
	}
}

// notify calls all listeners with the current effective radius.
// Listeners may add or remove registrations while being called.
func (s *Settings) notify() {
	radius := s.CornerRadius()
	for _, l := range slices.Clone(s.listeners) {
		l.fn(radius)
	}
}

// GetCornerRadius returns the effective corner radius of s.
// It fails with [ErrInvalidArgument] if s is nil.
func GetCornerRadius(s *Settings) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("get corner radius: nil settings: %w", ErrInvalidArgument)
	}
	return s.CornerRadius(), nil
}

// SetCornerRadius sets the local corner radius of s.
// It fails with [ErrInvalidArgument] if s is nil or the radius is
// negative, NaN or infinite.
func SetCornerRadius(s *Settings, radius float64) error {
	if s == nil {
		return fmt.Errorf("set corner radius: nil settings: %w", ErrInvalidArgument)
	}
	return s.SetCornerRadius(radius)
}

func checkRadius(radius float64) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return fmt.Errorf("corner radius %g: %w", radius, ErrInvalidArgument)
	}
	return nil
}
