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

import "slices"

// Clip is the clip region of a host.  The package creates [Outline]
// values; all other clips are treated as opaque and are never inspected.
// A nil Clip means that the host is not clipped.
type Clip = any

// Host is a UI element which a [Behavior] can clip.
//
// All methods are called on the UI thread.
type Host interface {
	// Size returns the current render size of the element.
	Size() (width, height float64)

	// Clip returns the currently installed clip.
	Clip() Clip

	// SetClip replaces the installed clip.
	SetClip(c Clip)

	// OnResize registers fn to be called after every change of the render
	// size.  The returned function removes the registration.
	OnResize(fn func(width, height float64)) (remove func())
}

// Element is a minimal in-memory [Host].
// It is useful for tests and as a model for adapters to UI toolkits.
//
// An Element is not safe for concurrent use.
type Element struct {
	width, height float64
	clip          Clip

	listeners []resizeListener
	nextID    int
}

type resizeListener struct {
	id int
	fn func(width, height float64)
}

// NewElement returns an unclipped element of the given size.
func NewElement(width, height float64) *Element {
	return &Element{width: width, height: height}
}

// Size implements the [Host] interface.
func (e *Element) Size() (width, height float64) {
	return e.width, e.height
}

// Clip implements the [Host] interface.
func (e *Element) Clip() Clip {
	return e.clip
}

// SetClip implements the [Host] interface.
func (e *Element) SetClip(c Clip) {
	e.clip = c
}

// OnResize implements the [Host] interface.
func (e *Element) OnResize(fn func(width, height float64)) (remove func()) {
	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, resizeListener{id: id, fn: fn})
	return func() {
		e.listeners = slices.DeleteFunc(e.listeners, func(l resizeListener) bool {
			return l.id == id
		})
	}
}

// Resize changes the size of the element and notifies the resize
// listeners in registration order.  Setting the current size again does
// not notify anybody.
func (e *Element) Resize(width, height float64) {
	if width == e.width && height == e.height {
		return
	}
	e.width, e.height = width, height
	for _, l := range slices.Clone(e.listeners) {
		l.fn(width, height)
	}
}
