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
	"log/slog"
)

// Behavior clips a host to a rounded rectangle.
//
// While attached, the behavior keeps the host's clip in sync with the
// host's render size and the configured corner radius.  Every change
// installs a newly built [Outline]; the previous outline is never
// modified.  Detaching restores the clip the host had before.
//
// A Behavior is not safe for concurrent use.  All methods must be called
// on the UI thread of the host.
type Behavior struct {
	settings *Settings
	logger   *slog.Logger

	host     Host
	original Clip

	outline    Outline
	hasOutline bool

	removeResize func()
	removeChange func()
}

// New returns a detached behavior.
func New(opts ...Option) (*Behavior, error) {
	var o behaviorOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := o.settings
	if s == nil {
		s = NewSettings(o.parent)
	}
	if o.hasRadius {
		if err := s.SetCornerRadius(o.radius); err != nil {
			return nil, err
		}
	}

	return &Behavior{
		settings: s,
		logger:   o.logger,
	}, nil
}

func (b *Behavior) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return Logger()
}

// Settings returns the settings node of the behavior.
func (b *Behavior) Settings() *Settings {
	return b.settings
}

// CornerRadius returns the effective corner radius.
func (b *Behavior) CornerRadius() float64 {
	return b.settings.CornerRadius()
}

// SetCornerRadius sets the corner radius on the behavior's settings node.
// If the effective value changes, every attached behavior using the node
// or inheriting from it rebuilds its clip.
func (b *Behavior) SetCornerRadius(radius float64) error {
	return b.settings.SetCornerRadius(radius)
}

// Host returns the host the behavior is attached to, or nil.
func (b *Behavior) Host() Host {
	return b.host
}

// Outline returns the outline currently installed on the host.
// The second return value is false if the behavior is not attached.
func (b *Behavior) Outline() (Outline, bool) {
	return b.outline, b.hasOutline
}

// Attach installs a rounded clip on h.
//
// The current clip of h is saved, an outline for the current size of h is
// installed, and the behavior starts following size and corner radius
// changes.
func (b *Behavior) Attach(h Host) error {
	if h == nil {
		return fmt.Errorf("attach: nil host: %w", ErrInvalidArgument)
	}
	if b.host != nil {
		return ErrAttached
	}

	b.host = h
	b.original = h.Clip()

	width, height := h.Size()
	b.install(width, height)

	b.removeResize = h.OnResize(b.OnSizeChanged)
	b.removeChange = b.settings.OnChange(b.radiusChanged)

	b.log().Info("roundclip: attached",
		slog.Float64("width", width),
		slog.Float64("height", height),
		slog.Float64("cornerRadius", b.settings.CornerRadius()))
	return nil
}

// Detach restores the clip the host had when the behavior was attached and
// stops listening for changes.  Detaching a detached behavior does
// nothing.
func (b *Behavior) Detach() {
	if b.host == nil {
		b.log().Debug("roundclip: detach ignored, not attached")
		return
	}

	if b.removeResize != nil {
		b.removeResize()
	}
	if b.removeChange != nil {
		b.removeChange()
	}
	b.host.SetClip(b.original)

	b.host = nil
	b.original = nil
	b.outline = Outline{}
	b.hasOutline = false
	b.removeResize = nil
	b.removeChange = nil

	b.log().Info("roundclip: detached")
}

// OnSizeChanged rebuilds the clip for a new render size of the host.
// Hosts call this through the callback registered with [Host.OnResize].
// Before Attach, the call does nothing.
func (b *Behavior) OnSizeChanged(width, height float64) {
	if b.host == nil {
		b.log().Debug("roundclip: resize ignored, not attached")
		return
	}
	b.install(width, height)
}

// Update rebuilds the clip from the current size of the host.
// Before Attach, the call does nothing.
func (b *Behavior) Update() {
	if b.host == nil {
		return
	}
	width, height := b.host.Size()
	b.install(width, height)
}

func (b *Behavior) radiusChanged(float64) {
	b.Update()
}

// install builds a new outline and hands it to the host in one step,
// so that the host never sees a partially updated clip.
func (b *Behavior) install(width, height float64) {
	o := Build(width, height, b.settings.CornerRadius())
	b.outline = o
	b.hasOutline = true
	b.host.SetClip(o)

	rx, ry := o.Radii()
	b.log().Debug("roundclip: clip rebuilt",
		slog.Float64("width", width),
		slog.Float64("height", height),
		slog.Float64("rx", rx),
		slog.Float64("ry", ry))
}
