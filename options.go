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

import "log/slog"

// Option configures a Behavior during creation.
//
// Example:
//
//	// corner radius 8, inherited by nothing
//	b, err := roundclip.New(roundclip.WithCornerRadius(8))
//
//	// inherit the corner radius from a shared parent node
//	theme := roundclip.NewSettings(nil)
//	b, err := roundclip.New(roundclip.WithParent(theme))
type Option func(*behaviorOptions)

// behaviorOptions holds optional configuration for Behavior creation.
type behaviorOptions struct {
	settings *Settings
	parent   *Settings

	radius    float64
	hasRadius bool

	logger *slog.Logger
}

// WithCornerRadius sets the local corner radius of the behavior's settings
// node.  [New] fails with [ErrInvalidArgument] if the radius is negative,
// NaN or infinite.
func WithCornerRadius(radius float64) Option {
	return func(o *behaviorOptions) {
		o.radius = radius
		o.hasRadius = true
	}
}

// WithSettings makes the behavior use an existing settings node.
// Several behaviors may share one node.  WithSettings takes precedence
// over [WithParent].
func WithSettings(s *Settings) Option {
	return func(o *behaviorOptions) {
		o.settings = s
	}
}

// WithParent creates the behavior's settings node as a child of p, so that
// the corner radius is inherited from p unless set locally.
func WithParent(p *Settings) Option {
	return func(o *behaviorOptions) {
		o.parent = p
	}
}

// WithLogger sets the logger for the behavior.  Without this option, the
// package logger (see [SetLogger]) is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *behaviorOptions) {
		o.logger = l
	}
}
