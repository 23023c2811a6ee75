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

import "errors"

var (
	// ErrInvalidArgument is returned when a required reference is nil or
	// a corner radius is negative, NaN or infinite.
	ErrInvalidArgument = errors.New("roundclip: invalid argument")

	// ErrAttached is returned when attaching a behavior which is already
	// attached to a host.
	ErrAttached = errors.New("roundclip: behavior already attached")
)
