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

package testcases

import "seehuhn.de/go/geom/matrix"

// ctmCases place outlines in device space, as done by a host which is
// offset within its window or drawn on a high resolution display.
var ctmCases = []TestCase{
	// ========================================
	// Device pixel ratios
	// ========================================
	{
		Name:   "scale_2x",
		Width:  100,
		Height: 50,
		Radius: 4,
		CTM:    matrix.Scale(2, 2),
	},
	{
		Name:   "scale_1_5x",
		Width:  100,
		Height: 50,
		Radius: 4,
		CTM:    matrix.Scale(1.5, 1.5),
	},

	// ========================================
	// Offsets within the window
	// ========================================
	{
		Name:   "offset",
		Width:  80,
		Height: 40,
		Radius: 8,
		CTM:    matrix.Identity.Translate(16, 24),
	},
	{
		Name:   "scale_2x_offset",
		Width:  80,
		Height: 40,
		Radius: 8,
		CTM:    matrix.Scale(2, 2).Translate(10, 10),
	},

	// ========================================
	// Rotated hosts
	// ========================================
	{
		Name:   "rotate_90deg",
		Width:  60,
		Height: 30,
		Radius: 6,
		CTM:    matrix.RotateDeg(90).Translate(40, 70),
	},
}
