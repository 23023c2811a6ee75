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

// TestCase defines a single clip outline fixture.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  float64       // host width in user space
	Height float64       // host height in user space
	Radius float64       // requested corner radius
	CTM    matrix.Matrix // user space to device space (zero-value means no transform)
}

// Matrix returns the transformation of the test case, with the zero value
// replaced by the identity.
func (tc TestCase) Matrix() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// box builds a test case without a device transformation.
func box(name string, width, height, radius float64) TestCase {
	return TestCase{Name: name, Width: width, Height: height, Radius: radius}
}
