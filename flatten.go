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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Flattening parameters.
const (
	// DefaultFlatness is the curve approximation tolerance used when the
	// caller does not supply a positive one.
	DefaultFlatness = 0.25

	// maxCubicSegments bounds the number of line segments per cubic, so
	// that huge outlines cannot exhaust memory.
	maxCubicSegments = 1 << 14
)

// Flatten approximates the outline by a closed polygon.  The distance
// between the polygon and the curve is at most tolerance; a tolerance
// which is not positive is replaced by [DefaultFlatness].
//
// The first point of the result is [Outline.Start] and the last point
// equals the first.
func (o Outline) Flatten(tolerance float64) []vec.Vec2 {
	if !(tolerance > 0) {
		tolerance = DefaultFlatness
	}

	poly := []vec.Vec2{o.start}
	current := o.start
	for _, seg := range o.Segments() {
		poly = flattenCubic(poly, current, seg[0], seg[1], seg[2], tolerance)
		current = seg[2]
	}
	return poly
}

// flattenCubic appends a line approximation of the cubic Bézier curve
// p0, p1, p2, p3 to out.  The start point p0 is not appended.
func flattenCubic(out []vec.Vec2, p0, p1, p2, p3 vec.Vec2, tolerance float64) []vec.Vec2 {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * tolerance))
		switch {
		case math.IsNaN(nFloat) || nFloat > maxCubicSegments:
			n = maxCubicSegments
		case nFloat > 1:
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		out = append(out, pt)
	}
	// the end point is exact
	return append(out, p3)
}

// Contains reports whether p lies inside the outline, using the even-odd
// rule on the flattened outline.  Points on the boundary may be reported
// either way.  A degenerate outline contains no points.
func (o Outline) Contains(p vec.Vec2) bool {
	poly := o.Flatten(DefaultFlatness)

	inside := false
	for i := 1; i < len(poly); i++ {
		a, b := poly[i-1], poly[i]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if p.X < x {
			inside = !inside
		}
	}
	return inside
}
