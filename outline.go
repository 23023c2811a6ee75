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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// NumPoints is the number of anchor points in an outline.
const NumPoints = 12

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// Outline is a closed rounded-rectangle boundary, suitable for use as a
// clip region.
//
// The outline starts at the midpoint of the left edge and runs through
// twelve anchor points.  Consecutive triples of anchor points are the two
// control points and the end point of a cubic Bézier segment, so that the
// four segments lead from edge midpoint to edge midpoint and the last one
// returns to the start.
//
// Outline values are immutable.  Use [Build] to create one.
type Outline struct {
	width, height float64 // requested size, in user space
	rx, ry        float64 // effective corner radii, in user space

	start vec.Vec2
	pts   [NumPoints]vec.Vec2
}

// Build computes the clip outline for a rectangle of the given size and
// requested corner radius.
//
// The effective radii are min(width/2, cornerRadius) and
// min(height/2, cornerRadius).  Negative or NaN arguments are treated as 0.
// Zero-sized rectangles give a degenerate outline; this is not an error.
func Build(width, height, cornerRadius float64) Outline {
	width = nonNegative(width)
	height = nonNegative(height)
	cornerRadius = nonNegative(cornerRadius)

	rx := min(width/2, cornerRadius)
	ry := min(height/2, cornerRadius)
	midX := width / 2
	midY := height / 2

	return Outline{
		width:  width,
		height: height,
		rx:     rx,
		ry:     ry,
		start:  vec.Vec2{X: 0, Y: midY},
		pts: [NumPoints]vec.Vec2{
			{X: 0, Y: ry},
			{X: rx, Y: 0},
			{X: midX, Y: 0},
			{X: width - rx, Y: 0},
			{X: width, Y: ry},
			{X: width, Y: midY},
			{X: width, Y: height - ry},
			{X: width - rx, Y: height},
			{X: midX, Y: height},
			{X: rx, Y: height},
			{X: 0, Y: height - ry},
			{X: 0, Y: midY},
		},
	}
}

// nonNegative maps negative values and NaN to 0.
func nonNegative(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Size returns the rectangle size the outline was built for.
func (o Outline) Size() (width, height float64) {
	return o.width, o.height
}

// Radii returns the effective corner radii after clamping.
func (o Outline) Radii() (rx, ry float64) {
	return o.rx, o.ry
}

// Start returns the first point of the outline.
// This is also the end point of the last segment.
func (o Outline) Start() vec.Vec2 {
	return o.start
}

// Points returns the twelve anchor points in path order.
func (o Outline) Points() [NumPoints]vec.Vec2 {
	return o.pts
}

// Segments returns the four cubic Bézier segments of the outline.
// Each entry holds the two control points followed by the end point.
func (o Outline) Segments() [4][3]vec.Vec2 {
	var segs [4][3]vec.Vec2
	for i := range segs {
		copy(segs[i][:], o.pts[3*i:3*i+3])
	}
	return segs
}

// FillRule returns the rule used to decide which points are inside the
// outline.  This is always [EvenOdd].
func (o Outline) FillRule() FillRule {
	return EvenOdd
}

// Path returns the outline as a closed path.
// Every call returns a newly allocated path.
func (o Outline) Path() *path.Data {
	p := (&path.Data{}).MoveTo(o.start)
	for _, seg := range o.Segments() {
		p = p.CubeTo(seg[0], seg[1], seg[2])
	}
	return p.Close()
}

// Bounds returns the bounding box of the control points.
// The curve never leaves the convex hull of its control points, so the
// box contains the whole outline.  For an untransformed outline this is
// the rectangle [0, width] × [0, height].
func (o Outline) Bounds() rect.Rect {
	b := rect.Rect{LLx: o.start.X, LLy: o.start.Y, URx: o.start.X, URy: o.start.Y}
	for _, p := range o.pts {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// Transform returns a copy of the outline with all points mapped through
// the affine transformation m, for example to move the outline into
// device space.  Size and radii keep their user space values.
func (o Outline) Transform(m matrix.Matrix) Outline {
	o.start = applyMatrix(m, o.start)
	for i := range o.pts {
		o.pts[i] = applyMatrix(m, o.pts[i])
	}
	return o
}

// applyMatrix maps a point through the affine transformation m.
func applyMatrix(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// Equal reports whether two outlines describe the same geometry.
func (o Outline) Equal(other Outline) bool {
	return o == other
}
