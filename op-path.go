// seehuhn.de/go/haru - Go bindings for the libharu PDF library
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

package haru

// This file implements the path construction and path painting operators.
// See tables 58, 59 and 60 of ISO 32000-2:2020.

// MoveTo starts a new subpath at (x, y).
//
// This implements the PDF graphics operator "m".
func (p *Page) MoveTo(x, y float64) {
	if !p.isValid("MoveTo") {
		return
	}
	p.doc.eng.PageMoveTo(p.h, x, y)
	p.done("MoveTo")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (p *Page) LineTo(x, y float64) {
	if !p.isValid("LineTo") {
		return
	}
	p.doc.eng.PageLineTo(p.h, x, y)
	p.done("LineTo")
}

// CurveTo appends a cubic Bézier curve to the current path.
//
// This implements the PDF graphics operator "c".
func (p *Page) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !p.isValid("CurveTo") {
		return
	}
	p.doc.eng.PageCurveTo(p.h, x1, y1, x2, y2, x3, y3)
	p.done("CurveTo")
}

// CurveTo2 appends a cubic Bézier curve whose first control point is the
// current point.
//
// This implements the PDF graphics operator "v".
func (p *Page) CurveTo2(x2, y2, x3, y3 float64) {
	if !p.isValid("CurveTo2") {
		return
	}
	p.doc.eng.PageCurveTo2(p.h, x2, y2, x3, y3)
	p.done("CurveTo2")
}

// CurveTo3 appends a cubic Bézier curve whose second control point is the
// end point.
//
// This implements the PDF graphics operator "y".
func (p *Page) CurveTo3(x1, y1, x3, y3 float64) {
	if !p.isValid("CurveTo3") {
		return
	}
	p.doc.eng.PageCurveTo3(p.h, x1, y1, x3, y3)
	p.done("CurveTo3")
}

// Rectangle appends a rectangle to the current path.
//
// This implements the PDF graphics operator "re".
func (p *Page) Rectangle(x, y, width, height float64) {
	if !p.isValid("Rectangle") {
		return
	}
	p.doc.eng.PageRectangle(p.h, x, y, width, height)
	p.done("Rectangle")
}

// Circle appends a circle to the current path.
func (p *Page) Circle(x, y, radius float64) {
	if !p.isValid("Circle") {
		return
	}
	p.doc.eng.PageCircle(p.h, x, y, radius)
	p.done("Circle")
}

// Ellipse appends an axis-aligned ellipse to the current path.
func (p *Page) Ellipse(x, y, xRadius, yRadius float64) {
	if !p.isValid("Ellipse") {
		return
	}
	p.doc.eng.PageEllipse(p.h, x, y, xRadius, yRadius)
	p.done("Ellipse")
}

// Arc appends a circular arc to the current path.  The angles are given
// in degrees, measured clockwise from the positive y-axis.
func (p *Page) Arc(x, y, radius, ang1, ang2 float64) {
	if !p.isValid("Arc") {
		return
	}
	p.doc.eng.PageArc(p.h, x, y, radius, ang1, ang2)
	p.done("Arc")
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (p *Page) ClosePath() {
	if !p.isValid("ClosePath") {
		return
	}
	p.doc.eng.PageClosePath(p.h)
	p.done("ClosePath")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (p *Page) Stroke() {
	if !p.isValid("Stroke") {
		return
	}
	p.doc.eng.PageStroke(p.h)
	p.done("Stroke")
}

// ClosePathStroke closes and strokes the current path.
//
// This implements the PDF graphics operator "s".
func (p *Page) ClosePathStroke() {
	if !p.isValid("ClosePathStroke") {
		return
	}
	p.doc.eng.PageClosePathStroke(p.h)
	p.done("ClosePathStroke")
}

// Fill fills the current path using the nonzero winding number rule.
//
// This implements the PDF graphics operator "f".
func (p *Page) Fill() {
	if !p.isValid("Fill") {
		return
	}
	p.doc.eng.PageFill(p.h)
	p.done("Fill")
}

// FillEvenOdd fills the current path using the even-odd rule.
//
// This implements the PDF graphics operator "f*".
func (p *Page) FillEvenOdd() {
	if !p.isValid("FillEvenOdd") {
		return
	}
	p.doc.eng.PageEofill(p.h)
	p.done("FillEvenOdd")
}

// FillStroke fills and then strokes the current path.
//
// This implements the PDF graphics operator "B".
func (p *Page) FillStroke() {
	if !p.isValid("FillStroke") {
		return
	}
	p.doc.eng.PageFillStroke(p.h)
	p.done("FillStroke")
}

// FillStrokeEvenOdd fills the current path using the even-odd rule and
// then strokes it.
//
// This implements the PDF graphics operator "B*".
func (p *Page) FillStrokeEvenOdd() {
	if !p.isValid("FillStrokeEvenOdd") {
		return
	}
	p.doc.eng.PageEofillStroke(p.h)
	p.done("FillStrokeEvenOdd")
}

// CloseFillStroke closes, fills and strokes the current path.
//
// This implements the PDF graphics operator "b".
func (p *Page) CloseFillStroke() {
	if !p.isValid("CloseFillStroke") {
		return
	}
	p.doc.eng.PageClosePathFillStroke(p.h)
	p.done("CloseFillStroke")
}

// CloseFillStrokeEvenOdd closes the current path, fills it using the
// even-odd rule and strokes it.
//
// This implements the PDF graphics operator "b*".
func (p *Page) CloseFillStrokeEvenOdd() {
	if !p.isValid("CloseFillStrokeEvenOdd") {
		return
	}
	p.doc.eng.PageClosePathEofillStroke(p.h)
	p.done("CloseFillStrokeEvenOdd")
}

// EndPath ends the path without filling or stroking it.
//
// This implements the PDF graphics operator "n".
func (p *Page) EndPath() {
	if !p.isValid("EndPath") {
		return
	}
	p.doc.eng.PageEndPath(p.h)
	p.done("EndPath")
}

// ClipNonZero intersects the clipping path with the current path, using
// the nonzero winding number rule.
//
// This implements the PDF graphics operator "W".
func (p *Page) ClipNonZero() {
	if !p.isValid("ClipNonZero") {
		return
	}
	p.doc.eng.PageClip(p.h)
	p.done("ClipNonZero")
}

// ClipEvenOdd intersects the clipping path with the current path, using
// the even-odd rule.
//
// This implements the PDF graphics operator "W*".
func (p *Page) ClipEvenOdd() {
	if !p.isValid("ClipEvenOdd") {
		return
	}
	p.doc.eng.PageEoclip(p.h)
	p.done("ClipEvenOdd")
}
