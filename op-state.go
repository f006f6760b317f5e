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

import "seehuhn.de/go/geom/matrix"

// This file implements the general graphics state operators.
// See table 56 of ISO 32000-2:2020.

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (p *Page) PushGraphicsState() {
	if !p.isValid("PushGraphicsState") {
		return
	}
	p.doc.eng.PageGSave(p.h)
	p.done("PushGraphicsState")
}

// PopGraphicsState restores the previous graphics state.
//
// This implements the PDF graphics operator "Q".
func (p *Page) PopGraphicsState() {
	if !p.isValid("PopGraphicsState") {
		return
	}
	p.doc.eng.PageGRestore(p.h)
	p.done("PopGraphicsState")
}

// Transform applies a transformation matrix to the coordinate system.
//
// This implements the PDF graphics operator "cm".
func (p *Page) Transform(m matrix.Matrix) {
	if !p.isValid("Transform") {
		return
	}
	p.doc.eng.PageConcat(p.h, matrixToEngine(m))
	p.done("Transform")
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (p *Page) SetLineWidth(width float64) {
	if !p.isValid("SetLineWidth") {
		return
	}
	p.doc.eng.PageSetLineWidth(p.h, width)
	p.done("SetLineWidth")
}

// SetLineCap sets the line cap style.
//
// This implements the PDF graphics operator "J".
func (p *Page) SetLineCap(lineCap LineCap) {
	if !p.isValid("SetLineCap") {
		return
	}
	code, ok := encodeEnum(lineCap, lineCapCodes)
	if !ok {
		p.Err = newError("SetLineCap", ErrInvalidParameter)
		return
	}
	p.doc.eng.PageSetLineCap(p.h, code)
	p.done("SetLineCap")
}

// SetLineJoin sets the line join style.
//
// This implements the PDF graphics operator "j".
func (p *Page) SetLineJoin(join LineJoin) {
	if !p.isValid("SetLineJoin") {
		return
	}
	code, ok := encodeEnum(join, lineJoinCodes)
	if !ok {
		p.Err = newError("SetLineJoin", ErrInvalidParameter)
		return
	}
	p.doc.eng.PageSetLineJoin(p.h, code)
	p.done("SetLineJoin")
}

// SetMiterLimit sets the miter limit.
//
// This implements the PDF graphics operator "M".
func (p *Page) SetMiterLimit(limit float64) {
	if !p.isValid("SetMiterLimit") {
		return
	}
	p.doc.eng.PageSetMiterLimit(p.h, limit)
	p.done("SetMiterLimit")
}

// SetDash sets the line dash pattern.  At most 8 pattern elements are
// supported.
//
// This implements the PDF graphics operator "d".
func (p *Page) SetDash(dash DashPattern) {
	if !p.isValid("SetDash") {
		return
	}
	mode, ok := dash.toEngine()
	if !ok {
		p.Err = newError("SetDash", ErrInvalidParameter)
		return
	}
	p.doc.eng.PageSetDash(p.h, mode)
	p.done("SetDash")
}

// SetExtGState applies the parameters of an extended graphics state.
//
// This implements the PDF graphics operator "gs".
func (p *Page) SetExtGState(gs *ExtGState) {
	if !p.isValid("SetExtGState") {
		return
	}
	if gs == nil || gs.doc != p.doc {
		p.Err = newError("SetExtGState", ErrInvalidObject)
		return
	}
	p.doc.eng.PageSetExtGState(p.h, gs.h)
	p.done("SetExtGState")
}
