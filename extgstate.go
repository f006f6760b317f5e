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

import "seehuhn.de/go/haru/engine"

// ExtGState is an extended graphics state parameter dictionary.
// Use [Page.SetExtGState] to apply it.
type ExtGState struct {
	doc *Document
	h   engine.Handle
}

// CreateExtGState creates a new, empty, extended graphics state.
func (d *Document) CreateExtGState() (*ExtGState, error) {
	const op = "CreateExtGState"
	if err := d.ready(op); err != nil {
		return nil, err
	}
	h := d.eng.CreateExtGState(d.h)
	if err := d.check(op); err != nil {
		return nil, err
	}
	if h == 0 {
		return nil, newError(op, ErrInvalidObject)
	}
	return &ExtGState{doc: d, h: h}, nil
}

// SetAlphaStroke sets the opacity used for stroking, between 0 and 1.
func (gs *ExtGState) SetAlphaStroke(alpha float64) error {
	const op = "ExtGState.SetAlphaStroke"
	if alpha < 0 || alpha > 1 {
		return newError(op, ErrFloatOutOfRange)
	}
	if err := gs.doc.ready(op); err != nil {
		return err
	}
	gs.doc.eng.ExtGStateSetAlphaStroke(gs.h, alpha)
	return gs.doc.check(op)
}

// SetAlphaFill sets the opacity used for filling, between 0 and 1.
func (gs *ExtGState) SetAlphaFill(alpha float64) error {
	const op = "ExtGState.SetAlphaFill"
	if alpha < 0 || alpha > 1 {
		return newError(op, ErrFloatOutOfRange)
	}
	if err := gs.doc.ready(op); err != nil {
		return err
	}
	gs.doc.eng.ExtGStateSetAlphaFill(gs.h, alpha)
	return gs.doc.check(op)
}

// SetBlendMode sets the blend mode.
func (gs *ExtGState) SetBlendMode(mode BlendMode) error {
	const op = "ExtGState.SetBlendMode"
	code, ok := encodeEnum(mode, blendModeCodes)
	if !ok {
		return newError(op, ErrInvalidParameter)
	}
	if err := gs.doc.ready(op); err != nil {
		return err
	}
	gs.doc.eng.ExtGStateSetBlendMode(gs.h, code)
	return gs.doc.check(op)
}
