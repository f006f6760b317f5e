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

// Outline is an entry in the document outline (the "bookmarks").
type Outline struct {
	doc *Document
	h   engine.Handle
}

// CreateOutline adds a new entry to the document outline.  If parent is
// nil, the entry is added at the top level.  The title is encoded using
// enc, or using PDFDocEncoding if enc is nil.
func (d *Document) CreateOutline(parent *Outline, title string, enc *Encoder) (*Outline, error) {
	const op = "CreateOutline"
	if err := d.ready(op); err != nil {
		return nil, err
	}

	var parentH engine.Handle
	if parent != nil {
		if parent.doc != d {
			return nil, newError(op, ErrInvalidOutline)
		}
		parentH = parent.h
	}
	var encH engine.Handle
	if enc != nil {
		if enc.doc != d {
			return nil, newError(op, ErrInvalidEncoder)
		}
		encH = enc.h
		if !d.rawText {
			s, err := enc.encode(title)
			if err != nil {
				return nil, err
			}
			title = s
		}
	}

	h := d.eng.CreateOutline(d.h, parentH, title, encH)
	if err := d.check(op); err != nil {
		return nil, err
	}
	if h == 0 {
		return nil, newError(op, ErrInvalidOutline)
	}
	return &Outline{doc: d, h: h}, nil
}

// SetOpened controls whether the children of the entry are shown when the
// document is opened.
func (o *Outline) SetOpened(opened bool) error {
	if err := o.doc.ready("Outline.SetOpened"); err != nil {
		return err
	}
	o.doc.eng.OutlineSetOpened(o.h, opened)
	return o.doc.check("Outline.SetOpened")
}

// SetDestination sets the target of the outline entry.
func (o *Outline) SetDestination(dst *Destination) error {
	const op = "Outline.SetDestination"
	if err := o.doc.ready(op); err != nil {
		return err
	}
	if dst == nil || dst.doc != o.doc {
		return newError(op, ErrInvalidDestination)
	}
	o.doc.eng.OutlineSetDestination(o.h, dst.h)
	return o.doc.check(op)
}
