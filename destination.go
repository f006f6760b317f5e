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

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/haru/engine"
)

// Destination is a view of a page, used as the target of outline entries,
// link annotations and the open action of a document.
type Destination struct {
	doc *Document
	h   engine.Handle
}

// CreateDestination creates a new destination on the page.  The initial
// view shows the top left corner of the page at the current zoom level.
func (p *Page) CreateDestination() (*Destination, error) {
	const op = "CreateDestination"
	if err := p.doc.ready(op); err != nil {
		return nil, err
	}
	h := p.doc.eng.PageCreateDestination(p.h)
	if err := p.doc.check(op); err != nil {
		return nil, err
	}
	if h == 0 {
		return nil, newError(op, ErrInvalidDestination)
	}
	return &Destination{doc: p.doc, h: h}, nil
}

func (dst *Destination) apply(op string, set func(engine.Handle)) error {
	if err := dst.doc.ready(op); err != nil {
		return err
	}
	set(dst.h)
	return dst.doc.check(op)
}

// SetXYZ shows the page with (left, top) in the upper left corner of the
// window, magnified by zoom.  A zoom of 1 means 100%.
func (dst *Destination) SetXYZ(left, top, zoom float64) error {
	if zoom < 0.08 || zoom > 32 {
		return newError("Destination.SetXYZ", ErrInvalidParameter)
	}
	return dst.apply("Destination.SetXYZ", func(h engine.Handle) {
		dst.doc.eng.DestinationSetXYZ(h, left, top, zoom)
	})
}

// SetFit fits the whole page into the window.
func (dst *Destination) SetFit() error {
	return dst.apply("Destination.SetFit", dst.doc.eng.DestinationSetFit)
}

// SetFitH fits the width of the page into the window, with the given
// vertical coordinate at the top edge.
func (dst *Destination) SetFitH(top float64) error {
	return dst.apply("Destination.SetFitH", func(h engine.Handle) {
		dst.doc.eng.DestinationSetFitH(h, top)
	})
}

// SetFitV fits the height of the page into the window, with the given
// horizontal coordinate at the left edge.
func (dst *Destination) SetFitV(left float64) error {
	return dst.apply("Destination.SetFitV", func(h engine.Handle) {
		dst.doc.eng.DestinationSetFitV(h, left)
	})
}

// SetFitR fits the given rectangle into the window.
func (dst *Destination) SetFitR(box rect.Rect) error {
	return dst.apply("Destination.SetFitR", func(h engine.Handle) {
		dst.doc.eng.DestinationSetFitR(h, rectToEngine(box))
	})
}

// SetFitB fits the bounding box of the page contents into the window.
func (dst *Destination) SetFitB() error {
	return dst.apply("Destination.SetFitB", dst.doc.eng.DestinationSetFitB)
}

// SetFitBH fits the width of the bounding box of the page contents into
// the window.
func (dst *Destination) SetFitBH(top float64) error {
	return dst.apply("Destination.SetFitBH", func(h engine.Handle) {
		dst.doc.eng.DestinationSetFitBH(h, top)
	})
}

// SetFitBV fits the height of the bounding box of the page contents into
// the window.
func (dst *Destination) SetFitBV(left float64) error {
	return dst.apply("Destination.SetFitBV", func(h engine.Handle) {
		dst.doc.eng.DestinationSetFitBV(h, left)
	})
}
