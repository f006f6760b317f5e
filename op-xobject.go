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

// DrawImage draws an image with its lower left corner at (x, y), scaled
// to the given width and height.
func (p *Page) DrawImage(img *Image, x, y, width, height float64) {
	if !p.isValid("DrawImage") {
		return
	}
	if img == nil || img.doc != p.doc {
		p.Err = newError("DrawImage", ErrInvalidImage)
		return
	}
	p.doc.eng.PageDrawImage(p.h, img.h, x, y, width, height)
	p.done("DrawImage")
}

// DrawXObject paints an image at the unit square of the current user
// space.
//
// This implements the PDF graphics operator "Do".
func (p *Page) DrawXObject(img *Image) {
	if !p.isValid("DrawXObject") {
		return
	}
	if img == nil || img.doc != p.doc {
		p.Err = newError("DrawXObject", ErrPageInvalidXObject)
		return
	}
	p.doc.eng.PageExecuteXObject(p.h, img.h)
	p.done("DrawXObject")
}
