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

// This file implements the color operators for the device color spaces.
// See table 73 of ISO 32000-2:2020.

// SetGrayFill sets the fill color to a DeviceGray value in [0, 1].
//
// This implements the PDF graphics operator "g".
func (p *Page) SetGrayFill(gray float64) {
	if !p.isValid("SetGrayFill") {
		return
	}
	p.doc.eng.PageSetGrayFill(p.h, gray)
	p.done("SetGrayFill")
}

// SetGrayStroke sets the stroke color to a DeviceGray value in [0, 1].
//
// This implements the PDF graphics operator "G".
func (p *Page) SetGrayStroke(gray float64) {
	if !p.isValid("SetGrayStroke") {
		return
	}
	p.doc.eng.PageSetGrayStroke(p.h, gray)
	p.done("SetGrayStroke")
}

// SetRGBFill sets the fill color in the DeviceRGB color space.
//
// This implements the PDF graphics operator "rg".
func (p *Page) SetRGBFill(c RGB) {
	if !p.isValid("SetRGBFill") {
		return
	}
	p.doc.eng.PageSetRGBFill(p.h, c.toEngine())
	p.done("SetRGBFill")
}

// SetRGBStroke sets the stroke color in the DeviceRGB color space.
//
// This implements the PDF graphics operator "RG".
func (p *Page) SetRGBStroke(c RGB) {
	if !p.isValid("SetRGBStroke") {
		return
	}
	p.doc.eng.PageSetRGBStroke(p.h, c.toEngine())
	p.done("SetRGBStroke")
}

// SetCMYKFill sets the fill color in the DeviceCMYK color space.
//
// This implements the PDF graphics operator "k".
func (p *Page) SetCMYKFill(c CMYK) {
	if !p.isValid("SetCMYKFill") {
		return
	}
	p.doc.eng.PageSetCMYKFill(p.h, c.toEngine())
	p.done("SetCMYKFill")
}

// SetCMYKStroke sets the stroke color in the DeviceCMYK color space.
//
// This implements the PDF graphics operator "K".
func (p *Page) SetCMYKStroke(c CMYK) {
	if !p.isValid("SetCMYKStroke") {
		return
	}
	p.doc.eng.PageSetCMYKStroke(p.h, c.toEngine())
	p.done("SetCMYKStroke")
}
