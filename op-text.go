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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// This file implements the text object, text state, text positioning and
// text showing operators.  See tables 103, 105, 106 and 107 of
// ISO 32000-2:2020.
//
// Text arguments are UTF-8 strings.  They are converted to the encoding of
// the current font before they are passed to the engine, unless the
// document was opened with the RawText option.

// BeginText starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (p *Page) BeginText() {
	if !p.isValid("BeginText") {
		return
	}
	p.doc.eng.PageBeginText(p.h)
	p.done("BeginText")
}

// EndText ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (p *Page) EndText() {
	if !p.isValid("EndText") {
		return
	}
	p.doc.eng.PageEndText(p.h)
	p.done("EndText")
}

// SetFontAndSize sets the font and font size for text operators.
//
// This implements the PDF graphics operator "Tf".
func (p *Page) SetFontAndSize(font *Font, size float64) {
	if !p.isValid("SetFontAndSize") {
		return
	}
	if font == nil || font.doc != p.doc {
		p.Err = newError("SetFontAndSize", ErrPageInvalidFont)
		return
	}
	p.doc.eng.PageSetFontAndSize(p.h, font.h, size)
	p.done("SetFontAndSize")
}

// SetCharSpace sets the character spacing.
//
// This implements the PDF graphics operator "Tc".
func (p *Page) SetCharSpace(value float64) {
	if !p.isValid("SetCharSpace") {
		return
	}
	p.doc.eng.PageSetCharSpace(p.h, value)
	p.done("SetCharSpace")
}

// SetWordSpace sets the word spacing.
//
// This implements the PDF graphics operator "Tw".
func (p *Page) SetWordSpace(value float64) {
	if !p.isValid("SetWordSpace") {
		return
	}
	p.doc.eng.PageSetWordSpace(p.h, value)
	p.done("SetWordSpace")
}

// SetHorizontalScaling sets the horizontal scaling, in percent.
//
// This implements the PDF graphics operator "Tz".
func (p *Page) SetHorizontalScaling(value float64) {
	if !p.isValid("SetHorizontalScaling") {
		return
	}
	p.doc.eng.PageSetHorizontalScalling(p.h, value)
	p.done("SetHorizontalScaling")
}

// SetTextLeading sets the distance between lines of text.
//
// This implements the PDF graphics operator "TL".
func (p *Page) SetTextLeading(value float64) {
	if !p.isValid("SetTextLeading") {
		return
	}
	p.doc.eng.PageSetTextLeading(p.h, value)
	p.done("SetTextLeading")
}

// SetTextRenderingMode sets the text rendering mode.
//
// This implements the PDF graphics operator "Tr".
func (p *Page) SetTextRenderingMode(mode TextRenderingMode) {
	if !p.isValid("SetTextRenderingMode") {
		return
	}
	code, ok := encodeEnum(mode, textRenderingModeCodes)
	if !ok {
		p.Err = newError("SetTextRenderingMode", ErrInvalidParameter)
		return
	}
	p.doc.eng.PageSetTextRenderingMode(p.h, code)
	p.done("SetTextRenderingMode")
}

// SetTextRise sets the text rise.
//
// This implements the PDF graphics operator "Ts".
func (p *Page) SetTextRise(value float64) {
	if !p.isValid("SetTextRise") {
		return
	}
	p.doc.eng.PageSetTextRise(p.h, value)
	p.done("SetTextRise")
}

// MoveTextPos starts a new line, offset by (x, y) from the start of the
// current line.
//
// This implements the PDF graphics operator "Td".
func (p *Page) MoveTextPos(x, y float64) {
	if !p.isValid("MoveTextPos") {
		return
	}
	p.doc.eng.PageMoveTextPos(p.h, x, y)
	p.done("MoveTextPos")
}

// MoveTextPosSetLeading starts a new line like [Page.MoveTextPos] and
// sets the text leading to -y.
//
// This implements the PDF graphics operator "TD".
func (p *Page) MoveTextPosSetLeading(x, y float64) {
	if !p.isValid("MoveTextPosSetLeading") {
		return
	}
	p.doc.eng.PageMoveTextPos2(p.h, x, y)
	p.done("MoveTextPosSetLeading")
}

// SetTextMatrix replaces the text matrix and the text line matrix.
//
// This implements the PDF graphics operator "Tm".
func (p *Page) SetTextMatrix(m matrix.Matrix) {
	if !p.isValid("SetTextMatrix") {
		return
	}
	p.doc.eng.PageSetTextMatrix(p.h, matrixToEngine(m))
	p.done("SetTextMatrix")
}

// MoveToNextLine moves to the start of the next line.
//
// This implements the PDF graphics operator "T*".
func (p *Page) MoveToNextLine() {
	if !p.isValid("MoveToNextLine") {
		return
	}
	p.doc.eng.PageMoveToNextLine(p.h)
	p.done("MoveToNextLine")
}

// ShowText shows text at the current text position.
//
// This implements the PDF graphics operator "Tj".
func (p *Page) ShowText(text string) {
	if !p.isValid("ShowText") {
		return
	}
	s, ok := p.encode("ShowText", text)
	if !ok {
		return
	}
	p.doc.eng.PageShowText(p.h, s)
	p.done("ShowText")
}

// ShowTextNextLine moves to the next line and shows text.
//
// This implements the PDF graphics operator "'".
func (p *Page) ShowTextNextLine(text string) {
	if !p.isValid("ShowTextNextLine") {
		return
	}
	s, ok := p.encode("ShowTextNextLine", text)
	if !ok {
		return
	}
	p.doc.eng.PageShowTextNextLine(p.h, s)
	p.done("ShowTextNextLine")
}

// ShowTextNextLineSpaced sets word and character spacing, moves to the
// next line and shows text.
//
// This implements the PDF graphics operator `"`.
func (p *Page) ShowTextNextLineSpaced(wordSpace, charSpace float64, text string) {
	if !p.isValid("ShowTextNextLineSpaced") {
		return
	}
	s, ok := p.encode("ShowTextNextLineSpaced", text)
	if !ok {
		return
	}
	p.doc.eng.PageShowTextNextLineEx(p.h, wordSpace, charSpace, s)
	p.done("ShowTextNextLineSpaced")
}

// TextOut shows text at position (x, y).
// This must be called inside a text object.
func (p *Page) TextOut(x, y float64, text string) {
	if !p.isValid("TextOut") {
		return
	}
	s, ok := p.encode("TextOut", text)
	if !ok {
		return
	}
	p.doc.eng.PageTextOut(p.h, x, y, s)
	p.done("TextOut")
}

// WriteText shows text at position (x, y) in a text object of its own.
func (p *Page) WriteText(x, y float64, text string) {
	p.BeginText()
	p.TextOut(x, y, text)
	p.EndText()
}

// TextRect lays out text inside the given box, breaking lines at word
// boundaries.  The return value is the number of characters which fit
// into the box.
// This must be called inside a text object.
func (p *Page) TextRect(box rect.Rect, text string, align TextAlignment) int {
	if !p.isValid("TextRect") {
		return 0
	}
	code, ok := encodeEnum(align, textAlignmentCodes)
	if !ok {
		p.Err = newError("TextRect", ErrInvalidParameter)
		return 0
	}
	s, ok := p.encode("TextRect", text)
	if !ok {
		return 0
	}
	n := p.doc.eng.PageTextRect(p.h, rectToEngine(box), s, code)
	p.done("TextRect")
	return int(n)
}

// TextWidth returns the width of text in the current font and size.
func (p *Page) TextWidth(text string) float64 {
	if !p.isValid("TextWidth") {
		return 0
	}
	s, ok := p.encode("TextWidth", text)
	if !ok {
		return 0
	}
	w := p.doc.eng.PageTextWidth(p.h, s)
	p.done("TextWidth")
	return w
}

// MeasureText determines how many bytes of text fit into the given
// width.  If wordWrap is true, text is only broken after a space.  The
// second return value is the width actually used.
//
// The byte count refers to the encoded text, which is not the same as the
// UTF-8 length for fonts with non-ASCII encodings.
func (p *Page) MeasureText(text string, width float64, wordWrap bool) (int, float64) {
	if !p.isValid("MeasureText") {
		return 0, 0
	}
	s, ok := p.encode("MeasureText", text)
	if !ok {
		return 0, 0
	}
	n, used := p.doc.eng.PageMeasureText(p.h, s, width, wordWrap)
	p.done("MeasureText")
	return int(n), used
}
