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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/haru/engine"
)

// Page is a page of a [Document].
//
// The content operators of a page do not return errors.  Instead, the
// first error is stored in the Err field and all later content operators
// become no-ops.  Check Err once drawing is complete.
type Page struct {
	doc *Document
	h   engine.Handle

	// Err is the first error which occurred while drawing on the page.
	Err error
}

// ClearErr resets the error state of the page, so that further operators
// are sent to the engine again.
func (p *Page) ClearErr() {
	p.Err = nil
}

// isValid reports whether a content operator should be forwarded to the
// engine.
func (p *Page) isValid(op string) bool {
	if p.Err != nil {
		return false
	}
	if p.doc.h == 0 {
		p.Err = newError(op, ErrInvalidDocument)
		return false
	}
	return true
}

// done records the outcome of the engine call for op.
func (p *Page) done(op string) {
	p.Err = p.doc.check(op)
}

// observe records the outcome of a query.  Queries are answered even
// after an error, and do not replace an earlier error.
func (p *Page) observe(op string) {
	err := p.doc.check(op)
	if p.Err == nil {
		p.Err = err
	}
}

// open reports whether queries can be sent to the engine.
func (p *Page) open() bool {
	return p.doc.h != 0
}

// encode converts s to the encoding of the current font.
func (p *Page) encode(op, s string) (string, bool) {
	if p.doc.rawText {
		return s, true
	}
	font := p.doc.eng.PageGetCurrentFont(p.h)
	p.observe(op)
	if p.Err != nil {
		return "", false
	}
	if font == 0 {
		// The engine reports the missing font when the text is shown.
		return s, true
	}
	encName := p.doc.eng.FontGetEncodingName(font)
	p.observe(op)
	if p.Err != nil {
		return "", false
	}
	res, err := encodeText(encName, s)
	if err != nil {
		p.Err = err
		return "", false
	}
	return res, true
}

// Document returns the document the page belongs to.
func (p *Page) Document() *Document {
	return p.doc
}

// SetWidth changes the width of the page.
func (p *Page) SetWidth(width float64) {
	if !p.isValid("SetWidth") {
		return
	}
	p.doc.eng.PageSetWidth(p.h, width)
	p.done("SetWidth")
}

// SetHeight changes the height of the page.
func (p *Page) SetHeight(height float64) {
	if !p.isValid("SetHeight") {
		return
	}
	p.doc.eng.PageSetHeight(p.h, height)
	p.done("SetHeight")
}

// SetSize changes the page to one of the predefined paper sizes.
func (p *Page) SetSize(size PageSize, dir PageDirection) {
	if !p.isValid("SetSize") {
		return
	}
	sizeCode, ok := encodeEnum(size, pageSizeCodes)
	if !ok {
		p.Err = newError("SetSize", ErrPageInvalidSize)
		return
	}
	dirCode, ok := encodeEnum(dir, pageDirectionCodes)
	if !ok {
		p.Err = newError("SetSize", ErrInvalidPageDirection)
		return
	}
	p.doc.eng.PageSetSize(p.h, sizeCode, dirCode)
	p.done("SetSize")
}

// SetRotate sets the rotation of the page.  The angle must be a multiple
// of 90 degrees.
func (p *Page) SetRotate(angle uint16) {
	if !p.isValid("SetRotate") {
		return
	}
	p.doc.eng.PageSetRotate(p.h, angle)
	p.done("SetRotate")
}

// Width returns the width of the page.
func (p *Page) Width() float64 {
	if !p.open() {
		return 0
	}
	w := p.doc.eng.PageGetWidth(p.h)
	p.observe("Width")
	return w
}

// Height returns the height of the page.
func (p *Page) Height() float64 {
	if !p.open() {
		return 0
	}
	h := p.doc.eng.PageGetHeight(p.h)
	p.observe("Height")
	return h
}

// SetSlideShow configures the page for presentations.  The page is shown
// for dispTime seconds, and the transition takes transTime seconds.
func (p *Page) SetSlideShow(style TransitionStyle, dispTime, transTime float64) {
	if !p.isValid("SetSlideShow") {
		return
	}
	code, ok := encodeEnum(style, transitionStyleCodes)
	if !ok {
		p.Err = newError("SetSlideShow", ErrInvalidParameter)
		return
	}
	p.doc.eng.PageSetSlideShow(p.h, code, dispTime, transTime)
	p.done("SetSlideShow")
}

// GMode returns the current graphics mode of the page.
func (p *Page) GMode() GMode {
	if !p.open() {
		return 0
	}
	m := p.doc.eng.PageGetGMode(p.h)
	p.observe("GMode")
	return GMode(m)
}

// CurrentPos returns the current point of the path.
func (p *Page) CurrentPos() vec.Vec2 {
	if !p.open() {
		return vec.Vec2{}
	}
	pos := p.doc.eng.PageGetCurrentPos(p.h)
	p.observe("CurrentPos")
	return pointFromEngine(pos)
}

// CurrentTextPos returns the current text position.
func (p *Page) CurrentTextPos() vec.Vec2 {
	if !p.open() {
		return vec.Vec2{}
	}
	pos := p.doc.eng.PageGetCurrentTextPos(p.h)
	p.observe("CurrentTextPos")
	return pointFromEngine(pos)
}

// CurrentFont returns the current font, or nil if no font has been set.
func (p *Page) CurrentFont() *Font {
	if !p.open() {
		return nil
	}
	h := p.doc.eng.PageGetCurrentFont(p.h)
	p.observe("CurrentFont")
	if h == 0 {
		return nil
	}
	return &Font{doc: p.doc, h: h}
}

// CurrentFontSize returns the current font size.
func (p *Page) CurrentFontSize() float64 {
	if !p.open() {
		return 0
	}
	size := p.doc.eng.PageGetCurrentFontSize(p.h)
	p.observe("CurrentFontSize")
	return size
}

// TransMatrix returns the current transformation matrix.
func (p *Page) TransMatrix() matrix.Matrix {
	if !p.open() {
		return matrix.Identity
	}
	m := p.doc.eng.PageGetTransMatrix(p.h)
	p.observe("TransMatrix")
	return matrixFromEngine(m)
}

// TextMatrix returns the current text matrix.
func (p *Page) TextMatrix() matrix.Matrix {
	if !p.open() {
		return matrix.Identity
	}
	m := p.doc.eng.PageGetTextMatrix(p.h)
	p.observe("TextMatrix")
	return matrixFromEngine(m)
}

// LineWidth returns the current line width.
func (p *Page) LineWidth() float64 {
	if !p.open() {
		return 0
	}
	w := p.doc.eng.PageGetLineWidth(p.h)
	p.observe("LineWidth")
	return w
}

// LineCap returns the current line cap style.
func (p *Page) LineCap() LineCap {
	if !p.open() {
		return LineCapEOF
	}
	v := p.doc.eng.PageGetLineCap(p.h)
	p.observe("LineCap")
	return decodeEnum(v, lineCapCodes, LineCapEOF)
}

// LineJoin returns the current line join style.
func (p *Page) LineJoin() LineJoin {
	if !p.open() {
		return LineJoinEOF
	}
	v := p.doc.eng.PageGetLineJoin(p.h)
	p.observe("LineJoin")
	return decodeEnum(v, lineJoinCodes, LineJoinEOF)
}

// MiterLimit returns the current miter limit.
func (p *Page) MiterLimit() float64 {
	if !p.open() {
		return 0
	}
	v := p.doc.eng.PageGetMiterLimit(p.h)
	p.observe("MiterLimit")
	return v
}

// Dash returns the current dash pattern.
func (p *Page) Dash() DashPattern {
	if !p.open() {
		return DashPattern{}
	}
	d := p.doc.eng.PageGetDash(p.h)
	p.observe("Dash")
	return dashFromEngine(d)
}

// Flatness returns the current flatness tolerance.
func (p *Page) Flatness() float64 {
	if !p.open() {
		return 0
	}
	v := p.doc.eng.PageGetFlat(p.h)
	p.observe("Flatness")
	return v
}

// CharSpace returns the current character spacing.
func (p *Page) CharSpace() float64 {
	if !p.open() {
		return 0
	}
	v := p.doc.eng.PageGetCharSpace(p.h)
	p.observe("CharSpace")
	return v
}

// WordSpace returns the current word spacing.
func (p *Page) WordSpace() float64 {
	if !p.open() {
		return 0
	}
	v := p.doc.eng.PageGetWordSpace(p.h)
	p.observe("WordSpace")
	return v
}

// HorizontalScaling returns the current horizontal text scaling, in
// percent.
func (p *Page) HorizontalScaling() float64 {
	if !p.open() {
		return 0
	}
	v := p.doc.eng.PageGetHorizontalScalling(p.h)
	p.observe("HorizontalScaling")
	return v
}

// TextLeading returns the current text leading.
func (p *Page) TextLeading() float64 {
	if !p.open() {
		return 0
	}
	v := p.doc.eng.PageGetTextLeading(p.h)
	p.observe("TextLeading")
	return v
}

// TextRenderingMode returns the current text rendering mode.
func (p *Page) TextRenderingMode() TextRenderingMode {
	if !p.open() {
		return TextRenderingModeEOF
	}
	v := p.doc.eng.PageGetTextRenderingMode(p.h)
	p.observe("TextRenderingMode")
	return decodeEnum(v, textRenderingModeCodes, TextRenderingModeEOF)
}

// TextRise returns the current text rise.
func (p *Page) TextRise() float64 {
	if !p.open() {
		return 0
	}
	v := p.doc.eng.PageGetTextRise(p.h)
	p.observe("TextRise")
	return v
}

// RGBFill returns the current fill color in the DeviceRGB color space.
func (p *Page) RGBFill() RGB {
	if !p.open() {
		return RGB{}
	}
	c := p.doc.eng.PageGetRGBFill(p.h)
	p.observe("RGBFill")
	return RGB{c.R, c.G, c.B}
}

// RGBStroke returns the current stroke color in the DeviceRGB color space.
func (p *Page) RGBStroke() RGB {
	if !p.open() {
		return RGB{}
	}
	c := p.doc.eng.PageGetRGBStroke(p.h)
	p.observe("RGBStroke")
	return RGB{c.R, c.G, c.B}
}

// CMYKFill returns the current fill color in the DeviceCMYK color space.
func (p *Page) CMYKFill() CMYK {
	if !p.open() {
		return CMYK{}
	}
	c := p.doc.eng.PageGetCMYKFill(p.h)
	p.observe("CMYKFill")
	return CMYK{c.C, c.M, c.Y, c.K}
}

// CMYKStroke returns the current stroke color in the DeviceCMYK color
// space.
func (p *Page) CMYKStroke() CMYK {
	if !p.open() {
		return CMYK{}
	}
	c := p.doc.eng.PageGetCMYKStroke(p.h)
	p.observe("CMYKStroke")
	return CMYK{c.C, c.M, c.Y, c.K}
}

// GrayFill returns the current fill gray level.
func (p *Page) GrayFill() float64 {
	if !p.open() {
		return 0
	}
	v := p.doc.eng.PageGetGrayFill(p.h)
	p.observe("GrayFill")
	return v
}

// GrayStroke returns the current stroke gray level.
func (p *Page) GrayStroke() float64 {
	if !p.open() {
		return 0
	}
	v := p.doc.eng.PageGetGrayStroke(p.h)
	p.observe("GrayStroke")
	return v
}

// StrokingColorSpace returns the color space used for stroking.
func (p *Page) StrokingColorSpace() ColorSpace {
	if !p.open() {
		return ColorSpaceEOF
	}
	v := p.doc.eng.PageGetStrokingColorSpace(p.h)
	p.observe("StrokingColorSpace")
	return colorSpaceFromEngine(v)
}

// FillingColorSpace returns the color space used for filling.
func (p *Page) FillingColorSpace() ColorSpace {
	if !p.open() {
		return ColorSpaceEOF
	}
	v := p.doc.eng.PageGetFillingColorSpace(p.h)
	p.observe("FillingColorSpace")
	return colorSpaceFromEngine(v)
}

// GStateDepth returns the number of saved graphics states.
func (p *Page) GStateDepth() int {
	if !p.open() {
		return 0
	}
	v := p.doc.eng.PageGetGStateDepth(p.h)
	p.observe("GStateDepth")
	return int(v)
}

// ContentStream is an additional content stream of a page.  A content
// stream can be shared between several pages.
type ContentStream struct {
	doc *Document
	h   engine.Handle
}

// NewContentStream starts a new content stream for the page.  All further
// operators are appended to the new stream.
func (p *Page) NewContentStream() *ContentStream {
	if !p.isValid("NewContentStream") {
		return nil
	}
	h := p.doc.eng.PageNewContentStream(p.h)
	p.done("NewContentStream")
	if p.Err != nil || h == 0 {
		return nil
	}
	return &ContentStream{doc: p.doc, h: h}
}

// InsertSharedContentStream appends a content stream created on another
// page to this page.
func (p *Page) InsertSharedContentStream(cs *ContentStream) {
	if !p.isValid("InsertSharedContentStream") {
		return
	}
	if cs == nil || cs.doc != p.doc {
		p.Err = newError("InsertSharedContentStream", ErrInvalidObject)
		return
	}
	p.doc.eng.PageInsertSharedContentStream(p.h, cs.h)
	p.done("InsertSharedContentStream")
}
