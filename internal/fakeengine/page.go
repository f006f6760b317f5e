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
package fakeengine

import (
	"strings"

	"seehuhn.de/go/haru/engine"
)

const (
	gmodePageDescription = 0x0001
	gmodePathObject      = 0x0002
	gmodeTextObject      = 0x0004
)

type graphicsState struct {
	ctm        engine.TransMatrix
	lineWidth  float64
	lineCap    int
	lineJoin   int
	miterLimit float64
	dash       engine.DashMode
	flatness   float64

	charSpace, wordSpace float64
	hScaling             float64
	leading              float64
	renderingMode        int
	rise                 float64
	font                 engine.Handle
	fontSize             float64

	rgbFill, rgbStroke   engine.RGBColor
	cmykFill, cmykStroke engine.CMYKColor
	grayFill, grayStroke float64
	csFill, csStroke     int
}

type pageState struct {
	width, height float64
	gmode         uint16
	pos, textPos  engine.Point
	textMatrix    engine.TransMatrix
	gs            graphicsState
	stack         []graphicsState
}

var identity = engine.TransMatrix{A: 1, D: 1}

func (e *Engine) newPage(doc engine.Handle) engine.Handle {
	h := e.alloc(doc)
	e.pages[h] = &pageState{
		width:      595,
		height:     842,
		gmode:      gmodePageDescription,
		textMatrix: identity,
		gs: graphicsState{
			ctm:        identity,
			lineWidth:  1,
			miterLimit: 10,
			flatness:   1,
			hScaling:   100,
		},
	}
	return h
}

// page records a call on a page and returns the page state, or nil if the
// call fails.
func (e *Engine) page(name string, h engine.Handle, text string) *pageState {
	d := e.call(name, h, text)
	if !ok(d) {
		return nil
	}
	p := e.pages[h]
	if p == nil {
		d.fail(CodeInvalidPage)
	}
	return p
}

// query returns the page state for a query.  Queries do not record faults.
func (e *Engine) query(name string, h engine.Handle) *pageState {
	e.Calls = append(e.Calls, Call{Name: name, Handle: h})
	if p := e.pages[h]; p != nil {
		return p
	}
	return &pageState{}
}

// PageText returns the concatenation of all text shown on the page.
func (e *Engine) PageText(page engine.Handle) string {
	var b strings.Builder
	for _, c := range e.Calls {
		if c.Handle != page {
			continue
		}
		switch c.Name {
		case "PageShowText", "PageShowTextNextLine", "PageShowTextNextLineEx", "PageTextOut", "PageTextRect":
			b.WriteString(c.Text)
		}
	}
	return b.String()
}

func (e *Engine) PageSetWidth(page engine.Handle, value float64) {
	if p := e.page("PageSetWidth", page, ""); p != nil {
		p.width = value
	}
}

func (e *Engine) PageSetHeight(page engine.Handle, value float64) {
	if p := e.page("PageSetHeight", page, ""); p != nil {
		p.height = value
	}
}

// PageSetSize only knows the A4 and letter sizes; all others are A4.
func (e *Engine) PageSetSize(page engine.Handle, size, direction int) {
	p := e.page("PageSetSize", page, "")
	if p == nil {
		return
	}
	w, h := 595.0, 842.0
	if size == engine.PageSizeLetter {
		w, h = 612, 792
	}
	if direction == engine.PageLandscape {
		w, h = h, w
	}
	p.width, p.height = w, h
}

func (e *Engine) PageSetRotate(page engine.Handle, angle uint16) {
	e.page("PageSetRotate", page, "")
}

func (e *Engine) PageGetWidth(page engine.Handle) float64 {
	return e.query("PageGetWidth", page).width
}

func (e *Engine) PageGetHeight(page engine.Handle) float64 {
	return e.query("PageGetHeight", page).height
}

func (e *Engine) pageObject(name string, page engine.Handle, text, kind string) engine.Handle {
	if e.page(name, page, text) == nil {
		return 0
	}
	h := e.alloc(e.owner[page])
	e.objects[h] = kind
	return h
}

func (e *Engine) PageCreateDestination(page engine.Handle) engine.Handle {
	return e.pageObject("PageCreateDestination", page, "", "destination")
}

func (e *Engine) PageCreateTextAnnot(page engine.Handle, rect engine.Rect, text string, encoder engine.Handle) engine.Handle {
	return e.pageObject("PageCreateTextAnnot", page, text, "annotation")
}

func (e *Engine) PageCreateLinkAnnot(page engine.Handle, rect engine.Rect, dst engine.Handle) engine.Handle {
	return e.pageObject("PageCreateLinkAnnot", page, "", "annotation")
}

func (e *Engine) PageCreateURILinkAnnot(page engine.Handle, rect engine.Rect, uri string) engine.Handle {
	return e.pageObject("PageCreateURILinkAnnot", page, uri, "annotation")
}

// PageTextWidth reports a width of half the font size per byte.
func (e *Engine) PageTextWidth(page engine.Handle, text string) float64 {
	p := e.page("PageTextWidth", page, text)
	if p == nil {
		return 0
	}
	return float64(len(text)) * p.gs.fontSize / 2
}

func (e *Engine) PageMeasureText(page engine.Handle, text string, width float64, wordWrap bool) (uint32, float64) {
	p := e.page("PageMeasureText", page, text)
	if p == nil || p.gs.fontSize == 0 {
		return 0, 0
	}
	charWidth := p.gs.fontSize / 2
	n := min(len(text), int(width/charWidth))
	return uint32(n), float64(n) * charWidth
}

func (e *Engine) PageGetGMode(page engine.Handle) uint16 {
	return e.query("PageGetGMode", page).gmode
}

func (e *Engine) PageGetCurrentPos(page engine.Handle) engine.Point {
	return e.query("PageGetCurrentPos", page).pos
}

func (e *Engine) PageGetCurrentTextPos(page engine.Handle) engine.Point {
	return e.query("PageGetCurrentTextPos", page).textPos
}

func (e *Engine) PageGetCurrentFont(page engine.Handle) engine.Handle {
	return e.query("PageGetCurrentFont", page).gs.font
}

func (e *Engine) PageGetCurrentFontSize(page engine.Handle) float64 {
	return e.query("PageGetCurrentFontSize", page).gs.fontSize
}

func (e *Engine) PageGetTransMatrix(page engine.Handle) engine.TransMatrix {
	return e.query("PageGetTransMatrix", page).gs.ctm
}

func (e *Engine) PageGetLineWidth(page engine.Handle) float64 {
	return e.query("PageGetLineWidth", page).gs.lineWidth
}

func (e *Engine) PageGetLineCap(page engine.Handle) int {
	return e.query("PageGetLineCap", page).gs.lineCap
}

func (e *Engine) PageGetLineJoin(page engine.Handle) int {
	return e.query("PageGetLineJoin", page).gs.lineJoin
}

func (e *Engine) PageGetMiterLimit(page engine.Handle) float64 {
	return e.query("PageGetMiterLimit", page).gs.miterLimit
}

func (e *Engine) PageGetDash(page engine.Handle) engine.DashMode {
	return e.query("PageGetDash", page).gs.dash
}

func (e *Engine) PageGetFlat(page engine.Handle) float64 {
	return e.query("PageGetFlat", page).gs.flatness
}

func (e *Engine) PageGetCharSpace(page engine.Handle) float64 {
	return e.query("PageGetCharSpace", page).gs.charSpace
}

func (e *Engine) PageGetWordSpace(page engine.Handle) float64 {
	return e.query("PageGetWordSpace", page).gs.wordSpace
}

func (e *Engine) PageGetHorizontalScalling(page engine.Handle) float64 {
	return e.query("PageGetHorizontalScalling", page).gs.hScaling
}

func (e *Engine) PageGetTextLeading(page engine.Handle) float64 {
	return e.query("PageGetTextLeading", page).gs.leading
}

func (e *Engine) PageGetTextRenderingMode(page engine.Handle) int {
	return e.query("PageGetTextRenderingMode", page).gs.renderingMode
}

func (e *Engine) PageGetTextRise(page engine.Handle) float64 {
	return e.query("PageGetTextRise", page).gs.rise
}

func (e *Engine) PageGetRGBFill(page engine.Handle) engine.RGBColor {
	return e.query("PageGetRGBFill", page).gs.rgbFill
}

func (e *Engine) PageGetRGBStroke(page engine.Handle) engine.RGBColor {
	return e.query("PageGetRGBStroke", page).gs.rgbStroke
}

func (e *Engine) PageGetCMYKFill(page engine.Handle) engine.CMYKColor {
	return e.query("PageGetCMYKFill", page).gs.cmykFill
}

func (e *Engine) PageGetCMYKStroke(page engine.Handle) engine.CMYKColor {
	return e.query("PageGetCMYKStroke", page).gs.cmykStroke
}

func (e *Engine) PageGetGrayFill(page engine.Handle) float64 {
	return e.query("PageGetGrayFill", page).gs.grayFill
}

func (e *Engine) PageGetGrayStroke(page engine.Handle) float64 {
	return e.query("PageGetGrayStroke", page).gs.grayStroke
}

func (e *Engine) PageGetStrokingColorSpace(page engine.Handle) int {
	return e.query("PageGetStrokingColorSpace", page).gs.csStroke
}

func (e *Engine) PageGetFillingColorSpace(page engine.Handle) int {
	return e.query("PageGetFillingColorSpace", page).gs.csFill
}

func (e *Engine) PageGetTextMatrix(page engine.Handle) engine.TransMatrix {
	return e.query("PageGetTextMatrix", page).textMatrix
}

func (e *Engine) PageGetGStateDepth(page engine.Handle) uint32 {
	return uint32(len(e.query("PageGetGStateDepth", page).stack)) + 1
}

func (e *Engine) PageSetSlideShow(page engine.Handle, style int, dispTime, transTime float64) {
	e.page("PageSetSlideShow", page, "")
}

func (e *Engine) PageNewContentStream(page engine.Handle) engine.Handle {
	return e.pageObject("PageNewContentStream", page, "", "stream")
}

func (e *Engine) PageInsertSharedContentStream(page engine.Handle, stream engine.Handle) {
	e.page("PageInsertSharedContentStream", page, "")
}

// pathOp records a path construction operator.
func (e *Engine) pathOp(name string, page engine.Handle, x, y float64) {
	if p := e.page(name, page, ""); p != nil {
		p.gmode = gmodePathObject
		p.pos = engine.Point{X: x, Y: y}
	}
}

// paintOp records a path painting operator.
func (e *Engine) paintOp(name string, page engine.Handle) {
	if p := e.page(name, page, ""); p != nil {
		p.gmode = gmodePageDescription
	}
}

func (e *Engine) PageArc(page engine.Handle, x, y, radius, ang1, ang2 float64) {
	e.pathOp("PageArc", page, x, y)
}

func (e *Engine) PageCircle(page engine.Handle, x, y, radius float64) {
	e.pathOp("PageCircle", page, x+radius, y)
}

func (e *Engine) PageCurveTo(page engine.Handle, x1, y1, x2, y2, x3, y3 float64) {
	e.pathOp("PageCurveTo", page, x3, y3)
}

func (e *Engine) PageCurveTo2(page engine.Handle, x2, y2, x3, y3 float64) {
	e.pathOp("PageCurveTo2", page, x3, y3)
}

func (e *Engine) PageCurveTo3(page engine.Handle, x1, y1, x3, y3 float64) {
	e.pathOp("PageCurveTo3", page, x3, y3)
}

func (e *Engine) PageEllipse(page engine.Handle, x, y, xRadius, yRadius float64) {
	e.pathOp("PageEllipse", page, x+xRadius, y)
}

func (e *Engine) PageLineTo(page engine.Handle, x, y float64) {
	e.pathOp("PageLineTo", page, x, y)
}

func (e *Engine) PageMoveTo(page engine.Handle, x, y float64) {
	e.pathOp("PageMoveTo", page, x, y)
}

func (e *Engine) PageRectangle(page engine.Handle, x, y, width, height float64) {
	e.pathOp("PageRectangle", page, x, y)
}

func (e *Engine) PageClosePath(page engine.Handle) {
	e.page("PageClosePath", page, "")
}

func (e *Engine) PageClip(page engine.Handle)   { e.page("PageClip", page, "") }
func (e *Engine) PageEoclip(page engine.Handle) { e.page("PageEoclip", page, "") }

func (e *Engine) PageClosePathStroke(page engine.Handle) {
	e.paintOp("PageClosePathStroke", page)
}

func (e *Engine) PageClosePathEofillStroke(page engine.Handle) {
	e.paintOp("PageClosePathEofillStroke", page)
}

func (e *Engine) PageClosePathFillStroke(page engine.Handle) {
	e.paintOp("PageClosePathFillStroke", page)
}

func (e *Engine) PageEndPath(page engine.Handle)      { e.paintOp("PageEndPath", page) }
func (e *Engine) PageEofill(page engine.Handle)       { e.paintOp("PageEofill", page) }
func (e *Engine) PageEofillStroke(page engine.Handle) { e.paintOp("PageEofillStroke", page) }
func (e *Engine) PageFill(page engine.Handle)         { e.paintOp("PageFill", page) }
func (e *Engine) PageFillStroke(page engine.Handle)   { e.paintOp("PageFillStroke", page) }
func (e *Engine) PageStroke(page engine.Handle)       { e.paintOp("PageStroke", page) }

func multiply(m, n engine.TransMatrix) engine.TransMatrix {
	return engine.TransMatrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		X: m.X*n.A + m.Y*n.C + n.X,
		Y: m.X*n.B + m.Y*n.D + n.Y,
	}
}

func (e *Engine) PageConcat(page engine.Handle, m engine.TransMatrix) {
	if p := e.page("PageConcat", page, ""); p != nil {
		p.gs.ctm = multiply(m, p.gs.ctm)
	}
}

func (e *Engine) PageGSave(page engine.Handle) {
	if p := e.page("PageGSave", page, ""); p != nil {
		p.stack = append(p.stack, p.gs)
	}
}

func (e *Engine) PageGRestore(page engine.Handle) {
	p := e.page("PageGRestore", page, "")
	if p == nil {
		return
	}
	if len(p.stack) == 0 {
		e.docs[e.owner[page]].fail(CodePageCannotRestoreGState)
		return
	}
	p.gs = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

func (e *Engine) PageDrawImage(page engine.Handle, image engine.Handle, x, y, width, height float64) {
	e.page("PageDrawImage", page, "")
}

func (e *Engine) PageExecuteXObject(page engine.Handle, obj engine.Handle) {
	e.page("PageExecuteXObject", page, "")
}

func (e *Engine) PageBeginText(page engine.Handle) {
	if p := e.page("PageBeginText", page, ""); p != nil {
		p.gmode = gmodeTextObject
		p.textMatrix = identity
		p.textPos = engine.Point{}
	}
}

func (e *Engine) PageEndText(page engine.Handle) {
	if p := e.page("PageEndText", page, ""); p != nil {
		p.gmode = gmodePageDescription
	}
}

func (e *Engine) moveText(p *pageState, x, y float64) {
	p.textPos.X += x
	p.textPos.Y += y
	p.textMatrix.X = p.textPos.X
	p.textMatrix.Y = p.textPos.Y
}

func (e *Engine) PageMoveTextPos(page engine.Handle, x, y float64) {
	if p := e.page("PageMoveTextPos", page, ""); p != nil {
		e.moveText(p, x, y)
	}
}

func (e *Engine) PageMoveTextPos2(page engine.Handle, x, y float64) {
	if p := e.page("PageMoveTextPos2", page, ""); p != nil {
		e.moveText(p, x, y)
		p.gs.leading = -y
	}
}

func (e *Engine) PageMoveToNextLine(page engine.Handle) {
	if p := e.page("PageMoveToNextLine", page, ""); p != nil {
		e.moveText(p, 0, -p.gs.leading)
	}
}

func (e *Engine) PageSetCharSpace(page engine.Handle, value float64) {
	if p := e.page("PageSetCharSpace", page, ""); p != nil {
		p.gs.charSpace = value
	}
}

func (e *Engine) PageSetCMYKFill(page engine.Handle, c engine.CMYKColor) {
	if p := e.page("PageSetCMYKFill", page, ""); p != nil {
		p.gs.cmykFill = c
		p.gs.csFill = engine.CSDeviceCMYK
	}
}

func (e *Engine) PageSetCMYKStroke(page engine.Handle, c engine.CMYKColor) {
	if p := e.page("PageSetCMYKStroke", page, ""); p != nil {
		p.gs.cmykStroke = c
		p.gs.csStroke = engine.CSDeviceCMYK
	}
}

func (e *Engine) PageSetDash(page engine.Handle, mode engine.DashMode) {
	if p := e.page("PageSetDash", page, ""); p != nil {
		p.gs.dash = engine.DashMode{
			Pattern: append([]float64(nil), mode.Pattern...),
			Phase:   mode.Phase,
		}
	}
}

func (e *Engine) PageSetExtGState(page engine.Handle, gs engine.Handle) {
	e.page("PageSetExtGState", page, "")
}

func (e *Engine) PageSetFontAndSize(page engine.Handle, font engine.Handle, size float64) {
	p := e.page("PageSetFontAndSize", page, "")
	if p == nil {
		return
	}
	if e.fonts[font] == nil {
		e.docs[e.owner[page]].fail(CodeInvalidFont)
		return
	}
	p.gs.font = font
	p.gs.fontSize = size
}

func (e *Engine) PageSetGrayFill(page engine.Handle, gray float64) {
	if p := e.page("PageSetGrayFill", page, ""); p != nil {
		p.gs.grayFill = gray
		p.gs.csFill = engine.CSDeviceGray
	}
}

func (e *Engine) PageSetGrayStroke(page engine.Handle, gray float64) {
	if p := e.page("PageSetGrayStroke", page, ""); p != nil {
		p.gs.grayStroke = gray
		p.gs.csStroke = engine.CSDeviceGray
	}
}

func (e *Engine) PageSetHorizontalScalling(page engine.Handle, value float64) {
	if p := e.page("PageSetHorizontalScalling", page, ""); p != nil {
		p.gs.hScaling = value
	}
}

func (e *Engine) PageSetLineCap(page engine.Handle, lineCap int) {
	if p := e.page("PageSetLineCap", page, ""); p != nil {
		p.gs.lineCap = lineCap
	}
}

func (e *Engine) PageSetLineJoin(page engine.Handle, lineJoin int) {
	if p := e.page("PageSetLineJoin", page, ""); p != nil {
		p.gs.lineJoin = lineJoin
	}
}

func (e *Engine) PageSetLineWidth(page engine.Handle, width float64) {
	if p := e.page("PageSetLineWidth", page, ""); p != nil {
		p.gs.lineWidth = width
	}
}

func (e *Engine) PageSetMiterLimit(page engine.Handle, limit float64) {
	if p := e.page("PageSetMiterLimit", page, ""); p != nil {
		p.gs.miterLimit = limit
	}
}

func (e *Engine) PageSetRGBFill(page engine.Handle, c engine.RGBColor) {
	if p := e.page("PageSetRGBFill", page, ""); p != nil {
		p.gs.rgbFill = c
		p.gs.csFill = engine.CSDeviceRGB
	}
}

func (e *Engine) PageSetRGBStroke(page engine.Handle, c engine.RGBColor) {
	if p := e.page("PageSetRGBStroke", page, ""); p != nil {
		p.gs.rgbStroke = c
		p.gs.csStroke = engine.CSDeviceRGB
	}
}

func (e *Engine) PageSetTextLeading(page engine.Handle, value float64) {
	if p := e.page("PageSetTextLeading", page, ""); p != nil {
		p.gs.leading = value
	}
}

func (e *Engine) PageSetTextMatrix(page engine.Handle, m engine.TransMatrix) {
	if p := e.page("PageSetTextMatrix", page, ""); p != nil {
		p.textMatrix = m
		p.textPos = engine.Point{X: m.X, Y: m.Y}
	}
}

func (e *Engine) PageSetTextRenderingMode(page engine.Handle, mode int) {
	if p := e.page("PageSetTextRenderingMode", page, ""); p != nil {
		p.gs.renderingMode = mode
	}
}

func (e *Engine) PageSetTextRise(page engine.Handle, value float64) {
	if p := e.page("PageSetTextRise", page, ""); p != nil {
		p.gs.rise = value
	}
}

func (e *Engine) PageSetWordSpace(page engine.Handle, value float64) {
	if p := e.page("PageSetWordSpace", page, ""); p != nil {
		p.gs.wordSpace = value
	}
}

func (e *Engine) PageShowText(page engine.Handle, text string) {
	e.page("PageShowText", page, text)
}

func (e *Engine) PageShowTextNextLine(page engine.Handle, text string) {
	if p := e.page("PageShowTextNextLine", page, text); p != nil {
		e.moveText(p, 0, -p.gs.leading)
	}
}

func (e *Engine) PageShowTextNextLineEx(page engine.Handle, wordSpace, charSpace float64, text string) {
	if p := e.page("PageShowTextNextLineEx", page, text); p != nil {
		p.gs.wordSpace = wordSpace
		p.gs.charSpace = charSpace
		e.moveText(p, 0, -p.gs.leading)
	}
}

func (e *Engine) PageTextOut(page engine.Handle, x, y float64, text string) {
	if p := e.page("PageTextOut", page, text); p != nil {
		p.textPos = engine.Point{X: x, Y: y}
	}
}

// PageTextRect reports all text as fitting into the rectangle.
func (e *Engine) PageTextRect(page engine.Handle, rect engine.Rect, text string, align int) uint32 {
	if e.page("PageTextRect", page, text) == nil {
		return 0
	}
	return uint32(len(text))
}
