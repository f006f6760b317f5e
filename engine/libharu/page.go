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

//go:build libharu

package libharu

/*
#include <hpdf.h>
*/
import "C"

import (
	"unsafe"

	"seehuhn.de/go/haru/engine"
)

func (*Engine) PageSetWidth(h engine.Handle, value float64) {
	C.HPDF_Page_SetWidth(page(h), creal(value))
}

func (*Engine) PageSetHeight(h engine.Handle, value float64) {
	C.HPDF_Page_SetHeight(page(h), creal(value))
}

func (*Engine) PageSetSize(h engine.Handle, size, direction int) {
	C.HPDF_Page_SetSize(page(h), C.HPDF_PageSizes(size), C.HPDF_PageDirection(direction))
}

func (*Engine) PageSetRotate(h engine.Handle, angle uint16) {
	C.HPDF_Page_SetRotate(page(h), C.HPDF_UINT16(angle))
}

func (*Engine) PageGetWidth(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetWidth(page(h)))
}

func (*Engine) PageGetHeight(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetHeight(page(h)))
}

func (*Engine) PageCreateDestination(h engine.Handle) engine.Handle {
	return handle(unsafe.Pointer(C.HPDF_Page_CreateDestination(page(h))))
}

func (*Engine) PageCreateTextAnnot(h engine.Handle, rect engine.Rect, text string, enc engine.Handle) engine.Handle {
	cs := C.CString(text)
	defer free(cs)
	return handle(unsafe.Pointer(C.HPDF_Page_CreateTextAnnot(page(h), crect(rect), cs, encoder(enc))))
}

func (*Engine) PageCreateLinkAnnot(h engine.Handle, rect engine.Rect, dst engine.Handle) engine.Handle {
	return handle(unsafe.Pointer(C.HPDF_Page_CreateLinkAnnot(page(h), crect(rect), dest(dst))))
}

func (*Engine) PageCreateURILinkAnnot(h engine.Handle, rect engine.Rect, uri string) engine.Handle {
	cs := C.CString(uri)
	defer free(cs)
	return handle(unsafe.Pointer(C.HPDF_Page_CreateURILinkAnnot(page(h), crect(rect), cs)))
}

func (*Engine) PageTextWidth(h engine.Handle, text string) float64 {
	cs := C.CString(text)
	defer free(cs)
	return float64(C.HPDF_Page_TextWidth(page(h), cs))
}

func (*Engine) PageMeasureText(h engine.Handle, text string, width float64, wordWrap bool) (uint32, float64) {
	cs := C.CString(text)
	defer free(cs)
	var realWidth C.HPDF_REAL
	n := C.HPDF_Page_MeasureText(page(h), cs, creal(width), cbool(wordWrap), &realWidth)
	return uint32(n), float64(realWidth)
}

func (*Engine) PageGetGMode(h engine.Handle) uint16 {
	return uint16(C.HPDF_Page_GetGMode(page(h)))
}

func point(p C.HPDF_Point) engine.Point {
	return engine.Point{X: float64(p.x), Y: float64(p.y)}
}

func (*Engine) PageGetCurrentPos(h engine.Handle) engine.Point {
	return point(C.HPDF_Page_GetCurrentPos(page(h)))
}

func (*Engine) PageGetCurrentTextPos(h engine.Handle) engine.Point {
	return point(C.HPDF_Page_GetCurrentTextPos(page(h)))
}

func (*Engine) PageGetCurrentFont(h engine.Handle) engine.Handle {
	return handle(unsafe.Pointer(C.HPDF_Page_GetCurrentFont(page(h))))
}

func (*Engine) PageGetCurrentFontSize(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetCurrentFontSize(page(h)))
}

func matrix(m C.HPDF_TransMatrix) engine.TransMatrix {
	return engine.TransMatrix{
		A: float64(m.a), B: float64(m.b),
		C: float64(m.c), D: float64(m.d),
		X: float64(m.x), Y: float64(m.y),
	}
}

func (*Engine) PageGetTransMatrix(h engine.Handle) engine.TransMatrix {
	return matrix(C.HPDF_Page_GetTransMatrix(page(h)))
}

func (*Engine) PageGetTextMatrix(h engine.Handle) engine.TransMatrix {
	return matrix(C.HPDF_Page_GetTextMatrix(page(h)))
}

func (*Engine) PageGetLineWidth(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetLineWidth(page(h)))
}

func (*Engine) PageGetLineCap(h engine.Handle) int {
	return int(C.HPDF_Page_GetLineCap(page(h)))
}

func (*Engine) PageGetLineJoin(h engine.Handle) int {
	return int(C.HPDF_Page_GetLineJoin(page(h)))
}

func (*Engine) PageGetMiterLimit(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetMiterLimit(page(h)))
}

func (*Engine) PageGetDash(h engine.Handle) engine.DashMode {
	d := C.HPDF_Page_GetDash(page(h))
	n := int(d.num_ptn)
	if n > len(d.ptn) {
		n = len(d.ptn)
	}
	res := engine.DashMode{
		Pattern: make([]float64, n),
		Phase:   float64(d.phase),
	}
	for i := range res.Pattern {
		res.Pattern[i] = float64(d.ptn[i])
	}
	return res
}

func (*Engine) PageGetFlat(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetFlat(page(h)))
}

func (*Engine) PageGetCharSpace(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetCharSpace(page(h)))
}

func (*Engine) PageGetWordSpace(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetWordSpace(page(h)))
}

func (*Engine) PageGetHorizontalScalling(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetHorizontalScalling(page(h)))
}

func (*Engine) PageGetTextLeading(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetTextLeading(page(h)))
}

func (*Engine) PageGetTextRenderingMode(h engine.Handle) int {
	return int(C.HPDF_Page_GetTextRenderingMode(page(h)))
}

func (*Engine) PageGetTextRise(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetTextRise(page(h)))
}

func rgb(c C.HPDF_RGBColor) engine.RGBColor {
	return engine.RGBColor{R: float64(c.r), G: float64(c.g), B: float64(c.b)}
}

func cmyk(c C.HPDF_CMYKColor) engine.CMYKColor {
	return engine.CMYKColor{C: float64(c.c), M: float64(c.m), Y: float64(c.y), K: float64(c.k)}
}

func (*Engine) PageGetRGBFill(h engine.Handle) engine.RGBColor {
	return rgb(C.HPDF_Page_GetRGBFill(page(h)))
}

func (*Engine) PageGetRGBStroke(h engine.Handle) engine.RGBColor {
	return rgb(C.HPDF_Page_GetRGBStroke(page(h)))
}

func (*Engine) PageGetCMYKFill(h engine.Handle) engine.CMYKColor {
	return cmyk(C.HPDF_Page_GetCMYKFill(page(h)))
}

func (*Engine) PageGetCMYKStroke(h engine.Handle) engine.CMYKColor {
	return cmyk(C.HPDF_Page_GetCMYKStroke(page(h)))
}

func (*Engine) PageGetGrayFill(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetGrayFill(page(h)))
}

func (*Engine) PageGetGrayStroke(h engine.Handle) float64 {
	return float64(C.HPDF_Page_GetGrayStroke(page(h)))
}

func (*Engine) PageGetStrokingColorSpace(h engine.Handle) int {
	return int(C.HPDF_Page_GetStrokingColorSpace(page(h)))
}

func (*Engine) PageGetFillingColorSpace(h engine.Handle) int {
	return int(C.HPDF_Page_GetFillingColorSpace(page(h)))
}

func (*Engine) PageGetGStateDepth(h engine.Handle) uint32 {
	return uint32(C.HPDF_Page_GetGStateDepth(page(h)))
}

func (*Engine) PageSetSlideShow(h engine.Handle, style int, dispTime, transTime float64) {
	C.HPDF_Page_SetSlideShow(page(h), C.HPDF_TransitionStyle(style), creal(dispTime), creal(transTime))
}

func (*Engine) PageNewContentStream(h engine.Handle) engine.Handle {
	var stream C.HPDF_Dict
	C.HPDF_Page_New_Content_Stream(page(h), &stream)
	return handle(unsafe.Pointer(stream))
}

func (*Engine) PageInsertSharedContentStream(h engine.Handle, stream engine.Handle) {
	C.HPDF_Page_Insert_Shared_Content_Stream(page(h), C.HPDF_Dict(ptr(stream)))
}

func (*Engine) PageArc(h engine.Handle, x, y, radius, ang1, ang2 float64) {
	C.HPDF_Page_Arc(page(h), creal(x), creal(y), creal(radius), creal(ang1), creal(ang2))
}

func (*Engine) PageBeginText(h engine.Handle) { C.HPDF_Page_BeginText(page(h)) }

func (*Engine) PageCircle(h engine.Handle, x, y, radius float64) {
	C.HPDF_Page_Circle(page(h), creal(x), creal(y), creal(radius))
}

func (*Engine) PageClip(h engine.Handle)                  { C.HPDF_Page_Clip(page(h)) }
func (*Engine) PageClosePath(h engine.Handle)             { C.HPDF_Page_ClosePath(page(h)) }
func (*Engine) PageClosePathStroke(h engine.Handle)       { C.HPDF_Page_ClosePathStroke(page(h)) }
func (*Engine) PageClosePathEofillStroke(h engine.Handle) { C.HPDF_Page_ClosePathEofillStroke(page(h)) }
func (*Engine) PageClosePathFillStroke(h engine.Handle)   { C.HPDF_Page_ClosePathFillStroke(page(h)) }

func (*Engine) PageConcat(h engine.Handle, m engine.TransMatrix) {
	C.HPDF_Page_Concat(page(h), creal(m.A), creal(m.B), creal(m.C), creal(m.D), creal(m.X), creal(m.Y))
}

func (*Engine) PageCurveTo(h engine.Handle, x1, y1, x2, y2, x3, y3 float64) {
	C.HPDF_Page_CurveTo(page(h), creal(x1), creal(y1), creal(x2), creal(y2), creal(x3), creal(y3))
}

func (*Engine) PageCurveTo2(h engine.Handle, x2, y2, x3, y3 float64) {
	C.HPDF_Page_CurveTo2(page(h), creal(x2), creal(y2), creal(x3), creal(y3))
}

func (*Engine) PageCurveTo3(h engine.Handle, x1, y1, x3, y3 float64) {
	C.HPDF_Page_CurveTo3(page(h), creal(x1), creal(y1), creal(x3), creal(y3))
}

func (*Engine) PageDrawImage(h engine.Handle, img engine.Handle, x, y, width, height float64) {
	C.HPDF_Page_DrawImage(page(h), image(img), creal(x), creal(y), creal(width), creal(height))
}

func (*Engine) PageEllipse(h engine.Handle, x, y, xRadius, yRadius float64) {
	C.HPDF_Page_Ellipse(page(h), creal(x), creal(y), creal(xRadius), creal(yRadius))
}

func (*Engine) PageEndPath(h engine.Handle)      { C.HPDF_Page_EndPath(page(h)) }
func (*Engine) PageEndText(h engine.Handle)      { C.HPDF_Page_EndText(page(h)) }
func (*Engine) PageEoclip(h engine.Handle)       { C.HPDF_Page_Eoclip(page(h)) }
func (*Engine) PageEofill(h engine.Handle)       { C.HPDF_Page_Eofill(page(h)) }
func (*Engine) PageEofillStroke(h engine.Handle) { C.HPDF_Page_EofillStroke(page(h)) }

func (*Engine) PageExecuteXObject(h engine.Handle, obj engine.Handle) {
	C.HPDF_Page_ExecuteXObject(page(h), C.HPDF_XObject(ptr(obj)))
}

func (*Engine) PageFill(h engine.Handle)       { C.HPDF_Page_Fill(page(h)) }
func (*Engine) PageFillStroke(h engine.Handle) { C.HPDF_Page_FillStroke(page(h)) }
func (*Engine) PageGRestore(h engine.Handle)   { C.HPDF_Page_GRestore(page(h)) }
func (*Engine) PageGSave(h engine.Handle)      { C.HPDF_Page_GSave(page(h)) }

func (*Engine) PageLineTo(h engine.Handle, x, y float64) {
	C.HPDF_Page_LineTo(page(h), creal(x), creal(y))
}

func (*Engine) PageMoveTextPos(h engine.Handle, x, y float64) {
	C.HPDF_Page_MoveTextPos(page(h), creal(x), creal(y))
}

func (*Engine) PageMoveTextPos2(h engine.Handle, x, y float64) {
	C.HPDF_Page_MoveTextPos2(page(h), creal(x), creal(y))
}

func (*Engine) PageMoveTo(h engine.Handle, x, y float64) {
	C.HPDF_Page_MoveTo(page(h), creal(x), creal(y))
}

func (*Engine) PageMoveToNextLine(h engine.Handle) { C.HPDF_Page_MoveToNextLine(page(h)) }

func (*Engine) PageRectangle(h engine.Handle, x, y, width, height float64) {
	C.HPDF_Page_Rectangle(page(h), creal(x), creal(y), creal(width), creal(height))
}

func (*Engine) PageSetCharSpace(h engine.Handle, value float64) {
	C.HPDF_Page_SetCharSpace(page(h), creal(value))
}

func (*Engine) PageSetCMYKFill(h engine.Handle, c engine.CMYKColor) {
	C.HPDF_Page_SetCMYKFill(page(h), creal(c.C), creal(c.M), creal(c.Y), creal(c.K))
}

func (*Engine) PageSetCMYKStroke(h engine.Handle, c engine.CMYKColor) {
	C.HPDF_Page_SetCMYKStroke(page(h), creal(c.C), creal(c.M), creal(c.Y), creal(c.K))
}

func (*Engine) PageSetDash(h engine.Handle, mode engine.DashMode) {
	var ptn [8]C.HPDF_REAL
	n := 0
	for i, x := range mode.Pattern {
		if i >= len(ptn) {
			break
		}
		ptn[i] = creal(x)
		n = i + 1
	}
	var p *C.HPDF_REAL
	if n > 0 {
		p = &ptn[0]
	}
	C.HPDF_Page_SetDash(page(h), p, C.HPDF_UINT(n), creal(mode.Phase))
}

func (*Engine) PageSetExtGState(h engine.Handle, gs engine.Handle) {
	C.HPDF_Page_SetExtGState(page(h), gstate(gs))
}

func (*Engine) PageSetFontAndSize(h engine.Handle, f engine.Handle, size float64) {
	C.HPDF_Page_SetFontAndSize(page(h), font(f), creal(size))
}

func (*Engine) PageSetGrayFill(h engine.Handle, gray float64) {
	C.HPDF_Page_SetGrayFill(page(h), creal(gray))
}

func (*Engine) PageSetGrayStroke(h engine.Handle, gray float64) {
	C.HPDF_Page_SetGrayStroke(page(h), creal(gray))
}

func (*Engine) PageSetHorizontalScalling(h engine.Handle, value float64) {
	C.HPDF_Page_SetHorizontalScalling(page(h), creal(value))
}

func (*Engine) PageSetLineCap(h engine.Handle, lineCap int) {
	C.HPDF_Page_SetLineCap(page(h), C.HPDF_LineCap(lineCap))
}

func (*Engine) PageSetLineJoin(h engine.Handle, lineJoin int) {
	C.HPDF_Page_SetLineJoin(page(h), C.HPDF_LineJoin(lineJoin))
}

func (*Engine) PageSetLineWidth(h engine.Handle, width float64) {
	C.HPDF_Page_SetLineWidth(page(h), creal(width))
}

func (*Engine) PageSetMiterLimit(h engine.Handle, limit float64) {
	C.HPDF_Page_SetMiterLimit(page(h), creal(limit))
}

func (*Engine) PageSetRGBFill(h engine.Handle, c engine.RGBColor) {
	C.HPDF_Page_SetRGBFill(page(h), creal(c.R), creal(c.G), creal(c.B))
}

func (*Engine) PageSetRGBStroke(h engine.Handle, c engine.RGBColor) {
	C.HPDF_Page_SetRGBStroke(page(h), creal(c.R), creal(c.G), creal(c.B))
}

func (*Engine) PageSetTextLeading(h engine.Handle, value float64) {
	C.HPDF_Page_SetTextLeading(page(h), creal(value))
}

func (*Engine) PageSetTextMatrix(h engine.Handle, m engine.TransMatrix) {
	C.HPDF_Page_SetTextMatrix(page(h), creal(m.A), creal(m.B), creal(m.C), creal(m.D), creal(m.X), creal(m.Y))
}

func (*Engine) PageSetTextRenderingMode(h engine.Handle, mode int) {
	C.HPDF_Page_SetTextRenderingMode(page(h), C.HPDF_TextRenderingMode(mode))
}

func (*Engine) PageSetTextRise(h engine.Handle, value float64) {
	C.HPDF_Page_SetTextRise(page(h), creal(value))
}

func (*Engine) PageSetWordSpace(h engine.Handle, value float64) {
	C.HPDF_Page_SetWordSpace(page(h), creal(value))
}

func (*Engine) PageShowText(h engine.Handle, text string) {
	cs := C.CString(text)
	defer free(cs)
	C.HPDF_Page_ShowText(page(h), cs)
}

func (*Engine) PageShowTextNextLine(h engine.Handle, text string) {
	cs := C.CString(text)
	defer free(cs)
	C.HPDF_Page_ShowTextNextLine(page(h), cs)
}

func (*Engine) PageShowTextNextLineEx(h engine.Handle, wordSpace, charSpace float64, text string) {
	cs := C.CString(text)
	defer free(cs)
	C.HPDF_Page_ShowTextNextLineEx(page(h), creal(wordSpace), creal(charSpace), cs)
}

func (*Engine) PageStroke(h engine.Handle) { C.HPDF_Page_Stroke(page(h)) }

func (*Engine) PageTextOut(h engine.Handle, x, y float64, text string) {
	cs := C.CString(text)
	defer free(cs)
	C.HPDF_Page_TextOut(page(h), creal(x), creal(y), cs)
}

func (*Engine) PageTextRect(h engine.Handle, rect engine.Rect, text string, align int) uint32 {
	cs := C.CString(text)
	defer free(cs)
	var n C.HPDF_UINT
	C.HPDF_Page_TextRect(page(h), creal(rect.Left), creal(rect.Top), creal(rect.Right), creal(rect.Bottom),
		cs, C.HPDF_TextAlignment(align), &n)
	return uint32(n)
}
