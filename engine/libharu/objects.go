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

func (*Engine) FontGetFontName(h engine.Handle) string {
	return gostring(C.HPDF_Font_GetFontName(font(h)))
}

func (*Engine) FontGetEncodingName(h engine.Handle) string {
	return gostring(C.HPDF_Font_GetEncodingName(font(h)))
}

func (*Engine) FontGetUnicodeWidth(h engine.Handle, code uint16) int {
	return int(C.HPDF_Font_GetUnicodeWidth(font(h), C.HPDF_UNICODE(code)))
}

func (*Engine) FontGetBBox(h engine.Handle) engine.Rect {
	b := C.HPDF_Font_GetBBox(font(h))
	return engine.Rect{
		Left:   float64(b.left),
		Bottom: float64(b.bottom),
		Right:  float64(b.right),
		Top:    float64(b.top),
	}
}

func (*Engine) FontGetAscent(h engine.Handle) int {
	return int(C.HPDF_Font_GetAscent(font(h)))
}

func (*Engine) FontGetDescent(h engine.Handle) int {
	return int(C.HPDF_Font_GetDescent(font(h)))
}

func (*Engine) FontGetXHeight(h engine.Handle) uint32 {
	return uint32(C.HPDF_Font_GetXHeight(font(h)))
}

func (*Engine) FontGetCapHeight(h engine.Handle) uint32 {
	return uint32(C.HPDF_Font_GetCapHeight(font(h)))
}

func (*Engine) FontTextWidth(h engine.Handle, text string) engine.TextWidth {
	cs := C.CString(text)
	defer free(cs)
	tw := C.HPDF_Font_TextWidth(font(h), (*C.HPDF_BYTE)(unsafe.Pointer(cs)), C.HPDF_UINT(len(text)))
	return engine.TextWidth{
		NumChars: uint32(tw.numchars),
		NumWords: uint32(tw.numwords),
		Width:    uint32(tw.width),
		NumSpace: uint32(tw.numspace),
	}
}

func (*Engine) EncoderGetType(h engine.Handle) int {
	return int(C.HPDF_Encoder_GetType(encoder(h)))
}

func (*Engine) EncoderGetUnicode(h engine.Handle, code uint16) uint16 {
	return uint16(C.HPDF_Encoder_GetUnicode(encoder(h), C.HPDF_UINT16(code)))
}

func (*Engine) EncoderGetWritingMode(h engine.Handle) int {
	return int(C.HPDF_Encoder_GetWritingMode(encoder(h)))
}

func (*Engine) ImageGetSize(h engine.Handle) engine.Point {
	return point(C.HPDF_Image_GetSize(image(h)))
}

func (*Engine) ImageGetBitsPerComponent(h engine.Handle) uint32 {
	return uint32(C.HPDF_Image_GetBitsPerComponent(image(h)))
}

func (*Engine) ImageGetColorSpace(h engine.Handle) string {
	return gostring(C.HPDF_Image_GetColorSpace(image(h)))
}

func (*Engine) ImageSetColorMask(h engine.Handle, rmin, rmax, gmin, gmax, bmin, bmax uint32) {
	C.HPDF_Image_SetColorMask(image(h),
		C.HPDF_UINT(rmin), C.HPDF_UINT(rmax),
		C.HPDF_UINT(gmin), C.HPDF_UINT(gmax),
		C.HPDF_UINT(bmin), C.HPDF_UINT(bmax))
}

func (*Engine) ImageSetMaskImage(h engine.Handle, mask engine.Handle) {
	C.HPDF_Image_SetMaskImage(image(h), image(mask))
}

func (*Engine) OutlineSetOpened(h engine.Handle, opened bool) {
	C.HPDF_Outline_SetOpened(outline(h), cbool(opened))
}

func (*Engine) OutlineSetDestination(h engine.Handle, dst engine.Handle) {
	C.HPDF_Outline_SetDestination(outline(h), dest(dst))
}

func (*Engine) DestinationSetXYZ(h engine.Handle, left, top, zoom float64) {
	C.HPDF_Destination_SetXYZ(dest(h), creal(left), creal(top), creal(zoom))
}

func (*Engine) DestinationSetFit(h engine.Handle) { C.HPDF_Destination_SetFit(dest(h)) }

func (*Engine) DestinationSetFitH(h engine.Handle, top float64) {
	C.HPDF_Destination_SetFitH(dest(h), creal(top))
}

func (*Engine) DestinationSetFitV(h engine.Handle, left float64) {
	C.HPDF_Destination_SetFitV(dest(h), creal(left))
}

func (*Engine) DestinationSetFitR(h engine.Handle, r engine.Rect) {
	C.HPDF_Destination_SetFitR(dest(h), creal(r.Left), creal(r.Bottom), creal(r.Right), creal(r.Top))
}

func (*Engine) DestinationSetFitB(h engine.Handle) { C.HPDF_Destination_SetFitB(dest(h)) }

func (*Engine) DestinationSetFitBH(h engine.Handle, top float64) {
	C.HPDF_Destination_SetFitBH(dest(h), creal(top))
}

func (*Engine) DestinationSetFitBV(h engine.Handle, left float64) {
	C.HPDF_Destination_SetFitBV(dest(h), creal(left))
}

func (*Engine) LinkAnnotSetHighlightMode(h engine.Handle, mode int) {
	C.HPDF_LinkAnnot_SetHighlightMode(annot(h), C.HPDF_AnnotHighlightMode(mode))
}

func (*Engine) LinkAnnotSetBorderStyle(h engine.Handle, width float64, dashOn, dashOff uint16) {
	C.HPDF_LinkAnnot_SetBorderStyle(annot(h), creal(width), C.HPDF_UINT16(dashOn), C.HPDF_UINT16(dashOff))
}

func (*Engine) TextAnnotSetIcon(h engine.Handle, icon int) {
	C.HPDF_TextAnnot_SetIcon(annot(h), C.HPDF_AnnotIcon(icon))
}

func (*Engine) TextAnnotSetOpened(h engine.Handle, opened bool) {
	C.HPDF_TextAnnot_SetOpened(annot(h), cbool(opened))
}

func (*Engine) AnnotationSetBorderStyle(h engine.Handle, subtype int, width float64, dashOn, dashOff, dashPhase uint16) {
	C.HPDF_Annotation_SetBorderStyle(annot(h), C.HPDF_BSSubtype(subtype), creal(width),
		C.HPDF_UINT16(dashOn), C.HPDF_UINT16(dashOff), C.HPDF_UINT16(dashPhase))
}

func (*Engine) ExtGStateSetAlphaStroke(h engine.Handle, value float64) {
	C.HPDF_ExtGState_SetAlphaStroke(gstate(h), creal(value))
}

func (*Engine) ExtGStateSetAlphaFill(h engine.Handle, value float64) {
	C.HPDF_ExtGState_SetAlphaFill(gstate(h), creal(value))
}

func (*Engine) ExtGStateSetBlendMode(h engine.Handle, mode int) {
	C.HPDF_ExtGState_SetBlendMode(gstate(h), C.HPDF_BlendMode(mode))
}
