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

// Package libharu implements [engine.Engine] on top of the libharu C
// library, version 2.4 or newer.
//
// The C binding is only compiled with the build tag "libharu".  Without
// the tag, New returns the error ErrNotAvailable.
package libharu

/*
#cgo LDFLAGS: -lhpdf
#include <stdlib.h>
#include <hpdf.h>
*/
import "C"

import (
	"unsafe"

	"seehuhn.de/go/haru/engine"
)

// Engine calls into libharu.  The zero value is ready for use.
type Engine struct{}

var _ engine.Engine = (*Engine)(nil)

// New returns an engine backed by libharu.
func New() (engine.Engine, error) {
	return &Engine{}, nil
}

// Handles refer to memory allocated by libharu, which is never moved.
func ptr(h engine.Handle) unsafe.Pointer {
	return unsafe.Pointer(uintptr(h))
}

func handle(p unsafe.Pointer) engine.Handle {
	return engine.Handle(uintptr(p))
}

func doc(h engine.Handle) C.HPDF_Doc {
	return C.HPDF_Doc(ptr(h))
}

func page(h engine.Handle) C.HPDF_Page {
	return C.HPDF_Page(ptr(h))
}

func font(h engine.Handle) C.HPDF_Font {
	return C.HPDF_Font(ptr(h))
}

func encoder(h engine.Handle) C.HPDF_Encoder {
	return C.HPDF_Encoder(ptr(h))
}

func image(h engine.Handle) C.HPDF_Image {
	return C.HPDF_Image(ptr(h))
}

func outline(h engine.Handle) C.HPDF_Outline {
	return C.HPDF_Outline(ptr(h))
}

func dest(h engine.Handle) C.HPDF_Destination {
	return C.HPDF_Destination(ptr(h))
}

func annot(h engine.Handle) C.HPDF_Annotation {
	return C.HPDF_Annotation(ptr(h))
}

func gstate(h engine.Handle) C.HPDF_ExtGState {
	return C.HPDF_ExtGState(ptr(h))
}

func cbool(b bool) C.HPDF_BOOL {
	if b {
		return C.HPDF_TRUE
	}
	return C.HPDF_FALSE
}

func creal(x float64) C.HPDF_REAL {
	return C.HPDF_REAL(x)
}

// cstring returns a C copy of s, or NULL for the empty string if
// allowNull is set.  The caller must free the result.
func cstring(s string, allowNull bool) *C.char {
	if s == "" && allowNull {
		return nil
	}
	return C.CString(s)
}

func free(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

func gostring(p *C.char) string {
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

func crect(r engine.Rect) C.HPDF_Rect {
	return C.HPDF_Rect{
		left:   creal(r.Left),
		bottom: creal(r.Bottom),
		right:  creal(r.Right),
		top:    creal(r.Top),
	}
}

func (*Engine) New() engine.Handle {
	// With a NULL error handler, errors are only recorded in the document.
	return handle(unsafe.Pointer(C.HPDF_New(nil, nil)))
}

func (*Engine) Free(h engine.Handle) { C.HPDF_Free(doc(h)) }

func (*Engine) GetError(h engine.Handle) uint32 {
	return uint32(C.HPDF_GetError(doc(h)))
}

func (*Engine) GetErrorDetail(h engine.Handle) uint32 {
	return uint32(C.HPDF_GetErrorDetail(doc(h)))
}

func (*Engine) ResetError(h engine.Handle) { C.HPDF_ResetError(doc(h)) }

func (*Engine) NewDoc(h engine.Handle)     { C.HPDF_NewDoc(doc(h)) }
func (*Engine) FreeDoc(h engine.Handle)    { C.HPDF_FreeDoc(doc(h)) }
func (*Engine) FreeDocAll(h engine.Handle) { C.HPDF_FreeDocAll(doc(h)) }

func (*Engine) HasDoc(h engine.Handle) bool {
	return C.HPDF_HasDoc(doc(h)) != C.HPDF_FALSE
}

func (*Engine) SaveToFile(h engine.Handle, fileName string) {
	cs := C.CString(fileName)
	defer free(cs)
	C.HPDF_SaveToFile(doc(h), cs)
}

func (*Engine) SaveToStream(h engine.Handle) { C.HPDF_SaveToStream(doc(h)) }

func (*Engine) GetStreamSize(h engine.Handle) uint32 {
	return uint32(C.HPDF_GetStreamSize(doc(h)))
}

func (*Engine) ResetStream(h engine.Handle) { C.HPDF_ResetStream(doc(h)) }

func (*Engine) ReadFromStream(h engine.Handle, buf []byte, size *uint32) {
	if len(buf) == 0 {
		*size = 0
		return
	}
	n := C.HPDF_UINT32(*size)
	C.HPDF_ReadFromStream(doc(h), (*C.HPDF_BYTE)(unsafe.Pointer(&buf[0])), &n)
	*size = uint32(n)
}

func (*Engine) GetContents(h engine.Handle, buf []byte, size *uint32) {
	if len(buf) == 0 {
		*size = 0
		return
	}
	n := C.HPDF_UINT32(*size)
	C.HPDF_GetContents(doc(h), (*C.HPDF_BYTE)(unsafe.Pointer(&buf[0])), &n)
	*size = uint32(n)
}

func (*Engine) SetPagesConfiguration(h engine.Handle, pagePerPages uint32) {
	C.HPDF_SetPagesConfiguration(doc(h), C.HPDF_UINT(pagePerPages))
}

func (*Engine) GetPageByIndex(h engine.Handle, index uint32) engine.Handle {
	return handle(unsafe.Pointer(C.HPDF_GetPageByIndex(doc(h), C.HPDF_UINT(index))))
}

func (*Engine) SetPageLayout(h engine.Handle, layout int) {
	C.HPDF_SetPageLayout(doc(h), C.HPDF_PageLayout(layout))
}

func (*Engine) GetPageLayout(h engine.Handle) int {
	return int(C.HPDF_GetPageLayout(doc(h)))
}

func (*Engine) SetPageMode(h engine.Handle, mode int) {
	C.HPDF_SetPageMode(doc(h), C.HPDF_PageMode(mode))
}

func (*Engine) GetPageMode(h engine.Handle) int {
	return int(C.HPDF_GetPageMode(doc(h)))
}

func (*Engine) SetViewerPreference(h engine.Handle, value uint32) {
	C.HPDF_SetViewerPreference(doc(h), C.HPDF_UINT(value))
}

func (*Engine) GetViewerPreference(h engine.Handle) uint32 {
	return uint32(C.HPDF_GetViewerPreference(doc(h)))
}

func (*Engine) SetOpenAction(h engine.Handle, dst engine.Handle) {
	C.HPDF_SetOpenAction(doc(h), dest(dst))
}

func (*Engine) GetCurrentPage(h engine.Handle) engine.Handle {
	return handle(unsafe.Pointer(C.HPDF_GetCurrentPage(doc(h))))
}

func (*Engine) AddPage(h engine.Handle) engine.Handle {
	return handle(unsafe.Pointer(C.HPDF_AddPage(doc(h))))
}

func (*Engine) InsertPage(h engine.Handle, target engine.Handle) engine.Handle {
	return handle(unsafe.Pointer(C.HPDF_InsertPage(doc(h), page(target))))
}

func (*Engine) AddPageLabel(h engine.Handle, pageNum uint32, style int, firstPage uint32, prefix string) {
	cs := cstring(prefix, true)
	defer free(cs)
	C.HPDF_AddPageLabel(doc(h), C.HPDF_UINT(pageNum), C.HPDF_PageNumStyle(style), C.HPDF_UINT(firstPage), cs)
}

func (*Engine) GetFont(h engine.Handle, fontName, encodingName string) engine.Handle {
	cf := C.CString(fontName)
	defer free(cf)
	ce := cstring(encodingName, true)
	defer free(ce)
	return handle(unsafe.Pointer(C.HPDF_GetFont(doc(h), cf, ce)))
}

func (*Engine) LoadType1FontFromFile(h engine.Handle, afmFile, dataFile string) string {
	ca := C.CString(afmFile)
	defer free(ca)
	cd := cstring(dataFile, true)
	defer free(cd)
	return gostring(C.HPDF_LoadType1FontFromFile(doc(h), ca, cd))
}

func (*Engine) LoadTTFontFromFile(h engine.Handle, fileName string, embedding bool) string {
	cs := C.CString(fileName)
	defer free(cs)
	return gostring(C.HPDF_LoadTTFontFromFile(doc(h), cs, cbool(embedding)))
}

func (*Engine) LoadTTFontFromFile2(h engine.Handle, fileName string, index uint32, embedding bool) string {
	cs := C.CString(fileName)
	defer free(cs)
	return gostring(C.HPDF_LoadTTFontFromFile2(doc(h), cs, C.HPDF_UINT(index), cbool(embedding)))
}

func (*Engine) UseJPFonts(h engine.Handle)  { C.HPDF_UseJPFonts(doc(h)) }
func (*Engine) UseKRFonts(h engine.Handle)  { C.HPDF_UseKRFonts(doc(h)) }
func (*Engine) UseCNSFonts(h engine.Handle) { C.HPDF_UseCNSFonts(doc(h)) }
func (*Engine) UseCNTFonts(h engine.Handle) { C.HPDF_UseCNTFonts(doc(h)) }

func (*Engine) GetEncoder(h engine.Handle, encodingName string) engine.Handle {
	cs := C.CString(encodingName)
	defer free(cs)
	return handle(unsafe.Pointer(C.HPDF_GetEncoder(doc(h), cs)))
}

func (*Engine) GetCurrentEncoder(h engine.Handle) engine.Handle {
	return handle(unsafe.Pointer(C.HPDF_GetCurrentEncoder(doc(h))))
}

func (*Engine) SetCurrentEncoder(h engine.Handle, encodingName string) {
	cs := C.CString(encodingName)
	defer free(cs)
	C.HPDF_SetCurrentEncoder(doc(h), cs)
}

func (*Engine) UseJPEncodings(h engine.Handle)  { C.HPDF_UseJPEncodings(doc(h)) }
func (*Engine) UseKREncodings(h engine.Handle)  { C.HPDF_UseKREncodings(doc(h)) }
func (*Engine) UseCNSEncodings(h engine.Handle) { C.HPDF_UseCNSEncodings(doc(h)) }
func (*Engine) UseCNTEncodings(h engine.Handle) { C.HPDF_UseCNTEncodings(doc(h)) }
func (*Engine) UseUTFEncodings(h engine.Handle) { C.HPDF_UseUTFEncodings(doc(h)) }

func (*Engine) CreateOutline(h engine.Handle, parent engine.Handle, title string, enc engine.Handle) engine.Handle {
	cs := C.CString(title)
	defer free(cs)
	return handle(unsafe.Pointer(C.HPDF_CreateOutline(doc(h), outline(parent), cs, encoder(enc))))
}

func (*Engine) CreateExtGState(h engine.Handle) engine.Handle {
	return handle(unsafe.Pointer(C.HPDF_CreateExtGState(doc(h))))
}

func (*Engine) LoadPngImageFromFile(h engine.Handle, fileName string) engine.Handle {
	cs := C.CString(fileName)
	defer free(cs)
	return handle(unsafe.Pointer(C.HPDF_LoadPngImageFromFile(doc(h), cs)))
}

func (*Engine) LoadPngImageFromFile2(h engine.Handle, fileName string) engine.Handle {
	cs := C.CString(fileName)
	defer free(cs)
	return handle(unsafe.Pointer(C.HPDF_LoadPngImageFromFile2(doc(h), cs)))
}

func (*Engine) LoadJpegImageFromFile(h engine.Handle, fileName string) engine.Handle {
	cs := C.CString(fileName)
	defer free(cs)
	return handle(unsafe.Pointer(C.HPDF_LoadJpegImageFromFile(doc(h), cs)))
}

func (*Engine) LoadRawImageFromFile(h engine.Handle, fileName string, width, height uint32, colorSpace int) engine.Handle {
	cs := C.CString(fileName)
	defer free(cs)
	return handle(unsafe.Pointer(C.HPDF_LoadRawImageFromFile(doc(h), cs,
		C.HPDF_UINT(width), C.HPDF_UINT(height), C.HPDF_ColorSpace(colorSpace))))
}

// cbytes returns a pointer to the first element of data.  libharu copies
// image data into its own memory streams before returning.
func cbytes(data []byte) *C.HPDF_BYTE {
	return (*C.HPDF_BYTE)(unsafe.Pointer(&data[0]))
}

func (*Engine) LoadRawImageFromMem(h engine.Handle, data []byte, width, height uint32, colorSpace int, bitsPerComponent uint32) engine.Handle {
	if len(data) == 0 {
		return 0
	}
	return handle(unsafe.Pointer(C.HPDF_LoadRawImageFromMem(doc(h), cbytes(data),
		C.HPDF_UINT(width), C.HPDF_UINT(height), C.HPDF_ColorSpace(colorSpace),
		C.HPDF_UINT(bitsPerComponent))))
}

func (*Engine) LoadPngImageFromMem(h engine.Handle, data []byte) engine.Handle {
	if len(data) == 0 {
		return 0
	}
	return handle(unsafe.Pointer(C.HPDF_LoadPngImageFromMem(doc(h), cbytes(data), C.HPDF_UINT(len(data)))))
}

func (*Engine) LoadJpegImageFromMem(h engine.Handle, data []byte) engine.Handle {
	if len(data) == 0 {
		return 0
	}
	return handle(unsafe.Pointer(C.HPDF_LoadJpegImageFromMem(doc(h), cbytes(data), C.HPDF_UINT(len(data)))))
}

func (*Engine) LoadIccProfileFromFile(h engine.Handle, fileName string, numComponent int) engine.Handle {
	cs := C.CString(fileName)
	defer free(cs)
	return handle(unsafe.Pointer(C.HPDF_LoadIccProfileFromFile(doc(h), cs, C.int(numComponent))))
}

func (*Engine) AddIntent(h engine.Handle, intent engine.Handle) {
	C.HPDF_AddIntent(doc(h), C.HPDF_OutputIntent(ptr(intent)))
}

func (*Engine) SetInfoAttr(h engine.Handle, infoType int, value string) {
	cs := C.CString(value)
	defer free(cs)
	C.HPDF_SetInfoAttr(doc(h), C.HPDF_InfoType(infoType), cs)
}

func (*Engine) GetInfoAttr(h engine.Handle, infoType int) (string, bool) {
	cs := C.HPDF_GetInfoAttr(doc(h), C.HPDF_InfoType(infoType))
	if cs == nil {
		return "", false
	}
	return C.GoString(cs), true
}

func (*Engine) SetInfoDateAttr(h engine.Handle, infoType int, value engine.Date) {
	d := C.HPDF_Date{
		year:        C.HPDF_INT(value.Year),
		month:       C.HPDF_INT(value.Month),
		day:         C.HPDF_INT(value.Day),
		hour:        C.HPDF_INT(value.Hour),
		minutes:     C.HPDF_INT(value.Minutes),
		seconds:     C.HPDF_INT(value.Seconds),
		ind:         C.char(value.Ind),
		off_hour:    C.HPDF_INT(value.OffHour),
		off_minutes: C.HPDF_INT(value.OffMinutes),
	}
	C.HPDF_SetInfoDateAttr(doc(h), C.HPDF_InfoType(infoType), d)
}

func (*Engine) SetPassword(h engine.Handle, owner, user []byte) {
	co := C.CString(string(owner))
	defer free(co)
	cu := C.CString(string(user))
	defer free(cu)
	C.HPDF_SetPassword(doc(h), co, cu)
}

func (*Engine) SetPermission(h engine.Handle, permission uint32) {
	C.HPDF_SetPermission(doc(h), C.HPDF_UINT(permission))
}

func (*Engine) SetEncryptionMode(h engine.Handle, mode int, keyLen uint32) {
	C.HPDF_SetEncryptionMode(doc(h), C.HPDF_EncryptMode(mode), C.HPDF_UINT(keyLen))
}

func (*Engine) SetCompressionMode(h engine.Handle, mode uint32) {
	C.HPDF_SetCompressionMode(doc(h), C.HPDF_UINT(mode))
}
