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

// Package engine describes the entry points of the native PDF engine.
//
// The [Engine] interface mirrors the flat C API of libharu (hpdf.h).  All
// objects are referred to by opaque [Handle] values; the zero handle plays
// the role of the C null pointer.  Integer enumerations are passed as the
// engine's own numeric constants, which are listed in this package.
//
// Engine methods do not return errors.  Failures are recorded in the error
// state of the document handle and can be queried with [Engine.GetError] and
// [Engine.GetErrorDetail] after every call.
package engine

// Handle is an opaque reference to an engine object.
// The zero value denotes "no object".
type Handle uintptr

// Date is the engine representation of a date.
// Ind is one of '+', '-', 'Z' or ' '.
type Date struct {
	Year, Month, Day       int
	Hour, Minutes, Seconds int
	Ind                    byte
	OffHour, OffMinutes    int
}

// Point is a position in PDF user space.
type Point struct {
	X, Y float64
}

// Rect is a rectangle in PDF user space.
type Rect struct {
	Left, Bottom, Right, Top float64
}

// TransMatrix is an affine transformation [A B C D X Y].
type TransMatrix struct {
	A, B, C, D, X, Y float64
}

// RGBColor has components in the range [0, 1].
type RGBColor struct {
	R, G, B float64
}

// CMYKColor has components in the range [0, 1].
type CMYKColor struct {
	C, M, Y, K float64
}

// DashMode describes a line dash pattern.
// The engine supports at most 8 pattern elements.
type DashMode struct {
	Pattern []float64
	Phase   float64
}

// TextWidth is the result of measuring a string with a font.
type TextWidth struct {
	NumChars uint32
	NumWords uint32
	Width    uint32
	NumSpace uint32
}

// Engine is the set of entry points of the PDF engine.
//
// Implementations are not safe for concurrent use on the same document
// handle.
type Engine interface {
	// New allocates a document handle.  It returns 0 if memory allocation
	// failed.
	New() Handle
	Free(doc Handle)

	GetError(doc Handle) uint32
	GetErrorDetail(doc Handle) uint32
	ResetError(doc Handle)

	NewDoc(doc Handle)
	FreeDoc(doc Handle)
	FreeDocAll(doc Handle)
	HasDoc(doc Handle) bool

	SaveToFile(doc Handle, fileName string)
	SaveToStream(doc Handle)
	GetStreamSize(doc Handle) uint32
	ResetStream(doc Handle)

	// ReadFromStream and GetContents read at most *size bytes into buf.
	// On return, *size holds the number of bytes produced.
	ReadFromStream(doc Handle, buf []byte, size *uint32)
	GetContents(doc Handle, buf []byte, size *uint32)

	SetPagesConfiguration(doc Handle, pagePerPages uint32)
	GetPageByIndex(doc Handle, index uint32) Handle
	SetPageLayout(doc Handle, layout int)
	GetPageLayout(doc Handle) int
	SetPageMode(doc Handle, mode int)
	GetPageMode(doc Handle) int
	SetViewerPreference(doc Handle, value uint32)
	GetViewerPreference(doc Handle) uint32
	SetOpenAction(doc Handle, dst Handle)
	GetCurrentPage(doc Handle) Handle
	AddPage(doc Handle) Handle
	InsertPage(doc Handle, page Handle) Handle
	// AddPageLabel omits the prefix if it is empty.
	AddPageLabel(doc Handle, pageNum uint32, style int, firstPage uint32, prefix string)

	// GetFont uses the font's default encoding if encodingName is empty.
	GetFont(doc Handle, fontName, encodingName string) Handle
	// LoadType1FontFromFile omits the font program if dataFile is empty.
	LoadType1FontFromFile(doc Handle, afmFile, dataFile string) string
	LoadTTFontFromFile(doc Handle, fileName string, embedding bool) string
	LoadTTFontFromFile2(doc Handle, fileName string, index uint32, embedding bool) string
	UseJPFonts(doc Handle)
	UseKRFonts(doc Handle)
	UseCNSFonts(doc Handle)
	UseCNTFonts(doc Handle)

	GetEncoder(doc Handle, encodingName string) Handle
	GetCurrentEncoder(doc Handle) Handle
	SetCurrentEncoder(doc Handle, encodingName string)
	UseJPEncodings(doc Handle)
	UseKREncodings(doc Handle)
	UseCNSEncodings(doc Handle)
	UseCNTEncodings(doc Handle)
	UseUTFEncodings(doc Handle)

	CreateOutline(doc Handle, parent Handle, title string, encoder Handle) Handle
	CreateExtGState(doc Handle) Handle

	LoadPngImageFromFile(doc Handle, fileName string) Handle
	LoadPngImageFromFile2(doc Handle, fileName string) Handle
	LoadJpegImageFromFile(doc Handle, fileName string) Handle
	LoadRawImageFromFile(doc Handle, fileName string, width, height uint32, colorSpace int) Handle
	LoadRawImageFromMem(doc Handle, data []byte, width, height uint32, colorSpace int, bitsPerComponent uint32) Handle
	LoadPngImageFromMem(doc Handle, data []byte) Handle
	LoadJpegImageFromMem(doc Handle, data []byte) Handle
	LoadIccProfileFromFile(doc Handle, fileName string, numComponent int) Handle
	AddIntent(doc Handle, intent Handle)

	SetInfoAttr(doc Handle, infoType int, value string)
	// GetInfoAttr reports false if the attribute is not set.
	GetInfoAttr(doc Handle, infoType int) (string, bool)
	SetInfoDateAttr(doc Handle, infoType int, value Date)

	// SetPassword omits the user password if it is nil.
	SetPassword(doc Handle, owner, user []byte)
	SetPermission(doc Handle, permission uint32)
	SetEncryptionMode(doc Handle, mode int, keyLen uint32)
	SetCompressionMode(doc Handle, mode uint32)

	PageSetWidth(page Handle, value float64)
	PageSetHeight(page Handle, value float64)
	PageSetSize(page Handle, size, direction int)
	PageSetRotate(page Handle, angle uint16)
	PageGetWidth(page Handle) float64
	PageGetHeight(page Handle) float64
	PageCreateDestination(page Handle) Handle
	PageCreateTextAnnot(page Handle, rect Rect, text string, encoder Handle) Handle
	PageCreateLinkAnnot(page Handle, rect Rect, dst Handle) Handle
	PageCreateURILinkAnnot(page Handle, rect Rect, uri string) Handle
	PageTextWidth(page Handle, text string) float64
	PageMeasureText(page Handle, text string, width float64, wordWrap bool) (uint32, float64)
	PageGetGMode(page Handle) uint16
	PageGetCurrentPos(page Handle) Point
	PageGetCurrentTextPos(page Handle) Point
	PageGetCurrentFont(page Handle) Handle
	PageGetCurrentFontSize(page Handle) float64
	PageGetTransMatrix(page Handle) TransMatrix
	PageGetLineWidth(page Handle) float64
	PageGetLineCap(page Handle) int
	PageGetLineJoin(page Handle) int
	PageGetMiterLimit(page Handle) float64
	PageGetDash(page Handle) DashMode
	PageGetFlat(page Handle) float64
	PageGetCharSpace(page Handle) float64
	PageGetWordSpace(page Handle) float64
	PageGetHorizontalScalling(page Handle) float64
	PageGetTextLeading(page Handle) float64
	PageGetTextRenderingMode(page Handle) int
	PageGetTextRise(page Handle) float64
	PageGetRGBFill(page Handle) RGBColor
	PageGetRGBStroke(page Handle) RGBColor
	PageGetCMYKFill(page Handle) CMYKColor
	PageGetCMYKStroke(page Handle) CMYKColor
	PageGetGrayFill(page Handle) float64
	PageGetGrayStroke(page Handle) float64
	PageGetStrokingColorSpace(page Handle) int
	PageGetFillingColorSpace(page Handle) int
	PageGetTextMatrix(page Handle) TransMatrix
	PageGetGStateDepth(page Handle) uint32
	PageSetSlideShow(page Handle, style int, dispTime, transTime float64)
	PageNewContentStream(page Handle) Handle
	PageInsertSharedContentStream(page Handle, stream Handle)

	PageArc(page Handle, x, y, radius, ang1, ang2 float64)
	PageBeginText(page Handle)
	PageCircle(page Handle, x, y, radius float64)
	PageClip(page Handle)
	PageClosePath(page Handle)
	PageClosePathStroke(page Handle)
	PageClosePathEofillStroke(page Handle)
	PageClosePathFillStroke(page Handle)
	PageConcat(page Handle, m TransMatrix)
	PageCurveTo(page Handle, x1, y1, x2, y2, x3, y3 float64)
	PageCurveTo2(page Handle, x2, y2, x3, y3 float64)
	PageCurveTo3(page Handle, x1, y1, x3, y3 float64)
	PageDrawImage(page Handle, image Handle, x, y, width, height float64)
	PageEllipse(page Handle, x, y, xRadius, yRadius float64)
	PageEndPath(page Handle)
	PageEndText(page Handle)
	PageEoclip(page Handle)
	PageEofill(page Handle)
	PageEofillStroke(page Handle)
	PageExecuteXObject(page Handle, obj Handle)
	PageFill(page Handle)
	PageFillStroke(page Handle)
	PageGRestore(page Handle)
	PageGSave(page Handle)
	PageLineTo(page Handle, x, y float64)
	PageMoveTextPos(page Handle, x, y float64)
	PageMoveTextPos2(page Handle, x, y float64)
	PageMoveTo(page Handle, x, y float64)
	PageMoveToNextLine(page Handle)
	PageRectangle(page Handle, x, y, width, height float64)
	PageSetCharSpace(page Handle, value float64)
	PageSetCMYKFill(page Handle, c CMYKColor)
	PageSetCMYKStroke(page Handle, c CMYKColor)
	PageSetDash(page Handle, mode DashMode)
	PageSetExtGState(page Handle, gs Handle)
	PageSetFontAndSize(page Handle, font Handle, size float64)
	PageSetGrayFill(page Handle, gray float64)
	PageSetGrayStroke(page Handle, gray float64)
	PageSetHorizontalScalling(page Handle, value float64)
	PageSetLineCap(page Handle, lineCap int)
	PageSetLineJoin(page Handle, lineJoin int)
	PageSetLineWidth(page Handle, width float64)
	PageSetMiterLimit(page Handle, limit float64)
	PageSetRGBFill(page Handle, c RGBColor)
	PageSetRGBStroke(page Handle, c RGBColor)
	PageSetTextLeading(page Handle, value float64)
	PageSetTextMatrix(page Handle, m TransMatrix)
	PageSetTextRenderingMode(page Handle, mode int)
	PageSetTextRise(page Handle, value float64)
	PageSetWordSpace(page Handle, value float64)
	PageShowText(page Handle, text string)
	PageShowTextNextLine(page Handle, text string)
	PageShowTextNextLineEx(page Handle, wordSpace, charSpace float64, text string)
	PageStroke(page Handle)
	PageTextOut(page Handle, x, y float64, text string)
	PageTextRect(page Handle, rect Rect, text string, align int) uint32

	FontGetFontName(font Handle) string
	FontGetEncodingName(font Handle) string
	FontGetUnicodeWidth(font Handle, code uint16) int
	FontGetBBox(font Handle) Rect
	FontGetAscent(font Handle) int
	FontGetDescent(font Handle) int
	FontGetXHeight(font Handle) uint32
	FontGetCapHeight(font Handle) uint32
	FontTextWidth(font Handle, text string) TextWidth

	EncoderGetType(encoder Handle) int
	EncoderGetUnicode(encoder Handle, code uint16) uint16
	EncoderGetWritingMode(encoder Handle) int

	ImageGetSize(image Handle) Point
	ImageGetBitsPerComponent(image Handle) uint32
	ImageGetColorSpace(image Handle) string
	ImageSetColorMask(image Handle, rmin, rmax, gmin, gmax, bmin, bmax uint32)
	ImageSetMaskImage(image Handle, mask Handle)

	OutlineSetOpened(outline Handle, opened bool)
	OutlineSetDestination(outline Handle, dst Handle)

	DestinationSetXYZ(dst Handle, left, top, zoom float64)
	DestinationSetFit(dst Handle)
	DestinationSetFitH(dst Handle, top float64)
	DestinationSetFitV(dst Handle, left float64)
	DestinationSetFitR(dst Handle, rect Rect)
	DestinationSetFitB(dst Handle)
	DestinationSetFitBH(dst Handle, top float64)
	DestinationSetFitBV(dst Handle, left float64)

	LinkAnnotSetHighlightMode(annot Handle, mode int)
	LinkAnnotSetBorderStyle(annot Handle, width float64, dashOn, dashOff uint16)
	TextAnnotSetIcon(annot Handle, icon int)
	TextAnnotSetOpened(annot Handle, opened bool)
	AnnotationSetBorderStyle(annot Handle, subtype int, width float64, dashOn, dashOff, dashPhase uint16)

	ExtGStateSetAlphaStroke(gs Handle, value float64)
	ExtGStateSetAlphaFill(gs Handle, value float64)
	ExtGStateSetBlendMode(gs Handle, mode int)
}
