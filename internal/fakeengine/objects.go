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

// standardFonts are the fonts known to the fake without loading.
var standardFonts = map[string]bool{
	"Courier": true, "Courier-Bold": true, "Courier-Oblique": true, "Courier-BoldOblique": true,
	"Helvetica": true, "Helvetica-Bold": true, "Helvetica-Oblique": true, "Helvetica-BoldOblique": true,
	"Times-Roman": true, "Times-Bold": true, "Times-Italic": true, "Times-BoldItalic": true,
	"Symbol": true, "ZapfDingbats": true,
}

type fontState struct {
	name     string
	encoding string
}

type imageState struct {
	width, height float64
	bpc           uint32
	colorSpace    string
	mask          engine.Handle
}

func (e *Engine) GetFont(doc engine.Handle, fontName, encodingName string) engine.Handle {
	d := e.call("GetFont", doc, fontName)
	if !ok(d) {
		return 0
	}
	known := standardFonts[fontName]
	for _, name := range d.loadedFonts {
		known = known || name == fontName
	}
	if !known {
		d.fail(CodeInvalidFontName)
		return 0
	}
	if encodingName == "" {
		switch fontName {
		case "Symbol", "ZapfDingbats":
			encodingName = "FontSpecific"
		default:
			encodingName = "StandardEncoding"
		}
	}
	h := e.alloc(doc)
	e.fonts[h] = &fontState{name: fontName, encoding: encodingName}
	return h
}

func (e *Engine) loadFont(name string, doc engine.Handle, fileName string) string {
	d := e.call(name, doc, fileName)
	if !ok(d) {
		return ""
	}
	base := fileName
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	d.loadedFonts = append(d.loadedFonts, base)
	return base
}

func (e *Engine) LoadType1FontFromFile(doc engine.Handle, afmFile, dataFile string) string {
	return e.loadFont("LoadType1FontFromFile", doc, afmFile)
}

func (e *Engine) LoadTTFontFromFile(doc engine.Handle, fileName string, embedding bool) string {
	return e.loadFont("LoadTTFontFromFile", doc, fileName)
}

func (e *Engine) LoadTTFontFromFile2(doc engine.Handle, fileName string, index uint32, embedding bool) string {
	return e.loadFont("LoadTTFontFromFile2", doc, fileName)
}

func (e *Engine) useFonts(name string, doc engine.Handle, fonts ...string) {
	if d := e.call(name, doc, ""); ok(d) {
		d.loadedFonts = append(d.loadedFonts, fonts...)
	}
}

func (e *Engine) UseJPFonts(doc engine.Handle) {
	e.useFonts("UseJPFonts", doc, "MS-Mincho", "MS-Gothic")
}

func (e *Engine) UseKRFonts(doc engine.Handle) {
	e.useFonts("UseKRFonts", doc, "DotumChe", "BatangChe")
}

func (e *Engine) UseCNSFonts(doc engine.Handle) {
	e.useFonts("UseCNSFonts", doc, "SimSun", "SimHei")
}

func (e *Engine) UseCNTFonts(doc engine.Handle) {
	e.useFonts("UseCNTFonts", doc, "MingLiU")
}

func (e *Engine) GetEncoder(doc engine.Handle, encodingName string) engine.Handle {
	d := e.call("GetEncoder", doc, encodingName)
	if !ok(d) {
		return 0
	}
	h := e.alloc(doc)
	e.encoders[h] = encodingName
	return h
}

func (e *Engine) GetCurrentEncoder(doc engine.Handle) engine.Handle {
	d := e.call("GetCurrentEncoder", doc, "")
	if d == nil || d.encoder == "" {
		return 0
	}
	h := e.alloc(doc)
	e.encoders[h] = d.encoder
	return h
}

func (e *Engine) SetCurrentEncoder(doc engine.Handle, encodingName string) {
	if d := e.call("SetCurrentEncoder", doc, encodingName); ok(d) {
		d.encoder = encodingName
	}
}

func (e *Engine) UseJPEncodings(doc engine.Handle)  { e.call("UseJPEncodings", doc, "") }
func (e *Engine) UseKREncodings(doc engine.Handle)  { e.call("UseKREncodings", doc, "") }
func (e *Engine) UseCNSEncodings(doc engine.Handle) { e.call("UseCNSEncodings", doc, "") }
func (e *Engine) UseCNTEncodings(doc engine.Handle) { e.call("UseCNTEncodings", doc, "") }
func (e *Engine) UseUTFEncodings(doc engine.Handle) { e.call("UseUTFEncodings", doc, "") }

// newObject allocates a handle for an object without state.
func (e *Engine) newObject(name string, doc engine.Handle, text, kind string) engine.Handle {
	d := e.call(name, doc, text)
	if !ok(d) {
		return 0
	}
	h := e.alloc(doc)
	e.objects[h] = kind
	return h
}

func (e *Engine) CreateOutline(doc engine.Handle, parent engine.Handle, title string, encoder engine.Handle) engine.Handle {
	return e.newObject("CreateOutline", doc, title, "outline")
}

func (e *Engine) CreateExtGState(doc engine.Handle) engine.Handle {
	return e.newObject("CreateExtGState", doc, "", "extgstate")
}

func (e *Engine) newImage(name string, doc engine.Handle, text string, w, h float64, bpc uint32, cs string) engine.Handle {
	d := e.call(name, doc, text)
	if !ok(d) {
		return 0
	}
	handle := e.alloc(doc)
	e.images[handle] = &imageState{width: w, height: h, bpc: bpc, colorSpace: cs}
	return handle
}

// Images loaded from files or encoded data are reported as 1x1 RGB.
func (e *Engine) LoadPngImageFromFile(doc engine.Handle, fileName string) engine.Handle {
	return e.newImage("LoadPngImageFromFile", doc, fileName, 1, 1, 8, "DeviceRGB")
}

func (e *Engine) LoadPngImageFromFile2(doc engine.Handle, fileName string) engine.Handle {
	return e.newImage("LoadPngImageFromFile2", doc, fileName, 1, 1, 8, "DeviceRGB")
}

func (e *Engine) LoadJpegImageFromFile(doc engine.Handle, fileName string) engine.Handle {
	return e.newImage("LoadJpegImageFromFile", doc, fileName, 1, 1, 8, "DeviceRGB")
}

func (e *Engine) LoadPngImageFromMem(doc engine.Handle, data []byte) engine.Handle {
	return e.newImage("LoadPngImageFromMem", doc, "", 1, 1, 8, "DeviceRGB")
}

func (e *Engine) LoadJpegImageFromMem(doc engine.Handle, data []byte) engine.Handle {
	return e.newImage("LoadJpegImageFromMem", doc, "", 1, 1, 8, "DeviceRGB")
}

var rawColorSpaces = map[int]string{
	engine.CSDeviceGray: "DeviceGray",
	engine.CSDeviceRGB:  "DeviceRGB",
	engine.CSDeviceCMYK: "DeviceCMYK",
}

func (e *Engine) LoadRawImageFromFile(doc engine.Handle, fileName string, width, height uint32, colorSpace int) engine.Handle {
	return e.newImage("LoadRawImageFromFile", doc, fileName,
		float64(width), float64(height), 8, rawColorSpaces[colorSpace])
}

func (e *Engine) LoadRawImageFromMem(doc engine.Handle, data []byte, width, height uint32, colorSpace int, bitsPerComponent uint32) engine.Handle {
	return e.newImage("LoadRawImageFromMem", doc, "",
		float64(width), float64(height), bitsPerComponent, rawColorSpaces[colorSpace])
}

func (e *Engine) LoadIccProfileFromFile(doc engine.Handle, fileName string, numComponent int) engine.Handle {
	return e.newObject("LoadIccProfileFromFile", doc, fileName, "icc")
}

func (e *Engine) AddIntent(doc engine.Handle, intent engine.Handle) {
	e.call("AddIntent", doc, "")
}

func (e *Engine) FontGetFontName(font engine.Handle) string {
	e.call("FontGetFontName", font, "")
	if f := e.fonts[font]; f != nil {
		return f.name
	}
	return ""
}

func (e *Engine) FontGetEncodingName(font engine.Handle) string {
	e.call("FontGetEncodingName", font, "")
	if f := e.fonts[font]; f != nil {
		return f.encoding
	}
	return ""
}

// FontGetUnicodeWidth reports 500 for every character.
func (e *Engine) FontGetUnicodeWidth(font engine.Handle, code uint16) int {
	e.call("FontGetUnicodeWidth", font, "")
	return 500
}

func (e *Engine) FontGetBBox(font engine.Handle) engine.Rect {
	e.call("FontGetBBox", font, "")
	return engine.Rect{Left: -166, Bottom: -225, Right: 1000, Top: 931}
}

func (e *Engine) FontGetAscent(font engine.Handle) int {
	e.call("FontGetAscent", font, "")
	return 718
}

func (e *Engine) FontGetDescent(font engine.Handle) int {
	e.call("FontGetDescent", font, "")
	return -207
}

func (e *Engine) FontGetXHeight(font engine.Handle) uint32 {
	e.call("FontGetXHeight", font, "")
	return 523
}

func (e *Engine) FontGetCapHeight(font engine.Handle) uint32 {
	e.call("FontGetCapHeight", font, "")
	return 718
}

// FontTextWidth counts bytes as characters, with a width of 500 each.
func (e *Engine) FontTextWidth(font engine.Handle, text string) engine.TextWidth {
	e.call("FontTextWidth", font, text)
	spaces := uint32(strings.Count(text, " "))
	return engine.TextWidth{
		NumChars: uint32(len(text)),
		NumWords: uint32(len(strings.Fields(text))),
		NumSpace: spaces,
		Width:    500 * uint32(len(text)),
	}
}

func (e *Engine) EncoderGetType(encoder engine.Handle) int {
	e.call("EncoderGetType", encoder, "")
	name, ok := e.encoders[encoder]
	switch {
	case !ok:
		return engine.EncoderUnknown
	case strings.Contains(name, "-"):
		return engine.EncoderTypeDoubleByte
	default:
		return engine.EncoderTypeSingleByte
	}
}

// EncoderGetUnicode maps every code to itself.
func (e *Engine) EncoderGetUnicode(encoder engine.Handle, code uint16) uint16 {
	e.call("EncoderGetUnicode", encoder, "")
	return code
}

func (e *Engine) EncoderGetWritingMode(encoder engine.Handle) int {
	e.call("EncoderGetWritingMode", encoder, "")
	if strings.HasSuffix(e.encoders[encoder], "-V") {
		return engine.WModeVertical
	}
	return engine.WModeHorizontal
}

func (e *Engine) ImageGetSize(image engine.Handle) engine.Point {
	e.call("ImageGetSize", image, "")
	if img := e.images[image]; img != nil {
		return engine.Point{X: img.width, Y: img.height}
	}
	return engine.Point{}
}

func (e *Engine) ImageGetBitsPerComponent(image engine.Handle) uint32 {
	e.call("ImageGetBitsPerComponent", image, "")
	if img := e.images[image]; img != nil {
		return img.bpc
	}
	return 0
}

func (e *Engine) ImageGetColorSpace(image engine.Handle) string {
	e.call("ImageGetColorSpace", image, "")
	if img := e.images[image]; img != nil {
		return img.colorSpace
	}
	return ""
}

func (e *Engine) ImageSetColorMask(image engine.Handle, rmin, rmax, gmin, gmax, bmin, bmax uint32) {
	e.call("ImageSetColorMask", image, "")
}

func (e *Engine) ImageSetMaskImage(image engine.Handle, mask engine.Handle) {
	if d := e.call("ImageSetMaskImage", image, ""); ok(d) {
		if img := e.images[image]; img != nil {
			img.mask = mask
		}
	}
}

func (e *Engine) OutlineSetOpened(outline engine.Handle, opened bool) {
	e.call("OutlineSetOpened", outline, "")
}

func (e *Engine) OutlineSetDestination(outline engine.Handle, dst engine.Handle) {
	e.call("OutlineSetDestination", outline, "")
}

func (e *Engine) DestinationSetXYZ(dst engine.Handle, left, top, zoom float64) {
	e.call("DestinationSetXYZ", dst, "")
}

func (e *Engine) DestinationSetFit(dst engine.Handle) {
	e.call("DestinationSetFit", dst, "")
}

func (e *Engine) DestinationSetFitH(dst engine.Handle, top float64) {
	e.call("DestinationSetFitH", dst, "")
}

func (e *Engine) DestinationSetFitV(dst engine.Handle, left float64) {
	e.call("DestinationSetFitV", dst, "")
}

func (e *Engine) DestinationSetFitR(dst engine.Handle, rect engine.Rect) {
	e.call("DestinationSetFitR", dst, "")
}

func (e *Engine) DestinationSetFitB(dst engine.Handle) {
	e.call("DestinationSetFitB", dst, "")
}

func (e *Engine) DestinationSetFitBH(dst engine.Handle, top float64) {
	e.call("DestinationSetFitBH", dst, "")
}

func (e *Engine) DestinationSetFitBV(dst engine.Handle, left float64) {
	e.call("DestinationSetFitBV", dst, "")
}

func (e *Engine) LinkAnnotSetHighlightMode(annot engine.Handle, mode int) {
	e.call("LinkAnnotSetHighlightMode", annot, "")
}

func (e *Engine) LinkAnnotSetBorderStyle(annot engine.Handle, width float64, dashOn, dashOff uint16) {
	e.call("LinkAnnotSetBorderStyle", annot, "")
}

func (e *Engine) TextAnnotSetIcon(annot engine.Handle, icon int) {
	e.call("TextAnnotSetIcon", annot, "")
}

func (e *Engine) TextAnnotSetOpened(annot engine.Handle, opened bool) {
	e.call("TextAnnotSetOpened", annot, "")
}

func (e *Engine) AnnotationSetBorderStyle(annot engine.Handle, subtype int, width float64, dashOn, dashOff, dashPhase uint16) {
	e.call("AnnotationSetBorderStyle", annot, "")
}

func (e *Engine) ExtGStateSetAlphaStroke(gs engine.Handle, value float64) {
	e.call("ExtGStateSetAlphaStroke", gs, "")
}

func (e *Engine) ExtGStateSetAlphaFill(gs engine.Handle, value float64) {
	e.call("ExtGStateSetAlphaFill", gs, "")
}

func (e *Engine) ExtGStateSetBlendMode(gs engine.Handle, mode int) {
	e.call("ExtGStateSetBlendMode", gs, "")
}
