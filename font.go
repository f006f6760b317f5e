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
	"bytes"
	"fmt"
	"os"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/afm"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/haru/engine"
)

// Font is a font loaded into the engine, together with an encoding.
type Font struct {
	doc *Document
	h   engine.Handle
}

// GetFont returns a font by name.  The name is either one of the 14
// standard fonts, like "Helvetica", or a name returned by one of the font
// loading methods.  If enc is nil, the default encoding of the font is
// used.
//
// For multi byte encodings the encoding family is loaded first, if
// automatic imports are enabled.
func (d *Document) GetFont(name string, enc Encoding) (*Font, error) {
	token, err := d.encodingToken("GetFont", enc)
	if err != nil {
		return nil, err
	}
	if err := d.ready("GetFont"); err != nil {
		return nil, err
	}
	h := d.eng.GetFont(d.h, name, token)
	if err := d.check("GetFont"); err != nil {
		return nil, err
	}
	if h == 0 {
		return nil, newError("GetFont", ErrInvalidFontName)
	}
	return &Font{doc: d, h: h}, nil
}

// LoadType1FontFromFile loads a Type 1 font.  The metrics are read from
// afmFile.  If dataFile is not empty, the font program is read from this
// file and embedded.  The return value is the font name for use with
// [Document.GetFont].
func (d *Document) LoadType1FontFromFile(afmFile, dataFile string) (string, error) {
	const op = "LoadType1FontFromFile"
	if err := d.ready(op); err != nil {
		return "", err
	}
	if err := checkAFM(op, afmFile); err != nil {
		return "", err
	}
	name := d.eng.LoadType1FontFromFile(d.h, afmFile, dataFile)
	if err := d.check(op); err != nil {
		return "", err
	}
	return name, nil
}

// checkAFM makes sure that the metrics file can be parsed, so that
// problems are reported with the file name attached.
func checkAFM(op, afmFile string) error {
	fd, err := os.Open(afmFile)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer fd.Close()

	_, err = afm.Read(fd)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", newError(op, ErrInvalidAFMHeader), afmFile, err)
	}
	return nil
}

// LoadTrueTypeFontFromFile loads a TrueType font.  If embed is true, the
// font program is embedded into the PDF file.  The return value is the
// font name for use with [Document.GetFont].
//
// Fonts whose license does not allow embedding are rejected with
// [ErrTTFCannotEmbedFont] before the engine reads them.
func (d *Document) LoadTrueTypeFontFromFile(fileName string, embed bool) (string, error) {
	const op = "LoadTrueTypeFontFromFile"
	if err := d.ready(op); err != nil {
		return "", err
	}
	if embed {
		info, err := ReadFontInfo(fileName)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		if !info.Embeddable {
			return "", newError(op, ErrTTFCannotEmbedFont)
		}
	}
	name := d.eng.LoadTTFontFromFile(d.h, fileName, embed)
	if err := d.check(op); err != nil {
		return "", err
	}
	return name, nil
}

// LoadTrueTypeCollectionFont loads the font with the given index from a
// TrueType collection.
func (d *Document) LoadTrueTypeCollectionFont(fileName string, index uint32, embed bool) (string, error) {
	const op = "LoadTrueTypeCollectionFont"
	if err := d.ready(op); err != nil {
		return "", err
	}
	name := d.eng.LoadTTFontFromFile2(d.h, fileName, index, embed)
	if err := d.check(op); err != nil {
		return "", err
	}
	return name, nil
}

// FontInfo summarises a TrueType or OpenType font file.
type FontInfo struct {
	FamilyName     string
	PostScriptName string

	// Embeddable is false if the font license forbids embedding.
	Embeddable bool
}

// ReadFontInfo reads the naming and licensing information from a
// TrueType or OpenType font file.
func ReadFontInfo(fileName string) (*FontInfo, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &FontInfo{
		FamilyName:     f.FamilyName,
		PostScriptName: f.PostScriptName(),
		Embeddable:     f.PermUse != os2.PermRestricted,
	}, nil
}

// UseJPFonts makes the Japanese CID fonts available.
func (d *Document) UseJPFonts() error {
	return d.useFonts("UseJPFonts", d.eng.UseJPFonts)
}

// UseKRFonts makes the Korean CID fonts available.
func (d *Document) UseKRFonts() error {
	return d.useFonts("UseKRFonts", d.eng.UseKRFonts)
}

// UseCNSFonts makes the simplified Chinese CID fonts available.
func (d *Document) UseCNSFonts() error {
	return d.useFonts("UseCNSFonts", d.eng.UseCNSFonts)
}

// UseCNTFonts makes the traditional Chinese CID fonts available.
func (d *Document) UseCNTFonts() error {
	return d.useFonts("UseCNTFonts", d.eng.UseCNTFonts)
}

func (d *Document) useFonts(op string, load func(engine.Handle)) error {
	if err := d.ready(op); err != nil {
		return err
	}
	load(d.h)
	return d.check(op)
}

// Name returns the name of the font.
func (f *Font) Name() (string, error) {
	if err := f.doc.ready("Font.Name"); err != nil {
		return "", err
	}
	name := f.doc.eng.FontGetFontName(f.h)
	if err := f.doc.check("Font.Name"); err != nil {
		return "", err
	}
	return name, nil
}

// EncodingName returns the engine name of the encoding of the font.
func (f *Font) EncodingName() (string, error) {
	if err := f.doc.ready("Font.EncodingName"); err != nil {
		return "", err
	}
	name := f.doc.eng.FontGetEncodingName(f.h)
	if err := f.doc.check("Font.EncodingName"); err != nil {
		return "", err
	}
	return name, nil
}

// UnicodeWidth returns the width of a character, in glyph space units.
func (f *Font) UnicodeWidth(r rune) (int, error) {
	if err := f.doc.ready("Font.UnicodeWidth"); err != nil {
		return 0, err
	}
	if r < 0 || r > 0xFFFF {
		return 0, newError("Font.UnicodeWidth", ErrInvalidParameter)
	}
	w := f.doc.eng.FontGetUnicodeWidth(f.h, uint16(r))
	if err := f.doc.check("Font.UnicodeWidth"); err != nil {
		return 0, err
	}
	return w, nil
}

// Metrics contains the global metrics of a font, in glyph space units.
type Metrics struct {
	BBox      rect.Rect
	Ascent    int
	Descent   int
	XHeight   int
	CapHeight int
}

// Metrics returns the global metrics of the font.
func (f *Font) Metrics() (*Metrics, error) {
	const op = "Font.Metrics"
	if err := f.doc.ready(op); err != nil {
		return nil, err
	}
	eng := f.doc.eng
	m := &Metrics{
		BBox:      rectFromEngine(eng.FontGetBBox(f.h)),
		Ascent:    eng.FontGetAscent(f.h),
		Descent:   eng.FontGetDescent(f.h),
		XHeight:   int(eng.FontGetXHeight(f.h)),
		CapHeight: int(eng.FontGetCapHeight(f.h)),
	}
	if err := f.doc.check(op); err != nil {
		return nil, err
	}
	return m, nil
}

// TextWidth is the result of [Font.TextWidth].
type TextWidth struct {
	NumChars int
	NumWords int
	NumSpace int

	// Width is in glyph space units, for a font size of 1000.
	Width int
}

// TextWidth measures text set in the font.
func (f *Font) TextWidth(text string) (*TextWidth, error) {
	const op = "Font.TextWidth"
	if err := f.doc.ready(op); err != nil {
		return nil, err
	}
	s := text
	if !f.doc.rawText {
		var err error
		s, err = encodeText(f.doc.eng.FontGetEncodingName(f.h), text)
		if err != nil {
			return nil, err
		}
	}
	tw := f.doc.eng.FontTextWidth(f.h, s)
	if err := f.doc.check(op); err != nil {
		return nil, err
	}
	return &TextWidth{
		NumChars: int(tw.NumChars),
		NumWords: int(tw.NumWords),
		NumSpace: int(tw.NumSpace),
		Width:    int(tw.Width),
	}, nil
}
