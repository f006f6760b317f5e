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
	"fmt"

	"seehuhn.de/go/haru/engine"
)

// Encoding is implemented by [SingleByteEncoding] and [MultiByteEncoding].
type Encoding interface {
	// Token returns the engine name of the encoding, or the empty string
	// if the value is not a valid encoding.
	Token() string

	// Encode converts a UTF-8 string to the encoding.
	Encode(s string) (string, error)
}

var (
	_ Encoding = SingleByteEncoding(0)
	_ Encoding = MultiByteEncoding(0)
)

// encodingToken returns the engine name for enc, importing the encoding
// family first if needed.  Invalid encodings are reported without calling
// the engine.
func (d *Document) encodingToken(op string, enc Encoding) (string, error) {
	if enc == nil {
		return "", nil
	}
	token := enc.Token()
	if token == "" {
		return "", newError(op, ErrInvalidEncoderName)
	}
	if mb, isMB := enc.(MultiByteEncoding); isMB {
		err := d.ensureFamilyImported(op, mb)
		if err != nil {
			return "", err
		}
	}
	return token, nil
}

// ensureFamilyImported loads the tables for the family of enc, if
// automatic imports are enabled.  Each family is loaded at most once.
// The UTF family is never loaded automatically.
func (d *Document) ensureFamilyImported(op string, enc MultiByteEncoding) error {
	if !d.imports.auto {
		return nil
	}
	switch enc.Family() {
	case FamilyCNS:
		return d.useEncodings(op, FamilyCNS, d.eng.UseCNSEncodings)
	case FamilyCNT:
		return d.useEncodings(op, FamilyCNT, d.eng.UseCNTEncodings)
	case FamilyJP:
		return d.useEncodings(op, FamilyJP, d.eng.UseJPEncodings)
	case FamilyKR:
		return d.useEncodings(op, FamilyKR, d.eng.UseKREncodings)
	}
	return nil
}

// useEncodings calls load, unless the family has been loaded already.
func (d *Document) useEncodings(op string, f EncodingFamily, load func(engine.Handle)) error {
	if err := d.ready(op); err != nil {
		return err
	}
	if d.imports.loaded[f] {
		return nil
	}
	load(d.h)
	if err := d.check(op); err != nil {
		return err
	}
	d.imports.loaded[f] = true
	return nil
}

// UseCNSEncodings loads the simplified Chinese encodings.
func (d *Document) UseCNSEncodings() error {
	return d.useEncodings("UseCNSEncodings", FamilyCNS, d.eng.UseCNSEncodings)
}

// UseCNTEncodings loads the traditional Chinese encodings.
func (d *Document) UseCNTEncodings() error {
	return d.useEncodings("UseCNTEncodings", FamilyCNT, d.eng.UseCNTEncodings)
}

// UseJPEncodings loads the Japanese encodings.
func (d *Document) UseJPEncodings() error {
	return d.useEncodings("UseJPEncodings", FamilyJP, d.eng.UseJPEncodings)
}

// UseKREncodings loads the Korean encodings.
func (d *Document) UseKREncodings() error {
	return d.useEncodings("UseKREncodings", FamilyKR, d.eng.UseKREncodings)
}

// UseUTFEncodings loads the UTF-8 encoding.
func (d *Document) UseUTFEncodings() error {
	return d.useEncodings("UseUTFEncodings", FamilyUTF, d.eng.UseUTFEncodings)
}

// FamilyLoaded reports whether the tables for the given encoding family
// have been loaded.
func (d *Document) FamilyLoaded(f EncodingFamily) bool {
	if f >= numFamilies {
		return false
	}
	return d.imports.loaded[f]
}

// AutoEncodingImports reports whether encoding families are loaded
// automatically.
func (d *Document) AutoEncodingImports() bool {
	return d.imports.auto
}

// SetAutoEncodingImports enables or disables the automatic loading of
// CJK encoding families.
func (d *Document) SetAutoEncodingImports(enabled bool) {
	d.imports.auto = enabled
}

// Encoder gives access to an encoding loaded into the engine.
type Encoder struct {
	doc *Document
	h   engine.Handle

	// enc is nil for encoders obtained from [Document.CurrentEncoder].
	enc Encoding
}

// encode converts text for use with the encoder.  Text is passed through
// unchanged if the encoding is not known.
func (e *Encoder) encode(text string) (string, error) {
	if e.enc == nil {
		return text, nil
	}
	return e.enc.Encode(text)
}

// GetEncoder returns the engine encoder for enc.
func (d *Document) GetEncoder(enc Encoding) (*Encoder, error) {
	if enc == nil {
		return nil, newError("GetEncoder", ErrInvalidEncoderName)
	}
	token, err := d.encodingToken("GetEncoder", enc)
	if err != nil {
		return nil, err
	}
	if err := d.ready("GetEncoder"); err != nil {
		return nil, err
	}
	h := d.eng.GetEncoder(d.h, token)
	if err := d.check("GetEncoder"); err != nil {
		return nil, err
	}
	if h == 0 {
		return nil, newError("GetEncoder", ErrInvalidEncoder)
	}
	return &Encoder{doc: d, h: h, enc: enc}, nil
}

// CurrentEncoder returns the encoder used for text in outlines and
// annotations.  The result is nil if no encoder has been set.
func (d *Document) CurrentEncoder() (*Encoder, error) {
	if err := d.ready("CurrentEncoder"); err != nil {
		return nil, err
	}
	h := d.eng.GetCurrentEncoder(d.h)
	if err := d.check("CurrentEncoder"); err != nil {
		return nil, err
	}
	if h == 0 {
		return nil, nil
	}
	return &Encoder{doc: d, h: h}, nil
}

// SetCurrentEncoder sets the encoder used for text in outlines and
// annotations.
func (d *Document) SetCurrentEncoder(enc Encoding) error {
	if enc == nil {
		return newError("SetCurrentEncoder", ErrInvalidEncoderName)
	}
	token, err := d.encodingToken("SetCurrentEncoder", enc)
	if err != nil {
		return err
	}
	if err := d.ready("SetCurrentEncoder"); err != nil {
		return err
	}
	d.eng.SetCurrentEncoder(d.h, token)
	return d.check("SetCurrentEncoder")
}

// EncoderType describes the byte structure of an encoding.
type EncoderType uint8

// Possible values for EncoderType.
const (
	EncoderSingleByte EncoderType = iota
	EncoderDoubleByte
	EncoderUninitialized
	EncoderUnknown
)

var encoderTypeCodes = []int{
	EncoderSingleByte:    engine.EncoderTypeSingleByte,
	EncoderDoubleByte:    engine.EncoderTypeDoubleByte,
	EncoderUninitialized: engine.EncoderTypeUninitialized,
	EncoderUnknown:       engine.EncoderUnknown,
}

func (t EncoderType) String() string {
	switch t {
	case EncoderSingleByte:
		return "single byte"
	case EncoderDoubleByte:
		return "double byte"
	case EncoderUninitialized:
		return "uninitialized"
	case EncoderUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("EncoderType(%d)", t)
	}
}

// WritingMode is the direction in which text is laid out.
type WritingMode uint8

// Possible values for WritingMode.
const (
	Horizontal WritingMode = iota
	Vertical

	// WritingModeEOF is used for engine values not known to this package.
	WritingModeEOF
)

var writingModeCodes = []int{
	Horizontal: engine.WModeHorizontal,
	Vertical:   engine.WModeVertical,
}

// Type returns the byte structure of the encoding.
func (e *Encoder) Type() (EncoderType, error) {
	if err := e.doc.ready("Encoder.Type"); err != nil {
		return EncoderUnknown, err
	}
	v := e.doc.eng.EncoderGetType(e.h)
	if err := e.doc.check("Encoder.Type"); err != nil {
		return EncoderUnknown, err
	}
	return decodeEnum(v, encoderTypeCodes, EncoderUnknown), nil
}

// Unicode returns the character for the given code.
func (e *Encoder) Unicode(code uint16) (rune, error) {
	if err := e.doc.ready("Encoder.Unicode"); err != nil {
		return 0, err
	}
	r := e.doc.eng.EncoderGetUnicode(e.h, code)
	if err := e.doc.check("Encoder.Unicode"); err != nil {
		return 0, err
	}
	return rune(r), nil
}

// WritingMode returns the writing direction of the encoding.
func (e *Encoder) WritingMode() (WritingMode, error) {
	if err := e.doc.ready("Encoder.WritingMode"); err != nil {
		return WritingModeEOF, err
	}
	v := e.doc.eng.EncoderGetWritingMode(e.h)
	if err := e.doc.check("Encoder.WritingMode"); err != nil {
		return WritingModeEOF, err
	}
	return decodeEnum(v, writingModeCodes, WritingModeEOF), nil
}
