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

import "fmt"

// SingleByteEncoding is one of the single byte encodings built into the
// engine.
type SingleByteEncoding uint8

// These are the single byte encodings supported by the engine.
const (
	StandardEncoding SingleByteEncoding = iota
	MacRomanEncoding
	WinAnsiEncoding
	FontSpecific
	ISO8859_2
	ISO8859_3
	ISO8859_4
	ISO8859_5
	ISO8859_6
	ISO8859_7
	ISO8859_8
	ISO8859_9
	ISO8859_10
	ISO8859_11
	ISO8859_13
	ISO8859_14
	ISO8859_15
	ISO8859_16
	CP1250
	CP1251
	CP1252
	CP1253
	CP1254
	CP1255
	CP1256
	CP1257
	CP1258
	KOI8_R

	// SingleByteEncodingEOF is not a valid encoding.
	SingleByteEncodingEOF
)

var singleByteTokens = [SingleByteEncodingEOF]string{
	StandardEncoding: "StandardEncoding",
	MacRomanEncoding: "MacRomanEncoding",
	WinAnsiEncoding:  "WinAnsiEncoding",
	FontSpecific:     "FontSpecific",
	ISO8859_2:        "ISO8859-2",
	ISO8859_3:        "ISO8859-3",
	ISO8859_4:        "ISO8859-4",
	ISO8859_5:        "ISO8859-5",
	ISO8859_6:        "ISO8859-6",
	ISO8859_7:        "ISO8859-7",
	ISO8859_8:        "ISO8859-8",
	ISO8859_9:        "ISO8859-9",
	ISO8859_10:       "ISO8859-10",
	ISO8859_11:       "ISO8859-11",
	ISO8859_13:       "ISO8859-13",
	ISO8859_14:       "ISO8859-14",
	ISO8859_15:       "ISO8859-15",
	ISO8859_16:       "ISO8859-16",
	CP1250:           "CP1250",
	CP1251:           "CP1251",
	CP1252:           "CP1252",
	CP1253:           "CP1253",
	CP1254:           "CP1254",
	CP1255:           "CP1255",
	CP1256:           "CP1256",
	CP1257:           "CP1257",
	CP1258:           "CP1258",
	KOI8_R:           "KOI8-R",
}

// Token returns the name the engine uses for the encoding.
// The empty string is returned for values which are not valid encodings.
func (e SingleByteEncoding) Token() string {
	if e >= SingleByteEncodingEOF {
		return ""
	}
	return singleByteTokens[e]
}

func (e SingleByteEncoding) String() string {
	if tok := e.Token(); tok != "" {
		return tok
	}
	return fmt.Sprintf("SingleByteEncoding(%d)", e)
}

// ParseSingleByteEncoding returns the encoding with the given engine name.
func ParseSingleByteEncoding(token string) (SingleByteEncoding, bool) {
	e, ok := singleByteByToken[token]
	if !ok {
		return SingleByteEncodingEOF, false
	}
	return e, true
}

var singleByteByToken = func() map[string]SingleByteEncoding {
	m := make(map[string]SingleByteEncoding, len(singleByteTokens))
	for e, tok := range singleByteTokens {
		m[tok] = SingleByteEncoding(e)
	}
	return m
}()

// MultiByteEncoding is one of the multi byte (CJK and UTF-8) encodings
// of the engine.
//
// Before a multi byte encoding can be used, the engine needs to load the
// tables for its [EncodingFamily].  See [Document.UseCNSEncodings] and
// the AutoImportEncodings field of [Options].
type MultiByteEncoding uint8

// These are the multi byte encodings supported by the engine.
const (
	GB_EUC_H MultiByteEncoding = iota
	GB_EUC_V
	GBK_EUC_H
	GBK_EUC_V
	ETen_B5_H
	ETen_B5_V
	NINETYms_RKSJ_H
	NINETYms_RKSJ_V
	NINETYmsp_RKSJ_H
	EUC_H
	EUC_V
	KSC_EUC_H
	KSC_EUC_V
	KSCms_UHC_H
	KSCms_UHC_HW_H
	KSCms_UHC_HW_V
	UTF8

	// MultiByteEncodingEOF is not a valid encoding.
	MultiByteEncodingEOF
)

var multiByteTokens = [MultiByteEncodingEOF]string{
	GB_EUC_H:         "GB-EUC-H",
	GB_EUC_V:         "GB-EUC-V",
	GBK_EUC_H:        "GBK-EUC-H",
	GBK_EUC_V:        "GBK-EUC-V",
	ETen_B5_H:        "ETen-B5-H",
	ETen_B5_V:        "ETen-B5-V",
	NINETYms_RKSJ_H:  "90ms-RKSJ-H",
	NINETYms_RKSJ_V:  "90ms-RKSJ-V",
	NINETYmsp_RKSJ_H: "90msp-RKSJ-H",
	EUC_H:            "EUC-H",
	EUC_V:            "EUC-V",
	KSC_EUC_H:        "KSC-EUC-H",
	KSC_EUC_V:        "KSC-EUC-V",
	KSCms_UHC_H:      "KSCms-UHC-H",
	KSCms_UHC_HW_H:   "KSCms-UHC-HW-H",
	KSCms_UHC_HW_V:   "KSCms-UHC-HW-V",
	UTF8:             "UTF-8",
}

// Token returns the name the engine uses for the encoding.
// The empty string is returned for values which are not valid encodings.
func (e MultiByteEncoding) Token() string {
	if e >= MultiByteEncodingEOF {
		return ""
	}
	return multiByteTokens[e]
}

func (e MultiByteEncoding) String() string {
	if tok := e.Token(); tok != "" {
		return tok
	}
	return fmt.Sprintf("MultiByteEncoding(%d)", e)
}

// ParseMultiByteEncoding returns the encoding with the given engine name.
func ParseMultiByteEncoding(token string) (MultiByteEncoding, bool) {
	e, ok := multiByteByToken[token]
	if !ok {
		return MultiByteEncodingEOF, false
	}
	return e, true
}

var multiByteByToken = func() map[string]MultiByteEncoding {
	m := make(map[string]MultiByteEncoding, len(multiByteTokens))
	for e, tok := range multiByteTokens {
		m[tok] = MultiByteEncoding(e)
	}
	return m
}()

// EncodingFamily is a group of multi byte encodings which the engine
// loads together.
type EncodingFamily uint8

// These are the encoding families.
const (
	FamilyNone EncodingFamily = iota
	FamilyCNS                 // simplified Chinese
	FamilyCNT                 // traditional Chinese
	FamilyJP                  // Japanese
	FamilyKR                  // Korean
	FamilyUTF                 // Unicode

	numFamilies
)

func (f EncodingFamily) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyCNS:
		return "CNS"
	case FamilyCNT:
		return "CNT"
	case FamilyJP:
		return "JP"
	case FamilyKR:
		return "KR"
	case FamilyUTF:
		return "UTF"
	default:
		return fmt.Sprintf("EncodingFamily(%d)", f)
	}
}

// Family returns the encoding family e belongs to.
//
// Membership is listed explicitly, so that the result does not depend on
// the numeric order of the constants.
func (e MultiByteEncoding) Family() EncodingFamily {
	switch e {
	case GB_EUC_H, GB_EUC_V, GBK_EUC_H, GBK_EUC_V:
		return FamilyCNS
	case ETen_B5_H, ETen_B5_V:
		return FamilyCNT
	case NINETYms_RKSJ_H, NINETYms_RKSJ_V, NINETYmsp_RKSJ_H, EUC_H, EUC_V:
		return FamilyJP
	case KSC_EUC_H, KSC_EUC_V, KSCms_UHC_H, KSCms_UHC_HW_H, KSCms_UHC_HW_V:
		return FamilyKR
	case UTF8:
		return FamilyUTF
	default:
		return FamilyNone
	}
}
