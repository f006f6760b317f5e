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
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"

	"seehuhn.de/go/postscript/psenc"
	"seehuhn.de/go/postscript/type1/names"
)

// The engine expects text operands as byte strings in the encoding of the
// current font.  Go strings are UTF-8, so text is converted here before it
// is passed on.

// EncodingError is returned when a string contains characters which cannot
// be represented in the target encoding.
type EncodingError struct {
	Encoding string
	Text     string
	Err      error
}

func (err *EncodingError) Error() string {
	return fmt.Sprintf("haru: cannot encode %q as %s: %v", err.Text, err.Encoding, err.Err)
}

func (err *EncodingError) Unwrap() error {
	return err.Err
}

var singleByteCharmaps = [SingleByteEncodingEOF]encoding.Encoding{
	MacRomanEncoding: charmap.Macintosh,
	WinAnsiEncoding:  charmap.Windows1252,
	ISO8859_2:        charmap.ISO8859_2,
	ISO8859_3:        charmap.ISO8859_3,
	ISO8859_4:        charmap.ISO8859_4,
	ISO8859_5:        charmap.ISO8859_5,
	ISO8859_6:        charmap.ISO8859_6,
	ISO8859_7:        charmap.ISO8859_7,
	ISO8859_8:        charmap.ISO8859_8,
	ISO8859_9:        charmap.ISO8859_9,
	ISO8859_10:       charmap.ISO8859_10,
	ISO8859_11:       charmap.Windows874, // TIS-620 plus the Windows extensions
	ISO8859_13:       charmap.ISO8859_13,
	ISO8859_14:       charmap.ISO8859_14,
	ISO8859_15:       charmap.ISO8859_15,
	ISO8859_16:       charmap.ISO8859_16,
	CP1250:           charmap.Windows1250,
	CP1251:           charmap.Windows1251,
	CP1252:           charmap.Windows1252,
	CP1253:           charmap.Windows1253,
	CP1254:           charmap.Windows1254,
	CP1255:           charmap.Windows1255,
	CP1256:           charmap.Windows1256,
	CP1257:           charmap.Windows1257,
	CP1258:           charmap.Windows1258,
	KOI8_R:           charmap.KOI8R,
}

// Encode converts a UTF-8 string into the byte representation used by
// fonts with encoding e.
//
// Text for [FontSpecific] fonts is passed through unchanged.
func (e SingleByteEncoding) Encode(s string) (string, error) {
	switch {
	case e >= SingleByteEncodingEOF:
		return "", newError("Encode", ErrInvalidEncoderName)
	case e == FontSpecific:
		return s, nil
	case e == StandardEncoding:
		return encodeStandard(s)
	}

	res, err := singleByteCharmaps[e].NewEncoder().String(s)
	if err != nil {
		return "", &EncodingError{Encoding: e.Token(), Text: s, Err: err}
	}
	return res, nil
}

// Encode converts a UTF-8 string into the byte representation used by
// fonts with encoding e.
//
// Text for [UTF8] fonts is passed through unchanged.
func (e MultiByteEncoding) Encode(s string) (string, error) {
	var enc encoding.Encoding
	switch e {
	case UTF8:
		return s, nil
	case GB_EUC_H, GB_EUC_V, GBK_EUC_H, GBK_EUC_V:
		// GBK is a superset of EUC-CN and agrees with it on the shared range.
		enc = simplifiedchinese.GBK
	case ETen_B5_H, ETen_B5_V:
		enc = traditionalchinese.Big5
	case NINETYms_RKSJ_H, NINETYms_RKSJ_V, NINETYmsp_RKSJ_H:
		enc = japanese.ShiftJIS
	case EUC_H, EUC_V:
		enc = japanese.EUCJP
	case KSC_EUC_H, KSC_EUC_V, KSCms_UHC_H, KSCms_UHC_HW_H, KSCms_UHC_HW_V:
		enc = korean.EUCKR
	default:
		return "", newError("Encode", ErrInvalidEncoderName)
	}

	res, err := enc.NewEncoder().String(s)
	if err != nil {
		return "", &EncodingError{Encoding: e.Token(), Text: s, Err: err}
	}
	return res, nil
}

// encodeText converts s for a font whose encoding has the given engine
// name.  Unknown names are passed through, since the engine also reports
// names of encodings which were registered at run time.
func encodeText(token, s string) (string, error) {
	if e, ok := ParseSingleByteEncoding(token); ok {
		return e.Encode(s)
	}
	if e, ok := ParseMultiByteEncoding(token); ok {
		return e.Encode(s)
	}
	return s, nil
}

var (
	standardRevOnce sync.Once
	standardRev     map[rune]byte
)

// standardEncodingRev maps Unicode code points to codes in the Adobe
// standard encoding.
func standardEncodingRev() map[rune]byte {
	standardRevOnce.Do(func() {
		standardRev = make(map[rune]byte, 160)
		for code, name := range psenc.StandardEncoding {
			if name == ".notdef" || name == "" {
				continue
			}
			rr := []rune(names.ToUnicode(name, ""))
			if len(rr) != 1 {
				continue
			}
			if _, seen := standardRev[rr[0]]; !seen {
				standardRev[rr[0]] = byte(code)
			}
		}
	})
	return standardRev
}

func encodeStandard(s string) (string, error) {
	rev := standardEncodingRev()
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := rev[r]
		if !ok {
			return "", &EncodingError{
				Encoding: StandardEncoding.Token(),
				Text:     s,
				Err:      fmt.Errorf("character %q not in encoding", r),
			}
		}
		buf = append(buf, c)
	}
	return string(buf), nil
}
