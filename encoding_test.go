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

import "testing"

func TestSingleByteTokens(t *testing.T) {
	for e := SingleByteEncoding(0); e < SingleByteEncodingEOF; e++ {
		tok := e.Token()
		if tok == "" {
			t.Errorf("%d: empty token", e)
			continue
		}
		got, ok := ParseSingleByteEncoding(tok)
		if !ok || got != e {
			t.Errorf("ParseSingleByteEncoding(%q) = %v, %t", tok, got, ok)
		}
	}
	if tok := SingleByteEncodingEOF.Token(); tok != "" {
		t.Errorf("SingleByteEncodingEOF.Token() = %q", tok)
	}
}

func TestMultiByteTokens(t *testing.T) {
	for e := MultiByteEncoding(0); e < MultiByteEncodingEOF; e++ {
		tok := e.Token()
		if tok == "" {
			t.Errorf("%d: empty token", e)
			continue
		}
		got, ok := ParseMultiByteEncoding(tok)
		if !ok || got != e {
			t.Errorf("ParseMultiByteEncoding(%q) = %v, %t", tok, got, ok)
		}
		if e.Family() == FamilyNone {
			t.Errorf("%s has no family", e)
		}
	}
	if tok := MultiByteEncodingEOF.Token(); tok != "" {
		t.Errorf("MultiByteEncodingEOF.Token() = %q", tok)
	}
	if _, ok := ParseMultiByteEncoding("WinAnsiEncoding"); ok {
		t.Error("single byte token accepted as multi byte encoding")
	}
}

func TestFamily(t *testing.T) {
	cases := []struct {
		enc  MultiByteEncoding
		want EncodingFamily
	}{
		{GB_EUC_H, FamilyCNS},
		{GBK_EUC_V, FamilyCNS},
		{ETen_B5_H, FamilyCNT},
		{NINETYms_RKSJ_H, FamilyJP},
		{EUC_V, FamilyJP},
		{KSC_EUC_H, FamilyKR},
		{KSCms_UHC_HW_V, FamilyKR},
		{UTF8, FamilyUTF},
		{MultiByteEncodingEOF, FamilyNone},
	}
	for _, c := range cases {
		if got := c.enc.Family(); got != c.want {
			t.Errorf("%s.Family() = %s, want %s", c.enc, got, c.want)
		}
	}
}
