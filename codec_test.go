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

func TestDecodeEnumFallback(t *testing.T) {
	if got := decodeEnum(-1, lineCapCodes, LineCapEOF); got != LineCapEOF {
		t.Errorf("LineCap: got %v", got)
	}
	if got := decodeEnum(1000, pageLayoutCodes, PageLayoutEOF); got != PageLayoutEOF {
		t.Errorf("PageLayout: got %v", got)
	}
	if got := colorSpaceFromEngine(1000); got != ColorSpaceEOF {
		t.Errorf("ColorSpace: got %v", got)
	}
	if got := ParseColorSpace("Unknown"); got != ColorSpaceEOF {
		t.Errorf("ParseColorSpace: got %v", got)
	}
}

func TestEnumRoundTrip(t *testing.T) {
	for c := LineCap(0); c < LineCapEOF; c++ {
		code, ok := encodeEnum(c, lineCapCodes)
		if !ok {
			t.Errorf("%v not encodable", c)
			continue
		}
		if back := decodeEnum(code, lineCapCodes, LineCapEOF); back != c {
			t.Errorf("%v -> %d -> %v", c, code, back)
		}
	}
	for m := PageMode(0); m < PageModeEOF; m++ {
		code, ok := encodeEnum(m, pageModeCodes)
		if !ok {
			t.Errorf("%v not encodable", m)
			continue
		}
		if back := decodeEnum(code, pageModeCodes, PageModeEOF); back != m {
			t.Errorf("%v -> %d -> %v", m, code, back)
		}
	}
	for cs := ColorSpace(0); cs < ColorSpaceEOF; cs++ {
		if back := ParseColorSpace(cs.String()); back != cs {
			t.Errorf("ParseColorSpace(%q) = %v", cs.String(), back)
		}
	}
}

func TestEncodeEnumOutOfRange(t *testing.T) {
	if _, ok := encodeEnum(LineCapEOF, lineCapCodes); ok {
		t.Error("LineCapEOF encoded")
	}
	if _, ok := encodeEnum(BlendModeEOF, blendModeCodes); ok {
		t.Error("BlendModeEOF encoded")
	}
}
