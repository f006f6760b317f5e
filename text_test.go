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
	"errors"
	"testing"
)

func TestEncodeText(t *testing.T) {
	cases := []struct {
		token string
		in    string
		want  string
	}{
		{"WinAnsiEncoding", "café", "caf\xe9"},
		{"CP1252", "€", "\x80"},
		{"ISO8859-5", "Ж", "\xb6"},
		{"KOI8-R", "Ж", "\xf6"},
		{"StandardEncoding", "Hello", "Hello"},
		{"StandardEncoding", "it’s", "it\x27s"},
		{"StandardEncoding", "\u00a1x\u2014", "\xa1x\xd0"},
		{"FontSpecific", "\x01\xff", "\x01\xff"},
		{"90ms-RKSJ-H", "あ", "\x82\xa0"},
		{"UTF-8", "héllo", "héllo"},
		{"Custom-Encoding", "héllo", "héllo"},
	}
	for _, c := range cases {
		got, err := encodeText(c.token, c.in)
		if err != nil {
			t.Errorf("%s %q: %v", c.token, c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s %q: got %q, want %q", c.token, c.in, got, c.want)
		}
	}
}

func TestEncodeTextError(t *testing.T) {
	cases := []struct {
		token string
		in    string
	}{
		{"WinAnsiEncoding", "日本"},
		{"StandardEncoding", "é"},
		{"KSC-EUC-H", "ࠀ"},
	}
	for _, c := range cases {
		_, err := encodeText(c.token, c.in)
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Errorf("%s %q: got %v, want *EncodingError", c.token, c.in, err)
			continue
		}
		if encErr.Encoding != c.token {
			t.Errorf("%s: error names encoding %q", c.token, encErr.Encoding)
		}
	}
}

func TestEncodeInvalid(t *testing.T) {
	_, err := SingleByteEncodingEOF.Encode("x")
	if !errors.Is(err, ErrInvalidEncoderName) {
		t.Errorf("single byte: got %v", err)
	}
	_, err = MultiByteEncodingEOF.Encode("x")
	if !errors.Is(err, ErrInvalidEncoderName) {
		t.Errorf("multi byte: got %v", err)
	}
}
