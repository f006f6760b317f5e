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
	"io/fs"
	"syscall"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		code uint32
		want ErrorKind
	}{
		{0x1001, ErrArrayCount},
		{0x1015, ErrMemoryAllocationFailed},
		{0x102B, ErrInvalidEncoderName},
		{0x102F, ErrInvalidFontName},
		{0x1058, ErrStreamEOF},
		{0x1075, ErrInvalidFont},
		{0x1006, ErrUndefined},
		{0x106F, ErrUndefined},
		{0, ErrInvalid},
		{0x2000, ErrInvalid},
		{0xFFFFFFFF, ErrInvalid},
	}
	for _, c := range cases {
		err := Classify(c.code, 7)
		if err.Kind != c.want {
			t.Errorf("Classify(0x%04X) = %s, want %s", c.code, err.Kind, c.want)
		}
		if err.Code != c.code || err.Detail != 7 {
			t.Errorf("Classify(0x%04X): code/detail not preserved: %#v", c.code, err)
		}
	}
}

func TestKindCodesRoundTrip(t *testing.T) {
	seen := make(map[uint32]ErrorKind)
	for _, k := range ErrorKinds() {
		code := k.Code()
		if k == ErrInvalid || k == ErrUndefined {
			if code != 0 {
				t.Errorf("%s has code 0x%04X", k, code)
			}
			continue
		}
		if other, dup := seen[code]; dup {
			t.Errorf("%s and %s share code 0x%04X", k, other, code)
		}
		seen[code] = k

		if got := Classify(code, 0).Kind; got != k {
			t.Errorf("Classify(%s.Code()) = %s", k, got)
		}
		if k.Class() == ClassUnknown {
			t.Errorf("%s has no class", k)
		}
	}
}

func TestReservedCodesUnused(t *testing.T) {
	for _, code := range reservedCodes {
		for _, k := range ErrorKinds() {
			if k.Code() == code {
				t.Errorf("reserved code 0x%04X used by %s", code, k)
			}
		}
	}
}

func TestErrorIs(t *testing.T) {
	var err error = Classify(0x1039, 0)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Error("errors.Is failed for ErrInvalidParameter")
	}
	if errors.Is(err, ErrInvalidPage) {
		t.Error("unexpected match for ErrInvalidPage")
	}

	var e *Error
	if !errors.As(err, &e) || e.Code != 0x1039 {
		t.Errorf("errors.As failed: %v", err)
	}
}

func TestFileErrorUnwrap(t *testing.T) {
	err := Classify(ErrFileOpen.Code(), uint32(syscall.ENOENT))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("%v does not match fs.ErrNotExist", err)
	}
	if !errors.Is(err, ErrFileOpen) {
		t.Errorf("%v does not match ErrFileOpen", err)
	}

	// the detail code is only interpreted for file errors
	err = Classify(ErrInvalidParameter.Code(), uint32(syscall.ENOENT))
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("%v unexpectedly matches fs.ErrNotExist", err)
	}
}

func TestErrorMessage(t *testing.T) {
	err := Classify(0x1015, 0)
	err.Op = "AddPage"
	want := "haru: AddPage: Memory allocation failed. (error 0x1015, detail 0)"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
