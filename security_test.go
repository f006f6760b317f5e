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
	"strings"
	"testing"
)

func TestPreparePassword(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"secret", "secret"},
		{"pässwörd", "p\xe4ssw\xf6rd"},
		{"a\u00a0b", "a b"}, // non-ASCII space is mapped to space
		{"x\u00ady", "xy"},  // soft hyphen is removed
		{"I\u2168", "IIX"},  // compatibility form is normalised
		{strings.Repeat("ab", 20), strings.Repeat("ab", 16)},
	}
	for _, c := range cases {
		got, err := preparePassword(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if string(got) != c.want {
			t.Errorf("%q: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPreparePasswordInvalid(t *testing.T) {
	for _, in := range []string{"bell\u0007", "日本語"} {
		if _, err := preparePassword(in); err == nil {
			t.Errorf("%q: missing error", in)
		}
	}
}

func TestSetPassword(t *testing.T) {
	doc, eng := openTest(t, nil)

	if err := doc.SetPassword("owner", ""); err != nil {
		t.Fatal(err)
	}
	pw, _ := eng.Password(doc.h)
	if string(pw) != "owner" {
		t.Errorf("engine received %q", pw)
	}

	err := doc.SetPassword("owner", "日本")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("got %v", err)
	}
	if n := eng.Count("SetPassword"); n != 1 {
		t.Errorf("SetPassword called %d times", n)
	}
}

func TestSetPermissions(t *testing.T) {
	doc, eng := openTest(t, nil)

	if err := doc.SetPassword("owner", "user"); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetPermissions(PermPrint | PermCopy); err != nil {
		t.Fatal(err)
	}
	_, perm := eng.Password(doc.h)
	if perm != uint32(PermPrint|PermCopy) {
		t.Errorf("permission %#x", perm)
	}
}

func TestEncryptionKeyLength(t *testing.T) {
	doc, eng := openTest(t, nil)

	for _, n := range []int{0, 4, 17, 128} {
		err := doc.SetEncryptionR3(n)
		if !errors.Is(err, ErrInvalidEncryptionKeyLength) {
			t.Errorf("%d: got %v", n, err)
		}
	}
	if k := eng.Count("SetEncryptionMode"); k != 0 {
		t.Errorf("SetEncryptionMode called %d times", k)
	}

	for _, n := range []int{5, 16} {
		if err := doc.SetEncryptionR3(n); err != nil {
			t.Errorf("%d: %v", n, err)
		}
	}
	if err := doc.SetEncryptionR2(); err != nil {
		t.Error(err)
	}
}
