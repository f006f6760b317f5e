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
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestInfoAttr(t *testing.T) {
	doc, _ := openTest(t, nil)

	if err := doc.SetInfoAttr(InfoAuthor, "Jane Doe"); err != nil {
		t.Fatal(err)
	}
	if v, ok, err := doc.InfoAttr(InfoAuthor); err != nil || !ok || v != "Jane Doe" {
		t.Errorf("InfoAttr(InfoAuthor) = %q, %t, %v", v, ok, err)
	}
	if v, ok, err := doc.InfoAttr(InfoSubject); ok || err != nil {
		t.Errorf("unset entry reported as %q, %v", v, err)
	}

	err := doc.SetInfoAttr(InfoKey(100), "x")
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("invalid key: got %v", err)
	}
	_, _, err = doc.InfoAttr(InfoKey(100))
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("invalid key: got %v", err)
	}
}

func TestInfoAttrEngineError(t *testing.T) {
	doc, eng := openTest(t, nil)
	if err := doc.SetInfoAttr(InfoTitle, "Title"); err != nil {
		t.Fatal(err)
	}

	eng.Fail("GetInfoAttr", ErrInvalidParameter.Code(), 3)
	_, _, err := doc.InfoAttr(InfoTitle)
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrInvalidParameter || e.Detail != 3 || e.Op != "InfoAttr" {
		t.Errorf("InfoAttr: got %v", err)
	}

	info, err := doc.Info()
	if !errors.Is(err, ErrInvalidParameter) || info != nil {
		t.Errorf("Info() = %v, %v", info, err)
	}
	_, _, err = doc.InfoDate(ModDate)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("InfoDate: got %v", err)
	}

	eng.Clear("GetInfoAttr")
	if v, ok, err := doc.InfoAttr(InfoTitle); err != nil || !ok || v != "Title" {
		t.Errorf("after Clear: %q, %t, %v", v, ok, err)
	}
}

func TestInfoDate(t *testing.T) {
	doc, _ := openTest(t, nil)

	dt := DateTime{
		Year: 2023, Month: 11, Day: 5, Hour: 14, Minutes: 3, Seconds: 9,
		UTC: UTCPlus, OffHour: 1,
	}
	if err := doc.SetInfoDate(ModDate, dt); err != nil {
		t.Fatal(err)
	}

	raw, ok, err := doc.InfoDateString(ModDate)
	if err != nil || !ok || raw != "D:20231105140309+01'00'" {
		t.Errorf("InfoDateString() = %q, %t, %v", raw, ok, err)
	}
	got, ok, err := doc.InfoDate(ModDate)
	if err != nil || !ok {
		t.Fatalf("InfoDate: %t, %v", ok, err)
	}
	if d := cmp.Diff(dt, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	_, ok, err = doc.InfoDate(CreationDate)
	if ok || err != nil {
		t.Errorf("unset date: %t, %v", ok, err)
	}
}

func TestInfoRoundTrip(t *testing.T) {
	doc, eng := openTest(t, nil)

	loc := time.FixedZone("", 2*60*60)
	want := &Info{
		Title:        "A Title",
		Author:       "Someone",
		Keywords:     "pdf, test",
		Producer:     "haru",
		CreationDate: time.Date(2020, 2, 29, 12, 0, 0, 0, loc),
	}
	if err := doc.SetInfo(want); err != nil {
		t.Fatal(err)
	}
	if n := eng.Count("SetInfoAttr"); n != 4 {
		t.Errorf("SetInfoAttr called %d times", n)
	}

	got, err := doc.Info()
	if err != nil {
		t.Fatal(err)
	}
	opt := cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })
	if d := cmp.Diff(want, got, opt); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestWriteXMP(t *testing.T) {
	doc, _ := openTest(t, &Options{
		Info: &Info{
			Title:    "Metadata Test",
			Keywords: "alpha beta",
			Creator:  "info_test.go",
		},
	})

	buf := &bytes.Buffer{}
	if err := doc.WriteXMP(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"Metadata Test",
		"alpha beta",
		"info_test.go",
		"http://ns.adobe.com/pdf/1.3/",
		"http://purl.org/dc/elements/1.1/",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}
