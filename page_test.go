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

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

func TestStickyError(t *testing.T) {
	doc, eng := openTest(t, nil)
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}

	eng.Fail("PageLineTo", ErrPageInvalidGMode.Code(), 0)
	p.MoveTo(10, 10)
	p.LineTo(20, 20)
	p.Stroke()
	if !errors.Is(p.Err, ErrPageInvalidGMode) {
		t.Fatalf("Err = %v", p.Err)
	}
	if n := eng.Count("PageStroke"); n != 0 {
		t.Errorf("PageStroke called %d times after an error", n)
	}

	// queries still work after an error, and do not replace it
	if w := p.LineWidth(); w != 1 {
		t.Errorf("LineWidth() = %g", w)
	}
	if !errors.Is(p.Err, ErrPageInvalidGMode) {
		t.Errorf("error replaced by query: %v", p.Err)
	}

	eng.Clear("PageLineTo")
	p.ClearErr()
	p.LineTo(20, 20)
	p.Stroke()
	if p.Err != nil {
		t.Fatal(p.Err)
	}
	if n := eng.Count("PageStroke"); n != 1 {
		t.Errorf("PageStroke called %d times", n)
	}
}

func TestPageClosedDocument(t *testing.T) {
	doc, eng := openTest(t, nil)
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	doc.Close()
	eng.Reset()

	p.Rectangle(0, 0, 10, 10)
	if !errors.Is(p.Err, ErrInvalidDocument) {
		t.Errorf("Err = %v", p.Err)
	}
	if w := p.Width(); w != 0 {
		t.Errorf("Width() = %g", w)
	}
	if len(eng.Calls) != 0 {
		t.Errorf("unexpected engine calls: %v", eng.Calls)
	}
}

func TestGraphicsStateQueries(t *testing.T) {
	doc, _ := openTest(t, nil)
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}

	if d := p.GStateDepth(); d != 1 {
		t.Errorf("initial depth %d", d)
	}
	p.PushGraphicsState()
	p.SetLineWidth(2.5)
	p.SetLineCap(LineCapRound)
	p.SetDash(DashPattern{Pattern: []float64{3, 1}, Phase: 1})
	p.Transform(matrix.Translate(10, 20))
	if p.Err != nil {
		t.Fatal(p.Err)
	}

	if d := p.GStateDepth(); d != 2 {
		t.Errorf("depth %d after push", d)
	}
	if w := p.LineWidth(); w != 2.5 {
		t.Errorf("LineWidth() = %g", w)
	}
	if c := p.LineCap(); c != LineCapRound {
		t.Errorf("LineCap() = %v", c)
	}
	wantDash := DashPattern{Pattern: []float64{3, 1}, Phase: 1}
	if d := cmp.Diff(wantDash, p.Dash()); d != "" {
		t.Errorf("Dash() (-want +got):\n%s", d)
	}
	if m := p.TransMatrix(); m != matrix.Translate(10, 20) {
		t.Errorf("TransMatrix() = %v", m)
	}

	p.PopGraphicsState()
	if w := p.LineWidth(); w != 1 {
		t.Errorf("LineWidth() = %g after pop", w)
	}
	if m := p.TransMatrix(); m != matrix.Identity {
		t.Errorf("TransMatrix() = %v after pop", m)
	}

	p.PopGraphicsState()
	if !errors.Is(p.Err, ErrPageCannotRestoreGState) {
		t.Errorf("Err = %v", p.Err)
	}
}

func TestSetDashTooLong(t *testing.T) {
	doc, eng := openTest(t, nil)
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}

	p.SetDash(DashPattern{Pattern: make([]float64, 9)})
	if !errors.Is(p.Err, ErrInvalidParameter) {
		t.Errorf("Err = %v", p.Err)
	}
	if n := eng.Count("PageSetDash"); n != 0 {
		t.Errorf("PageSetDash called %d times", n)
	}
}

func TestShowTextEncoding(t *testing.T) {
	doc, eng := openTest(t, nil)
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	font, err := doc.GetFont("Helvetica", WinAnsiEncoding)
	if err != nil {
		t.Fatal(err)
	}

	p.BeginText()
	p.SetFontAndSize(font, 12)
	p.ShowText("café")
	p.TextOut(0, 0, " – ok")
	p.EndText()
	if p.Err != nil {
		t.Fatal(p.Err)
	}
	if got, want := eng.PageText(p.h), "caf\xe9 \x96 ok"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	p.ShowText("日本語")
	var encErr *EncodingError
	if !errors.As(p.Err, &encErr) {
		t.Errorf("Err = %v", p.Err)
	}
	if n := eng.Count("PageShowText"); n != 1 {
		t.Errorf("PageShowText called %d times", n)
	}
}

func TestShowTextFontQueryError(t *testing.T) {
	doc, eng := openTest(t, nil)
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	font, err := doc.GetFont("Helvetica", WinAnsiEncoding)
	if err != nil {
		t.Fatal(err)
	}

	p.BeginText()
	p.SetFontAndSize(font, 12)
	eng.Fail("FontGetEncodingName", ErrInvalidObject.Code(), 7)
	p.ShowText("café")

	var e *Error
	if !errors.As(p.Err, &e) || e.Kind != ErrInvalidObject || e.Op != "ShowText" {
		t.Fatalf("Err = %v", p.Err)
	}
	if n := eng.Count("PageShowText"); n != 0 {
		t.Errorf("PageShowText called %d times", n)
	}

	eng.Clear("FontGetEncodingName")
	p.ClearErr()
	p.EndText()
	if p.Err != nil {
		t.Errorf("error carried over to EndText: %v", p.Err)
	}
}

func TestShowTextRaw(t *testing.T) {
	doc, eng := openTest(t, &Options{RawText: true})
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	font, err := doc.GetFont("Helvetica", WinAnsiEncoding)
	if err != nil {
		t.Fatal(err)
	}

	p.BeginText()
	p.SetFontAndSize(font, 12)
	p.ShowText("café")
	p.EndText()
	if p.Err != nil {
		t.Fatal(p.Err)
	}
	if got := eng.PageText(p.h); got != "café" {
		t.Errorf("got %q", got)
	}
}

func TestSetFontForeignDocument(t *testing.T) {
	doc1, _ := openTest(t, nil)
	doc2, eng := openTest(t, nil)

	font, err := doc1.GetFont("Courier", nil)
	if err != nil {
		t.Fatal(err)
	}
	p, err := doc2.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	p.SetFontAndSize(font, 10)
	if !errors.Is(p.Err, ErrPageInvalidFont) {
		t.Errorf("Err = %v", p.Err)
	}
	if n := eng.Count("PageSetFontAndSize"); n != 0 {
		t.Errorf("PageSetFontAndSize called %d times", n)
	}
}

func TestTextRect(t *testing.T) {
	doc, _ := openTest(t, nil)
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	font, err := doc.GetFont("Times-Roman", nil)
	if err != nil {
		t.Fatal(err)
	}

	box := rect.Rect{LLx: 10, LLy: 10, URx: 200, URy: 100}
	p.BeginText()
	p.SetFontAndSize(font, 12)
	n := p.TextRect(box, "some text", AlignLeft)
	p.EndText()
	if p.Err != nil {
		t.Fatal(p.Err)
	}
	if n != 9 {
		t.Errorf("TextRect() = %d", n)
	}

	p.TextRect(box, "x", TextAlignment(99))
	if !errors.Is(p.Err, ErrInvalidParameter) {
		t.Errorf("Err = %v", p.Err)
	}
}

func TestFontTextWidth(t *testing.T) {
	doc, _ := openTest(t, nil)
	font, err := doc.GetFont("Helvetica", WinAnsiEncoding)
	if err != nil {
		t.Fatal(err)
	}

	tw, err := font.TextWidth("né ok")
	if err != nil {
		t.Fatal(err)
	}
	want := &TextWidth{NumChars: 5, NumWords: 2, NumSpace: 1, Width: 2500}
	if d := cmp.Diff(want, tw); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	name, err := font.EncodingName()
	if err != nil || name != "WinAnsiEncoding" {
		t.Errorf("EncodingName() = %q, %v", name, err)
	}
}

func TestGetFontUnknown(t *testing.T) {
	doc, _ := openTest(t, nil)
	_, err := doc.GetFont("NoSuchFont", nil)
	if !errors.Is(err, ErrInvalidFontName) {
		t.Errorf("got %v", err)
	}
}
