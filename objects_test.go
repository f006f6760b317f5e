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
	"image"
	"io/fs"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestOutline(t *testing.T) {
	doc, eng := openTest(t, nil)
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	enc, err := doc.GetEncoder(WinAnsiEncoding)
	if err != nil {
		t.Fatal(err)
	}

	root, err := doc.CreateOutline(nil, "Résumé", enc)
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := eng.Last("CreateOutline"); c.Text != "R\xe9sum\xe9" {
		t.Errorf("engine received title %q", c.Text)
	}

	child, err := doc.CreateOutline(root, "Chapter 1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := root.SetOpened(true); err != nil {
		t.Error(err)
	}

	dst, err := p.CreateDestination()
	if err != nil {
		t.Fatal(err)
	}
	if err := child.SetDestination(dst); err != nil {
		t.Error(err)
	}
	if err := child.SetDestination(nil); !errors.Is(err, ErrInvalidDestination) {
		t.Errorf("nil destination: got %v", err)
	}

	_, err = doc.CreateOutline(root, "日本", enc)
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Errorf("unencodable title: got %v", err)
	}
}

func TestOutlineForeignParent(t *testing.T) {
	doc1, _ := openTest(t, nil)
	doc2, _ := openTest(t, nil)

	parent, err := doc1.CreateOutline(nil, "top", nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = doc2.CreateOutline(parent, "child", nil)
	if !errors.Is(err, ErrInvalidOutline) {
		t.Errorf("got %v", err)
	}
}

func TestDestination(t *testing.T) {
	doc, eng := openTest(t, nil)
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	dst, err := p.CreateDestination()
	if err != nil {
		t.Fatal(err)
	}

	for _, zoom := range []float64{0, 0.01, 33} {
		if err := dst.SetXYZ(0, 842, zoom); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("zoom %g: got %v", zoom, err)
		}
	}
	if n := eng.Count("DestinationSetXYZ"); n != 0 {
		t.Errorf("DestinationSetXYZ called %d times", n)
	}
	if err := dst.SetXYZ(0, 842, 1); err != nil {
		t.Error(err)
	}
	if err := dst.SetFitR(rect.Rect{URx: 100, URy: 100}); err != nil {
		t.Error(err)
	}
	if err := doc.SetOpenAction(dst); err != nil {
		t.Error(err)
	}
}

func TestAnnotations(t *testing.T) {
	doc, eng := openTest(t, nil)
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	box := rect.Rect{LLx: 50, LLy: 50, URx: 150, URy: 80}

	_, err = p.CreateURILinkAnnotation(box, "not a URI")
	if !errors.Is(err, ErrInvalidURI) {
		t.Errorf("relative URI: got %v", err)
	}
	link, err := p.CreateURILinkAnnotation(box, "https://example.com/")
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := eng.Last("PageCreateURILinkAnnot"); c.Text != "https://example.com/" {
		t.Errorf("engine received %q", c.Text)
	}
	if err := link.SetHighlightMode(HighlightInvertBox); err != nil {
		t.Error(err)
	}
	if err := link.SetHighlightMode(HighlightMode(99)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("invalid highlight mode: got %v", err)
	}

	enc, err := doc.GetEncoder(WinAnsiEncoding)
	if err != nil {
		t.Fatal(err)
	}
	note, err := p.CreateTextAnnotation(box, "naïve", enc)
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := eng.Last("PageCreateTextAnnot"); c.Text != "na\xefve" {
		t.Errorf("engine received %q", c.Text)
	}
	if err := note.SetIcon(IconHelp); err != nil {
		t.Error(err)
	}
	if err := note.SetIcon(AnnotationIcon(99)); !errors.Is(err, ErrAnnotationInvalidIcon) {
		t.Errorf("invalid icon: got %v", err)
	}
	if err := note.SetBorder(BorderDashed, 1, 3, 2, 0); err != nil {
		t.Error(err)
	}
}

func TestExtGState(t *testing.T) {
	doc, eng := openTest(t, nil)
	p, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	gs, err := doc.CreateExtGState()
	if err != nil {
		t.Fatal(err)
	}

	for _, alpha := range []float64{-0.1, 1.5} {
		if err := gs.SetAlphaFill(alpha); !errors.Is(err, ErrFloatOutOfRange) {
			t.Errorf("alpha %g: got %v", alpha, err)
		}
	}
	if err := gs.SetBlendMode(BlendModeEOF); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("invalid blend mode: got %v", err)
	}
	if err := gs.SetAlphaStroke(0.5); err != nil {
		t.Error(err)
	}
	if err := gs.SetBlendMode(BlendMultiply); err != nil {
		t.Error(err)
	}

	p.SetExtGState(gs)
	if p.Err != nil {
		t.Error(p.Err)
	}
	if n := eng.Count("PageSetExtGState"); n != 1 {
		t.Errorf("PageSetExtGState called %d times", n)
	}
}

func TestLoadImage(t *testing.T) {
	doc, _ := openTest(t, nil)

	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	img, err := doc.LoadImage(gray)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 3 || img.Height() != 2 {
		t.Errorf("size %dx%d", img.Width(), img.Height())
	}
	if cs := img.ColorSpace(); cs != DeviceGray {
		t.Errorf("color space %v", cs)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img, err = doc.LoadImage(rgba)
	if err != nil {
		t.Fatal(err)
	}
	if cs := img.ColorSpace(); cs != DeviceRGB {
		t.Errorf("color space %v", cs)
	}
}

func TestLoadRawImageErrors(t *testing.T) {
	doc, eng := openTest(t, nil)

	_, err := doc.LoadRawImage(make([]byte, 5), 3, 2, ImageRGB, 8)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("short data: got %v", err)
	}
	_, err = doc.LoadRawImage(make([]byte, 100), 3, 2, ImageGray, 3)
	if !errors.Is(err, ErrInvalidBitPerComponent) {
		t.Errorf("bits per component: got %v", err)
	}
	if n := eng.Count("LoadRawImageFromMem"); n != 0 {
		t.Errorf("LoadRawImageFromMem called %d times", n)
	}

	// 1-bit rows are padded to whole bytes
	if _, err := doc.LoadRawImage(make([]byte, 2), 3, 2, ImageGray, 1); err != nil {
		t.Error(err)
	}
}

func TestEncoderQueries(t *testing.T) {
	doc, _ := openTest(t, &Options{AutoImportEncodings: true})

	enc, err := doc.GetEncoder(NINETYms_RKSJ_V)
	if err != nil {
		t.Fatal(err)
	}
	if tp, err := enc.Type(); err != nil || tp != EncoderDoubleByte {
		t.Errorf("Type() = %v, %v", tp, err)
	}
	if wm, err := enc.WritingMode(); err != nil || wm != Vertical {
		t.Errorf("WritingMode() = %v, %v", wm, err)
	}

	if err := doc.SetCurrentEncoder(WinAnsiEncoding); err != nil {
		t.Fatal(err)
	}
	cur, err := doc.CurrentEncoder()
	if err != nil || cur == nil {
		t.Fatalf("CurrentEncoder() = %v, %v", cur, err)
	}
	if tp, err := cur.Type(); err != nil || tp != EncoderSingleByte {
		t.Errorf("Type() = %v, %v", tp, err)
	}
}

func TestMissingFiles(t *testing.T) {
	doc, eng := openTest(t, nil)
	missing := filepath.Join(t.TempDir(), "missing")

	if _, err := doc.LoadType1FontFromFile(missing+".afm", ""); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadType1FontFromFile: got %v", err)
	}
	if _, err := doc.LoadTrueTypeFontFromFile(missing+".ttf", true); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadTrueTypeFontFromFile: got %v", err)
	}
	if _, err := doc.LoadICCProfile(missing + ".icc"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadICCProfile: got %v", err)
	}
	if _, err := doc.LoadImageFromFile(missing + ".png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadImageFromFile: got %v", err)
	}
	for _, name := range []string{"LoadType1FontFromFile", "LoadTTFontFromFile", "LoadIccProfileFromFile"} {
		if n := eng.Count(name); n != 0 {
			t.Errorf("%s called %d times", name, n)
		}
	}
}
