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
package barcode

import (
	"image"
	"image/color"
	"testing"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/haru"
	"seehuhn.de/go/haru/internal/fakeengine"
)

type testCode struct {
	*image.Gray
}

func (testCode) Metadata() barcode.Metadata {
	return barcode.Metadata{CodeKind: "test", Dimensions: 1}
}

func (testCode) Content() string { return "test" }

func newPage(t *testing.T) (*fakeengine.Engine, *haru.Page) {
	t.Helper()
	eng := fakeengine.New()
	doc, err := haru.Open(eng, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { doc.Close() })
	page, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	return eng, page
}

func TestDrawMergesRuns(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 5, 1))
	for x, dark := range []bool{true, true, false, true, false} {
		if dark {
			img.SetGray(x, 0, color.Gray{Y: 0})
		} else {
			img.SetGray(x, 0, color.Gray{Y: 255})
		}
	}

	eng, page := newPage(t)
	err := Draw(page, testCode{img}, rect.Rect{LLx: 0, LLy: 0, URx: 50, URy: 20})
	if err != nil {
		t.Fatal(err)
	}
	if n := eng.Count("PageRectangle"); n != 2 {
		t.Errorf("got %d rectangles, want 2", n)
	}
	if n := eng.Count("PageFill"); n != 1 {
		t.Errorf("got %d fill operations, want 1", n)
	}
}

func TestQR(t *testing.T) {
	eng, page := newPage(t)
	err := QR(page, "https://seehuhn.de/", qr.M, rect.Rect{LLx: 72, LLy: 72, URx: 144, URy: 144})
	if err != nil {
		t.Fatal(err)
	}
	if eng.Count("PageRectangle") == 0 {
		t.Error("no modules drawn")
	}
}

func TestCode128Error(t *testing.T) {
	_, page := newPage(t)
	err := Code128(page, "", rect.Rect{URx: 100, URy: 30})
	if err == nil {
		t.Error("empty content accepted")
	}
}
