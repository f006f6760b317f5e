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
// Package barcode draws one- and two-dimensional barcodes onto the pages
// of a [haru.Document].
//
// Barcodes are encoded by github.com/boombuler/barcode and drawn as
// filled rectangles, so that they stay sharp at every zoom level.
package barcode

import (
	"image/color"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/haru"
)

// Draw fills box with the dark modules of bc, using the current fill
// color.  Adjacent dark modules in a row are merged into one rectangle.
//
// Errors are reported through [haru.Page.Err], which is also returned.
func Draw(page *haru.Page, bc barcode.Barcode, box rect.Rect) error {
	b := bc.Bounds()
	cols, rows := b.Dx(), b.Dy()
	if cols == 0 || rows == 0 {
		return page.Err
	}
	modW := box.Dx() / float64(cols)
	modH := box.Dy() / float64(rows)

	for row := 0; row < rows; row++ {
		// Image rows run top to bottom, PDF coordinates bottom to top.
		y := box.URy - float64(row+1)*modH
		start := -1
		for col := 0; col <= cols; col++ {
			dark := col < cols && isDark(bc.At(b.Min.X+col, b.Min.Y+row))
			switch {
			case dark && start < 0:
				start = col
			case !dark && start >= 0:
				x := box.LLx + float64(start)*modW
				page.Rectangle(x, y, float64(col-start)*modW, modH)
				start = -1
			}
		}
	}
	page.Fill()
	return page.Err
}

func isDark(c color.Color) bool {
	g := color.GrayModel.Convert(c).(color.Gray)
	return g.Y < 128
}

// Code128 draws a Code 128 barcode for content.
func Code128(page *haru.Page, content string, box rect.Rect) error {
	bc, err := code128.Encode(content)
	if err != nil {
		return err
	}
	return Draw(page, bc, box)
}

// QR draws a QR code for content, with the given error correction level.
func QR(page *haru.Page, content string, level qr.ErrorCorrectionLevel, box rect.Rect) error {
	bc, err := qr.Encode(content, level, qr.Auto)
	if err != nil {
		return err
	}
	return Draw(page, bc, box)
}
