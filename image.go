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
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"seehuhn.de/go/haru/engine"
)

// Image is an image XObject held by the engine.
type Image struct {
	doc *Document
	h   engine.Handle
}

func (d *Document) image(op string, h engine.Handle) (*Image, error) {
	if err := d.check(op); err != nil {
		return nil, err
	}
	if h == 0 {
		return nil, newError(op, ErrInvalidImage)
	}
	return &Image{doc: d, h: h}, nil
}

// LoadPNGImageFromFile loads a PNG image.
func (d *Document) LoadPNGImageFromFile(fileName string) (*Image, error) {
	if err := d.ready("LoadPNGImageFromFile"); err != nil {
		return nil, err
	}
	h := d.eng.LoadPngImageFromFile(d.h, fileName)
	return d.image("LoadPNGImageFromFile", h)
}

// LoadPNGImageFromFileDeferred loads the size and color information of a
// PNG image.  The pixel data is only read when the document is saved.
func (d *Document) LoadPNGImageFromFileDeferred(fileName string) (*Image, error) {
	if err := d.ready("LoadPNGImageFromFileDeferred"); err != nil {
		return nil, err
	}
	h := d.eng.LoadPngImageFromFile2(d.h, fileName)
	return d.image("LoadPNGImageFromFileDeferred", h)
}

// LoadJPEGImageFromFile loads a JPEG image.
func (d *Document) LoadJPEGImageFromFile(fileName string) (*Image, error) {
	if err := d.ready("LoadJPEGImageFromFile"); err != nil {
		return nil, err
	}
	h := d.eng.LoadJpegImageFromFile(d.h, fileName)
	return d.image("LoadJPEGImageFromFile", h)
}

// LoadPNGImage loads a PNG image from memory.
func (d *Document) LoadPNGImage(data []byte) (*Image, error) {
	if err := d.ready("LoadPNGImage"); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, newError("LoadPNGImage", ErrInvalidPNGImage)
	}
	h := d.eng.LoadPngImageFromMem(d.h, data)
	return d.image("LoadPNGImage", h)
}

// LoadJPEGImage loads a JPEG image from memory.
func (d *Document) LoadJPEGImage(data []byte) (*Image, error) {
	if err := d.ready("LoadJPEGImage"); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, newError("LoadJPEGImage", ErrInvalidJPEGData)
	}
	h := d.eng.LoadJpegImageFromMem(d.h, data)
	return d.image("LoadJPEGImage", h)
}

// LoadRawImageFromFile loads uncompressed 8-bit image data from a file.
func (d *Document) LoadRawImageFromFile(fileName string, width, height uint32, cs ImageColorSpace) (*Image, error) {
	const op = "LoadRawImageFromFile"
	if err := d.ready(op); err != nil {
		return nil, err
	}
	code, ok := encodeEnum(cs, imageColorSpaceCodes)
	if !ok {
		return nil, newError(op, ErrInvalidColorSpace)
	}
	h := d.eng.LoadRawImageFromFile(d.h, fileName, width, height, code)
	return d.image(op, h)
}

// LoadRawImage loads uncompressed image data from memory.  Rows are
// padded to whole bytes.  bitsPerComponent must be 1, 2, 4 or 8.
func (d *Document) LoadRawImage(data []byte, width, height uint32, cs ImageColorSpace, bitsPerComponent int) (*Image, error) {
	const op = "LoadRawImage"
	if err := d.ready(op); err != nil {
		return nil, err
	}
	code, ok := encodeEnum(cs, imageColorSpaceCodes)
	if !ok {
		return nil, newError(op, ErrInvalidColorSpace)
	}
	switch bitsPerComponent {
	case 1, 2, 4, 8:
		// pass
	default:
		return nil, newError(op, ErrInvalidBitPerComponent)
	}
	if len(data) < rawImageSize(width, height, cs.Channels(), bitsPerComponent) {
		return nil, newError(op, ErrInvalidParameter)
	}
	h := d.eng.LoadRawImageFromMem(d.h, data, width, height, code, uint32(bitsPerComponent))
	return d.image(op, h)
}

// rawImageSize returns the number of bytes the engine reads for a raw
// image.
func rawImageSize(width, height uint32, channels, bpc int) int {
	rowBits := int(width) * channels * bpc
	return (rowBits + 7) / 8 * int(height)
}

// LoadImage converts img to raw samples and loads it into the engine.
// Gray and CMYK images keep their color space, all other images are
// converted to 8-bit RGB.  Alpha channels are dropped.
func (d *Document) LoadImage(img image.Image) (*Image, error) {
	data, cs := rawSamples(img)
	b := img.Bounds()
	return d.LoadRawImage(data, uint32(b.Dx()), uint32(b.Dy()), cs, 8)
}

// LoadImageFromFile decodes an image file and loads it into the engine.
// PNG and JPEG files are passed to the engine directly.  BMP, TIFF, WebP
// and GIF files are decoded in Go and loaded as raw samples.
func (d *Document) LoadImageFromFile(fileName string) (*Image, error) {
	fd, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("LoadImageFromFile: %w", err)
	}
	defer fd.Close()

	_, format, err := image.DecodeConfig(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", newError("LoadImageFromFile", ErrInvalidImage), fileName, err)
	}
	switch format {
	case "png":
		return d.LoadPNGImageFromFile(fileName)
	case "jpeg":
		return d.LoadJPEGImageFromFile(fileName)
	}

	if _, err := fd.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", newError("LoadImageFromFile", ErrInvalidImage), fileName, err)
	}
	return d.LoadImage(img)
}

func rawSamples(img image.Image) ([]byte, ImageColorSpace) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch img := img.(type) {
	case *image.Gray:
		data := make([]byte, 0, w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := img.PixOffset(b.Min.X, y)
			data = append(data, img.Pix[i:i+w]...)
		}
		return data, ImageGray
	case *image.CMYK:
		data := make([]byte, 0, 4*w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := img.PixOffset(b.Min.X, y)
			data = append(data, img.Pix[i:i+4*w]...)
		}
		return data, ImageCMYK
	}

	data := make([]byte, 0, 3*w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			data = append(data, c.R, c.G, c.B)
		}
	}
	return data, ImageRGB
}

// Width returns the width of the image in pixels.
func (img *Image) Width() int {
	return int(img.size().X)
}

// Height returns the height of the image in pixels.
func (img *Image) Height() int {
	return int(img.size().Y)
}

func (img *Image) size() engine.Point {
	if img.doc.h == 0 {
		return engine.Point{}
	}
	return img.doc.eng.ImageGetSize(img.h)
}

// BitsPerComponent returns the number of bits per color component.
func (img *Image) BitsPerComponent() int {
	if img.doc.h == 0 {
		return 0
	}
	return int(img.doc.eng.ImageGetBitsPerComponent(img.h))
}

// ColorSpace returns the color space of the image.
func (img *Image) ColorSpace() ColorSpace {
	if img.doc.h == 0 {
		return ColorSpaceEOF
	}
	return ParseColorSpace(img.doc.eng.ImageGetColorSpace(img.h))
}

// SetColorMask makes all pixels with colors in the given ranges
// transparent.  This only applies to RGB images.
func (img *Image) SetColorMask(rmin, rmax, gmin, gmax, bmin, bmax uint32) error {
	const op = "Image.SetColorMask"
	if err := img.doc.ready(op); err != nil {
		return err
	}
	img.doc.eng.ImageSetColorMask(img.h, rmin, rmax, gmin, gmax, bmin, bmax)
	return img.doc.check(op)
}

// SetMaskImage uses a 1-bit gray image as a stencil mask for img.
func (img *Image) SetMaskImage(mask *Image) error {
	const op = "Image.SetMaskImage"
	if err := img.doc.ready(op); err != nil {
		return err
	}
	if mask == nil || mask.doc != img.doc {
		return newError(op, ErrInvalidImage)
	}
	img.doc.eng.ImageSetMaskImage(img.h, mask.h)
	return img.doc.check(op)
}
