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

	"seehuhn.de/go/haru/engine"
)

// ColorSpace is a PDF color space family.
type ColorSpace uint8

// These are the color spaces known to the engine.
// See section 8.6 of ISO 32000-2:2020.
const (
	DeviceGray ColorSpace = iota
	DeviceRGB
	DeviceCMYK
	CalGray
	CalRGB
	Lab
	ICCBased
	Separation
	DeviceN
	Indexed
	Pattern

	// ColorSpaceEOF is used for engine values not known to this package.
	ColorSpaceEOF
)

var colorSpaceCodes = []int{
	DeviceGray: engine.CSDeviceGray,
	DeviceRGB:  engine.CSDeviceRGB,
	DeviceCMYK: engine.CSDeviceCMYK,
	CalGray:    engine.CSCalGray,
	CalRGB:     engine.CSCalRGB,
	Lab:        engine.CSLab,
	ICCBased:   engine.CSICCBased,
	Separation: engine.CSSeparation,
	DeviceN:    engine.CSDeviceN,
	Indexed:    engine.CSIndexed,
	Pattern:    engine.CSPattern,
}

var colorSpaceNames = []string{
	DeviceGray: "DeviceGray",
	DeviceRGB:  "DeviceRGB",
	DeviceCMYK: "DeviceCMYK",
	CalGray:    "CalGray",
	CalRGB:     "CalRGB",
	Lab:        "Lab",
	ICCBased:   "ICCBased",
	Separation: "Separation",
	DeviceN:    "DeviceN",
	Indexed:    "Indexed",
	Pattern:    "Pattern",
}

func (cs ColorSpace) String() string {
	if int(cs) < len(colorSpaceNames) {
		return colorSpaceNames[cs]
	}
	return fmt.Sprintf("ColorSpace(%d)", cs)
}

// ParseColorSpace returns the color space with the given PDF name.
// This is used for the names reported by [Image.ColorSpace].
func ParseColorSpace(name string) ColorSpace {
	for i, n := range colorSpaceNames {
		if n == name {
			return ColorSpace(i)
		}
	}
	return ColorSpaceEOF
}

func colorSpaceFromEngine(v int) ColorSpace {
	return decodeEnum(v, colorSpaceCodes, ColorSpaceEOF)
}

// ImageColorSpace is the subset of color spaces which can be used for raw
// image data.
type ImageColorSpace uint8

// These are the color spaces for raw image data.
const (
	ImageGray ImageColorSpace = iota
	ImageRGB
	ImageCMYK
)

var imageColorSpaceCodes = []int{
	ImageGray: engine.CSDeviceGray,
	ImageRGB:  engine.CSDeviceRGB,
	ImageCMYK: engine.CSDeviceCMYK,
}

// Channels returns the number of color components per pixel.
func (cs ImageColorSpace) Channels() int {
	switch cs {
	case ImageGray:
		return 1
	case ImageRGB:
		return 3
	case ImageCMYK:
		return 4
	default:
		return 0
	}
}

// RGB is a color in the DeviceRGB color space.
// The components are in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// CMYK is a color in the DeviceCMYK color space.
// The components are in the range [0, 1].
type CMYK struct {
	C, M, Y, K float64
}

// Some frequently used colors.
var (
	RGBWhite   = RGB{1, 1, 1}
	RGBBlack   = RGB{0, 0, 0}
	RGBRed     = RGB{1, 0, 0}
	RGBGreen   = RGB{0, 1, 0}
	RGBBlue    = RGB{0, 0, 1}
	RGBCyan    = RGB{0, 1, 1}
	RGBMagenta = RGB{1, 0, 1}
	RGBYellow  = RGB{1, 1, 0}
	RGBGray    = RGB{0.5, 0.5, 0.5}

	CMYKWhite   = CMYK{0, 0, 0, 0}
	CMYKBlack   = CMYK{0, 0, 0, 1}
	CMYKRed     = CMYK{0, 1, 1, 0}
	CMYKGreen   = CMYK{1, 0, 1, 0}
	CMYKBlue    = CMYK{1, 1, 0, 0}
	CMYKCyan    = CMYK{1, 0, 0, 0}
	CMYKMagenta = CMYK{0, 1, 0, 0}
	CMYKYellow  = CMYK{0, 0, 1, 0}
	CMYKGray    = CMYK{0, 0, 0, 0.5}
)

// IsZero reports whether all components are zero.
func (c RGB) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// CMYK converts c to the DeviceCMYK color space, using the naive
// conversion from section 10.3.4 of ISO 32000-2:2020.
func (c RGB) CMYK() CMYK {
	k := 1 - max(c.R, c.G, c.B)
	if k >= 1 {
		return CMYK{0, 0, 0, 1}
	}
	return CMYK{
		C: (1 - c.R - k) / (1 - k),
		M: (1 - c.G - k) / (1 - k),
		Y: (1 - c.B - k) / (1 - k),
		K: k,
	}
}

// IsZero reports whether all components are zero.
func (c CMYK) IsZero() bool {
	return c.C == 0 && c.M == 0 && c.Y == 0 && c.K == 0
}

// RGB converts c to the DeviceRGB color space.
func (c CMYK) RGB() RGB {
	k := 1 - c.K
	return RGB{
		R: (1 - c.C) * k,
		G: (1 - c.M) * k,
		B: (1 - c.Y) * k,
	}
}

func (c RGB) toEngine() engine.RGBColor {
	return engine.RGBColor{R: c.R, G: c.G, B: c.B}
}

func (c CMYK) toEngine() engine.CMYKColor {
	return engine.CMYKColor{C: c.C, M: c.M, Y: c.Y, K: c.K}
}
