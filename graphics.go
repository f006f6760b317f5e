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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/haru/engine"
)

// LineCap is the style of the end of a line.
type LineCap uint8

// Possible values for LineCap.
// See section 8.4.3.3 of ISO 32000-2:2020.
const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapProjectingSquare

	// LineCapEOF is used for engine values not known to this package.
	LineCapEOF
)

var lineCapCodes = []int{
	LineCapButt:             engine.ButtEnd,
	LineCapRound:            engine.RoundEnd,
	LineCapProjectingSquare: engine.ProjectingSquareEnd,
}

func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapProjectingSquare:
		return "projecting square"
	default:
		return fmt.Sprintf("LineCap(%d)", c)
	}
}

// LineJoin is the style of the corner of a line.
type LineJoin uint8

// Possible values for LineJoin.
const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel

	// LineJoinEOF is used for engine values not known to this package.
	LineJoinEOF
)

var lineJoinCodes = []int{
	LineJoinMiter: engine.MiterJoin,
	LineJoinRound: engine.RoundJoin,
	LineJoinBevel: engine.BevelJoin,
}

func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("LineJoin(%d)", j)
	}
}

// TextRenderingMode determines how glyph outlines are painted.
type TextRenderingMode uint8

// Possible values for TextRenderingMode.
// See section 9.3.6 of ISO 32000-2:2020.
const (
	TextFill TextRenderingMode = iota
	TextStroke
	TextFillThenStroke
	TextInvisible
	TextFillClip
	TextStrokeClip
	TextFillStrokeClip
	TextClip

	// TextRenderingModeEOF is used for engine values not known to this
	// package.
	TextRenderingModeEOF
)

var textRenderingModeCodes = []int{
	TextFill:           engine.Fill,
	TextStroke:         engine.Stroke,
	TextFillThenStroke: engine.FillThenStroke,
	TextInvisible:      engine.Invisible,
	TextFillClip:       engine.FillClipping,
	TextStrokeClip:     engine.StrokeClipping,
	TextFillStrokeClip: engine.FillStrokeClipping,
	TextClip:           engine.Clipping,
}

// TextAlignment is the horizontal alignment used by [Page.TextRect].
type TextAlignment uint8

// Possible values for TextAlignment.
const (
	AlignLeft TextAlignment = iota
	AlignRight
	AlignCenter
	AlignJustify
)

var textAlignmentCodes = []int{
	AlignLeft:    engine.TalignLeft,
	AlignRight:   engine.TalignRight,
	AlignCenter:  engine.TalignCenter,
	AlignJustify: engine.TalignJustify,
}

// GMode is a bit mask describing the current graphics object of a page.
type GMode uint16

// The graphics modes.
const (
	GModePageDescription GMode = engine.GModePageDescription
	GModePathObject      GMode = engine.GModePathObject
	GModeTextObject      GMode = engine.GModeTextObject
	GModeClippingPath    GMode = engine.GModeClippingPath
	GModeShading         GMode = engine.GModeShading
	GModeInlineImage     GMode = engine.GModeInlineImage
	GModeExternalObject  GMode = engine.GModeExternalObject
)

// BlendMode selects how colors are composited.
type BlendMode uint8

// Possible values for BlendMode.
// See section 11.3.5 of ISO 32000-2:2020.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion

	// BlendModeEOF is not a valid blend mode.
	BlendModeEOF
)

var blendModeCodes = []int{
	BlendNormal:     engine.BMNormal,
	BlendMultiply:   engine.BMMultiply,
	BlendScreen:     engine.BMScreen,
	BlendOverlay:    engine.BMOverlay,
	BlendDarken:     engine.BMDarken,
	BlendLighten:    engine.BMLighten,
	BlendColorDodge: engine.BMColorDodge,
	BlendColorBurn:  engine.BMColorBum,
	BlendHardLight:  engine.BMHardLight,
	BlendSoftLight:  engine.BMSoftLight,
	BlendDifference: engine.BMDifference,
	BlendExclusion:  engine.BMExclusion,
}

// DashPattern describes a line dash pattern.
// An empty Pattern gives solid lines.
type DashPattern struct {
	Pattern []float64
	Phase   float64
}

// maxDashElements is the number of dash pattern entries the engine keeps.
const maxDashElements = 8

func (d DashPattern) toEngine() (engine.DashMode, bool) {
	if len(d.Pattern) > maxDashElements {
		return engine.DashMode{}, false
	}
	return engine.DashMode{
		Pattern: append([]float64(nil), d.Pattern...),
		Phase:   d.Phase,
	}, true
}

func dashFromEngine(d engine.DashMode) DashPattern {
	return DashPattern{
		Pattern: append([]float64(nil), d.Pattern...),
		Phase:   d.Phase,
	}
}

func matrixFromEngine(m engine.TransMatrix) matrix.Matrix {
	return matrix.Matrix{m.A, m.B, m.C, m.D, m.X, m.Y}
}

func matrixToEngine(m matrix.Matrix) engine.TransMatrix {
	return engine.TransMatrix{A: m[0], B: m[1], C: m[2], D: m[3], X: m[4], Y: m[5]}
}

func pointFromEngine(p engine.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

func rectToEngine(r rect.Rect) engine.Rect {
	return engine.Rect{Left: r.LLx, Bottom: r.LLy, Right: r.URx, Top: r.URy}
}

func rectFromEngine(r engine.Rect) rect.Rect {
	return rect.Rect{LLx: r.Left, LLy: r.Bottom, URx: r.Right, URy: r.Top}
}
